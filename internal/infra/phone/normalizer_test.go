package phone

import (
	"testing"

	domainerrors "pawtrack/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "already e164", raw: "+14155552671", want: "+14155552671"},
		{name: "formatted us number", raw: "+1 (415) 555-2671", want: "+14155552671"},
		{name: "taiwan mobile", raw: "+886 912 345 678", want: "+886912345678"},
		{name: "national number without region", raw: "0912345678", wantErr: true},
		{name: "garbage", raw: "call me", wantErr: true},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "too short", raw: "+1 555", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := n.Normalize(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizerForRegion(t *testing.T) {
	t.Parallel()

	got, err := NewNormalizerForRegion("tw").Normalize("0912345678")
	require.NoError(t, err)
	assert.Equal(t, "+886912345678", got)
}
