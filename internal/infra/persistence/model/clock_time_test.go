package model

import (
	"testing"
	"time"

	"pawtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockTime_Scan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{name: "sqlite text", src: "09:30", want: "09:30"},
		{name: "postgres text with seconds", src: "18:00:00.000000", want: "18:00"},
		{name: "bytes", src: []byte("07:05:00"), want: "07:05"},
		{name: "time value", src: time.Date(0, 1, 1, 13, 45, 0, 0, time.UTC), want: "13:45"},
		{name: "garbage", src: "later", wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var c ClockTime
			err := c.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, entity.TimeOfDay(c).String())
		})
	}
}

func TestClockTime_Value(t *testing.T) {
	t.Parallel()

	v, err := ClockTime(entity.MustTimeOfDay("06:00")).Value()
	require.NoError(t, err)
	assert.Equal(t, "06:00", v)
}
