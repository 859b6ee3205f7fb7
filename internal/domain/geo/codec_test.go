package geo

import (
	"encoding/hex"
	"testing"

	domainerrors "pawtrack/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{name: "new york", latitude: 40.7128, longitude: -74.0060},
		{name: "south pole boundary", latitude: -90, longitude: 0},
		{name: "north pole boundary", latitude: 90, longitude: 0},
		{name: "antimeridian boundary", latitude: 0, longitude: 180},
		{name: "negative antimeridian boundary", latitude: 0, longitude: -180},
		{name: "latitude above range", latitude: 91, longitude: 0, wantErr: true},
		{name: "latitude below range", latitude: -90.0001, longitude: 0, wantErr: true},
		{name: "longitude below range", latitude: 0, longitude: -181, wantErr: true},
		{name: "longitude above range", latitude: 0, longitude: 180.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loc, err := NewLocation(tt.latitude, tt.longitude)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.latitude, loc.Latitude)
			assert.Equal(t, tt.longitude, loc.Longitude)
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	loc, err := NewLocation(40.7128, -74.0060)
	require.NoError(t, err)

	stored, err := Encode(loc)
	require.NoError(t, err)
	assert.NotEmpty(t, stored)

	decoded, err := Decode(stored)
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.InDelta(t, 40.7128, decoded.Latitude, 1e-6)
	assert.InDelta(t, -74.0060, decoded.Longitude, 1e-6)
}

func TestEncode_StoresLongitudeFirst(t *testing.T) {
	t.Parallel()

	stored, err := Encode(Location{Latitude: 40.7128, Longitude: -74.0060})
	require.NoError(t, err)

	data, err := hex.DecodeString(string(stored))
	require.NoError(t, err)

	geom, srid, err := ewkb.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, SRID, srid)

	point, ok := geom.(orb.Point)
	require.True(t, ok)
	assert.InDelta(t, -74.0060, point.X(), 1e-9)
	assert.InDelta(t, 40.7128, point.Y(), 1e-9)
}

func TestEncode_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := Encode(Location{Latitude: 91, Longitude: 0})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestDecode_Absent(t *testing.T) {
	t.Parallel()

	for _, stored := range []StoredPoint{"", "   "} {
		loc, err := Decode(stored)
		require.NoError(t, err)
		assert.Nil(t, loc)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	t.Parallel()

	lineString := ewkb.MustMarshalToHex(orb.LineString{{0, 0}, {1, 1}}, SRID)
	wrongSRID := ewkb.MustMarshalToHex(orb.Point{10, 10}, 3857)
	outOfRange := ewkb.MustMarshalToHex(orb.Point{10, 95}, SRID)

	tests := []struct {
		name   string
		stored StoredPoint
	}{
		{name: "not hex", stored: "not-a-point"},
		{name: "truncated", stored: "0101000020E6"},
		{name: "line string", stored: StoredPoint(lineString)},
		{name: "wrong srid", stored: StoredPoint(wrongSRID)},
		{name: "latitude out of range", stored: StoredPoint(outOfRange)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loc, err := Decode(tt.stored)
			require.Error(t, err)
			assert.Nil(t, loc)
			assert.ErrorIs(t, err, domainerrors.ErrDataCorruption)
		})
	}
}

func TestDecode_PlainWKBAssumesWGS84(t *testing.T) {
	t.Parallel()

	plain := ewkb.MustMarshalToHex(orb.Point{121.5654, 25.0330}, 0)

	loc, err := Decode(StoredPoint(plain))
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.InDelta(t, 25.0330, loc.Latitude, 1e-9)
	assert.InDelta(t, 121.5654, loc.Longitude, 1e-9)
}
