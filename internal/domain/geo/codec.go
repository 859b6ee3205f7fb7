package geo

import (
	"encoding/hex"
	"strings"

	domainerrors "pawtrack/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
)

// SRID is the spatial reference every stored point is tagged with (WGS84).
const SRID = 4326

// StoredPoint is the hex EWKB text form of a geography point, which is what
// PostGIS accepts on input and returns on output for geography columns.
type StoredPoint string

// Encode converts a location into its stored form.
func Encode(loc Location) (StoredPoint, error) {
	if err := validate(loc.Latitude, loc.Longitude); err != nil {
		return "", domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	encoded, err := ewkb.MarshalToHex(loc.Point(), SRID)
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("failed to encode point: " + err.Error())
	}

	return StoredPoint(strings.ToUpper(encoded)), nil
}

// Decode parses a stored point. An empty value means no point is set and
// yields nil without error; anything unreadable is reported as corruption.
func Decode(stored StoredPoint) (*Location, error) {
	raw := strings.TrimSpace(string(stored))
	if raw == "" {
		return nil, nil
	}

	data, err := hex.DecodeString(raw)
	if err != nil {
		return nil, corrupt("stored point is not valid hex")
	}

	geom, srid, err := ewkb.Unmarshal(data)
	if err != nil {
		return nil, corrupt("stored point is not valid EWKB: " + err.Error())
	}

	// Plain WKB carries no SRID; geography columns always imply 4326.
	if srid != 0 && srid != SRID {
		return nil, corrupt("unexpected SRID in stored point")
	}

	point, ok := geom.(orb.Point)
	if !ok {
		return nil, corrupt("stored geometry is a " + geom.GeoJSONType() + ", not a Point")
	}

	loc := fromPoint(point)
	if err := validate(loc.Latitude, loc.Longitude); err != nil {
		return nil, corrupt(err.Error())
	}

	return &loc, nil
}

// MustEncode panics on invalid input. Intended for fixtures.
func MustEncode(loc Location) StoredPoint {
	stored, err := Encode(loc)
	if err != nil {
		panic(err)
	}

	return stored
}

func corrupt(details string) error {
	return domainerrors.ErrDataCorruption.WithDetails(details)
}
