// Package geo holds the latitude/longitude value object and the codec that
// moves it in and out of the stored geography representation.
package geo

import (
	"fmt"

	domainerrors "pawtrack/internal/domain/errors"

	"github.com/paulmach/orb"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewLocation validates the coordinate ranges. Bounds are inclusive.
func NewLocation(latitude, longitude float64) (Location, error) {
	if err := validate(latitude, longitude); err != nil {
		return Location{}, domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	return Location{Latitude: latitude, Longitude: longitude}, nil
}

// Point returns the orb point. orb stores X (longitude) first.
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

func fromPoint(p orb.Point) Location {
	return Location{Latitude: p.Lat(), Longitude: p.Lon()}
}

func validate(latitude, longitude float64) error {
	// NaN fails both comparisons, so test the positive range.
	if !(latitude >= MinLatitude && latitude <= MaxLatitude) {
		return fmt.Errorf("latitude %v out of range [-90, 90]", latitude)
	}
	if !(longitude >= MinLongitude && longitude <= MaxLongitude) {
		return fmt.Errorf("longitude %v out of range [-180, 180]", longitude)
	}

	return nil
}
