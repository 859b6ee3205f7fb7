package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// MeanEarthRadiusMeters is the sphere PostGIS measures geography distances on
	// when use_spheroid is false.
	MeanEarthRadiusMeters = 6371008.8

	// RadiusToleranceMeters absorbs floating point noise at the radius boundary.
	RadiusToleranceMeters = 1e-3

	// orb measures on a sphere of the equatorial radius.
	sphereScale = MeanEarthRadiusMeters / orb.EarthRadius
)

// Distance returns the great-circle distance in meters on the mean earth sphere.
func Distance(a, b Location) float64 {
	return orbgeo.DistanceHaversine(a.Point(), b.Point()) * sphereScale
}

// Destination returns the point meters away from origin along bearing degrees
// (0 is north, 90 east), measured the same way as Distance.
func Destination(origin Location, bearing, meters float64) (Location, error) {
	p := orbgeo.PointAtBearingAndDistance(origin.Point(), bearing, meters/sphereScale)

	return NewLocation(p.Lat(), p.Lon())
}

// KilometersToMeters converts a search radius into the unit used by the storage engine.
func KilometersToMeters(km float64) float64 {
	return km * 1000
}

// DistanceToStored decodes a stored point and measures its distance to origin.
func DistanceToStored(stored StoredPoint, origin Location) (float64, error) {
	loc, err := Decode(stored)
	if err != nil {
		return 0, err
	}
	if loc == nil {
		return math.Inf(1), nil
	}

	return Distance(origin, *loc), nil
}
