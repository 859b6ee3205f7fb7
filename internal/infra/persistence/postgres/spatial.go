package postgres

import (
	"pawtrack/internal/domain/geo"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// geoDistanceFunc is the scalar function non-PostGIS engines must provide:
// geo_distance_m(stored_point_text, latitude, longitude) -> meters.
const geoDistanceFunc = "geo_distance_m"

// spatialDialect renders great-circle distance between the location alias `l`
// and a query point. Distances are in meters.
type spatialDialect interface {
	distance(origin geo.Location) clause.Expr
	within(origin geo.Location, radiusMeters float64) clause.Expr
}

func spatialDialectFor(db *gorm.DB) spatialDialect {
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return postgisDialect{}
	}

	return functionDialect{}
}

// postgisDialect uses geography functions on a sphere. ST_MakePoint takes longitude first.
type postgisDialect struct{}

func (postgisDialect) distance(origin geo.Location) clause.Expr {
	return clause.Expr{
		SQL:  "ST_Distance(l.geo_location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, false)",
		Vars: []any{origin.Longitude, origin.Latitude},
	}
}

func (postgisDialect) within(origin geo.Location, radiusMeters float64) clause.Expr {
	return clause.Expr{
		SQL:  "ST_DWithin(l.geo_location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?, false)",
		Vars: []any{origin.Longitude, origin.Latitude, radiusMeters + geo.RadiusToleranceMeters},
	}
}

// functionDialect delegates to geo_distance_m, which the driver registers
// from the same codec the application uses.
type functionDialect struct{}

func (functionDialect) distance(origin geo.Location) clause.Expr {
	return clause.Expr{
		SQL:  geoDistanceFunc + "(l.geo_location, ?, ?)",
		Vars: []any{origin.Latitude, origin.Longitude},
	}
}

func (d functionDialect) within(origin geo.Location, radiusMeters float64) clause.Expr {
	dist := d.distance(origin)

	return clause.Expr{
		SQL:  dist.SQL + " <= ?",
		Vars: append(dist.Vars, radiusMeters+geo.RadiusToleranceMeters),
	}
}
