package postgres

import (
	"testing"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/geo"

	"github.com/stretchr/testify/assert"
)

func TestRankCase(t *testing.T) {
	t.Parallel()

	got := rankCase("service_providers.membership", entity.Memberships())
	assert.Equal(t, "CASE service_providers.membership WHEN 'PREMIUM' THEN 1 WHEN 'FREE' THEN 2 ELSE 3 END", got)

	days := rankCase("wh.day_of_week", entity.DaysOfWeek())
	assert.Contains(t, days, "WHEN 'SUNDAY' THEN 1")
	assert.Contains(t, days, "WHEN 'SATURDAY' THEN 7 ELSE 8 END")
}

func TestExists(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"EXISTS (SELECT 1 FROM provider_phones pp WHERE pp.provider_id = service_providers.provider_id AND pp.phone_number = ?)",
		exists("provider_phones pp", "pp.phone_number = ?"),
	)
}

func TestSpatialDialects(t *testing.T) {
	t.Parallel()

	origin := geo.Location{Latitude: 25.0330, Longitude: 121.5654}

	t.Run("postgis takes longitude first", func(t *testing.T) {
		t.Parallel()

		d := postgisDialect{}
		dist := d.distance(origin)
		assert.Contains(t, dist.SQL, "ST_MakePoint(?, ?)")
		assert.Equal(t, []any{121.5654, 25.0330}, dist.Vars)

		within := d.within(origin, 1000)
		assert.Contains(t, within.SQL, "ST_DWithin(")
		assert.Equal(t, []any{121.5654, 25.0330, 1000 + geo.RadiusToleranceMeters}, within.Vars)
	})

	t.Run("function dialect takes latitude first", func(t *testing.T) {
		t.Parallel()

		d := functionDialect{}
		within := d.within(origin, 1000)
		assert.Equal(t, "geo_distance_m(l.geo_location, ?, ?) <= ?", within.SQL)
		assert.Equal(t, []any{25.0330, 121.5654, 1000 + geo.RadiusToleranceMeters}, within.Vars)
	})
}
