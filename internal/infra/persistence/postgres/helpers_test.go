package postgres

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqliteGeoDriver = "sqlite3_geo"

var registerSQLiteGeo sync.Once

// sqliteSchema mirrors schema.sql with SQLite column types.
var sqliteSchema = []string{
	`CREATE TABLE service_providers (
		provider_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		service_type TEXT NOT NULL,
		email TEXT,
		membership TEXT NOT NULL DEFAULT 'FREE'
	)`,
	`CREATE TABLE user_provider_associations (
		user_id TEXT NOT NULL,
		provider_id TEXT NOT NULL REFERENCES service_providers(provider_id) ON DELETE CASCADE,
		role TEXT NOT NULL,
		PRIMARY KEY (user_id, provider_id)
	)`,
	`CREATE TABLE provider_phones (
		phone_id TEXT PRIMARY KEY,
		provider_id TEXT NOT NULL REFERENCES service_providers(provider_id) ON DELETE CASCADE,
		phone_number TEXT NOT NULL,
		UNIQUE (provider_id, phone_number)
	)`,
	`CREATE TABLE working_hours (
		working_hours_id TEXT PRIMARY KEY,
		provider_id TEXT NOT NULL REFERENCES service_providers(provider_id) ON DELETE CASCADE,
		day_of_week TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		UNIQUE (provider_id, day_of_week)
	)`,
	`CREATE TABLE service_provider_locations (
		location_id TEXT PRIMARY KEY,
		provider_id TEXT NOT NULL REFERENCES service_providers(provider_id) ON DELETE CASCADE,
		full_address TEXT NOT NULL,
		geo_location TEXT
	)`,
}

// newTestDB opens a private in-memory database with geo_distance_m backed by the geo codec.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	registerSQLiteGeo.Do(func() {
		sql.Register(sqliteGeoDriver, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc(geoDistanceFunc, func(stored string, lat, lon float64) (float64, error) {
					return geo.DistanceToStored(geo.StoredPoint(stored), geo.Location{Latitude: lat, Longitude: lon})
				}, true)
			},
		})
	})

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=1"
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: sqliteGeoDriver, DSN: dsn}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// The shared in-memory database lives as long as one connection stays open.
	sqlDB.SetMaxIdleConns(4)
	sqlDB.SetConnMaxIdleTime(0)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range sqliteSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func newTestRepository(t *testing.T) (*providerRepository, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	repo, ok := NewProviderRepository(newPool(db, time.Second)).(*providerRepository)
	require.True(t, ok)

	return repo, db
}

type providerFixture struct {
	name        string
	serviceType string
	membership  entity.Membership
	day         entity.DayOfWeek
	start, end  string
	location    *geo.Location
	owner       uuid.UUID
	phone       string
}

func (f providerFixture) build() *entity.ServiceProvider {
	if f.serviceType == "" {
		f.serviceType = "Veterinary"
	}
	if f.membership == "" {
		f.membership = entity.MembershipFree
	}
	if f.day == "" {
		f.day = entity.Monday
	}
	if f.start == "" {
		f.start = "09:00"
	}
	if f.end == "" {
		f.end = "17:00"
	}
	if f.owner == uuid.Nil {
		f.owner = uuid.New()
	}
	if f.phone == "" {
		f.phone = "+1212555" + uuid.NewString()[:4]
	}

	return &entity.ServiceProvider{
		Name:        f.name,
		ServiceType: f.serviceType,
		Membership:  f.membership,
		Users:       []entity.UserProviderAssociation{{UserID: f.owner, Role: entity.ProviderRoleOwner}},
		Phones:      []entity.ProviderPhone{{PhoneNumber: f.phone}},
		WorkingHours: []entity.WorkingHours{{
			DayOfWeek: f.day,
			StartTime: entity.MustTimeOfDay(f.start),
			EndTime:   entity.MustTimeOfDay(f.end),
		}},
		Locations: []entity.ProviderLocation{{FullAddress: f.name + " street", GeoLocation: f.location}},
	}
}

func seed(t *testing.T, repo *providerRepository, fixtures ...providerFixture) []*entity.ServiceProvider {
	t.Helper()

	providers := make([]*entity.ServiceProvider, 0, len(fixtures))
	for _, f := range fixtures {
		p := f.build()
		require.NoError(t, repo.Create(t.Context(), p))
		providers = append(providers, p)
	}

	return providers
}

func names(providers []*entity.ServiceProvider) []string {
	out := make([]string, 0, len(providers))
	for _, p := range providers {
		out = append(out, p.Name)
	}

	return out
}
