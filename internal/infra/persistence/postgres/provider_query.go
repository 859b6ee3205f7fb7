package postgres

import (
	"strconv"
	"strings"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/infra/persistence/model"
	"pawtrack/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	providerIDColumn = "service_providers.provider_id"
	nameOrder        = "LOWER(service_providers.name)"
	serviceTypeOrder = "service_providers.service_type"
)

// providerQuery composes the filtered, ordered provider listing. Only root
// rows are selected here; collections are preloaded afterwards.
type providerQuery struct {
	db      *gorm.DB
	dialect spatialDialect
}

func newProviderQuery(db *gorm.DB) *providerQuery {
	return &providerQuery{db: db, dialect: spatialDialectFor(db)}
}

// search applies every set predicate of filter, then the search ordering.
func (q *providerQuery) search(filter repository.ProviderFilter, page repository.Pagination) *gorm.DB {
	tx := q.db.Model(&model.ServiceProviderModel{})

	if filter.ProviderID != nil {
		tx = tx.Where(providerIDColumn+" = ?", *filter.ProviderID)
	}
	if filter.UserID != nil {
		tx = tx.Where(exists("user_provider_associations upa", "upa.user_id = ?"), *filter.UserID)
	}
	if filter.ServiceType != nil {
		tx = tx.Where("service_providers.service_type = ?", *filter.ServiceType)
	}
	if filter.Name != nil {
		tx = tx.Where(nameOrder+" LIKE ? ESCAPE '"+util.LikeEscapeChar+"'", util.ContainsPattern(*filter.Name))
	}
	if filter.PhoneNumber != nil {
		tx = tx.Where(exists("provider_phones pp", "pp.phone_number = ?"), *filter.PhoneNumber)
	}
	if a := filter.Availability; a != nil {
		tx = tx.Where(
			exists("working_hours wh", "wh.day_of_week = ? AND wh.start_time <= ? AND wh.end_time >= ?"),
			string(a.Day), model.ClockTime(a.At), model.ClockTime(a.At),
		)
	}
	if filter.Membership != nil {
		tx = tx.Where("service_providers.membership = ?", string(*filter.Membership))
	}

	order := clause.Expr{SQL: nameOrder + ", " + serviceTypeOrder + ", " + providerIDColumn, WithoutParentheses: true}

	if g := filter.Geo; g != nil {
		if g.RadiusMeters != nil {
			within := q.dialect.within(g.Origin, *g.RadiusMeters)
			tx = tx.Where(exists("service_provider_locations l", "l.geo_location IS NOT NULL AND "+within.SQL), within.Vars...)
		}

		// Nearest location first; providers without any located address go last.
		dist := q.dialect.distance(g.Origin)
		nearest := "(SELECT MIN(" + dist.SQL + ") FROM service_provider_locations l " +
			"WHERE l.provider_id = " + providerIDColumn + " AND l.geo_location IS NOT NULL)"

		vars := make([]any, 0, 2*len(dist.Vars))
		vars = append(vars, dist.Vars...)
		vars = append(vars, dist.Vars...)

		order = clause.Expr{
			SQL:                "CASE WHEN " + nearest + " IS NULL THEN 1 ELSE 0 END, " + nearest + ", " + order.SQL,
			Vars:               vars,
			WithoutParentheses: true,
		}
	}

	return tx.
		Order(clause.OrderBy{Expression: order}).
		Offset(page.Offset()).
		Limit(page.Size)
}

// open inner-joins the single working-hours row that covers availability.
// Each provider has at most one row per day, so the join never duplicates providers.
func (q *providerQuery) open(availability repository.Availability, page repository.Pagination) *gorm.DB {
	at := model.ClockTime(availability.At)

	return q.db.Model(&model.ServiceProviderModel{}).
		Select("service_providers.*").
		Joins(
			"JOIN working_hours wh ON wh.provider_id = "+providerIDColumn+
				" AND wh.day_of_week = ? AND wh.start_time <= ? AND wh.end_time >= ?",
			string(availability.Day), at, at,
		).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL: strings.Join([]string{
				nameOrder,
				serviceTypeOrder,
				rankCase("service_providers.membership", entity.Memberships()),
				rankCase("wh.day_of_week", entity.DaysOfWeek()),
				providerIDColumn,
			}, ", "),
			WithoutParentheses: true,
		}}).
		Offset(page.Offset()).
		Limit(page.Size)
}

// withCollections eager loads the whole aggregate for the selected root rows.
func withCollections(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Users", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_id")
		}).
		Preload("Phones", func(db *gorm.DB) *gorm.DB {
			return db.Order("phone_number")
		}).
		Preload("WorkingHours").
		Preload("Locations", func(db *gorm.DB) *gorm.DB {
			return db.Order("full_address, location_id")
		})
}

// exists renders a correlated EXISTS over a child table aliased in from.
func exists(from, cond string) string {
	alias := from[strings.LastIndexByte(from, ' ')+1:]

	return "EXISTS (SELECT 1 FROM " + from + " WHERE " + alias + ".provider_id = " + providerIDColumn + " AND " + cond + ")"
}

// rankCase maps enum tokens to their position, ranked values first, unknown last.
func rankCase[T ~string](column string, ranked []T) string {
	var b strings.Builder
	b.WriteString("CASE ")
	b.WriteString(column)
	for i, v := range ranked {
		b.WriteString(" WHEN '")
		b.WriteString(string(v))
		b.WriteString("' THEN ")
		b.WriteString(strconv.Itoa(i + 1))
	}
	b.WriteString(" ELSE ")
	b.WriteString(strconv.Itoa(len(ranked) + 1))
	b.WriteString(" END")

	return b.String()
}
