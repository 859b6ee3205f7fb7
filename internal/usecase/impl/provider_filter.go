package impl

import (
	"math"
	"strings"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/geo"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/usecase"
)

// buildFilter validates the raw search input and converts it into repository predicates.
// Every error returned here is an InvalidArgument raised before storage is touched.
func (srv *providerService) buildFilter(input *usecase.SearchProvidersInput) (repository.ProviderFilter, error) {
	filter := repository.ProviderFilter{
		ProviderID:  input.ProviderID,
		UserID:      input.UserID,
		ServiceType: trimmed(input.ServiceType),
		Name:        trimmed(input.Name),
	}

	if phone := trimmed(input.PhoneNumber); phone != nil {
		normalized := srv.normalizePhoneFilter(*phone)
		filter.PhoneNumber = &normalized
	}

	availability, err := parseAvailability(input.DayOfWeek, input.DesiredTime)
	if err != nil {
		return repository.ProviderFilter{}, err
	}
	filter.Availability = availability

	if token := trimmed(input.Membership); token != nil {
		membership, err := entity.ParseMembership(*token)
		if err != nil {
			return repository.ProviderFilter{}, err
		}
		filter.Membership = &membership
	}

	geoFilter, err := parseGeoFilter(input.Latitude, input.Longitude, input.RadiusKm)
	if err != nil {
		return repository.ProviderFilter{}, err
	}
	filter.Geo = geoFilter

	return filter, nil
}

// normalizePhoneFilter matches stored E.164 numbers when the input parses,
// and falls back to the literal input otherwise.
func (srv *providerService) normalizePhoneFilter(raw string) string {
	if srv.phoneNormalizer == nil {
		return raw
	}

	normalized, err := srv.phoneNormalizer.Normalize(raw)
	if err != nil {
		return raw
	}

	return normalized
}

// parseAvailability validates whichever of day and time is present. The
// predicate applies only when both are supplied.
func parseAvailability(dayToken, timeToken *string) (*repository.Availability, error) {
	dayToken, timeToken = trimmed(dayToken), trimmed(timeToken)

	var (
		day entity.DayOfWeek
		at  entity.TimeOfDay
		err error
	)
	if dayToken != nil {
		if day, err = entity.ParseDayOfWeek(*dayToken); err != nil {
			return nil, err
		}
	}
	if timeToken != nil {
		if at, err = entity.ParseTimeOfDay(*timeToken); err != nil {
			return nil, err
		}
	}

	if dayToken == nil || timeToken == nil {
		return nil, nil
	}

	return &repository.Availability{Day: day, At: at}, nil
}

// parseGeoFilter requires latitude and longitude together. A radius without a
// point is ignored; a point without a radius only orders by distance.
func parseGeoFilter(lat, lon, radiusKm *float64) (*repository.GeoFilter, error) {
	if radiusKm != nil && (math.IsNaN(*radiusKm) || *radiusKm < 0) {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("radius_km must not be negative")
	}

	switch {
	case lat == nil && lon == nil:
		return nil, nil
	case lat == nil || lon == nil:
		return nil, domainerrors.ErrInvalidArgument.WithDetails("latitude and longitude must be supplied together")
	}

	origin, err := geo.NewLocation(*lat, *lon)
	if err != nil {
		return nil, err
	}

	filter := &repository.GeoFilter{Origin: origin}
	if radiusKm != nil {
		meters := geo.KilometersToMeters(*radiusKm)
		filter.RadiusMeters = &meters
	}

	return filter, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}
