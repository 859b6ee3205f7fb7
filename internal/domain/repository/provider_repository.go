// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/geo"
	"pawtrack/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for provider persistence.
var (
	// ErrProviderNotFound is returned when a provider does not exist.
	ErrProviderNotFound = errors.New("service provider not found")
	// ErrLocationNotFound is returned when a location does not belong to the provider or does not exist.
	ErrLocationNotFound = errors.New("provider location not found")
	// ErrPhoneNotFound is returned when a phone does not belong to the provider or does not exist.
	ErrPhoneNotFound = errors.New("provider phone not found")
	// ErrWorkingHoursNotFound is returned when a working hours entry does not belong to the provider or does not exist.
	ErrWorkingHoursNotFound = errors.New("provider working hours not found")
	// ErrUserLinkNotFound is returned when the user is not linked to the provider.
	ErrUserLinkNotFound = errors.New("provider user link not found")
)

// Availability selects providers open on Day at At.
type Availability struct {
	Day entity.DayOfWeek
	At  entity.TimeOfDay
}

// GeoFilter activates distance ordering from Origin. With RadiusMeters set,
// providers without a location inside the radius are excluded.
type GeoFilter struct {
	Origin       geo.Location
	RadiusMeters *float64
}

// ProviderFilter holds already-validated search predicates. Nil fields are not applied.
type ProviderFilter struct {
	ProviderID   *uuid.UUID
	UserID       *uuid.UUID
	ServiceType  *string
	Name         *string
	PhoneNumber  *string
	Availability *Availability
	Membership   *entity.Membership
	Geo          *GeoFilter
}

// Pagination is a 1-based page window.
type Pagination struct {
	Page int
	Size int
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

// ProviderUpdate carries the mutable provider attributes. Nil fields are left untouched.
type ProviderUpdate struct {
	Name        *string
	ServiceType *string
	Email       *string
}

// ProviderRepository defines provider aggregate persistence.
type ProviderRepository interface {
	// Search returns one page of providers matching filter, each with all collections loaded.
	Search(ctx context.Context, filter ProviderFilter, page Pagination) ([]*entity.ServiceProvider, error)

	// FindOpen returns one page of providers with an interval covering availability.
	FindOpen(ctx context.Context, availability Availability, page Pagination) ([]*entity.ServiceProvider, error)

	// FindByID loads a single provider aggregate.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error)

	// Create persists a provider with all of its collections.
	Create(ctx context.Context, provider *entity.ServiceProvider) error

	// Update applies the non-nil fields of update.
	Update(ctx context.Context, id uuid.UUID, update ProviderUpdate) error

	// UpdateMembership changes the listing tier.
	UpdateMembership(ctx context.Context, id uuid.UUID, membership entity.Membership) error

	// Delete removes the provider and everything it owns.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddLocation attaches a new location to an existing provider.
	AddLocation(ctx context.Context, location *entity.ProviderLocation) error

	// RemoveLocation deletes one location of the provider.
	RemoveLocation(ctx context.Context, providerID, locationID uuid.UUID) error

	// CountLocations returns how many locations the provider has.
	CountLocations(ctx context.Context, providerID uuid.UUID) (int64, error)

	// AddPhones attaches phones to an existing provider.
	AddPhones(ctx context.Context, phones []*entity.ProviderPhone) error

	// RemovePhone deletes one phone of the provider.
	RemovePhone(ctx context.Context, providerID, phoneID uuid.UUID) error

	// CountPhones returns how many phones the provider has.
	CountPhones(ctx context.Context, providerID uuid.UUID) (int64, error)

	// AddWorkingHours attaches working hours entries to an existing provider.
	AddWorkingHours(ctx context.Context, hours []*entity.WorkingHours) error

	// UpdateWorkingHours replaces the day and interval of one entry.
	UpdateWorkingHours(ctx context.Context, hours *entity.WorkingHours) error

	// RemoveWorkingHours deletes one working hours entry of the provider.
	RemoveWorkingHours(ctx context.Context, providerID, workingHoursID uuid.UUID) error

	// CountWorkingHours returns how many working hours entries the provider has.
	CountWorkingHours(ctx context.Context, providerID uuid.UUID) (int64, error)

	// AddUser links a user to the provider.
	AddUser(ctx context.Context, link *entity.UserProviderAssociation) error

	// RemoveUser unlinks a user from the provider.
	RemoveUser(ctx context.Context, providerID, userID uuid.UUID) error

	// CountOwners returns how many users hold the owner role.
	CountOwners(ctx context.Context, providerID uuid.UUID) (int64, error)
}
