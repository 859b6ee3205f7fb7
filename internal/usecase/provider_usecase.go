package usecase

import (
	"context"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/geo"

	"github.com/google/uuid"
)

// SearchProvidersInput carries the optional search filters exactly as received.
// Tokens are validated by the usecase, before any storage access.
type SearchProvidersInput struct {
	ProviderID  *uuid.UUID
	UserID      *uuid.UUID
	ServiceType *string
	Name        *string
	PhoneNumber *string
	DayOfWeek   *string
	DesiredTime *string
	Membership  *string
	Longitude   *float64
	Latitude    *float64
	RadiusKm    *float64
	// Page and Size are nil when the caller left them out.
	Page *int
	Size *int
}

// OpenProvidersInput selects providers open on a day at a time.
type OpenProvidersInput struct {
	DayOfWeek   string
	DesiredTime string
	Page        *int
	Size        *int
}

// ProviderUserInput links a user to the new provider.
type ProviderUserInput struct {
	UserID uuid.UUID
	Role   string
}

// WorkingHoursInput is one opening interval in "HH:MM" form.
type WorkingHoursInput struct {
	DayOfWeek string
	StartTime string
	EndTime   string
}

// LocationInput is an address with an optional point.
type LocationInput struct {
	FullAddress string
	Latitude    *float64
	Longitude   *float64
}

// CreateProviderInput represents the input for registering a provider
type CreateProviderInput struct {
	Name         string
	ServiceType  string
	Email        *string
	Users        []ProviderUserInput
	Phones       []string
	WorkingHours []WorkingHoursInput
	Locations    []LocationInput
}

// UpdateProviderInput represents the input for updating provider attributes
type UpdateProviderInput struct {
	Name        *string
	ServiceType *string
	Email       *string
}

// PhoneView is the public form of a provider phone.
type PhoneView struct {
	PhoneNumber string `json:"phone_number"`
}

// WorkingHoursView is the public form of an opening interval.
type WorkingHoursView struct {
	DayOfWeek entity.DayOfWeek `json:"day_of_week"`
	StartTime entity.TimeOfDay `json:"start_time"`
	EndTime   entity.TimeOfDay `json:"end_time"`
}

// LocationView is the public form of a provider location.
type LocationView struct {
	LocationID  uuid.UUID     `json:"location_id"`
	FullAddress string        `json:"full_address"`
	GeoLocation *geo.Location `json:"geo_location"`
}

// ProviderPhoneView is a stored phone, as returned when phones are added.
type ProviderPhoneView struct {
	PhoneID     uuid.UUID `json:"phone_id"`
	PhoneNumber string    `json:"phone_number"`
}

// ProviderWorkingHoursView is a stored opening interval with its identifier.
type ProviderWorkingHoursView struct {
	WorkingHoursID uuid.UUID        `json:"working_hours_id"`
	DayOfWeek      entity.DayOfWeek `json:"day_of_week"`
	StartTime      entity.TimeOfDay `json:"start_time"`
	EndTime        entity.TimeOfDay `json:"end_time"`
}

// ProviderUserView is a user linked to a provider.
type ProviderUserView struct {
	UserID uuid.UUID           `json:"user_id"`
	Role   entity.ProviderRole `json:"role"`
}

// ProviderView is a provider with every collection, as returned by search and lookups.
type ProviderView struct {
	ProviderID   uuid.UUID          `json:"provider_id"`
	Name         string             `json:"name"`
	ServiceType  string             `json:"service_type"`
	Email        *string            `json:"email"`
	Membership   entity.Membership  `json:"membership"`
	Phones       []PhoneView        `json:"phones"`
	WorkingHours []WorkingHoursView `json:"working_hours"`
	Locations    []LocationView     `json:"locations"`
}

// OpenProviderView is the reduced view returned by the open-providers listing.
type OpenProviderView struct {
	ProviderID   uuid.UUID          `json:"provider_id"`
	Name         string             `json:"name"`
	ServiceType  string             `json:"service_type"`
	WorkingHours []WorkingHoursView `json:"working_hours"`
	Locations    []LocationView     `json:"locations"`
}

// Page is one window of an ordered listing.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

// ProviderUsecase defines provider discovery and management use cases
type ProviderUsecase interface {
	// Discovery
	SearchProviders(ctx context.Context, input *SearchProvidersInput) (*Page[ProviderView], error)
	OpenProviders(ctx context.Context, input *OpenProvidersInput) (*Page[OpenProviderView], error)
	GetProvider(ctx context.Context, providerID uuid.UUID) (*ProviderView, error)
	ProviderQRCode(ctx context.Context, providerID uuid.UUID) ([]byte, error)

	// Management, on behalf of callerID
	CreateProvider(ctx context.Context, callerID uuid.UUID, input *CreateProviderInput) (*ProviderView, error)
	UpdateProvider(ctx context.Context, callerID, providerID uuid.UUID, input *UpdateProviderInput) (*ProviderView, error)
	DeleteProvider(ctx context.Context, callerID, providerID uuid.UUID) error
	AddLocation(ctx context.Context, callerID, providerID uuid.UUID, input *LocationInput) (*LocationView, error)
	RemoveLocation(ctx context.Context, callerID, providerID, locationID uuid.UUID) error
	AddPhones(ctx context.Context, callerID, providerID uuid.UUID, numbers []string) ([]ProviderPhoneView, error)
	RemovePhone(ctx context.Context, callerID, providerID, phoneID uuid.UUID) error
	AddWorkingHours(ctx context.Context, callerID, providerID uuid.UUID, input []WorkingHoursInput) ([]ProviderWorkingHoursView, error)
	UpdateWorkingHours(ctx context.Context, callerID, providerID, workingHoursID uuid.UUID, input *WorkingHoursInput) (*ProviderWorkingHoursView, error)
	RemoveWorkingHours(ctx context.Context, callerID, providerID, workingHoursID uuid.UUID) error
	AddProviderUser(ctx context.Context, callerID, providerID uuid.UUID, input *ProviderUserInput) (*ProviderUserView, error)
	RemoveProviderUser(ctx context.Context, callerID, providerID, userID uuid.UUID) error

	// Administration
	UpdateMembership(ctx context.Context, providerID uuid.UUID, membership string) (*ProviderView, error)
}
