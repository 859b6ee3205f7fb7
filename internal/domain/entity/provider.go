package entity

import (
	"pawtrack/internal/domain/geo"

	"github.com/google/uuid"
)

// ServiceProvider is the provider aggregate: the provider row plus every
// collection it owns, always loaded together.
type ServiceProvider struct {
	ID           uuid.UUID
	Name         string
	ServiceType  string
	Email        *string
	Membership   Membership
	Users        []UserProviderAssociation
	Phones       []ProviderPhone
	WorkingHours []WorkingHours
	Locations    []ProviderLocation
}

// UserProviderAssociation links a user to a provider with a role.
type UserProviderAssociation struct {
	UserID     uuid.UUID
	ProviderID uuid.UUID
	Role       ProviderRole
}

// ProviderPhone is an E.164 phone number of a provider.
type ProviderPhone struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	PhoneNumber string
}

// ProviderLocation is a street address of a provider. GeoLocation is nil
// when no point has been recorded.
type ProviderLocation struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	FullAddress string
	GeoLocation *geo.Location
}

// RoleOf returns the role userID holds on the provider.
func (p *ServiceProvider) RoleOf(userID uuid.UUID) (ProviderRole, bool) {
	for _, u := range p.Users {
		if u.UserID == userID {
			return u.Role, true
		}
	}

	return "", false
}

// ProviderMembership is the accessor used with SortByMembership.
func ProviderMembership(p *ServiceProvider) Membership {
	return p.Membership
}
