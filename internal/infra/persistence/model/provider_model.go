package model

import (
	"github.com/google/uuid"
)

// ServiceProviderModel is the GORM-specific struct for the 'service_providers' table.
type ServiceProviderModel struct {
	ProviderID   uuid.UUID                      `gorm:"column:provider_id;type:uuid;primaryKey"`
	Name         string                         `gorm:"type:text;not null;index:idx_service_providers_name"`
	ServiceType  string                         `gorm:"type:text;not null;index:idx_service_providers_service_type"`
	Email        *string                        `gorm:"type:text"`
	Membership   string                         `gorm:"type:varchar(16);not null;default:FREE"`
	Users        []UserProviderAssociationModel `gorm:"foreignKey:ProviderID;references:ProviderID;constraint:OnDelete:CASCADE"`
	Phones       []ProviderPhoneModel           `gorm:"foreignKey:ProviderID;references:ProviderID;constraint:OnDelete:CASCADE"`
	WorkingHours []WorkingHoursModel            `gorm:"foreignKey:ProviderID;references:ProviderID;constraint:OnDelete:CASCADE"`
	Locations    []ServiceProviderLocationModel `gorm:"foreignKey:ProviderID;references:ProviderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceProviderModel) TableName() string {
	return "service_providers"
}

// UserProviderAssociationModel is the GORM-specific struct for the 'user_provider_associations' table.
type UserProviderAssociationModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role       string    `gorm:"type:varchar(16);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserProviderAssociationModel) TableName() string {
	return "user_provider_associations"
}

// ProviderPhoneModel is the GORM-specific struct for the 'provider_phones' table.
type ProviderPhoneModel struct {
	PhoneID     uuid.UUID `gorm:"column:phone_id;type:uuid;primaryKey"`
	ProviderID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_provider_phone"`
	PhoneNumber string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_provider_phone"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderPhoneModel) TableName() string {
	return "provider_phones"
}

// WorkingHoursModel is the GORM-specific struct for the 'working_hours' table.
type WorkingHoursModel struct {
	WorkingHoursID uuid.UUID `gorm:"column:working_hours_id;type:uuid;primaryKey"`
	ProviderID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_provider_day"`
	DayOfWeek      string    `gorm:"type:varchar(16);not null;uniqueIndex:uq_provider_day"`
	StartTime      ClockTime `gorm:"type:time;not null"`
	EndTime        ClockTime `gorm:"type:time;not null"`
}

// TableName explicitly sets the table name for GORM.
func (WorkingHoursModel) TableName() string {
	return "working_hours"
}

// ServiceProviderLocationModel is the GORM-specific struct for the 'service_provider_locations' table.
// GeoLocation holds the hex EWKB text of a geography(Point, 4326) value.
type ServiceProviderLocationModel struct {
	LocationID  uuid.UUID `gorm:"column:location_id;type:uuid;primaryKey"`
	ProviderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FullAddress string    `gorm:"type:text;not null"`
	GeoLocation *string   `gorm:"column:geo_location;type:geography(Point,4326)"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceProviderLocationModel) TableName() string {
	return "service_provider_locations"
}
