package impl

import (
	"context"
	"testing"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateInput(owner uuid.UUID) *usecase.CreateProviderInput {
	return &usecase.CreateProviderInput{
		Name:        " Happy Paws ",
		ServiceType: "Veterinary",
		Email:       stringPtr("care@happypaws.tw"),
		Users:       []usecase.ProviderUserInput{{UserID: owner, Role: "owner"}},
		Phones:      []string{"02 2345 6789"},
		WorkingHours: []usecase.WorkingHoursInput{
			{DayOfWeek: "SATURDAY", StartTime: "10:00", EndTime: "14:00"},
			{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "18:00"},
		},
		Locations: []usecase.LocationInput{
			{FullAddress: "No. 7, Xinyi Rd", Latitude: floatPtr(25.0330), Longitude: floatPtr(121.5654)},
			{FullAddress: "Back office"},
		},
	}
}

func TestProviderService_CreateProvider(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.phone.EXPECT().Normalize("02 2345 6789").Return("+886223456789", nil)
	fx.expectTransaction()

	var stored *entity.ServiceProvider
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ServiceProvider")).
		Run(func(_ context.Context, p *entity.ServiceProvider) { stored = p }).
		Return(nil)

	view, err := fx.service.CreateProvider(ctx, owner, validCreateInput(owner))
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "Happy Paws", view.Name)
	assert.Equal(t, entity.MembershipFree, view.Membership)
	assert.Equal(t, stored.ID, view.ProviderID)

	for _, wh := range stored.WorkingHours {
		assert.Equal(t, stored.ID, wh.ProviderID)
		assert.NotEqual(t, uuid.Nil, wh.ID)
	}
	require.Len(t, stored.Locations, 2)
	assert.NotNil(t, stored.Locations[0].GeoLocation)
	assert.Nil(t, stored.Locations[1].GeoLocation)

	require.Len(t, view.WorkingHours, 2)
	assert.Equal(t, entity.Monday, view.WorkingHours[0].DayOfWeek)
	assert.Equal(t, []usecase.PhoneView{{PhoneNumber: "+886223456789"}}, view.Phones)
}

func TestProviderService_CreateProvider_Rejected(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name    string
		caller  uuid.UUID
		mutate  func(*usecase.CreateProviderInput)
		wantErr error
	}{
		{
			name:    "blank name",
			caller:  owner,
			mutate:  func(in *usecase.CreateProviderInput) { in.Name = "  " },
			wantErr: domainerrors.ErrInvalidArgument,
		},
		{
			name:    "no locations",
			caller:  owner,
			mutate:  func(in *usecase.CreateProviderInput) { in.Locations = nil },
			wantErr: domainerrors.ErrInvalidArgument,
		},
		{
			name:   "unknown role",
			caller: owner,
			mutate: func(in *usecase.CreateProviderInput) {
				in.Users = []usecase.ProviderUserInput{{UserID: owner, Role: "ADMIN"}}
			},
			wantErr: domainerrors.ErrInvalidArgument,
		},
		{
			name:   "start after end",
			caller: owner,
			mutate: func(in *usecase.CreateProviderInput) {
				in.WorkingHours = []usecase.WorkingHoursInput{{DayOfWeek: "MONDAY", StartTime: "18:00", EndTime: "09:00"}}
			},
			wantErr: domainerrors.ErrInvalidArgument,
		},
		{
			name:   "two intervals on one day",
			caller: owner,
			mutate: func(in *usecase.CreateProviderInput) {
				in.WorkingHours = []usecase.WorkingHoursInput{
					{DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "12:00"},
					{DayOfWeek: "monday", StartTime: "13:00", EndTime: "17:00"},
				}
			},
			wantErr: domainerrors.ErrInvalidArgument,
		},
		{
			name:   "location with half a point",
			caller: owner,
			mutate: func(in *usecase.CreateProviderInput) {
				in.Locations = []usecase.LocationInput{{FullAddress: "Somewhere", Latitude: floatPtr(10)}}
			},
			wantErr: domainerrors.ErrInvalidArgument,
		},
		{
			name:    "caller not listed",
			caller:  uuid.New(),
			mutate:  func(*usecase.CreateProviderInput) {},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:   "caller only a moderator",
			caller: owner,
			mutate: func(in *usecase.CreateProviderInput) {
				in.Users = []usecase.ProviderUserInput{{UserID: owner, Role: "MODERATOR"}}
			},
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProviderService(t)
			fx.phone.EXPECT().Normalize(mock.Anything).Return("+886223456789", nil).Maybe()

			input := validCreateInput(owner)
			tt.mutate(input)

			view, err := fx.service.CreateProvider(context.Background(), tt.caller, input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, view)
		})
	}
}

func TestProviderService_CreateProvider_DuplicatePhone(t *testing.T) {
	fx := createTestProviderService(t)
	owner := uuid.New()

	input := validCreateInput(owner)
	input.Phones = []string{"02 2345 6789", "+886 2 2345 6789"}
	fx.phone.EXPECT().Normalize(mock.Anything).Return("+886223456789", nil)

	_, err := fx.service.CreateProvider(context.Background(), owner, input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestProviderService_CreateProvider_Conflict(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.phone.EXPECT().Normalize(mock.Anything).Return("+886223456789", nil)
	fx.expectTransaction()
	fx.repo.EXPECT().Create(ctx, mock.Anything).
		Return(domainerrors.ErrProviderConflict.WithDetails("phone already registered"))

	_, err := fx.service.CreateProvider(ctx, owner, validCreateInput(owner))
	assert.ErrorIs(t, err, domainerrors.ErrProviderConflict)
}

func TestProviderService_UpdateProvider(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	owner, moderator := uuid.New(), uuid.New()
	before := newProvider("Clinic", entity.MembershipFree, owner)
	before.Users = append(before.Users, entity.UserProviderAssociation{UserID: moderator, ProviderID: before.ID, Role: entity.ProviderRoleModerator})
	after := newProvider("Clinic 24h", entity.MembershipFree, owner)
	after.ID = before.ID

	fx.expectTransaction()
	fx.repo.EXPECT().FindByID(ctx, before.ID).Return(before, nil).Once()
	fx.repo.EXPECT().Update(ctx, before.ID, repository.ProviderUpdate{Name: stringPtr("Clinic 24h")}).Return(nil)
	fx.repo.EXPECT().FindByID(ctx, before.ID).Return(after, nil).Once()

	view, err := fx.service.UpdateProvider(ctx, moderator, before.ID, &usecase.UpdateProviderInput{
		Name:        stringPtr(" Clinic 24h "),
		ServiceType: stringPtr("Veterinary"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Clinic 24h", view.Name)
}

func TestProviderService_UpdateProvider_NoChange(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	owner := uuid.New()
	provider := newProvider("Clinic", entity.MembershipFree, owner)

	fx.expectTransaction()
	fx.repo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil).Once()

	view, err := fx.service.UpdateProvider(ctx, owner, provider.ID, &usecase.UpdateProviderInput{Name: stringPtr("Clinic")})
	require.NoError(t, err)
	assert.Equal(t, "Clinic", view.Name)
}

func TestProviderService_UpdateProvider_Forbidden(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	provider := newProvider("Clinic", entity.MembershipFree, uuid.New())

	fx.expectTransaction()
	fx.repo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)

	_, err := fx.service.UpdateProvider(ctx, uuid.New(), provider.ID, &usecase.UpdateProviderInput{Name: stringPtr("Mine now")})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProviderService_UpdateProvider_NotFound(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.expectTransaction()
	fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProviderNotFound)

	_, err := fx.service.UpdateProvider(ctx, uuid.New(), id, &usecase.UpdateProviderInput{Name: stringPtr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotFound)
}

func TestProviderService_DeleteProvider(t *testing.T) {
	owner, moderator := uuid.New(), uuid.New()

	t.Run("owner deletes", func(t *testing.T) {
		fx := createTestProviderService(t)
		ctx := context.Background()
		provider := newProvider("Clinic", entity.MembershipFree, owner)

		fx.expectTransaction()
		fx.repo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
		fx.repo.EXPECT().Delete(ctx, provider.ID).Return(nil)

		require.NoError(t, fx.service.DeleteProvider(ctx, owner, provider.ID))
	})

	t.Run("moderator may not delete", func(t *testing.T) {
		fx := createTestProviderService(t)
		ctx := context.Background()
		provider := newProvider("Clinic", entity.MembershipFree, owner)
		provider.Users = append(provider.Users, entity.UserProviderAssociation{UserID: moderator, ProviderID: provider.ID, Role: entity.ProviderRoleModerator})

		fx.expectTransaction()
		fx.repo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)

		err := fx.service.DeleteProvider(ctx, moderator, provider.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestProviderService_AddLocation(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	owner := uuid.New()
	provider := newProvider("Clinic", entity.MembershipFree, owner)

	fx.expectTransaction()
	fx.repo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
	fx.repo.EXPECT().AddLocation(ctx, mock.MatchedBy(func(l *entity.ProviderLocation) bool {
		return l.ProviderID == provider.ID && l.FullAddress == "Branch" && l.GeoLocation != nil
	})).Return(nil)

	view, err := fx.service.AddLocation(ctx, owner, provider.ID, &usecase.LocationInput{
		FullAddress: " Branch ",
		Latitude:    floatPtr(24.1477),
		Longitude:   floatPtr(120.6736),
	})
	require.NoError(t, err)
	assert.Equal(t, "Branch", view.FullAddress)
	assert.NotEqual(t, uuid.Nil, view.LocationID)
}

func TestProviderService_AddLocation_InvalidPoint(t *testing.T) {
	fx := createTestProviderService(t)

	_, err := fx.service.AddLocation(context.Background(), uuid.New(), uuid.New(), &usecase.LocationInput{
		FullAddress: "Branch",
		Latitude:    floatPtr(95),
		Longitude:   floatPtr(0),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestProviderService_RemoveLocation(t *testing.T) {
	owner := uuid.New()

	t.Run("removes one of several", func(t *testing.T) {
		fx := createTestProviderService(t)
		ctx := context.Background()
		provider := newProvider("Clinic", entity.MembershipFree, owner)
		locationID := provider.Locations[0].ID

		fx.expectTransaction()
		fx.repo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
		fx.repo.EXPECT().CountLocations(ctx, provider.ID).Return(int64(2), nil)
		fx.repo.EXPECT().RemoveLocation(ctx, provider.ID, locationID).Return(nil)

		require.NoError(t, fx.service.RemoveLocation(ctx, owner, provider.ID, locationID))
	})

	t.Run("keeps the last location", func(t *testing.T) {
		fx := createTestProviderService(t)
		ctx := context.Background()
		provider := newProvider("Clinic", entity.MembershipFree, owner)

		fx.expectTransaction()
		fx.repo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
		fx.repo.EXPECT().CountLocations(ctx, provider.ID).Return(int64(1), nil)

		err := fx.service.RemoveLocation(ctx, owner, provider.ID, provider.Locations[0].ID)
		assert.ErrorIs(t, err, domainerrors.ErrLastLocation)
	})

	t.Run("location of another provider", func(t *testing.T) {
		fx := createTestProviderService(t)
		ctx := context.Background()
		provider := newProvider("Clinic", entity.MembershipFree, owner)

		fx.expectTransaction()
		fx.repo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)

		err := fx.service.RemoveLocation(ctx, owner, provider.ID, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
	})
}

func TestProviderService_UpdateMembership(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	provider := newProvider("Clinic", entity.MembershipPremium, uuid.New())
	fx.repo.EXPECT().UpdateMembership(ctx, provider.ID, entity.MembershipPremium).Return(nil)
	fx.repo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)

	view, err := fx.service.UpdateMembership(ctx, provider.ID, "premium")
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipPremium, view.Membership)
}

func TestProviderService_UpdateMembership_Invalid(t *testing.T) {
	fx := createTestProviderService(t)

	_, err := fx.service.UpdateMembership(context.Background(), uuid.New(), "GOLD")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestProviderService_UpdateMembership_NotFound(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().UpdateMembership(ctx, id, entity.MembershipFree).Return(repository.ErrProviderNotFound)

	_, err := fx.service.UpdateMembership(ctx, id, "FREE")
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotFound)
}
