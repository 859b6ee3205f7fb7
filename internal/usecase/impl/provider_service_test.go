package impl

import (
	"context"
	"testing"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/geo"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProviderService_SearchProviders_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SearchProvidersInput
	}{
		{name: "unknown day", input: usecase.SearchProvidersInput{DayOfWeek: stringPtr("FUNDAY"), DesiredTime: stringPtr("10:00")}},
		{name: "unknown day without time", input: usecase.SearchProvidersInput{DayOfWeek: stringPtr("FUNDAY")}},
		{name: "bad time", input: usecase.SearchProvidersInput{DayOfWeek: stringPtr("MONDAY"), DesiredTime: stringPtr("25:00")}},
		{name: "unknown membership", input: usecase.SearchProvidersInput{Membership: stringPtr("GOLD")}},
		{name: "latitude without longitude", input: usecase.SearchProvidersInput{Latitude: floatPtr(25)}},
		{name: "latitude out of range", input: usecase.SearchProvidersInput{Latitude: floatPtr(91), Longitude: floatPtr(0)}},
		{name: "longitude out of range", input: usecase.SearchProvidersInput{Latitude: floatPtr(0), Longitude: floatPtr(-181)}},
		{name: "negative radius", input: usecase.SearchProvidersInput{Latitude: floatPtr(0), Longitude: floatPtr(0), RadiusKm: floatPtr(-1)}},
		{name: "negative page", input: usecase.SearchProvidersInput{Page: intPtr(-1)}},
		{name: "zero page", input: usecase.SearchProvidersInput{Page: intPtr(0), Size: intPtr(5)}},
		{name: "zero size", input: usecase.SearchProvidersInput{Page: intPtr(1), Size: intPtr(0)}},
		{name: "size above maximum", input: usecase.SearchProvidersInput{Size: intPtr(51)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations are set: any repository call fails the test.
			fx := createTestProviderService(t)

			page, err := fx.service.SearchProviders(context.Background(), &tt.input)
			require.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
			assert.Nil(t, page)
		})
	}
}

func TestProviderService_SearchProviders_BuildsFilter(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	providerID := uuid.New()
	userID := uuid.New()
	input := &usecase.SearchProvidersInput{
		ProviderID:  &providerID,
		UserID:      &userID,
		ServiceType: stringPtr("Veterinary"),
		Name:        stringPtr("  paws "),
		PhoneNumber: stringPtr("02 2345 6789"),
		DayOfWeek:   stringPtr("monday"),
		DesiredTime: stringPtr("10:00"),
		Membership:  stringPtr("premium"),
		Latitude:    floatPtr(40.7128),
		Longitude:   floatPtr(-74.0060),
		RadiusKm:    floatPtr(10),
		Page:        intPtr(2),
		Size:        intPtr(5),
	}

	premium := entity.MembershipPremium
	expected := repository.ProviderFilter{
		ProviderID:  &providerID,
		UserID:      &userID,
		ServiceType: stringPtr("Veterinary"),
		Name:        stringPtr("paws"),
		PhoneNumber: stringPtr("+886223456789"),
		Availability: &repository.Availability{
			Day: entity.Monday,
			At:  entity.MustTimeOfDay("10:00"),
		},
		Membership: &premium,
		Geo: &repository.GeoFilter{
			Origin:       geo.Location{Latitude: 40.7128, Longitude: -74.0060},
			RadiusMeters: floatPtr(10_000),
		},
	}

	fx.phone.EXPECT().Normalize("02 2345 6789").Return("+886223456789", nil)
	fx.repo.EXPECT().
		Search(ctx, expected, repository.Pagination{Page: 2, Size: 5}).
		Return([]*entity.ServiceProvider{}, nil)

	page, err := fx.service.SearchProviders(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Size)
	assert.Empty(t, page.Items)
}

func TestProviderService_SearchProviders_PartialFilters(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	// Day without time and radius without a point are ignored; the phone is
	// kept literally when it cannot be normalized.
	input := &usecase.SearchProvidersInput{
		DayOfWeek:   stringPtr("SUNDAY"),
		RadiusKm:    floatPtr(3),
		PhoneNumber: stringPtr("ext. 12"),
	}

	fx.phone.EXPECT().Normalize("ext. 12").Return("", domainerrors.ErrInvalidArgument)
	fx.repo.EXPECT().
		Search(ctx, repository.ProviderFilter{PhoneNumber: stringPtr("ext. 12")}, repository.Pagination{Page: 1, Size: 10}).
		Return(nil, nil)

	page, err := fx.service.SearchProviders(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Size)
}

func TestProviderService_SearchProviders_PointWithoutRadius(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		Search(ctx, mock.MatchedBy(func(f repository.ProviderFilter) bool {
			return f.Geo != nil && f.Geo.RadiusMeters == nil && f.Geo.Origin.Longitude == 121.5
		}), mock.Anything).
		Return(nil, nil)

	_, err := fx.service.SearchProviders(ctx, &usecase.SearchProvidersInput{Latitude: floatPtr(25), Longitude: floatPtr(121.5)})
	require.NoError(t, err)
}

func TestProviderService_SearchProviders_PostProcessing(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	owner := uuid.New()
	providers := []*entity.ServiceProvider{
		newProvider("A", entity.MembershipFree, owner),
		newProvider("B", entity.MembershipPremium, owner),
		newProvider("C", entity.MembershipFree, owner),
		newProvider("D", entity.MembershipPremium, owner),
	}
	fx.repo.EXPECT().Search(ctx, repository.ProviderFilter{}, repository.Pagination{Page: 1, Size: 10}).Return(providers, nil)

	page, err := fx.service.SearchProviders(ctx, &usecase.SearchProvidersInput{})
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "D", "A", "C"}, viewNames(page.Items))

	first := page.Items[0]
	require.Len(t, first.WorkingHours, 3)
	assert.Equal(t, entity.Sunday, first.WorkingHours[0].DayOfWeek)
	assert.Equal(t, entity.Monday, first.WorkingHours[1].DayOfWeek)
	assert.Equal(t, entity.Saturday, first.WorkingHours[2].DayOfWeek)

	require.Len(t, first.Locations, 1)
	assert.InDelta(t, 25.0330, first.Locations[0].GeoLocation.Latitude, 1e-9)
	assert.Equal(t, []usecase.PhoneView{{PhoneNumber: "+886223456789"}}, first.Phones)
}

func TestProviderService_SearchProviders_StorageError(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Search(ctx, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrDataCorruption.WithDetails("bad point"))

	_, err := fx.service.SearchProviders(ctx, &usecase.SearchProvidersInput{})
	assert.ErrorIs(t, err, domainerrors.ErrDataCorruption)
}

func TestProviderService_OpenProviders(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	owner := uuid.New()
	providers := []*entity.ServiceProvider{
		newProvider("Clinic", entity.MembershipFree, owner),
		newProvider("Shelter", entity.MembershipPremium, owner),
	}
	fx.repo.EXPECT().
		FindOpen(ctx, repository.Availability{Day: entity.Monday, At: entity.MustTimeOfDay("09:30")}, repository.Pagination{Page: 1, Size: 20}).
		Return(providers, nil)

	page, err := fx.service.OpenProviders(ctx, &usecase.OpenProvidersInput{DayOfWeek: "Monday", DesiredTime: "09:30", Size: intPtr(20)})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "Shelter", page.Items[0].Name)
	assert.Equal(t, "Clinic", page.Items[1].Name)
	assert.Equal(t, entity.Sunday, page.Items[0].WorkingHours[0].DayOfWeek)
}

func TestProviderService_OpenProviders_InvalidInput(t *testing.T) {
	fx := createTestProviderService(t)

	_, err := fx.service.OpenProviders(context.Background(), &usecase.OpenProvidersInput{DayOfWeek: "FUNDAY", DesiredTime: "09:30"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	_, err = fx.service.OpenProviders(context.Background(), &usecase.OpenProvidersInput{DayOfWeek: "MONDAY", DesiredTime: "9.30"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	_, err = fx.service.OpenProviders(context.Background(), &usecase.OpenProvidersInput{DayOfWeek: "MONDAY", DesiredTime: "09:30", Page: intPtr(0)})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	_, err = fx.service.OpenProviders(context.Background(), &usecase.OpenProvidersInput{DayOfWeek: "MONDAY", DesiredTime: "09:30", Size: intPtr(0)})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestProviderService_GetProvider(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	provider := newProvider("Clinic", entity.MembershipFree, uuid.New())
	fx.repo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)

	view, err := fx.service.GetProvider(ctx, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, provider.ID, view.ProviderID)
	assert.Equal(t, entity.Sunday, view.WorkingHours[0].DayOfWeek)
}

func TestProviderService_GetProvider_NotFound(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProviderNotFound)

	_, err := fx.service.GetProvider(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotFound)
}

func TestProviderService_ProviderQRCode(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	provider := newProvider("Clinic", entity.MembershipFree, uuid.New())
	fx.repo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
	fx.qr.EXPECT().GenerateProviderQR(provider.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ProviderQRCode(ctx, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
