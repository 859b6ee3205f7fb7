package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pawtrack/config"
	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/geo"
	"pawtrack/internal/domain/repository"
	mockRepo "pawtrack/internal/mocks/repository"
	mockSvc "pawtrack/internal/mocks/service"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type providerServiceFixture struct {
	service   usecase.ProviderUsecase
	repo      *mockRepo.MockProviderRepository
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	phone     *mockSvc.MockPhoneNormalizer
	qr        *mockSvc.MockQRCodeService
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestProviderService(t *testing.T) *providerServiceFixture {
	t.Helper()

	fx := &providerServiceFixture{
		repo:      mockRepo.NewMockProviderRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		phone:     mockSvc.NewMockPhoneNormalizer(t),
		qr:        mockSvc.NewMockQRCodeService(t),
	}

	cfg := &config.Config{}
	cfg.Search = config.SearchConfig{DefaultPageSize: 10, MaxPageSize: 50}

	fx.service = NewProviderService(ProviderServiceParams{
		TxManager:       fx.txManager,
		ProviderRepo:    fx.repo,
		PhoneNormalizer: fx.phone,
		QRCodeService:   fx.qr,
		Config:          cfg,
		Logger:          newDiscardLogger(),
	})

	return fx
}

// expectTransaction runs the transactional callback against the mocked repository.
func (fx *providerServiceFixture) expectTransaction() {
	fx.factory.EXPECT().NewProviderRepository().Return(fx.repo).Maybe()
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func newProvider(name string, membership entity.Membership, owner uuid.UUID) *entity.ServiceProvider {
	id := uuid.New()
	point := geo.Location{Latitude: 25.0330, Longitude: 121.5654}

	return &entity.ServiceProvider{
		ID:          id,
		Name:        name,
		ServiceType: "Veterinary",
		Membership:  membership,
		Users:       []entity.UserProviderAssociation{{UserID: owner, ProviderID: id, Role: entity.ProviderRoleOwner}},
		Phones:      []entity.ProviderPhone{{ID: uuid.New(), ProviderID: id, PhoneNumber: "+886223456789"}},
		WorkingHours: []entity.WorkingHours{
			{ID: uuid.New(), ProviderID: id, DayOfWeek: entity.Saturday, StartTime: entity.MustTimeOfDay("10:00"), EndTime: entity.MustTimeOfDay("14:00")},
			{ID: uuid.New(), ProviderID: id, DayOfWeek: entity.Sunday, StartTime: entity.MustTimeOfDay("10:00"), EndTime: entity.MustTimeOfDay("14:00")},
			{ID: uuid.New(), ProviderID: id, DayOfWeek: entity.Monday, StartTime: entity.MustTimeOfDay("09:00"), EndTime: entity.MustTimeOfDay("18:00")},
		},
		Locations: []entity.ProviderLocation{{ID: uuid.New(), ProviderID: id, FullAddress: "No. 7, Xinyi Rd", GeoLocation: &point}},
	}
}

func viewNames(items []usecase.ProviderView) []string {
	out := make([]string, 0, len(items))
	for _, v := range items {
		out = append(out, v.Name)
	}

	return out
}
