// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"pawtrack/config"
	deliverycontext "pawtrack/internal/delivery/context"
	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// providerService implements the ProviderUsecase interface.
type providerService struct {
	txManager       repository.TransactionManager
	providerRepo    repository.ProviderRepository
	phoneNormalizer service.PhoneNormalizer
	qrCodeService   service.QRCodeService
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// ProviderServiceParams holds dependencies for ProviderService, injected by Fx.
type ProviderServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ProviderRepo    repository.ProviderRepository
	PhoneNormalizer service.PhoneNormalizer
	QRCodeService   service.QRCodeService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	srv := &providerService{
		txManager:       params.TxManager,
		providerRepo:    params.ProviderRepo,
		phoneNormalizer: params.PhoneNormalizer,
		qrCodeService:   params.QRCodeService,
		defaultPageSize: config.DefaultPageSize,
		maxPageSize:     config.DefaultMaxPageSize,
		logger:          params.Logger,
	}
	if params.Config != nil {
		if params.Config.Search.DefaultPageSize > 0 {
			srv.defaultPageSize = params.Config.Search.DefaultPageSize
		}
		if params.Config.Search.MaxPageSize > 0 {
			srv.maxPageSize = params.Config.Search.MaxPageSize
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *providerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchProviders validates every filter, runs the query and post-sorts the page.
func (srv *providerService) SearchProviders(ctx context.Context, input *usecase.SearchProvidersInput) (*usecase.Page[usecase.ProviderView], error) {
	page, err := srv.pagination(input.Page, input.Size)
	if err != nil {
		return nil, err
	}

	filter, err := srv.buildFilter(input)
	if err != nil {
		return nil, err
	}

	providers, err := srv.providerRepo.Search(ctx, filter, page)
	if err != nil {
		srv.log(ctx).Error("Failed to search providers", slog.Any("error", err))

		return nil, errors.Wrap(mapRepositoryError(err), "failed to search providers")
	}

	sortPage(providers)

	items := make([]usecase.ProviderView, 0, len(providers))
	for _, p := range providers {
		items = append(items, toProviderView(p))
	}

	return &usecase.Page[usecase.ProviderView]{Items: items, Page: page.Page, Size: page.Size}, nil
}

// OpenProviders lists providers open on the requested day at the requested time.
func (srv *providerService) OpenProviders(ctx context.Context, input *usecase.OpenProvidersInput) (*usecase.Page[usecase.OpenProviderView], error) {
	page, err := srv.pagination(input.Page, input.Size)
	if err != nil {
		return nil, err
	}

	day, err := entity.ParseDayOfWeek(input.DayOfWeek)
	if err != nil {
		return nil, err
	}
	at, err := entity.ParseTimeOfDay(input.DesiredTime)
	if err != nil {
		return nil, err
	}

	providers, err := srv.providerRepo.FindOpen(ctx, repository.Availability{Day: day, At: at}, page)
	if err != nil {
		srv.log(ctx).Error("Failed to find open providers", slog.Any("error", err))

		return nil, errors.Wrap(mapRepositoryError(err), "failed to find open providers")
	}

	sortPage(providers)

	items := make([]usecase.OpenProviderView, 0, len(providers))
	for _, p := range providers {
		items = append(items, toOpenProviderView(p))
	}

	return &usecase.Page[usecase.OpenProviderView]{Items: items, Page: page.Page, Size: page.Size}, nil
}

// GetProvider loads one provider.
func (srv *providerService) GetProvider(ctx context.Context, providerID uuid.UUID) (*usecase.ProviderView, error) {
	provider, err := srv.findProvider(ctx, srv.providerRepo, providerID)
	if err != nil {
		return nil, err
	}

	view := toProviderView(provider)

	return &view, nil
}

// ProviderQRCode renders the share QR code of an existing provider.
func (srv *providerService) ProviderQRCode(ctx context.Context, providerID uuid.UUID) ([]byte, error) {
	if _, err := srv.findProvider(ctx, srv.providerRepo, providerID); err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateProviderQR(providerID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate provider QR code: " + err.Error())
	}

	return png, nil
}

func (srv *providerService) findProvider(ctx context.Context, repo repository.ProviderRepository, providerID uuid.UUID) (*entity.ServiceProvider, error) {
	provider, err := repo.FindByID(ctx, providerID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	entity.SortWorkingHours(provider.WorkingHours)

	return provider, nil
}

// pagination fills an omitted page with 1 and an omitted size with the configured
// default. Values that were given must be positive; size is capped at maxPageSize.
func (srv *providerService) pagination(pageParam, sizeParam *int) (repository.Pagination, error) {
	page, size := 1, srv.defaultPageSize
	if pageParam != nil {
		page = *pageParam
	}
	if sizeParam != nil {
		size = *sizeParam
	}

	if page < 1 {
		return repository.Pagination{}, domainerrors.ErrInvalidArgument.WithDetails("page must be at least 1")
	}
	if size < 1 || size > srv.maxPageSize {
		return repository.Pagination{}, domainerrors.ErrInvalidArgument.WithDetails("size is out of range")
	}

	return repository.Pagination{Page: page, Size: size}, nil
}

// sortPage orders each provider's working hours by day, then stably re-sorts
// the page by membership alone.
func sortPage(providers []*entity.ServiceProvider) {
	for _, p := range providers {
		entity.SortWorkingHours(p.WorkingHours)
	}

	entity.SortByMembership(providers, entity.ProviderMembership)
}

// mapRepositoryError turns repository sentinels into domain errors.
func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProviderNotFound):
		return domainerrors.ErrProviderNotFound
	case errors.Is(err, repository.ErrLocationNotFound):
		return domainerrors.ErrLocationNotFound
	case errors.Is(err, repository.ErrPhoneNotFound):
		return domainerrors.ErrPhoneNotFound
	case errors.Is(err, repository.ErrWorkingHoursNotFound):
		return domainerrors.ErrWorkingHoursNotFound
	case errors.Is(err, repository.ErrUserLinkNotFound):
		return domainerrors.ErrUserLinkNotFound
	default:
		return err
	}
}
