package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/geo"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/errors"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
)

// CreateProvider registers a provider with all of its collections in one transaction.
// The caller must list themselves as an OWNER.
func (srv *providerService) CreateProvider(ctx context.Context, callerID uuid.UUID, input *usecase.CreateProviderInput) (*usecase.ProviderView, error) {
	provider, err := srv.buildProvider(input)
	if err != nil {
		return nil, err
	}

	if role, ok := provider.RoleOf(callerID); !ok || role != entity.ProviderRoleOwner {
		return nil, domainerrors.ErrForbidden.WithDetails("the creating user must be listed as an owner")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewProviderRepository().Create(ctx, provider)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create provider", slog.String("name", provider.Name), slog.Any("error", err))

		return nil, errors.Wrap(mapRepositoryError(err), "failed to create provider")
	}

	srv.log(ctx).Info("Provider created", slog.Any("providerID", provider.ID), slog.Any("callerID", callerID))

	entity.SortWorkingHours(provider.WorkingHours)
	view := toProviderView(provider)

	return &view, nil
}

// UpdateProvider changes name, service type or email. Owners and moderators may update.
func (srv *providerService) UpdateProvider(ctx context.Context, callerID, providerID uuid.UUID, input *usecase.UpdateProviderInput) (*usecase.ProviderView, error) {
	var updated *entity.ServiceProvider

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewProviderRepository()

		provider, err := srv.findProvider(ctx, repo, providerID)
		if err != nil {
			return err
		}
		if err := requireRole(provider, callerID, entity.ProviderRoleModerator); err != nil {
			return err
		}

		update, changed, err := providerChanges(provider, input)
		if err != nil {
			return err
		}
		if !changed {
			updated = provider

			return nil
		}

		if err := repo.Update(ctx, providerID, update); err != nil {
			return mapRepositoryError(err)
		}

		updated, err = srv.findProvider(ctx, repo, providerID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update provider")
	}

	view := toProviderView(updated)

	return &view, nil
}

// DeleteProvider removes a provider. Only owners may delete.
func (srv *providerService) DeleteProvider(ctx context.Context, callerID, providerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewProviderRepository()

		provider, err := srv.findProvider(ctx, repo, providerID)
		if err != nil {
			return err
		}
		if err := requireRole(provider, callerID, entity.ProviderRoleOwner); err != nil {
			return err
		}

		return mapRepositoryError(repo.Delete(ctx, providerID))
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete provider")
	}

	srv.log(ctx).Info("Provider deleted", slog.Any("providerID", providerID), slog.Any("callerID", callerID))

	return nil
}

// AddLocation attaches one more location to a provider.
func (srv *providerService) AddLocation(ctx context.Context, callerID, providerID uuid.UUID, input *usecase.LocationInput) (*usecase.LocationView, error) {
	location, err := buildLocation(*input)
	if err != nil {
		return nil, err
	}
	location.ID = uuid.New()
	location.ProviderID = providerID

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewProviderRepository()

		provider, err := srv.findProvider(ctx, repo, providerID)
		if err != nil {
			return err
		}
		if err := requireRole(provider, callerID, entity.ProviderRoleModerator); err != nil {
			return err
		}

		return mapRepositoryError(repo.AddLocation(ctx, &location))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add provider location")
	}

	view := toLocationView(location)

	return &view, nil
}

// RemoveLocation deletes a location, keeping at least one per provider.
func (srv *providerService) RemoveLocation(ctx context.Context, callerID, providerID, locationID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewProviderRepository()

		provider, err := srv.findProvider(ctx, repo, providerID)
		if err != nil {
			return err
		}
		if err := requireRole(provider, callerID, entity.ProviderRoleModerator); err != nil {
			return err
		}

		if !slices.ContainsFunc(provider.Locations, func(l entity.ProviderLocation) bool { return l.ID == locationID }) {
			return domainerrors.ErrLocationNotFound
		}

		count, err := repo.CountLocations(ctx, providerID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return domainerrors.ErrLastLocation
		}

		return mapRepositoryError(repo.RemoveLocation(ctx, providerID, locationID))
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove provider location")
	}

	return nil
}

// UpdateMembership sets the listing tier of a provider.
func (srv *providerService) UpdateMembership(ctx context.Context, providerID uuid.UUID, token string) (*usecase.ProviderView, error) {
	membership, err := entity.ParseMembership(token)
	if err != nil {
		return nil, err
	}

	if err := srv.providerRepo.UpdateMembership(ctx, providerID, membership); err != nil {
		return nil, errors.Wrap(mapRepositoryError(err), "failed to update provider membership")
	}

	srv.log(ctx).Info("Provider membership changed", slog.Any("providerID", providerID), slog.String("membership", membership.String()))

	return srv.GetProvider(ctx, providerID)
}

func requireRole(provider *entity.ServiceProvider, callerID uuid.UUID, minimum entity.ProviderRole) error {
	role, ok := provider.RoleOf(callerID)
	if !ok || !role.AtLeast(minimum) {
		return domainerrors.ErrForbidden.WithDetails("requires provider role " + minimum.String())
	}

	return nil
}

// providerChanges keeps only the fields that differ from the stored provider.
func providerChanges(provider *entity.ServiceProvider, input *usecase.UpdateProviderInput) (repository.ProviderUpdate, bool, error) {
	var update repository.ProviderUpdate

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return update, false, domainerrors.ErrInvalidArgument.WithDetails("name must not be blank")
		}
		if name != provider.Name {
			update.Name = &name
		}
	}
	if input.ServiceType != nil {
		serviceType := strings.TrimSpace(*input.ServiceType)
		if serviceType == "" {
			return update, false, domainerrors.ErrInvalidArgument.WithDetails("service_type must not be blank")
		}
		if serviceType != provider.ServiceType {
			update.ServiceType = &serviceType
		}
	}
	if email := trimmed(input.Email); email != nil && (provider.Email == nil || *provider.Email != *email) {
		update.Email = email
	}

	changed := update.Name != nil || update.ServiceType != nil || update.Email != nil

	return update, changed, nil
}

// buildProvider validates the create input and assembles a FREE provider.
func (srv *providerService) buildProvider(input *usecase.CreateProviderInput) (*entity.ServiceProvider, error) {
	name := strings.TrimSpace(input.Name)
	serviceType := strings.TrimSpace(input.ServiceType)
	if name == "" || serviceType == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("name and service_type are required")
	}
	if len(input.Users) == 0 || len(input.Phones) == 0 || len(input.WorkingHours) == 0 || len(input.Locations) == 0 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("at least one user, phone, working hours entry and location are required")
	}

	provider := &entity.ServiceProvider{
		ID:          uuid.New(),
		Name:        name,
		ServiceType: serviceType,
		Email:       trimmed(input.Email),
		Membership:  entity.MembershipFree,
	}

	seenUsers := make(map[uuid.UUID]struct{}, len(input.Users))
	for _, u := range input.Users {
		role, err := entity.ParseProviderRole(u.Role)
		if err != nil {
			return nil, err
		}
		if _, dup := seenUsers[u.UserID]; dup {
			return nil, domainerrors.ErrInvalidArgument.WithDetails("duplicate user " + u.UserID.String())
		}
		seenUsers[u.UserID] = struct{}{}
		provider.Users = append(provider.Users, entity.UserProviderAssociation{
			UserID:     u.UserID,
			ProviderID: provider.ID,
			Role:       role,
		})
	}

	seenPhones := make(map[string]struct{}, len(input.Phones))
	for _, raw := range input.Phones {
		number, err := srv.phoneNormalizer.Normalize(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seenPhones[number]; dup {
			return nil, domainerrors.ErrInvalidArgument.WithDetails("duplicate phone number " + number)
		}
		seenPhones[number] = struct{}{}
		provider.Phones = append(provider.Phones, entity.ProviderPhone{
			ID:          uuid.New(),
			ProviderID:  provider.ID,
			PhoneNumber: number,
		})
	}

	seenDays := make(map[entity.DayOfWeek]struct{}, len(input.WorkingHours))
	for _, wh := range input.WorkingHours {
		interval, err := buildWorkingHours(wh)
		if err != nil {
			return nil, err
		}
		if _, dup := seenDays[interval.DayOfWeek]; dup {
			return nil, domainerrors.ErrInvalidArgument.WithDetails("duplicate working hours for " + interval.DayOfWeek.String())
		}
		seenDays[interval.DayOfWeek] = struct{}{}
		interval.ID = uuid.New()
		interval.ProviderID = provider.ID
		provider.WorkingHours = append(provider.WorkingHours, interval)
	}

	for _, l := range input.Locations {
		location, err := buildLocation(l)
		if err != nil {
			return nil, err
		}
		location.ID = uuid.New()
		location.ProviderID = provider.ID
		provider.Locations = append(provider.Locations, location)
	}

	return provider, nil
}

func buildWorkingHours(input usecase.WorkingHoursInput) (entity.WorkingHours, error) {
	day, err := entity.ParseDayOfWeek(input.DayOfWeek)
	if err != nil {
		return entity.WorkingHours{}, err
	}
	start, err := entity.ParseTimeOfDay(input.StartTime)
	if err != nil {
		return entity.WorkingHours{}, err
	}
	end, err := entity.ParseTimeOfDay(input.EndTime)
	if err != nil {
		return entity.WorkingHours{}, err
	}
	if start > end {
		return entity.WorkingHours{}, domainerrors.ErrInvalidArgument.WithDetails("start_time must not be after end_time on " + day.String())
	}

	return entity.WorkingHours{DayOfWeek: day, StartTime: start, EndTime: end}, nil
}

func buildLocation(input usecase.LocationInput) (entity.ProviderLocation, error) {
	address := strings.TrimSpace(input.FullAddress)
	if address == "" {
		return entity.ProviderLocation{}, domainerrors.ErrInvalidArgument.WithDetails("full_address is required")
	}

	location := entity.ProviderLocation{FullAddress: address}

	switch {
	case input.Latitude == nil && input.Longitude == nil:
	case input.Latitude == nil || input.Longitude == nil:
		return entity.ProviderLocation{}, domainerrors.ErrInvalidArgument.WithDetails("latitude and longitude must be supplied together")
	default:
		point, err := geo.NewLocation(*input.Latitude, *input.Longitude)
		if err != nil {
			return entity.ProviderLocation{}, err
		}
		location.GeoLocation = &point
	}

	return location, nil
}
