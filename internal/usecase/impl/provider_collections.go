package impl

import (
	"context"
	"log/slog"
	"slices"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/errors"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
)

// AddPhones attaches one or more phone numbers to a provider. Numbers are
// normalized first; a number repeated in the request or already listed is a conflict.
func (srv *providerService) AddPhones(ctx context.Context, callerID, providerID uuid.UUID, numbers []string) ([]usecase.ProviderPhoneView, error) {
	if len(numbers) == 0 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("at least one phone number is required")
	}

	phones := make([]*entity.ProviderPhone, 0, len(numbers))
	seen := make(map[string]struct{}, len(numbers))
	for _, raw := range numbers {
		number, err := srv.phoneNormalizer.Normalize(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[number]; dup {
			return nil, domainerrors.ErrProviderConflict.WithDetails("duplicate phone number " + number)
		}
		seen[number] = struct{}{}
		phones = append(phones, &entity.ProviderPhone{ID: uuid.New(), ProviderID: providerID, PhoneNumber: number})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewProviderRepository()

		provider, err := srv.findProvider(ctx, repo, providerID)
		if err != nil {
			return err
		}
		if err := requireRole(provider, callerID, entity.ProviderRoleModerator); err != nil {
			return err
		}

		for _, phone := range phones {
			if slices.ContainsFunc(provider.Phones, func(p entity.ProviderPhone) bool { return p.PhoneNumber == phone.PhoneNumber }) {
				return domainerrors.ErrProviderConflict.WithDetails("phone number " + phone.PhoneNumber + " is already listed")
			}
		}

		return mapRepositoryError(repo.AddPhones(ctx, phones))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add provider phones")
	}

	srv.log(ctx).Info("Provider phones added", slog.Any("providerID", providerID), slog.Int("count", len(phones)))

	views := make([]usecase.ProviderPhoneView, 0, len(phones))
	for _, phone := range phones {
		views = append(views, usecase.ProviderPhoneView{PhoneID: phone.ID, PhoneNumber: phone.PhoneNumber})
	}

	return views, nil
}

// RemovePhone deletes a phone, keeping at least one per provider.
func (srv *providerService) RemovePhone(ctx context.Context, callerID, providerID, phoneID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewProviderRepository()

		provider, err := srv.findProvider(ctx, repo, providerID)
		if err != nil {
			return err
		}
		if err := requireRole(provider, callerID, entity.ProviderRoleModerator); err != nil {
			return err
		}

		if !slices.ContainsFunc(provider.Phones, func(p entity.ProviderPhone) bool { return p.ID == phoneID }) {
			return domainerrors.ErrPhoneNotFound
		}

		count, err := repo.CountPhones(ctx, providerID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return domainerrors.ErrLastPhone
		}

		return mapRepositoryError(repo.RemovePhone(ctx, providerID, phoneID))
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove provider phone")
	}

	return nil
}

// AddWorkingHours attaches one or more opening intervals. Each day may carry
// a single interval per provider.
func (srv *providerService) AddWorkingHours(ctx context.Context, callerID, providerID uuid.UUID, input []usecase.WorkingHoursInput) ([]usecase.ProviderWorkingHoursView, error) {
	if len(input) == 0 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("at least one working hours entry is required")
	}

	intervals := make([]*entity.WorkingHours, 0, len(input))
	seen := make(map[entity.DayOfWeek]struct{}, len(input))
	for _, in := range input {
		interval, err := buildWorkingHours(in)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[interval.DayOfWeek]; dup {
			return nil, domainerrors.ErrProviderConflict.WithDetails("duplicate working hours for " + interval.DayOfWeek.String())
		}
		seen[interval.DayOfWeek] = struct{}{}
		interval.ID = uuid.New()
		interval.ProviderID = providerID
		intervals = append(intervals, &interval)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewProviderRepository()

		provider, err := srv.findProvider(ctx, repo, providerID)
		if err != nil {
			return err
		}
		if err := requireRole(provider, callerID, entity.ProviderRoleModerator); err != nil {
			return err
		}

		for _, interval := range intervals {
			if slices.ContainsFunc(provider.WorkingHours, func(wh entity.WorkingHours) bool { return wh.DayOfWeek == interval.DayOfWeek }) {
				return domainerrors.ErrProviderConflict.WithDetails("working hours for " + interval.DayOfWeek.String() + " already exist")
			}
		}

		return mapRepositoryError(repo.AddWorkingHours(ctx, intervals))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add provider working hours")
	}

	views := make([]usecase.ProviderWorkingHoursView, 0, len(intervals))
	for _, interval := range intervals {
		views = append(views, toProviderWorkingHoursView(*interval))
	}

	return views, nil
}

// UpdateWorkingHours replaces the day and interval of an existing entry.
func (srv *providerService) UpdateWorkingHours(ctx context.Context, callerID, providerID, workingHoursID uuid.UUID, input *usecase.WorkingHoursInput) (*usecase.ProviderWorkingHoursView, error) {
	interval, err := buildWorkingHours(*input)
	if err != nil {
		return nil, err
	}
	interval.ID = workingHoursID
	interval.ProviderID = providerID

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewProviderRepository()

		provider, err := srv.findProvider(ctx, repo, providerID)
		if err != nil {
			return err
		}
		if err := requireRole(provider, callerID, entity.ProviderRoleModerator); err != nil {
			return err
		}

		if !slices.ContainsFunc(provider.WorkingHours, func(wh entity.WorkingHours) bool { return wh.ID == workingHoursID }) {
			return domainerrors.ErrWorkingHoursNotFound
		}
		if dayTaken(provider, interval.DayOfWeek, workingHoursID) {
			return domainerrors.ErrProviderConflict.WithDetails("working hours for " + interval.DayOfWeek.String() + " already exist")
		}

		return mapRepositoryError(repo.UpdateWorkingHours(ctx, &interval))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update provider working hours")
	}

	view := toProviderWorkingHoursView(interval)

	return &view, nil
}

// RemoveWorkingHours deletes an entry, keeping at least one per provider.
func (srv *providerService) RemoveWorkingHours(ctx context.Context, callerID, providerID, workingHoursID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewProviderRepository()

		provider, err := srv.findProvider(ctx, repo, providerID)
		if err != nil {
			return err
		}
		if err := requireRole(provider, callerID, entity.ProviderRoleModerator); err != nil {
			return err
		}

		if !slices.ContainsFunc(provider.WorkingHours, func(wh entity.WorkingHours) bool { return wh.ID == workingHoursID }) {
			return domainerrors.ErrWorkingHoursNotFound
		}

		count, err := repo.CountWorkingHours(ctx, providerID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return domainerrors.ErrLastWorkingHours
		}

		return mapRepositoryError(repo.RemoveWorkingHours(ctx, providerID, workingHoursID))
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove provider working hours")
	}

	return nil
}

// AddProviderUser links a user to a provider. Only owners manage links.
func (srv *providerService) AddProviderUser(ctx context.Context, callerID, providerID uuid.UUID, input *usecase.ProviderUserInput) (*usecase.ProviderUserView, error) {
	role, err := entity.ParseProviderRole(input.Role)
	if err != nil {
		return nil, err
	}
	link := entity.UserProviderAssociation{UserID: input.UserID, ProviderID: providerID, Role: role}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewProviderRepository()

		provider, err := srv.findProvider(ctx, repo, providerID)
		if err != nil {
			return err
		}
		if err := requireRole(provider, callerID, entity.ProviderRoleOwner); err != nil {
			return err
		}

		if _, linked := provider.RoleOf(input.UserID); linked {
			return domainerrors.ErrProviderConflict.WithDetails("user " + input.UserID.String() + " is already linked")
		}

		return mapRepositoryError(repo.AddUser(ctx, &link))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add provider user")
	}

	srv.log(ctx).Info("Provider user linked", slog.Any("providerID", providerID), slog.Any("userID", link.UserID), slog.String("role", role.String()))

	return &usecase.ProviderUserView{UserID: link.UserID, Role: link.Role}, nil
}

// RemoveProviderUser unlinks a user. The last owner cannot be removed.
func (srv *providerService) RemoveProviderUser(ctx context.Context, callerID, providerID, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewProviderRepository()

		provider, err := srv.findProvider(ctx, repo, providerID)
		if err != nil {
			return err
		}
		if err := requireRole(provider, callerID, entity.ProviderRoleOwner); err != nil {
			return err
		}

		role, linked := provider.RoleOf(userID)
		if !linked {
			return domainerrors.ErrUserLinkNotFound
		}

		if role == entity.ProviderRoleOwner {
			owners, err := repo.CountOwners(ctx, providerID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return domainerrors.ErrLastOwner
			}
		}

		return mapRepositoryError(repo.RemoveUser(ctx, providerID, userID))
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove provider user")
	}

	srv.log(ctx).Info("Provider user unlinked", slog.Any("providerID", providerID), slog.Any("userID", userID))

	return nil
}

// dayTaken reports whether an entry other than except already covers day.
func dayTaken(provider *entity.ServiceProvider, day entity.DayOfWeek, except uuid.UUID) bool {
	return slices.ContainsFunc(provider.WorkingHours, func(wh entity.WorkingHours) bool {
		return wh.DayOfWeek == day && wh.ID != except
	})
}

func toProviderWorkingHoursView(wh entity.WorkingHours) usecase.ProviderWorkingHoursView {
	return usecase.ProviderWorkingHoursView{
		WorkingHoursID: wh.ID,
		DayOfWeek:      wh.DayOfWeek,
		StartTime:      wh.StartTime,
		EndTime:        wh.EndTime,
	}
}
