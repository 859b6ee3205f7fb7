package postgres

import (
	"context"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// AddPhones inserts phones for an existing provider. A number already listed
// for the provider is reported as a conflict.
func (repo *providerRepository) AddPhones(ctx context.Context, phones []*entity.ProviderPhone) error {
	if len(phones) == 0 {
		return nil
	}

	phoneModels := make([]*model.ProviderPhoneModel, 0, len(phones))
	for _, phone := range phones {
		if phone.ID == uuid.Nil {
			phone.ID = uuid.New()
		}
		phoneModels = append(phoneModels, &model.ProviderPhoneModel{
			PhoneID:     phone.ID,
			ProviderID:  phone.ProviderID,
			PhoneNumber: phone.PhoneNumber,
		})
	}

	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := q.ProviderPhoneModel.WithContext(ctx).Create(phoneModels...); err != nil {
		return storageError(err, "failed to add provider phones")
	}

	return nil
}

// RemovePhone deletes a phone owned by providerID.
func (repo *providerRepository) RemovePhone(ctx context.Context, providerID, phoneID uuid.UUID) error {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	p := q.ProviderPhoneModel
	info, err := p.WithContext(ctx).Where(p.PhoneID.Eq(phoneID), p.ProviderID.Eq(providerID)).Delete()
	if err != nil {
		return storageError(err, "failed to remove provider phone")
	}
	if info.RowsAffected == 0 {
		return repository.ErrPhoneNotFound
	}

	return nil
}

// CountPhones counts the phones of a provider.
func (repo *providerRepository) CountPhones(ctx context.Context, providerID uuid.UUID) (int64, error) {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	p := q.ProviderPhoneModel
	count, err := p.WithContext(ctx).Where(p.ProviderID.Eq(providerID)).Count()
	if err != nil {
		return 0, storageError(err, "failed to count provider phones")
	}

	return count, nil
}

// AddWorkingHours inserts working hours for an existing provider. A second
// entry for the same day is reported as a conflict.
func (repo *providerRepository) AddWorkingHours(ctx context.Context, hours []*entity.WorkingHours) error {
	if len(hours) == 0 {
		return nil
	}

	hoursModels := make([]*model.WorkingHoursModel, 0, len(hours))
	for _, wh := range hours {
		if wh.ID == uuid.Nil {
			wh.ID = uuid.New()
		}
		hoursModels = append(hoursModels, &model.WorkingHoursModel{
			WorkingHoursID: wh.ID,
			ProviderID:     wh.ProviderID,
			DayOfWeek:      string(wh.DayOfWeek),
			StartTime:      model.ClockTime(wh.StartTime),
			EndTime:        model.ClockTime(wh.EndTime),
		})
	}

	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := q.WorkingHoursModel.WithContext(ctx).Create(hoursModels...); err != nil {
		return storageError(err, "failed to add provider working hours")
	}

	return nil
}

// UpdateWorkingHours rewrites the day and interval of an entry owned by hours.ProviderID.
func (repo *providerRepository) UpdateWorkingHours(ctx context.Context, hours *entity.WorkingHours) error {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	wh := q.WorkingHoursModel
	info, err := wh.WithContext(ctx).
		Where(wh.WorkingHoursID.Eq(hours.ID), wh.ProviderID.Eq(hours.ProviderID)).
		UpdateSimple(
			wh.DayOfWeek.Value(string(hours.DayOfWeek)),
			wh.StartTime.Value(model.ClockTime(hours.StartTime)),
			wh.EndTime.Value(model.ClockTime(hours.EndTime)),
		)
	if err != nil {
		return storageError(err, "failed to update provider working hours")
	}
	if info.RowsAffected == 0 {
		return repository.ErrWorkingHoursNotFound
	}

	return nil
}

// RemoveWorkingHours deletes a working hours entry owned by providerID.
func (repo *providerRepository) RemoveWorkingHours(ctx context.Context, providerID, workingHoursID uuid.UUID) error {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	wh := q.WorkingHoursModel
	info, err := wh.WithContext(ctx).Where(wh.WorkingHoursID.Eq(workingHoursID), wh.ProviderID.Eq(providerID)).Delete()
	if err != nil {
		return storageError(err, "failed to remove provider working hours")
	}
	if info.RowsAffected == 0 {
		return repository.ErrWorkingHoursNotFound
	}

	return nil
}

// CountWorkingHours counts the working hours entries of a provider.
func (repo *providerRepository) CountWorkingHours(ctx context.Context, providerID uuid.UUID) (int64, error) {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	wh := q.WorkingHoursModel
	count, err := wh.WithContext(ctx).Where(wh.ProviderID.Eq(providerID)).Count()
	if err != nil {
		return 0, storageError(err, "failed to count provider working hours")
	}

	return count, nil
}

// AddUser links a user to an existing provider. Linking the same user twice is a conflict.
func (repo *providerRepository) AddUser(ctx context.Context, link *entity.UserProviderAssociation) error {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	linkM := &model.UserProviderAssociationModel{
		UserID:     link.UserID,
		ProviderID: link.ProviderID,
		Role:       string(link.Role),
	}
	if err := q.UserProviderAssociationModel.WithContext(ctx).Create(linkM); err != nil {
		return storageError(err, "failed to add provider user")
	}

	return nil
}

// RemoveUser deletes the link between userID and providerID.
func (repo *providerRepository) RemoveUser(ctx context.Context, providerID, userID uuid.UUID) error {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	u := q.UserProviderAssociationModel
	info, err := u.WithContext(ctx).Where(u.UserID.Eq(userID), u.ProviderID.Eq(providerID)).Delete()
	if err != nil {
		return storageError(err, "failed to remove provider user")
	}
	if info.RowsAffected == 0 {
		return repository.ErrUserLinkNotFound
	}

	return nil
}

// CountOwners counts the users holding the owner role on a provider.
func (repo *providerRepository) CountOwners(ctx context.Context, providerID uuid.UUID) (int64, error) {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	u := q.UserProviderAssociationModel
	count, err := u.WithContext(ctx).Where(u.ProviderID.Eq(providerID), u.Role.Eq(string(entity.ProviderRoleOwner))).Count()
	if err != nil {
		return 0, storageError(err, "failed to count provider owners")
	}

	return count, nil
}
