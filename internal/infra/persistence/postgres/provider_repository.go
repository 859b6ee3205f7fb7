package postgres

import (
	"context"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/geo"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/errors"
	"pawtrack/internal/infra/persistence/model"
	"pawtrack/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// providerRepository implements the repository.ProviderRepository interface.
type providerRepository struct {
	pool *Pool
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(pool *Pool) repository.ProviderRepository {
	return &providerRepository{pool: pool}
}

// Search runs the filtered listing and loads every collection of the page.
func (repo *providerRepository) Search(ctx context.Context, filter repository.ProviderFilter, page repository.Pagination) ([]*entity.ServiceProvider, error) {
	db, release, err := repo.pool.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var providerModels []*model.ServiceProviderModel
	if err := withCollections(newProviderQuery(db).search(filter, page)).Find(&providerModels).Error; err != nil {
		return nil, storageError(err, "failed to search providers")
	}

	return toProviderDomains(providerModels)
}

// FindOpen lists providers with an interval covering the given day and time.
func (repo *providerRepository) FindOpen(ctx context.Context, availability repository.Availability, page repository.Pagination) ([]*entity.ServiceProvider, error) {
	db, release, err := repo.pool.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var providerModels []*model.ServiceProviderModel
	if err := withCollections(newProviderQuery(db).open(availability, page)).Find(&providerModels).Error; err != nil {
		return nil, storageError(err, "failed to find open providers")
	}

	return toProviderDomains(providerModels)
}

// FindByID loads one provider aggregate.
func (repo *providerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error) {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	sp := q.ServiceProviderModel
	providerM, err := sp.WithContext(ctx).
		Preload(
			sp.Users.Order(q.UserProviderAssociationModel.UserID),
			sp.Phones.Order(q.ProviderPhoneModel.PhoneNumber),
			sp.WorkingHours,
			sp.Locations.Order(q.ServiceProviderLocationModel.FullAddress, q.ServiceProviderLocationModel.LocationID),
		).
		Where(sp.ProviderID.Eq(id)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, storageError(err, "failed to find provider by ID")
	}

	return toProviderDomain(providerM)
}

// Create inserts the provider row and then each collection. Callers wanting
// all-or-nothing semantics run it through the transaction manager.
func (repo *providerRepository) Create(ctx context.Context, provider *entity.ServiceProvider) error {
	assignIDs(provider)

	providerM, err := fromProviderDomain(provider)
	if err != nil {
		return err
	}

	db, release, err := repo.pool.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	// Children are inserted explicitly: association saving would silently skip conflicting rows.
	if err := db.Omit(clause.Associations).Create(providerM).Error; err != nil {
		return storageError(err, "failed to create provider")
	}
	if err := createAll(db, providerM.Users); err != nil {
		return storageError(err, "failed to create provider users")
	}
	if err := createAll(db, providerM.Phones); err != nil {
		return storageError(err, "failed to create provider phones")
	}
	if err := createAll(db, providerM.WorkingHours); err != nil {
		return storageError(err, "failed to create provider working hours")
	}
	if err := createAll(db, providerM.Locations); err != nil {
		return storageError(err, "failed to create provider locations")
	}

	return nil
}

// Update changes the scalar attributes that are set in update.
func (repo *providerRepository) Update(ctx context.Context, id uuid.UUID, update repository.ProviderUpdate) error {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	sp := q.ServiceProviderModel

	var assigns []field.AssignExpr
	if update.Name != nil {
		assigns = append(assigns, sp.Name.Value(*update.Name))
	}
	if update.ServiceType != nil {
		assigns = append(assigns, sp.ServiceType.Value(*update.ServiceType))
	}
	if update.Email != nil {
		assigns = append(assigns, sp.Email.Value(*update.Email))
	}

	if len(assigns) == 0 {
		return repo.ensureExists(ctx, q, id)
	}

	info, err := sp.WithContext(ctx).Where(sp.ProviderID.Eq(id)).UpdateSimple(assigns...)
	if err != nil {
		return storageError(err, "failed to update provider")
	}
	if info.RowsAffected == 0 {
		return repository.ErrProviderNotFound
	}

	return nil
}

// UpdateMembership sets the listing tier.
func (repo *providerRepository) UpdateMembership(ctx context.Context, id uuid.UUID, membership entity.Membership) error {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	sp := q.ServiceProviderModel
	info, err := sp.WithContext(ctx).Where(sp.ProviderID.Eq(id)).UpdateSimple(sp.Membership.Value(string(membership)))
	if err != nil {
		return storageError(err, "failed to update provider membership")
	}
	if info.RowsAffected == 0 {
		return repository.ErrProviderNotFound
	}

	return nil
}

// Delete removes the provider and all of its collections.
func (repo *providerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	users, phones, hours, locations := q.UserProviderAssociationModel, q.ProviderPhoneModel, q.WorkingHoursModel, q.ServiceProviderLocationModel
	children := []func() (gen.ResultInfo, error){
		func() (gen.ResultInfo, error) { return users.WithContext(ctx).Where(users.ProviderID.Eq(id)).Delete() },
		func() (gen.ResultInfo, error) { return phones.WithContext(ctx).Where(phones.ProviderID.Eq(id)).Delete() },
		func() (gen.ResultInfo, error) { return hours.WithContext(ctx).Where(hours.ProviderID.Eq(id)).Delete() },
		func() (gen.ResultInfo, error) { return locations.WithContext(ctx).Where(locations.ProviderID.Eq(id)).Delete() },
	}
	for _, deleteChildren := range children {
		if _, err := deleteChildren(); err != nil {
			return storageError(err, "failed to delete provider collections")
		}
	}

	sp := q.ServiceProviderModel
	info, err := sp.WithContext(ctx).Where(sp.ProviderID.Eq(id)).Delete()
	if err != nil {
		return storageError(err, "failed to delete provider")
	}
	if info.RowsAffected == 0 {
		return repository.ErrProviderNotFound
	}

	return nil
}

// AddLocation persists one more location for an existing provider.
func (repo *providerRepository) AddLocation(ctx context.Context, location *entity.ProviderLocation) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}

	locationM, err := fromLocationDomain(location)
	if err != nil {
		return err
	}

	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := q.ServiceProviderLocationModel.WithContext(ctx).Create(&locationM); err != nil {
		return storageError(err, "failed to add provider location")
	}

	return nil
}

// RemoveLocation deletes a location owned by providerID.
func (repo *providerRepository) RemoveLocation(ctx context.Context, providerID, locationID uuid.UUID) error {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return err
	}
	defer release()

	l := q.ServiceProviderLocationModel
	info, err := l.WithContext(ctx).Where(l.LocationID.Eq(locationID), l.ProviderID.Eq(providerID)).Delete()
	if err != nil {
		return storageError(err, "failed to remove provider location")
	}
	if info.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// CountLocations counts the locations of a provider.
func (repo *providerRepository) CountLocations(ctx context.Context, providerID uuid.UUID) (int64, error) {
	q, release, err := repo.dao(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	l := q.ServiceProviderLocationModel
	count, err := l.WithContext(ctx).Where(l.ProviderID.Eq(providerID)).Count()
	if err != nil {
		return 0, storageError(err, "failed to count provider locations")
	}

	return count, nil
}

// dao pins a pooled connection and exposes it through the generated query API.
func (repo *providerRepository) dao(ctx context.Context) (*query.Query, func(), error) {
	db, release, err := repo.pool.acquire(ctx)
	if err != nil {
		return nil, nil, err
	}

	return query.Use(db), release, nil
}

func (repo *providerRepository) ensureExists(ctx context.Context, q *query.Query, id uuid.UUID) error {
	sp := q.ServiceProviderModel
	count, err := sp.WithContext(ctx).Where(sp.ProviderID.Eq(id)).Count()
	if err != nil {
		return storageError(err, "failed to find provider by ID")
	}
	if count == 0 {
		return repository.ErrProviderNotFound
	}

	return nil
}

func createAll[T any](db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	return db.Create(&rows).Error
}

// assignIDs fills in missing identifiers and the provider back-reference of every child.
func assignIDs(provider *entity.ServiceProvider) {
	if provider.ID == uuid.Nil {
		provider.ID = uuid.New()
	}
	for i := range provider.Users {
		provider.Users[i].ProviderID = provider.ID
	}
	for i := range provider.Phones {
		if provider.Phones[i].ID == uuid.Nil {
			provider.Phones[i].ID = uuid.New()
		}
		provider.Phones[i].ProviderID = provider.ID
	}
	for i := range provider.WorkingHours {
		if provider.WorkingHours[i].ID == uuid.Nil {
			provider.WorkingHours[i].ID = uuid.New()
		}
		provider.WorkingHours[i].ProviderID = provider.ID
	}
	for i := range provider.Locations {
		if provider.Locations[i].ID == uuid.Nil {
			provider.Locations[i].ID = uuid.New()
		}
		provider.Locations[i].ProviderID = provider.ID
	}
}

// --- Mapper Functions ---

func toProviderDomains(data []*model.ServiceProviderModel) ([]*entity.ServiceProvider, error) {
	providers := make([]*entity.ServiceProvider, 0, len(data))
	for _, providerM := range data {
		provider, err := toProviderDomain(providerM)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	return providers, nil
}

// toProviderDomain converts a loaded aggregate. Any unreadable stored value
// fails the whole conversion.
func toProviderDomain(data *model.ServiceProviderModel) (*entity.ServiceProvider, error) {
	membership, err := entity.ParseMembership(data.Membership)
	if err != nil {
		return nil, corrupted(data.ProviderID, "membership", err)
	}

	provider := &entity.ServiceProvider{
		ID:           data.ProviderID,
		Name:         data.Name,
		ServiceType:  data.ServiceType,
		Email:        data.Email,
		Membership:   membership,
		Users:        make([]entity.UserProviderAssociation, 0, len(data.Users)),
		Phones:       make([]entity.ProviderPhone, 0, len(data.Phones)),
		WorkingHours: make([]entity.WorkingHours, 0, len(data.WorkingHours)),
		Locations:    make([]entity.ProviderLocation, 0, len(data.Locations)),
	}

	for _, u := range data.Users {
		role, err := entity.ParseProviderRole(u.Role)
		if err != nil {
			return nil, corrupted(data.ProviderID, "user role", err)
		}
		provider.Users = append(provider.Users, entity.UserProviderAssociation{
			UserID:     u.UserID,
			ProviderID: u.ProviderID,
			Role:       role,
		})
	}

	for _, p := range data.Phones {
		provider.Phones = append(provider.Phones, entity.ProviderPhone{
			ID:          p.PhoneID,
			ProviderID:  p.ProviderID,
			PhoneNumber: p.PhoneNumber,
		})
	}

	for _, wh := range data.WorkingHours {
		day, err := entity.ParseDayOfWeek(wh.DayOfWeek)
		if err != nil {
			return nil, corrupted(data.ProviderID, "working hours day", err)
		}
		provider.WorkingHours = append(provider.WorkingHours, entity.WorkingHours{
			ID:         wh.WorkingHoursID,
			ProviderID: wh.ProviderID,
			DayOfWeek:  day,
			StartTime:  entity.TimeOfDay(wh.StartTime),
			EndTime:    entity.TimeOfDay(wh.EndTime),
		})
	}

	for _, l := range data.Locations {
		location, err := toLocationDomain(l)
		if err != nil {
			return nil, err
		}
		provider.Locations = append(provider.Locations, location)
	}

	return provider, nil
}

func toLocationDomain(data model.ServiceProviderLocationModel) (entity.ProviderLocation, error) {
	location := entity.ProviderLocation{
		ID:          data.LocationID,
		ProviderID:  data.ProviderID,
		FullAddress: data.FullAddress,
	}

	if data.GeoLocation != nil {
		point, err := geo.Decode(geo.StoredPoint(*data.GeoLocation))
		if err != nil {
			return entity.ProviderLocation{}, errors.Wrapf(err, "location %s", data.LocationID)
		}
		location.GeoLocation = point
	}

	return location, nil
}

func fromProviderDomain(data *entity.ServiceProvider) (*model.ServiceProviderModel, error) {
	providerM := &model.ServiceProviderModel{
		ProviderID:   data.ID,
		Name:         data.Name,
		ServiceType:  data.ServiceType,
		Email:        data.Email,
		Membership:   string(data.Membership),
		Users:        make([]model.UserProviderAssociationModel, 0, len(data.Users)),
		Phones:       make([]model.ProviderPhoneModel, 0, len(data.Phones)),
		WorkingHours: make([]model.WorkingHoursModel, 0, len(data.WorkingHours)),
		Locations:    make([]model.ServiceProviderLocationModel, 0, len(data.Locations)),
	}
	if providerM.Membership == "" {
		providerM.Membership = string(entity.MembershipFree)
	}

	for _, u := range data.Users {
		providerM.Users = append(providerM.Users, model.UserProviderAssociationModel{
			UserID:     u.UserID,
			ProviderID: data.ID,
			Role:       string(u.Role),
		})
	}
	for _, p := range data.Phones {
		providerM.Phones = append(providerM.Phones, model.ProviderPhoneModel{
			PhoneID:     p.ID,
			ProviderID:  data.ID,
			PhoneNumber: p.PhoneNumber,
		})
	}
	for _, wh := range data.WorkingHours {
		providerM.WorkingHours = append(providerM.WorkingHours, model.WorkingHoursModel{
			WorkingHoursID: wh.ID,
			ProviderID:     data.ID,
			DayOfWeek:      string(wh.DayOfWeek),
			StartTime:      model.ClockTime(wh.StartTime),
			EndTime:        model.ClockTime(wh.EndTime),
		})
	}
	for i := range data.Locations {
		locationM, err := fromLocationDomain(&data.Locations[i])
		if err != nil {
			return nil, err
		}
		providerM.Locations = append(providerM.Locations, locationM)
	}

	return providerM, nil
}

func fromLocationDomain(data *entity.ProviderLocation) (model.ServiceProviderLocationModel, error) {
	locationM := model.ServiceProviderLocationModel{
		LocationID:  data.ID,
		ProviderID:  data.ProviderID,
		FullAddress: data.FullAddress,
	}

	if data.GeoLocation != nil {
		stored, err := geo.Encode(*data.GeoLocation)
		if err != nil {
			return model.ServiceProviderLocationModel{}, err
		}
		point := string(stored)
		locationM.GeoLocation = &point
	}

	return locationM, nil
}

func corrupted(providerID uuid.UUID, field string, err error) error {
	return domainerrors.ErrDataCorruption.WithDetails("provider " + providerID.String() + " has invalid " + field + ": " + err.Error())
}
