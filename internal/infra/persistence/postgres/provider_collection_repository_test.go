package postgres

import (
	"testing"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderRepository_Phones(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := t.Context()

	provider := seed(t, repo, providerFixture{name: "Phones", phone: "+12125550100"})[0]

	added := []*entity.ProviderPhone{
		{ProviderID: provider.ID, PhoneNumber: "+12125550101"},
		{ProviderID: provider.ID, PhoneNumber: "+12125550102"},
	}
	require.NoError(t, repo.AddPhones(ctx, added))
	assert.NotEqual(t, uuid.Nil, added[0].ID)

	count, err := repo.CountPhones(ctx, provider.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	got, err := repo.FindByID(ctx, provider.ID)
	require.NoError(t, err)
	require.Len(t, got.Phones, 3)
	assert.Equal(t, "+12125550100", got.Phones[0].PhoneNumber)
	assert.Equal(t, "+12125550102", got.Phones[2].PhoneNumber)

	assert.ErrorIs(t, repo.RemovePhone(ctx, uuid.New(), added[0].ID), repository.ErrPhoneNotFound)
	require.NoError(t, repo.RemovePhone(ctx, provider.ID, added[0].ID))
	assert.ErrorIs(t, repo.RemovePhone(ctx, provider.ID, added[0].ID), repository.ErrPhoneNotFound)

	count, err = repo.CountPhones(ctx, provider.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestProviderRepository_AddPhones_Rejected(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := t.Context()

	provider := seed(t, repo, providerFixture{name: "Phones", phone: "+12125550100"})[0]

	err := repo.AddPhones(ctx, []*entity.ProviderPhone{{ProviderID: provider.ID, PhoneNumber: "+12125550100"}})
	assert.ErrorIs(t, err, domainerrors.ErrProviderConflict)

	err = repo.AddPhones(ctx, []*entity.ProviderPhone{{ProviderID: uuid.New(), PhoneNumber: "+12125550100"}})
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotFound)
}

func TestProviderRepository_WorkingHours(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := t.Context()

	provider := seed(t, repo, providerFixture{name: "Hours", day: entity.Monday})[0]

	friday := &entity.WorkingHours{
		ProviderID: provider.ID,
		DayOfWeek:  entity.Friday,
		StartTime:  entity.MustTimeOfDay("10:00"),
		EndTime:    entity.MustTimeOfDay("16:00"),
	}
	require.NoError(t, repo.AddWorkingHours(ctx, []*entity.WorkingHours{friday}))
	require.NotEqual(t, uuid.Nil, friday.ID)

	count, err := repo.CountWorkingHours(ctx, provider.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	duplicate := &entity.WorkingHours{
		ProviderID: provider.ID,
		DayOfWeek:  entity.Monday,
		StartTime:  entity.MustTimeOfDay("06:00"),
		EndTime:    entity.MustTimeOfDay("07:00"),
	}
	assert.ErrorIs(t, repo.AddWorkingHours(ctx, []*entity.WorkingHours{duplicate}), domainerrors.ErrProviderConflict)

	moved := *friday
	moved.DayOfWeek = entity.Saturday
	moved.EndTime = entity.MustTimeOfDay("13:30")
	require.NoError(t, repo.UpdateWorkingHours(ctx, &moved))

	got, err := repo.FindByID(ctx, provider.ID)
	require.NoError(t, err)
	entity.SortWorkingHours(got.WorkingHours)
	require.Len(t, got.WorkingHours, 2)
	assert.Equal(t, entity.Saturday, got.WorkingHours[1].DayOfWeek)
	assert.Equal(t, "13:30", got.WorkingHours[1].EndTime.String())

	onMonday := moved
	onMonday.DayOfWeek = entity.Monday
	assert.ErrorIs(t, repo.UpdateWorkingHours(ctx, &onMonday), domainerrors.ErrProviderConflict)

	foreign := moved
	foreign.ProviderID = uuid.New()
	assert.ErrorIs(t, repo.UpdateWorkingHours(ctx, &foreign), repository.ErrWorkingHoursNotFound)

	require.NoError(t, repo.RemoveWorkingHours(ctx, provider.ID, friday.ID))
	assert.ErrorIs(t, repo.RemoveWorkingHours(ctx, provider.ID, friday.ID), repository.ErrWorkingHoursNotFound)

	count, err = repo.CountWorkingHours(ctx, provider.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestProviderRepository_Users(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := t.Context()

	owner := uuid.New()
	provider := seed(t, repo, providerFixture{name: "Users", owner: owner})[0]

	coOwner, moderator := uuid.New(), uuid.New()
	require.NoError(t, repo.AddUser(ctx, &entity.UserProviderAssociation{UserID: coOwner, ProviderID: provider.ID, Role: entity.ProviderRoleOwner}))
	require.NoError(t, repo.AddUser(ctx, &entity.UserProviderAssociation{UserID: moderator, ProviderID: provider.ID, Role: entity.ProviderRoleModerator}))

	err := repo.AddUser(ctx, &entity.UserProviderAssociation{UserID: moderator, ProviderID: provider.ID, Role: entity.ProviderRoleOwner})
	assert.ErrorIs(t, err, domainerrors.ErrProviderConflict)

	owners, err := repo.CountOwners(ctx, provider.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, owners)

	require.NoError(t, repo.RemoveUser(ctx, provider.ID, coOwner))
	assert.ErrorIs(t, repo.RemoveUser(ctx, provider.ID, coOwner), repository.ErrUserLinkNotFound)

	owners, err = repo.CountOwners(ctx, provider.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, owners)

	got, err := repo.FindByID(ctx, provider.ID)
	require.NoError(t, err)
	role, ok := got.RoleOf(moderator)
	require.True(t, ok)
	assert.Equal(t, entity.ProviderRoleModerator, role)
	assert.Len(t, got.Users, 2)
}

func TestProviderRepository_CollectionsThroughTransaction(t *testing.T) {
	db := newTestDB(t)
	pool := newPool(db, 0)
	repo := NewProviderRepository(pool)
	ctx := t.Context()

	provider := providerFixture{name: "Tx"}.build()
	require.NoError(t, repo.Create(ctx, provider))

	err := NewTransactionManager(pool).Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txRepo := repoFactory.NewProviderRepository()
		if err := txRepo.AddPhones(ctx, []*entity.ProviderPhone{{ProviderID: provider.ID, PhoneNumber: "+12125559999"}}); err != nil {
			return err
		}

		return txRepo.AddPhones(ctx, []*entity.ProviderPhone{{ProviderID: provider.ID, PhoneNumber: "+12125559999"}})
	})
	require.ErrorIs(t, err, domainerrors.ErrProviderConflict)

	count, err := repo.CountPhones(ctx, provider.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
