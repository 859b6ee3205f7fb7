package postgres

import (
	"testing"
	"time"

	"pawtrack/internal/domain/repository"
	"pawtrack/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	db := newTestDB(t)
	pool := newPool(db, time.Second)
	tm := NewTransactionManager(pool)
	repo := NewProviderRepository(pool)
	ctx := t.Context()

	t.Run("commits on success", func(t *testing.T) {
		provider := providerFixture{name: "Committed"}.build()

		err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewProviderRepository().Create(ctx, provider)
		})
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, provider.ID)
		assert.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		provider := providerFixture{name: "Rolled Back"}.build()
		boom := errors.New("boom")

		err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.NewProviderRepository().Create(ctx, provider); err != nil {
				return err
			}

			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = repo.FindByID(ctx, provider.ID)
		assert.ErrorIs(t, err, repository.ErrProviderNotFound)
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		provider := providerFixture{name: "Panicked"}.build()

		assert.Panics(t, func() {
			_ = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
				if err := factory.NewProviderRepository().Create(ctx, provider); err != nil {
					return err
				}
				panic("boom")
			})
		})

		_, err := repo.FindByID(ctx, provider.ID)
		assert.ErrorIs(t, err, repository.ErrProviderNotFound)
	})
}
