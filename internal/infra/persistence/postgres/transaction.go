package postgres

import (
	"context"

	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/repository"
	"pawtrack/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	pool *Pool
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction and uses it to create repository
// instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	pool *Pool
	tx   *gorm.DB // In GORM, a transaction is also a *gorm.DB
}

// NewProviderRepository creates a new provider repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewProviderRepository() repository.ProviderRepository {
	return NewProviderRepository(f.pool.withDB(f.tx))
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(pool *Pool) repository.TransactionManager {
	return &gormTransactionManager{pool: pool}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx, release, err := tm.pool.begin(ctx)
	if err != nil {
		return err
	}
	defer release()

	// Roll back on panic, then let Fx or the recover middleware handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{pool: tm.pool, tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage("failed to commit transaction: " + err.Error())
	}

	return nil
}
