package postgres

import (
	"context"
	"time"

	"pawtrack/config"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/errors"

	"gorm.io/gorm"
)

// Pool hands out one pinned connection per repository call and bounds how
// long a caller waits for it.
type Pool struct {
	db             *gorm.DB
	acquireTimeout time.Duration
}

// NewPool is the fx constructor for Pool.
func NewPool(db *gorm.DB, cfg *config.Config) *Pool {
	return newPool(db, cfg.Pool.AcquireTimeout)
}

func newPool(db *gorm.DB, acquireTimeout time.Duration) *Pool {
	return &Pool{db: db, acquireTimeout: acquireTimeout}
}

// withDB returns a pool that reuses db as is. Used for transaction-bound repositories.
func (p *Pool) withDB(db *gorm.DB) *Pool {
	return &Pool{db: db, acquireTimeout: p.acquireTimeout}
}

// acquire returns a session pinned to a single connection and a release func
// that hands the connection back. Sessions already inside a transaction are
// returned unchanged.
func (p *Pool) acquire(ctx context.Context) (*gorm.DB, func(), error) {
	if _, inTx := p.db.Statement.ConnPool.(gorm.TxCommitter); inTx {
		return p.db.WithContext(ctx), func() {}, nil
	}

	sqlDB, err := p.db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get sql.DB")
	}

	acquireCtx := ctx
	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
		defer cancel()
	}

	conn, err := sqlDB.Conn(acquireCtx)
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, domainerrors.ErrResourceExhausted.WithDetails("timed out waiting for a database connection")
		}

		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to acquire database connection")
	}

	session := p.db.WithContext(ctx)
	session.Statement.ConnPool = conn

	return session, func() { _ = conn.Close() }, nil
}

// begin starts a transaction on a pinned connection.
func (p *Pool) begin(ctx context.Context) (*gorm.DB, func(), error) {
	session, release, err := p.acquire(ctx)
	if err != nil {
		return nil, nil, err
	}

	tx := session.Begin()
	if tx.Error != nil {
		release()

		return nil, nil, errors.Wrap(tx.Error, "failed to begin transaction")
	}

	return tx, release, nil
}
