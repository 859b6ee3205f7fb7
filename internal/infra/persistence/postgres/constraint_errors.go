package postgres

import (
	"context"

	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes the repositories react to.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgQueryCanceled       = "57014"
)

func pgErrorCode(err error) string {
	pgErr, ok := errors.AsType[*pgconn.PgError](err)
	if !ok {
		return ""
	}

	return pgErr.Code
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCheckViolation
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || pgErrorCode(err) == pgQueryCanceled
}

// storageError converts a failed write or read into a domain error. Domain
// errors produced further down (pool exhaustion, decode corruption) pass through.
func storageError(err error, details string) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrProviderConflict.WithDetails(details)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrProviderNotFound.WithDetails(details)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details)
	case isTimeout(err):
		return domainerrors.ErrResourceExhausted.WithDetails(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
