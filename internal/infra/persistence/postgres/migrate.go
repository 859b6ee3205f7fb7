package postgres

import (
	"context"
	_ "embed"
	"log/slog"

	"pawtrack/internal/errors"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the provider tables and indexes if they are missing.
// Every statement is idempotent.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if err := db.WithContext(ctx).Exec(schemaSQL).Error; err != nil {
		return errors.Wrap(err, "failed to apply schema")
	}

	logger.InfoContext(ctx, "Schema applied")

	return nil
}
