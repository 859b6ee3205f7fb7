package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthChecker(t *testing.T) {
	db := newTestDB(t)
	checker := NewHealthChecker(db)

	require.NoError(t, checker.Check(t.Context()))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.Error(t, checker.Check(t.Context()))
}
