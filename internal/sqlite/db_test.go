package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	for _, table := range []string{"assets", "asset_tags", "activity_log"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}

	require.NoError(t, db.RunMigrations(), "migrations should be re-runnable")
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")

	_, err = db.ExecContext(context.Background(),
		`INSERT INTO asset_tags (asset_id, position, tag) VALUES (?, ?, ?)`, "missing", 0, "nature")
	require.Error(t, err, "tag without asset should fail")
}

// TestAssetTypeConstraint verifies the asset type check
func TestAssetTypeConstraint(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO assets (id, title, url, type) VALUES (?, ?, ?, ?)`, "a1", "Clip", "https://x", "hologram")
	require.Error(t, err, "should fail with invalid type")
}

func TestLikePattern(t *testing.T) {
	require.Equal(t, "%forest%", likePattern("Forest"))
	require.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
}
