package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"memopad/internal/repo"
)

func OpenTestDB(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "memopad_test.db")
	db, err := repo.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repo.ApplyMigrations(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return db, func() {
		_ = db.Close()
	}
}
