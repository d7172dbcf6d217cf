package testutil

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database with every model migrated.
// The pool is pinned to one connection: each new ":memory:" connection would otherwise be a
// fresh, empty database. Transactions therefore serialize, which also makes booking tests
// deterministic.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent), // Silent mode for tests
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		CleanupTestDB(t, db)
	})

	return db
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("Failed to get database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		t.Errorf("Failed to close database: %v", err)
	}
}

// SetupMockDB opens GORM over go-sqlmock with the postgres dialector.
// Use it when a test must prove which statements (or none) reach the database.
func SetupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       conn,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return db, mock
}

// MustCreate inserts fixtures and fails the test on error
func MustCreate(t *testing.T, db *gorm.DB, values ...interface{}) {
	t.Helper()

	for _, v := range values {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("Failed to create fixture %T: %v", v, err)
		}
	}
}

// CountRows counts rows of a model, optionally filtered
func CountRows(t *testing.T, db *gorm.DB, m interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	q := db.Model(m)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("Failed to count %T: %v", m, err)
	}
	return count
}
