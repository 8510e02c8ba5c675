package test

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	integresql "github.com/allaboutapps/integresql-client-go"
	integresqlutil "github.com/allaboutapps/integresql-client-go/pkg/util"
	"github/chapool/nft-mint/internal/util"
	dbutil "github/chapool/nft-mint/internal/util/db"

	// postgres driver
	_ "github.com/lib/pq"
)

var (
	client *integresql.Client
	hash   string

	// tracks template testDatabase initialization
	doOnce sync.Once

	// we will compute a db template hash over the following dirs/files
	migDir      = filepath.Join(util.GetProjectRootDir(), "migrations")
	fixFile, _  = filepath.Abs(filepath.Join(util.GetProjectRootDir(), "internal", "test", "fixtures.go"))
	selfFile, _ = filepath.Abs(filepath.Join(util.GetProjectRootDir(), "internal", "test", "test_database.go"))
)

// WithTestDatabase runs closure against an isolated database cloned from a template that has
// all migrations and fixtures applied.
func WithTestDatabase(t *testing.T, closure func(db *sql.DB)) {
	t.Helper()

	// new context derived from background, so we don't need to cancel
	ctx := context.Background()

	doOnce.Do(func() {
		t.Helper()
		initializeTestDatabaseTemplate(ctx, t)
	})

	testDatabase, err := client.GetTestDatabase(ctx, hash)
	if err != nil {
		t.Fatalf("Failed to obtain test database: %v", err)
	}

	connectionString := testDatabase.Config.ConnectionString()

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		t.Fatalf("Failed to setup test database for connectionString %q: %v", connectionString, err)
	}

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping test database for connectionString %q: %v", connectionString, err)
	}

	t.Logf("WithTestDatabase: %q", testDatabase.Config.Database)

	closure(db)

	// this db might already be closed by the closure
	if err := db.Close(); err != nil {
		t.Logf("Failed to close test database %q: %v", testDatabase.Config.Database, err)
	}
}

func initializeTestDatabaseTemplate(ctx context.Context, t *testing.T) {
	t.Helper()

	initTestDatabaseHash(t)
	initIntegresClient(t)

	if err := client.SetupTemplateWithDBClient(ctx, hash, func(db *sql.DB) error {
		t.Helper()

		if err := ApplyMigrations(t, db); err != nil {
			return err
		}

		return InsertFixtures(ctx, t, db)
	}); err != nil {
		t.Fatalf("Failed to setup template database for hash %q: %v", hash, err)
	}
}

func initIntegresClient(t *testing.T) {
	t.Helper()

	c, err := integresql.DefaultClientFromEnv()
	if err != nil {
		t.Fatalf("Failed to create new integresql-client: %v", err)
	}

	client = c
}

func initTestDatabaseHash(t *testing.T) {
	t.Helper()

	h, err := integresqlutil.GetTemplateHash(migDir, fixFile, selfFile)
	if err != nil {
		t.Fatalf("Failed to get template hash: %#v", err)
	}

	hash = h
}

// ApplyMigrations runs the embedded migrations up.
func ApplyMigrations(t *testing.T, db *sql.DB) error {
	t.Helper()

	n, err := dbutil.ApplyMigrations(context.Background(), db)
	if err != nil {
		t.Errorf("Failed to execute migrations: %v", err)
		return err
	}

	t.Logf("Applied %d migrations", n)

	return nil
}
