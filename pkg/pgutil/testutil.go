package pgutil

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"

	"github.com/chainsafe/social-wallet-api/pkg/config"
)

const (
	testImage    = "postgres:16-alpine"
	testDatabase = "social_wallet_test"
	testUser     = "test_user"
	testPassword = "test_pass"

	connectAttempts = 8
)

// RequireDocker skips the test when no docker daemon socket is reachable.
func RequireDocker(t *testing.T) {
	t.Helper()

	for _, sock := range []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	} {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		if conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock); err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed tests")
}

// SetupTestDB starts a throwaway PostgreSQL container and connects to it.
// The returned func closes the connection and terminates the container.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	RequireDocker(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx, testImage,
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	terminate := func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	cfg, err := containerConfig(ctx, container)
	if err != nil {
		terminate()
		t.Fatalf("failed to resolve container address: %v", err)
	}

	db, err := connectWithRetry(ctx, cfg)
	if err != nil {
		terminate()
		t.Fatalf("failed to connect to test database: %v", err)
	}

	return db, func() {
		_ = db.Close()
		terminate()
	}
}

func containerConfig(ctx context.Context, container *postgres.PostgresContainer) (*config.DatabaseConfig, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, err
	}
	return &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     testUser,
		Password: testPassword,
		Database: testDatabase,
		SSLMode:  "disable",
	}, nil
}

// connectWithRetry backs off exponentially from 100ms while the container finishes booting
func connectWithRetry(ctx context.Context, cfg *config.DatabaseConfig) (db *bun.DB, err error) {
	backoff := 100 * time.Millisecond
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if db, err = ConnectDB(ctx, cfg); err == nil {
			return db, nil
		}
		time.Sleep(backoff)
		backoff *= 2
	}
	return nil, err
}

func catalogHas(t *testing.T, db *bun.DB, query string, args ...any) bool {
	t.Helper()

	var exists bool
	if err := db.NewSelect().ColumnExpr("EXISTS ("+query+")", args...).Scan(context.Background(), &exists); err != nil {
		t.Fatalf("catalog lookup failed: %v", err)
	}
	return exists
}

func tableExists(t *testing.T, db *bun.DB, table string) bool {
	t.Helper()
	return catalogHas(t, db,
		"SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?", table)
}

// AssertTableExists fails the test when table is missing from the public schema
func AssertTableExists(t *testing.T, db *bun.DB, table string) {
	t.Helper()
	if !tableExists(t, db, table) {
		t.Errorf("table %s does not exist", table)
	}
}

// AssertTableNotExists fails the test when table is present in the public schema
func AssertTableNotExists(t *testing.T, db *bun.DB, table string) {
	t.Helper()
	if tableExists(t, db, table) {
		t.Errorf("table %s should not exist but it does", table)
	}
}

// AssertIndexExists fails the test when the named index is missing
func AssertIndexExists(t *testing.T, db *bun.DB, index string) {
	t.Helper()
	if !catalogHas(t, db, "SELECT 1 FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?", index) {
		t.Errorf("index %s does not exist", index)
	}
}

// AssertRowCount fails the test when table does not hold exactly expected rows
func AssertRowCount(t *testing.T, db *bun.DB, table string, expected int) {
	t.Helper()

	count, err := db.NewSelect().TableExpr("?", bun.Ident(table)).Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count rows in table %s: %v", table, err)
	}
	if count != expected {
		t.Errorf("table %s: expected %d rows, got %d", table, expected, count)
	}
}
