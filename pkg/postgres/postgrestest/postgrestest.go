// Package postgrestest starts a throwaway PostgreSQL for integration tests.
package postgrestest

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	pg "github.com/Astemirdum/livro-service/pkg/postgres"
)

const (
	image    = "postgres:16-alpine"
	database = "livro"
	user     = "livro"
	password = "livro"
)

// NewPool runs a container, applies migrations and closes everything on cleanup.
func NewPool(t *testing.T, migrations fs.FS) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase(database),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pg.NewPostgresDBFromDSN(ctx, dsn, 5, migrations)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// Truncate empties the livro table and restarts its id sequence.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "truncate table livro restart identity")
	require.NoError(t, err)
}
