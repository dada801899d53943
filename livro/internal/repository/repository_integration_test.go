//go:build integration

package repository_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/livro-service/livro/internal/errs"
	"github.com/Astemirdum/livro-service/livro/internal/model"
	"github.com/Astemirdum/livro-service/livro/internal/repository"
	"github.com/Astemirdum/livro-service/livro/migrations"
	"github.com/Astemirdum/livro-service/pkg/postgres/postgrestest"
)

func ptr[T any](v T) *T { return &v }

func TestRepository_Integration(t *testing.T) {
	pool := postgrestest.NewPool(t, migrations.MigrationFiles)
	repo, err := repository.NewRepository(pool, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("save assigns id", func(t *testing.T) {
		postgrestest.Truncate(t, pool)
		saved, err := repo.Save(ctx, model.NewLivro("AAAAAAAAAA", "AAAAAAAAAA"))
		require.NoError(t, err)
		require.NotNil(t, saved.ID)
		require.Equal(t, "AAAAAAAAAA", *saved.Titulo)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("save replaces existing row", func(t *testing.T) {
		postgrestest.Truncate(t, pool)
		saved, err := repo.SaveAndFlush(ctx, model.NewLivro("AAAAAAAAAA", "AAAAAAAAAA"))
		require.NoError(t, err)

		saved.Titulo = ptr("BBBBBBBBBB")
		saved.Categoria = ptr("BBBBBBBBBB")
		updated, err := repo.Save(ctx, saved)
		require.NoError(t, err)
		require.Equal(t, saved, updated)

		got, err := repo.FindByID(ctx, *saved.ID)
		require.NoError(t, err)
		require.Equal(t, "BBBBBBBBBB", *got.Titulo)
		require.Equal(t, "BBBBBBBBBB", *got.Categoria)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("save with unknown id inserts", func(t *testing.T) {
		postgrestest.Truncate(t, pool)
		l := model.NewLivro("AAAAAAAAAA", "AAAAAAAAAA")
		l.ID = ptr[int64](math.MaxInt64)
		saved, err := repo.Save(ctx, l)
		require.NoError(t, err)
		require.NotEqual(t, int64(math.MaxInt64), *saved.ID)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("null column is a validation error", func(t *testing.T) {
		postgrestest.Truncate(t, pool)
		_, err := repo.Save(ctx, model.Livro{Titulo: ptr("AAAAAAAAAA")})
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "categoria", verr.Fields[0].Field)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("find all sorted", func(t *testing.T) {
		postgrestest.Truncate(t, pool)
		first, err := repo.SaveAndFlush(ctx, model.NewLivro("B", "x"))
		require.NoError(t, err)
		second, err := repo.SaveAndFlush(ctx, model.NewLivro("A", "y"))
		require.NoError(t, err)

		byIDDesc, err := repo.FindAll(ctx, []model.Order{{Field: "id", Desc: true}})
		require.NoError(t, err)
		require.Equal(t, []model.Livro{second, first}, byIDDesc)

		byTitulo, err := repo.FindAll(ctx, []model.Order{{Field: "titulo"}})
		require.NoError(t, err)
		require.Equal(t, []model.Livro{second, first}, byTitulo)

		byDefault, err := repo.FindAll(ctx, nil)
		require.NoError(t, err)
		require.Equal(t, []model.Livro{first, second}, byDefault)

		_, err = repo.FindAll(ctx, []model.Order{{Field: "autor"}})
		require.ErrorIs(t, err, errs.ErrInvalidSort)
	})

	t.Run("find by id not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, math.MaxInt64)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		postgrestest.Truncate(t, pool)
		saved, err := repo.SaveAndFlush(ctx, model.NewLivro("AAAAAAAAAA", "AAAAAAAAAA"))
		require.NoError(t, err)

		deleted, err := repo.DeleteByID(ctx, *saved.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		deleted, err = repo.DeleteByID(ctx, *saved.ID)
		require.NoError(t, err)
		require.False(t, deleted)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, repo.Ping(ctx))
	})
}
