//go:build integration

package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/livro-service/livro/internal/handler"
	"github.com/Astemirdum/livro-service/livro/internal/model"
	"github.com/Astemirdum/livro-service/livro/internal/repository"
	"github.com/Astemirdum/livro-service/livro/internal/service"
	"github.com/Astemirdum/livro-service/livro/migrations"
	"github.com/Astemirdum/livro-service/pkg/kafka"
	"github.com/Astemirdum/livro-service/pkg/postgres/postgrestest"
)

type livroResource struct {
	t    *testing.T
	repo repository.Repository
	e    *echo.Echo
}

func (lr *livroResource) do(method, target string, body any) *httptest.ResponseRecorder {
	lr.t.Helper()
	var rd io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(lr.t, err)
		rd = strings.NewReader(string(data))
	}
	r := httptest.NewRequest(method, target, rd)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	lr.e.ServeHTTP(w, r)
	return w
}

func (lr *livroResource) all() []model.Livro {
	lr.t.Helper()
	list, err := lr.repo.FindAll(context.Background(), nil)
	require.NoError(lr.t, err)
	return list
}

func TestLivroResource_Integration(t *testing.T) {
	pool := postgrestest.NewPool(t, migrations.MigrationFiles)
	log := zap.NewNop()
	repo, err := repository.NewRepository(pool, log)
	require.NoError(t, err)
	svc := service.NewService(repo, kafka.NewPublisher(nil, nil), log)
	lr := &livroResource{t: t, repo: repo, e: handler.New(svc, log).NewRouter()}
	ctx := context.Background()

	newLivro := func() model.Livro { return model.NewLivro(defaultTitulo, defaultCategoria) }

	t.Run("create livro", func(t *testing.T) {
		sizeBefore := len(lr.all())

		w := lr.do(http.MethodPost, "/api/livros", newLivro())
		require.Equal(t, http.StatusCreated, w.Code)

		list := lr.all()
		require.Len(t, list, sizeBefore+1)
		last := list[len(list)-1]
		require.Equal(t, defaultTitulo, *last.Titulo)
		require.Equal(t, defaultCategoria, *last.Categoria)
	})

	t.Run("create livro with existing id", func(t *testing.T) {
		sizeBefore := len(lr.all())
		l := newLivro()
		l.ID = ptr[int64](1)

		w := lr.do(http.MethodPost, "/api/livros", l)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Len(t, lr.all(), sizeBefore)
	})

	t.Run("titulo is required", func(t *testing.T) {
		sizeBefore := len(lr.all())
		l := newLivro()
		l.Titulo = nil

		w := lr.do(http.MethodPost, "/api/livros", l)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Len(t, lr.all(), sizeBefore)
	})

	t.Run("categoria is required", func(t *testing.T) {
		sizeBefore := len(lr.all())
		l := newLivro()
		l.Categoria = nil

		w := lr.do(http.MethodPost, "/api/livros", l)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Len(t, lr.all(), sizeBefore)
	})

	t.Run("get all livros", func(t *testing.T) {
		saved, err := repo.SaveAndFlush(ctx, newLivro())
		require.NoError(t, err)

		w := lr.do(http.MethodGet, "/api/livros?sort=id,desc", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

		var list []model.Livro
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.NotEmpty(t, list)
		require.Equal(t, saved, list[0])
	})

	t.Run("get livro", func(t *testing.T) {
		saved, err := repo.SaveAndFlush(ctx, newLivro())
		require.NoError(t, err)

		w := lr.do(http.MethodGet, fmt.Sprintf("/api/livros/%d", *saved.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got model.Livro
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Equal(t, saved, got)
	})

	t.Run("get non existing livro", func(t *testing.T) {
		w := lr.do(http.MethodGet, fmt.Sprintf("/api/livros/%d", int64(math.MaxInt64)), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update livro", func(t *testing.T) {
		saved, err := repo.SaveAndFlush(ctx, newLivro())
		require.NoError(t, err)
		sizeBefore := len(lr.all())

		updated, err := repo.FindByID(ctx, *saved.ID)
		require.NoError(t, err)
		updated.Titulo = ptr(updatedTitulo)
		updated.Categoria = ptr(updatedCategoria)

		w := lr.do(http.MethodPut, "/api/livros", updated)
		require.Equal(t, http.StatusOK, w.Code)

		list := lr.all()
		require.Len(t, list, sizeBefore)
		last := list[len(list)-1]
		require.Equal(t, updatedTitulo, *last.Titulo)
		require.Equal(t, updatedCategoria, *last.Categoria)
	})

	t.Run("update livro without id", func(t *testing.T) {
		sizeBefore := len(lr.all())

		w := lr.do(http.MethodPut, "/api/livros", newLivro())
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Len(t, lr.all(), sizeBefore)
	})

	t.Run("update livro with null titulo", func(t *testing.T) {
		saved, err := repo.SaveAndFlush(ctx, newLivro())
		require.NoError(t, err)
		sizeBefore := len(lr.all())

		l := saved
		l.Titulo = nil
		l.Categoria = ptr(updatedCategoria)
		w := lr.do(http.MethodPut, "/api/livros", l)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "constraint-violation")
		require.Len(t, lr.all(), sizeBefore)

		stored, err := repo.FindByID(ctx, *saved.ID)
		require.NoError(t, err)
		require.Equal(t, saved, stored)
	})

	t.Run("update livro with unknown id", func(t *testing.T) {
		sizeBefore := len(lr.all())
		l := newLivro()
		l.ID = ptr[int64](math.MaxInt64)
		l.Titulo = ptr(updatedTitulo)

		w := lr.do(http.MethodPut, "/api/livros", l)
		require.Equal(t, http.StatusOK, w.Code)

		var got model.Livro
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.NotNil(t, got.ID)
		require.NotEqual(t, int64(math.MaxInt64), *got.ID)
		require.Equal(t, updatedTitulo, *got.Titulo)
		require.Len(t, lr.all(), sizeBefore+1)
	})

	t.Run("create livro with empty titulo", func(t *testing.T) {
		sizeBefore := len(lr.all())

		w := lr.do(http.MethodPost, "/api/livros", model.NewLivro("", defaultCategoria))
		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, lr.all(), sizeBefore+1)
	})

	t.Run("delete livro", func(t *testing.T) {
		saved, err := repo.SaveAndFlush(ctx, newLivro())
		require.NoError(t, err)
		sizeBefore := len(lr.all())

		w := lr.do(http.MethodDelete, fmt.Sprintf("/api/livros/%d", *saved.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, lr.all(), sizeBefore-1)
	})
}
