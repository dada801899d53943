package model_test

import (
	"testing"

	"github.com/Astemirdum/livro-service/livro/internal/model"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestLivro_Equal(t *testing.T) {
	t.Parallel()
	livro1 := model.Livro{ID: ptr[int64](1)}
	livro2 := model.Livro{ID: livro1.ID}
	require.True(t, livro1.Equal(&livro2))

	livro2.ID = ptr[int64](2)
	require.False(t, livro1.Equal(&livro2))

	livro1.ID = nil
	require.False(t, livro1.Equal(&livro2))

	livro2.ID = nil
	require.False(t, livro1.Equal(&livro2))
	require.True(t, livro1.Equal(&livro1))
	require.False(t, livro1.Equal(nil))
}

func TestLivro_String(t *testing.T) {
	t.Parallel()
	l := model.NewLivro("AAAAAAAAAA", "BBBBBBBBBB")
	require.Equal(t, "Livro{id=null, titulo='AAAAAAAAAA', categoria='BBBBBBBBBB'}", l.String())

	l.ID = ptr[int64](7)
	l.Categoria = nil
	require.Equal(t, "Livro{id=7, titulo='AAAAAAAAAA', categoria='null'}", l.String())
}
