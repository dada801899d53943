package handler

import (
	"context"

	"github.com/Astemirdum/livro-service/livro/internal/model"
	"github.com/Astemirdum/livro-service/livro/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LivroService interface {
	Create(ctx context.Context, livro model.Livro) (model.Livro, error)
	Update(ctx context.Context, livro model.Livro) (model.Livro, error)
	List(ctx context.Context, sort []model.Order) ([]model.Livro, error)
	Get(ctx context.Context, id int64) (model.Livro, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

var _ LivroService = (*service.Service)(nil)
