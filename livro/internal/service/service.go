package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/livro-service/livro/internal/model"
	livroRepo "github.com/Astemirdum/livro-service/livro/internal/repository"
	"github.com/Astemirdum/livro-service/pkg/kafka"
)

type Service struct {
	log       *zap.Logger
	repo      livroRepo.Repository
	publisher kafka.Publisher
	now       func() time.Time
}

func NewService(repo livroRepo.Repository, publisher kafka.Publisher, log *zap.Logger) *Service {
	return &Service{
		log:       log.Named("service"),
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *Service) Create(ctx context.Context, livro model.Livro) (model.Livro, error) {
	saved, err := s.repo.Save(ctx, livro)
	if err != nil {
		return model.Livro{}, err
	}
	s.publish(ctx, model.EventCreated, saved)
	return saved, nil
}

func (s *Service) Update(ctx context.Context, livro model.Livro) (model.Livro, error) {
	saved, err := s.repo.Save(ctx, livro)
	if err != nil {
		return model.Livro{}, err
	}
	s.publish(ctx, model.EventUpdated, saved)
	return saved, nil
}

func (s *Service) List(ctx context.Context, sort []model.Order) ([]model.Livro, error) {
	return s.repo.FindAll(ctx, sort)
}

func (s *Service) Get(ctx context.Context, id int64) (model.Livro, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		s.publish(ctx, model.EventDeleted, model.Livro{ID: &id})
	}
	return nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// publish never fails the caller: the write is already committed.
func (s *Service) publish(ctx context.Context, typ model.EventType, livro model.Livro) {
	var key string
	if livro.ID != nil {
		key = strconv.FormatInt(*livro.ID, 10)
	}
	event := model.LivroEvent{
		EventID:   uuid.NewString(),
		Type:      typ,
		Livro:     livro,
		Timestamp: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, kafka.LivroTopic, key, event); err != nil {
		s.log.Warn("publish", zap.String("type", string(typ)), zap.String("id", key), zap.Error(err))
		return
	}
	s.log.Debug("published", zap.String("type", string(typ)), zap.String("id", key))
}
