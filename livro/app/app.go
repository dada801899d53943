package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/livro-service/livro/config"
	"github.com/Astemirdum/livro-service/livro/internal/handler"
	"github.com/Astemirdum/livro-service/livro/internal/repository"
	"github.com/Astemirdum/livro-service/livro/internal/server"
	"github.com/Astemirdum/livro-service/livro/internal/service"
	"github.com/Astemirdum/livro-service/livro/migrations"
	"github.com/Astemirdum/livro-service/pkg/circuit_breaker"
	"github.com/Astemirdum/livro-service/pkg/kafka"
	"github.com/Astemirdum/livro-service/pkg/logger"
	"github.com/Astemirdum/livro-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log, closeLog := logger.NewLogger(cfg.Log, "livro")
	defer closeLog()

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}

	var producer sarama.SyncProducer
	if len(cfg.Kafka.Addrs) > 0 {
		if producer, err = kafka.NewProducer(cfg.Kafka); err != nil {
			return errors.Wrap(err, "kafka.NewProducer")
		}
	} else {
		log.Warn("kafka addrs are empty, livro events are not published")
	}
	publisher := kafka.NewPublisher(producer, circuit_breaker.New(10, 30*time.Second, 0.5, 3))
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("publisher.Close", zap.Error(err))
		}
	}()

	svc := service.NewService(repo, publisher, log)
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(ctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
