package kafka

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/livro-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

const LivroTopic = "livro"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

//go:generate go run github.com/golang/mock/mockgen -source=kafka.go -destination=mocks/mock.go

type Publisher interface {
	Publish(ctx context.Context, topic, key string, v any) error
	Close() error
}

// NewPublisher returns a no-op publisher when producer is nil.
func NewPublisher(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker) Publisher {
	if producer == nil {
		return noopPublisher{}
	}
	return &publisher{
		producer: producer,
		cb:       cb,
	}
}

type publisher struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

func (p *publisher) Publish(ctx context.Context, topic, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	send := func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	}
	if p.cb == nil {
		return send()
	}
	return p.cb.Call(send)
}

func (p *publisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, string, any) error { return nil }

func (noopPublisher) Close() error { return nil }
