package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Database
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown closes every driver that was opened during startup. A failing
// driver does not stop the others from being closed.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var errs []error
	closeDriver := func(name string, closeFn func() error) {
		if err := closeFn(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", name, err))
			return
		}
		if b.Logger != nil {
			b.Logger.Info("Driver closed", zap.String("driver", name))
		}
	}

	if b.MongoDB != nil {
		closeDriver("mongodb", func() error { return b.MongoDB.Client().Disconnect(ctx) })
	}
	if b.Redis != nil {
		closeDriver("redis", b.Redis.Close)
	}
	if b.RabbitMQ != nil && !b.RabbitMQ.IsClosed() {
		closeDriver("rabbitmq", b.RabbitMQ.Close)
	}
	if b.Logger != nil {
		// Sync on stdout/stderr returns EINVAL on most platforms.
		_ = b.Logger.Sync()
	}

	return errors.Join(errs...)
}
