package database

import (
	"context"
	"fmt"
	"log"
	"registration-service/internal/app/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when no redis host is configured.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	if driverConfig.Redis.Host == "" {
		log.Println("Redis host is not configured, send-link cooldown is disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}

	log.Println("Successfully connected to redis")
	return rdb
}
