package config

import (
	"context"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var RedisClient *redis.Client

// RedisConfig is populated from the environment. Redis is optional: when it
// is unreachable the service runs without caching or rate limiting.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func InitRedis() {
	var cfg RedisConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logrus.WithError(err).Fatal("invalid redis configuration")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.WithError(err).Warn("redis unavailable, caching and rate limiting disabled")
		RedisClient = nil
		return
	}

	logrus.WithField("addr", cfg.Addr).Info("redis connected")
	RedisClient = client
}
