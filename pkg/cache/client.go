package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"homeinsight-listings/pkg/config"
	"homeinsight-listings/pkg/logger"
	"homeinsight-listings/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// InitRedis builds a client from cfg and verifies it with a ping.
func InitRedis(cfg *config.Config) (*redis.Client, error) {
	var tlsConfig *tls.Config
	if cfg.Redis.TLSEnabled {
		if cfg.Redis.TLSCertFile != "" {
			cert, err := tls.LoadX509KeyPair(cfg.Redis.TLSCertFile, cfg.Redis.TLSCertFile)
			if err != nil {
				logger.GlobalLogger.Errorf("failed to load TLS certificate: %v", err)
				return nil, fmt.Errorf("failed to load TLS certificate: %v", err)
			}
			tlsConfig = &tls.Config{
				Certificates: []tls.Certificate{cert},
			}
		} else {
			tlsConfig = &tls.Config{}
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 5,
		TLSConfig:    tlsConfig,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Ping(ctx, client); err != nil {
		logger.GlobalLogger.Errorf("failed to connect to Redis: %v", err)
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	logger.GlobalLogger.Println("Redis connected successfully")
	return client, nil
}

// Ping is shared by startup and the health endpoint.
func Ping(ctx context.Context, client CacheClient) error {
	start := time.Now()
	err := client.Ping(ctx).Err()
	metrics.RedisOperationDuration.WithLabelValues("ping").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("ping").Inc()
		return err
	}
	return nil
}

func CloseRedis(client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.GlobalLogger.Errorf("error closing Redis: %v", err)
	} else {
		logger.GlobalLogger.Println("Redis connection closed")
	}
}
