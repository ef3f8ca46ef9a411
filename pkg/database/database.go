package database

import (
	"context"
	"fmt"
	"time"

	"homeinsight-listings/pkg/config"
	"homeinsight-listings/pkg/logger"
	"homeinsight-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// InitDB connects to MongoDB and verifies the connection. The caller owns
// the returned client and must pass it to CloseDB.
func InitDB(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URI).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := Ping(ctx, client); err != nil {
		client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	logger.GlobalLogger.Println("MongoDB connected successfully.")
	return client, client.Database(cfg.Database.DBName), nil
}

func Ping(ctx context.Context, client *mongo.Client) error {
	start := time.Now()
	err := client.Ping(ctx, readpref.Primary())
	metrics.MongoOperationDuration.WithLabelValues("ping", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("ping", "").Inc()
	}
	return err
}

func CloseDB(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
	} else {
		logger.GlobalLogger.Println("MongoDB connection closed")
	}
}
