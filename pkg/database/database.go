package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nychousing-insights/pkg/config"
	"nychousing-insights/pkg/logger"
)

var MongoClient *mongo.Client
var DB *mongo.Database

// ListingsCollection is the MongoDB collection holding housing listings.
const ListingsCollection = "listings"

// InitDB connects the package-level MongoDB client using the given
// configuration, verifies the connection and ensures listing indexes.
func InitDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Storage.URI).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	DB = client.Database(cfg.Storage.DBName)

	if err := EnsureListingIndexes(ctx, DB); err != nil {
		logger.GlobalLogger.Errorf("Failed to create listing indexes: %v", err)
	}

	logger.GlobalLogger.Println("MongoDB connected successfully")
	return nil
}

// Ping reports whether the MongoDB connection is alive.
func Ping(ctx context.Context) error {
	if MongoClient == nil {
		return fmt.Errorf("mongo client is not initialized")
	}
	return MongoClient.Ping(ctx, nil)
}

// CloseDB disconnects the package-level MongoDB client if it was initialized.
func CloseDB() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := MongoClient.Disconnect(ctx); err != nil {
			logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		} else {
			logger.GlobalLogger.Println("MongoDB connection closed")
		}
	}
}
