package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nychousing-insights/internal/dataset"
	"nychousing-insights/internal/transformers"
	"nychousing-insights/pkg/cache"
	"nychousing-insights/pkg/config"
	"nychousing-insights/pkg/database"
	"nychousing-insights/pkg/logger"
)

// Imports the housing dataset CSV into MongoDB so the API can run with the
// mongo storage driver. Rows are transformed exactly as the in-memory loader
// transforms them, so both drivers serve the same listings.
func main() {
	var (
		csvPath = flag.String("csv", "", "dataset CSV to import, defaults to the configured dataset path")
		drop    = flag.Bool("drop", false, "drop the listings collection before importing")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on system environment variables: %v", err)
	}

	cfg, err := config.LoadConfig(config.PathFromEnv())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.InitLogger(os.Stdout, cfg.Logging.Level)

	if cfg.Storage.URI == "" || cfg.Storage.DBName == "" {
		logger.GlobalLogger.Fatalf("MongoDB is not configured: set MONGO_URI and DB_NAME")
	}

	if err := database.InitDB(cfg); err != nil {
		logger.GlobalLogger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	path := *csvPath
	if path == "" {
		path = cfg.Dataset.Path
	}

	loader := dataset.NewLoader(transformers.NewListingTransformer())
	result, err := loader.Load(path)
	if err != nil {
		logger.GlobalLogger.Fatalf("Failed to load dataset: %v", err)
	}
	if len(result.Listings) == 0 {
		logger.GlobalLogger.Println("Nothing to import")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	collection := database.DB.Collection(database.ListingsCollection)
	if *drop {
		if err := collection.Drop(ctx); err != nil {
			logger.GlobalLogger.Fatalf("Failed to drop collection: %v", err)
		}
		logger.GlobalLogger.Println("Dropped listings collection")
		if err := database.EnsureListingIndexes(ctx, database.DB); err != nil {
			logger.GlobalLogger.Fatalf("Failed to recreate indexes: %v", err)
		}
	}

	docs := make([]interface{}, 0, len(result.Listings))
	for i := range result.Listings {
		docs = append(docs, result.Listings[i])
	}

	// Unordered insert keeps going past duplicate listingId errors, which is
	// what a re-run against an already seeded collection produces.
	res, err := collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		logger.GlobalLogger.Errorf("Import finished with errors: %v", err)
	}
	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	logger.GlobalLogger.Printf("Imported %d of %d listings (%d rows skipped)", inserted, len(result.Listings), result.Skipped)

	if cfg.Redis.Enabled && inserted > 0 {
		flushCachedViews(ctx, cfg)
	}
}

// flushCachedViews drops the cached insight payloads so running instances
// serve the freshly imported data. A flush failure is not fatal; the views
// expire on their own TTL.
func flushCachedViews(ctx context.Context, cfg *config.Config) {
	if err := cache.InitRedis(cfg); err != nil {
		logger.GlobalLogger.Errorf("Skipping cache flush: %v", err)
		return
	}
	defer cache.CloseRedis()

	deleted, err := cache.FlushViews(ctx)
	if err != nil {
		logger.GlobalLogger.Errorf("Cache flush failed after %d keys: %v", deleted, err)
		return
	}
	logger.GlobalLogger.Printf("Flushed %d cached views", deleted)
}
