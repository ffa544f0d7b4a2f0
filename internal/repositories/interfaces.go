package repositories

import (
	"context"

	"nychousing-insights/internal/models"
)

type ListingRepository interface {
	FindAll(ctx context.Context) ([]models.Listing, error)
	FindFiltered(ctx context.Context, query *models.ListingQuery) ([]models.Listing, error)
	FindWithPagination(ctx context.Context, query *models.ListingQuery, offset, limit int) ([]models.Listing, int64, error)
	FindByID(ctx context.Context, id string) (*models.Listing, error)
	Count(ctx context.Context) (int64, error)
	CountByBorough(ctx context.Context) ([]models.BoroughCount, error)
	PropertyTypes(ctx context.Context) ([]string, error)
	MaxBeds(ctx context.Context) (int, error)
}

// InsightCache stores computed insight views as JSON. Get returns
// cache.ErrCacheMiss when the key is absent.
type InsightCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
}
