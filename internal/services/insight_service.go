package services

import (
	"context"
	"math"

	"nychousing-insights/internal/models"
	"nychousing-insights/internal/repositories"
	"nychousing-insights/internal/transformers"
	"nychousing-insights/internal/validators"
	"nychousing-insights/pkg/metrics"
)

// InsightService computes the dashboard's descriptive views over the listing
// repository, with an insight cache in front of every computation.
type InsightService struct {
	repo      repositories.ListingRepository
	cache     repositories.InsightCache
	trans     transformers.ListingTransformer
	validator validators.InsightValidator
}

func NewInsightService(
	repo repositories.ListingRepository,
	cache repositories.InsightCache,
	trans transformers.ListingTransformer,
	validator validators.InsightValidator,
) *InsightService {
	return &InsightService{
		repo:      repo,
		cache:     cache,
		trans:     trans,
		validator: validator,
	}
}

// cached loads a previously computed view into dest and records hit/miss
// metrics. Any cache failure counts as a miss.
func (s *InsightService) cached(ctx context.Context, view, key string, dest interface{}) bool {
	if err := s.cache.Get(ctx, key, dest); err == nil {
		metrics.CacheHitsTotal.WithLabelValues(view).Inc()
		return true
	}
	metrics.CacheMissesTotal.WithLabelValues(view).Inc()
	return false
}

func (s *InsightService) toViews(listings []models.Listing) []models.ListingView {
	views := make([]models.ListingView, 0, len(listings))
	for i := range listings {
		views = append(views, s.trans.ToView(&listings[i]))
	}
	return views
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finitePrices extracts the prices a statistic may be computed over.
// Listings whose price failed to parse carry NaN and are left out.
func finitePrices(listings []models.Listing) []float64 {
	prices := make([]float64, 0, len(listings))
	for i := range listings {
		if finite(listings[i].Price) {
			prices = append(prices, listings[i].Price)
		}
	}
	return prices
}
