package services

import (
	"context"

	"github.com/montanaflynn/stats"

	"nychousing-insights/internal/models"
	"nychousing-insights/internal/transformers"
	"nychousing-insights/pkg/cache"
	"nychousing-insights/pkg/logger"
)

// GetSummary describes the whole dataset: total size, listings per borough
// and the overall price spread.
func (s *InsightService) GetSummary(ctx context.Context) (*models.Summary, bool, error) {
	key := cache.SummaryKey()
	var cachedResult models.Summary
	if s.cached(ctx, "summary", key, &cachedResult) {
		return &cachedResult, true, nil
	}

	listings, err := s.repo.FindAll(ctx)
	if err != nil {
		logger.GlobalLogger.Errorf("DB query failed: error=%v", err)
		return nil, false, err
	}
	boroughs, err := s.repo.CountByBorough(ctx)
	if err != nil {
		logger.GlobalLogger.Errorf("DB query failed: error=%v", err)
		return nil, false, err
	}

	result := &models.Summary{
		TotalListings: int64(len(listings)),
		Boroughs:      boroughs,
	}
	if prices := finitePrices(listings); len(prices) > 0 {
		data := stats.Float64Data(prices)
		result.MinPrice, _ = data.Min()
		result.MaxPrice, _ = data.Max()
		result.MeanPrice, _ = data.Mean()
		result.MedianPrice, _ = data.Median()
	}

	_ = s.cache.Set(ctx, key, result)
	return result, false, nil
}

// DatasetSize returns the number of listings the repository holds. The
// health endpoint reports it on every probe, so it never goes through the
// insight cache.
func (s *InsightService) DatasetSize(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// GetFilters returns the options the dashboard's filter widgets offer.
func (s *InsightService) GetFilters(ctx context.Context) (*models.Filters, bool, error) {
	key := cache.FiltersKey()
	var cachedResult models.Filters
	if s.cached(ctx, "filters", key, &cachedResult) {
		return &cachedResult, true, nil
	}

	types, err := s.repo.PropertyTypes(ctx)
	if err != nil {
		logger.GlobalLogger.Errorf("DB query failed: error=%v", err)
		return nil, false, err
	}
	maxBeds, err := s.repo.MaxBeds(ctx)
	if err != nil {
		logger.GlobalLogger.Errorf("DB query failed: error=%v", err)
		return nil, false, err
	}

	result := &models.Filters{
		Boroughs:      transformers.Boroughs(),
		PropertyTypes: types,
		MaxBeds:       maxBeds,
	}

	_ = s.cache.Set(ctx, key, result)
	return result, false, nil
}
