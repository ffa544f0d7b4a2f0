package services

import (
	"context"

	"github.com/montanaflynn/stats"

	"nychousing-insights/internal/models"
	"nychousing-insights/pkg/cache"
	"nychousing-insights/pkg/logger"
)

// DistributionBuckets is the number of equal-width histogram bars.
const DistributionBuckets = 10

// GetPriceDistribution computes the box-plot statistics and histogram for the
// selected slice of the dataset. The bool reports whether the result came
// from the cache.
func (s *InsightService) GetPriceDistribution(ctx context.Context, req *models.DistributionRequest) (*models.PriceDistribution, bool, error) {
	if err := s.validator.ValidateDistribution(req); err != nil {
		return nil, false, err
	}

	key := cache.DistributionKey(req.Borough, req.PropertyType)
	var cachedResult models.PriceDistribution
	if s.cached(ctx, "distribution", key, &cachedResult) {
		return &cachedResult, true, nil
	}

	listings, err := s.repo.FindFiltered(ctx, &models.ListingQuery{
		Borough:      req.Borough,
		PropertyType: req.PropertyType,
	})
	if err != nil {
		logger.GlobalLogger.Errorf("DB query failed: borough=%s, type=%s, error=%v", req.Borough, req.PropertyType, err)
		return nil, false, err
	}

	result := computeDistribution(req, finitePrices(listings))
	_ = s.cache.Set(ctx, key, result)
	return result, false, nil
}

func computeDistribution(req *models.DistributionRequest, prices []float64) *models.PriceDistribution {
	result := &models.PriceDistribution{
		Borough:      req.Borough,
		PropertyType: req.PropertyType,
		Count:        len(prices),
		Histogram:    []models.HistogramBucket{},
	}
	if len(prices) == 0 {
		return result
	}

	data := stats.Float64Data(prices)
	result.Min, _ = data.Min()
	result.Max, _ = data.Max()
	result.Mean, _ = data.Mean()
	result.Median, _ = data.Median()
	result.Q1, _ = data.Percentile(25)
	result.Q3, _ = data.Percentile(75)
	result.Histogram = buildHistogram(prices, result.Min, result.Max, DistributionBuckets)
	return result
}

// buildHistogram splits [min, max] into equal-width buckets. A degenerate
// range collapses into a single bucket holding every price.
func buildHistogram(prices []float64, min, max float64, buckets int) []models.HistogramBucket {
	if min == max {
		return []models.HistogramBucket{{From: min, To: max, Count: len(prices)}}
	}

	width := (max - min) / float64(buckets)
	counts := make([]int, buckets)
	for _, p := range prices {
		idx := int((p - min) / width)
		if idx >= buckets {
			idx = buckets - 1
		}
		counts[idx]++
	}

	histogram := make([]models.HistogramBucket, buckets)
	for i := 0; i < buckets; i++ {
		to := min + width*float64(i+1)
		if i == buckets-1 {
			to = max
		}
		histogram[i] = models.HistogramBucket{
			From:  min + width*float64(i),
			To:    to,
			Count: counts[i],
		}
	}
	return histogram
}
