package services

import (
	"context"
	"sort"

	"github.com/montanaflynn/stats"

	"nychousing-insights/internal/models"
	"nychousing-insights/pkg/cache"
	"nychousing-insights/pkg/logger"
)

const (
	// DefaultLuxuryPercentile is the price percentile used as the luxury
	// floor when the caller gives no explicit minimum price.
	DefaultLuxuryPercentile = 90

	// DefaultLuxuryLimit caps the listings returned when the caller does not
	// choose a limit.
	DefaultLuxuryLimit = 20
)

// GetLuxuryReport finds the most expensive listings of a selection. The floor
// is the caller's minimum price when given, otherwise the configured
// percentile of the selection's prices.
func (s *InsightService) GetLuxuryReport(ctx context.Context, req *models.LuxuryRequest) (*models.LuxuryReport, bool, error) {
	if err := s.validator.ValidateLuxury(req); err != nil {
		return nil, false, err
	}

	if req.Percentile == 0 {
		req.Percentile = DefaultLuxuryPercentile
	}
	if req.Limit == 0 {
		req.Limit = DefaultLuxuryLimit
	}

	key := cache.LuxuryKey(req.Borough, req.PropertyType, req.MinBeds, req.MinPrice, req.Percentile, req.Limit)
	var cachedResult models.LuxuryReport
	if s.cached(ctx, "luxury", key, &cachedResult) {
		return &cachedResult, true, nil
	}

	listings, err := s.repo.FindFiltered(ctx, &models.ListingQuery{
		Borough:      req.Borough,
		PropertyType: req.PropertyType,
		MinBeds:      req.MinBeds,
	})
	if err != nil {
		logger.GlobalLogger.Errorf("DB query failed: borough=%s, type=%s, error=%v", req.Borough, req.PropertyType, err)
		return nil, false, err
	}

	result := s.computeLuxuryReport(req, listings)
	_ = s.cache.Set(ctx, key, result)
	return result, false, nil
}

func (s *InsightService) computeLuxuryReport(req *models.LuxuryRequest, listings []models.Listing) *models.LuxuryReport {
	result := &models.LuxuryReport{Listings: []models.ListingView{}}

	prices := finitePrices(listings)
	if len(prices) == 0 {
		result.PriceFloor = req.MinPrice
		return result
	}

	floor := req.MinPrice
	if floor == 0 {
		floor, _ = stats.Float64Data(prices).Percentile(req.Percentile)
		result.Percentile = req.Percentile
	}
	result.PriceFloor = floor

	qualifying := make([]models.Listing, 0)
	for i := range listings {
		if finite(listings[i].Price) && listings[i].Price >= floor {
			qualifying = append(qualifying, listings[i])
		}
	}
	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].Price > qualifying[j].Price
	})

	result.Count = len(qualifying)
	if len(qualifying) > req.Limit {
		qualifying = qualifying[:req.Limit]
	}
	result.Listings = s.toViews(qualifying)
	return result
}
