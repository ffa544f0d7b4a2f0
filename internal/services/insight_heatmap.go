package services

import (
	"context"

	"nychousing-insights/internal/models"
	"nychousing-insights/pkg/cache"
	"nychousing-insights/pkg/logger"
)

// GetHeatmap returns the geographic price points of a selection. Listings
// without plottable coordinates or a finite price are left out.
func (s *InsightService) GetHeatmap(ctx context.Context, req *models.HeatmapRequest) (*models.HeatmapResponse, bool, error) {
	if err := s.validator.ValidateHeatmap(req); err != nil {
		return nil, false, err
	}

	key := cache.HeatmapKey(req.Borough, req.PropertyType)
	var cachedResult models.HeatmapResponse
	if s.cached(ctx, "heatmap", key, &cachedResult) {
		return &cachedResult, true, nil
	}

	listings, err := s.repo.FindFiltered(ctx, &models.ListingQuery{
		Borough:      req.Borough,
		PropertyType: req.PropertyType,
	})
	if err != nil {
		logger.GlobalLogger.Errorf("DB query failed: borough=%s, error=%v", req.Borough, err)
		return nil, false, err
	}

	result := computeHeatmap(listings)
	_ = s.cache.Set(ctx, key, result)
	return result, false, nil
}

func computeHeatmap(listings []models.Listing) *models.HeatmapResponse {
	result := &models.HeatmapResponse{Points: []models.HeatmapPoint{}}

	maxPrice := 0.0
	for i := range listings {
		l := &listings[i]
		if !plottableCoordinates(l.Latitude, l.Longitude) || !finite(l.Price) {
			continue
		}
		if l.Price > maxPrice {
			maxPrice = l.Price
		}
		result.Points = append(result.Points, models.HeatmapPoint{
			Lat:   l.Latitude,
			Lng:   l.Longitude,
			Price: l.Price,
		})
	}

	result.Count = len(result.Points)
	result.MaxPrice = maxPrice
	for i := range result.Points {
		if maxPrice > 0 {
			result.Points[i].Weight = result.Points[i].Price / maxPrice
		}
	}
	return result
}

func plottableCoordinates(lat, lng float64) bool {
	if !finite(lat) || !finite(lng) {
		return false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return false
	}
	// The dataset leaves missing coordinates as zero, which is in the
	// Gulf of Guinea rather than New York.
	if lat == 0 && lng == 0 {
		return false
	}
	return true
}
