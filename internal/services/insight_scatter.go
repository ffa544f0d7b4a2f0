package services

import (
	"context"

	"nychousing-insights/internal/models"
	"nychousing-insights/internal/transformers"
	"nychousing-insights/pkg/cache"
	"nychousing-insights/pkg/logger"
)

// GetScatter returns price versus size points grouped into one series per
// borough. An empty borough selection compares all five boroughs; listings
// that could not be assigned a borough are never part of a series.
func (s *InsightService) GetScatter(ctx context.Context, req *models.ScatterRequest) (*models.ScatterResponse, bool, error) {
	if err := s.validator.ValidateScatter(req); err != nil {
		return nil, false, err
	}

	boroughs := req.Boroughs
	if len(boroughs) == 0 {
		boroughs = transformers.Boroughs()
	}

	key := cache.ScatterKey(boroughs, req.PropertyType)
	var cachedResult models.ScatterResponse
	if s.cached(ctx, "scatter", key, &cachedResult) {
		return &cachedResult, true, nil
	}

	result := &models.ScatterResponse{Series: make([]models.ScatterSeries, 0, len(boroughs))}
	for _, borough := range boroughs {
		listings, err := s.repo.FindFiltered(ctx, &models.ListingQuery{
			Borough:      borough,
			PropertyType: req.PropertyType,
		})
		if err != nil {
			logger.GlobalLogger.Errorf("DB query failed: borough=%s, error=%v", borough, err)
			return nil, false, err
		}

		series := models.ScatterSeries{Borough: borough, Points: []models.ScatterPoint{}}
		for i := range listings {
			l := &listings[i]
			if !finite(l.Price) || !finite(l.SquareFeet) {
				continue
			}
			series.Points = append(series.Points, models.ScatterPoint{
				SquareFeet: l.SquareFeet,
				Price:      l.Price,
			})
		}
		result.Count += len(series.Points)
		result.Series = append(result.Series, series)
	}

	_ = s.cache.Set(ctx, key, result)
	return result, false, nil
}
