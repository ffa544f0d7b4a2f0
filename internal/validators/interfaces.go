package validators

import (
	"nychousing-insights/internal/models"
)

// InsightValidator checks insight and listing requests. Borough fields are
// canonicalized in place so repositories always see exact labels.
type InsightValidator interface {
	ValidateDistribution(req *models.DistributionRequest) error
	ValidateLuxury(req *models.LuxuryRequest) error
	ValidateHeatmap(req *models.HeatmapRequest) error
	ValidateScatter(req *models.ScatterRequest) error
	ValidateListingQuery(query *models.ListingQuery) error
}
