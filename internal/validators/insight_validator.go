package validators

import (
	"fmt"

	"nychousing-insights/internal/models"
	"nychousing-insights/internal/transformers"
)

// MaxLuxuryLimit caps how many listings a luxury report may return.
const MaxLuxuryLimit = 100

type insightValidator struct{}

func NewInsightValidator() InsightValidator {
	return &insightValidator{}
}

func canonicalizeBorough(borough *string) error {
	if *borough == "" {
		return nil
	}
	label, ok := transformers.CanonicalBorough(*borough)
	if !ok {
		return fmt.Errorf("unknown borough %q", *borough)
	}
	*borough = label
	return nil
}

func (v *insightValidator) ValidateDistribution(req *models.DistributionRequest) error {
	return canonicalizeBorough(&req.Borough)
}

func (v *insightValidator) ValidateLuxury(req *models.LuxuryRequest) error {
	if err := canonicalizeBorough(&req.Borough); err != nil {
		return err
	}
	if req.MinBeds < 0 {
		return fmt.Errorf("minimum beds must not be negative")
	}
	if req.MinPrice < 0 {
		return fmt.Errorf("minimum price must not be negative")
	}
	if req.Percentile != 0 && (req.Percentile <= 0 || req.Percentile > 100) {
		return fmt.Errorf("percentile must be greater than 0 and at most 100")
	}
	if req.Limit < 0 || req.Limit > MaxLuxuryLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxLuxuryLimit)
	}
	return nil
}

func (v *insightValidator) ValidateHeatmap(req *models.HeatmapRequest) error {
	return canonicalizeBorough(&req.Borough)
}

func (v *insightValidator) ValidateScatter(req *models.ScatterRequest) error {
	for i := range req.Boroughs {
		if err := canonicalizeBorough(&req.Boroughs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (v *insightValidator) ValidateListingQuery(query *models.ListingQuery) error {
	if err := canonicalizeBorough(&query.Borough); err != nil {
		return err
	}
	if query.MinBeds < 0 {
		return fmt.Errorf("minimum beds must not be negative")
	}
	if query.MinPrice < 0 {
		return fmt.Errorf("minimum price must not be negative")
	}
	return nil
}
