package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nychousing-insights/internal/models"
)

func TestValidateDistributionCanonicalizesBorough(t *testing.T) {
	v := NewInsightValidator()

	req := &models.DistributionRequest{Borough: "staten island"}
	require.NoError(t, v.ValidateDistribution(req))
	assert.Equal(t, "Staten Island", req.Borough)

	req = &models.DistributionRequest{}
	require.NoError(t, v.ValidateDistribution(req))
	assert.Empty(t, req.Borough)
}

func TestValidateDistributionRejectsUnknownBorough(t *testing.T) {
	v := NewInsightValidator()

	err := v.ValidateDistribution(&models.DistributionRequest{Borough: "Atlantis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown borough")
}

func TestValidateLuxury(t *testing.T) {
	v := NewInsightValidator()

	tests := []struct {
		name    string
		req     models.LuxuryRequest
		wantErr bool
	}{
		{name: "defaults", req: models.LuxuryRequest{}},
		{name: "full request", req: models.LuxuryRequest{Borough: "manhattan", MinBeds: 3, MinPrice: 1000000, Percentile: 95, Limit: 10}},
		{name: "negative beds", req: models.LuxuryRequest{MinBeds: -1}, wantErr: true},
		{name: "negative price", req: models.LuxuryRequest{MinPrice: -5}, wantErr: true},
		{name: "percentile too high", req: models.LuxuryRequest{Percentile: 101}, wantErr: true},
		{name: "percentile at bound", req: models.LuxuryRequest{Percentile: 100}},
		{name: "limit too high", req: models.LuxuryRequest{Limit: 500}, wantErr: true},
		{name: "unknown borough", req: models.LuxuryRequest{Borough: "Gotham"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLuxury(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateScatter(t *testing.T) {
	v := NewInsightValidator()

	req := &models.ScatterRequest{Boroughs: []string{"bronx", "QUEENS"}}
	require.NoError(t, v.ValidateScatter(req))
	assert.Equal(t, []string{"Bronx", "Queens"}, req.Boroughs)

	err := v.ValidateScatter(&models.ScatterRequest{Boroughs: []string{"Bronx", "Atlantis"}})
	assert.Error(t, err)
}

func TestValidateListingQuery(t *testing.T) {
	v := NewInsightValidator()

	query := &models.ListingQuery{Borough: "brooklyn", MinBeds: 2, MinPrice: 100000}
	require.NoError(t, v.ValidateListingQuery(query))
	assert.Equal(t, "Brooklyn", query.Borough)

	assert.Error(t, v.ValidateListingQuery(&models.ListingQuery{MinBeds: -2}))
	assert.Error(t, v.ValidateListingQuery(&models.ListingQuery{MinPrice: -1}))
	assert.Error(t, v.ValidateListingQuery(&models.ListingQuery{Borough: "nowhere"}))
}
