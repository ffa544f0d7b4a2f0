package services

import (
	"context"
	"io"
	"math"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nychousing-insights/internal/models"
	"nychousing-insights/internal/repositories"
	"nychousing-insights/internal/transformers"
	"nychousing-insights/internal/validators"
	"nychousing-insights/pkg/cache"
	"nychousing-insights/pkg/logger"
)

func makeListing(id, borough, propertyType string, price float64, beds int, sqft, lat, lng float64) models.Listing {
	return models.Listing{
		ID:           id,
		Borough:      borough,
		PropertyType: propertyType,
		Price:        price,
		Beds:         beds,
		Baths:        1,
		SquareFeet:   sqft,
		Latitude:     lat,
		Longitude:    lng,
	}
}

func newTestInsightService(listings []models.Listing) *InsightService {
	logger.InitLogger(io.Discard, "ERROR")
	return NewInsightService(
		repositories.NewMemoryListingRepository(listings),
		repositories.NewNoopInsightCache(),
		transformers.NewListingTransformer(),
		validators.NewInsightValidator(),
	)
}

func TestGetPriceDistribution(t *testing.T) {
	listings := []models.Listing{
		makeListing("q1", "Queens", "House for sale", 100000, 2, 900, 40.76, -73.83),
		makeListing("q2", "Queens", "House for sale", 200000, 3, 1100, 40.75, -73.82),
		makeListing("q3", "Queens", "House for sale", 300000, 3, 1300, 40.74, -73.81),
		makeListing("q4", "Queens", "House for sale", 400000, 4, 1500, 40.73, -73.80),
		makeListing("q5", "Queens", "House for sale", math.NaN(), 2, 800, 40.72, -73.79),
		makeListing("m1", "Manhattan", "Condo for sale", 2000000, 2, 1200, 40.72, -74.00),
	}
	svc := newTestInsightService(listings)

	result, cached, err := svc.GetPriceDistribution(context.Background(), &models.DistributionRequest{Borough: "queens"})
	require.NoError(t, err)
	assert.False(t, cached)

	// The NaN-priced listing is in the borough but not in the statistics.
	assert.Equal(t, "Queens", result.Borough)
	assert.Equal(t, 4, result.Count)
	assert.Equal(t, 100000.0, result.Min)
	assert.Equal(t, 400000.0, result.Max)
	assert.Equal(t, 250000.0, result.Mean)
	assert.Equal(t, 250000.0, result.Median)
	assert.LessOrEqual(t, result.Q1, result.Median)
	assert.LessOrEqual(t, result.Median, result.Q3)

	require.Len(t, result.Histogram, DistributionBuckets)
	assert.Equal(t, 100000.0, result.Histogram[0].From)
	assert.Equal(t, 400000.0, result.Histogram[DistributionBuckets-1].To)

	totalCount := 0
	for _, bucket := range result.Histogram {
		totalCount += bucket.Count
	}
	assert.Equal(t, 4, totalCount)
}

func TestGetPriceDistributionSinglePrice(t *testing.T) {
	svc := newTestInsightService([]models.Listing{
		makeListing("b1", "Bronx", "House for sale", 500000, 3, 1400, 40.89, -73.91),
	})

	result, _, err := svc.GetPriceDistribution(context.Background(), &models.DistributionRequest{Borough: "Bronx"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Histogram, 1)
	assert.Equal(t, 500000.0, result.Histogram[0].From)
	assert.Equal(t, 500000.0, result.Histogram[0].To)
	assert.Equal(t, 1, result.Histogram[0].Count)
}

func TestGetPriceDistributionEmptySelection(t *testing.T) {
	svc := newTestInsightService([]models.Listing{
		makeListing("m1", "Manhattan", "Condo for sale", 2000000, 2, 1200, 40.72, -74.00),
	})

	result, _, err := svc.GetPriceDistribution(context.Background(), &models.DistributionRequest{Borough: "Staten Island"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Count)
	assert.Equal(t, 0.0, result.Min)
	assert.Equal(t, 0.0, result.Median)
	assert.Empty(t, result.Histogram)
}

func TestGetPriceDistributionUnknownBorough(t *testing.T) {
	svc := newTestInsightService(nil)

	_, _, err := svc.GetPriceDistribution(context.Background(), &models.DistributionRequest{Borough: "Atlantis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown borough")
}

func luxuryFixture() []models.Listing {
	listings := make([]models.Listing, 0, 10)
	prices := []float64{100000, 200000, 300000, 400000, 500000, 600000, 700000, 800000, 900000, 1000000}
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for i, p := range prices {
		listings = append(listings, makeListing(ids[i], "Brooklyn", "Condo for sale", p, 2+i%3, 1000, 40.70, -73.95))
	}
	return listings
}

func TestGetLuxuryReportDefaultPercentile(t *testing.T) {
	svc := newTestInsightService(luxuryFixture())

	result, cached, err := svc.GetLuxuryReport(context.Background(), &models.LuxuryRequest{Borough: "Brooklyn"})
	require.NoError(t, err)
	assert.False(t, cached)

	// The 90th percentile of ten evenly spread prices is the ninth value.
	assert.Equal(t, 900000.0, result.PriceFloor)
	assert.Equal(t, float64(DefaultLuxuryPercentile), result.Percentile)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Listings, 2)
	require.NotNil(t, result.Listings[0].Price)
	assert.Equal(t, 1000000.0, *result.Listings[0].Price)
	assert.Equal(t, 900000.0, *result.Listings[1].Price)
}

func TestGetLuxuryReportExplicitFloor(t *testing.T) {
	svc := newTestInsightService(luxuryFixture())

	result, _, err := svc.GetLuxuryReport(context.Background(), &models.LuxuryRequest{MinPrice: 750000})
	require.NoError(t, err)

	assert.Equal(t, 750000.0, result.PriceFloor)
	assert.Zero(t, result.Percentile)
	assert.Equal(t, 3, result.Count)
}

func TestGetLuxuryReportLimit(t *testing.T) {
	svc := newTestInsightService(luxuryFixture())

	result, _, err := svc.GetLuxuryReport(context.Background(), &models.LuxuryRequest{MinPrice: 100000, Limit: 3})
	require.NoError(t, err)

	// Count reflects every qualifying listing even when the page is capped.
	assert.Equal(t, 10, result.Count)
	assert.Len(t, result.Listings, 3)
	assert.Equal(t, 1000000.0, *result.Listings[0].Price)
}

func TestGetLuxuryReportEmptySelection(t *testing.T) {
	svc := newTestInsightService(luxuryFixture())

	result, _, err := svc.GetLuxuryReport(context.Background(), &models.LuxuryRequest{Borough: "Queens"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Listings)
}

func TestGetHeatmap(t *testing.T) {
	listings := []models.Listing{
		makeListing("h1", "Manhattan", "Condo for sale", 1000000, 2, 1000, 40.72, -74.00),
		makeListing("h2", "Manhattan", "Condo for sale", 500000, 1, 700, 40.80, -73.95),
		// Missing coordinates parse to zero and must not be plotted.
		makeListing("h3", "Manhattan", "Condo for sale", 750000, 2, 900, 0, 0),
		// A NaN latitude cannot be plotted.
		makeListing("h4", "Manhattan", "Condo for sale", 800000, 2, 950, math.NaN(), -73.99),
		// A NaN price has no weight.
		makeListing("h5", "Manhattan", "Condo for sale", math.NaN(), 3, 1200, 40.75, -73.98),
	}
	svc := newTestInsightService(listings)

	result, _, err := svc.GetHeatmap(context.Background(), &models.HeatmapRequest{Borough: "Manhattan"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 1000000.0, result.MaxPrice)
	require.Len(t, result.Points, 2)
	assert.Equal(t, 1.0, result.Points[0].Weight)
	assert.Equal(t, 0.5, result.Points[1].Weight)
}

func TestGetScatterAllBoroughs(t *testing.T) {
	listings := []models.Listing{
		makeListing("s1", "Bronx", "House for sale", 400000, 3, 1400, 40.89, -73.91),
		makeListing("s2", "Brooklyn", "Condo for sale", 900000, 2, 1000, 40.70, -73.95),
		makeListing("s3", "Queens", "House for sale", 600000, 3, 1500, 40.76, -73.83),
		// Non-finite size keeps a listing off the plot.
		makeListing("s4", "Queens", "House for sale", 650000, 3, math.NaN(), 40.75, -73.82),
		makeListing("s5", "Unknown", "Condo for sale", 300000, 1, 600, 0, 0),
	}
	svc := newTestInsightService(listings)

	result, _, err := svc.GetScatter(context.Background(), &models.ScatterRequest{})
	require.NoError(t, err)

	// One series per borough in canonical order; Unknown has no series.
	require.Len(t, result.Series, 5)
	assert.Equal(t, "Bronx", result.Series[0].Borough)
	assert.Equal(t, "Staten Island", result.Series[4].Borough)
	assert.Equal(t, 3, result.Count)

	assert.Len(t, result.Series[2].Points, 1)
	assert.Equal(t, models.ScatterPoint{SquareFeet: 1500, Price: 600000}, result.Series[2].Points[0])
	assert.Empty(t, result.Series[3].Points)
	assert.Empty(t, result.Series[4].Points)
}

func TestGetScatterSelectedBoroughs(t *testing.T) {
	listings := []models.Listing{
		makeListing("s1", "Bronx", "House for sale", 400000, 3, 1400, 40.89, -73.91),
		makeListing("s2", "Brooklyn", "Condo for sale", 900000, 2, 1000, 40.70, -73.95),
	}
	svc := newTestInsightService(listings)

	result, _, err := svc.GetScatter(context.Background(), &models.ScatterRequest{Boroughs: []string{"brooklyn"}})
	require.NoError(t, err)

	require.Len(t, result.Series, 1)
	assert.Equal(t, "Brooklyn", result.Series[0].Borough)
	assert.Equal(t, 1, result.Count)
}

func TestGetSummary(t *testing.T) {
	listings := []models.Listing{
		makeListing("m1", "Manhattan", "Condo for sale", 2000000, 2, 1200, 40.72, -74.00),
		makeListing("q1", "Queens", "House for sale", 500000, 3, 1500, 40.76, -73.83),
		makeListing("q2", "Queens", "House for sale", 800000, 4, 1800, 40.75, -73.82),
		makeListing("u1", "Unknown", "Condo for sale", math.NaN(), 1, 600, 0, 0),
	}
	svc := newTestInsightService(listings)

	result, _, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), result.TotalListings)
	assert.Equal(t, []models.BoroughCount{
		{Borough: "Queens", Count: 2},
		{Borough: "Manhattan", Count: 1},
		{Borough: "Unknown", Count: 1},
	}, result.Boroughs)
	assert.Equal(t, 500000.0, result.MinPrice)
	assert.Equal(t, 2000000.0, result.MaxPrice)
	assert.Equal(t, 800000.0, result.MedianPrice)
}

func TestGetFilters(t *testing.T) {
	listings := []models.Listing{
		makeListing("m1", "Manhattan", "Condo for sale", 2000000, 2, 1200, 40.72, -74.00),
		makeListing("q1", "Queens", "House for sale", 500000, 5, 1500, 40.76, -73.83),
	}
	svc := newTestInsightService(listings)

	result, _, err := svc.GetFilters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bronx", "Brooklyn", "Queens", "Manhattan", "Staten Island"}, result.Boroughs)
	assert.Equal(t, []string{"Condo for sale", "House for sale"}, result.PropertyTypes)
	assert.Equal(t, 5, result.MaxBeds)
}

func TestInsightCaching(t *testing.T) {
	logger.InitLogger(io.Discard, "ERROR")
	mr := miniredis.RunT(t)
	cache.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		cache.RedisClient.Close()
		cache.RedisClient = nil
	})

	svc := NewInsightService(
		repositories.NewMemoryListingRepository(luxuryFixture()),
		repositories.NewRedisInsightCache(time.Minute),
		transformers.NewListingTransformer(),
		validators.NewInsightValidator(),
	)
	ctx := context.Background()

	first, cached, err := svc.GetPriceDistribution(ctx, &models.DistributionRequest{Borough: "Brooklyn"})
	require.NoError(t, err)
	assert.False(t, cached)

	second, cached, err := svc.GetPriceDistribution(ctx, &models.DistributionRequest{Borough: "Brooklyn"})
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, first.Count, second.Count)
	assert.Equal(t, first.Median, second.Median)
	assert.Equal(t, first.Histogram, second.Histogram)
}
