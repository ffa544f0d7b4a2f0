package models

// DistributionRequest selects the slice of the dataset the price distribution
// is computed over. Empty fields mean the whole dataset.
type DistributionRequest struct {
	Borough      string
	PropertyType string
}

// HistogramBucket is one bar of the price histogram; From is inclusive, To
// exclusive except for the last bucket.
type HistogramBucket struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

// PriceDistribution is the box-plot summary plus histogram for a selection.
// Count == 0 is the zero state: every statistic is 0 and Histogram is empty.
type PriceDistribution struct {
	Borough      string            `json:"borough,omitempty"`
	PropertyType string            `json:"propertyType,omitempty"`
	Count        int               `json:"count"`
	Min          float64           `json:"min"`
	Q1           float64           `json:"q1"`
	Median       float64           `json:"median"`
	Q3           float64           `json:"q3"`
	Max          float64           `json:"max"`
	Mean         float64           `json:"mean"`
	Histogram    []HistogramBucket `json:"histogram"`
}

// LuxuryRequest drives the luxury finder. When MinPrice is zero the floor is
// derived as the Percentile of the selection's prices; Percentile itself
// defaults to 90.
type LuxuryRequest struct {
	Borough      string
	PropertyType string
	MinBeds      int
	MinPrice     float64
	Percentile   float64
	Limit        int
}

// LuxuryReport always carries the matching count, zero included, so the UI
// can show "0 results" instead of an error.
type LuxuryReport struct {
	Count      int           `json:"count"`
	PriceFloor float64       `json:"priceFloor"`
	Percentile float64       `json:"percentile,omitempty"`
	Listings   []ListingView `json:"listings"`
}

type HeatmapRequest struct {
	Borough      string
	PropertyType string
}

// HeatmapPoint is a lat/lng/price triple; Weight is price scaled into (0,1]
// against the selection maximum, which is what the heat layer consumes.
type HeatmapPoint struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Price  float64 `json:"price"`
	Weight float64 `json:"weight"`
}

type HeatmapResponse struct {
	Count    int            `json:"count"`
	MaxPrice float64        `json:"maxPrice"`
	Points   []HeatmapPoint `json:"points"`
}

// ScatterRequest compares price against size for one or more boroughs.
type ScatterRequest struct {
	Boroughs     []string
	PropertyType string
}

type ScatterPoint struct {
	SquareFeet float64 `json:"squareFeet"`
	Price      float64 `json:"price"`
}

type ScatterSeries struct {
	Borough string         `json:"borough"`
	Points  []ScatterPoint `json:"points"`
}

type ScatterResponse struct {
	Count  int             `json:"count"`
	Series []ScatterSeries `json:"series"`
}

// BoroughCount pairs a canonical borough label with its listing count.
type BoroughCount struct {
	Borough string `json:"borough"`
	Count   int64  `json:"count"`
}

// Summary describes the loaded dataset as a whole.
type Summary struct {
	TotalListings int64          `json:"totalListings"`
	Boroughs      []BoroughCount `json:"boroughs"`
	MinPrice      float64        `json:"minPrice"`
	MaxPrice      float64        `json:"maxPrice"`
	MeanPrice     float64        `json:"meanPrice"`
	MedianPrice   float64        `json:"medianPrice"`
}

// Filters feeds the dashboard's input widgets.
type Filters struct {
	Boroughs      []string `json:"boroughs"`
	PropertyTypes []string `json:"propertyTypes"`
	MaxBeds       int      `json:"maxBeds"`
}
