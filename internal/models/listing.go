package models

// Listing is one property record from the housing dataset. Records are
// immutable once loaded; Borough is the only derived field, assigned exactly
// once by the borough normalizer at load (or seed) time.
type Listing struct {
	ID           string  `json:"id" bson:"listingId"`
	Borough      string  `json:"borough" bson:"borough"`
	Sublocality  string  `json:"sublocality" bson:"sublocality"`
	Address      string  `json:"address" bson:"address"`
	PropertyType string  `json:"propertyType" bson:"propertyType"`
	Price        float64 `json:"price" bson:"price"`
	Beds         int     `json:"beds" bson:"beds"`
	Baths        float64 `json:"baths" bson:"baths"`
	SquareFeet   float64 `json:"squareFeet" bson:"squareFeet"`
	Latitude     float64 `json:"latitude" bson:"latitude"`
	Longitude    float64 `json:"longitude" bson:"longitude"`
	Broker       string  `json:"broker,omitempty" bson:"broker,omitempty"`
}

// ListingView is the JSON-safe shape served to the dashboard. Numeric fields
// that failed to parse are NaN on Listing; here they become null so the
// encoder never sees a non-finite value.
type ListingView struct {
	ID           string   `json:"id"`
	Borough      string   `json:"borough"`
	Sublocality  string   `json:"sublocality"`
	Address      string   `json:"address"`
	PropertyType string   `json:"propertyType"`
	Price        *float64 `json:"price"`
	Beds         int      `json:"beds"`
	Baths        *float64 `json:"baths"`
	SquareFeet   *float64 `json:"squareFeet"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Broker       string   `json:"broker,omitempty"`
}

// ListingQuery narrows the dataset for the listing table and the four views.
// Zero values mean "no constraint".
type ListingQuery struct {
	Borough      string
	PropertyType string
	MinBeds      int
	MinPrice     float64
}

type PaginationMeta struct {
	Total  int64   `json:"total"`
	Offset int     `json:"offset"`
	Limit  int     `json:"limit"`
	Next   *string `json:"next,omitempty"`
	Prev   *string `json:"prev,omitempty"`
}

type PaginatedListingsResponse struct {
	Data     []ListingView  `json:"data"`
	Metadata PaginationMeta `json:"metadata"`
}
