package transformers

import (
	"math"
	"strconv"
	"strings"

	"nychousing-insights/internal/models"

	"github.com/google/uuid"
)

// Dataset column names. The loader validates the required set against the
// file header once; rows are then plain map lookups.
const (
	ColBroker       = "BROKERTITLE"
	ColPropertyType = "TYPE"
	ColPrice        = "PRICE"
	ColBeds         = "BEDS"
	ColBaths        = "BATH"
	ColSquareFeet   = "PROPERTYSQFT"
	ColAddress      = "ADDRESS"
	ColSublocality  = "SUBLOCALITY"
	ColLatitude     = "LATITUDE"
	ColLongitude    = "LONGITUDE"
)

// RequiredColumns is the set the input file must carry; their absence is a
// load failure, not a per-row condition.
func RequiredColumns() []string {
	return []string{
		ColPropertyType, ColPrice, ColBeds, ColBaths, ColSquareFeet,
		ColAddress, ColSublocality, ColLatitude, ColLongitude,
	}
}

type listingTransformer struct {
	normalizer BoroughNormalizer
}

func NewListingTransformer() ListingTransformer {
	return &listingTransformer{normalizer: NewBoroughNormalizer()}
}

// TransformRow builds a Listing from one CSV row. Unparseable numerics
// degrade to NaN (beds to 0) rather than failing the row; the borough is
// derived here, exactly once.
func (t *listingTransformer) TransformRow(row map[string]string) *models.Listing {
	return &models.Listing{
		ID:           uuid.NewString(),
		Borough:      t.normalizer.Normalize(row[ColSublocality]),
		Sublocality:  strings.TrimSpace(row[ColSublocality]),
		Address:      strings.TrimSpace(row[ColAddress]),
		PropertyType: strings.TrimSpace(row[ColPropertyType]),
		Price:        parseFloat(row[ColPrice]),
		Beds:         parseInt(row[ColBeds]),
		Baths:        parseFloat(row[ColBaths]),
		SquareFeet:   parseFloat(row[ColSquareFeet]),
		Latitude:     parseFloat(row[ColLatitude]),
		Longitude:    parseFloat(row[ColLongitude]),
		Broker:       strings.TrimSpace(row[ColBroker]),
	}
}

// ToView converts a Listing into its JSON-safe shape: non-finite numerics
// become null so the encoder never chokes on NaN.
func (t *listingTransformer) ToView(listing *models.Listing) models.ListingView {
	return models.ListingView{
		ID:           listing.ID,
		Borough:      listing.Borough,
		Sublocality:  listing.Sublocality,
		Address:      listing.Address,
		PropertyType: listing.PropertyType,
		Price:        finiteOrNil(listing.Price),
		Beds:         listing.Beds,
		Baths:        finiteOrNil(listing.Baths),
		SquareFeet:   finiteOrNil(listing.SquareFeet),
		Latitude:     finiteOrNil(listing.Latitude),
		Longitude:    finiteOrNil(listing.Longitude),
		Broker:       listing.Broker,
	}
}

// parseFloat tolerates currency symbols, commas and blanks; anything it
// cannot read comes back as NaN for the view layer to drop.
func parseFloat(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func parseInt(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Bed counts occasionally arrive as "3.0".
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return n
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
