package transformers

import (
	"nychousing-insights/internal/models"
)

// BoroughNormalizer maps a raw sub-locality string to a canonical borough
// label, or BoroughUnknown when nothing matches.
type BoroughNormalizer interface {
	Normalize(raw string) string
}

// ListingTransformer converts between the dataset's row shape and the Listing
// model, and between the model and its JSON-safe view.
type ListingTransformer interface {
	TransformRow(row map[string]string) *models.Listing
	ToView(listing *models.Listing) models.ListingView
}
