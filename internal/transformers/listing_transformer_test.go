package transformers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow() map[string]string {
	return map[string]string{
		ColBroker:       "Brokered by Coldwell Banker",
		ColPropertyType: "Condo for sale",
		ColPrice:        "315000",
		ColBeds:         "2",
		ColBaths:        "2",
		ColSquareFeet:   "1400",
		ColAddress:      "2 E 55th St Unit 803",
		ColSublocality:  "Manhattan",
		ColLatitude:     "40.7614",
		ColLongitude:    "-73.9746",
	}
}

func TestTransformRow(t *testing.T) {
	tr := NewListingTransformer()

	l := tr.TransformRow(sampleRow())
	require.NotNil(t, l)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, BoroughManhattan, l.Borough)
	assert.Equal(t, "Manhattan", l.Sublocality)
	assert.Equal(t, "Condo for sale", l.PropertyType)
	assert.Equal(t, 315000.0, l.Price)
	assert.Equal(t, 2, l.Beds)
	assert.Equal(t, 1400.0, l.SquareFeet)
	assert.InDelta(t, 40.7614, l.Latitude, 1e-9)
}

func TestTransformRowMintsUniqueIDs(t *testing.T) {
	tr := NewListingTransformer()

	a := tr.TransformRow(sampleRow())
	b := tr.TransformRow(sampleRow())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTransformRowMalformedNumerics(t *testing.T) {
	tr := NewListingTransformer()

	row := sampleRow()
	row[ColPrice] = "call for price"
	row[ColSquareFeet] = ""
	row[ColBeds] = "studio"
	row[ColLatitude] = "n/a"

	l := tr.TransformRow(row)
	assert.True(t, math.IsNaN(l.Price))
	assert.True(t, math.IsNaN(l.SquareFeet))
	assert.True(t, math.IsNaN(l.Latitude))
	assert.Equal(t, 0, l.Beds)
}

func TestTransformRowMissingSublocality(t *testing.T) {
	tr := NewListingTransformer()

	row := sampleRow()
	delete(row, ColSublocality)

	l := tr.TransformRow(row)
	assert.Equal(t, BoroughUnknown, l.Borough)
}

func TestParseFloatFormats(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"315000", 315000},
		{"$1,195,000", 1195000},
		{" 2.373861 ", 2.373861},
		{"3.0", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseFloat(tt.raw), "input %q", tt.raw)
	}

	for _, raw := range []string{"", "tbd", "--"} {
		assert.True(t, math.IsNaN(parseFloat(raw)), "input %q", raw)
	}
}

func TestParseIntFractionalBeds(t *testing.T) {
	assert.Equal(t, 3, parseInt("3.0"))
	assert.Equal(t, 2, parseInt("2"))
	assert.Equal(t, 0, parseInt("many"))
}

func TestToViewDropsNonFinite(t *testing.T) {
	tr := NewListingTransformer()

	row := sampleRow()
	row[ColPrice] = "unknown"
	l := tr.TransformRow(row)

	v := tr.ToView(l)
	assert.Nil(t, v.Price)
	require.NotNil(t, v.SquareFeet)
	assert.Equal(t, 1400.0, *v.SquareFeet)
	assert.Equal(t, l.ID, v.ID)
}
