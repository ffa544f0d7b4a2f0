package dataset

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nychousing-insights/internal/transformers"
	"nychousing-insights/pkg/logger"
)

const sampleHeader = "BROKERTITLE,TYPE,PRICE,BEDS,BATH,PROPERTYSQFT,ADDRESS,STATE,MAIN_ADDRESS,ADMINISTRATIVE_AREA_LEVEL_2,LOCALITY,SUBLOCALITY,STREET_NAME,LONG_NAME,FORMATTED_ADDRESS,LATITUDE,LONGITUDE"

func writeDataset(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.csv")
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader() *Loader {
	logger.InitLogger(io.Discard, "ERROR")
	return NewLoader(transformers.NewListingTransformer())
}

func TestLoadTransformsRows(t *testing.T) {
	loader := newTestLoader()
	path := writeDataset(t,
		sampleHeader,
		"Brokered by Compass,Condo for sale,1250000,2,2,980,123 Main St,New York,x,New York County,New York,Riverdale,Main St,Main,123 Main St,40.8900,-73.9100",
		"Brokered by Corcoran,House for sale,675000,3,1.5,1450,45 Ocean Ave,New York,x,Kings County,Brooklyn,DUMBO,Ocean Ave,Ocean,45 Ocean Ave,40.7030,-73.9890",
	)

	result, err := loader.Load(path)
	require.NoError(t, err)

	require.Len(t, result.Listings, 2)
	assert.Equal(t, 0, result.Skipped)

	assert.Equal(t, "Bronx", result.Listings[0].Borough)
	assert.Equal(t, "Riverdale", result.Listings[0].Sublocality)
	assert.Equal(t, 1250000.0, result.Listings[0].Price)
	assert.Equal(t, 2, result.Listings[0].Beds)

	assert.Equal(t, "Brooklyn", result.Listings[1].Borough)
	assert.Equal(t, 1.5, result.Listings[1].Baths)
}

func TestLoadMissingFile(t *testing.T) {
	loader := newTestLoader()

	result, err := loader.Load(filepath.Join(t.TempDir(), "nope.csv"))

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestLoadMissingColumns(t *testing.T) {
	loader := newTestLoader()
	path := writeDataset(t,
		"TYPE,PRICE,BEDS",
		"Condo for sale,500000,1",
	)

	result, err := loader.Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), "SUBLOCALITY")
	assert.Nil(t, result)
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	loader := newTestLoader()
	path := writeDataset(t,
		sampleHeader,
		"Brokered by Compass,Condo for sale,1250000,2,2,980,123 Main St,New York,x,New York County,New York,Flushing,Main St,Main,123 Main St,40.7600,-73.8300",
		"Brokered by Nobody,House for sale,1",
		"Brokered by Corcoran,House for sale,675000,3,1,1450,45 Ocean Ave,New York,x,Kings County,Brooklyn,Astoria,Ocean Ave,Ocean,45 Ocean Ave,40.7700,-73.9200",
	)

	result, err := loader.Load(path)
	require.NoError(t, err)

	assert.Len(t, result.Listings, 2)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "Queens", result.Listings[0].Borough)
	assert.Equal(t, "Queens", result.Listings[1].Borough)
}

func TestLoadHeaderOnly(t *testing.T) {
	loader := newTestLoader()
	path := writeDataset(t, sampleHeader)

	result, err := loader.Load(path)
	require.NoError(t, err)

	assert.Empty(t, result.Listings)
	assert.Equal(t, 0, result.Skipped)
}
