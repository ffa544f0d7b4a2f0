package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"nychousing-insights/internal/models"
	"nychousing-insights/internal/transformers"
	"nychousing-insights/pkg/logger"
	"nychousing-insights/pkg/metrics"
)

// ErrMissingColumns is returned when the dataset header lacks required columns.
var ErrMissingColumns = errors.New("dataset is missing required columns")

// Loader reads the housing dataset CSV and turns rows into listings.
type Loader struct {
	transformer transformers.ListingTransformer
}

// NewLoader creates a dataset loader backed by the given transformer.
func NewLoader(transformer transformers.ListingTransformer) *Loader {
	return &Loader{transformer: transformer}
}

// Result describes the outcome of a dataset load.
type Result struct {
	Listings []models.Listing
	Skipped  int
}

// Load reads the CSV file at path and transforms every row into a listing.
// The file must exist and carry all required columns, otherwise an error is
// returned and the caller is expected to abort startup. Malformed rows are
// skipped and counted rather than failing the whole load.
func (l *Loader) Load(path string) (*Result, error) {
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	result := &Result{Listings: make([]models.Listing, 0, 1024)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			logger.GlobalLogger.Debugf("Skipping malformed dataset row: %v", err)
			continue
		}

		row := make(map[string]string, len(columns))
		for name, idx := range columns {
			if idx < len(record) {
				row[name] = record[idx]
			}
		}

		listing := l.transformer.TransformRow(row)
		result.Listings = append(result.Listings, *listing)
	}

	metrics.DatasetRowsLoaded.Set(float64(len(result.Listings)))
	metrics.DatasetRowsSkipped.Set(float64(result.Skipped))
	metrics.DatasetLoadDuration.Observe(time.Since(start).Seconds())

	logger.GlobalLogger.Printf("Loaded %d listings from %s (%d rows skipped) in %v",
		len(result.Listings), path, result.Skipped, time.Since(start))

	return result, nil
}

func missingColumns(columns map[string]int) []string {
	var missing []string
	for _, name := range transformers.RequiredColumns() {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
