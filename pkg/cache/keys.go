package cache

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// normalizeKeyComponent lowercases a key component and maps the empty string
// to "all" so unfiltered and filtered requests get distinct, stable keys.
func normalizeKeyComponent(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "all"
	}
	return strings.ReplaceAll(s, " ", "-")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DistributionKey builds the cache key for a price distribution view.
func DistributionKey(borough, propertyType string) string {
	return fmt.Sprintf("insights:distribution:borough:%s:type:%s",
		normalizeKeyComponent(borough), normalizeKeyComponent(propertyType))
}

// LuxuryKey builds the cache key for a luxury finder view.
func LuxuryKey(borough, propertyType string, minBeds int, minPrice, percentile float64, limit int) string {
	return fmt.Sprintf("insights:luxury:borough:%s:type:%s:beds:%d:price:%s:pct:%s:limit:%d",
		normalizeKeyComponent(borough), normalizeKeyComponent(propertyType),
		minBeds, formatAmount(minPrice), formatAmount(percentile), limit)
}

// HeatmapKey builds the cache key for a geographic heatmap view.
func HeatmapKey(borough, propertyType string) string {
	return fmt.Sprintf("insights:heatmap:borough:%s:type:%s",
		normalizeKeyComponent(borough), normalizeKeyComponent(propertyType))
}

// ScatterKey builds the cache key for a price versus size scatter view. The
// borough list is sorted so equivalent selections share a key.
func ScatterKey(boroughs []string, propertyType string) string {
	normalized := make([]string, 0, len(boroughs))
	for _, b := range boroughs {
		normalized = append(normalized, normalizeKeyComponent(b))
	}
	sort.Strings(normalized)
	joined := "all"
	if len(normalized) > 0 {
		joined = strings.Join(normalized, ",")
	}
	return fmt.Sprintf("insights:scatter:boroughs:%s:type:%s", joined, normalizeKeyComponent(propertyType))
}

// SummaryKey builds the cache key for the dataset summary.
func SummaryKey() string {
	return "insights:summary"
}

// FiltersKey builds the cache key for the filter options.
func FiltersKey() string {
	return "meta:filters"
}
