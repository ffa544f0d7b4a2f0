package utils

import (
	"net/url"
	"strconv"
)

// BuildPaginationURL returns path with the given page window, carrying over
// every other query parameter (borough, type, minBeds, ...) unchanged.
func BuildPaginationURL(path string, offset, limit int, params url.Values) string {
	q := url.Values{}
	for key, values := range params {
		if key == "offset" || key == "limit" {
			continue
		}
		q[key] = values
	}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	return path + "?" + q.Encode()
}
