package repositories

import (
	"context"
	"sort"
	"strings"

	"nychousing-insights/internal/models"
	"nychousing-insights/internal/transformers"
)

// memoryListingRepository serves the static housing dataset from memory. The
// listing slice is loaded once at startup and never mutated afterwards.
type memoryListingRepository struct {
	listings []models.Listing
	byID     map[string]int
}

func NewMemoryListingRepository(listings []models.Listing) ListingRepository {
	byID := make(map[string]int, len(listings))
	for i := range listings {
		byID[listings[i].ID] = i
	}
	return &memoryListingRepository{listings: listings, byID: byID}
}

func (r *memoryListingRepository) FindAll(ctx context.Context) ([]models.Listing, error) {
	return r.listings, nil
}

func (r *memoryListingRepository) FindFiltered(ctx context.Context, query *models.ListingQuery) ([]models.Listing, error) {
	matched := make([]models.Listing, 0)
	for i := range r.listings {
		if matchesQuery(&r.listings[i], query) {
			matched = append(matched, r.listings[i])
		}
	}
	return matched, nil
}

func (r *memoryListingRepository) FindWithPagination(ctx context.Context, query *models.ListingQuery, offset, limit int) ([]models.Listing, int64, error) {
	matched, err := r.FindFiltered(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.Listing{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *memoryListingRepository) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &r.listings[idx], nil
}

func (r *memoryListingRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.listings)), nil
}

func (r *memoryListingRepository) CountByBorough(ctx context.Context) ([]models.BoroughCount, error) {
	counts := make(map[string]int64, len(transformers.BoroughLabels()))
	for i := range r.listings {
		counts[r.listings[i].Borough]++
	}

	result := make([]models.BoroughCount, 0, len(counts))
	for _, label := range transformers.BoroughLabels() {
		if counts[label] > 0 {
			result = append(result, models.BoroughCount{Borough: label, Count: counts[label]})
		}
	}
	return result, nil
}

func (r *memoryListingRepository) PropertyTypes(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var types []string
	for i := range r.listings {
		t := r.listings[i].PropertyType
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	sort.Strings(types)
	return types, nil
}

func (r *memoryListingRepository) MaxBeds(ctx context.Context) (int, error) {
	max := 0
	for i := range r.listings {
		if r.listings[i].Beds > max {
			max = r.listings[i].Beds
		}
	}
	return max, nil
}

// matchesQuery applies the optional listing filters. A NaN price never
// satisfies the minimum price filter.
func matchesQuery(listing *models.Listing, query *models.ListingQuery) bool {
	if query == nil {
		return true
	}
	if query.Borough != "" && listing.Borough != query.Borough {
		return false
	}
	if query.PropertyType != "" && !strings.EqualFold(listing.PropertyType, query.PropertyType) {
		return false
	}
	if query.MinBeds > 0 && listing.Beds < query.MinBeds {
		return false
	}
	if query.MinPrice > 0 && !(listing.Price >= query.MinPrice) {
		return false
	}
	return true
}
