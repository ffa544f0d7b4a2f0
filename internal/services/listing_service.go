package services

import (
	"context"
	"fmt"
	"net/url"

	"nychousing-insights/internal/models"
	"nychousing-insights/internal/repositories"
	"nychousing-insights/internal/transformers"
	"nychousing-insights/internal/utils"
	"nychousing-insights/internal/validators"
	"nychousing-insights/pkg/logger"
)

// DefaultPageLimit is used when the caller gives no usable page size.
const DefaultPageLimit = 20

// MaxPageLimit caps the page size of the listing table.
const MaxPageLimit = 100

// ListingService serves the raw listing records behind the dashboard table.
type ListingService struct {
	repo      repositories.ListingRepository
	trans     transformers.ListingTransformer
	validator validators.InsightValidator
}

func NewListingService(
	repo repositories.ListingRepository,
	trans transformers.ListingTransformer,
	validator validators.InsightValidator,
) *ListingService {
	return &ListingService{
		repo:      repo,
		trans:     trans,
		validator: validator,
	}
}

// ListListings returns one page of the filtered dataset with next/prev links.
func (s *ListingService) ListListings(ctx context.Context, query *models.ListingQuery, offset, limit int, baseURL string, params url.Values) (*models.PaginatedListingsResponse, error) {
	if err := s.validator.ValidateListingQuery(query); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > MaxPageLimit {
		limit = DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	listings, total, err := s.repo.FindWithPagination(ctx, query, offset, limit)
	if err != nil {
		logger.GlobalLogger.Errorf("DB query failed: offset=%d, limit=%d, error=%v", offset, limit, err)
		return nil, err
	}

	metadata := models.PaginationMeta{
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}
	if int64(offset+limit) < total {
		nextURL := utils.BuildPaginationURL(baseURL, offset+limit, limit, params)
		metadata.Next = &nextURL
	}
	if offset > 0 {
		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		prevURL := utils.BuildPaginationURL(baseURL, prevOffset, limit, params)
		metadata.Prev = &prevURL
	}

	views := make([]models.ListingView, 0, len(listings))
	for i := range listings {
		views = append(views, s.trans.ToView(&listings[i]))
	}

	return &models.PaginatedListingsResponse{
		Data:     views,
		Metadata: metadata,
	}, nil
}

// GetListingByID returns a single listing in its JSON-safe shape.
func (s *ListingService) GetListingByID(ctx context.Context, id string) (*models.ListingView, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logger.GlobalLogger.Errorf("DB query failed: id=%s, error=%v", id, err)
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("listing not found: %s", id)
	}

	view := s.trans.ToView(listing)
	return &view, nil
}
