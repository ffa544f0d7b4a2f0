package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nychousing-insights/internal/models"
	"nychousing-insights/internal/services"
)

type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// GetListings godoc
// @Summary List housing listings
// @Description Get a filtered, paginated page of the housing dataset
// @Tags Listings
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination" default(20)
// @Param borough query string false "Borough label"
// @Param type query string false "Property type"
// @Param minBeds query int false "Minimum bedrooms"
// @Param minPrice query number false "Minimum price"
// @Security BearerAuth
// @Success 200 {object} models.PaginatedListingsResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /listings [get]
func (h *ListingHandler) GetListings(c *gin.Context) {
	offset, err := intQuery(c, "offset", 0)
	if err != nil {
		c.Error(err)
		return
	}
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		c.Error(err)
		return
	}
	minBeds, err := intQuery(c, "minBeds", 0)
	if err != nil {
		c.Error(err)
		return
	}
	minPrice, err := floatQuery(c, "minPrice", 0)
	if err != nil {
		c.Error(err)
		return
	}

	query := &models.ListingQuery{
		Borough:      c.Query("borough"),
		PropertyType: c.Query("type"),
		MinBeds:      minBeds,
		MinPrice:     minPrice,
	}

	response, err := h.listingService.ListListings(
		c.Request.Context(), query, offset, limit,
		c.Request.URL.Path, c.Request.URL.Query(),
	)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetListingByID godoc
// @Summary Get listing by ID
// @Description Get a single listing by its ID
// @Tags Listings
// @Produce json
// @Param id path string true "Listing ID"
// @Security BearerAuth
// @Success 200 {object} models.ListingView
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /listings/{id} [get]
func (h *ListingHandler) GetListingByID(c *gin.Context) {
	view, err := h.listingService.GetListingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}
