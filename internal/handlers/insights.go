package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "nychousing-insights/internal/errors"
	"nychousing-insights/internal/models"
	"nychousing-insights/internal/services"
)

type InsightHandler struct {
	insightService *services.InsightService
}

func NewInsightHandler(insightService *services.InsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidParam(name, err)
	}
	return v, nil
}

func floatQuery(c *gin.Context, name string, def float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalidParam(name, err)
	}
	return v, nil
}

func invalidParam(name string, err error) *apperrors.AppError {
	return apperrors.NewAppError(
		fmt.Sprintf("invalid %s parameter", name),
		apperrors.MsgInvalidParameters,
		apperrors.ErrCodeInvalidParameters,
		http.StatusBadRequest,
		err,
	)
}

func setCacheHeader(c *gin.Context, cached bool) {
	if cached {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
}

// GetPriceDistribution godoc
// @Summary Price distribution for a selection
// @Description Box-plot statistics and a ten-bucket histogram of listing prices, optionally narrowed by borough and property type
// @Tags Insights
// @Produce json
// @Param borough query string false "Borough label"
// @Param type query string false "Property type"
// @Security BearerAuth
// @Success 200 {object} models.PriceDistribution
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /insights/price-distribution [get]
func (h *InsightHandler) GetPriceDistribution(c *gin.Context) {
	req := &models.DistributionRequest{
		Borough:      c.Query("borough"),
		PropertyType: c.Query("type"),
	}

	result, cached, err := h.insightService.GetPriceDistribution(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	setCacheHeader(c, cached)
	c.JSON(http.StatusOK, result)
}

// GetLuxury godoc
// @Summary Most expensive listings of a selection
// @Description Listings at or above a price floor, which is either the given minimum price or a percentile of the selection
// @Tags Insights
// @Produce json
// @Param borough query string false "Borough label"
// @Param type query string false "Property type"
// @Param minBeds query int false "Minimum bedrooms" default(0)
// @Param minPrice query number false "Explicit price floor"
// @Param percentile query number false "Price percentile used when no explicit floor is given" default(90)
// @Param limit query int false "Maximum listings returned" default(20)
// @Security BearerAuth
// @Success 200 {object} models.LuxuryReport
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /insights/luxury [get]
func (h *InsightHandler) GetLuxury(c *gin.Context) {
	minBeds, err := intQuery(c, "minBeds", 0)
	if err != nil {
		c.Error(err)
		return
	}
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		c.Error(err)
		return
	}
	minPrice, err := floatQuery(c, "minPrice", 0)
	if err != nil {
		c.Error(err)
		return
	}
	percentile, err := floatQuery(c, "percentile", 0)
	if err != nil {
		c.Error(err)
		return
	}

	req := &models.LuxuryRequest{
		Borough:      c.Query("borough"),
		PropertyType: c.Query("type"),
		MinBeds:      minBeds,
		MinPrice:     minPrice,
		Percentile:   percentile,
		Limit:        limit,
	}

	result, cached, err := h.insightService.GetLuxuryReport(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	setCacheHeader(c, cached)
	c.JSON(http.StatusOK, result)
}

// GetHeatmap godoc
// @Summary Geographic price heatmap
// @Description Coordinates, prices and normalized weights for every plottable listing of a selection
// @Tags Insights
// @Produce json
// @Param borough query string false "Borough label"
// @Param type query string false "Property type"
// @Security BearerAuth
// @Success 200 {object} models.HeatmapResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /insights/heatmap [get]
func (h *InsightHandler) GetHeatmap(c *gin.Context) {
	req := &models.HeatmapRequest{
		Borough:      c.Query("borough"),
		PropertyType: c.Query("type"),
	}

	result, cached, err := h.insightService.GetHeatmap(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	setCacheHeader(c, cached)
	c.JSON(http.StatusOK, result)
}

// GetScatter godoc
// @Summary Price versus size scatter
// @Description One series of price/size points per borough; an empty selection compares all five boroughs
// @Tags Insights
// @Produce json
// @Param boroughs query string false "Comma-separated borough labels"
// @Param type query string false "Property type"
// @Security BearerAuth
// @Success 200 {object} models.ScatterResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /insights/scatter [get]
func (h *InsightHandler) GetScatter(c *gin.Context) {
	req := &models.ScatterRequest{
		PropertyType: c.Query("type"),
	}
	if raw := c.Query("boroughs"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				req.Boroughs = append(req.Boroughs, b)
			}
		}
	}

	result, cached, err := h.insightService.GetScatter(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	setCacheHeader(c, cached)
	c.JSON(http.StatusOK, result)
}
