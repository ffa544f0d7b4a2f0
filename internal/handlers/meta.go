package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nychousing-insights/internal/services"
	"nychousing-insights/pkg/cache"
	"nychousing-insights/pkg/config"
	"nychousing-insights/pkg/database"
)

type MetaHandler struct {
	insightService *services.InsightService
	cfg            *config.Config
}

func NewMetaHandler(insightService *services.InsightService, cfg *config.Config) *MetaHandler {
	return &MetaHandler{insightService: insightService, cfg: cfg}
}

// GetSummary godoc
// @Summary Dataset summary
// @Description Total listings, listings per borough and the overall price spread
// @Tags Meta
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Summary
// @Failure 401 {object} map[string]interface{}
// @Router /summary [get]
func (h *MetaHandler) GetSummary(c *gin.Context) {
	result, cached, err := h.insightService.GetSummary(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	setCacheHeader(c, cached)
	c.JSON(http.StatusOK, result)
}

// GetFilters godoc
// @Summary Filter options
// @Description Borough labels, property types and the bedroom range the filter widgets offer
// @Tags Meta
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Filters
// @Failure 401 {object} map[string]interface{}
// @Router /filters [get]
func (h *MetaHandler) GetFilters(c *gin.Context) {
	result, cached, err := h.insightService.GetFilters(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	setCacheHeader(c, cached)
	c.JSON(http.StatusOK, result)
}

// HealthCheck godoc
// @Summary Service health
// @Description Reports whether the service and its backing stores are reachable
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *MetaHandler) HealthCheck(c *gin.Context) {
	healthy := true
	components := gin.H{"storage": h.cfg.Storage.Driver}

	if h.cfg.Storage.Driver == "mongo" {
		if err := database.Ping(c.Request.Context()); err != nil {
			components["mongo"] = "unreachable"
			healthy = false
		} else {
			components["mongo"] = "ok"
		}
	}

	if h.cfg.Redis.Enabled {
		if err := cache.Ping(c.Request.Context()); err != nil {
			components["redis"] = "unreachable"
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "disabled"
	}

	status := http.StatusOK
	body := gin.H{"status": "ok", "components": components}
	if count, err := h.insightService.DatasetSize(c.Request.Context()); err == nil {
		body["listings"] = count
	} else {
		healthy = false
	}
	if !healthy {
		status = http.StatusServiceUnavailable
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}
