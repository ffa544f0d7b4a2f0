package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nychousing-insights/internal/models"
	"nychousing-insights/internal/services"
	"nychousing-insights/pkg/config"
)

type AuthHandler struct {
	viewerService *services.ViewerService
	cfg           *config.Config
}

func NewAuthHandler(viewerService *services.ViewerService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{viewerService: viewerService, cfg: cfg}
}

// Login godoc
// @Summary Sign in to the dashboard
// @Description Exchange the shared dashboard password for a viewer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Dashboard password"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.cfg.Auth.Enabled {
		c.JSON(http.StatusNotFound, gin.H{"error": "authentication is disabled"})
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	response, err := h.viewerService.Login(c.Request.Context(), req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response)
}
