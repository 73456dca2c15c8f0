package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"splyt/internal/models/response_models"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Healthz godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response_models.HealthResponse
// @Router /healthz [get]
func (h *HealthController) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.HealthResponse{Status: "ok"})
}
