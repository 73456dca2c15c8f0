// Package api assembles the HTTP surface of the journey service.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"splyt/internal/api/controllers"
	"splyt/internal/config"
	"splyt/pkg/middleware"
	"splyt/pkg/utils"
)

func NewRouter(cfg config.Config,
	journeyController *controllers.JourneyController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))

	RegisterRoutes(r, journeyController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	journeyController *controllers.JourneyController,
	healthController *controllers.HealthController) {

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, utils.MsgRouteNotFound)
	})

	r.GET("/healthz", healthController.Healthz)

	journeyGroup := r.Group("/api/journeys")
	journeyGroup.POST("/", journeyController.CreateJourney)
	journeyGroup.POST("", journeyController.CreateJourney)
	journeyGroup.GET("/:id", journeyController.GetJourneyById)
}
