package api

import (
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	journeyapi "splyt/internal/api"
	"splyt/internal/api/controllers"
	"splyt/internal/config"
	"splyt/internal/services"
	"splyt/internal/validators"
	mem "splyt/pkg/memcache"
)

// StartLocalServer serves the journeys API from memory on a loopback port.
// Callers must Close the returned server.
func StartLocalServer() *httptest.Server {
	gin.SetMode(gin.TestMode)

	svc := services.NewJourneyService(mem.NewJourneyStore(), validators.NewJourneyValidator())
	router := journeyapi.NewRouter(
		config.Config{CORSAllowedOrigins: "*"},
		controllers.NewJourneyController(svc),
		controllers.NewHealthController(),
	)
	return httptest.NewServer(router)
}
