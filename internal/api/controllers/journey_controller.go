package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"splyt/internal/services"
	"splyt/pkg/utils"
)

// maxJourneyBodyBytes bounds the creation payload.
const maxJourneyBodyBytes = 64 << 10

type JourneyController struct {
	journeyService services.JourneyServiceInterface
}

func NewJourneyController(journeyService services.JourneyServiceInterface) *JourneyController {
	return &JourneyController{
		journeyService: journeyService,
	}
}

// CreateJourney godoc
// @Summary Create a journey
// @Description Validate a journey booking and store it under a new id
// @Tags Journey
// @Accept json
// @Produce json
// @Param request body request_models.CreateJourneyRequest true "Departure date, pickup location, passenger"
// @Success 200 {object} response_models.JourneyResponse
// @Failure 400 {object} utils.APIResponse
// @Example {json} Request Body Example:
//
//	{
//	  "departure_date": "2025-02-24T16:40:58.000Z",
//	  "pickup": {"latitude": 51.5, "longitude": -0.15},
//	  "passenger": {"name": "Elton John", "phone_number": "90234"}
//	}
//
// @Router /api/journeys/ [post]
func (j *JourneyController) CreateJourney(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxJourneyBodyBytes))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.MsgBodyValidation)
		return
	}

	journey, err := j.journeyService.CreateJourney(c.Request.Context(), body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey)
}

// GetJourneyById godoc
// @Summary Get journey by ID
// @Description Fetch a stored journey. Journeys without a passenger phone number are refused.
// @Tags Journey
// @Produce json
// @Param id path string true "Journey ID (24 hex characters)"
// @Success 200 {object} response_models.JourneyResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/journeys/{id} [get]
func (j *JourneyController) GetJourneyById(c *gin.Context) {
	journeyId := c.Param("id")

	journey, err := j.journeyService.GetJourneyById(c.Request.Context(), journeyId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey)
}
