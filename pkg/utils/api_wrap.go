package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Messages are matched verbatim by API clients, keep them static.
const (
	MsgBodyValidation     = "request failed body validation"
	MsgMissingPhoneNumber = "User has no phone number"
	MsgJourneyNotFound    = "Journey not found"
	MsgRouteNotFound      = "Not found"
	MsgInternalError      = "Internal server error"
)

type APIResponse struct {
	Message string `json:"message"`
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, APIResponse{Message: message})
}

func HandleServiceError(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	switch {
	case errors.Is(err, ErrBodyValidation):
		RespondError(c, http.StatusBadRequest, MsgBodyValidation)
	case errors.Is(err, ErrMissingPhoneNumber):
		RespondError(c, http.StatusBadRequest, MsgMissingPhoneNumber)
	case errors.Is(err, ErrJourneyNotFound):
		RespondError(c, http.StatusNotFound, MsgJourneyNotFound)
	case errors.Is(err, ErrDatabaseError):
		log.Error().Err(err).Str("trace_id", traceID).Msg("database error")
		RespondError(c, http.StatusInternalServerError, MsgInternalError)
	default:
		log.Error().Err(err).Str("trace_id", traceID).Msg("unknown error")
		RespondError(c, http.StatusInternalServerError, MsgInternalError)
	}
}
