package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"splyt/internal/models/db_models"
	"splyt/internal/models/response_models"
	"splyt/internal/repositories"
	"splyt/internal/validators"
	"splyt/pkg/utils"
)

type JourneyServiceInterface interface {
	CreateJourney(ctx context.Context, body []byte) (*response_models.JourneyResponse, error)
	GetJourneyById(ctx context.Context, journeyId string) (*response_models.JourneyResponse, error)
}

type JourneyService struct {
	journeyRepo repositories.JourneyRepository
	validator   validators.JourneyValidatorInterface
}

func NewJourneyService(journeyRepo repositories.JourneyRepository, validator validators.JourneyValidatorInterface) JourneyServiceInterface {
	return &JourneyService{
		journeyRepo: journeyRepo,
		validator:   validator,
	}
}

// CreateJourney validates a raw creation payload and stores it. Nothing is
// stored when validation fails.
func (j *JourneyService) CreateJourney(ctx context.Context, body []byte) (*response_models.JourneyResponse, error) {
	req, err := j.validator.ValidateCreateJourney(body)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("journey rejected")
		return nil, err
	}

	journey := &db_models.Journey{
		DepartureDate: req.DepartureDate,
		Pickup: db_models.Location{
			Latitude:  req.Pickup.Latitude,
			Longitude: req.Pickup.Longitude,
		},
		Passenger: db_models.Passenger{
			Name:        req.Passenger.Name,
			PhoneNumber: req.Passenger.PhoneNumber,
		},
	}

	if err := j.journeyRepo.CreateJourney(ctx, journey); err != nil {
		return nil, fmt.Errorf("create journey: %w: %w", utils.ErrDatabaseError, err)
	}

	log.Ctx(ctx).Info().Str("journey_id", journey.ID).Msg("journey created")
	return db_models.BuildJourneyResponse(journey), nil
}

// GetJourneyById returns the stored journey. A journey booked without a phone
// number exists but is not served.
func (j *JourneyService) GetJourneyById(ctx context.Context, journeyId string) (*response_models.JourneyResponse, error) {
	if !utils.IsObjectID(journeyId) {
		return nil, utils.ErrJourneyNotFound
	}

	journey, err := j.journeyRepo.GetJourneyById(ctx, journeyId)
	if err != nil {
		return nil, fmt.Errorf("get journey %s: %w: %w", journeyId, utils.ErrDatabaseError, err)
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}

	if !journey.HasPhoneNumber() {
		return nil, utils.ErrMissingPhoneNumber
	}

	return db_models.BuildJourneyResponse(journey), nil
}
