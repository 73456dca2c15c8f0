package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "splyt/internal/models/db_models"
)

// JourneyRepository owns journey ids and lookup. GetJourneyById returns
// (nil, nil) when no journey has the given id.
type JourneyRepository interface {
	CreateJourney(ctx context.Context, journey *dbm.Journey) error
	GetJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error)
}

type journeyRepository struct {
	db *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) JourneyRepository {
	return &journeyRepository{db: db}
}

func (r *journeyRepository) CreateJourney(ctx context.Context, journey *dbm.Journey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(journey).Error
	})
}

func (r *journeyRepository) GetJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error) {
	var journey dbm.Journey
	err := r.db.WithContext(ctx).
		Where("id = ?", journeyId).
		First(&journey).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &journey, nil
}
