// pkg/memcache/journey_store.go
package mem

import (
	"context"
	"fmt"
	"sync"

	dbm "splyt/internal/models/db_models"
	"splyt/pkg/utils"
)

// JourneyStore keeps journeys in process memory. It satisfies
// repositories.JourneyRepository and is safe for concurrent use.
type JourneyStore struct {
	mu   sync.RWMutex
	data map[string]*dbm.Journey
}

func NewJourneyStore() *JourneyStore {
	return &JourneyStore{
		data: make(map[string]*dbm.Journey),
	}
}

func (s *JourneyStore) CreateJourney(ctx context.Context, journey *dbm.Journey) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	journey.AssignID()
	if _, taken := s.data[journey.ID]; taken {
		return fmt.Errorf("journey %s already exists", journey.ID)
	}

	now := utils.NowUnixSeconds()
	journey.CreatedAt = now
	journey.UpdatedAt = now

	s.data[journey.ID] = journey.Clone()
	return nil
}

// GetJourneyById returns a copy of the stored journey, or nil if missing.
func (s *JourneyStore) GetJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.data[journeyId]
	if !ok {
		return nil, nil
	}
	return j.Clone(), nil
}

func (s *JourneyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
