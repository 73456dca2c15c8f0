package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"splyt/internal/testdb"
	dbm "splyt/internal/models/db_models"
	"splyt/pkg/utils"
)

func newTestRepo(t *testing.T) JourneyRepository {
	t.Helper()
	db := testdb.New(t)
	return NewJourneyRepository(db)
}

func phone(s string) *string { return &s }

func sampleJourney() *dbm.Journey {
	return &dbm.Journey{
		DepartureDate: time.Date(2025, 2, 24, 16, 40, 58, 0, time.UTC),
		Pickup:        dbm.Location{Latitude: 51.5, Longitude: -0.15},
		Passenger:     dbm.Passenger{Name: "Elton John", PhoneNumber: phone("90234")},
	}
}

func TestJourneyRepository_CreateAssignsID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	j := sampleJourney()
	require.NoError(t, repo.CreateJourney(ctx, j))

	assert.True(t, utils.IsObjectID(j.ID), "id %q", j.ID)
	assert.NotZero(t, j.CreatedAt)
}

func TestJourneyRepository_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	j := sampleJourney()
	require.NoError(t, repo.CreateJourney(ctx, j))

	got, err := repo.GetJourneyById(ctx, j.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, j.ID, got.ID)
	assert.True(t, j.DepartureDate.Equal(got.DepartureDate))
	assert.Equal(t, j.Pickup, got.Pickup)
	assert.Equal(t, "Elton John", got.Passenger.Name)
	require.NotNil(t, got.Passenger.PhoneNumber)
	assert.Equal(t, "90234", *got.Passenger.PhoneNumber)
}

func TestJourneyRepository_NullPhoneNumber(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	j := sampleJourney()
	j.Passenger.PhoneNumber = nil
	require.NoError(t, repo.CreateJourney(ctx, j))

	got, err := repo.GetJourneyById(ctx, j.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Passenger.PhoneNumber)
	assert.False(t, got.HasPhoneNumber())
}

func TestJourneyRepository_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetJourneyById(context.Background(), "000000000000000000000000")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestJourneyRepository_ConcurrentCreate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const n = 20
	ids := make([]string, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			j := sampleJourney()
			errs[i] = repo.CreateJourney(ctx, j)
			ids[i] = j.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[ids[i]], "duplicate id %s", ids[i])
		seen[ids[i]] = true
	}
}
