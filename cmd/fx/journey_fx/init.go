package journey_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"splyt/internal/config"
	"splyt/internal/repositories"
	"splyt/internal/services"
	"splyt/internal/validators"
	mem "splyt/pkg/memcache"
)

var Module = fx.Provide(provideJourneyRepo, provideJourneyValidator, provideJourneyService)

func provideJourneyRepo(cfg config.Config, log zerolog.Logger, db *gorm.DB, store *mem.JourneyStore) repositories.JourneyRepository {
	if cfg.UsesSQL() {
		log.Info().Str("store", string(cfg.StoreDriver)).Msg("journeys stored in SQL database")
		return repositories.NewJourneyRepository(db)
	}
	log.Info().Msg("journeys stored in memory")
	return store
}

func provideJourneyValidator() validators.JourneyValidatorInterface {
	return validators.NewJourneyValidator()
}

func provideJourneyService(journeyRepo repositories.JourneyRepository, validator validators.JourneyValidatorInterface) services.JourneyServiceInterface {
	return services.NewJourneyService(journeyRepo, validator)
}
