package db_fx

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"splyt/internal/config"
	"splyt/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// provideDB returns a nil *gorm.DB when journeys are kept in memory.
func provideDB(lc fx.Lifecycle, cfg config.Config, log zerolog.Logger) (*gorm.DB, error) {
	if !cfg.UsesSQL() {
		return nil, nil
	}

	db, err := infra.OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("closing database")
			infra.CloseDatabase(db)
			return nil
		},
	})
	return db, nil
}
