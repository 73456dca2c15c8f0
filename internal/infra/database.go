package infra

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"splyt/internal/config"
	dbm "splyt/internal/models/db_models"
)

// OpenDatabase connects to the SQL store selected by cfg and migrates the schema.
func OpenDatabase(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		if cfg.PostgresURL == "" {
			return nil, fmt.Errorf("open database: POSTGRES_URL is required for driver %q", cfg.StoreDriver)
		}
		dialector = postgres.Open(cfg.PostgresURL)
	case config.StoreDriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("open database: unsupported driver %q", cfg.StoreDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: NewGormLogger()})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.StoreDriver == config.StoreDriverSQLite && cfg.SQLitePath == ":memory:" {
		// every connection to :memory: is a separate database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Str("driver", string(cfg.StoreDriver)).Msg("database connected")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&dbm.Journey{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	} else {
		log.Info().Msg("database connection closed")
	}
}
