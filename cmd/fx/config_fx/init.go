package config_fx

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"splyt/internal/config"
	"splyt/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideLogger),
)

func provideConfig() (config.Config, error) {
	return config.LoadConfig("")
}

func provideLogger(cfg config.Config) zerolog.Logger {
	gin.SetMode(cfg.GinMode)
	return logger.Setup(cfg)
}
