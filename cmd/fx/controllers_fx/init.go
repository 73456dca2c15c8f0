package controllers_fx

import (
	"go.uber.org/fx"
	"splyt/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewJourneyController),
	fx.Provide(controllers.NewHealthController))
