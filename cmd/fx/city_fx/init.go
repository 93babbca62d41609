package city_fx

import (
	"go.uber.org/fx"

	"itinera/internal/services"
)

var Module = fx.Provide(services.NewCityService)
