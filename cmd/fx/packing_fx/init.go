package packing_fx

import (
	"go.uber.org/fx"

	"travelr/cmd/fx/itinerary_fx"
	"travelr/internal/api/controllers"
	"travelr/internal/services"
	"travelr/pkg/utils"
)

var Module = fx.Provide(
	ProvidePackingService,
	ProvidePackingListController)

func ProvidePackingService(client utils.GenerativeClientInterface) services.PackingServiceInterface {
	return services.NewPackingService(client, itinerary_fx.GenerationTimeout())
}

func ProvidePackingListController(packingService services.PackingServiceInterface) *controllers.PackingListController {
	return controllers.NewPackingListController(packingService)
}
