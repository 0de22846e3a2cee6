package export_fx

import (
	"go.uber.org/fx"

	"travelr/internal/api/controllers"
	"travelr/internal/services"
)

var Module = fx.Provide(
	ProvideExportService,
	ProvideExportController)

func ProvideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func ProvideExportController(
	wishlistService services.WishlistServiceInterface,
	exportService services.ExportServiceInterface,
) *controllers.ExportController {
	return controllers.NewExportController(wishlistService, exportService)
}
