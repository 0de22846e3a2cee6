package wishlist_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelr/internal/api/controllers"
	"travelr/internal/repositories"
	"travelr/internal/services"
)

var Module = fx.Provide(
	ProvideWishlistRepository,
	ProvideWishlistService,
	ProvideWishlistController)

func ProvideWishlistRepository(db *gorm.DB) repositories.WishlistRepository {
	return repositories.NewWishlistRepository(db)
}

func ProvideWishlistService(wishlistRepo repositories.WishlistRepository) services.WishlistServiceInterface {
	return services.NewWishlistService(wishlistRepo)
}

func ProvideWishlistController(wishlistService services.WishlistServiceInterface) *controllers.WishlistController {
	return controllers.NewWishlistController(wishlistService)
}
