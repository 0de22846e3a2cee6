package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"travelr/cmd/fx/account_fx"
	"travelr/cmd/fx/db_fx"
	"travelr/cmd/fx/export_fx"
	"travelr/cmd/fx/generator_fx"
	"travelr/cmd/fx/itinerary_fx"
	"travelr/cmd/fx/packing_fx"
	"travelr/cmd/fx/wishlist_fx"
	"travelr/internal/api/controllers"
	"travelr/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		generator_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		packing_fx.Module,
		wishlist_fx.Module,
		export_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	packingController *controllers.PackingListController,
	wishlistController *controllers.WishlistController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, itineraryController, packingController, wishlistController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	packingController *controllers.PackingListController,
	wishlistController *controllers.WishlistController,
	exportController *controllers.ExportController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", accountController.SignUpHandler)
	authGroup.POST("/login", accountController.LoginHandler)

	apiGroup := r.Group("/api")
	apiGroup.POST("/generate-itinerary", itineraryController.GenerateItineraryHandler)
	apiGroup.POST("/generate-packing-list", packingController.GeneratePackingListHandler)

	wishlistGroup := r.Group("/wishlist")
	wishlistGroup.Use(middleware.JWTAuthMiddleware())
	wishlistGroup.POST("", wishlistController.SaveHandler)
	wishlistGroup.GET("", wishlistController.ListHandler)
	wishlistGroup.GET("/:id", wishlistController.GetHandler)
	wishlistGroup.PUT("/:id", wishlistController.UpdateHandler)
	wishlistGroup.DELETE("/:id", wishlistController.RemoveHandler)
	wishlistGroup.GET("/:id/export/pdf", exportController.ExportPDFHandler)
	wishlistGroup.GET("/:id/export/whatsapp", exportController.WhatsAppShareHandler)
}
