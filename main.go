package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"ecommerce-backend/config"
	"ecommerce-backend/controllers"
	"ecommerce-backend/payment"
	"ecommerce-backend/routes"
	"ecommerce-backend/services"
	"ecommerce-backend/store"
)

func main() {
	cfg := config.Load()

	client, err := store.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	log.Info().Str("database", cfg.MongoDatabase).Msg("connected to MongoDB")

	stores := store.NewStores(client.Database(cfg.MongoDatabase))
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey, cfg.FrontendURL)

	cartSvc := services.NewCartService(stores.Products, stores.Carts)
	checkoutSvc := services.NewCheckoutService(stores.Products, stores.Carts, stores.Orders)
	paymentSvc := services.NewPaymentService(gateway, stores.Orders, stores.Products, stores.Carts)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.Setup(r, routes.Deps{
		JWTSecret: []byte(cfg.JWTSecret),
		Auth:      controllers.NewAuthController(stores.Users, []byte(cfg.JWTSecret)),
		Users:     controllers.NewUserController(stores.Users),
		Products:  controllers.NewProductController(stores.Products),
		Cart:      controllers.NewCartController(cartSvc),
		Orders:    controllers.NewOrderController(checkoutSvc),
		Payments:  controllers.NewPaymentController(paymentSvc),
	})

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
