package routes

import (
	"github.com/gin-gonic/gin"

	"ecommerce-backend/controllers"
	"ecommerce-backend/middleware"
)

type Deps struct {
	JWTSecret []byte
	Auth      *controllers.AuthController
	Users     *controllers.UserController
	Products  *controllers.ProductController
	Cart      *controllers.CartController
	Orders    *controllers.OrderController
	Payments  *controllers.PaymentController
}

// Setup wires every route group under /api. Public auth routes first, then
// the bearer-protected groups, with admin-only mutations behind RequireAdmin.
func Setup(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
	}

	authed := api.Group("", middleware.RequireAuth(d.JWTSecret))
	{
		authed.GET("/user/profile", d.Users.GetProfile)
		authed.PUT("/user/profile", d.Users.UpdateProfile)

		authed.GET("/products", d.Products.List)
		authed.GET("/products/:id", d.Products.Get)
		authed.POST("/products", middleware.RequireAdmin, d.Products.Create)
		authed.PUT("/products/:id", middleware.RequireAdmin, d.Products.Update)
		authed.DELETE("/products/:id", middleware.RequireAdmin, d.Products.Delete)

		authed.GET("/cart", d.Cart.Get)
		authed.POST("/cart", d.Cart.AddItem)
		authed.PUT("/cart/products/:productId", d.Cart.UpdateQuantity)
		authed.DELETE("/cart/:productId", d.Cart.RemoveItem)
		authed.DELETE("/cart", d.Cart.Clear)

		authed.POST("/orders", d.Orders.Create)
		authed.GET("/orders", d.Orders.List)
		authed.PUT("/orders/:id", middleware.RequireAdmin, d.Orders.UpdateStatus)
		authed.DELETE("/orders/:id", middleware.RequireAdmin, d.Orders.Delete)

		authed.POST("/payments/create-checkout-session/:orderId", d.Payments.CreateCheckoutSession)
		authed.GET("/payments/verify-payment", d.Payments.VerifyPayment)
	}
}
