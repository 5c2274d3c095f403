package routes

import (
	"storefront/controllers"
	"storefront/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all storefront routes.
func RegisterRoutes(
	r *gin.Engine,
	catalogController *controllers.CatalogController,
	cartController *controllers.CartController,
	checkoutController *controllers.CheckoutController,
) {
	catalog := r.Group("/catalog")
	catalog.Use(middleware.Session())
	{
		catalog.GET("", catalogController.GetProducts)
		catalog.GET("/categories", catalogController.GetCategories)
		catalog.GET("/:id", catalogController.GetProduct)
		catalog.POST("/refresh", catalogController.RefreshCatalog)
	}

	cart := r.Group("/cart")
	cart.Use(middleware.Session())
	{
		cart.GET("", cartController.GetCart)
		cart.DELETE("", cartController.ClearCart)
		cart.POST("/items", cartController.AddItem)
		cart.PATCH("/items/:item_id", cartController.UpdateItem)
		cart.DELETE("/items/:item_id", cartController.RemoveItem)
	}

	checkout := r.Group("/checkout")
	checkout.Use(middleware.Session())
	{
		checkout.POST("", checkoutController.Checkout)
	}
}
