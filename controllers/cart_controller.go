package controllers

import (
	"net/http"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// CartController handles HTTP requests for the session cart.
type CartController struct {
	carts services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(carts services.CartService) *CartController {
	return &CartController{carts: carts}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /cart
func (cc *CartController) GetCart(c *gin.Context) {
	cart, svcErr := cc.carts.Get(c.Request.Context(), middleware.SessionID(c))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respondCart(c, http.StatusOK, cart)
}

// AddItem handles POST /cart/items
func (cc *CartController) AddItem(c *gin.Context) {
	var params services.AddItemParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cart, svcErr := cc.carts.AddItem(c.Request.Context(), middleware.SessionID(c), params)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respondCart(c, http.StatusCreated, cart)
}

// UpdateItem handles PATCH /cart/items/:item_id
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cart, svcErr := cc.carts.SetQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("item_id"), req.Quantity)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respondCart(c, http.StatusOK, cart)
}

// RemoveItem handles DELETE /cart/items/:item_id
func (cc *CartController) RemoveItem(c *gin.Context) {
	cart, svcErr := cc.carts.RemoveItem(c.Request.Context(), middleware.SessionID(c), c.Param("item_id"))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respondCart(c, http.StatusOK, cart)
}

// ClearCart handles DELETE /cart
func (cc *CartController) ClearCart(c *gin.Context) {
	if svcErr := cc.carts.Clear(c.Request.Context(), middleware.SessionID(c)); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

func respondCart(c *gin.Context, status int, cart *models.Cart) {
	c.JSON(status, gin.H{
		"cart":  cart,
		"total": cart.Total(),
	})
}
