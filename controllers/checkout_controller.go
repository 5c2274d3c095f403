package controllers

import (
	"mime/multipart"
	"net/http"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// CheckoutController handles the checkout form submission.
type CheckoutController struct {
	checkout  services.CheckoutService
	validator *RequestValidator
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(checkout services.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkout:  checkout,
		validator: NewRequestValidator(),
	}
}

// Checkout handles POST /checkout. The body is a multipart form with the
// contact fields and the receipt image. Validation failures come back as a
// field-keyed error map so the client can annotate each offending field.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	var receipt *multipart.FileHeader
	if file, err := c.FormFile("receipt"); err == nil {
		receipt = file
	}

	if fieldErrors := cc.validator.ValidateCheckout(form, receipt); len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
		return
	}

	order, svcErr := cc.checkout.Submit(c.Request.Context(), middleware.SessionID(c), form, receipt)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "order submitted",
		"order":   order,
	})
}
