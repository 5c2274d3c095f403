package controllers

import (
	"net/http"

	"storefront/services"

	"github.com/gin-gonic/gin"
)

// CatalogController handles HTTP requests for the product catalog.
type CatalogController struct {
	catalog   services.CatalogService
	validator *RequestValidator
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(catalog services.CatalogService) *CatalogController {
	return &CatalogController{
		catalog:   catalog,
		validator: NewRequestValidator(),
	}
}

// GetProducts handles GET /catalog
func (cc *CatalogController) GetProducts(c *gin.Context) {
	params, err := cc.validator.ParseListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products := cc.catalog.List(params)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct handles GET /catalog/:id
func (cc *CatalogController) GetProduct(c *gin.Context) {
	product, ok := cc.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetCategories handles GET /catalog/categories
func (cc *CatalogController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": cc.catalog.Categories()})
}

// RefreshCatalog handles POST /catalog/refresh
func (cc *CatalogController) RefreshCatalog(c *gin.Context) {
	count, svcErr := cc.catalog.Refresh(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "catalog refreshed", "products": count})
}
