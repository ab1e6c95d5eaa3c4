package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
)

// productHandler handles HTTP requests related to products.
type productHandler struct {
	crud *crudHandler[domain.Product, dto.CreateProductRequest, dto.UpdateProductRequest, dto.ProductResponse]
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, svc portssvc.ProductSvcFacade) {
	h := &productHandler{
		crud: newCRUDHandler[domain.Product, dto.CreateProductRequest, dto.UpdateProductRequest, dto.ProductResponse](
			"Product", svc, dto.ToProductResponse, dto.ToListProductResponse,
		),
	}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}
}

// createProduct godoc
// @Summary Create a product
// @Description Creates a catalog product. sku and name are required; vendor_id must reference an existing vendor.
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create product"
// @Security BasicAuth
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	h.crud.create(c)
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce  json
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list product"
// @Security BasicAuth
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	h.crud.list(c)
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce  json
// @Param   id path int true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve product"
// @Security BasicAuth
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	h.crud.get(c)
}

// updateProduct godoc
// @Summary Update a product
// @Description Overwrites the fields present in the body. Absent fields keep their stored value; null clears a nullable field.
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path int true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update product"
// @Security BasicAuth
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	h.crud.update(c)
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Param   id path int true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete product"
// @Security BasicAuth
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	h.crud.delete(c)
}
