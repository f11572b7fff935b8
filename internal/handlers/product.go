// internal/handlers/product.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/services"
	"github.com/niyorhq/niyor-server/internal/storage"
	"github.com/niyorhq/niyor-server/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListActiveProducts(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			utils.BadRequestResponse(c, "Invalid product id")
		case errors.Is(err, storage.ErrNotFound):
			utils.NotFoundResponse(c, "Product not found")
		default:
			utils.InternalErrorResponse(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	id, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.ValidationErrorResponse(c, verr.Violations)
		case errors.Is(err, storage.ErrDuplicate):
			utils.ConflictResponse(c, "A product with this slug already exists")
		default:
			utils.InternalErrorResponse(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	result, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.ValidationErrorResponse(c, verr.Violations)
		case errors.Is(err, storage.ErrInvalidID):
			utils.BadRequestResponse(c, "Invalid product id")
		case errors.Is(err, storage.ErrNotFound):
			utils.NotFoundResponse(c, "Product not found")
		case errors.Is(err, storage.ErrDuplicate):
			utils.ConflictResponse(c, "A product with this slug already exists")
		default:
			utils.InternalErrorResponse(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	count, err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			utils.BadRequestResponse(c, "Invalid product id")
		case errors.Is(err, storage.ErrNotFound):
			utils.NotFoundResponse(c, "Product not found")
		default:
			utils.InternalErrorResponse(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}
