package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pankajredekar/productapi/internal/product"
	"go.uber.org/zap"
)

// Handler binds product operations to HTTP routes
type Handler struct {
	service *product.Service
	logger  *zap.Logger
}

// NewHandler creates a new product handler
func NewHandler(service *product.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// ListProducts handles GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateProduct handles POST /products
func (h *Handler) CreateProduct(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}

	p, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProduct handles PUT /products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProduct handles DELETE /products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindInput decodes the JSON body. A body that cannot be decoded is
// treated like one with the required fields missing.
func bindInput(c *gin.Context) (product.Input, bool) {
	var in product.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.String(http.StatusBadRequest, msgRequired)
		return in, false
	}
	return in, true
}
