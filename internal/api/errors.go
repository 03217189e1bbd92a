package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pankajredekar/productapi/internal/product"
	"go.uber.org/zap"
)

const (
	msgRequired = "Name and price are required"
	msgNotFound = "Product not found"
	msgInternal = "Internal server error"
)

// writeError maps a service error to its status code and plain-text body.
// Store failures are logged with detail; the client only sees a generic message.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, product.ErrValidation):
		c.String(http.StatusBadRequest, msgRequired)
	case errors.Is(err, product.ErrNotFound):
		c.String(http.StatusNotFound, msgNotFound)
	default:
		var se *product.StoreError
		if errors.As(err, &se) {
			h.logger.Error("Database Error", zap.String("op", se.Op), zap.Error(se.Err))
		} else {
			h.logger.Error("Unexpected error", zap.Error(err))
		}
		c.String(http.StatusInternalServerError, msgInternal)
	}
}
