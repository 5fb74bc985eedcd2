package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go-pg-manager/internal/store"

	"github.com/gin-gonic/gin"
)

// respondStoreError maps the store's error taxonomy onto HTTP status codes:
// validation and dangling references are the caller's fault (400), missing
// targets are 404, structural conflicts are 409, anything else is a storage
// failure the caller cannot fix (500).
func respondStoreError(c *gin.Context, err error) {
	var validationErr *store.ValidationError
	var referenceErr *store.ReferenceError
	var notFoundErr *store.NotFoundError
	var constraintErr *store.ConstraintError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &referenceErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &constraintErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseID reads the :id path parameter. Returns false after writing the 400.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
