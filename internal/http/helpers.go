package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mkoval/agenda/internal/database"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondConflict sends a 409 Conflict response.
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error
// response without leaking the underlying message to the client.
func respondInternalError(c *gin.Context, err error) {
	log.Printf("internal error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondStoreError maps a repository error onto the right status code:
// absent record to 404, uniqueness violation to 409, the rest to 500.
func respondStoreError(c *gin.Context, resource string, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondNotFound(c, resource)
	case errors.Is(err, database.ErrDuplicate):
		respondConflict(c, resource+" already exists")
	default:
		respondInternalError(c, err)
	}
}

// --- Parameter Helpers ---

// parseIDParam parses the named path parameter as an entity id. On failure
// it writes a 400 response and returns ok=false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}

// parseLimitQuery parses the optional "limit" query parameter, falling back
// to the given default.
func parseLimitQuery(c *gin.Context, fallback int) int {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	return limit
}
