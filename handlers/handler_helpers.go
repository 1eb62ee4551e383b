package handlers

import (
	"net/http"

	"newschat-backend/models"

	"github.com/gin-gonic/gin"
)

// =============================================================================
// Response Helpers
// =============================================================================

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, code int, error, message string) {
	c.JSON(code, models.ErrorResponse{
		Error:   error,
		Message: message,
		Code:    code,
	})
}

// respondBadRequest sends a 400 error response
func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, "Invalid request", message)
}

// respondMissingParam sends a 400 error for missing parameters
func respondMissingParam(c *gin.Context, param string) {
	respondWithError(c, http.StatusBadRequest, "Missing parameter", param+" is required")
}

// respondInternalError sends a 500 error response
func respondInternalError(c *gin.Context, message string) {
	respondWithError(c, http.StatusInternalServerError, "Internal error", message)
}

// respondNotFound sends a 404 error response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, "Not found", message)
}

// respondConflict sends a 409 error response
func respondConflict(c *gin.Context, message string) {
	respondWithError(c, http.StatusConflict, "Conflict", message)
}

// respondConfigError sends a 500 error for a missing credential. The message
// names the variable to set; it never carries provider response bodies.
func respondConfigError(c *gin.Context, message string) {
	respondWithError(c, http.StatusInternalServerError, "Configuration error",
		message+". Please add it to your environment variables.")
}
