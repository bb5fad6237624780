package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pollgate/internal/rbac"
)

// internalError answers a persistence failure with the fixed opaque envelope.
// The underlying error is logged, never sent to the caller.
func internalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"message": message,
	})
}

// authError maps evaluator errors to the 401 envelope; anything else is an
// unexpected storage failure.
func authError(c *gin.Context, err error, failMessage string) {
	switch {
	case errors.Is(err, rbac.ErrCodeNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access code not found."})
	case errors.Is(err, rbac.ErrInsufficientRole):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You do not have permission to perform this action."})
	default:
		log.Error().Err(err).Msg("access code lookup failed")
		internalError(c, failMessage)
	}
}

func pollNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Poll does not exist."})
}
