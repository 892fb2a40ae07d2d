package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/product_transactions/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the API's {"error": ...} shape.
// fallback is the message used for unclassified failures.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrUpstreamFetch):
		logger.Error("Upstream dataset fetch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch seed data from upstream source"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Seed data failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Seed data failed validation: " + err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
