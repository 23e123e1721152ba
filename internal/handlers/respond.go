package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ObraLedger/construction_finance_app/internal/apperrors"
	"github.com/ObraLedger/construction_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP status codes and writes the JSON
// error body. fallback is used for unclassified errors, whose detail stays in
// the logs only.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrNegativeBalance):
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Request conflicted", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// staffIDFromRequest identifies the acting staff member. Authentication is
// handled upstream; the gateway forwards the identity in a header.
func staffIDFromRequest(c *gin.Context) string {
	if id := c.GetHeader("X-Staff-ID"); id != "" {
		return id
	}
	return "system"
}
