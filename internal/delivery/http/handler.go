package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
	"github.com/RikuXan/mymuesli-analyzer/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	driver     *usecase.CatalogJoinDriver
	classifier *usecase.TypeClassifier
}

// NewHandler creates a new HTTP handler
func NewHandler(driver *usecase.CatalogJoinDriver, classifier *usecase.TypeClassifier) *Handler {
	return &Handler{
		driver:     driver,
		classifier: classifier,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mymuesli-analyzer",
		"version": "1.0.0",
	})
}

// ListReadyMixes returns the full assembled collection. The first request
// drives the feed join; later requests serve the memoized result.
func (h *Handler) ListReadyMixes(c *gin.Context) {
	mixes, err := h.driver.BuildAll(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":      len(mixes),
		"readyMixes": mixes,
	})
}

// Report returns the popularity/type-distribution summary over the
// collection. ?top=N bounds the number of rows (default 10).
func (h *Handler) Report(c *gin.Context) {
	top, err := strconv.Atoi(c.DefaultQuery("top", "10"))
	if err != nil || top <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "top must be a positive integer"})
		return
	}

	mixes, err := h.driver.BuildAll(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, usecase.BuildReport(mixes, h.classifier.Categories(), top))
}

// statusForError maps build failures to response codes: upstream feed
// trouble is a bad gateway, everything else an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrCatalogMismatch):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
