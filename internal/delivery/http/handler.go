package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labelwise/backend/internal/domain"
	"github.com/labelwise/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scores *usecase.ScoreService
	store  domain.SubmissionStore
}

// NewHandler creates a new HTTP handler
func NewHandler(scores *usecase.ScoreService, store domain.SubmissionStore) *Handler {
	return &Handler{
		scores: scores,
		store:  store,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "labelwise-backend",
		"version": "1.0.0",
	})
}

// GetProductScore resolves a barcode and returns its health score.
// An unresolved barcode is a 200 with status "Unknown", not an error.
func (h *Handler) GetProductScore(c *gin.Context) {
	if h.scores == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Score service not available",
		})
		return
	}

	result, err := h.scores.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Product code is required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to score product",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListAdditives returns the full additive knowledge base as-is
func (h *Handler) ListAdditives(c *gin.Context) {
	if h.scores == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Score service not available",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"additives": h.scores.ListAdditives(),
	})
}

// SubmitCorrection stores an arbitrary correction payload and returns it
// with its assigned id and submission timestamp
func (h *Handler) SubmitCorrection(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Submission store not available",
		})
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Request body must be a JSON object",
		})
		return
	}
	if len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Correction payload is required",
		})
		return
	}

	submission, err := h.store.Append(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store correction",
		})
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// ListCorrections returns every stored correction in submission order
func (h *Handler) ListCorrections(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Submission store not available",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"corrections": h.store.List(),
	})
}
