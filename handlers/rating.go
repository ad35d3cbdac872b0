package handlers

import (
	"context"
	"net/http"

	"eventura/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RatingAPIClient is the slice of the upstream client the rating relay uses.
type RatingAPIClient interface {
	SubmitRating(ctx context.Context, rating models.Rating) error
}

// RatingHandler records planner ratings.
type RatingHandler struct {
	API RatingAPIClient
}

func NewRatingHandler(api RatingAPIClient) *RatingHandler {
	return &RatingHandler{API: api}
}

// SubmitRatingHandler records a planner rating for the authenticated customer.
func (h *RatingHandler) SubmitRatingHandler(c *gin.Context) {
	var rating models.Rating
	if err := c.ShouldBindJSON(&rating); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if rating.Rating < 1 || rating.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}
	if rating.UserEmail == "" {
		rating.UserEmail = sessionEmail(c)
	}

	if err := h.API.SubmitRating(c.Request.Context(), rating); err != nil {
		getLogger(c).Error("Rating submit failed", zap.Int("planner", rating.PlannerID), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Rating submit failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Rating recorded"})
}
