package handlers

import (
	"net/http"

	"eventura/models"
	"eventura/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler fronts the assistant endpoints. The marketplace API answers in
// plain text, so the replies are wrapped as JSON here.
type AIHandler struct {
	AI intelligence.IntelligenceService
}

func NewAIHandler(ai intelligence.IntelligenceService) *AIHandler {
	return &AIHandler{AI: ai}
}

// RecommendHandler asks for planner recommendations.
func (h *AIHandler) RecommendHandler(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	text, err := h.AI.Recommend(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Warn("Recommendation failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadRequest), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendation": text})
}

// PredictBudgetHandler asks for an event budget estimate.
func (h *AIHandler) PredictBudgetHandler(c *gin.Context) {
	var req models.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	text, err := h.AI.PredictBudget(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Warn("Budget prediction failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadRequest), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prediction": text})
}
