package upstream

import (
	"context"
	"net/http"

	"eventura/models"
)

// Recommend asks the AI assistant for planner recommendations. The endpoint
// replies with plain text.
func (c *Client) Recommend(ctx context.Context, req models.RecommendRequest) (string, error) {
	return c.sendJSONText(ctx, http.MethodPost, "/api/ai/recommend", req)
}

// PredictBudget asks the AI assistant for a budget estimate. The endpoint
// replies with plain text.
func (c *Client) PredictBudget(ctx context.Context, req models.BudgetRequest) (string, error) {
	return c.sendJSONText(ctx, http.MethodPost, "/api/ai/predict-budget", req)
}
