package intelligence

import (
	"context"
	"fmt"
	"strings"

	"eventura/models"
)

// Recommend relays a recommendation request. Empty criteria are rejected
// before any network call.
func (s *DefaultIntelligenceService) Recommend(ctx context.Context, req models.RecommendRequest) (string, error) {
	if strings.TrimSpace(req.Criteria) == "" {
		return "", fmt.Errorf("criteria is required")
	}
	text, err := s.API.Recommend(ctx, req)
	if err != nil {
		return "", fmt.Errorf("recommendation failed: %w", err)
	}
	return text, nil
}

// PredictBudget relays a budget prediction request.
func (s *DefaultIntelligenceService) PredictBudget(ctx context.Context, req models.BudgetRequest) (string, error) {
	if req.Type == "" {
		return "", fmt.Errorf("event type is required")
	}
	text, err := s.API.PredictBudget(ctx, req)
	if err != nil {
		return "", fmt.Errorf("budget prediction failed: %w", err)
	}
	return text, nil
}
