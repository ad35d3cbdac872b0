package intelligence

import (
	"context"

	"eventura/models"
)

// IntelligenceService fronts the AI assistant endpoints.
type IntelligenceService interface {
	Recommend(ctx context.Context, req models.RecommendRequest) (string, error)
	PredictBudget(ctx context.Context, req models.BudgetRequest) (string, error)
}

// APIClient is the slice of the upstream client this service uses.
type APIClient interface {
	Recommend(ctx context.Context, req models.RecommendRequest) (string, error)
	PredictBudget(ctx context.Context, req models.BudgetRequest) (string, error)
}

// DefaultIntelligenceService is the production implementation.
type DefaultIntelligenceService struct {
	API APIClient
}
