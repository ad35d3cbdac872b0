package planner

import (
	"context"

	"eventura/models"
)

// PlannerService is the planner directory: fetch, client-side filtering and
// the admin CRUD relays.
type PlannerService interface {
	Directory(ctx context.Context, filter models.PlannerFilter) ([]models.Planner, error)
	Portfolio(ctx context.Context, plannerID int) (*models.Planner, error)
	Create(ctx context.Context, p models.Planner) ([]models.Planner, error)
	Update(ctx context.Context, id int, p models.Planner) ([]models.Planner, error)
	Delete(ctx context.Context, id int) ([]models.Planner, error)
}

// APIClient is the slice of the upstream client this service uses.
type APIClient interface {
	Planners(ctx context.Context) ([]models.Planner, error)
	EventsByPlanner(ctx context.Context, plannerID int) ([]models.Event, error)
	CreatePlanner(ctx context.Context, p models.Planner) (*models.Planner, error)
	UpdatePlanner(ctx context.Context, id int, p models.Planner) (*models.Planner, error)
	DeletePlanner(ctx context.Context, id int) error
}

// DefaultPlannerService is the production implementation.
type DefaultPlannerService struct {
	API APIClient
}
