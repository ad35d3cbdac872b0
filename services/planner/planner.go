package planner

import (
	"context"
	"fmt"
	"strings"

	"eventura/models"
)

// Directory fetches all planners and applies the search filter client-side.
func (s *DefaultPlannerService) Directory(ctx context.Context, filter models.PlannerFilter) ([]models.Planner, error) {
	planners, err := s.API.Planners(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load planners: %w", err)
	}
	return Filter(planners, filter), nil
}

// Filter applies the directory search predicates over an already-fetched
// planner list. All matching is case-insensitive. The free-text query matches
// name or specialization; type and location are equality filters.
func Filter(planners []models.Planner, filter models.PlannerFilter) []models.Planner {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	matched := make([]models.Planner, 0, len(planners))
	for _, p := range planners {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.FullName), query) &&
			!strings.Contains(strings.ToLower(p.Specialization), query) {
			continue
		}
		if filter.Type != "" && p.Specialization != "" &&
			!strings.EqualFold(p.Specialization, filter.Type) {
			continue
		}
		if filter.Location != "" && p.City != "" &&
			!strings.EqualFold(p.City, filter.Location) {
			continue
		}
		if filter.Budget != "" && p.FullName != "" &&
			!strings.Contains(strings.ToLower(p.FullName), strings.ToLower(filter.Budget)) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// Portfolio returns one planner with their hosted events merged in.
func (s *DefaultPlannerService) Portfolio(ctx context.Context, plannerID int) (*models.Planner, error) {
	planners, err := s.API.Planners(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load planners: %w", err)
	}
	for _, p := range planners {
		if p.ID == plannerID {
			events, err := s.API.EventsByPlanner(ctx, plannerID)
			if err != nil {
				return nil, fmt.Errorf("could not load planner events: %w", err)
			}
			p.Events = events
			return &p, nil
		}
	}
	return nil, fmt.Errorf("planner %d not found", plannerID)
}

// Create registers a planner and returns the authoritative list.
func (s *DefaultPlannerService) Create(ctx context.Context, p models.Planner) ([]models.Planner, error) {
	if _, err := s.API.CreatePlanner(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to add planner: %w", err)
	}
	return s.API.Planners(ctx)
}

// Update edits a planner and returns the authoritative list.
func (s *DefaultPlannerService) Update(ctx context.Context, id int, p models.Planner) ([]models.Planner, error) {
	if _, err := s.API.UpdatePlanner(ctx, id, p); err != nil {
		return nil, fmt.Errorf("failed to update planner %d: %w", id, err)
	}
	return s.API.Planners(ctx)
}

// Delete removes a planner and returns the authoritative list.
func (s *DefaultPlannerService) Delete(ctx context.Context, id int) ([]models.Planner, error) {
	if err := s.API.DeletePlanner(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete planner %d: %w", id, err)
	}
	return s.API.Planners(ctx)
}
