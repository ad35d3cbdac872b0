package upstream

import (
	"context"
	"fmt"
	"net/http"

	"eventura/models"
)

// Planners lists all planners.
func (c *Client) Planners(ctx context.Context) ([]models.Planner, error) {
	var planners []models.Planner
	if err := c.getJSON(ctx, "/planners", &planners); err != nil {
		return nil, err
	}
	return planners, nil
}

// CreatePlanner registers a new planner.
func (c *Client) CreatePlanner(ctx context.Context, planner models.Planner) (*models.Planner, error) {
	var created models.Planner
	if err := c.sendJSON(ctx, http.MethodPost, "/planners", planner, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePlanner replaces a planner record by ID.
func (c *Client) UpdatePlanner(ctx context.Context, id int, planner models.Planner) (*models.Planner, error) {
	var updated models.Planner
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/planners/%d", id), planner, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePlanner removes a planner by ID.
func (c *Client) DeletePlanner(ctx context.Context, id int) error {
	return c.sendQuery(ctx, http.MethodDelete, fmt.Sprintf("/planners/%d", id), nil, nil)
}
