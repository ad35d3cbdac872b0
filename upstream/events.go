package upstream

import (
	"context"
	"fmt"
	"net/http"

	"eventura/models"
)

// Events lists all events.
func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.getJSON(ctx, "/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// EventsByPlanner lists the events hosted by one planner. The first entry's
// price doubles as the booking price in the payment flow.
func (c *Client) EventsByPlanner(ctx context.Context, plannerID int) ([]models.Event, error) {
	var events []models.Event
	if err := c.getJSON(ctx, fmt.Sprintf("/events/byPlanner/%d", plannerID), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent adds an event.
func (c *Client) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	var created models.Event
	if err := c.sendJSON(ctx, http.MethodPost, "/events", event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEvent replaces an event record by ID.
func (c *Client) UpdateEvent(ctx context.Context, id int, event models.Event) (*models.Event, error) {
	var updated models.Event
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), event, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEvent removes an event by ID.
func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	return c.sendQuery(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil)
}
