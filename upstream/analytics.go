package upstream

import (
	"context"
	"fmt"
	"net/http"

	"eventura/models"
)

// AnalyticsOverview fetches the platform summary statistics.
func (c *Client) AnalyticsOverview(ctx context.Context) (*models.Overview, error) {
	var overview models.Overview
	if err := c.getJSON(ctx, "/api/analytics/overview", &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// SendReminder triggers a booking reminder email for the customer.
func (c *Client) SendReminder(ctx context.Context, bookingID int) error {
	return c.sendQuery(ctx, http.MethodPost, fmt.Sprintf("/api/analytics/remind/%d", bookingID), nil, nil)
}

// SendToPlanner forwards the booking details to the planner's email.
func (c *Client) SendToPlanner(ctx context.Context, bookingID int, plannerEmail string) error {
	payload := map[string]string{"plannerEmail": plannerEmail}
	return c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/api/analytics/send-to-planner/%d", bookingID), payload, nil)
}
