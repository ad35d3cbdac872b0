package upstream

import (
	"context"
	"net/http"

	"eventura/models"
)

// SubmitRating records a planner rating.
func (c *Client) SubmitRating(ctx context.Context, rating models.Rating) error {
	return c.sendJSON(ctx, http.MethodPost, "/ratings", rating, nil)
}
