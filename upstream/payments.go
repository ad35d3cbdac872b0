package upstream

import (
	"context"
	"net/url"

	"eventura/models"
)

// Payments lists one customer's reconciled payment history.
func (c *Client) Payments(ctx context.Context, email string) ([]models.PaymentRecord, error) {
	var payments []models.PaymentRecord
	if err := c.getJSON(ctx, "/payments/"+url.PathEscape(email), &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
