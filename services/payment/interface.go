package payment

import (
	"context"

	"eventura/models"
)

// PaymentService runs the checkout flow: quote, gateway order, signature
// verification and upstream reconciliation.
type PaymentService interface {
	Quote(ctx context.Context, email string, bookingID int, option models.PaymentOption) (*models.PaymentQuote, error)
	CreateOrder(ctx context.Context, email string, bookingID int, option models.PaymentOption) (*models.PaymentOrder, error)
	Confirm(ctx context.Context, email string, confirmation models.PaymentConfirmation) (*Receipt, error)
	History(ctx context.Context, email string) (*History, error)
}

// APIClient is the slice of the upstream client this service uses.
type APIClient interface {
	MyBookings(ctx context.Context, email string) ([]models.Booking, error)
	EventsByPlanner(ctx context.Context, plannerID int) ([]models.Event, error)
	RecordPayment(ctx context.Context, bookingID int, amount float64, method, txID string) (*models.Booking, error)
	Payments(ctx context.Context, email string) ([]models.PaymentRecord, error)
}

// Gateway is the payment gateway surface: order creation plus checkout
// signature verification.
type Gateway interface {
	CreateOrder(amountPaise int64, receipt string) (orderID string, err error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

// Receipt is returned after a verified, recorded payment: the refreshed
// booking plus the reconciled payment history.
type Receipt struct {
	Booking  *models.Booking        `json:"booking"`
	Payments []models.PaymentRecord `json:"payments"`
}

// History is the customer payment pane: the records plus the summed total.
type History struct {
	Payments   []models.PaymentRecord `json:"payments"`
	TotalSpent float64                `json:"totalSpent"`
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	API     APIClient
	Gateway Gateway
	Orders  OrderStore
}
