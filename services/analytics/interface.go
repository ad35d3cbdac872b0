package analytics

import (
	"context"

	"eventura/models"
)

// AnalyticsService feeds the administrator dashboard: the upstream summary,
// the derived chart counts and the two notification actions.
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Remind(ctx context.Context, bookingID int) error
	SendToPlanner(ctx context.Context, bookingID int, plannerEmail string) error
}

// APIClient is the slice of the upstream client this service uses.
type APIClient interface {
	AnalyticsOverview(ctx context.Context) (*models.Overview, error)
	Bookings(ctx context.Context) ([]models.Booking, error)
	Enquiries(ctx context.Context) ([]models.Enquiry, error)
	SendReminder(ctx context.Context, bookingID int) error
	SendToPlanner(ctx context.Context, bookingID int, plannerEmail string) error
}

// Dashboard is the assembled analytics pane.
type Dashboard struct {
	Overview      *models.Overview     `json:"overview"`
	BookingCounts []models.StatusCount `json:"bookingCounts"`
	EnquiryCounts []models.StatusCount `json:"enquiryCounts"`
}

// DefaultAnalyticsService is the production implementation.
type DefaultAnalyticsService struct {
	API APIClient
}
