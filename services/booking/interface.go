package booking

import (
	"context"

	"eventura/models"
)

// BookingService drives the booking views for both dashboards and the
// administrator status command.
type BookingService interface {
	MyBookings(ctx context.Context, email string) ([]BookingView, error)
	Create(ctx context.Context, req models.BookingRequest) ([]BookingView, error)
	AdminBookings(ctx context.Context, filter models.BookingFilter) (*AdminBookingView, error)
	UpdateStatus(ctx context.Context, id int, next models.Status) ([]models.Booking, error)
}

// APIClient is the slice of the upstream client this service uses.
type APIClient interface {
	Bookings(ctx context.Context) ([]models.Booking, error)
	MyBookings(ctx context.Context, email string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int, status models.Status) (*models.Booking, error)
}

// BookingView is one booking row as displayed: the record plus its derived
// payment figures.
type BookingView struct {
	models.Booking
	Remaining float64 `json:"remaining"`
	Payable   bool    `json:"payable"`
}

// AdminBookingView is the administrator dashboard pane: the filtered list
// plus per-status chart counts over the unfiltered collection.
type AdminBookingView struct {
	Bookings     []models.Booking     `json:"bookings"`
	StatusCounts []models.StatusCount `json:"statusCounts"`
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	API       APIClient
	Snapshots SnapshotStore
}
