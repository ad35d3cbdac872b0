package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventura/models"
	"eventura/utils"

	"go.uber.org/zap"
)

// MyBookings builds the customer booking view from the authoritative list.
func (s *DefaultBookingService) MyBookings(ctx context.Context, email string) ([]BookingView, error) {
	bookings, err := s.API.MyBookings(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not load bookings: %w", err)
	}
	return buildViews(bookings), nil
}

func buildViews(bookings []models.Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{
			Booking:   b,
			Remaining: b.Remaining(),
			Payable:   b.Payable(),
		})
	}
	return views
}

// Create submits the booking form and returns the customer's re-fetched
// booking list. A failed submission leaves the prior view untouched.
func (s *DefaultBookingService) Create(ctx context.Context, req models.BookingRequest) ([]BookingView, error) {
	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if req.PlannerID == 0 {
		return nil, fmt.Errorf("a planner must be selected")
	}

	if _, err := s.API.CreateBooking(ctx, req); err != nil {
		utils.GetLogger().Error("Booking create failed", zap.String("email", req.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return s.MyBookings(ctx, req.Email)
}

// AdminBookings builds the administrator pane: the full list re-fetched,
// snapshotted, filtered client-side, with per-status counts over the
// unfiltered collection.
func (s *DefaultBookingService) AdminBookings(ctx context.Context, filter models.BookingFilter) (*AdminBookingView, error) {
	bookings, err := s.API.Bookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load bookings: %w", err)
	}
	if err := s.Snapshots.Save(ctx, AdminScope, bookings); err != nil {
		utils.GetLogger().Warn("Failed to snapshot booking list", zap.Error(err))
	}

	return &AdminBookingView{
		Bookings:     FilterBookings(bookings, filter),
		StatusCounts: statusCounts(bookings),
	}, nil
}

// FilterBookings applies the admin dashboard filters over an already-fetched
// list: status, event type (case-insensitive) and an event date range.
func FilterBookings(bookings []models.Booking, filter models.BookingFilter) []models.Booking {
	matched := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Status != "" && filter.Status != "All" &&
			!strings.EqualFold(b.Status, filter.Status) {
			continue
		}
		if filter.EventType != "" && filter.EventType != "All" &&
			!strings.EqualFold(b.EventType, filter.EventType) {
			continue
		}
		if !withinRange(b.EventDate, filter.StartDate, filter.EndDate) {
			continue
		}
		matched = append(matched, b)
	}
	return matched
}

func withinRange(eventDate, start, end string) bool {
	if start == "" && end == "" {
		return true
	}
	date, err := time.Parse("2006-01-02", eventDate)
	if err != nil {
		return false
	}
	if start != "" {
		from, err := time.Parse("2006-01-02", start)
		if err == nil && date.Before(from) {
			return false
		}
	}
	if end != "" {
		to, err := time.Parse("2006-01-02", end)
		if err == nil && date.After(to) {
			return false
		}
	}
	return true
}

func statusCounts(bookings []models.Booking) []models.StatusCount {
	order := []models.Status{models.StatusPending, models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled}
	counts := make([]models.StatusCount, 0, len(order))
	for _, status := range order {
		count := 0
		for _, b := range bookings {
			if b.LifecycleStatus() == status {
				count++
			}
		}
		counts = append(counts, models.StatusCount{Status: string(status), Count: count})
	}
	return counts
}
