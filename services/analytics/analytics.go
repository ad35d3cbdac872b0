package analytics

import (
	"context"
	"fmt"

	"eventura/models"
)

// Dashboard assembles the analytics pane: the upstream overview plus chart
// counts derived from the current booking and enquiry lists.
func (s *DefaultAnalyticsService) Dashboard(ctx context.Context) (*Dashboard, error) {
	overview, err := s.API.AnalyticsOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load analytics overview: %w", err)
	}

	bookings, err := s.API.Bookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load bookings: %w", err)
	}
	enquiries, err := s.API.Enquiries(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load enquiries: %w", err)
	}

	return &Dashboard{
		Overview:      overview,
		BookingCounts: bookingCounts(bookings),
		EnquiryCounts: enquiryCounts(enquiries),
	}, nil
}

func bookingCounts(bookings []models.Booking) []models.StatusCount {
	order := []models.Status{models.StatusPending, models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled}
	counts := make([]models.StatusCount, 0, len(order))
	for _, status := range order {
		n := 0
		for _, b := range bookings {
			if b.LifecycleStatus() == status {
				n++
			}
		}
		counts = append(counts, models.StatusCount{Status: string(status), Count: n})
	}
	return counts
}

func enquiryCounts(enquiries []models.Enquiry) []models.StatusCount {
	replied := 0
	for _, e := range enquiries {
		if e.Answered() {
			replied++
		}
	}
	return []models.StatusCount{
		{Status: models.EnquiryPending, Count: len(enquiries) - replied},
		{Status: models.EnquiryReplied, Count: replied},
	}
}

// Remind triggers a reminder email for a booking.
func (s *DefaultAnalyticsService) Remind(ctx context.Context, bookingID int) error {
	if err := s.API.SendReminder(ctx, bookingID); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	return nil
}

// SendToPlanner forwards a booking's details to the planner's inbox.
func (s *DefaultAnalyticsService) SendToPlanner(ctx context.Context, bookingID int, plannerEmail string) error {
	if plannerEmail == "" {
		return fmt.Errorf("planner email is required")
	}
	if err := s.API.SendToPlanner(ctx, bookingID, plannerEmail); err != nil {
		return fmt.Errorf("failed to send booking to planner: %w", err)
	}
	return nil
}
