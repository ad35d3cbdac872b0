package booking

import (
	"context"
	"fmt"

	"eventura/models"
	"eventura/utils"

	"go.uber.org/zap"
)

// StatusUpdateError reports a rejected status command together with the
// authoritative list re-fetched for the rollback. The displayed status is
// unchanged in that list.
type StatusUpdateError struct {
	BookingID int
	Cause     error
	Bookings  []models.Booking
}

func (e *StatusUpdateError) Error() string {
	return fmt.Sprintf("status update for booking %d failed: %v", e.BookingID, e.Cause)
}

func (e *StatusUpdateError) Unwrap() error {
	return e.Cause
}

// UpdateStatus is the administrator status command. The move is validated
// against the lifecycle table, applied tentatively to the snapshot, and sent
// upstream; on success the tentative list is committed, on failure it is
// discarded and the view resyncs from the authoritative list.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id int, next models.Status) ([]models.Booking, error) {
	if _, err := models.ParseStatus(string(next)); err != nil {
		return nil, err
	}

	snapshot, err := s.Snapshots.Load(ctx, AdminScope)
	if err != nil {
		utils.GetLogger().Warn("Failed to load booking snapshot", zap.Error(err))
	}
	if snapshot == nil {
		if snapshot, err = s.API.Bookings(ctx); err != nil {
			return nil, fmt.Errorf("could not load bookings: %w", err)
		}
	}

	current, found := findBooking(snapshot, id)
	if !found {
		return nil, fmt.Errorf("booking %d not found", id)
	}
	if from := current.LifecycleStatus(); !from.CanTransitionTo(next) {
		return nil, fmt.Errorf("booking %d cannot move from %s to %s", id, from, next)
	}

	// Tentative apply.
	tentative := applyStatus(snapshot, id, next)

	if _, err := s.API.UpdateBookingStatus(ctx, id, next); err != nil {
		// Discard the tentative state and resync from the source of truth.
		authoritative, refreshErr := s.API.Bookings(ctx)
		if refreshErr != nil {
			utils.GetLogger().Error("Rollback refetch failed", zap.Int("booking", id), zap.Error(refreshErr))
			authoritative = snapshot
		}
		if saveErr := s.Snapshots.Save(ctx, AdminScope, authoritative); saveErr != nil {
			utils.GetLogger().Warn("Failed to snapshot booking list", zap.Error(saveErr))
		}
		return authoritative, &StatusUpdateError{BookingID: id, Cause: err, Bookings: authoritative}
	}

	// Commit.
	if err := s.Snapshots.Save(ctx, AdminScope, tentative); err != nil {
		utils.GetLogger().Warn("Failed to snapshot booking list", zap.Error(err))
	}
	return tentative, nil
}

func findBooking(bookings []models.Booking, id int) (models.Booking, bool) {
	for _, b := range bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

func applyStatus(bookings []models.Booking, id int, next models.Status) []models.Booking {
	updated := make([]models.Booking, len(bookings))
	copy(updated, bookings)
	for i := range updated {
		if updated[i].ID == id {
			updated[i].Status = string(next)
		}
	}
	return updated
}
