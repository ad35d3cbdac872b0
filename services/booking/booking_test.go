package booking

import (
	"context"
	"errors"
	"testing"

	"eventura/models"
)

type fakeAPI struct {
	bookings      []models.Booking
	mine          []models.Booking
	updateErr     error
	updated       map[int]models.Status
	createErr     error
	created       []models.BookingRequest
	bookingsCalls int
}

func (f *fakeAPI) Bookings(ctx context.Context) ([]models.Booking, error) {
	f.bookingsCalls++
	return f.bookings, nil
}

func (f *fakeAPI) MyBookings(ctx context.Context, email string) ([]models.Booking, error) {
	return f.mine, nil
}

func (f *fakeAPI) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &models.Booking{ID: 99, Email: req.Email}, nil
}

func (f *fakeAPI) UpdateBookingStatus(ctx context.Context, id int, status models.Status) (*models.Booking, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[int]models.Status)
	}
	f.updated[id] = status
	return &models.Booking{ID: id, Status: string(status)}, nil
}

type memorySnapshots struct {
	data map[string][]models.Booking
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{data: make(map[string][]models.Booking)}
}

func (m *memorySnapshots) Save(ctx context.Context, scope string, bookings []models.Booking) error {
	m.data[scope] = bookings
	return nil
}

func (m *memorySnapshots) Load(ctx context.Context, scope string) ([]models.Booking, error) {
	return m.data[scope], nil
}

func adminFixture() []models.Booking {
	return []models.Booking{
		{ID: 1, EventType: "Wedding", EventDate: "2026-09-10", Status: "Pending"},
		{ID: 2, EventType: "Birthday", EventDate: "2026-09-20", Status: "Confirmed"},
		{ID: 3, EventType: "Wedding", EventDate: "2026-10-05", Status: "Completed"},
	}
}

func TestMyBookingsDerivesPaymentFigures(t *testing.T) {
	api := &fakeAPI{mine: []models.Booking{
		{ID: 1, Status: "Confirmed", PaymentStatus: "PARTIALLY_PAID", TotalAmount: 50000, PaidAmount: 10000},
		{ID: 2, Status: "Pending"},
	}}
	svc := &DefaultBookingService{API: api, Snapshots: newMemorySnapshots()}

	views, err := svc.MyBookings(context.Background(), "asha@example.com")
	if err != nil {
		t.Fatalf("MyBookings: %v", err)
	}
	if views[0].Remaining != 40000 || !views[0].Payable {
		t.Fatalf("partially paid view wrong: %+v", views[0])
	}
	if views[1].Payable {
		t.Fatalf("pending booking must not be payable")
	}
}

func TestCreateRequiresPlanner(t *testing.T) {
	api := &fakeAPI{}
	svc := &DefaultBookingService{API: api, Snapshots: newMemorySnapshots()}

	_, err := svc.Create(context.Background(), models.BookingRequest{Name: "Asha", Email: "a@b.c"})
	if err == nil {
		t.Fatalf("expected error for missing planner")
	}
	if len(api.created) != 0 {
		t.Fatalf("invalid form must not reach the network")
	}
}

func TestAdminBookingsFiltersAndCounts(t *testing.T) {
	api := &fakeAPI{bookings: adminFixture()}
	svc := &DefaultBookingService{API: api, Snapshots: newMemorySnapshots()}

	view, err := svc.AdminBookings(context.Background(), models.BookingFilter{EventType: "wedding"})
	if err != nil {
		t.Fatalf("AdminBookings: %v", err)
	}
	if len(view.Bookings) != 2 {
		t.Fatalf("filtered to %d, want 2", len(view.Bookings))
	}

	// Counts cover the unfiltered collection.
	total := 0
	for _, sc := range view.StatusCounts {
		total += sc.Count
	}
	if total != 3 {
		t.Fatalf("status counts cover %d bookings, want 3", total)
	}
}

func TestFilterBookingsDateRange(t *testing.T) {
	got := FilterBookings(adminFixture(), models.BookingFilter{StartDate: "2026-09-15", EndDate: "2026-09-30"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("date range filter: %+v", got)
	}
}

func TestUpdateStatusCommits(t *testing.T) {
	api := &fakeAPI{bookings: adminFixture()}
	snapshots := newMemorySnapshots()
	svc := &DefaultBookingService{API: api, Snapshots: snapshots}

	bookings, err := svc.UpdateStatus(context.Background(), 1, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if api.updated[1] != models.StatusConfirmed {
		t.Fatalf("update not sent upstream")
	}
	for _, b := range bookings {
		if b.ID == 1 && b.Status != "Confirmed" {
			t.Fatalf("committed list not updated: %+v", b)
		}
	}
	saved := snapshots.data[AdminScope]
	if saved[0].Status != "Confirmed" {
		t.Fatalf("snapshot not committed")
	}
}

func TestUpdateStatusRejectsIllegalMove(t *testing.T) {
	api := &fakeAPI{bookings: adminFixture()}
	svc := &DefaultBookingService{API: api, Snapshots: newMemorySnapshots()}

	// Booking 3 is Completed: terminal.
	if _, err := svc.UpdateStatus(context.Background(), 3, models.StatusCancelled); err == nil {
		t.Fatalf("terminal booking must reject moves")
	}
	if len(api.updated) != 0 {
		t.Fatalf("illegal move must not reach the network")
	}
}

func TestUpdateStatusRollsBackOnUpstreamFailure(t *testing.T) {
	api := &fakeAPI{bookings: adminFixture(), updateErr: errors.New("500")}
	snapshots := newMemorySnapshots()
	svc := &DefaultBookingService{API: api, Snapshots: snapshots}

	bookings, err := svc.UpdateStatus(context.Background(), 1, models.StatusConfirmed)

	var updateErr *StatusUpdateError
	if !errors.As(err, &updateErr) {
		t.Fatalf("want StatusUpdateError, got %v", err)
	}
	// The returned list is the authoritative one; the displayed status is
	// unchanged.
	for _, b := range bookings {
		if b.ID == 1 && b.Status != "Pending" {
			t.Fatalf("rollback failed, booking 1 shows %s", b.Status)
		}
	}
	saved := snapshots.data[AdminScope]
	if saved[0].Status != "Pending" {
		t.Fatalf("snapshot kept the optimistic state after failure")
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := &DefaultBookingService{API: &fakeAPI{bookings: adminFixture()}, Snapshots: newMemorySnapshots()}
	if _, err := svc.UpdateStatus(context.Background(), 1, models.Status("Shipped")); err == nil {
		t.Fatalf("unknown status must be rejected")
	}
}
