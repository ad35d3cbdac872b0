package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"eventura/models"
)

type fakeAPI struct {
	mine        []models.Booking
	events      map[int][]models.Event
	payments    []models.PaymentRecord
	recorded    []recordedPayment
	recordErr   error
	paymentsErr error
}

type recordedPayment struct {
	bookingID int
	amount    float64
	method    string
	txID      string
}

func (f *fakeAPI) MyBookings(ctx context.Context, email string) ([]models.Booking, error) {
	return f.mine, nil
}

func (f *fakeAPI) EventsByPlanner(ctx context.Context, plannerID int) ([]models.Event, error) {
	return f.events[plannerID], nil
}

func (f *fakeAPI) RecordPayment(ctx context.Context, bookingID int, amount float64, method, txID string) (*models.Booking, error) {
	if f.recordErr != nil {
		return nil, f.recordErr
	}
	f.recorded = append(f.recorded, recordedPayment{bookingID, amount, method, txID})
	return &models.Booking{ID: bookingID, Status: "Confirmed", PaymentStatus: "PARTIALLY_PAID"}, nil
}

func (f *fakeAPI) Payments(ctx context.Context, email string) ([]models.PaymentRecord, error) {
	if f.paymentsErr != nil {
		return nil, f.paymentsErr
	}
	return f.payments, nil
}

type fakeGateway struct {
	orders  []int64
	nextID  string
	failing bool
	secret  string
}

func (g *fakeGateway) CreateOrder(amountPaise int64, receipt string) (string, error) {
	if g.failing {
		return "", errors.New("gateway down")
	}
	g.orders = append(g.orders, amountPaise)
	return g.nextID, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	h := hmac.New(sha256.New, []byte(g.secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil)) == signature
}

func (g *fakeGateway) KeyID() string { return "rzp_test_key" }

type memoryOrders struct {
	data map[string]PendingOrder
}

func newMemoryOrders() *memoryOrders {
	return &memoryOrders{data: make(map[string]PendingOrder)}
}

func (m *memoryOrders) Save(ctx context.Context, order PendingOrder) error {
	m.data[order.OrderID] = order
	return nil
}

func (m *memoryOrders) Get(ctx context.Context, orderID string) (*PendingOrder, error) {
	order, ok := m.data[orderID]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (m *memoryOrders) Delete(ctx context.Context, orderID string) error {
	delete(m.data, orderID)
	return nil
}

func sign(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func confirmedBooking(id, plannerID int, paymentStatus string) models.Booking {
	return models.Booking{ID: id, PlannerID: plannerID, Status: "Confirmed", PaymentStatus: paymentStatus}
}

func newService(api *fakeAPI, gw Gateway) *DefaultPaymentService {
	return &DefaultPaymentService{API: api, Gateway: gw, Orders: newMemoryOrders()}
}

func TestQuoteTokenIsTwentyPercentRounded(t *testing.T) {
	api := &fakeAPI{
		mine:   []models.Booking{confirmedBooking(1, 7, "")},
		events: map[int][]models.Event{7: {{ID: 1, Price: 50000}}},
	}
	svc := newService(api, &fakeGateway{})

	quote, err := svc.Quote(context.Background(), "a@b.c", 1, models.PayToken)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if quote.Amount != 10000 {
		t.Fatalf("token amount = %v, want 10000", quote.Amount)
	}
	if quote.EventPrice != 50000 {
		t.Fatalf("event price = %v, want 50000", quote.EventPrice)
	}
}

func TestQuoteFullPaysEventPrice(t *testing.T) {
	api := &fakeAPI{
		mine:   []models.Booking{confirmedBooking(1, 7, "")},
		events: map[int][]models.Event{7: {{ID: 1, Price: 50000}}},
	}
	svc := newService(api, &fakeGateway{})

	quote, err := svc.Quote(context.Background(), "a@b.c", 1, models.PayFull)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if quote.Amount != 50000 {
		t.Fatalf("full amount = %v, want 50000", quote.Amount)
	}
}

func TestQuotePartiallyPaidForcesRemainder(t *testing.T) {
	api := &fakeAPI{
		mine:   []models.Booking{confirmedBooking(1, 7, "PARTIALLY_PAID")},
		events: map[int][]models.Event{7: {{ID: 1, Price: 50000}}},
	}
	svc := newService(api, &fakeGateway{})

	// Even when the caller asks for TOKEN, a partially paid booking only has
	// the remainder left.
	quote, err := svc.Quote(context.Background(), "a@b.c", 1, models.PayToken)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if quote.Option != models.PayFull {
		t.Fatalf("option = %s, want FULL", quote.Option)
	}
	if quote.Amount != 40000 {
		t.Fatalf("remainder = %v, want 40000", quote.Amount)
	}
}

func TestQuoteRejectsUnpayableBooking(t *testing.T) {
	cases := []models.Booking{
		{ID: 1, PlannerID: 7, Status: "Pending"},
		{ID: 2, PlannerID: 7, Status: "Confirmed", PaymentStatus: "PAID"},
		{ID: 3, PlannerID: 7, Status: "Completed"},
	}
	for _, b := range cases {
		api := &fakeAPI{mine: []models.Booking{b}, events: map[int][]models.Event{7: {{Price: 50000}}}}
		svc := newService(api, &fakeGateway{})
		if _, err := svc.Quote(context.Background(), "a@b.c", b.ID, models.PayFull); err == nil {
			t.Errorf("booking %d (%s/%s) must not quote", b.ID, b.Status, b.PaymentStatus)
		}
	}
}

func TestQuoteFailsWithoutEvents(t *testing.T) {
	api := &fakeAPI{
		mine:   []models.Booking{confirmedBooking(1, 7, "")},
		events: map[int][]models.Event{},
	}
	svc := newService(api, &fakeGateway{})
	if _, err := svc.Quote(context.Background(), "a@b.c", 1, models.PayFull); err == nil {
		t.Fatalf("quote must fail when the planner has no events")
	}
}

func TestCreateOrderConvertsToPaise(t *testing.T) {
	api := &fakeAPI{
		mine:   []models.Booking{confirmedBooking(1, 7, "")},
		events: map[int][]models.Event{7: {{Price: 50000}}},
	}
	gw := &fakeGateway{nextID: "order_1"}
	svc := newService(api, gw)

	order, err := svc.CreateOrder(context.Background(), "a@b.c", 1, models.PayToken)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if gw.orders[0] != 1000000 {
		t.Fatalf("gateway got %d paise, want 1000000", gw.orders[0])
	}
	if order.Currency != "INR" || order.KeyID != "rzp_test_key" {
		t.Fatalf("order metadata wrong: %+v", order)
	}
}

func TestConfirmRecordsVerifiedPayment(t *testing.T) {
	api := &fakeAPI{
		mine:     []models.Booking{confirmedBooking(1, 7, "")},
		events:   map[int][]models.Event{7: {{Price: 50000}}},
		payments: []models.PaymentRecord{{BookingID: 1, Amount: 10000}},
	}
	gw := &fakeGateway{nextID: "order_1", secret: "s3cret"}
	svc := newService(api, gw)

	if _, err := svc.CreateOrder(context.Background(), "a@b.c", 1, models.PayToken); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	receipt, err := svc.Confirm(context.Background(), "a@b.c", models.PaymentConfirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: sign("s3cret", "order_1", "pay_1"),
	})
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if len(api.recorded) != 1 {
		t.Fatalf("payment not recorded upstream")
	}
	rec := api.recorded[0]
	if rec.amount != 10000 || rec.method != "RAZORPAY" || rec.txID != "pay_1" {
		t.Fatalf("recorded %+v", rec)
	}
	if receipt.Booking.PaymentStatus != "PARTIALLY_PAID" {
		t.Fatalf("receipt booking = %+v", receipt.Booking)
	}
}

func TestConfirmRejectsBadSignature(t *testing.T) {
	api := &fakeAPI{
		mine:   []models.Booking{confirmedBooking(1, 7, "")},
		events: map[int][]models.Event{7: {{Price: 50000}}},
	}
	gw := &fakeGateway{nextID: "order_1", secret: "s3cret"}
	svc := newService(api, gw)

	if _, err := svc.CreateOrder(context.Background(), "a@b.c", 1, models.PayToken); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	_, err := svc.Confirm(context.Background(), "a@b.c", models.PaymentConfirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "forged",
	})
	if err == nil {
		t.Fatalf("forged signature must be rejected")
	}
	if len(api.recorded) != 0 {
		t.Fatalf("rejected payment must not be recorded upstream")
	}
}

func TestConfirmRejectsForeignOrder(t *testing.T) {
	api := &fakeAPI{
		mine:   []models.Booking{confirmedBooking(1, 7, "")},
		events: map[int][]models.Event{7: {{Price: 50000}}},
	}
	gw := &fakeGateway{nextID: "order_1", secret: "s3cret"}
	svc := newService(api, gw)

	if _, err := svc.CreateOrder(context.Background(), "owner@b.c", 1, models.PayToken); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	_, err := svc.Confirm(context.Background(), "intruder@b.c", models.PaymentConfirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: sign("s3cret", "order_1", "pay_1"),
	})
	if err == nil {
		t.Fatalf("another customer's order must be rejected")
	}
}

func TestHistorySumsTotal(t *testing.T) {
	api := &fakeAPI{payments: []models.PaymentRecord{
		{BookingID: 1, Amount: 10000},
		{BookingID: 2, Amount: 40000},
	}}
	svc := newService(api, &fakeGateway{})

	history, err := svc.History(context.Background(), "a@b.c")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if history.TotalSpent != 50000 {
		t.Fatalf("TotalSpent = %v, want 50000", history.TotalSpent)
	}
}
