package models

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCompleted, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.allowed {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.allowed)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	if StatusPending.Terminal() || StatusConfirmed.Terminal() {
		t.Fatalf("pending/confirmed must not be terminal")
	}
	if !StatusCompleted.Terminal() || !StatusCancelled.Terminal() {
		t.Fatalf("completed/cancelled must be terminal")
	}
}

func TestParseStatusCaseInsensitive(t *testing.T) {
	for _, raw := range []string{"confirmed", "CONFIRMED", "Confirmed"} {
		s, err := ParseStatus(raw)
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", raw, err)
		}
		if s != StatusConfirmed {
			t.Fatalf("ParseStatus(%q) = %s, want %s", raw, s, StatusConfirmed)
		}
	}

	s, err := ParseStatus("")
	if err != nil {
		t.Fatalf("empty status: %v", err)
	}
	if s != StatusPending {
		t.Fatalf("empty status = %s, want %s", s, StatusPending)
	}

	if _, err := ParseStatus("Shipped"); err == nil {
		t.Fatalf("unknown status must be rejected")
	}
}

func TestPaymentStateAdvance(t *testing.T) {
	if !PaymentUnpaid.CanAdvanceTo(PaymentPartiallyPaid) {
		t.Errorf("unpaid must advance to partially paid")
	}
	if !PaymentPartiallyPaid.CanAdvanceTo(PaymentPaid) {
		t.Errorf("partially paid must advance to paid")
	}
	if PaymentPaid.CanAdvanceTo(PaymentPartiallyPaid) {
		t.Errorf("payment progress must never regress")
	}
	if PaymentPartiallyPaid.CanAdvanceTo(PaymentPartiallyPaid) {
		t.Errorf("advance requires strictly more progress")
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	b := Booking{TotalAmount: 50000, PaidAmount: 10000}
	if got := b.Remaining(); got != 40000 {
		t.Fatalf("Remaining = %v, want 40000", got)
	}

	// Overpaid records come back from the server occasionally; the display
	// must clamp at zero.
	b = Booking{TotalAmount: 50000, PaidAmount: 60000}
	if got := b.Remaining(); got != 0 {
		t.Fatalf("Remaining = %v, want 0", got)
	}
}

func TestPayableOnlyWhenConfirmedAndNotPaid(t *testing.T) {
	cases := []struct {
		status  string
		payment string
		want    bool
	}{
		{"Confirmed", "", true},
		{"Confirmed", "PARTIALLY_PAID", true},
		{"Confirmed", "PAID", false},
		{"Pending", "", false},
		{"Completed", "PARTIALLY_PAID", false},
		{"Cancelled", "", false},
	}
	for _, c := range cases {
		b := Booking{Status: c.status, PaymentStatus: c.payment}
		if got := b.Payable(); got != c.want {
			t.Errorf("Payable(%s/%s) = %v, want %v", c.status, c.payment, got, c.want)
		}
	}
}

func TestLifecycleStatusDefaultsToPending(t *testing.T) {
	b := Booking{Status: "garbage"}
	if got := b.LifecycleStatus(); got != StatusPending {
		t.Fatalf("LifecycleStatus = %s, want %s", got, StatusPending)
	}
}
