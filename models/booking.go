package models

import (
	"fmt"
	"strings"
)

// Status is the booking lifecycle state as reported by the marketplace API.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// statusTransitions enumerates the legal lifecycle moves. Completed and
// Cancelled are terminal.
var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseStatus maps a wire value onto the status enum. The upstream API is
// inconsistent about casing ("Pending" vs "CONFIRMED"), so matching is
// case-insensitive. An empty value is treated as Pending.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "PENDING":
		return StatusPending, nil
	case "CONFIRMED":
		return StatusConfirmed, nil
	case "COMPLETED":
		return StatusCompleted, nil
	case "CANCELLED":
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown booking status %q", raw)
	}
}

// Terminal reports whether no further lifecycle moves are allowed.
func (s Status) Terminal() bool {
	return len(statusTransitions[s]) == 0
}

// CanTransitionTo reports whether moving to next is a legal lifecycle move.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentState is the payment progress of a booking. It only ever advances:
// unpaid -> partially paid -> paid.
type PaymentState string

const (
	PaymentUnpaid        PaymentState = "PENDING"
	PaymentPartiallyPaid PaymentState = "PARTIALLY_PAID"
	PaymentPaid          PaymentState = "PAID"
)

// ParsePaymentState maps a wire value onto the payment enum. Bookings created
// before payment tracking carry an empty value; that is unpaid.
func ParsePaymentState(raw string) (PaymentState, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "PENDING", "UNPAID":
		return PaymentUnpaid, nil
	case "PARTIALLY_PAID":
		return PaymentPartiallyPaid, nil
	case "PAID":
		return PaymentPaid, nil
	default:
		return "", fmt.Errorf("unknown payment state %q", raw)
	}
}

func (p PaymentState) rank() int {
	switch p {
	case PaymentPartiallyPaid:
		return 1
	case PaymentPaid:
		return 2
	default:
		return 0
	}
}

// CanAdvanceTo reports whether moving to next is a legal payment advance.
// Regressions are never legal.
func (p PaymentState) CanAdvanceTo(next PaymentState) bool {
	return next.rank() > p.rank()
}

// Booking mirrors the marketplace booking record. Field names follow the
// upstream wire format.
type Booking struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	EventType     string  `json:"eventType"`
	EventName     string  `json:"eventName"`
	EventDate     string  `json:"eventDate"`
	Venue         string  `json:"venue"`
	PlannerID     int     `json:"plannerId,omitempty"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus,omitempty"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
}

// LifecycleStatus returns the parsed status, defaulting to Pending when the
// wire value is unknown.
func (b Booking) LifecycleStatus() Status {
	s, err := ParseStatus(b.Status)
	if err != nil {
		return StatusPending
	}
	return s
}

// PaymentProgress returns the parsed payment state, defaulting to unpaid.
func (b Booking) PaymentProgress() PaymentState {
	p, err := ParsePaymentState(b.PaymentStatus)
	if err != nil {
		return PaymentUnpaid
	}
	return p
}

// Payable reports whether the booking may enter the payment flow: it must be
// Confirmed and not yet fully paid.
func (b Booking) Payable() bool {
	return b.LifecycleStatus() == StatusConfirmed && b.PaymentProgress() != PaymentPaid
}

// Remaining is the displayed outstanding amount. It never goes negative,
// even when the server reports paidAmount above totalAmount.
func (b Booking) Remaining() float64 {
	remaining := b.TotalAmount - b.PaidAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// BookingRequest carries the customer booking form.
type BookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	EventType string `json:"eventType"`
	EventName string `json:"eventName"`
	EventDate string `json:"eventDate"`
	Venue     string `json:"venue"`
	PlannerID int    `json:"plannerId"`
}

// BookingFilter is the admin dashboard filter over an already-fetched
// booking list.
type BookingFilter struct {
	Status    string `json:"status" form:"status"`
	EventType string `json:"eventType" form:"eventType"`
	StartDate string `json:"startDate" form:"startDate"`
	EndDate   string `json:"endDate" form:"endDate"`
}
