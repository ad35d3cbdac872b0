package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	"eventura/models"
	"eventura/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const paymentMethod = "RAZORPAY"

// tokenShare is the advance fraction a customer may pay up front.
const tokenShare = 0.2

// Quote computes the payable amount for one of the customer's bookings.
// The booking price is the first event listed for its planner.
//
// A booking is payable only while Confirmed and not yet fully paid. For a
// partially paid booking the only remaining move is settling the remainder,
// so the option is forced to FULL there.
func (s *DefaultPaymentService) Quote(ctx context.Context, email string, bookingID int, option models.PaymentOption) (*models.PaymentQuote, error) {
	booking, err := s.findBooking(ctx, email, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Payable() {
		return nil, fmt.Errorf("booking %d is not payable: status %s, payment %s",
			bookingID, booking.LifecycleStatus(), booking.PaymentProgress())
	}

	price, err := s.eventPrice(ctx, booking.PlannerID)
	if err != nil {
		return nil, err
	}

	token := math.Round(price * tokenShare)
	var amount float64
	switch booking.PaymentProgress() {
	case models.PaymentPartiallyPaid:
		option = models.PayFull
		amount = price - token
	default:
		switch option {
		case models.PayToken:
			amount = token
		case models.PayFull:
			amount = price
		default:
			return nil, fmt.Errorf("unknown payment option %q", option)
		}
	}

	return &models.PaymentQuote{
		BookingID:  bookingID,
		Option:     option,
		EventPrice: price,
		Amount:     amount,
	}, nil
}

// CreateOrder quotes the booking, opens a gateway order for the amount and
// parks it until the checkout callback.
func (s *DefaultPaymentService) CreateOrder(ctx context.Context, email string, bookingID int, option models.PaymentOption) (*models.PaymentOrder, error) {
	quote, err := s.Quote(ctx, email, bookingID, option)
	if err != nil {
		return nil, err
	}

	amountPaise := int64(quote.Amount * 100)
	receipt := fmt.Sprintf("rcpt_%d_%s", bookingID, uuid.New().String()[:8])
	orderID, err := s.Gateway.CreateOrder(amountPaise, receipt)
	if err != nil {
		return nil, err
	}

	pending := PendingOrder{
		OrderID:   orderID,
		BookingID: bookingID,
		Email:     email,
		Option:    quote.Option,
		Amount:    quote.Amount,
		CreatedAt: time.Now(),
	}
	if err := s.Orders.Save(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to store pending order: %w", err)
	}

	utils.GetLogger().Info("Gateway order opened",
		zap.String("order", orderID),
		zap.Int("booking", bookingID),
		zap.Float64("amount", quote.Amount))

	return &models.PaymentOrder{
		OrderID:     orderID,
		BookingID:   bookingID,
		Amount:      quote.Amount,
		AmountPaise: amountPaise,
		Currency:    "INR",
		KeyID:       s.Gateway.KeyID(),
	}, nil
}

// Confirm verifies the checkout signature, records the payment upstream and
// returns the refreshed booking plus history. A verification or recording
// failure leaves the booking untouched upstream.
func (s *DefaultPaymentService) Confirm(ctx context.Context, email string, confirmation models.PaymentConfirmation) (*Receipt, error) {
	pending, err := s.Orders.Get(ctx, confirmation.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending order: %w", err)
	}
	if pending == nil {
		return nil, fmt.Errorf("no pending order %s", confirmation.OrderID)
	}
	if pending.Email != email {
		return nil, fmt.Errorf("order %s does not belong to %s", confirmation.OrderID, email)
	}

	if !s.Gateway.VerifySignature(confirmation.OrderID, confirmation.PaymentID, confirmation.Signature) {
		utils.GetLogger().Warn("Rejected payment with bad signature",
			zap.String("order", confirmation.OrderID),
			zap.Int("booking", pending.BookingID))
		return nil, fmt.Errorf("invalid payment signature")
	}

	booking, err := s.API.RecordPayment(ctx, pending.BookingID, pending.Amount, paymentMethod, confirmation.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if err := s.Orders.Delete(ctx, confirmation.OrderID); err != nil {
		utils.GetLogger().Warn("Failed to clear pending order", zap.String("order", confirmation.OrderID), zap.Error(err))
	}

	payments, err := s.API.Payments(ctx, email)
	if err != nil {
		utils.GetLogger().Warn("Payment recorded but history refetch failed",
			zap.String("email", email), zap.Error(err))
		payments = nil
	}

	return &Receipt{Booking: booking, Payments: payments}, nil
}

// History returns the customer's reconciled payments with the summed total.
func (s *DefaultPaymentService) History(ctx context.Context, email string) (*History, error) {
	payments, err := s.API.Payments(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not load payments: %w", err)
	}
	total := 0.0
	for _, p := range payments {
		total += p.Amount
	}
	return &History{Payments: payments, TotalSpent: total}, nil
}

func (s *DefaultPaymentService) findBooking(ctx context.Context, email string, bookingID int) (*models.Booking, error) {
	bookings, err := s.API.MyBookings(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not load bookings: %w", err)
	}
	for i := range bookings {
		if bookings[i].ID == bookingID {
			return &bookings[i], nil
		}
	}
	return nil, fmt.Errorf("booking %d not found for %s", bookingID, email)
}

// eventPrice resolves a planner's booking price: the price of the first
// event the planner hosts.
func (s *DefaultPaymentService) eventPrice(ctx context.Context, plannerID int) (float64, error) {
	events, err := s.API.EventsByPlanner(ctx, plannerID)
	if err != nil {
		return 0, fmt.Errorf("could not load planner events: %w", err)
	}
	if len(events) == 0 {
		return 0, fmt.Errorf("planner %d has no events to price against", plannerID)
	}
	return events[0].Price, nil
}
