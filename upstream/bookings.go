package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"eventura/models"
)

// Bookings lists every booking on the platform (administrator view).
func (c *Client) Bookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.getJSON(ctx, "/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// MyBookings lists the bookings belonging to one customer email.
func (c *Client) MyBookings(ctx context.Context, email string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.getJSON(ctx, "/mybookings/"+url.PathEscape(email), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking submits the booking form. The API takes it form-encoded.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	form := url.Values{}
	form.Set("name", req.Name)
	form.Set("email", req.Email)
	form.Set("eventType", req.EventType)
	form.Set("eventName", req.EventName)
	form.Set("eventDate", req.EventDate)
	form.Set("venue", req.Venue)
	form.Set("plannerId", strconv.Itoa(req.PlannerID))

	var booking models.Booking
	if err := c.sendForm(ctx, http.MethodPost, "/booking", form, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus moves a booking to a new lifecycle status.
func (c *Client) UpdateBookingStatus(ctx context.Context, id int, status models.Status) (*models.Booking, error) {
	params := url.Values{}
	params.Set("status", string(status))

	var booking models.Booking
	if err := c.sendQuery(ctx, http.MethodPut, fmt.Sprintf("/bookings/%d/status", id), params, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// RecordPayment reports a captured gateway transaction against a booking so
// the server can advance its payment state and append the payment history row.
func (c *Client) RecordPayment(ctx context.Context, bookingID int, amount float64, method, txID string) (*models.Booking, error) {
	params := url.Values{}
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	params.Set("method", method)
	params.Set("txId", txID)

	var booking models.Booking
	if err := c.sendQuery(ctx, http.MethodPut, fmt.Sprintf("/booking/payment/%d", bookingID), params, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
