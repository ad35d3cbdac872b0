package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"eventura/models"
	"eventura/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the customer booking list, the booking form and the
// administrator booking pane with its status command.
type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(bookings booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// MyBookingsHandler lists the authenticated customer's bookings with their
// derived payment figures.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	views, err := h.Bookings.MyBookings(c.Request.Context(), sessionEmail(c))
	if err != nil {
		getLogger(c).Error("Booking list fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load bookings: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// CreateBookingHandler submits the booking form. Name and email default to
// the session identity when omitted.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Email == "" {
		req.Email = sessionEmail(c)
	}

	views, err := h.Bookings.Create(c.Request.Context(), req)
	if err != nil {
		logger.Error("Booking create failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadRequest), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, views)
}

// AdminBookingsHandler lists all bookings filtered by the dashboard controls,
// with per-status chart counts.
func (h *BookingHandler) AdminBookingsHandler(c *gin.Context) {
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	view, err := h.Bookings.AdminBookings(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Admin booking fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load bookings: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateStatusHandler runs the administrator status command. On a rejected
// move the authoritative list comes back so the dashboard can resync.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	bookings, err := h.Bookings.UpdateStatus(c.Request.Context(), id, models.Status(status))
	if err != nil {
		var updateErr *booking.StatusUpdateError
		if errors.As(err, &updateErr) {
			logger.Warn("Status update rolled back", zap.Int("booking", id), zap.Error(updateErr.Cause))
			c.JSON(upstreamStatus(updateErr.Cause, http.StatusBadGateway), gin.H{
				"error":    updateErr.Error(),
				"bookings": updateErr.Bookings,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
