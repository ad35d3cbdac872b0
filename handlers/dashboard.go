package handlers

import (
	"net/http"
	"sort"
	"time"

	"eventura/models"
	"eventura/services/booking"
	"eventura/services/enquiry"
	"eventura/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandlerSet assembles the customer dashboard summary card: the next
// upcoming booking, the open enquiry count and the total spent.
type DashboardHandlerSet struct {
	Bookings  booking.BookingService
	Enquiries enquiry.EnquiryService
	Payments  payment.PaymentService
}

func NewDashboardHandlerSet(bookings booking.BookingService, enquiries enquiry.EnquiryService, payments payment.PaymentService) *DashboardHandlerSet {
	return &DashboardHandlerSet{Bookings: bookings, Enquiries: enquiries, Payments: payments}
}

// SummaryHandler returns the customer dashboard summary.
func (h *DashboardHandlerSet) SummaryHandler(c *gin.Context) {
	logger := getLogger(c)
	email := sessionEmail(c)
	ctx := c.Request.Context()

	views, err := h.Bookings.MyBookings(ctx, email)
	if err != nil {
		logger.Error("Dashboard booking fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load dashboard: " + err.Error()})
		return
	}
	enquiries, err := h.Enquiries.ForCustomer(ctx, email)
	if err != nil {
		logger.Error("Dashboard enquiry fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load dashboard: " + err.Error()})
		return
	}
	history, err := h.Payments.History(ctx, email)
	if err != nil {
		logger.Error("Dashboard payment fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load dashboard: " + err.Error()})
		return
	}

	openEnquiries := 0
	for _, e := range enquiries {
		if !e.Answered() {
			openEnquiries++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"upcomingBooking": nextUpcoming(views),
		"openEnquiries":   openEnquiries,
		"totalSpent":      history.TotalSpent,
		"totalBookings":   len(views),
	})
}

// nextUpcoming picks the soonest future booking that is still live.
func nextUpcoming(views []booking.BookingView) *booking.BookingView {
	today := time.Now().Format("2006-01-02")

	upcoming := make([]booking.BookingView, 0, len(views))
	for _, v := range views {
		if v.LifecycleStatus().Terminal() {
			continue
		}
		if v.EventDate >= today {
			upcoming = append(upcoming, v)
		}
	}
	if len(upcoming) == 0 {
		return nil
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].EventDate < upcoming[j].EventDate
	})
	return &upcoming[0]
}

// AdminRegisterHandler registers an administrator account. The role is forced
// here rather than trusted from the form.
func (h *AuthHandler) AdminRegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.Role = "admin"

	account, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(upstreamStatus(err, http.StatusBadRequest), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, account)
}
