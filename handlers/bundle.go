package handlers

import (
	"eventura/services/session"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Sessions session.Store

	// Pages.
	HomeHandler    gin.HandlerFunc
	AboutHandler   gin.HandlerFunc
	ContactHandler gin.HandlerFunc
	HealthHandler  gin.HandlerFunc

	// Auth and profile.
	RegisterHandler      gin.HandlerFunc
	AdminRegisterHandler gin.HandlerFunc
	LoginHandler         gin.HandlerFunc
	LogoutHandler        gin.HandlerFunc
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	SummaryHandler       gin.HandlerFunc

	// Planner directory.
	DirectoryHandler     gin.HandlerFunc
	PortfolioHandler     gin.HandlerFunc
	SubmitRatingHandler  gin.HandlerFunc
	CreatePlannerHandler gin.HandlerFunc
	UpdatePlannerHandler gin.HandlerFunc
	DeletePlannerHandler gin.HandlerFunc

	// Bookings.
	MyBookingsHandler    gin.HandlerFunc
	CreateBookingHandler gin.HandlerFunc
	AdminBookingsHandler gin.HandlerFunc
	UpdateStatusHandler  gin.HandlerFunc

	// Payments.
	QuoteHandler       gin.HandlerFunc
	CreateOrderHandler gin.HandlerFunc
	ConfirmHandler     gin.HandlerFunc
	HistoryHandler     gin.HandlerFunc

	// Enquiries.
	SubmitEnquiryHandler gin.HandlerFunc
	MyEnquiriesHandler   gin.HandlerFunc
	AllEnquiriesHandler  gin.HandlerFunc
	ReplyHandler         gin.HandlerFunc

	// Admin.
	ListUsersHandler     gin.HandlerFunc
	DeleteUserHandler    gin.HandlerFunc
	DashboardHandler     gin.HandlerFunc
	RemindHandler        gin.HandlerFunc
	SendToPlannerHandler gin.HandlerFunc

	// Events.
	ListEventsHandler  gin.HandlerFunc
	CreateEventHandler gin.HandlerFunc
	UpdateEventHandler gin.HandlerFunc
	DeleteEventHandler gin.HandlerFunc

	// AI assistant.
	RecommendHandler     gin.HandlerFunc
	PredictBudgetHandler gin.HandlerFunc
}
