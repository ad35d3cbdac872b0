package routes

import (
	"time"

	"eventura/handlers"
	"eventura/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the pages anyone can reach: the landing
// content, the planner directory and the auth endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HomeHandler)
	r.GET("/about", hb.AboutHandler)
	r.GET("/contact", hb.ContactHandler)
	r.GET("/health", hb.HealthHandler)

	api := r.Group("/api")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/register/admin", hb.AdminRegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.GET("/planners", hb.DirectoryHandler)
		api.GET("/planners/:id", hb.PortfolioHandler)
		api.POST("/enquiry", hb.SubmitEnquiryHandler)
	}
}

// RegisterCustomerRoutes registers the session-gated customer dashboard.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
	{
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/dashboard", hb.SummaryHandler)
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)

		api.GET("/bookings", hb.MyBookingsHandler)
		api.POST("/bookings", hb.CreateBookingHandler)

		api.GET("/payments", hb.HistoryHandler)
		api.GET("/bookings/:id/payment/quote", hb.QuoteHandler)
		api.POST("/bookings/:id/payment/order", hb.CreateOrderHandler)
		api.POST("/payments/confirm", hb.ConfirmHandler)

		api.GET("/enquiries", hb.MyEnquiriesHandler)
		api.POST("/ratings", hb.SubmitRatingHandler)

		api.POST("/ai/recommend", hb.RecommendHandler)
		api.POST("/ai/predict-budget", hb.PredictBudgetHandler)
	}
}

// RegisterAdminRoutes registers the role-gated administrator dashboard.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.SessionAuthMiddleware(hb.Sessions))
	admin.Use(middleware.AdminOnlyMiddleware())
	{
		admin.GET("/bookings", hb.AdminBookingsHandler)
		admin.PUT("/bookings/:id/status", hb.UpdateStatusHandler)
		admin.POST("/bookings/:id/remind", hb.RemindHandler)
		admin.POST("/bookings/:id/send-to-planner", hb.SendToPlannerHandler)

		admin.GET("/enquiries", hb.AllEnquiriesHandler)
		admin.PUT("/enquiries/:id/reply", hb.ReplyHandler)

		admin.GET("/users", hb.ListUsersHandler)
		admin.DELETE("/users/:id", hb.DeleteUserHandler)

		admin.POST("/planners", hb.CreatePlannerHandler)
		admin.PUT("/planners/:id", hb.UpdatePlannerHandler)
		admin.DELETE("/planners/:id", hb.DeletePlannerHandler)

		admin.GET("/events", hb.ListEventsHandler)
		admin.POST("/events", hb.CreateEventHandler)
		admin.PUT("/events/:id", hb.UpdateEventHandler)
		admin.DELETE("/events/:id", hb.DeleteEventHandler)

		admin.GET("/analytics", hb.DashboardHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
