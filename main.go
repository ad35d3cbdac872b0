package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventura/config"
	"eventura/handlers"
	"eventura/middleware"
	"eventura/routes"
	"eventura/services/analytics"
	"eventura/services/booking"
	"eventura/services/enquiry"
	ai "eventura/services/intelligence"
	"eventura/services/payment"
	"eventura/services/planner"
	"eventura/services/session"
	"eventura/services/user"
	"eventura/upstream"
	"eventura/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitViewCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream marketplace API client.
	apiClient := upstream.NewClient(
		config.AppConfig.APIBaseURL,
		time.Duration(config.AppConfig.APITimeoutSec)*time.Second,
	)

	// Stores.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	sessionStore := session.NewRedisStore(utils.GetSessionCacheClient(), sessionTTL)
	snapshotStore := booking.NewRedisSnapshotStore(utils.GetViewCacheClient(), sessionTTL)
	orderStore := payment.NewRedisOrderStore(utils.GetViewCacheClient(), 30*time.Minute)

	// Services.
	userService := &user.DefaultUserService{API: apiClient, Sessions: sessionStore}
	plannerService := &planner.DefaultPlannerService{API: apiClient}
	bookingService := &booking.DefaultBookingService{API: apiClient, Snapshots: snapshotStore}
	gateway := payment.NewRazorpayGateway(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpayKeySecret)
	paymentService := &payment.DefaultPaymentService{API: apiClient, Gateway: gateway, Orders: orderStore}
	enquiryService := &enquiry.DefaultEnquiryService{API: apiClient}
	analyticsService := &analytics.DefaultAnalyticsService{API: apiClient}
	aiService := &ai.DefaultIntelligenceService{API: apiClient}

	// Handlers.
	authHandler := handlers.NewAuthHandler(userService)
	profileHandler := handlers.NewProfileHandler(userService)
	plannerHandler := handlers.NewPlannerHandler(plannerService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	adminHandler := handlers.NewAdminHandler(userService, analyticsService)
	eventHandler := handlers.NewEventHandler(apiClient)
	ratingHandler := handlers.NewRatingHandler(apiClient)
	aiHandler := handlers.NewAIHandler(aiService)
	pageHandler := handlers.NewPageHandler()
	dashboardHandlers := handlers.NewDashboardHandlerSet(bookingService, enquiryService, paymentService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessionStore,

		HomeHandler:    pageHandler.HomeHandler,
		AboutHandler:   pageHandler.AboutHandler,
		ContactHandler: pageHandler.ContactHandler,
		HealthHandler:  pageHandler.HealthHandler,

		RegisterHandler:      authHandler.RegisterHandler,
		AdminRegisterHandler: authHandler.AdminRegisterHandler,
		LoginHandler:         authHandler.LoginHandler,
		LogoutHandler:        authHandler.LogoutHandler,
		GetProfileHandler:    profileHandler.GetProfileHandler,
		UpdateProfileHandler: profileHandler.UpdateProfileHandler,
		SummaryHandler:       dashboardHandlers.SummaryHandler,

		DirectoryHandler:     plannerHandler.DirectoryHandler,
		PortfolioHandler:     plannerHandler.PortfolioHandler,
		SubmitRatingHandler:  ratingHandler.SubmitRatingHandler,
		CreatePlannerHandler: plannerHandler.CreatePlannerHandler,
		UpdatePlannerHandler: plannerHandler.UpdatePlannerHandler,
		DeletePlannerHandler: plannerHandler.DeletePlannerHandler,

		MyBookingsHandler:    bookingHandler.MyBookingsHandler,
		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		AdminBookingsHandler: bookingHandler.AdminBookingsHandler,
		UpdateStatusHandler:  bookingHandler.UpdateStatusHandler,

		QuoteHandler:       paymentHandler.QuoteHandler,
		CreateOrderHandler: paymentHandler.CreateOrderHandler,
		ConfirmHandler:     paymentHandler.ConfirmHandler,
		HistoryHandler:     paymentHandler.HistoryHandler,

		SubmitEnquiryHandler: enquiryHandler.SubmitHandler,
		MyEnquiriesHandler:   enquiryHandler.MyEnquiriesHandler,
		AllEnquiriesHandler:  enquiryHandler.AllEnquiriesHandler,
		ReplyHandler:         enquiryHandler.ReplyHandler,

		ListUsersHandler:     adminHandler.ListUsersHandler,
		DeleteUserHandler:    adminHandler.DeleteUserHandler,
		DashboardHandler:     adminHandler.DashboardHandler,
		RemindHandler:        adminHandler.RemindHandler,
		SendToPlannerHandler: adminHandler.SendToPlannerHandler,

		ListEventsHandler:  eventHandler.ListEventsHandler,
		CreateEventHandler: eventHandler.CreateEventHandler,
		UpdateEventHandler: eventHandler.UpdateEventHandler,
		DeleteEventHandler: eventHandler.DeleteEventHandler,

		RecommendHandler:     aiHandler.RecommendHandler,
		PredictBudgetHandler: aiHandler.PredictBudgetHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(30*time.Second, utils.GetSessionCacheClient(), utils.GetViewCacheClient())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
