package handlers

import (
	"net/http"
	"strconv"

	"eventura/services/analytics"
	"eventura/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the administrator user list, account removal and the
// analytics dashboard with its notification actions.
type AdminHandler struct {
	Users     user.UserService
	Analytics analytics.AnalyticsService
}

func NewAdminHandler(users user.UserService, stats analytics.AnalyticsService) *AdminHandler {
	return &AdminHandler{Users: users, Analytics: stats}
}

// ListUsersHandler returns every registered account.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	accounts, err := h.Users.AllUsers(c.Request.Context())
	if err != nil {
		getLogger(c).Error("User list fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load users: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// DeleteUserHandler removes an account and returns the refreshed list.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	accounts, err := h.Users.DeleteUser(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Error("User delete failed", zap.Int("user", id), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "User delete failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// DashboardHandler assembles the analytics pane.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	dashboard, err := h.Analytics.Dashboard(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Analytics fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load analytics: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// RemindHandler triggers a reminder email for a booking.
func (h *AdminHandler) RemindHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}
	if err := h.Analytics.Remind(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Reminder failed", zap.Int("booking", id), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder sent"})
}

// SendToPlannerHandler forwards booking details to the planner's inbox.
func (h *AdminHandler) SendToPlannerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}
	var req struct {
		PlannerEmail string `json:"plannerEmail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Analytics.SendToPlanner(c.Request.Context(), id, req.PlannerEmail); err != nil {
		getLogger(c).Error("Send to planner failed", zap.Int("booking", id), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadRequest), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking sent to planner"})
}
