package handlers

import (
	"net/http"

	"eventura/models"
	"eventura/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves the authenticated account's profile pane.
type ProfileHandler struct {
	Users user.UserService
}

func NewProfileHandler(users user.UserService) *ProfileHandler {
	return &ProfileHandler{Users: users}
}

// GetProfileHandler returns the current account.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	account, err := h.Users.Profile(c.Request.Context(), sessionEmail(c))
	if err != nil {
		getLogger(c).Error("Profile fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateProfileHandler saves edited profile fields. The session identity is
// refreshed only once the marketplace API accepts the update.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Error("Invalid profile update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	account, err := h.Users.UpdateProfile(c.Request.Context(), sessionToken(c), update)
	if err != nil {
		logger.Error("Profile update failed", zap.String("email", sessionEmail(c)), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Profile update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, account)
}
