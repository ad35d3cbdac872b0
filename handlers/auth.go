package handlers

import (
	"errors"
	"net/http"

	"eventura/models"
	"eventura/services/user"
	"eventura/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	Users user.UserService
}

func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// RegisterHandler handles account registration.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	account, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		var vErr user.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason})
			return
		}
		logger.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Registration failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, account)
}

// LoginHandler authenticates against the marketplace API and opens a session.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	auth, err := h.Users.Login(c.Request.Context(), creds)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", creds.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, auth)
}

// LogoutHandler revokes the current session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.Users.Logout(c.Request.Context(), sessionToken(c)); err != nil {
		getLogger(c).Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// upstreamStatus relays the marketplace API status code when the error
// carries one, falling back otherwise.
func upstreamStatus(err error, fallback int) int {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 {
		return apiErr.StatusCode
	}
	return fallback
}
