package handlers

import (
	"net/http"

	"eventura/utils"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static page view models: home, about and the
// contact details shown beside the enquiry form.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) HomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":    "Eventura",
		"tagline":  "Plan your perfect event",
		"sections": []string{"planners", "services", "testimonials"},
	})
}

func (h *PageHandler) AboutHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "About Eventura",
		"body":  "Eventura connects customers with verified event planners for weddings, birthdays, corporate events and more.",
	})
}

func (h *PageHandler) ContactHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"email":   "support@eventura.example",
		"phone":   "+91 00000 00000",
		"address": "Eventura HQ",
	})
}

// HealthHandler reports the gateway's own dependencies.
func (h *PageHandler) HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
