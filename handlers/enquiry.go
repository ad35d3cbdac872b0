package handlers

import (
	"net/http"
	"strconv"

	"eventura/models"
	"eventura/services/enquiry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EnquiryHandler serves the contact form and both enquiry panes.
type EnquiryHandler struct {
	Enquiries enquiry.EnquiryService
}

func NewEnquiryHandler(enquiries enquiry.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{Enquiries: enquiries}
}

// SubmitHandler takes the contact form. All fields are required.
func (h *EnquiryHandler) SubmitHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid enquiry", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	enquiries, err := h.Enquiries.Submit(c.Request.Context(), req)
	if err != nil {
		logger.Error("Enquiry submit failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadRequest), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, enquiries)
}

// MyEnquiriesHandler lists the authenticated customer's enquiries.
func (h *EnquiryHandler) MyEnquiriesHandler(c *gin.Context) {
	enquiries, err := h.Enquiries.ForCustomer(c.Request.Context(), sessionEmail(c))
	if err != nil {
		getLogger(c).Error("Enquiry list fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load enquiries: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, enquiries)
}

// AllEnquiriesHandler lists every enquiry for the administrator pane.
func (h *EnquiryHandler) AllEnquiriesHandler(c *gin.Context) {
	enquiries, err := h.Enquiries.All(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Enquiry list fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load enquiries: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, enquiries)
}

// ReplyHandler records an administrator reply. The enquiry flips to Replied
// only after the marketplace API accepts it.
func (h *EnquiryHandler) ReplyHandler(c *gin.Context) {
	logger := getLogger(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enquiry id"})
		return
	}
	var req struct {
		Reply string `json:"reply"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	enquiries, err := h.Enquiries.Reply(c.Request.Context(), id, req.Reply)
	if err != nil {
		logger.Error("Enquiry reply failed", zap.Int("enquiry", id), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadRequest), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, enquiries)
}
