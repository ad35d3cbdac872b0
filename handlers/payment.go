package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"eventura/models"
	"eventura/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler drives the checkout flow: quote, gateway order, callback
// verification and the payment history pane.
type PaymentHandler struct {
	Payments payment.PaymentService
}

func NewPaymentHandler(payments payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

func paymentOption(c *gin.Context) (models.PaymentOption, bool) {
	raw := strings.ToUpper(c.DefaultQuery("option", string(models.PayFull)))
	switch models.PaymentOption(raw) {
	case models.PayFull, models.PayToken:
		return models.PaymentOption(raw), true
	}
	return "", false
}

// QuoteHandler computes the payable amount for a booking before checkout.
func (h *PaymentHandler) QuoteHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}
	option, ok := paymentOption(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "option must be FULL or TOKEN"})
		return
	}

	quote, err := h.Payments.Quote(c.Request.Context(), sessionEmail(c), id, option)
	if err != nil {
		getLogger(c).Warn("Payment quote rejected", zap.Int("booking", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CreateOrderHandler opens a gateway order for the quoted amount.
func (h *PaymentHandler) CreateOrderHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}
	option, ok := paymentOption(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "option must be FULL or TOKEN"})
		return
	}

	order, err := h.Payments.CreateOrder(c.Request.Context(), sessionEmail(c), id, option)
	if err != nil {
		getLogger(c).Error("Gateway order failed", zap.Int("booking", id), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ConfirmHandler verifies the checkout callback and records the payment. A
// bad signature or a failed record leaves the booking untouched.
func (h *PaymentHandler) ConfirmHandler(c *gin.Context) {
	logger := getLogger(c)

	var confirmation models.PaymentConfirmation
	if err := c.ShouldBindJSON(&confirmation); err != nil {
		logger.Error("Invalid payment confirmation", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	receipt, err := h.Payments.Confirm(c.Request.Context(), sessionEmail(c), confirmation)
	if err != nil {
		logger.Warn("Payment confirmation rejected",
			zap.String("order", confirmation.OrderID), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadRequest), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// HistoryHandler lists the customer's reconciled payments.
func (h *PaymentHandler) HistoryHandler(c *gin.Context) {
	history, err := h.Payments.History(c.Request.Context(), sessionEmail(c))
	if err != nil {
		getLogger(c).Error("Payment history fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load payments: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
