package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayGateway talks to the live gateway.
type RazorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

// CreateOrder opens a gateway order. Amounts are in paise, currency is INR.
func (g *RazorpayGateway) CreateOrder(amountPaise int64, receipt string) (string, error) {
	orderData := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
	}
	order, err := g.client.Order.Create(orderData, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create gateway order: %w", err)
	}
	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("gateway order response missing id")
	}
	return orderID, nil
}

// VerifySignature checks the checkout callback signature:
// HMAC-SHA256 of "orderID|paymentID" under the key secret.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if g.keySecret == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(g.keySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
