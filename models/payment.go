package models

// PaymentRecord is one reconciled gateway transaction as stored upstream.
type PaymentRecord struct {
	ID            int64   `json:"id"`
	BookingID     int     `json:"bookingId"`
	UserEmail     string  `json:"userEmail"`
	PlannerID     int     `json:"plannerId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	PaymentDate   string  `json:"paymentDate"`
}

// PaymentOption selects between a full payment and a 20% token payment.
type PaymentOption string

const (
	PayFull  PaymentOption = "FULL"
	PayToken PaymentOption = "TOKEN"
)

// PaymentQuote is the computed payable amount for a booking, before the
// gateway order is created.
type PaymentQuote struct {
	BookingID  int           `json:"bookingId"`
	Option     PaymentOption `json:"option"`
	EventPrice float64       `json:"eventPrice"`
	Amount     float64       `json:"amount"`
}

// PaymentOrder is a created gateway order awaiting checkout.
type PaymentOrder struct {
	OrderID     string  `json:"orderId"`
	BookingID   int     `json:"bookingId"`
	Amount      float64 `json:"amount"`
	AmountPaise int64   `json:"amountPaise"`
	Currency    string  `json:"currency"`
	KeyID       string  `json:"keyId"`
}

// PaymentConfirmation is the gateway checkout callback payload.
type PaymentConfirmation struct {
	OrderID   string `json:"razorpayOrderId"`
	PaymentID string `json:"razorpayPaymentId"`
	Signature string `json:"razorpaySignature"`
}
