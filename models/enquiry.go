package models

import "strings"

const (
	EnquiryPending = "Pending"
	EnquiryReplied = "Replied"
)

// Enquiry is a free-text customer message, optionally answered with a reply.
// Status becomes Replied only after the server accepts a reply payload.
type Enquiry struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	EnquiryDetails string `json:"enquiryDetails"`
	Reply          string `json:"reply,omitempty"`
	Status         string `json:"status,omitempty"`
}

// Answered reports whether the enquiry carries a server-accepted reply.
func (e Enquiry) Answered() bool {
	return strings.EqualFold(e.Status, EnquiryReplied)
}

// EnquiryRequest carries the customer enquiry form. All fields are required.
type EnquiryRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	EnquiryDetails string `json:"enquiryDetails"`
}
