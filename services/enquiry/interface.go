package enquiry

import (
	"context"

	"eventura/models"
)

// EnquiryService covers the contact form and both enquiry panes.
type EnquiryService interface {
	Submit(ctx context.Context, req models.EnquiryRequest) ([]models.Enquiry, error)
	ForCustomer(ctx context.Context, email string) ([]models.Enquiry, error)
	All(ctx context.Context) ([]models.Enquiry, error)
	Reply(ctx context.Context, id int, reply string) ([]models.Enquiry, error)
}

// APIClient is the slice of the upstream client this service uses.
type APIClient interface {
	Enquiries(ctx context.Context) ([]models.Enquiry, error)
	EnquiriesByEmail(ctx context.Context, email string) ([]models.Enquiry, error)
	CreateEnquiry(ctx context.Context, req models.EnquiryRequest) (*models.Enquiry, error)
	ReplyEnquiry(ctx context.Context, id int, reply string) (*models.Enquiry, error)
}

// DefaultEnquiryService is the production implementation.
type DefaultEnquiryService struct {
	API APIClient
}
