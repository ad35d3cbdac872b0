package enquiry

import (
	"context"
	"fmt"
	"strings"

	"eventura/models"
	"eventura/utils"

	"go.uber.org/zap"
)

// Submit validates and sends the contact form, then returns the customer's
// re-fetched enquiry list. All fields are required; a rejected form never
// reaches the network.
func (s *DefaultEnquiryService) Submit(ctx context.Context, req models.EnquiryRequest) ([]models.Enquiry, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.EnquiryDetails) == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	if _, err := s.API.CreateEnquiry(ctx, req); err != nil {
		utils.GetLogger().Error("Enquiry submit failed", zap.String("email", req.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to submit enquiry: %w", err)
	}
	return s.ForCustomer(ctx, req.Email)
}

// ForCustomer lists one customer's enquiries.
func (s *DefaultEnquiryService) ForCustomer(ctx context.Context, email string) ([]models.Enquiry, error) {
	enquiries, err := s.API.EnquiriesByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not load enquiries: %w", err)
	}
	return enquiries, nil
}

// All lists every enquiry for the administrator pane.
func (s *DefaultEnquiryService) All(ctx context.Context) ([]models.Enquiry, error) {
	enquiries, err := s.API.Enquiries(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load enquiries: %w", err)
	}
	return enquiries, nil
}

// Reply records an administrator reply and returns the re-fetched list. The
// enquiry shows Replied only once the server has accepted the payload; a
// failed reply leaves it Pending.
func (s *DefaultEnquiryService) Reply(ctx context.Context, id int, reply string) ([]models.Enquiry, error) {
	if strings.TrimSpace(reply) == "" {
		return nil, fmt.Errorf("reply text is required")
	}
	if _, err := s.API.ReplyEnquiry(ctx, id, reply); err != nil {
		utils.GetLogger().Error("Enquiry reply failed", zap.Int("enquiry", id), zap.Error(err))
		return nil, fmt.Errorf("failed to record reply: %w", err)
	}
	return s.All(ctx)
}
