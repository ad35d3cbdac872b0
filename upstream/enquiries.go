package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"eventura/models"
)

// Enquiries lists every enquiry (administrator view).
func (c *Client) Enquiries(ctx context.Context) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	if err := c.getJSON(ctx, "/enquiries", &enquiries); err != nil {
		return nil, err
	}
	return enquiries, nil
}

// EnquiriesByEmail lists one customer's enquiries.
func (c *Client) EnquiriesByEmail(ctx context.Context, email string) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	if err := c.getJSON(ctx, "/enquiries/"+url.PathEscape(email), &enquiries); err != nil {
		return nil, err
	}
	return enquiries, nil
}

// CreateEnquiry submits the enquiry form. The API takes it form-encoded.
func (c *Client) CreateEnquiry(ctx context.Context, req models.EnquiryRequest) (*models.Enquiry, error) {
	form := url.Values{}
	form.Set("name", req.Name)
	form.Set("email", req.Email)
	form.Set("enquiryDetails", req.EnquiryDetails)

	var enquiry models.Enquiry
	if err := c.sendForm(ctx, http.MethodPost, "/enquiry", form, &enquiry); err != nil {
		return nil, err
	}
	return &enquiry, nil
}

// ReplyEnquiry records a reply. The server flips the enquiry to Replied only
// when it accepts the payload.
func (c *Client) ReplyEnquiry(ctx context.Context, id int, reply string) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	payload := map[string]string{"reply": reply}
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/enquiries/%d/reply", id), payload, &enquiry); err != nil {
		return nil, err
	}
	return &enquiry, nil
}
