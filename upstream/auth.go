package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"eventura/models"
)

// Register creates an account. The API takes the registration form as query
// parameters on a bodyless POST.
func (c *Client) Register(ctx context.Context, req models.RegistrationRequest) (*models.Account, error) {
	params := url.Values{}
	params.Set("fullName", req.FullName)
	params.Set("email", req.Email)
	params.Set("password", req.Password)
	params.Set("confirmPassword", req.ConfirmPassword)
	params.Set("role", req.Role)

	var account models.Account
	if err := c.sendQuery(ctx, http.MethodPost, "/register", params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Login exchanges credentials for the account payload used for role gating.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.Account, error) {
	params := url.Values{}
	params.Set("email", creds.Email)
	params.Set("password", creds.Password)

	var account models.Account
	if err := c.sendQuery(ctx, http.MethodPost, "/login", params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Profile fetches the account record for an email.
func (c *Client) Profile(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := c.getJSON(ctx, "/profile/"+url.PathEscape(email), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateProfile updates the editable profile fields and returns the stored
// record.
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Account, error) {
	params := url.Values{}
	params.Set("fullName", update.FullName)
	params.Set("email", update.Email)
	params.Set("phone", update.Phone)
	params.Set("city", update.City)

	var account models.Account
	if err := c.sendQuery(ctx, http.MethodPut, "/updateProfile", params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Users lists all registered accounts.
func (c *Client) Users(ctx context.Context) ([]models.Account, error) {
	var users []models.Account
	if err := c.getJSON(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes an account by ID.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.sendQuery(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
