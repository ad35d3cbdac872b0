package user

import (
	"context"

	"eventura/models"
	"eventura/services/session"
)

// UserService covers registration, login, profile management and the admin
// user list.
type UserService interface {
	Register(ctx context.Context, req models.RegistrationRequest) (*models.Account, error)
	Login(ctx context.Context, creds models.Credentials) (*AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, email string) (*models.Account, error)
	UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (*models.Account, error)
	AllUsers(ctx context.Context) ([]models.Account, error)
	DeleteUser(ctx context.Context, id int) ([]models.Account, error)
}

// AuthResponse is handed to the client after login: the session token plus
// the user payload it needs for route gating.
type AuthResponse struct {
	Token string         `json:"token"`
	User  models.Account `json:"user"`
	Role  string         `json:"role"`
	Email string         `json:"email"`
}

// ValidationError marks a client-side form rejection. No network request was
// issued for it.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	API      APIClient
	Sessions session.Store
}

// APIClient is the slice of the upstream client this service uses.
type APIClient interface {
	Register(ctx context.Context, req models.RegistrationRequest) (*models.Account, error)
	Login(ctx context.Context, creds models.Credentials) (*models.Account, error)
	Profile(ctx context.Context, email string) (*models.Account, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Account, error)
	Users(ctx context.Context) ([]models.Account, error)
	DeleteUser(ctx context.Context, id int) error
}
