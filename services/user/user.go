package user

import (
	"context"
	"fmt"
	"time"

	"eventura/config"
	"eventura/models"
	"eventura/services/session"
	"eventura/utils"

	"go.uber.org/zap"
)

// Register relays the registration form upstream. A password/confirmation
// mismatch is rejected here, before any network request is issued.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegistrationRequest) (*models.Account, error) {
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return nil, ValidationError{Reason: "fullName, email and password are required"}
	}
	if req.Password != req.ConfirmPassword {
		return nil, ValidationError{Reason: "passwords do not match"}
	}
	if req.Role == "" {
		req.Role = "user"
	}

	account, err := s.API.Register(ctx, req)
	if err != nil {
		utils.GetLogger().Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return account, nil
}

// Login exchanges credentials upstream and, on success, mints a session
// token and caches the identity payload for route gating.
func (s *DefaultUserService) Login(ctx context.Context, creds models.Credentials) (*AuthResponse, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, ValidationError{Reason: "email and password are required"}
	}

	account, err := s.API.Login(ctx, creds)
	if err != nil {
		utils.GetLogger().Warn("Login rejected", zap.String("email", creds.Email), zap.Error(err))
		return nil, fmt.Errorf("invalid email or password")
	}

	role := account.Role
	if role == "" {
		role = "user"
	}

	ttl := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	token, err := utils.GenerateToken(account.Email, role, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	identity := session.Identity{Email: account.Email, FullName: account.FullName, Role: role}
	if err := s.Sessions.Save(ctx, token, identity); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{Token: token, User: *account, Role: role, Email: account.Email}, nil
}

// Logout revokes the session. The upstream API holds no session state.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Revoke(ctx, token)
}

// Profile fetches the account record for an email.
func (s *DefaultUserService) Profile(ctx context.Context, email string) (*models.Account, error) {
	return s.API.Profile(ctx, email)
}

// UpdateProfile relays the edit upstream. The cached identity is replaced
// only once the server accepts the update; a changed email moves the session
// with it.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (*models.Account, error) {
	account, err := s.API.UpdateProfile(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("profile update failed: %w", err)
	}

	role := account.Role
	if role == "" {
		role = "user"
	}
	identity := session.Identity{Email: account.Email, FullName: account.FullName, Role: role}
	if err := s.Sessions.Save(ctx, token, identity); err != nil {
		utils.GetLogger().Error("Failed to refresh session identity", zap.Error(err))
	}
	return account, nil
}

// AllUsers lists the registered accounts for the admin view.
func (s *DefaultUserService) AllUsers(ctx context.Context) ([]models.Account, error) {
	return s.API.Users(ctx)
}

// DeleteUser removes an account and returns the authoritative list. On
// failure the prior list is re-fetched so the view never keeps a phantom
// deletion.
func (s *DefaultUserService) DeleteUser(ctx context.Context, id int) ([]models.Account, error) {
	if err := s.API.DeleteUser(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return s.API.Users(ctx)
}
