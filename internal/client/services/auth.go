package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/streamtube/internal/client/client"
	"github.com/dmitrijs2005/streamtube/internal/client/models"
	"github.com/dmitrijs2005/streamtube/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token and hand it to the session.
//   - Register: create a new account; it does not log in.
//   - Logout: drop the session token locally.
//   - WhoAmI: report the user decoded from the current token.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*session.User, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context) error
	WhoAmI() (*session.User, error)
}

type authService struct {
	client  client.Client
	session Session
}

func NewAuthService(c client.Client, s Session) AuthService {
	return &authService{client: c, session: s}
}

func (a *authService) Login(ctx context.Context, email, password string) (*session.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.session.Login(ctx, token); err != nil {
		return nil, fmt.Errorf("session error: %w", err)
	}
	return a.session.CurrentUser(), nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.FullName == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}

	if err := a.client.Register(ctx, req); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *authService) WhoAmI() (*session.User, error) {
	u := a.session.CurrentUser()
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	return u, nil
}
