package services

import (
	"context"

	"github.com/dmitrijs2005/streamtube/internal/client/session"
)

// Session is the part of session.Manager the services rely on.
type Session interface {
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	CurrentUser() *session.User
	Status() session.Status
}

var _ Session = (*session.Manager)(nil)
