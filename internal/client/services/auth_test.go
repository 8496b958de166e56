package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/streamtube/internal/client/client"
	"github.com/dmitrijs2005/streamtube/internal/client/models"
	"github.com/dmitrijs2005/streamtube/internal/client/session"
	"github.com/dmitrijs2005/streamtube/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	sess := newSession(t)
	fc := &fakeClient{
		LoginFn: func(_ context.Context, email, password string) (string, error) {
			assert.Equal(t, "ada@x.io", email)
			assert.Equal(t, "pw", password)
			return userToken(t, "u1", "ada"), nil
		},
	}
	svc := NewAuthService(fc, sess)

	u, err := svc.Login(ctx, "  ada@x.io ", "pw")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, session.StatusAuthenticated, sess.Status())

	who, err := svc.WhoAmI()
	require.NoError(t, err)
	assert.Equal(t, "ada", who.Username)
}

func TestAuthService_Login_Validation(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newSession(t))

	_, err := svc.Login(context.Background(), " ", "pw")
	require.ErrorIs(t, err, ErrValidation)
	_, err = svc.Login(context.Background(), "a@b.c", "")
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, fc.calls)
}

func TestAuthService_Login_APIErrorLeavesSessionAnonymous(t *testing.T) {
	sess := newSession(t)
	fc := &fakeClient{
		LoginFn: func(context.Context, string, string) (string, error) {
			return "", &client.APIError{StatusCode: 401, Message: "Invalid user credentials"}
		},
	}
	svc := NewAuthService(fc, sess)

	_, err := svc.Login(context.Background(), "a@b.c", "bad")
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, session.StatusAnonymous, sess.Status())
}

func TestAuthService_Login_UndecodableToken(t *testing.T) {
	sess := newSession(t)
	fc := &fakeClient{
		LoginFn: func(context.Context, string, string) (string, error) { return "not-a-jwt", nil },
	}
	svc := NewAuthService(fc, sess)

	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.ErrorIs(t, err, common.ErrInvalidToken)
	assert.Equal(t, session.StatusDegraded, sess.Status())

	_, err = svc.WhoAmI()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAuthService_Register(t *testing.T) {
	var got models.RegisterRequest
	fc := &fakeClient{
		RegisterFn: func(_ context.Context, req models.RegisterRequest) error {
			got = req
			return nil
		},
	}
	svc := NewAuthService(fc, newSession(t))

	err := svc.Register(context.Background(), models.RegisterRequest{
		FullName: " Ada Lovelace ", Username: "ada ", Email: " ada@x.io", Password: " pw ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RegisterRequest{
		FullName: "Ada Lovelace", Username: "ada", Email: "ada@x.io", Password: " pw ",
	}, got)
}

func TestAuthService_Register_Validation(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newSession(t))

	full := models.RegisterRequest{FullName: "A", Username: "a", Email: "a@b.c", Password: "p"}
	for name, mutate := range map[string]func(*models.RegisterRequest){
		"full name": func(r *models.RegisterRequest) { r.FullName = "" },
		"username":  func(r *models.RegisterRequest) { r.Username = "  " },
		"email":     func(r *models.RegisterRequest) { r.Email = "" },
		"password":  func(r *models.RegisterRequest) { r.Password = "" },
	} {
		t.Run(name, func(t *testing.T) {
			req := full
			mutate(&req)
			require.ErrorIs(t, svc.Register(context.Background(), req), ErrValidation)
		})
	}
	assert.Empty(t, fc.calls)
}

func TestAuthService_LogoutAndWhoAmI(t *testing.T) {
	sess := loggedIn(t, "u1")
	svc := NewAuthService(&fakeClient{}, sess)

	_, err := svc.WhoAmI()
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))
	_, err = svc.WhoAmI()
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, session.StatusAnonymous, sess.Status())

	require.NoError(t, svc.Logout(context.Background()))
}
