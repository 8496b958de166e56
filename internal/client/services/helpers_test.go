package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/streamtube/internal/client/client"
	"github.com/dmitrijs2005/streamtube/internal/client/kvstore"
	"github.com/dmitrijs2005/streamtube/internal/client/models"
	"github.com/dmitrijs2005/streamtube/internal/client/session"
	"github.com/dmitrijs2005/streamtube/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var errNotStubbed = errors.New("not stubbed")

// fakeClient implements client.Client; unset funcs fail with errNotStubbed.
type fakeClient struct {
	LoginFn              func(ctx context.Context, email, password string) (string, error)
	RegisterFn           func(ctx context.Context, req models.RegisterRequest) error
	ListVideosFn         func(ctx context.Context, q models.VideoQuery) (*models.Page[models.Video], error)
	GetVideoFn           func(ctx context.Context, id string) (*models.Video, error)
	UploadVideoFn        func(ctx context.Context, req models.UploadRequest) (*models.Video, error)
	ToggleVideoLikeFn    func(ctx context.Context, id string) (*models.LikeStatus, error)
	ListCommentsFn       func(ctx context.Context, id string, page, limit int) (*models.Page[models.Comment], error)
	AddCommentFn         func(ctx context.Context, id string, c models.NewComment) (*models.Comment, error)
	GetChannelFn         func(ctx context.Context, id string) (*models.Channel, error)
	CheckSubscriptionFn  func(ctx context.Context, id string) (*models.SubscriptionStatus, error)
	ToggleSubscriptionFn func(ctx context.Context, id string) (*models.SubscriptionStatus, error)

	calls []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	f.calls = append(f.calls, "Login")
	if f.LoginFn == nil {
		return "", errNotStubbed
	}
	return f.LoginFn(ctx, email, password)
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) error {
	f.calls = append(f.calls, "Register")
	if f.RegisterFn == nil {
		return errNotStubbed
	}
	return f.RegisterFn(ctx, req)
}

func (f *fakeClient) ListVideos(ctx context.Context, q models.VideoQuery) (*models.Page[models.Video], error) {
	f.calls = append(f.calls, "ListVideos")
	if f.ListVideosFn == nil {
		return nil, errNotStubbed
	}
	return f.ListVideosFn(ctx, q)
}

func (f *fakeClient) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	f.calls = append(f.calls, "GetVideo")
	if f.GetVideoFn == nil {
		return nil, errNotStubbed
	}
	return f.GetVideoFn(ctx, id)
}

func (f *fakeClient) UploadVideo(ctx context.Context, req models.UploadRequest) (*models.Video, error) {
	f.calls = append(f.calls, "UploadVideo")
	if f.UploadVideoFn == nil {
		return nil, errNotStubbed
	}
	return f.UploadVideoFn(ctx, req)
}

func (f *fakeClient) ToggleVideoLike(ctx context.Context, id string) (*models.LikeStatus, error) {
	f.calls = append(f.calls, "ToggleVideoLike")
	if f.ToggleVideoLikeFn == nil {
		return nil, errNotStubbed
	}
	return f.ToggleVideoLikeFn(ctx, id)
}

func (f *fakeClient) ListComments(ctx context.Context, id string, page, limit int) (*models.Page[models.Comment], error) {
	f.calls = append(f.calls, "ListComments")
	if f.ListCommentsFn == nil {
		return nil, errNotStubbed
	}
	return f.ListCommentsFn(ctx, id, page, limit)
}

func (f *fakeClient) AddComment(ctx context.Context, id string, c models.NewComment) (*models.Comment, error) {
	f.calls = append(f.calls, "AddComment")
	if f.AddCommentFn == nil {
		return nil, errNotStubbed
	}
	return f.AddCommentFn(ctx, id, c)
}

func (f *fakeClient) GetChannel(ctx context.Context, id string) (*models.Channel, error) {
	f.calls = append(f.calls, "GetChannel")
	if f.GetChannelFn == nil {
		return nil, errNotStubbed
	}
	return f.GetChannelFn(ctx, id)
}

func (f *fakeClient) CheckSubscription(ctx context.Context, id string) (*models.SubscriptionStatus, error) {
	f.calls = append(f.calls, "CheckSubscription")
	if f.CheckSubscriptionFn == nil {
		return nil, errNotStubbed
	}
	return f.CheckSubscriptionFn(ctx, id)
}

func (f *fakeClient) ToggleSubscription(ctx context.Context, id string) (*models.SubscriptionStatus, error) {
	f.calls = append(f.calls, "ToggleSubscription")
	if f.ToggleSubscriptionFn == nil {
		return nil, errNotStubbed
	}
	return f.ToggleSubscriptionFn(ctx, id)
}

func newSession(t *testing.T) *session.Manager {
	t.Helper()
	m := session.NewManager(kvstore.NewMemoryStore(), logging.Discard())
	m.Initialize(context.Background())
	return m
}

func userToken(t *testing.T, id, username string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"_id":      id,
		"username": username,
		"exp":      jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

// loggedIn returns a session already holding a token for id.
func loggedIn(t *testing.T, id string) *session.Manager {
	t.Helper()
	m := newSession(t)
	require.NoError(t, m.Login(context.Background(), userToken(t, id, "user-"+id)))
	return m
}

func intPtr(n int) *int { return &n }
