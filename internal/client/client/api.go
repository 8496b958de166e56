package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/streamtube/internal/client/models"
	"github.com/dmitrijs2005/streamtube/internal/netx"
)

// Login exchanges credentials for an access token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp models.LoginResponse
	body := JSONBody{Value: models.LoginRequest{Email: email, Password: password}}
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "users", "login"), body, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", ErrNoAccessToken
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, c.endpoint(nil, "users", "register"), JSONBody{Value: req}, nil)
}

func (c *HTTPClient) ListVideos(ctx context.Context, q models.VideoQuery) (*models.Page[models.Video], error) {
	query := url.Values{}
	netx.SetNonEmpty(query, "userId", q.UserID)
	netx.SetNonEmpty(query, "query", q.Query)
	netx.SetPositive(query, "page", q.Page)
	netx.SetPositive(query, "limit", q.Limit)

	var page models.Page[models.Video]
	if err := c.do(ctx, http.MethodGet, c.endpoint(query, "videos"), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	var v models.Video
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "videos", id), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UploadVideo streams both files from disk as a multipart form.
func (c *HTTPClient) UploadVideo(ctx context.Context, req models.UploadRequest) (*models.Video, error) {
	body := MultipartBody{
		Fields: []FormField{
			{Name: "title", Value: req.Title},
			{Name: "description", Value: req.Description},
		},
		Files: []FormFile{
			{Field: "videoFile", Path: req.VideoPath},
			{Field: "thumbnail", Path: req.ThumbnailPath},
		},
	}

	var v models.Video
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "videos"), body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *HTTPClient) ToggleVideoLike(ctx context.Context, videoID string) (*models.LikeStatus, error) {
	var s models.LikeStatus
	if err := c.do(ctx, http.MethodPatch, c.endpoint(nil, "likes", "video", videoID), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) ListComments(ctx context.Context, videoID string, page, limit int) (*models.Page[models.Comment], error) {
	query := url.Values{}
	netx.SetPositive(query, "page", page)
	netx.SetPositive(query, "limit", limit)

	var p models.Page[models.Comment]
	if err := c.do(ctx, http.MethodGet, c.endpoint(query, "comments", videoID), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, videoID string, nc models.NewComment) (*models.Comment, error) {
	var cm models.Comment
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "comments", videoID), JSONBody{Value: nc}, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

func (c *HTTPClient) GetChannel(ctx context.Context, userID string) (*models.Channel, error) {
	var ch models.Channel
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "users", "channel", userID), nil, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (c *HTTPClient) CheckSubscription(ctx context.Context, channelID string) (*models.SubscriptionStatus, error) {
	var s models.SubscriptionStatus
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "subscriptions", "check", channelID), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) ToggleSubscription(ctx context.Context, channelID string) (*models.SubscriptionStatus, error) {
	var s models.SubscriptionStatus
	if err := c.do(ctx, http.MethodPatch, c.endpoint(nil, "subscriptions", "toggle", channelID), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
