package client

import (
	"context"

	"github.com/dmitrijs2005/streamtube/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) error

	ListVideos(ctx context.Context, q models.VideoQuery) (*models.Page[models.Video], error)
	GetVideo(ctx context.Context, id string) (*models.Video, error)
	UploadVideo(ctx context.Context, req models.UploadRequest) (*models.Video, error)
	ToggleVideoLike(ctx context.Context, videoID string) (*models.LikeStatus, error)

	ListComments(ctx context.Context, videoID string, page, limit int) (*models.Page[models.Comment], error)
	AddComment(ctx context.Context, videoID string, c models.NewComment) (*models.Comment, error)

	GetChannel(ctx context.Context, userID string) (*models.Channel, error)
	CheckSubscription(ctx context.Context, channelID string) (*models.SubscriptionStatus, error)
	ToggleSubscription(ctx context.Context, channelID string) (*models.SubscriptionStatus, error)
}
