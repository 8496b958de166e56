package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/streamtube/internal/client/client"
	"github.com/dmitrijs2005/streamtube/internal/client/models"
	"github.com/dmitrijs2005/streamtube/internal/client/session"
	"github.com/dmitrijs2005/streamtube/internal/logging"
)

const (
	FeedPageSize = 10
	// CommentPreviewSize is how many comments Watch loads.
	CommentPreviewSize = 5
)

// WatchView is a video with the first page of its comments, threaded.
type WatchView struct {
	Video         *models.Video
	Comments      []*models.Thread
	TotalComments int
}

// ChannelView is a channel profile with its videos. Subscribed is only
// meaningful when Checked is true: the status is fetched for logged-in
// viewers of someone else's channel.
type ChannelView struct {
	Channel     *models.Channel
	Videos      []models.Video
	Own         bool
	Checked     bool
	Subscribed  bool
	Subscribers int
}

type VideoService interface {
	Feed(ctx context.Context, page int) (*models.Page[models.Video], error)
	Search(ctx context.Context, query string, page int) (*models.Page[models.Video], error)
	Watch(ctx context.Context, videoID string) (*WatchView, error)
	// ToggleLike flips the like and updates v.LikesCount to match.
	ToggleLike(ctx context.Context, v *models.Video) (bool, error)
	Comment(ctx context.Context, videoID, text string) (*models.Comment, error)
	Reply(ctx context.Context, videoID, parentID, text string) (*models.Comment, error)
	// Channel shows the channel with the given id, or the current user's
	// own channel when id is empty.
	Channel(ctx context.Context, id string) (*ChannelView, error)
	ToggleSubscribe(ctx context.Context, channelID string) (*models.SubscriptionStatus, error)
	Upload(ctx context.Context, req models.UploadRequest) (*models.Video, error)
}

type videoService struct {
	client  client.Client
	session Session
	log     logging.Logger
}

func NewVideoService(c client.Client, s Session, log logging.Logger) VideoService {
	return &videoService{client: c, session: s, log: log.With("component", "videos")}
}

func (s *videoService) requireUser() (*session.User, error) {
	u := s.session.CurrentUser()
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	return u, nil
}

func (s *videoService) Feed(ctx context.Context, page int) (*models.Page[models.Video], error) {
	if page < 1 {
		page = 1
	}
	return s.client.ListVideos(ctx, models.VideoQuery{Page: page, Limit: FeedPageSize})
}

func (s *videoService) Search(ctx context.Context, query string, page int) (*models.Page[models.Video], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is empty", ErrValidation)
	}
	if page < 1 {
		page = 1
	}
	return s.client.ListVideos(ctx, models.VideoQuery{Query: query, Page: page, Limit: FeedPageSize})
}

func (s *videoService) Watch(ctx context.Context, videoID string) (*WatchView, error) {
	if strings.TrimSpace(videoID) == "" {
		return nil, fmt.Errorf("%w: video id is empty", ErrValidation)
	}

	v, err := s.client.GetVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("get video error: %w", err)
	}

	comments, err := s.client.ListComments(ctx, videoID, 1, CommentPreviewSize)
	if err != nil {
		return nil, fmt.Errorf("list comments error: %w", err)
	}

	return &WatchView{
		Video:         v,
		Comments:      models.BuildThreads(comments.Docs),
		TotalComments: comments.TotalDocs,
	}, nil
}

func (s *videoService) ToggleLike(ctx context.Context, v *models.Video) (bool, error) {
	if _, err := s.requireUser(); err != nil {
		return false, err
	}

	st, err := s.client.ToggleVideoLike(ctx, v.ID)
	if err != nil {
		return false, fmt.Errorf("toggle like error: %w", err)
	}
	v.ApplyLike(st.Liked)
	return st.Liked, nil
}

func (s *videoService) Comment(ctx context.Context, videoID, text string) (*models.Comment, error) {
	return s.postComment(ctx, videoID, models.NewComment{Content: text})
}

func (s *videoService) Reply(ctx context.Context, videoID, parentID, text string) (*models.Comment, error) {
	if strings.TrimSpace(parentID) == "" {
		return nil, fmt.Errorf("%w: parent comment id is empty", ErrValidation)
	}
	return s.postComment(ctx, videoID, models.NewComment{Content: text, ParentComment: parentID})
}

func (s *videoService) postComment(ctx context.Context, videoID string, nc models.NewComment) (*models.Comment, error) {
	nc.Content = strings.TrimSpace(nc.Content)
	if nc.Content == "" {
		return nil, fmt.Errorf("%w: comment is empty", ErrValidation)
	}
	if _, err := s.requireUser(); err != nil {
		return nil, err
	}

	c, err := s.client.AddComment(ctx, videoID, nc)
	if err != nil {
		return nil, fmt.Errorf("add comment error: %w", err)
	}
	return c, nil
}

func (s *videoService) Channel(ctx context.Context, id string) (*ChannelView, error) {
	me := s.session.CurrentUser()
	if id == "" {
		if me == nil {
			return nil, ErrNotLoggedIn
		}
		id = me.ID
	}

	ch, err := s.client.GetChannel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get channel error: %w", err)
	}

	videos, err := s.client.ListVideos(ctx, models.VideoQuery{UserID: id})
	if err != nil {
		return nil, fmt.Errorf("list channel videos error: %w", err)
	}

	view := &ChannelView{
		Channel:     ch,
		Videos:      videos.Docs,
		Own:         me != nil && me.ID == id,
		Subscribers: ch.SubscriberTotal(),
	}

	if me != nil && !view.Own {
		st, err := s.client.CheckSubscription(ctx, id)
		if err != nil {
			// the profile is still worth showing without the button state
			s.log.Warn(ctx, "subscription check failed", "channel_id", id, "error", err)
			return view, nil
		}
		view.Checked = true
		view.Subscribed = st.Subscribed
		if st.SubscribersCount != nil {
			view.Subscribers = *st.SubscribersCount
		}
	}
	return view, nil
}

func (s *videoService) ToggleSubscribe(ctx context.Context, channelID string) (*models.SubscriptionStatus, error) {
	me, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(channelID) == "" {
		return nil, fmt.Errorf("%w: channel id is empty", ErrValidation)
	}
	if me.ID == channelID {
		return nil, ErrOwnChannel
	}

	st, err := s.client.ToggleSubscription(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("toggle subscription error: %w", err)
	}
	return st, nil
}

func (s *videoService) Upload(ctx context.Context, req models.UploadRequest) (*models.Video, error) {
	if _, err := s.requireUser(); err != nil {
		return nil, err
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" || req.VideoPath == "" || req.ThumbnailPath == "" {
		return nil, fmt.Errorf("%w: title, description, video and thumbnail are required", ErrValidation)
	}
	for _, p := range []string{req.VideoPath, req.ThumbnailPath} {
		if err := checkRegularFile(p); err != nil {
			return nil, err
		}
	}

	v, err := s.client.UploadVideo(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("upload error: %w", err)
	}
	s.log.Info(ctx, "video uploaded", "video_id", v.ID)
	return v, nil
}

func checkRegularFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrValidation, path)
	}
	return nil
}
