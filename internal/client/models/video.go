package models

import "time"

// Owner is the embedded author of a video or comment.
type Owner struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

type Video struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration,omitempty"`
	Views       int       `json:"views"`
	LikesCount  int       `json:"likesCount"`
	IsPublished bool      `json:"isPublished,omitempty"`
	UploadedBy  *Owner    `json:"uploadedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UploaderName falls back to "Unknown" like the feed does.
func (v *Video) UploaderName() string {
	if v.UploadedBy == nil || v.UploadedBy.Username == "" {
		return "Unknown"
	}
	return v.UploadedBy.Username
}

// ApplyLike adjusts the cached like count after a toggle. The count never
// drops below zero.
func (v *Video) ApplyLike(liked bool) {
	if liked {
		v.LikesCount++
		return
	}
	if v.LikesCount > 0 {
		v.LikesCount--
	}
}

type LikeStatus struct {
	Liked bool `json:"liked"`
}

// UploadRequest describes a new video; the two paths point at local files.
type UploadRequest struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// VideoQuery filters the video listing. Zero fields are not sent.
type VideoQuery struct {
	UserID string
	Query  string
	Page   int
	Limit  int
}
