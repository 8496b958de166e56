package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/streamtube/internal/client/models"
	"github.com/dmitrijs2005/streamtube/internal/client/services"
)

// Upload prompts for the video metadata and the two local files, then
// uploads them.
func (a *App) Upload(ctx context.Context) error {
	if !a.isLoggedIn() {
		return services.ErrNotLoggedIn
	}

	var req models.UploadRequest
	var err error

	if req.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if req.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if req.VideoPath, err = getSimpleText(a.reader, "Path to video file", a.out); err != nil {
		return err
	}
	if req.ThumbnailPath, err = getSimpleText(a.reader, "Path to thumbnail image", a.out); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Uploading...")
	v, err := a.videoService.Upload(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded %q [%s]\n", v.Title, v.ID)
	return nil
}
