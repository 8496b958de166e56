package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/streamtube/internal/client/models"
	"github.com/dmitrijs2005/streamtube/internal/client/services"
)

func (a *App) Feed(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return usageError("feed [page]")
		}
		page = n
	}

	p, err := a.videoService.Feed(ctx, page)
	if err != nil {
		return err
	}
	printVideoPage(a.out, p)
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("search <query>")
	}

	p, err := a.videoService.Search(ctx, strings.Join(args, " "), 1)
	if err != nil {
		return err
	}
	printVideoPage(a.out, p)
	return nil
}

func (a *App) Watch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("watch <id>")
	}

	view, err := a.videoService.Watch(ctx, args[0])
	if err != nil {
		return err
	}
	a.lastVideo = view.Video
	printWatch(a.out, view)
	return nil
}

// Like toggles the like on a video. When it is the video last shown by
// watch, its cached counter is updated too.
func (a *App) Like(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("like <id>")
	}

	v := a.lastVideo
	if v == nil || v.ID != args[0] {
		v = &models.Video{ID: args[0]}
	}

	liked, err := a.videoService.ToggleLike(ctx, v)
	if err != nil {
		return err
	}

	state := "Removed like"
	if liked {
		state = "Liked"
	}
	if v == a.lastVideo {
		fmt.Fprintf(a.out, "%s (%d likes)\n", state, v.LikesCount)
	} else {
		fmt.Fprintln(a.out, state)
	}
	return nil
}

func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("comment <videoId>")
	}
	if !a.isLoggedIn() {
		return services.ErrNotLoggedIn
	}

	text, err := getSimpleText(a.reader, "Add a comment", a.out)
	if err != nil {
		return err
	}

	c, err := a.videoService.Comment(ctx, args[0], text)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Comment posted [%s]\n", c.ID)
	return nil
}

func (a *App) Reply(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("reply <videoId> <commentId>")
	}
	if !a.isLoggedIn() {
		return services.ErrNotLoggedIn
	}

	text, err := getSimpleText(a.reader, "Write a reply", a.out)
	if err != nil {
		return err
	}

	c, err := a.videoService.Reply(ctx, args[0], args[1], text)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Reply posted [%s]\n", c.ID)
	return nil
}
