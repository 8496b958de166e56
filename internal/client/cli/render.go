package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/streamtube/internal/client/models"
	"github.com/dmitrijs2005/streamtube/internal/client/services"
	"github.com/dustin/go-humanize"
)

// now is a test seam for relative timestamps.
var now = time.Now

func ago(t time.Time) string {
	if t.IsZero() {
		return "unknown date"
	}
	return humanize.RelTime(t, now(), "ago", "from now")
}

func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return ""
	}
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	h, m, s := int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func printVideoLine(w io.Writer, v models.Video) {
	line := fmt.Sprintf("%s  %s", v.ID, v.Title)
	if d := formatDuration(v.Duration); d != "" {
		line += " [" + d + "]"
	}
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "    %s · %s views · %s\n", v.UploaderName(), humanize.Comma(int64(v.Views)), ago(v.CreatedAt))
}

func printVideoPage(w io.Writer, page *models.Page[models.Video]) {
	if len(page.Docs) == 0 {
		fmt.Fprintln(w, "No videos found")
		return
	}
	for _, v := range page.Docs {
		printVideoLine(w, v)
	}
	if page.TotalPages > 0 {
		fmt.Fprintf(w, "-- page %d of %d --\n", page.Page, page.TotalPages)
	}
	if page.HasNextPage {
		fmt.Fprintf(w, "more: feed %d\n", page.Page+1)
	}
}

func printWatch(w io.Writer, view *services.WatchView) {
	v := view.Video
	fmt.Fprintln(w, v.Title)
	fmt.Fprintf(w, "by %s · %s views · %s likes · %s\n",
		v.UploaderName(), humanize.Comma(int64(v.Views)), humanize.Comma(int64(v.LikesCount)), ago(v.CreatedAt))
	if v.VideoFile != "" {
		fmt.Fprintf(w, "play: %s\n", v.VideoFile)
	}
	if v.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, v.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Comments (%d)\n", view.TotalComments)
	if len(view.Comments) == 0 {
		fmt.Fprintln(w, "  no comments yet")
		return
	}
	printThreads(w, view.Comments, 1)
}

func printThreads(w io.Writer, threads []*models.Thread, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, t := range threads {
		fmt.Fprintf(w, "%s%s  [%s] %s\n", indent, t.AuthorName(), t.ID, ago(t.CreatedAt))
		fmt.Fprintf(w, "%s  %s\n", indent, t.Content)
		printThreads(w, t.Replies, depth+1)
	}
}

func printChannel(w io.Writer, view *services.ChannelView) {
	ch := view.Channel
	fmt.Fprintf(w, "@%s", ch.Username)
	if ch.FullName != "" {
		fmt.Fprintf(w, " (%s)", ch.FullName)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s subscribers\n", humanize.Comma(int64(view.Subscribers)))

	switch {
	case view.Own:
		fmt.Fprintln(w, "This is your channel")
	case view.Checked && view.Subscribed:
		fmt.Fprintf(w, "Subscribed (unsubscribe: subscribe %s)\n", ch.ID)
	case view.Checked:
		fmt.Fprintf(w, "Not subscribed (subscribe: subscribe %s)\n", ch.ID)
	}

	fmt.Fprintln(w)
	if len(view.Videos) == 0 {
		fmt.Fprintln(w, "No videos yet")
		return
	}
	for _, v := range view.Videos {
		printVideoLine(w, v)
	}
}
