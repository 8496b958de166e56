package cli

import (
	"context"
	"fmt"
)

// Channel shows a channel; without an id it shows the user's own.
func (a *App) Channel(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usageError("channel [id]")
	}
	id := ""
	if len(args) == 1 {
		id = args[0]
	}

	view, err := a.videoService.Channel(ctx, id)
	if err != nil {
		return err
	}
	printChannel(a.out, view)
	return nil
}

func (a *App) Subscribe(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("subscribe <channelId>")
	}

	st, err := a.videoService.ToggleSubscribe(ctx, args[0])
	if err != nil {
		return err
	}

	msg := "Unsubscribed"
	if st.Subscribed {
		msg = "Subscribed"
	}
	if st.SubscribersCount != nil {
		msg = fmt.Sprintf("%s (%d subscribers)", msg, *st.SubscribersCount)
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
