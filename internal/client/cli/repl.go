package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Feed(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Watch(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Reply(ctx context.Context, args []string) error
	Channel(ctx context.Context, args []string) error
	Subscribe(ctx context.Context, args []string) error
	Upload(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, feed [page], search <query>, watch <id>, channel <id>, help, exit"
	helpLoggedIn  = "Available commands: feed [page], search <query>, watch <id>, like <id>, comment <id>, " +
		"reply <videoId> <commentId>, channel [id], subscribe <id>, upload, whoami, logout, help, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// Prompts, help and error messages go to out. The loop exits on EOF or when the user types "exit" or "quit". Handler
// errors are reported and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "streamtube %s> \n", statusFn())

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpAnonymous)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "feed":
			cmdErr = a.Feed(ctx, args)
		case "search":
			cmdErr = a.Search(ctx, args)
		case "watch":
			cmdErr = a.Watch(ctx, args)
		case "like":
			cmdErr = a.Like(ctx, args)
		case "comment":
			cmdErr = a.Comment(ctx, args)
		case "reply":
			cmdErr = a.Reply(ctx, args)
		case "channel":
			cmdErr = a.Channel(ctx, args)
		case "subscribe":
			cmdErr = a.Subscribe(ctx, args)
		case "upload":
			cmdErr = a.Upload(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, describeError(cmdErr))
		}
	}
}
