package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/streamtube/internal/client/client"
	"github.com/dmitrijs2005/streamtube/internal/client/config"
	"github.com/dmitrijs2005/streamtube/internal/client/kvstore"
	"github.com/dmitrijs2005/streamtube/internal/client/models"
	"github.com/dmitrijs2005/streamtube/internal/client/services"
	"github.com/dmitrijs2005/streamtube/internal/client/session"
	"github.com/dmitrijs2005/streamtube/internal/logging"
)

type App struct {
	config       *config.Config
	log          logging.Logger
	store        io.Closer
	session      *session.Manager
	authService  services.AuthService
	videoService services.VideoService

	reader *bufio.Reader
	out    io.Writer

	// lastVideo is the video most recently shown by watch; like keeps its
	// counter in step.
	lastVideo *models.Video
}

// NewApp builds the object graph: store, session manager, API client and
// services. Logs go to stderr so they do not interleave with the REPL.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel, c.LogFormat)

	store, err := kvstore.Open(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening token store", "backend", c.StorageBackend, "error", err)
		return nil, err
	}

	sess := session.NewManager(store, log)

	apiClient, err := client.New(c.ServerBaseURL, c.RequestTimeout, sess,
		client.WithRateLimit(c.RequestsPerSecond),
		client.WithLogger(log.With("component", "api")),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		config:       c,
		log:          log,
		store:        store,
		session:      sess,
		authService:  services.NewAuthService(apiClient, sess),
		videoService: services.NewVideoService(apiClient, sess, log),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}, nil
}

// Run restores the session and serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Warn(ctx, "error closing token store", "error", err)
		}
	}()

	st := a.session.Initialize(ctx)
	fmt.Fprintln(a.out, "Welcome to StreamTube CLI (type 'help' for commands)")
	switch st {
	case session.StatusAuthenticated:
		fmt.Fprintf(a.out, "Welcome back, %s\n", displayName(a.session.CurrentUser()))
	case session.StatusDegraded:
		fmt.Fprintln(a.out, "Stored session could not be read; log in again")
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentUser() != nil
}

// getStatus renders the prompt decoration, e.g. "(ada authenticated)".
func (a *App) getStatus() string {
	st := a.session.State()
	s := string(st.Status())
	if st.User != nil {
		s = displayName(st.User) + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

func displayName(u *session.User) string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return u.Username
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}
