package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s staticTokens) CurrentToken() (string, bool) {
	return s.token, s.token != ""
}

// writeEnvelope answers in the backend's response envelope.
func writeEnvelope(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": status,
		"data":       data,
		"message":    message,
		"success":    status < 400,
	})
}

// newTestClient mounts r under /api/v1 and returns a client rooted there.
func newTestClient(t *testing.T, r chi.Router, tokens TokenSource, opts ...Option) *HTTPClient {
	t.Helper()

	root := chi.NewRouter()
	root.Mount("/api/v1", r)
	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/api/v1", 5*time.Second, tokens, opts...)
	require.NoError(t, err)
	return c
}
