package netx

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestResolveURL(t *testing.T) {
	base := mustParse(t, "https://backend.example/api/v1")

	tests := []struct {
		name     string
		query    url.Values
		segments []string
		want     string
	}{
		{"single segment", nil, []string{"videos"}, "https://backend.example/api/v1/videos"},
		{"id segment", nil, []string{"videos", "abc123"}, "https://backend.example/api/v1/videos/abc123"},
		{"escaped id", nil, []string{"videos", "a/b c"}, "https://backend.example/api/v1/videos/a%2Fb%20c"},
		{"query", url.Values{"page": {"1"}, "limit": {"5"}}, []string{"comments", "v1"}, "https://backend.example/api/v1/comments/v1?limit=5&page=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(base, tt.query, tt.segments...))
		})
	}
}

func TestResolveURL_TrailingSlashBase(t *testing.T) {
	base := mustParse(t, "http://127.0.0.1:8000/api/v1/")
	assert.Equal(t, "http://127.0.0.1:8000/api/v1/users/login", ResolveURL(base, nil, "users", "login"))
}

func TestResolveURL_DoesNotMutateBase(t *testing.T) {
	base := mustParse(t, "http://h/api")
	_ = ResolveURL(base, url.Values{"q": {"x"}}, "videos")
	assert.Equal(t, "http://h/api", base.String())
}

func TestSetHelpers(t *testing.T) {
	q := url.Values{}
	SetNonEmpty(q, "userId", "")
	SetNonEmpty(q, "query", "cats")
	SetPositive(q, "page", 0)
	SetPositive(q, "limit", 10)

	assert.Equal(t, url.Values{"query": {"cats"}, "limit": {"10"}}, q)
}
