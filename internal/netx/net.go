// Package netx has URL helpers for talking to the REST backend.
package netx

import (
	"net/url"
	"strconv"
)

// ResolveURL appends path segments to base, escaping each one, and sets
// query. base keeps its own path prefix (for example "/api/v1").
func ResolveURL(base *url.URL, query url.Values, segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}

	u := base.JoinPath(escaped...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	} else {
		u.RawQuery = ""
	}
	return u.String()
}

// SetNonEmpty adds key=value to q unless value is empty.
func SetNonEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// SetPositive adds key=n to q when n > 0.
func SetPositive(q url.Values, key string, n int) {
	if n > 0 {
		q.Set(key, strconv.Itoa(n))
	}
}
