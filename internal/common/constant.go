// Package common contains shared constants and sentinel errors used across
// StreamTube client components.
package common

const (
	// SessionTokenKey is the key-value store key holding the bearer token.
	SessionTokenKey = "accessToken"

	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token in the Authorization header value.
	BearerPrefix = "Bearer "

	// ContentTypeHeaderName and ContentTypeJSON describe the default request payload.
	ContentTypeHeaderName = "Content-Type"
	ContentTypeJSON       = "application/json"

	// RequestIDHeaderName tags each outbound request for backend log correlation.
	RequestIDHeaderName = "X-Request-ID"
)
