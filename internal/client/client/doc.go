// Package client talks to the StreamTube REST backend.
//
// # Overview
//
//  1. Client is the transport-agnostic API contract used by the services
//     layer: auth, videos, likes, comments, channels and subscriptions.
//  2. HTTPClient implements it over net/http. Every outbound request passes
//     through a chain of RequestHooks; AuthHook attaches the session's bearer
//     token and the default JSON content type.
//  3. Request bodies are an explicit variant: JSONBody or MultipartBody. The
//     auth hook never overrides the boundary content type of a multipart body.
//
// # Error Handling
//
// Failures are mapped to sentinel errors callers can match with errors.Is:
// ErrUnauthorized (401/403), ErrUnavailable (transport failures, timeouts,
// 5xx). Every non-2xx response is also an *APIError carrying the backend's
// message.
package client
