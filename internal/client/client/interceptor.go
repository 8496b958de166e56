package client

import (
	"net/http"

	"github.com/dmitrijs2005/streamtube/internal/common"
	"github.com/google/uuid"
)

// TokenSource supplies the bearer token for outbound requests.
// session.Manager satisfies it.
type TokenSource interface {
	CurrentToken() (string, bool)
}

// RequestHook decorates an outbound request just before it is sent.
type RequestHook func(req *http.Request, kind BodyKind)

// AuthHook attaches "Authorization: Bearer <token>" while tokens holds one
// and leaves the header out otherwise. It also defaults the content type to
// JSON for every body except multipart, whose boundary-carrying content type
// was set by the body itself.
func AuthHook(tokens TokenSource) RequestHook {
	return func(req *http.Request, kind BodyKind) {
		if token, ok := tokens.CurrentToken(); ok && token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}

		if kind != BodyMultipart {
			req.Header.Set(common.ContentTypeHeaderName, common.ContentTypeJSON)
		}
	}
}

// RequestIDHook tags the request with a random id unless one is present.
func RequestIDHook() RequestHook {
	return func(req *http.Request, _ BodyKind) {
		if req.Header.Get(common.RequestIDHeaderName) == "" {
			req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
		}
	}
}
