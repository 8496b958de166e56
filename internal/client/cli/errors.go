package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/streamtube/internal/client/client"
	"github.com/dmitrijs2005/streamtube/internal/client/services"
	"github.com/dmitrijs2005/streamtube/internal/common"
)

// usageError is returned by commands called with the wrong arguments.
type usageError string

func (u usageError) Error() string { return "Usage: " + string(u) }

// describeError turns a command failure into the line shown to the user.
func describeError(err error) string {
	var usage usageError
	var apiErr *client.APIError

	switch {
	case errors.As(err, &usage):
		return usage.Error()
	case errors.Is(err, services.ErrNotLoggedIn):
		return "Please log in first"
	case errors.Is(err, services.ErrOwnChannel):
		return "You cannot subscribe to your own channel"
	case errors.Is(err, services.ErrValidation):
		return fmt.Sprintf("Invalid input: %v", err)
	case errors.Is(err, common.ErrInvalidToken):
		return "Received a token that could not be read; try logging in again"
	case errors.Is(err, client.ErrUnauthorized):
		return "Not authorized; your session may have expired, log in again"
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("Request failed: %s", apiErr.Message)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
