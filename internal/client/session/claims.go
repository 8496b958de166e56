package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/streamtube/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// User is the identity derived from a token's claims. It is never persisted.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`

	// ExpiresAt is informational; the client never enforces it.
	ExpiresAt *time.Time `json:"-"`
}

// tokenClaims is the subset of the access token payload the client reads.
// Every other claim is skipped without looking at its type.
type tokenClaims struct {
	ID        string          `json:"_id"`
	Username  string          `json:"username,omitempty"`
	Email     string          `json:"email,omitempty"`
	ExpiresAt json.RawMessage `json:"exp,omitempty"`
}

var segmentDecoder = jwt.NewParser()

// DecodeUser reads the claims segment of a three-part token without checking
// its signature. Wrong segment count, bad base64, non-JSON payload and a
// missing _id claim all yield an error wrapping common.ErrInvalidToken.
// Claims other than _id, username, email and exp are ignored, and an exp
// that is not a number only leaves ExpiresAt nil.
func DecodeUser(token string) (*User, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", common.ErrInvalidToken, len(parts))
	}

	payload, err := segmentDecoder.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: claims segment: %v", common.ErrInvalidToken, err)
	}

	var c tokenClaims
	if err := json.Unmarshal(payload, &c); err != nil {
		return nil, fmt.Errorf("%w: claims json: %v", common.ErrInvalidToken, err)
	}
	if c.ID == "" {
		return nil, fmt.Errorf("%w: missing _id claim", common.ErrInvalidToken)
	}

	return &User{
		ID:        c.ID,
		Username:  c.Username,
		Email:     c.Email,
		ExpiresAt: parseExpiry(c.ExpiresAt),
	}, nil
}

// parseExpiry reads exp as NumericDate seconds. Anything else yields nil.
func parseExpiry(raw json.RawMessage) *time.Time {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var secs float64
	if err := json.Unmarshal(raw, &secs); err != nil {
		return nil
	}
	whole := int64(secs)
	t := time.Unix(whole, int64((secs-float64(whole))*float64(time.Second)))
	return &t
}
