package session

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/streamtube/internal/client/kvstore"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store is broken")

// fakeStore wraps a MemoryStore and fails selected operations.
type fakeStore struct {
	*kvstore.MemoryStore
	getErr, setErr, delErr error

	sets, deletes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{MemoryStore: kvstore.NewMemoryStore()}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *fakeStore) Set(ctx context.Context, key, value string) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.deletes++
	if f.delErr != nil {
		return f.delErr
	}
	return f.MemoryStore.Delete(ctx, key)
}

// signToken mints a real HS256 token; the client never checks the signature.
func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return s
}

func userToken(t *testing.T, id, username, email string) string {
	t.Helper()
	return signToken(t, jwt.MapClaims{
		"_id":      id,
		"username": username,
		"email":    email,
		"exp":      jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
}

func b64(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}
