package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSecureFileStore_EmptyPassphrase(t *testing.T) {
	_, err := OpenSecureFileStore(t.TempDir(), nil)
	require.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestSecureFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1, err := OpenSecureFileStore(dir, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "accessToken", "header.payload.sig"))
	require.NoError(t, s1.Close())

	s2, err := OpenSecureFileStore(dir, []byte("pw"))
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get(ctx, "accessToken")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "header.payload.sig", v)
}

func TestSecureFileStore_WrongPassphraseCannotRead(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1, err := OpenSecureFileStore(dir, []byte("right"))
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "accessToken", "secret-token"))

	s2, err := OpenSecureFileStore(dir, []byte("wrong"))
	require.NoError(t, err)

	_, _, err = s2.Get(ctx, "accessToken")
	require.ErrorContains(t, err, "failed to open secure[accessToken]")
}

func TestSecureFileStore_NoPlaintextOnDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenSecureFileStore(dir, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "accessToken", "very-recognisable-token"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), "accessToken", "file names are hashed")
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		assert.NotContains(t, string(data), "very-recognisable-token")
	}
}

func TestSecureFileStore_SwappedFilesFailToOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenSecureFileStore(dir, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "a", "value-a"))
	require.NoError(t, s.Set(ctx, "b", "value-b"))

	data, err := os.ReadFile(s.path("a"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.path("b"), data, 0o600))

	_, _, err = s.Get(ctx, "b")
	require.Error(t, err)
}

func TestSecureFileStore_CorruptFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenSecureFileStore(dir, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.path("k"), []byte("{not json"), 0o600))

	_, _, err = s.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to decode secure[k]")

	require.NoError(t, os.WriteFile(filepath.Join(dir, saltFileName), []byte("short"), 0o600))
	_, err = OpenSecureFileStore(dir, []byte("pw"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "corrupt salt"))
}

func TestSecureFileStore_UnusableAfterClose(t *testing.T) {
	ctx := context.Background()

	s, err := OpenSecureFileStore(t.TempDir(), []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	require.Error(t, s.Set(ctx, "k", "v"))
}
