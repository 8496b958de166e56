// Package kvstore provides the persistent string key-value capability the
// session layer stores its bearer token in.
//
// Three interchangeable backends exist and one is picked at startup from
// configuration (see Open):
//
//   - sqlite: a plain local store in an SQLite "metadata" table
//   - secure: one AES-GCM sealed file per key, key derived from a passphrase
//   - memory: a process-local map that forgets everything on exit
//
// Get reports absence with ok == false and a nil error; Delete of an absent
// key is not an error.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/streamtube/internal/client/config"
	"github.com/dmitrijs2005/streamtube/internal/filex"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is the capability consumed by the session manager.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// ClosableStore is what Open hands to the composition root.
type ClosableStore interface {
	Store
	io.Closer
}

const (
	sqliteFileName = "session.db"
	secureDirName  = "secure"
)

// Open builds the backend named by cfg.StorageBackend, creating cfg.DataDir
// when the backend needs disk.
func Open(ctx context.Context, cfg *config.Config) (ClosableStore, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendSQLite:
		dir, err := filex.EnsureDir(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return OpenSQLiteStore(ctx, filepath.Join(dir, sqliteFileName))
	case config.BackendSecure:
		dir, err := filex.EnsureDir(filepath.Join(cfg.DataDir, secureDirName))
		if err != nil {
			return nil, err
		}
		return OpenSecureFileStore(dir, []byte(cfg.SecurePassphrase))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StorageBackend)
	}
}
