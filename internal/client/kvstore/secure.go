package kvstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/streamtube/internal/common"
	"github.com/dmitrijs2005/streamtube/internal/cryptox"
	"github.com/dmitrijs2005/streamtube/internal/filex"
)

const (
	saltFileName   = "store.salt"
	sealedFileExt  = ".sealed"
	secureFileMode = 0o600
)

var ErrEmptyPassphrase = errors.New("secure store: empty passphrase")

// sealedValue is the on-disk shape of one key.
type sealedValue struct {
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// SecureFileStore keeps each value in its own file, sealed with AES-GCM. The
// file name is a hash of the key and the key itself is bound as additional
// data, so a file renamed to another key's name fails to open.
type SecureFileStore struct {
	mu  sync.Mutex
	dir string
	key []byte
}

// OpenSecureFileStore derives the sealing key from passphrase and the salt in
// dir, generating and persisting the salt on first use.
func OpenSecureFileStore(dir string, passphrase []byte) (*SecureFileStore, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}

	salt, err := loadOrCreateSalt(filepath.Join(dir, saltFileName))
	if err != nil {
		return nil, err
	}

	return &SecureFileStore{dir: dir, key: cryptox.DeriveKey(passphrase, salt)}, nil
}

func loadOrCreateSalt(path string) ([]byte, error) {
	salt, err := os.ReadFile(path)
	if err == nil {
		if len(salt) != cryptox.SaltSize {
			return nil, fmt.Errorf("secure store: corrupt salt file %s", path)
		}
		return salt, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read salt: %w", err)
	}

	salt = common.GenerateRandByteArray(cryptox.SaltSize)
	if err := filex.WriteFileAtomic(path, salt, secureFileMode); err != nil {
		return nil, fmt.Errorf("write salt: %w", err)
	}
	return salt, nil
}

func (s *SecureFileStore) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+sealedFileExt)
}

func (s *SecureFileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read secure[%s]: %w", key, err)
	}

	var sv sealedValue
	if err := json.Unmarshal(data, &sv); err != nil {
		return "", false, fmt.Errorf("failed to decode secure[%s]: %w", key, err)
	}

	plain, err := cryptox.Open(sv.Ciphertext, sv.Nonce, s.key, []byte(key))
	if err != nil {
		return "", false, fmt.Errorf("failed to open secure[%s]: %w", key, err)
	}
	return string(plain), true, nil
}

func (s *SecureFileStore) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ct, nonce, err := cryptox.Seal([]byte(value), s.key, []byte(key))
	if err != nil {
		return fmt.Errorf("failed to seal secure[%s]: %w", key, err)
	}
	data, err := json.Marshal(sealedValue{Nonce: nonce, Ciphertext: ct})
	if err != nil {
		return err
	}

	if err := filex.WriteFileAtomic(s.path(key), data, secureFileMode); err != nil {
		return fmt.Errorf("failed to set secure[%s]: %w", key, err)
	}
	return nil
}

func (s *SecureFileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete secure[%s]: %w", key, err)
	}
	return nil
}

// Close wipes the derived key from memory.
func (s *SecureFileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	common.WipeByteArray(s.key)
	s.key = nil
	return nil
}
