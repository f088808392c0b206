package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/teemow/lark-mcp/internal/logging"
)

var tokenBucket = []byte("tokens")

// Store persists one TokenRecord per application id in a bbolt
// database. Storing a record for an existing app id supersedes the
// previous one.
type Store struct {
	db     *bolt.DB
	logger *slog.Logger
}

// DefaultStorePath returns the token database location under the user
// cache directory.
func DefaultStorePath() string {
	return filepath.Join(userCacheDir(), "lark-mcp", "tokens.db")
}

// OpenStore opens (creating if necessary) the token database at path.
func OpenStore(path string, logger *slog.Logger) (*Store, error) {
	if path == "" {
		path = DefaultStorePath()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create token store directory: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(tokenBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize token store: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a record for its application id, replacing any previous one.
func (s *Store) Put(rec TokenRecord) error {
	if rec.AppID == "" {
		return fmt.Errorf("record has no app id")
	}
	if rec.Token == "" {
		return fmt.Errorf("record has no token")
	}
	encoded, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode token record: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(tokenBucket).Put([]byte(rec.AppID), encoded)
	})
	if err != nil {
		return fmt.Errorf("failed to store token record: %w", err)
	}
	s.logger.Debug("stored token record", logging.AppID(rec.AppID),
		slog.Time("expires_at", rec.ExpiresAt))
	return nil
}

// GetLocalAccessToken returns the lookup key for an application's
// stored token without any validity check or network I/O. The key is
// resolved to the full record by GetToken so freshness is evaluated at
// the point of use, not here.
func (s *Store) GetLocalAccessToken(appID string) (string, bool) {
	var found bool
	_ = s.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(tokenBucket).Get([]byte(appID)) != nil
		return nil
	})
	if !found {
		return "", false
	}
	return appID, true
}

// GetToken resolves a lookup key to its full record. It fails with
// ErrTokenExpired for records whose expiry has passed; the caller is
// expected to treat that the same as ErrNoToken for dispatch purposes.
func (s *Store) GetToken(key string) (*TokenRecord, error) {
	var rec TokenRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(tokenBucket).Get([]byte(key))
		if raw == nil {
			return ErrNoToken
		}
		return json.Unmarshal(raw, &rec)
	})
	if err != nil {
		return nil, err
	}
	if !rec.Valid() {
		return nil, ErrTokenExpired
	}
	return &rec, nil
}

// Delete removes the record for one application id. Deleting an id with
// no record is a no-op.
func (s *Store) Delete(appID string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(tokenBucket).Delete([]byte(appID))
	})
	if err != nil {
		return fmt.Errorf("failed to delete token record: %w", err)
	}
	s.logger.Info("deleted token record", logging.AppID(appID))
	return nil
}

// DeleteAll removes every stored record.
func (s *Store) DeleteAll() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(tokenBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(tokenBucket)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to clear token store: %w", err)
	}
	s.logger.Info("deleted all token records")
	return nil
}

// List enumerates all stored records as display sessions with
// truncated token values.
func (s *Store) List() ([]Session, error) {
	var sessions []Session
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(tokenBucket).ForEach(func(_, v []byte) error {
			var rec TokenRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			sessions = append(sessions, Session{
				AppID:     rec.AppID,
				Token:     rec.DisplayToken(),
				Valid:     rec.Valid(),
				ExpiresAt: rec.ExpiresAt,
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate token records: %w", err)
	}
	return sessions, nil
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
