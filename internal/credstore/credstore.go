// Package credstore is the persistent holder for the session token and the
// cached user profile. It owns exactly those two entries; everything that
// needs credentials gets a Store injected rather than touching the files
// directly.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when the requested entry is not present.
var ErrNotFound = errors.New("credential not found")

// Profile is the cached snapshot of the authenticated user's identity
// fields. It is a cache, never a source of truth: it may be stale relative
// to the backend and callers must not assume it reflects current state.
type Profile struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Store is the read/write/delete contract for the two credential entries.
type Store interface {
	// Token returns the current bearer token, or ErrNotFound.
	Token() (string, error)
	SetToken(token string) error

	// Profile returns the cached user profile, or ErrNotFound.
	Profile() (*Profile, error)
	SetProfile(p *Profile) error

	// Clear removes the token and the cached profile. Missing entries are
	// not an error, so Clear is safe to call when already logged out.
	Clear() error
}

const (
	tokenFile   = "token"
	profileFile = "profile.json"
)

// FileStore keeps the two entries as plain files in a directory. Individual
// writes are atomic (temp file + rename); there is no transactional
// guarantee across the token+profile pair.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, creating the directory if
// needed. An empty dir selects a per-user default under os.UserConfigDir.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, "community-app-admin")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create credential dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Token returns the stored bearer token. A token persisted as a
// JSON-stringified value has its surrounding quotes stripped, so the header
// always carries the bare token.
func (s *FileStore) Token() (string, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read token: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) {
		token = token[1 : len(token)-1]
	}
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *FileStore) SetToken(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to store empty token")
	}
	return s.writeAtomic(tokenFile, []byte(token))
}

func (s *FileStore) Profile() (*Profile, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, profileFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode cached profile: %w", err)
	}
	return &p, nil
}

func (s *FileStore) SetProfile(p *Profile) error {
	if p == nil {
		return fmt.Errorf("refusing to store nil profile")
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.writeAtomic(profileFile, raw)
}

func (s *FileStore) Clear() error {
	for _, name := range []string{tokenFile, profileFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

func (s *FileStore) writeAtomic(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}
