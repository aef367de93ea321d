package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/iwacu250/listings-client/internal/core/domain"
)

// sessionFile is the on-disk layout: the two logical keys a browser would
// keep in localStorage.
type sessionFile struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// FileStore keeps the session in a single JSON file with owner-only
// permissions. Read or parse failures are swallowed and treated as "no
// session": the store fails open to the logged-out state, never to the
// logged-in one.
type FileStore struct {
	path string

	mu    sync.RWMutex
	state sessionFile
}

// NewFileStore loads any existing session from path. A missing or corrupt
// file yields an empty (logged-out) store, not an error.
func NewFileStore(path string) (*FileStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("session file path is required")
	}

	s := &FileStore{path: path}
	s.load()
	return s, nil
}

// DefaultPath returns the session file location under the user's home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".listings", "session.json")
	}
	return filepath.Join(home, ".listings", "session.json")
}

func (s *FileStore) Save(token string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionFile{Token: token, User: user}
	return s.persistLocked()
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionFile{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *FileStore) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	clone := *s.state.User
	return &clone
}

func (s *FileStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token != ""
}

func (s *FileStore) load() {
	b, err := os.ReadFile(s.path)
	if err != nil || len(b) == 0 {
		return
	}

	var decoded sessionFile
	if err := json.Unmarshal(b, &decoded); err != nil {
		// Corrupt session file: start logged out.
		return
	}
	s.state = decoded
}

func (s *FileStore) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	out, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
