package panel

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"medinfo-be/pkg/client"
)

// SessionKey is the only key the client persists.
const SessionKey = "user"

// Store is a small persistent key-value store.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore keeps all keys in a single JSON object on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("corrupt session file %s: %w", s.path, err)
	}
	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// SessionHolder owns the signed-in username and mirrors it to a Store.
type SessionHolder struct {
	mu      sync.RWMutex
	store   Store
	session client.Session
}

// NewSessionHolder restores any persisted session from store.
func NewSessionHolder(store Store) (*SessionHolder, error) {
	username, ok, err := store.Get(SessionKey)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	h := &SessionHolder{store: store}
	if ok {
		h.session = client.Session{Username: username}
	}
	return h, nil
}

func (h *SessionHolder) Current() client.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

// SignIn records username as the current user and persists it.
func (h *SessionHolder) SignIn(username string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.Set(SessionKey, username); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	h.session = client.Session{Username: username}
	return nil
}

// Logout clears the session and removes the persisted key.
func (h *SessionHolder) Logout() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.session = client.Session{}
	if err := h.store.Delete(SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
