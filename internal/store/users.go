package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// User is the minimal local profile. This is demo-only identity: no password
// or secret of any kind is stored with it.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStore keeps the single local user record in a JSON file.
type UserStore struct {
	mu  sync.Mutex
	dir string
}

// NewUserStore creates a user store at the given directory.
func NewUserStore(dir string) *UserStore {
	return &UserStore{dir: dir}
}

func (s *UserStore) filePath() string {
	return filepath.Join(s.dir, "user.json")
}

// Load reads the user record, nil when none exists.
func (s *UserStore) Load() (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return &u, nil
}

// Create stores a new user record, refusing to overwrite an existing one.
func (s *UserStore) Create(name, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.filePath()); err == nil {
		return nil, fmt.Errorf("an account already exists on this machine")
	}

	u := User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write user: %w", err)
	}
	return &u, nil
}
