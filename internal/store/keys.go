package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// APIKey is one stored credential record. IsWorking is the advisory result
// of the last liveness probe; a failed probe never blocks using the key.
type APIKey struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Key        string    `json:"key"`
	IsActive   bool      `json:"is_active"`
	IsWorking  bool      `json:"is_working"`
	LastTested time.Time `json:"last_tested"`
}

// ValidateKeyFormat pre-checks a credential before it is stored or probed.
// Google API keys start with "AIza" and run well past 30 characters.
func ValidateKeyFormat(key string) error {
	key = strings.TrimSpace(key)
	if !strings.HasPrefix(key, "AIza") || len(key) < 30 {
		return fmt.Errorf("API keys should start with 'AIza' and be at least 30 characters long")
	}
	return nil
}

// KeyStore keeps API-key records in a local JSON file.
type KeyStore struct {
	mu  sync.Mutex
	dir string
}

// NewKeyStore creates a key store at the given directory.
func NewKeyStore(dir string) *KeyStore {
	return &KeyStore{dir: dir}
}

func (s *KeyStore) filePath() string {
	return filepath.Join(s.dir, "api_keys.json")
}

// Add stores a new key record. The first key added becomes active; a key
// value that is already stored is rejected.
func (s *KeyStore) Add(name, key string, isWorking bool) (*APIKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.readUnsafe()
	if err != nil {
		return nil, err
	}

	for _, existing := range keys {
		if existing.Key == key {
			return nil, fmt.Errorf("this API key has already been added")
		}
	}

	rec := APIKey{
		ID:         uuid.NewString(),
		Name:       name,
		Key:        key,
		IsActive:   len(keys) == 0,
		IsWorking:  isWorking,
		LastTested: time.Now(),
	}
	keys = append(keys, rec)

	if err := s.writeUnsafe(keys); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns all stored key records.
func (s *KeyStore) List() ([]APIKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readUnsafe()
}

// Active returns the currently active key record, or nil when none is set.
func (s *KeyStore) Active() (*APIKey, error) {
	keys, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range keys {
		if keys[i].IsActive {
			return &keys[i], nil
		}
	}
	return nil, nil
}

// SetActive marks the record with the given ID active and every other
// record inactive.
func (s *KeyStore) SetActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.readUnsafe()
	if err != nil {
		return err
	}

	found := false
	for i := range keys {
		keys[i].IsActive = keys[i].ID == id
		if keys[i].IsActive {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("API key %s not found", id)
	}

	return s.writeUnsafe(keys)
}

// RecordProbe updates the advisory liveness badge for a key.
func (s *KeyStore) RecordProbe(id string, isWorking bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.readUnsafe()
	if err != nil {
		return err
	}

	for i := range keys {
		if keys[i].ID == id {
			keys[i].IsWorking = isWorking
			keys[i].LastTested = time.Now()
			return s.writeUnsafe(keys)
		}
	}
	return fmt.Errorf("API key %s not found", id)
}

// Remove deletes a key record. Removing the active key leaves no key active.
func (s *KeyStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.readUnsafe()
	if err != nil {
		return err
	}

	kept := keys[:0]
	for _, k := range keys {
		if k.ID != id {
			kept = append(kept, k)
		}
	}
	if len(kept) == len(keys) {
		return fmt.Errorf("API key %s not found", id)
	}

	return s.writeUnsafe(kept)
}

func (s *KeyStore) readUnsafe() ([]APIKey, error) {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read API keys: %w", err)
	}

	var keys []APIKey
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("failed to parse API keys: %w", err)
	}
	return keys, nil
}

func (s *KeyStore) writeUnsafe(keys []APIKey) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal API keys: %w", err)
	}

	// Credentials live here; keep the file private to the user.
	return os.WriteFile(s.filePath(), data, 0o600)
}
