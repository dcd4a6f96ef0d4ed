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

// PromptTTL is how long a saved prompt lives. The library deliberately stays
// fresh: entries older than 23 hours disappear.
const PromptTTL = 23 * time.Hour

// SweepInterval is how often the background sweep prunes expired prompts.
const SweepInterval = time.Hour

// SavedPrompt is one library entry.
type SavedPrompt struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	OriginalInput string    `json:"original_input"`
	Hashtags      []string  `json:"hashtags,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Expired reports whether the entry is past its TTL at the given time.
func (p SavedPrompt) Expired(now time.Time) bool {
	return !p.ExpiresAt.After(now)
}

// PromptStore keeps the prompt library in a local JSON file.
type PromptStore struct {
	mu  sync.Mutex
	dir string

	now func() time.Time
}

// NewPromptStore creates a prompt store at the given directory.
func NewPromptStore(dir string) *PromptStore {
	return &PromptStore{dir: dir, now: time.Now}
}

func (s *PromptStore) filePath() string {
	return filepath.Join(s.dir, "saved_prompts.json")
}

// Save adds a prompt to the library with the standard TTL. The title is
// derived from the first words of the original input.
func (s *PromptStore) Save(content, originalInput string, hashtags []string) (*SavedPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompts, err := s.readUnsafe()
	if err != nil {
		prompts = nil // start fresh if the file is corrupted
	}

	now := s.now()
	rec := SavedPrompt{
		ID:            uuid.NewString(),
		Title:         TitleFor(originalInput),
		Content:       content,
		OriginalInput: originalInput,
		Hashtags:      hashtags,
		CreatedAt:     now,
		ExpiresAt:     now.Add(PromptTTL),
	}

	// Newest first, matching how the library is browsed.
	prompts = append([]SavedPrompt{rec}, prompts...)

	if err := s.writeUnsafe(prompts); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns the library with expired entries excluded.
func (s *PromptStore) List() ([]SavedPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompts, err := s.readUnsafe()
	if err != nil {
		return nil, err
	}
	return s.liveUnsafe(prompts), nil
}

// Search filters the live library by a case-insensitive match over title,
// content, and hashtags.
func (s *PromptStore) Search(query string) ([]SavedPrompt, error) {
	prompts, err := s.List()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	if query == "" {
		return prompts, nil
	}

	var out []SavedPrompt
	for _, p := range prompts {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Content), query) ||
			hashtagMatch(p.Hashtags, query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func hashtagMatch(tags []string, query string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Delete removes an entry by ID.
func (s *PromptStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompts, err := s.readUnsafe()
	if err != nil {
		return err
	}

	kept := prompts[:0]
	for _, p := range prompts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(prompts) {
		return fmt.Errorf("prompt %s not found", id)
	}

	return s.writeUnsafe(kept)
}

// Sweep prunes expired entries from disk and reports how many were removed.
// It is idempotent: sweeping an already-clean library removes nothing.
func (s *PromptStore) Sweep() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompts, err := s.readUnsafe()
	if err != nil {
		return 0, err
	}

	live := s.liveUnsafe(prompts)
	removed := len(prompts) - len(live)
	if removed == 0 {
		return 0, nil
	}

	if err := s.writeUnsafe(live); err != nil {
		return 0, err
	}
	return removed, nil
}

// StartSweeper sweeps on a fixed interval until the returned stop function
// is called.
func (s *PromptStore) StartSweeper(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}

func (s *PromptStore) liveUnsafe(prompts []SavedPrompt) []SavedPrompt {
	now := s.now()
	var live []SavedPrompt
	for _, p := range prompts {
		if !p.Expired(now) {
			live = append(live, p)
		}
	}
	return live
}

// TitleFor derives a library title from the first six words of an input.
func TitleFor(input string) string {
	words := strings.Fields(input)
	if len(words) <= 6 {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:6], " ") + "..."
}

func (s *PromptStore) readUnsafe() ([]SavedPrompt, error) {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read saved prompts: %w", err)
	}

	var prompts []SavedPrompt
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse saved prompts: %w", err)
	}
	return prompts, nil
}

func (s *PromptStore) writeUnsafe(prompts []SavedPrompt) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(prompts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal saved prompts: %w", err)
	}

	return os.WriteFile(s.filePath(), data, 0o644)
}
