package store

import (
	"testing"
	"time"
)

func testPromptStore(t *testing.T) (*PromptStore, *time.Time) {
	t.Helper()
	now := time.Now()
	s := NewPromptStore(t.TempDir())
	s.now = func() time.Time { return now }
	return s, &now
}

func TestSaveAndList(t *testing.T) {
	s, _ := testPromptStore(t)

	first, err := s.Save("prompt one", "write a marketing email for our new product launch", []string{"#launch"})
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if first.Title != "write a marketing email for our..." {
		t.Errorf("Title = %q", first.Title)
	}
	if first.ExpiresAt.Sub(first.CreatedAt) != PromptTTL {
		t.Errorf("TTL = %v, want %v", first.ExpiresAt.Sub(first.CreatedAt), PromptTTL)
	}

	if _, err := s.Save("prompt two", "short idea", nil); err != nil {
		t.Fatal(err)
	}

	prompts, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(prompts) != 2 {
		t.Fatalf("List() = %d entries, want 2", len(prompts))
	}
	// Newest first.
	if prompts[0].Content != "prompt two" {
		t.Errorf("first listed prompt = %q, want newest", prompts[0].Content)
	}
}

func TestExpiryWindow(t *testing.T) {
	s, now := testPromptStore(t)

	created := *now
	if _, err := s.Save("p", "an idea", nil); err != nil {
		t.Fatal(err)
	}

	// One hour later the prompt is still live.
	*now = created.Add(1 * time.Hour)
	prompts, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(prompts) != 1 {
		t.Errorf("prompt at T+1h excluded, want retained")
	}

	// A day later it is excluded.
	*now = created.Add(24 * time.Hour)
	prompts, err = s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(prompts) != 0 {
		t.Errorf("prompt at T+24h retained, want excluded")
	}
}

func TestSweep(t *testing.T) {
	s, now := testPromptStore(t)

	created := *now
	s.Save("old", "old idea", nil)

	*now = created.Add(24 * time.Hour)
	s.Save("fresh", "fresh idea", nil)

	removed, err := s.Sweep()
	if err != nil {
		t.Fatalf("Sweep() error: %v", err)
	}
	if removed != 1 {
		t.Errorf("Sweep() removed %d, want 1", removed)
	}

	// Idempotent: a second sweep removes nothing.
	removed, err = s.Sweep()
	if err != nil {
		t.Fatal(err)
	}
	if removed != 0 {
		t.Errorf("second Sweep() removed %d, want 0", removed)
	}

	prompts, _ := s.List()
	if len(prompts) != 1 || prompts[0].Content != "fresh" {
		t.Errorf("after sweep, library = %v", prompts)
	}
}

func TestSearch(t *testing.T) {
	s, _ := testPromptStore(t)
	s.Save("You are a helpful cooking assistant", "recipe helper for beginners", []string{"#cooking"})
	s.Save("You are a code reviewer", "review my go code", []string{"#golang"})

	tests := []struct {
		query string
		want  int
	}{
		{"cooking", 1},  // content and hashtag
		{"GOLANG", 1},   // hashtag, case-insensitive
		{"review", 1},   // title words come from the input
		{"you are", 2},  // common content
		{"florida", 0},  // no match
		{"", 2},         // empty query returns everything live
	}

	for _, tt := range tests {
		got, err := s.Search(tt.query)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.want {
			t.Errorf("Search(%q) = %d entries, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestDelete(t *testing.T) {
	s, _ := testPromptStore(t)
	rec, _ := s.Save("p", "an idea", nil)

	if err := s.Delete(rec.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := s.Delete(rec.ID); err == nil {
		t.Error("deleting a missing prompt did not error")
	}

	prompts, _ := s.List()
	if len(prompts) != 0 {
		t.Errorf("library not empty after delete: %v", prompts)
	}
}

func TestTitleFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"short idea", "short idea"},
		{"one two three four five six", "one two three four five six"},
		{"one two three four five six seven", "one two three four five six..."},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleFor(tt.in); got != tt.want {
			t.Errorf("TitleFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
