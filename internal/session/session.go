// Package session holds the state of one prompt-building pass: the idea the
// user typed, the question set derived from it, and the answers collected so
// far. Everything lives in an explicit value handed to each pipeline step;
// there is no package-level state.
package session

import (
	"fmt"
	"strings"

	"github.com/promptgenie/genie/internal/classify"
	"github.com/promptgenie/genie/internal/question"
)

// Session lifecycle: create → active (questions set, answers accumulate) →
// reset. Questions are never mutated after being set; starting over or
// regenerating questions discards the answers.
type Session struct {
	Input       string
	ContentType classify.ContentType
	Questions   []question.Question
	Hashtags    []string

	answers map[int]string
}

// New creates a session for the given input
func New(input string) *Session {
	return &Session{
		Input:       input,
		ContentType: classify.Detect(input),
		answers:     make(map[int]string),
	}
}

// SetQuestions installs a freshly generated question sequence and clears any
// previous answers.
func (s *Session) SetQuestions(qs []question.Question) {
	s.Questions = qs
	s.answers = make(map[int]string)
}

// Record stores the answer for the question at index, overwriting any
// previous value. Multi-choice answers arrive as a comma-space-joined string
// of the selected labels; the store does not validate values against the
// question's schema.
func (s *Session) Record(index int, value string) {
	if index < 0 || index >= len(s.Questions) {
		return
	}
	if value == "" {
		delete(s.answers, index)
		return
	}
	s.answers[index] = value
}

// Answer returns the stored answer for index, if any.
func (s *Session) Answer(index int) (string, bool) {
	v, ok := s.answers[index]
	return v, ok
}

// ClearAnswers empties the answer set.
func (s *Session) ClearAnswers() {
	s.answers = make(map[int]string)
}

// Answered returns how many questions have answers.
func (s *Session) Answered() int {
	return len(s.answers)
}

// CompletionRatio is answered/total in [0,1], 0 when there are no questions.
func (s *Session) CompletionRatio() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(len(s.answers)) / float64(len(s.Questions))
}

// Complete reports whether every question has an answer.
func (s *Session) Complete() bool {
	return len(s.Questions) > 0 && len(s.answers) == len(s.Questions)
}

// AnswerLines renders the answered questions as "category: question → answer"
// lines in question order. Unanswered questions are omitted.
func (s *Session) AnswerLines() []string {
	lines := make([]string, 0, len(s.answers))
	for i, q := range s.Questions {
		answer, ok := s.answers[i]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s → %s", q.Category, q.Text, answer))
	}
	return lines
}

// AddHashtag appends a tag (normalized to a leading #) unless it is already
// selected or the per-prompt cap of 10 is reached.
func (s *Session) AddHashtag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" || tag == "#" {
		return
	}
	if !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}
	if len(s.Hashtags) >= 10 {
		return
	}
	for _, existing := range s.Hashtags {
		if existing == tag {
			return
		}
	}
	s.Hashtags = append(s.Hashtags, tag)
}

// RemoveHashtag deletes a selected tag.
func (s *Session) RemoveHashtag(tag string) {
	for i, existing := range s.Hashtags {
		if existing == tag {
			s.Hashtags = append(s.Hashtags[:i], s.Hashtags[i+1:]...)
			return
		}
	}
}

// Reset returns the session to the state right after New.
func (s *Session) Reset() {
	s.Questions = nil
	s.Hashtags = nil
	s.answers = make(map[int]string)
}
