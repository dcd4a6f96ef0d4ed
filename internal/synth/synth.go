// Package synth turns a completed session into the final optimized prompt,
// and rewrites existing prompts on request. There is deliberately no fallback
// text for a failed synthesis: fabricating a default prompt would mislead the
// user, so upstream failures propagate untouched.
package synth

import (
	"context"
	"errors"
	"time"

	"github.com/promptgenie/genie/internal/llm"
	"github.com/promptgenie/genie/internal/session"
)

// ErrIncompleteAnswers is returned when synthesis is requested before every
// question has an answer. Callers normally prevent this by disabling the
// action until the session is complete.
var ErrIncompleteAnswers = errors.New("answer all questions before generating the prompt")

const synthesizeTimeout = 60 * time.Second

// Synthesizer renders session state into an instruction prompt and asks the
// model for the finished text.
type Synthesizer struct {
	provider llm.Provider
	model    string
}

// NewSynthesizer creates a synthesizer
func NewSynthesizer(provider llm.Provider, model string) *Synthesizer {
	return &Synthesizer{
		provider: provider,
		model:    model,
	}
}

// Synthesize produces the optimized prompt for a complete session. The
// completion text comes back as-is: it is opaque natural language and gets
// no post-processing.
func (s *Synthesizer) Synthesize(ctx context.Context, sess *session.Session) (string, error) {
	if !sess.Complete() {
		return "", ErrIncompleteAnswers
	}

	ctx, cancel := context.WithTimeout(ctx, synthesizeTimeout)
	defer cancel()

	resp, err := s.provider.Complete(ctx, llm.NewRequest(s.model, buildSynthesisPrompt(sess)))
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// Refactor rewrites an existing prompt to address the stated reason while
// preserving its intent. Same contract as Synthesize.
func (s *Synthesizer) Refactor(ctx context.Context, original, reason string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, synthesizeTimeout)
	defer cancel()

	resp, err := s.provider.Complete(ctx, llm.NewRequest(s.model, buildRefactorPrompt(original, reason)))
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
