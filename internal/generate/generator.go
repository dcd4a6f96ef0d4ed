package generate

import (
	"context"
	"sort"
	"time"

	"github.com/promptgenie/genie/internal/classify"
	"github.com/promptgenie/genie/internal/llm"
	"github.com/promptgenie/genie/internal/question"
)

const (
	// Parsed lists shorter than minQuestions are padded from the static
	// bank up to padTarget entries.
	minQuestions = 6
	padTarget    = 8

	generateTimeout = 30 * time.Second
)

// Generator produces the per-idea question set: remotely when the model
// cooperates, from the static bank when it does not.
type Generator struct {
	provider llm.Provider
	model    string
}

// NewGenerator creates a question generator
func NewGenerator(provider llm.Provider, model string) *Generator {
	return &Generator{
		provider: provider,
		model:    model,
	}
}

// Result is a generated question set with the classification that shaped it.
type Result struct {
	Questions    []question.Question
	ContentType  classify.ContentType
	ContextTags  []string
	FromFallback bool
}

// Generate builds the question set for the user's input. Transport and HTTP
// failures propagate as *llm.UpstreamError; a malformed completion is
// expected and degrades to the static bank for the detected content type.
func (g *Generator) Generate(ctx context.Context, input string) (*Result, error) {
	contentType := classify.Detect(input)
	tags := classify.AnalyzeContext(input)

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	prompt := buildQuestionPrompt(input, contentType, classify.ContextSummary(input))
	resp, err := g.provider.Complete(ctx, llm.NewRequest(g.model, prompt))
	if err != nil {
		return nil, err
	}

	parsed := parseQuestions(resp.Content)
	if parsed.Malformed {
		return &Result{
			Questions:    question.Fallback(contentType),
			ContentType:  contentType,
			ContextTags:  tags,
			FromFallback: true,
		}, nil
	}

	return &Result{
		Questions:   enhance(parsed.Questions, question.Fallback(contentType)),
		ContentType: contentType,
		ContextTags: tags,
	}, nil
}

// enhance pads a short parsed list from the fallback bank (skipping
// duplicates by question text) and orders the result by priority. The sort
// is stable so equal priorities keep their original relative order.
func enhance(qs, fallback []question.Question) []question.Question {
	if len(qs) < minQuestions {
		seen := make(map[string]bool, len(qs))
		for _, q := range qs {
			seen[q.Text] = true
		}
		for _, fb := range fallback {
			if len(qs) >= padTarget {
				break
			}
			if seen[fb.Text] {
				continue
			}
			qs = append(qs, fb)
			seen[fb.Text] = true
		}
	}

	sort.SliceStable(qs, func(i, j int) bool {
		return qs[i].Priority.Weight() > qs[j].Priority.Weight()
	})
	return qs
}
