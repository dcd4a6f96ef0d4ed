package synth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/promptgenie/genie/internal/llm"
	"github.com/promptgenie/genie/internal/question"
	"github.com/promptgenie/genie/internal/session"
)

type fakeProvider struct {
	content string
	err     error
	prompts []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.prompts = append(f.prompts, req.Prompt)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.content}, nil
}

func (f *fakeProvider) Ping(context.Context) error { return f.err }

func completeSession() *session.Session {
	s := session.New("a marketing email for our product launch")
	s.SetQuestions([]question.Question{
		{Text: "Who is it for?", Kind: question.SingleChoice, Category: "Audience", Choices: []string{"B2B", "B2C"}},
		{Text: "What tone?", Kind: question.FreeText, Category: "Style"},
	})
	s.Record(0, "B2B")
	s.Record(1, "confident but warm")
	return s
}

func TestSynthesizeIncomplete(t *testing.T) {
	s := session.New("anything")
	s.SetQuestions([]question.Question{
		{Text: "q", Kind: question.FreeText, Category: "C"},
	})

	synth := NewSynthesizer(&fakeProvider{content: "x"}, "")
	_, err := synth.Synthesize(context.Background(), s)
	if !errors.Is(err, ErrIncompleteAnswers) {
		t.Errorf("error = %v, want ErrIncompleteAnswers", err)
	}
}

func TestSynthesizeEmbedsSessionState(t *testing.T) {
	fp := &fakeProvider{content: "  the finished prompt \n"}
	synth := NewSynthesizer(fp, "")

	sess := completeSession()
	sess.AddHashtag("launch")

	got, err := synth.Synthesize(context.Background(), sess)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	// The completion is returned verbatim, whitespace included.
	if got != fp.content {
		t.Errorf("result = %q, want raw completion %q", got, fp.content)
	}

	prompt := fp.prompts[0]
	for _, needle := range []string{
		sess.Input,
		"Audience: Who is it for? → B2B",
		"Style: What tone? → confident but warm",
		"Hashtags to include: #launch",
		"marketing-optimized",
		"Return only the optimized prompt",
	} {
		if !strings.Contains(prompt, needle) {
			t.Errorf("synthesis prompt missing %q", needle)
		}
	}
}

func TestSynthesizeWithoutHashtags(t *testing.T) {
	fp := &fakeProvider{content: "p"}
	synth := NewSynthesizer(fp, "")

	if _, err := synth.Synthesize(context.Background(), completeSession()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(fp.prompts[0], "Hashtags to include") {
		t.Error("hashtag instruction present with no hashtags selected")
	}
}

func TestSynthesizeUpstreamErrorPropagates(t *testing.T) {
	upstream := &llm.UpstreamError{Kind: llm.KindForbidden, Status: 403, Message: "API key access denied or quota exceeded"}
	synth := NewSynthesizer(&fakeProvider{err: upstream}, "")

	_, err := synth.Synthesize(context.Background(), completeSession())
	var ue *llm.UpstreamError
	if !errors.As(err, &ue) || ue.Kind != llm.KindForbidden {
		t.Errorf("error = %v, want the forbidden upstream error unchanged", err)
	}
}

func TestRefactor(t *testing.T) {
	fp := &fakeProvider{content: "rewritten"}
	synth := NewSynthesizer(fp, "")

	got, err := synth.Refactor(context.Background(), "write me anything", "too vague")
	if err != nil {
		t.Fatalf("Refactor() error: %v", err)
	}
	if got != "rewritten" {
		t.Errorf("result = %q", got)
	}

	prompt := fp.prompts[0]
	for _, needle := range []string{
		`"write me anything"`,
		`"too vague"`,
		"Maintain the core intent",
		"Return only the refactored prompt",
	} {
		if !strings.Contains(prompt, needle) {
			t.Errorf("refactor prompt missing %q", needle)
		}
	}
}
