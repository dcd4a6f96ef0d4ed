package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/promptgenie/genie/internal/classify"
	"github.com/promptgenie/genie/internal/llm"
	"github.com/promptgenie/genie/internal/question"
)

// fakeProvider returns a canned completion or error.
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

func TestGenerateUpstreamErrorPropagates(t *testing.T) {
	upstream := &llm.UpstreamError{Kind: llm.KindRateLimited, Status: 429, Message: "rate limit exceeded, try again later"}
	g := NewGenerator(&fakeProvider{err: upstream}, "")

	_, err := g.Generate(context.Background(), "a marketing campaign")
	if err == nil {
		t.Fatal("expected error")
	}
	var ue *llm.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("error %v is not an UpstreamError", err)
	}
	if ue.Kind != llm.KindRateLimited {
		t.Errorf("kind = %v, want rate limited", ue.Kind)
	}
}

func TestGenerateMalformedFallsBack(t *testing.T) {
	for _, content := range []string{
		"I'm sorry, I can't produce JSON today.",
		`{"not": "an array"}`,
		`[{"question":"x","type":"text_input","category":"A"}]`, // missing description
	} {
		g := NewGenerator(&fakeProvider{content: content}, "")

		res, err := g.Generate(context.Background(), "a marketing campaign for a new product")
		if err != nil {
			t.Fatalf("malformed completion surfaced an error: %v", err)
		}
		if !res.FromFallback {
			t.Error("FromFallback not set")
		}
		if res.ContentType != classify.MarketingBusiness {
			t.Errorf("content type = %v, want marketing_business", res.ContentType)
		}

		want := question.Fallback(classify.MarketingBusiness)
		if len(res.Questions) != len(want) {
			t.Fatalf("got %d questions, want the %d fallback questions", len(res.Questions), len(want))
		}
		if res.Questions[0].Text != want[0].Text {
			t.Errorf("first question = %q, want %q", res.Questions[0].Text, want[0].Text)
		}
	}
}

func TestGeneratePromptEmbedsClassification(t *testing.T) {
	fp := &fakeProvider{content: "not json"}
	g := NewGenerator(fp, "")

	input := "a quick tutorial on goroutines"
	if _, err := g.Generate(context.Background(), input); err != nil {
		t.Fatal(err)
	}
	if len(fp.prompts) != 1 {
		t.Fatalf("sent %d completion requests, want 1", len(fp.prompts))
	}
	prompt := fp.prompts[0]
	for _, needle := range []string{input, "technical_educational", "concise"} {
		if !strings.Contains(prompt, needle) {
			t.Errorf("instruction prompt does not mention %q", needle)
		}
	}
}

func TestEnhancePadsAndSorts(t *testing.T) {
	parsed := []question.Question{
		{Text: "low one", Kind: question.FreeText, Category: "A", Priority: question.Low, Rationale: "r"},
		{Text: "high one", Kind: question.FreeText, Category: "A", Priority: question.High, Rationale: "r"},
		// Duplicate of a fallback question; must not be padded twice.
		{Text: "What is your primary marketing objective?", Kind: question.FreeText, Category: "A", Priority: question.Medium, Rationale: "r"},
	}
	fallback := question.Fallback(classify.MarketingBusiness)

	got := enhance(parsed, fallback)

	if len(got) != 8 {
		t.Fatalf("enhanced list has %d questions, want 8", len(got))
	}

	texts := map[string]int{}
	for _, q := range got {
		texts[q.Text]++
	}
	if texts["What is your primary marketing objective?"] != 1 {
		t.Error("duplicate question text padded into the list")
	}

	for i := 1; i < len(got); i++ {
		if got[i-1].Priority.Weight() < got[i].Priority.Weight() {
			t.Fatalf("questions not sorted by descending priority at %d", i)
		}
	}

	// Stable: among the high-priority entries, the parsed "high one" comes
	// before any padded high-priority fallback question.
	for _, q := range got {
		if q.Priority == question.High {
			if q.Text != "high one" {
				t.Errorf("first high-priority question = %q, want parsed question first", q.Text)
			}
			break
		}
	}
}

func TestEnhanceLeavesLongListsUnpadded(t *testing.T) {
	var parsed []question.Question
	for _, text := range []string{"a", "b", "c", "d", "e", "f"} {
		parsed = append(parsed, question.Question{
			Text: text, Kind: question.FreeText, Category: "X",
			Priority: question.Medium, Rationale: "r",
		})
	}

	got := enhance(parsed, question.Fallback(classify.General))
	if len(got) != 6 {
		t.Errorf("six parsed questions padded to %d, want 6 untouched", len(got))
	}
	for i, q := range got {
		if q.Text != parsed[i].Text {
			t.Errorf("stable sort reordered equal priorities at %d", i)
		}
	}
}
