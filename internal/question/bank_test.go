package question

import (
	"testing"

	"github.com/promptgenie/genie/internal/classify"
)

func TestForReturnsValidQuestionsForEveryType(t *testing.T) {
	for _, ct := range classify.Types() {
		t.Run(string(ct), func(t *testing.T) {
			qs := For(ct)
			if len(qs) < 5 || len(qs) > 6 {
				t.Errorf("For(%s) returned %d questions, want 5-6", ct, len(qs))
			}

			kinds := map[InputKind]bool{}
			for i, q := range qs {
				if !q.Valid() {
					t.Errorf("For(%s)[%d] %q is not valid", ct, i, q.Text)
				}
				if q.Category == "" {
					t.Errorf("For(%s)[%d] has no category", ct, i)
				}
				if q.Rationale == "" {
					t.Errorf("For(%s)[%d] has no rationale", ct, i)
				}
				kinds[q.Kind] = true
			}

			// Every list mixes kinds: at least one choice and one free-text.
			if !kinds[SingleChoice] {
				t.Errorf("For(%s) has no single_choice question", ct)
			}
			if !kinds[FreeText] {
				t.Errorf("For(%s) has no free_text question", ct)
			}
		})
	}
}

func TestForUnknownTypeMapsToGeneral(t *testing.T) {
	qs := For(classify.ContentType("made_up_type"))
	general := For(classify.General)
	if len(qs) != len(general) {
		t.Fatalf("unknown type returned %d questions, general has %d", len(qs), len(general))
	}
	if qs[0].Text != general[0].Text {
		t.Errorf("unknown type first question = %q, want %q", qs[0].Text, general[0].Text)
	}
}

func TestMarketingBankShape(t *testing.T) {
	qs := For(classify.MarketingBusiness)
	if len(qs) != 6 {
		t.Fatalf("marketing bank has %d questions, want 6", len(qs))
	}

	first := qs[0]
	if first.Kind != SingleChoice {
		t.Errorf("first marketing question kind = %s, want %s", first.Kind, SingleChoice)
	}
	if first.Text != "What is your primary marketing objective?" {
		t.Errorf("first marketing question = %q", first.Text)
	}
	if len(first.Choices) != 5 {
		t.Errorf("first marketing question has %d choices, want 5", len(first.Choices))
	}
}

func TestFallbackIsSameTable(t *testing.T) {
	for _, ct := range classify.Types() {
		qs := For(ct)
		fb := Fallback(ct)
		if len(qs) != len(fb) || qs[0].Text != fb[0].Text {
			t.Errorf("Fallback(%s) differs from For(%s)", ct, ct)
		}
	}
}

func TestPriorityWeightOrdering(t *testing.T) {
	if !(High.Weight() > Medium.Weight() && Medium.Weight() > Low.Weight()) {
		t.Error("priority weights are not strictly decreasing high > medium > low")
	}
	if Priority("urgent").Weight() != 0 {
		t.Error("unknown priority should rank below low")
	}
}

func TestPriorityNormalize(t *testing.T) {
	tests := []struct {
		in   Priority
		want Priority
	}{
		{High, High},
		{Medium, Medium},
		{Low, Low},
		{Priority("critical"), Medium},
		{Priority(""), Medium},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuestionValid(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want bool
	}{
		{"choice with options", Question{Text: "q", Kind: SingleChoice, Choices: []string{"a"}}, true},
		{"choice without options", Question{Text: "q", Kind: SingleChoice}, false},
		{"multi without options", Question{Text: "q", Kind: MultiChoice}, false},
		{"range in order", Question{Text: "q", Kind: NumericRange, RangeMin: 1, RangeMax: 10, RangeDefault: 5}, true},
		{"range default out of bounds", Question{Text: "q", Kind: NumericRange, RangeMin: 1, RangeMax: 10, RangeDefault: 12}, false},
		{"free text", Question{Text: "q", Kind: FreeText}, true},
		{"empty text", Question{Kind: FreeText}, false},
		{"unknown kind", Question{Text: "q", Kind: InputKind("dropdown")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
