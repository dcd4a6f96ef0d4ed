package generate

import (
	"encoding/json"
	"strings"

	"github.com/promptgenie/genie/internal/question"
)

// wireQuestion is the JSON schema the model is instructed to return.
type wireQuestion struct {
	Question        string   `json:"question"`
	Type            string   `json:"type"`
	Category        string   `json:"category"`
	Priority        string   `json:"priority"`
	Options         []string `json:"options"`
	Description     string   `json:"description"`
	Placeholder     string   `json:"placeholder"`
	Min             *int     `json:"min"`
	Max             *int     `json:"max"`
	Default         *int     `json:"default"`
	CheckboxOptions []string `json:"checkboxOptions"`
}

// parseResult is the outcome of decoding a completion into questions.
// Malformed is a signal, not an error: the caller degrades to the static
// bank instead of surfacing anything.
type parseResult struct {
	Questions []question.Question
	Malformed bool
}

var malformed = parseResult{Malformed: true}

// parseQuestions decodes the completion text into validated questions. Any
// shape problem (not JSON, not an array, entries missing the mandatory
// question/type/description fields, choice questions without options)
// yields Malformed. A missing category is coerced to "General", a priority
// outside the known set to medium.
func parseQuestions(raw string) parseResult {
	jsonStr := stripFences(strings.TrimSpace(raw))

	var wire []wireQuestion
	if err := json.Unmarshal([]byte(jsonStr), &wire); err != nil {
		return malformed
	}
	if len(wire) == 0 {
		return malformed
	}

	qs := make([]question.Question, 0, len(wire))
	for _, w := range wire {
		if w.Question == "" || w.Type == "" || w.Description == "" {
			return malformed
		}

		category := w.Category
		if category == "" {
			category = "General"
		}

		q := question.Question{
			Text:      w.Question,
			Category:  category,
			Priority:  question.Priority(w.Priority).Normalize(),
			Rationale: w.Description,
		}

		switch w.Type {
		case "multiple_choice":
			q.Kind = question.SingleChoice
			q.Choices = w.Options
		case "text_input":
			q.Kind = question.FreeText
			q.Placeholder = w.Placeholder
		case "range_slider":
			q.Kind = question.NumericRange
			q.RangeMin = intOr(w.Min, question.DefaultRangeMin)
			q.RangeMax = intOr(w.Max, question.DefaultRangeMax)
			q.RangeDefault = intOr(w.Default, question.DefaultRangeDefault)
		case "checkbox_multiple":
			q.Kind = question.MultiChoice
			q.MultiChoices = w.CheckboxOptions
		default:
			return malformed
		}

		if !q.Valid() {
			return malformed
		}
		qs = append(qs, q)
	}

	return parseResult{Questions: qs}
}

// stripFences removes a leading/trailing markdown code fence and nothing
// else. Models often wrap JSON in a fenced block despite instructions.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line ("```" or "```json").
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	} else {
		return strings.TrimPrefix(s, "```")
	}

	s = strings.TrimRight(s, " \n")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimRight(s, " \n")
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
