package question

// InputKind is the interaction shape a question uses.
type InputKind string

const (
	SingleChoice InputKind = "single_choice"
	FreeText     InputKind = "free_text"
	NumericRange InputKind = "numeric_range"
	MultiChoice  InputKind = "multi_choice"
)

// Priority controls display ordering and emphasis, never correctness.
type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// Weight returns the sort weight of a priority; unknown values rank lowest.
func (p Priority) Weight() int {
	switch p {
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	default:
		return 0
	}
}

// Normalize coerces anything outside the known set to Medium.
func (p Priority) Normalize() Priority {
	switch p {
	case High, Medium, Low:
		return p
	default:
		return Medium
	}
}

// Range defaults used when a numeric_range question omits its bounds.
const (
	DefaultRangeMin     = 1
	DefaultRangeMax     = 10
	DefaultRangeDefault = 5
)

// Question is one clarifying question shown to the user. Only the fields
// required by Kind are meaningful; a Question is never mutated once built.
type Question struct {
	Text      string
	Kind      InputKind
	Category  string
	Priority  Priority
	Rationale string

	// single_choice
	Choices []string

	// multi_choice
	MultiChoices []string

	// numeric_range
	RangeMin     int
	RangeMax     int
	RangeDefault int

	// free_text
	Placeholder string
}

// Valid reports whether the modality-specific fields are populated: choice
// kinds need a non-empty option list, ranges need min <= default <= max.
func (q Question) Valid() bool {
	if q.Text == "" {
		return false
	}
	switch q.Kind {
	case SingleChoice:
		return len(q.Choices) > 0
	case MultiChoice:
		return len(q.MultiChoices) > 0
	case NumericRange:
		return q.RangeMin <= q.RangeDefault && q.RangeDefault <= q.RangeMax
	case FreeText:
		return true
	default:
		return false
	}
}
