package classify

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ContentType
	}{
		{
			name:  "marketing keyword",
			input: "I want to write a product description for my eco-friendly water bottle",
			want:  MarketingBusiness,
		},
		{
			name:  "technical keyword",
			input: "a tutorial on sorting algorithms",
			want:  TechnicalEducational,
		},
		{
			name:  "creative keyword",
			input: "a short story about a lighthouse keeper",
			want:  CreativeStorytelling,
		},
		{
			name:  "professional keyword",
			input: "prepare a meeting agenda",
			want:  ProfessionalCommunication,
		},
		{
			name:  "social media keyword",
			input: "an instagram caption for my bakery",
			want:  SocialMediaDigital,
		},
		{
			name:  "research keyword",
			input: "a survey of recent findings",
			want:  ResearchAnalytical,
		},
		{
			name:  "no keyword falls back to general",
			input: "something nice for my grandmother",
			want:  General,
		},
		{
			name:  "earlier table entry wins on multi-category input",
			input: "a marketing story for our launch",
			want:  MarketingBusiness,
		},
		{
			name:  "whole word match only",
			input: "a postscript about nothing in particular",
			want:  General,
		},
		{
			name:  "case insensitive",
			input: "MARKETING CAMPAIGN IDEAS",
			want:  MarketingBusiness,
		},
		{
			name:  "empty input",
			input: "",
			want:  General,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.input)
			if got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectIsIdempotent(t *testing.T) {
	input := "a campaign for a new product"
	first := Detect(input)
	second := Detect(input)
	if first != second {
		t.Errorf("Detect is not idempotent: %v then %v", first, second)
	}
}

func TestAnalyzeContext(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single tag",
			input: "a simple explanation of compound interest",
			want:  []string{"beginner-friendly"},
		},
		{
			name:  "multiple tags in rule order",
			input: "a detailed but casual walkthrough, needed asap",
			want:  []string{"advanced", "comprehensive", "time-sensitive", "casual"},
		},
		{
			name:  "no tags",
			input: "water bottles",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeContext(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("AnalyzeContext(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("tag %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestContextSummary(t *testing.T) {
	if got := ContextSummary("water bottles"); got != "general purpose" {
		t.Errorf("ContextSummary with no tags = %q, want %q", got, "general purpose")
	}
	if got := ContextSummary("a quick professional note"); got != "concise, professional" {
		t.Errorf("ContextSummary = %q, want %q", got, "concise, professional")
	}
}
