package classify

import (
	"regexp"
	"strings"
)

type contextRule struct {
	tag     string
	pattern *regexp.Regexp
}

var contextRules = []contextRule{
	{"beginner-friendly", words("beginner", "new", "start", "basic", "simple")},
	{"advanced", words("advanced", "expert", "complex", "detailed", "comprehensive")},
	{"concise", words("quick", "fast", "brief", "short", "summary")},
	{"comprehensive", words("detailed", "thorough", "complete", "extensive", "in-depth")},
	{"time-sensitive", words("urgent", "asap", "quickly", "immediate", "deadline")},
	{"creative", words("creative", "innovative", "unique", "original", "artistic")},
	{"professional", words("professional", "formal", "business", "corporate")},
	{"casual", words("casual", "informal", "friendly", "conversational")},
}

// AnalyzeContext scans input for secondary descriptive tags (tone, urgency,
// expertise hints) layered on top of the primary content type. The tags only
// enrich the text sent to the model; they never change classification.
func AnalyzeContext(input string) []string {
	lower := strings.ToLower(input)

	var tags []string
	for _, r := range contextRules {
		if r.pattern.MatchString(lower) {
			tags = append(tags, r.tag)
		}
	}
	return tags
}

// ContextSummary joins context tags for embedding into a prompt, with a
// generic placeholder when nothing matched.
func ContextSummary(input string) string {
	tags := AnalyzeContext(input)
	if len(tags) == 0 {
		return "general purpose"
	}
	return strings.Join(tags, ", ")
}
