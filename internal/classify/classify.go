package classify

import (
	"regexp"
	"strings"
)

// ContentType is the inferred category of a user's idea. It drives which
// question set and synthesis specialization are used.
type ContentType string

const (
	MarketingBusiness         ContentType = "marketing_business"
	CreativeStorytelling      ContentType = "creative_storytelling"
	TechnicalEducational      ContentType = "technical_educational"
	ProfessionalCommunication ContentType = "professional_communication"
	SocialMediaDigital        ContentType = "social_media_digital"
	ResearchAnalytical        ContentType = "research_analytical"
	General                   ContentType = "general"
)

// Label returns a human-readable form ("marketing business").
func (t ContentType) Label() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

type rule struct {
	contentType ContentType
	pattern     *regexp.Regexp
}

// Table order encodes priority: the first matching rule wins, so an input
// mentioning both "marketing" and "story" classifies as marketing_business.
var rules = []rule{
	{MarketingBusiness, words("product", "marketing", "sales", "email", "campaign", "advertisement", "promotion", "brand", "customer")},
	{CreativeStorytelling, words("story", "novel", "character", "plot", "creative", "fiction", "narrative", "poem", "script")},
	{TechnicalEducational, words("tutorial", "guide", "documentation", "technical", "code", "programming", "learning", "course", "lesson")},
	{ProfessionalCommunication, words("professional", "business", "meeting", "presentation", "report", "proposal", "memo", "corporate")},
	{SocialMediaDigital, words("social media", "instagram", "twitter", "facebook", "linkedin", "post", "content", "digital", "online")},
	{ResearchAnalytical, words("research", "analysis", "study", "data", "survey", "report", "findings", "methodology")},
}

func words(ws ...string) *regexp.Regexp {
	return regexp.MustCompile(`\b(` + strings.Join(ws, "|") + `)\b`)
}

// Detect maps free-text input to a ContentType. It is a pure function and
// never fails; input matching no rule returns General.
func Detect(input string) ContentType {
	lower := strings.ToLower(input)
	for _, r := range rules {
		if r.pattern.MatchString(lower) {
			return r.contentType
		}
	}
	return General
}

// Types lists every content type in table order, General last.
func Types() []ContentType {
	return []ContentType{
		MarketingBusiness,
		CreativeStorytelling,
		TechnicalEducational,
		ProfessionalCommunication,
		SocialMediaDigital,
		ResearchAnalytical,
		General,
	}
}
