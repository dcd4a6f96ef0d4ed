// Package hashtag produces display-only hashtag suggestions for an idea.
// The keyword table is independent of the content classifier on purpose: a
// post about "code" should get #tech tags even when the classifier lands on
// a different primary category.
package hashtag

import "strings"

const maxSuggestions = 8

type rule struct {
	keywords []string
	tags     []string
}

var rules = []rule{
	{[]string{"marketing", "business"}, []string{"#marketing", "#business", "#growth", "#strategy", "#branding"}},
	{[]string{"creative", "story"}, []string{"#creative", "#storytelling", "#writing", "#inspiration", "#fiction"}},
	{[]string{"technical", "code"}, []string{"#tech", "#coding", "#programming", "#development", "#tutorial"}},
	{[]string{"social", "media"}, []string{"#socialmedia", "#content", "#engagement", "#digital", "#online"}},
}

// generalTags are always appended after any keyword matches.
var generalTags = []string{"#AI", "#prompt", "#productivity", "#innovation", "#automation"}

// Suggest returns up to 8 deduplicated hashtags for the input. It never
// fails; input matching no keywords still gets the general tags.
func Suggest(input string) []string {
	lower := strings.ToLower(input)

	var tags []string
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, r.tags...)
				break
			}
		}
	}
	tags = append(tags, generalTags...)

	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, maxSuggestions)
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
