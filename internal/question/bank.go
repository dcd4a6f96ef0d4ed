package question

import "github.com/promptgenie/genie/internal/classify"

// For returns the static question list for a content type. Unknown types map
// to the general set. The returned slice is shared; callers must not mutate it.
func For(t classify.ContentType) []Question {
	if qs, ok := bank[t]; ok {
		return qs
	}
	return bank[classify.General]
}

// Fallback is the list substituted when remote question generation produces
// unusable output. It is the same table as For, reused under a name that
// states the intent.
func Fallback(t classify.ContentType) []Question {
	return For(t)
}

// Each list mixes input kinds deliberately: choice questions for quick
// decisions, free text for specifics, ranges for "how much" dimensions, and
// multi-choice for "which of these apply".
var bank = map[classify.ContentType][]Question{
	classify.MarketingBusiness: {
		{
			Text:      "What is your primary marketing objective?",
			Kind:      SingleChoice,
			Category:  "Marketing Strategy",
			Priority:  High,
			Choices:   []string{"Increase brand awareness", "Generate leads", "Drive sales", "Build customer loyalty", "Launch new product"},
			Rationale: "Understanding your goal helps tailor the messaging strategy",
		},
		{
			Text:      "Who is your target customer?",
			Kind:      SingleChoice,
			Category:  "Target Audience",
			Priority:  High,
			Choices:   []string{"B2B decision makers", "Young professionals", "Families", "Seniors", "Small business owners", "Enterprise clients"},
			Rationale: "Audience targeting is crucial for effective messaging",
		},
		{
			Text:      "What's your brand personality?",
			Kind:      SingleChoice,
			Category:  "Brand Voice",
			Priority:  Medium,
			Choices:   []string{"Professional & trustworthy", "Fun & energetic", "Innovative & cutting-edge", "Warm & friendly", "Luxury & exclusive"},
			Rationale: "Brand personality shapes how your message is perceived",
		},
		{
			Text:        "What customer pain points does your solution address?",
			Kind:        FreeText,
			Category:    "Value Proposition",
			Priority:    High,
			Placeholder: "e.g., saves time, reduces costs, improves efficiency...",
			Rationale:   "Highlighting pain points creates emotional connection",
		},
		{
			Text:      "What action do you want customers to take?",
			Kind:      SingleChoice,
			Category:  "Call-to-Action",
			Priority:  Medium,
			Choices:   []string{"Visit website", "Schedule demo", "Make purchase", "Sign up for trial", "Contact sales", "Download resource"},
			Rationale: "Clear CTAs improve conversion rates",
		},
		{
			Text:        "How do you differentiate from competitors?",
			Kind:        FreeText,
			Category:    "Competitive Advantage",
			Priority:    Medium,
			Placeholder: "e.g., unique features, better pricing, superior service...",
			Rationale:   "Differentiation helps you stand out in the market",
		},
	},

	classify.CreativeStorytelling: {
		{
			Text:      "What genre best describes your story?",
			Kind:      SingleChoice,
			Category:  "Genre & Style",
			Priority:  High,
			Choices:   []string{"Fantasy", "Science Fiction", "Mystery/Thriller", "Romance", "Literary Fiction", "Historical Fiction", "Horror", "Adventure"},
			Rationale: "Genre determines reader expectations and narrative conventions",
		},
		{
			Text:      "From whose perspective should the story be told?",
			Kind:      SingleChoice,
			Category:  "Narrative Perspective",
			Priority:  High,
			Choices:   []string{"First person (I/me)", "Third person limited", "Third person omniscient", "Multiple perspectives", "Second person (you)"},
			Rationale: "Perspective affects reader connection and story intimacy",
		},
		{
			Text:      "What's the central conflict or tension?",
			Kind:      SingleChoice,
			Category:  "Plot Structure",
			Priority:  High,
			Choices:   []string{"Person vs. person", "Person vs. nature", "Person vs. society", "Person vs. self", "Person vs. technology", "Person vs. supernatural"},
			Rationale: "Conflict drives narrative tension and character development",
		},
		{
			Text:        "Describe the setting and time period",
			Kind:        FreeText,
			Category:    "World-building",
			Priority:    Medium,
			Placeholder: "e.g., modern-day New York, medieval fantasy realm, distant future...",
			Rationale:   "Setting creates atmosphere and influences plot possibilities",
		},
		{
			Text:      "What tone should the story have?",
			Kind:      SingleChoice,
			Category:  "Literary Style",
			Priority:  Medium,
			Choices:   []string{"Dark & serious", "Light & humorous", "Mysterious & suspenseful", "Romantic & emotional", "Action-packed & thrilling", "Thoughtful & introspective"},
			Rationale: "Tone affects reader emotional experience",
		},
		{
			Text:         "How complex should the character development be?",
			Kind:         NumericRange,
			Category:     "Character Development",
			Priority:     Medium,
			RangeMin:     1,
			RangeMax:     10,
			RangeDefault: 5,
			Rationale:    "Character complexity affects story depth and reader engagement",
		},
	},

	classify.TechnicalEducational: {
		{
			Text:      "What's the technical skill level of your audience?",
			Kind:      SingleChoice,
			Category:  "Audience Level",
			Priority:  High,
			Choices:   []string{"Complete beginner", "Some experience", "Intermediate", "Advanced", "Expert level"},
			Rationale: "Skill level determines appropriate complexity and terminology",
		},
		{
			Text:      "What's the primary learning objective?",
			Kind:      SingleChoice,
			Category:  "Learning Goals",
			Priority:  High,
			Choices:   []string{"Understand concepts", "Learn practical skills", "Solve specific problems", "Pass certification", "Build projects", "Troubleshoot issues"},
			Rationale: "Clear objectives help structure effective learning content",
		},
		{
			Text:      "How should the content be structured?",
			Kind:      SingleChoice,
			Category:  "Content Structure",
			Priority:  Medium,
			Choices:   []string{"Step-by-step tutorial", "Conceptual explanation", "Problem-solution format", "FAQ style", "Case study approach", "Reference guide"},
			Rationale: "Structure affects learning effectiveness and user experience",
		},
		{
			Text:        "What prerequisites should learners have?",
			Kind:        FreeText,
			Category:    "Prerequisites",
			Priority:    Medium,
			Placeholder: "e.g., basic programming knowledge, familiarity with tools...",
			Rationale:   "Prerequisites help set appropriate expectations",
		},
		{
			Text:         "Should practical examples be included?",
			Kind:         MultiChoice,
			Category:     "Examples & Practice",
			Priority:     Medium,
			MultiChoices: []string{"Code examples", "Real-world scenarios", "Hands-on exercises", "Common mistakes", "Best practices", "Troubleshooting tips"},
			Rationale:    "Examples make abstract concepts concrete and actionable",
		},
		{
			Text:        "What tools or technologies are involved?",
			Kind:        FreeText,
			Category:    "Technical Context",
			Priority:    Low,
			Placeholder: "e.g., Python, React, AWS, specific software...",
			Rationale:   "Tool-specific guidance improves practical applicability",
		},
	},

	classify.ProfessionalCommunication: {
		{
			Text:      "What's the professional context?",
			Kind:      SingleChoice,
			Category:  "Professional Context",
			Priority:  High,
			Choices:   []string{"Internal team communication", "Client communication", "Executive presentation", "Vendor negotiation", "Performance review", "Project update"},
			Rationale: "Context determines appropriate tone and content focus",
		},
		{
			Text:      "What's your relationship to the audience?",
			Kind:      SingleChoice,
			Category:  "Professional Hierarchy",
			Priority:  High,
			Choices:   []string{"Reporting to superior", "Communicating with peers", "Leading subordinates", "External stakeholders", "Cross-functional teams"},
			Rationale: "Relationship affects communication style and approach",
		},
		{
			Text:      "What's the desired outcome?",
			Kind:      SingleChoice,
			Category:  "Communication Objectives",
			Priority:  High,
			Choices:   []string{"Get approval/buy-in", "Provide status update", "Request resources", "Resolve conflict", "Share information", "Make recommendation"},
			Rationale: "Clear outcomes help structure persuasive communication",
		},
		{
			Text:         "How formal should the communication be?",
			Kind:         NumericRange,
			Category:     "Formality Level",
			Priority:     Medium,
			RangeMin:     1,
			RangeMax:     10,
			RangeDefault: 6,
			Rationale:    "Formality level should match organizational culture and context",
		},
		{
			Text:         "What supporting information should be included?",
			Kind:         MultiChoice,
			Category:     "Supporting Elements",
			Priority:     Medium,
			MultiChoices: []string{"Data and metrics", "Timeline/deadlines", "Budget information", "Risk assessment", "Next steps", "Background context"},
			Rationale:    "Supporting information strengthens your message",
		},
		{
			Text:        "What key points must be covered?",
			Kind:        FreeText,
			Category:    "Core Message",
			Priority:    Medium,
			Placeholder: "e.g., project is on schedule, budget needs review...",
			Rationale:   "Naming the non-negotiable points keeps the message focused",
		},
	},

	classify.SocialMediaDigital: {
		{
			Text:      "Which platform is this content for?",
			Kind:      SingleChoice,
			Category:  "Platform Targeting",
			Priority:  High,
			Choices:   []string{"Instagram", "Twitter/X", "LinkedIn", "Facebook", "TikTok", "YouTube", "Pinterest", "Multiple platforms"},
			Rationale: "Each platform has unique audience expectations and formats",
		},
		{
			Text:      "What's your primary engagement goal?",
			Kind:      SingleChoice,
			Category:  "Engagement Strategy",
			Priority:  High,
			Choices:   []string{"Increase followers", "Drive website traffic", "Generate comments/discussion", "Boost shares/retweets", "Build brand awareness", "Drive sales"},
			Rationale: "Engagement goals shape content strategy and messaging",
		},
		{
			Text:         "What content format works best?",
			Kind:         MultiChoice,
			Category:     "Content Format",
			Priority:     Medium,
			MultiChoices: []string{"Short-form text", "Long-form caption", "Visual storytelling", "Video content", "User-generated content", "Behind-the-scenes"},
			Rationale:    "Format affects audience engagement and platform algorithm performance",
		},
		{
			Text:      "Should hashtags and SEO be optimized?",
			Kind:      SingleChoice,
			Category:  "Discoverability",
			Priority:  Medium,
			Choices:   []string{"Yes, include trending hashtags", "Yes, use niche-specific tags", "Minimal hashtag use", "Focus on SEO keywords", "No optimization needed"},
			Rationale: "Optimization improves content discoverability",
		},
		{
			Text:      "What's your brand voice on social media?",
			Kind:      SingleChoice,
			Category:  "Social Media Voice",
			Priority:  Medium,
			Choices:   []string{"Professional & informative", "Casual & conversational", "Humorous & entertaining", "Inspirational & motivational", "Trendy & current"},
			Rationale: "Consistent voice builds brand recognition and audience connection",
		},
		{
			Text:        "What's the core message or story behind this content?",
			Kind:        FreeText,
			Category:    "Core Message",
			Priority:    Medium,
			Placeholder: "e.g., product launch, community milestone, seasonal campaign...",
			Rationale:   "A clear core message keeps posts from feeling generic",
		},
	},

	classify.ResearchAnalytical: {
		{
			Text:      "What type of research approach is needed?",
			Kind:      SingleChoice,
			Category:  "Research Methodology",
			Priority:  High,
			Choices:   []string{"Quantitative analysis", "Qualitative research", "Mixed methods", "Literature review", "Case study", "Experimental design"},
			Rationale: "Research approach determines data collection and analysis methods",
		},
		{
			Text:      "What's the scope of your research?",
			Kind:      SingleChoice,
			Category:  "Research Scope",
			Priority:  High,
			Choices:   []string{"Exploratory study", "Descriptive analysis", "Comparative study", "Longitudinal research", "Cross-sectional analysis", "Meta-analysis"},
			Rationale: "Scope defines the breadth and depth of investigation",
		},
		{
			Text:      "Who is the target audience for findings?",
			Kind:      SingleChoice,
			Category:  "Audience & Application",
			Priority:  Medium,
			Choices:   []string{"Academic community", "Business stakeholders", "Policy makers", "General public", "Industry professionals", "Research peers"},
			Rationale: "Audience determines presentation style and technical depth",
		},
		{
			Text:         "What data sources should be considered?",
			Kind:         MultiChoice,
			Category:     "Data Sources",
			Priority:     Medium,
			MultiChoices: []string{"Primary data collection", "Secondary data analysis", "Published research", "Industry reports", "Survey data", "Interview data"},
			Rationale:    "Data sources affect research credibility and comprehensiveness",
		},
		{
			Text:        "What are the key limitations to acknowledge?",
			Kind:        FreeText,
			Category:    "Research Limitations",
			Priority:    Low,
			Placeholder: "e.g., sample size, time constraints, access to data...",
			Rationale:   "Acknowledging limitations demonstrates research integrity",
		},
	},

	classify.General: {
		{
			Text:      "Who is your target audience?",
			Kind:      SingleChoice,
			Category:  "Audience",
			Priority:  High,
			Choices:   []string{"Beginners", "Intermediate users", "Advanced users", "General audience"},
			Rationale: "Understanding your audience helps tailor the content appropriately",
		},
		{
			Text:      "What tone should the AI use?",
			Kind:      SingleChoice,
			Category:  "Style",
			Priority:  High,
			Choices:   []string{"Professional", "Casual", "Friendly", "Formal", "Creative"},
			Rationale: "The tone affects how your content will be perceived",
		},
		{
			Text:         "How detailed should the output be?",
			Kind:         NumericRange,
			Category:     "Detail Level",
			Priority:     Medium,
			RangeMin:     1,
			RangeMax:     10,
			RangeDefault: 5,
			Rationale:    "Detail level affects content depth and comprehensiveness",
		},
		{
			Text:         "Which elements should the output include?",
			Kind:         MultiChoice,
			Category:     "Content Elements",
			Priority:     Medium,
			MultiChoices: []string{"Examples", "Step-by-step structure", "Summary", "Sources or references", "Action items"},
			Rationale:    "Naming the expected elements makes the output predictable",
		},
		{
			Text:        "What specific requirements do you have?",
			Kind:        FreeText,
			Category:    "Requirements",
			Priority:    Medium,
			Placeholder: "Enter specific requirements...",
			Rationale:   "Additional requirements help create more targeted content",
		},
	},
}
