package generate

import (
	"fmt"

	"github.com/promptgenie/genie/internal/classify"
)

const questionPromptTemplate = `Analyze this user input and generate 7-9 highly relevant questions to help create an optimized AI prompt.

User Input: "%s"
Detected Content Type: %s
Context Analysis: %s

Based on the content type and context, generate specialized questions from these categories:

CORE CATEGORIES (always include 2-3):
- Target Audience & Context
- Tone & Style Preferences
- Content Structure & Format

SPECIALIZED CATEGORIES (choose 4-6 based on content type):

For MARKETING/BUSINESS content:
- Brand Voice & Messaging
- Call-to-Action & Conversion Goals
- Competitive Positioning
- Customer Pain Points & Benefits

For CREATIVE/STORYTELLING content:
- Genre & Literary Style
- Character Development & Perspective
- Setting & World-building
- Narrative Structure & Pacing

For TECHNICAL/EDUCATIONAL content:
- Technical Complexity Level
- Learning Objectives & Outcomes
- Prerequisites & Background Knowledge
- Examples & Practical Applications

For PROFESSIONAL/COMMUNICATION content:
- Professional Context & Hierarchy
- Communication Objectives
- Formality Level & Protocol
- Action Items & Next Steps

For SOCIAL MEDIA/DIGITAL content:
- Platform-Specific Requirements
- Engagement & Interaction Goals
- Visual Elements & Media
- Hashtags & SEO Considerations

For RESEARCH/ANALYTICAL content:
- Research Methodology & Sources
- Data Analysis & Interpretation
- Scope & Limitations
- Conclusions & Recommendations

Return ONLY a valid JSON array where each question object has:
- "question": the question text
- "type": "multiple_choice", "text_input", "range_slider", or "checkbox_multiple"
- "category": category name
- "priority": "high", "medium", or "low"
- "options": array of options (for multiple_choice only)
- "description": one sentence on why this question matters
- "placeholder": hint text (for text_input only)
- "min": 1, "max": 10, "default": 5 (for range_slider only)
- "checkboxOptions": array of options (for checkbox_multiple only)

Ensure questions are:
1. Highly specific to the detected content type
2. Progressive (building on each other)
3. Actionable (leading to concrete prompt improvements)
4. Varied in question types for better UX`

func buildQuestionPrompt(input string, contentType classify.ContentType, contextSummary string) string {
	return fmt.Sprintf(questionPromptTemplate, input, contentType, contextSummary)
}
