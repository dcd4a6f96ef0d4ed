package synth

import (
	"fmt"
	"strings"

	"github.com/promptgenie/genie/internal/classify"
	"github.com/promptgenie/genie/internal/session"
)

// Per-content-type focus blocks spliced into the synthesis instruction.
var specializations = map[classify.ContentType]string{
	classify.MarketingBusiness: `Focus on creating a marketing-optimized prompt that:
- Clearly defines the target audience and their pain points
- Incorporates brand voice and messaging strategy
- Includes specific call-to-action elements
- Addresses competitive positioning
- Optimizes for conversion goals`,

	classify.CreativeStorytelling: `Focus on creating a creative writing prompt that:
- Establishes clear genre conventions and expectations
- Defines narrative perspective and voice
- Incorporates world-building and setting details
- Addresses character development and conflict
- Considers pacing and story structure`,

	classify.TechnicalEducational: `Focus on creating an educational prompt that:
- Matches the appropriate technical complexity level
- Includes clear learning objectives
- Incorporates practical examples and applications
- Addresses prerequisites and background knowledge
- Structures content for effective learning`,

	classify.ProfessionalCommunication: `Focus on creating a professional communication prompt that:
- Matches appropriate formality and hierarchy levels
- Clearly states communication objectives
- Includes relevant supporting information
- Addresses professional context and protocols
- Optimizes for desired outcomes`,

	classify.SocialMediaDigital: `Focus on creating a social media optimized prompt that:
- Tailors content for specific platform requirements
- Incorporates engagement and interaction goals
- Addresses hashtag and SEO optimization
- Matches platform-appropriate voice and tone
- Considers visual and multimedia elements`,

	classify.ResearchAnalytical: `Focus on creating a research-focused prompt that:
- Defines appropriate research methodology
- Addresses scope and limitations
- Incorporates relevant data sources
- Matches audience expertise level
- Structures for analytical rigor`,

	classify.General: `Focus on creating a well-rounded prompt that:
- States the goal and audience plainly
- Captures the requested tone and level of detail
- Includes every requirement the user named
- Specifies the expected output shape`,
}

func buildSynthesisPrompt(sess *session.Session) string {
	answersText := strings.Join(sess.AnswerLines(), "\n")

	hashtagText := ""
	hashtagClause := ""
	if len(sess.Hashtags) > 0 {
		hashtagText = fmt.Sprintf("\nHashtags to include: %s", strings.Join(sess.Hashtags, " "))
		hashtagClause = "\n7. Includes the specified hashtags appropriately"
	}

	specialization, ok := specializations[sess.ContentType]
	if !ok {
		specialization = specializations[classify.General]
	}

	return fmt.Sprintf(`Create a highly optimized AI prompt based on the user's original idea and their detailed answers to specialized questions.

Original User Input: "%s"
Detected Content Type: %s

Detailed User Responses:
%s%s

%s

Create a comprehensive, well-structured prompt that:
1. Incorporates ALL the user's specific requirements and preferences
2. Uses clear, actionable language that AI models can follow precisely
3. Includes relevant context, constraints, and success criteria
4. Specifies the desired output format and structure
5. Is optimized for getting the best results from modern AI models
6. Addresses the specific needs of the %s content type%s

The final prompt should be detailed enough to produce consistent, high-quality results while being clear and easy to understand.

Return only the optimized prompt, without any explanations or additional text.`,
		sess.Input,
		sess.ContentType,
		answersText,
		hashtagText,
		specialization,
		sess.ContentType.Label(),
		hashtagClause,
	)
}

func buildRefactorPrompt(original, reason string) string {
	return fmt.Sprintf(`Refactor the following AI prompt based on the specified reason and requirements.

Original Prompt:
"%s"

Refactoring Reason:
"%s"

Please refactor the prompt to:
1. Address the specific concerns mentioned in the reason
2. Maintain the core intent and functionality of the original prompt
3. Ensure compliance with AI model privacy policies and content guidelines
4. Make the prompt more effective and appropriate for the intended use case
5. Keep the same level of detail and specificity where appropriate

Return only the refactored prompt, without any explanations or additional text.`,
		original,
		reason,
	)
}
