package usecase

import (
	"fmt"
	"strings"

	"lead-qualification-assistant/internal/model"
)

const conversationPromptTemplate = `You are %s, a %s %s agent from %s located in %s.

Your role is to qualify leads through natural conversation. You should:

1. Be warm, helpful, and professional
2. Ask qualifying questions naturally within the conversation
3. Gather information about:
   - Budget/price range
   - Timeline for purchase/decision
   - Specific requirements/preferences  
   - Contact information (if not provided)
   - Decision-making authority

4. Respond in a conversational, human-like manner
5. Keep responses concise (2-3 sentences max)
6. Show genuine interest in helping the lead
7. Avoid being pushy or overly salesy

%s

Current conversation:
%s

Respond as %s:`

const firstInteractionInstruction = "This is the first interaction. Greet the lead warmly and ask how you can help them today."

const classificationPromptTemplate = `Analyze this lead qualification conversation and classify the lead as HOT, COLD, or INVALID.

Business Context: %s business (%s)

Classification Criteria:
- HOT: Shows clear buying intent, has budget/timeline, specific requirements, engaged responses
- COLD: Vague interest, no timeline/budget mentioned, generic responses, just browsing
- INVALID: Spam, test messages, gibberish, unrelated inquiries, rude behavior
%s
Conversation:
%s

Respond with only one word: HOT, COLD, or INVALID`

// buildConversationPrompt renders the agent persona and the transcript as
// "Lead:" and "Agent:" lines.
func buildConversationPrompt(messages []model.Message, profile model.BusinessProfile) string {
	lines := make([]string, len(messages))
	for i, m := range messages {
		speaker := "Agent"
		if m.Sender == model.SenderUser {
			speaker = "Lead"
		}
		lines[i] = speaker + ": " + m.Content
	}

	greeting := ""
	if len(messages) == 0 {
		greeting = firstInteractionInstruction
	}

	return fmt.Sprintf(conversationPromptTemplate,
		profile.AgentName,
		strings.ToLower(profile.ResponseStyle),
		profile.Industry,
		profile.BusinessName,
		profile.Location,
		greeting,
		strings.Join(lines, "\n"),
		profile.AgentName,
	)
}

// buildClassificationPrompt renders the transcript as "<sender>: <content>"
// lines and appends any configured business rules to the fixed criteria.
func buildClassificationPrompt(messages []model.Message, profile model.BusinessProfile, rules model.ClassificationRules) string {
	lines := make([]string, len(messages))
	for i, m := range messages {
		lines[i] = string(m.Sender) + ": " + m.Content
	}

	var custom strings.Builder
	for _, r := range []struct{ label, criteria string }{
		{"HOT", rules.HotCriteria},
		{"COLD", rules.ColdCriteria},
		{"INVALID", rules.InvalidCriteria},
	} {
		if c := strings.TrimSpace(r.criteria); c != "" {
			if custom.Len() == 0 {
				custom.WriteString("\nBusiness Rules:\n")
			}
			fmt.Fprintf(&custom, "- %s: %s\n", r.label, c)
		}
	}

	return fmt.Sprintf(classificationPromptTemplate,
		profile.Industry,
		profile.BusinessName,
		custom.String(),
		strings.Join(lines, "\n"),
	)
}
