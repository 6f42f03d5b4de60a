package memory

import (
	"strings"

	"lead-qualification-assistant/internal/conversation/repository"
	"lead-qualification-assistant/internal/model"
)

// matchHistory applies the list filters. The search term matches the lead
// name and message contents case-insensitively and the phone number verbatim.
func matchHistory(h model.ConversationHistory, opt repository.ListHistoryOptions) bool {
	if opt.Classification != "" && h.Classification != opt.Classification {
		return false
	}
	if opt.Search == "" {
		return true
	}

	term := strings.ToLower(opt.Search)
	if strings.Contains(strings.ToLower(h.LeadName), term) {
		return true
	}
	if h.LeadPhone != "" && strings.Contains(h.LeadPhone, opt.Search) {
		return true
	}
	for _, m := range h.Messages {
		if strings.Contains(strings.ToLower(m.Content), term) {
			return true
		}
	}
	return false
}
