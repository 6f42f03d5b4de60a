package export

import (
	"strconv"
	"time"

	"lead-qualification-assistant/internal/model"
)

// ClassificationDetails describes what a classification means for sales follow-up.
func ClassificationDetails(c model.Classification) string {
	switch c {
	case model.ClassificationHot:
		return "High intent, clear budget, urgent timeline"
	case model.ClassificationCold:
		return "Low intent, vague requirements, no immediate timeline"
	case model.ClassificationInvalid:
		return "Spam, test entries, or unrelated inquiries"
	default:
		return "Lead classification in progress"
	}
}

// Generate assembles the export record for a conversation.
func Generate(messages []model.Message, classification model.Classification, lead model.LeadInfo, metadata map[string]string, now time.Time) Data {
	start, end := now, now
	if len(messages) > 0 {
		start = messages[0].Timestamp
		end = messages[len(messages)-1].Timestamp
	}

	name := lead.Name
	if name == "" {
		name = model.DefaultLeadName
	}

	msgs := make([]Message, len(messages))
	for i, m := range messages {
		msgs[i] = Message{
			ID:        m.ID,
			Sender:    string(m.Sender),
			Content:   m.Content,
			Timestamp: model.FormatTimestamp(m.Timestamp),
		}
	}

	return Data{
		LeadID:                "lead_" + strconv.FormatInt(now.UnixMilli(), 10),
		LeadInfo:              LeadInfo{Name: name, Phone: lead.Phone, Email: lead.Email},
		Messages:              msgs,
		Classification:        string(classification),
		ClassificationDetails: ClassificationDetails(classification),
		ExtractedMetadata:     ExtractMetadata(messages, metadata),
		Analytics: Analytics{
			Duration:     int(end.Sub(start) / time.Second),
			MessageCount: len(messages),
			StartedAt:    model.FormatTimestamp(start),
			EndedAt:      model.FormatTimestamp(end),
		},
	}
}
