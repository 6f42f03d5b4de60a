package conversation

import (
	"lead-qualification-assistant/internal/model"
)

// FilterAll disables the classification filter when listing history.
const FilterAll = "all"

// --- UseCase Inputs ---

type SendMessageInput struct {
	Content string
}

type UpdateLeadInput struct {
	Name  string
	Phone string
	Email string
}

type ListHistoryInput struct {
	Search         string
	Classification string // "all" or one of the classification labels
	Limit          int
	Offset         int
}

type ExportInput struct {
	Format   string
	Metadata map[string]string
}

// --- UseCase Outputs ---

// ConversationOutput is a snapshot of the active conversation.
type ConversationOutput struct {
	ID             string
	Lead           model.LeadInfo
	Messages       []model.Message
	Classification model.Classification
	State          model.ConversationState
	ResumedFrom    string
}

type SendMessageOutput struct {
	UserMessage    model.Message
	Reply          model.Message // sender is "system" when generation failed
	Failed         bool
	Classification model.Classification
	Conversation   ConversationOutput
}

type ClassifyOutput struct {
	Classification model.Classification
	MessageCount   int
}

type ClearOutput struct {
	Archived     *model.ConversationHistory // nil when the conversation was empty
	Conversation ConversationOutput
}

type ListHistoryOutput struct {
	Items  []model.ConversationHistory
	Total  int // matches after filtering
	All    int // records held
	Limit  int
	Offset int
}

type ExportOutput struct {
	Filename    string
	ContentType string
	Body        []byte
}
