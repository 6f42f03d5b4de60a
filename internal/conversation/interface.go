package conversation

import (
	"context"

	"lead-qualification-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Active conversation
	Current(ctx context.Context) (ConversationOutput, error)
	SendMessage(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)
	UpdateLead(ctx context.Context, input UpdateLeadInput) (ConversationOutput, error)
	Classify(ctx context.Context) (ClassifyOutput, error)
	Clear(ctx context.Context) (ClearOutput, error)
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)

	// History
	ListHistory(ctx context.Context, input ListHistoryInput) (ListHistoryOutput, error)
	GetHistory(ctx context.Context, id string) (model.ConversationHistory, error)
	DeleteHistory(ctx context.Context, id string) error
	LoadHistory(ctx context.Context, id string) (ConversationOutput, error)
	ExportHistory(ctx context.Context, id string, input ExportInput) (ExportOutput, error)

	// Business profile
	GetProfile(ctx context.Context) (model.BusinessProfile, error)
	UpdateProfile(ctx context.Context, profile model.BusinessProfile) (model.BusinessProfile, error)
	GetRules(ctx context.Context) (model.ClassificationRules, error)
	UpdateRules(ctx context.Context, rules model.ClassificationRules) (model.ClassificationRules, error)
}
