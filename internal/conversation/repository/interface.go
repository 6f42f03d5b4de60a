package repository

import (
	"context"

	"lead-qualification-assistant/internal/model"
)

// Repository is the composed interface for the conversation data store.
type Repository interface {
	HistoryRepository
	ProfileRepository
}

// HistoryRepository stores archived conversations.
type HistoryRepository interface {
	CreateHistory(ctx context.Context, history model.ConversationHistory) error
	GetOneHistory(ctx context.Context, id string) (model.ConversationHistory, error)
	// ListHistory returns one page, newest first, and the number of matches.
	ListHistory(ctx context.Context, opt ListHistoryOptions) ([]model.ConversationHistory, int, error)
	CountHistory(ctx context.Context) (int, error)
	DeleteHistory(ctx context.Context, id string) error
}

// ProfileRepository stores the workspace's business profile and classification rules.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (model.BusinessProfile, error)
	UpdateProfile(ctx context.Context, profile model.BusinessProfile) (model.BusinessProfile, error)
	GetRules(ctx context.Context) (model.ClassificationRules, error)
	UpdateRules(ctx context.Context, rules model.ClassificationRules) (model.ClassificationRules, error)
}
