package repository

import "lead-qualification-assistant/internal/model"

// ListHistoryOptions holds filter and pagination parameters for listing history.
// All non-empty filters are applied as AND conditions.
type ListHistoryOptions struct {
	Search         string
	Classification model.Classification
	Limit          int
	Offset         int
}
