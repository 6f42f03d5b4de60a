package conversation

import "errors"

var (
	ErrEmptyMessage            = errors.New("message content is empty")
	ErrConversationBusy        = errors.New("conversation is waiting for the assistant")
	ErrConversationNotFound    = errors.New("conversation not found")
	ErrInvalidProfile          = errors.New("all business profile fields are required")
	ErrInvalidRules            = errors.New("all classification criteria are required")
	ErrInvalidClassification   = errors.New("invalid classification filter")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
