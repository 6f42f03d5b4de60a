package usecase

const (
	defaultClassificationThreshold = 4
	defaultHistoryLimit            = 20
	maxHistoryLimit                = 100

	// ErrorReply is shown in the chat when the assistant could not answer.
	ErrorReply = "Sorry, I encountered an error. Please try again."

	replyStatusOK    = "ok"
	replyStatusError = "error"
)
