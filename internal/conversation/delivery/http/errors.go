package http

import (
	"errors"
	"net/http"

	"lead-qualification-assistant/internal/conversation"
	pkgErrors "lead-qualification-assistant/pkg/errors"
)

var (
	errEmptyMessage      = pkgErrors.NewHTTPError(http.StatusBadRequest, "message content is required")
	errConversationBusy  = pkgErrors.NewHTTPError(http.StatusConflict, "the assistant is still responding, please wait")
	errHistoryNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "conversation not found")
	errInvalidProfile    = pkgErrors.NewHTTPError(http.StatusBadRequest, "all business profile fields are required")
	errInvalidRules      = pkgErrors.NewHTTPError(http.StatusBadRequest, "hot, cold and invalid criteria are required")
	errInvalidFilter     = pkgErrors.NewHTTPError(http.StatusBadRequest, "classification must be all, HOT, COLD, INVALID or ANALYZING")
	errUnsupportedFormat = pkgErrors.NewHTTPError(http.StatusBadRequest, "format must be json, csv or xlsx")
	errMissingHistoryID  = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, conversation.ErrConversationBusy):
		return errConversationBusy
	case errors.Is(err, conversation.ErrConversationNotFound):
		return errHistoryNotFound
	case errors.Is(err, conversation.ErrInvalidProfile):
		return errInvalidProfile
	case errors.Is(err, conversation.ErrInvalidRules):
		return errInvalidRules
	case errors.Is(err, conversation.ErrInvalidClassification):
		return errInvalidFilter
	case errors.Is(err, conversation.ErrUnsupportedExportFormat):
		return errUnsupportedFormat
	default:
		return pkgErrors.ErrInternalServerError
	}
}
