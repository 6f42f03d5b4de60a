package usecase

import (
	"context"
	"errors"
	"fmt"

	"lead-qualification-assistant/internal/conversation"
	"lead-qualification-assistant/internal/export"
	"lead-qualification-assistant/internal/model"
)

// Export renders the active conversation as a downloadable file.
func (uc *implUseCase) Export(ctx context.Context, input conversation.ExportInput) (conversation.ExportOutput, error) {
	uc.mu.Lock()
	msgs := model.CloneMessages(uc.active.messages)
	classification := uc.active.classification
	lead := uc.active.lead
	uc.mu.Unlock()

	return uc.render(ctx, msgs, classification, lead, input)
}

// ExportHistory renders an archived conversation as a downloadable file.
func (uc *implUseCase) ExportHistory(ctx context.Context, id string, input conversation.ExportInput) (conversation.ExportOutput, error) {
	h, err := uc.GetHistory(ctx, id)
	if err != nil {
		return conversation.ExportOutput{}, err
	}
	return uc.render(ctx, h.Messages, h.Classification, h.LeadInfo(), input)
}

func (uc *implUseCase) render(ctx context.Context, msgs []model.Message, c model.Classification, lead model.LeadInfo, input conversation.ExportInput) (conversation.ExportOutput, error) {
	format, err := export.ParseFormat(input.Format)
	if err != nil {
		return conversation.ExportOutput{}, fmt.Errorf("%w: %q", conversation.ErrUnsupportedExportFormat, input.Format)
	}

	now := uc.now()
	file, err := export.Render(export.Generate(msgs, c, lead, input.Metadata, now), format, now)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return conversation.ExportOutput{}, conversation.ErrUnsupportedExportFormat
		}
		uc.l.Errorf(ctx, "conversation.usecase.render: %v", err)
		return conversation.ExportOutput{}, err
	}

	return conversation.ExportOutput{
		Filename:    file.Name,
		ContentType: file.ContentType,
		Body:        file.Body,
	}, nil
}
