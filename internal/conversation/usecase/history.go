package usecase

import (
	"context"
	"errors"
	"strings"

	"lead-qualification-assistant/internal/conversation"
	repo "lead-qualification-assistant/internal/conversation/repository"
	"lead-qualification-assistant/internal/model"
)

// ListHistory returns archived conversations, newest first.
func (uc *implUseCase) ListHistory(ctx context.Context, input conversation.ListHistoryInput) (conversation.ListHistoryOutput, error) {
	var filter model.Classification
	if f := strings.TrimSpace(input.Classification); f != "" && !strings.EqualFold(f, conversation.FilterAll) {
		filter = model.Classification(strings.ToUpper(f))
		if !filter.IsValid() {
			return conversation.ListHistoryOutput{}, conversation.ErrInvalidClassification
		}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	items, total, err := uc.repo.ListHistory(ctx, repo.ListHistoryOptions{
		Search:         strings.TrimSpace(input.Search),
		Classification: filter,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.ListHistory: %v", err)
		return conversation.ListHistoryOutput{}, err
	}

	all, err := uc.repo.CountHistory(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.ListHistory.CountHistory: %v", err)
		return conversation.ListHistoryOutput{}, err
	}

	return conversation.ListHistoryOutput{
		Items:  items,
		Total:  total,
		All:    all,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// GetHistory returns one archived conversation.
func (uc *implUseCase) GetHistory(ctx context.Context, id string) (model.ConversationHistory, error) {
	h, err := uc.repo.GetOneHistory(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.ConversationHistory{}, conversation.ErrConversationNotFound
		}
		uc.l.Errorf(ctx, "conversation.usecase.GetHistory: %v", err)
		return model.ConversationHistory{}, err
	}
	return h, nil
}

// DeleteHistory removes one archived conversation.
func (uc *implUseCase) DeleteHistory(ctx context.Context, id string) error {
	if err := uc.repo.DeleteHistory(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return conversation.ErrConversationNotFound
		}
		uc.l.Errorf(ctx, "conversation.usecase.DeleteHistory: %v", err)
		return err
	}
	uc.observeHistorySize(ctx)
	return nil
}

// LoadHistory resumes an archived conversation as the active one under a new
// id. The archived record stays as it is.
func (uc *implUseCase) LoadHistory(ctx context.Context, id string) (conversation.ConversationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.active.state.Busy() {
		return conversation.ConversationOutput{}, conversation.ErrConversationBusy
	}

	h, err := uc.GetHistory(ctx, id)
	if err != nil {
		return conversation.ConversationOutput{}, err
	}

	lead := h.LeadInfo()
	if lead.Name == "" {
		lead.Name = model.DefaultLeadName
	}
	state := model.StateActive
	if len(h.Messages) == 0 {
		state = model.StateEmpty
	}

	uc.active = session{
		id:             model.NewConversationID(uc.now()),
		lead:           lead,
		messages:       model.CloneMessages(h.Messages),
		classification: h.Classification,
		state:          state,
		resumedFrom:    h.ID,
	}
	return uc.snapshotLocked(), nil
}
