package memory

import (
	"context"
	"fmt"
	"slices"

	"lead-qualification-assistant/internal/conversation/repository"
	"lead-qualification-assistant/internal/model"
)

func (r *implRepository) CreateHistory(ctx context.Context, history model.ConversationHistory) error {
	if history.ID == "" {
		return fmt.Errorf("%w: empty id", repository.ErrFailedToInsert)
	}
	if r.history.Contains(history.ID) {
		return fmt.Errorf("%w: duplicate id %s", repository.ErrFailedToInsert, history.ID)
	}

	history.Messages = model.CloneMessages(history.Messages)
	r.history.Add(history.ID, history)
	return nil
}

func (r *implRepository) GetOneHistory(ctx context.Context, id string) (model.ConversationHistory, error) {
	h, ok := r.history.Peek(id)
	if !ok {
		return model.ConversationHistory{}, repository.ErrNotFound
	}
	h.Messages = model.CloneMessages(h.Messages)
	return h, nil
}

func (r *implRepository) ListHistory(ctx context.Context, opt repository.ListHistoryOptions) ([]model.ConversationHistory, int, error) {
	all := r.history.Values()
	slices.Reverse(all)

	matched := make([]model.ConversationHistory, 0, len(all))
	for _, h := range all {
		if matchHistory(h, opt) {
			matched = append(matched, h)
		}
	}

	total := len(matched)
	if opt.Offset >= total {
		return []model.ConversationHistory{}, total, nil
	}
	end := total
	if opt.Limit > 0 && opt.Offset+opt.Limit < total {
		end = opt.Offset + opt.Limit
	}

	page := make([]model.ConversationHistory, 0, end-opt.Offset)
	for _, h := range matched[opt.Offset:end] {
		h.Messages = model.CloneMessages(h.Messages)
		page = append(page, h)
	}
	return page, total, nil
}

func (r *implRepository) CountHistory(ctx context.Context) (int, error) {
	return r.history.Len(), nil
}

func (r *implRepository) DeleteHistory(ctx context.Context, id string) error {
	if !r.history.Remove(id) {
		return repository.ErrNotFound
	}
	return nil
}
