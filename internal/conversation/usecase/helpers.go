package usecase

import (
	"context"
	"math/rand/v2"
	"time"

	"lead-qualification-assistant/internal/conversation"
	"lead-qualification-assistant/internal/model"
)

func (uc *implUseCase) newSession() session {
	return session{
		id:             model.NewConversationID(uc.now()),
		lead:           model.LeadInfo{Name: model.DefaultLeadName},
		messages:       []model.Message{},
		classification: model.ClassificationAnalyzing,
		state:          model.StateEmpty,
	}
}

// snapshotLocked copies the active session. Caller holds uc.mu.
func (uc *implUseCase) snapshotLocked() conversation.ConversationOutput {
	return conversation.ConversationOutput{
		ID:             uc.active.id,
		Lead:           uc.active.lead,
		Messages:       model.CloneMessages(uc.active.messages),
		Classification: uc.active.classification,
		State:          uc.active.state,
		ResumedFrom:    uc.active.resumedFrom,
	}
}

// archiveLocked builds the history record for the active session. Caller holds uc.mu.
func (uc *implUseCase) archiveLocked() model.ConversationHistory {
	msgs := model.CloneMessages(uc.active.messages)
	first, last := msgs[0], msgs[len(msgs)-1]

	return model.ConversationHistory{
		ID:             uc.active.id,
		LeadName:       uc.active.lead.Name,
		LeadPhone:      uc.active.lead.Phone,
		LeadEmail:      uc.active.lead.Email,
		Messages:       msgs,
		Classification: uc.active.classification,
		Duration:       int(last.Timestamp.Sub(first.Timestamp) / time.Second),
		MessageCount:   len(msgs),
		StartedAt:      first.Timestamp,
		EndedAt:        last.Timestamp,
		LastMessage:    last.Content,
		ResumedFrom:    uc.active.resumedFrom,
	}
}

// replyDelay draws uniformly from [MinReplyDelay, MaxReplyDelay].
func (uc *implUseCase) replyDelay() time.Duration {
	spread := uc.cfg.MaxReplyDelay - uc.cfg.MinReplyDelay
	if spread <= 0 {
		return uc.cfg.MinReplyDelay
	}
	return uc.cfg.MinReplyDelay + time.Duration(rand.Int64N(int64(spread)+1))
}

func (uc *implUseCase) observeHistorySize(ctx context.Context) {
	n, err := uc.repo.CountHistory(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.observeHistorySize: %v", err)
		return
	}
	uc.metrics.SetHistorySize(n)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
