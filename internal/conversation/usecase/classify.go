package usecase

import (
	"context"

	"lead-qualification-assistant/internal/conversation"
	"lead-qualification-assistant/internal/model"
	"lead-qualification-assistant/pkg/llmprovider"
)

// Classify re-runs the lead classifier on the active conversation.
func (uc *implUseCase) Classify(ctx context.Context) (conversation.ClassifyOutput, error) {
	profile, err := uc.repo.GetProfile(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.Classify.GetProfile: %v", err)
		return conversation.ClassifyOutput{}, err
	}

	uc.mu.Lock()
	if uc.active.state.Busy() {
		uc.mu.Unlock()
		return conversation.ClassifyOutput{}, conversation.ErrConversationBusy
	}
	n := len(uc.active.messages)
	if n < uc.cfg.ClassificationThreshold {
		uc.active.classification = model.ClassificationAnalyzing
		uc.mu.Unlock()
		return conversation.ClassifyOutput{Classification: model.ClassificationAnalyzing, MessageCount: n}, nil
	}
	uc.active.state = model.StateClassifying
	transcript := model.CloneMessages(uc.active.messages)
	uc.mu.Unlock()

	c := uc.classifyTranscript(ctx, transcript, profile)

	uc.mu.Lock()
	uc.active.classification = c
	uc.active.state = model.StateActive
	uc.mu.Unlock()

	return conversation.ClassifyOutput{Classification: c, MessageCount: n}, nil
}

// classifyTranscript never fails: short transcripts, call errors and
// unexpected answers all yield ANALYZING.
func (uc *implUseCase) classifyTranscript(ctx context.Context, transcript []model.Message, profile model.BusinessProfile) model.Classification {
	if len(transcript) < uc.cfg.ClassificationThreshold {
		return model.ClassificationAnalyzing
	}

	rules, err := uc.repo.GetRules(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.classifyTranscript.GetRules: %v", err)
	}

	resp, err := uc.llm.GenerateContent(ctx, llmprovider.NewTextRequest(buildClassificationPrompt(transcript, profile, rules)))
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.classifyTranscript: %v", err)
		uc.metrics.ObserveClassification(string(model.ClassificationAnalyzing))
		return model.ClassificationAnalyzing
	}

	c, ok := model.ParseClassification(resp.Text())
	if !ok {
		uc.l.Warnf(ctx, "conversation.usecase.classifyTranscript: unexpected verdict %q", resp.Text())
	}
	uc.metrics.ObserveClassification(string(c))
	return c
}
