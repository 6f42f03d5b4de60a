package usecase

import (
	"context"
	"strings"
	"time"

	"lead-qualification-assistant/internal/conversation"
	"lead-qualification-assistant/internal/model"
	"lead-qualification-assistant/pkg/llmprovider"
)

// Current returns a snapshot of the active conversation.
func (uc *implUseCase) Current(ctx context.Context) (conversation.ConversationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked(), nil
}

// SendMessage appends the lead's message, waits for the assistant's reply and
// re-classifies the lead once enough messages exist. A failed reply is not an
// error: it lands in the transcript as a system message.
func (uc *implUseCase) SendMessage(ctx context.Context, input conversation.SendMessageInput) (conversation.SendMessageOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return conversation.SendMessageOutput{}, conversation.ErrEmptyMessage
	}

	profile, err := uc.repo.GetProfile(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.SendMessage.GetProfile: %v", err)
		return conversation.SendMessageOutput{}, err
	}

	uc.mu.Lock()
	if uc.active.state.Busy() {
		uc.mu.Unlock()
		return conversation.SendMessageOutput{}, conversation.ErrConversationBusy
	}
	userMsg := model.NewMessage(model.SenderUser, content, uc.now())
	uc.active.messages = append(uc.active.messages, userMsg)
	uc.active.state = model.StateAwaitingAIResponse
	transcript := model.CloneMessages(uc.active.messages)
	uc.mu.Unlock()

	start := time.Now()
	text, genErr := uc.generateReply(ctx, transcript, profile)

	var reply model.Message
	if genErr != nil {
		uc.l.Errorf(ctx, "conversation.usecase.SendMessage.generateReply: %v", genErr)
		reply = model.NewMessage(model.SenderSystem, ErrorReply, uc.now())
		uc.metrics.ObserveReply(replyStatusError, time.Since(start))
	} else {
		reply = model.NewMessage(model.SenderAI, text, uc.now())
		uc.metrics.ObserveReply(replyStatusOK, time.Since(start))
	}

	uc.mu.Lock()
	uc.active.messages = append(uc.active.messages, reply)
	runClassifier := genErr == nil && len(uc.active.messages) >= uc.cfg.ClassificationThreshold
	if runClassifier {
		uc.active.state = model.StateClassifying
		transcript = model.CloneMessages(uc.active.messages)
	} else {
		uc.active.state = model.StateActive
	}
	uc.mu.Unlock()

	if runClassifier {
		c := uc.classifyTranscript(ctx, transcript, profile)
		uc.mu.Lock()
		uc.active.classification = c
		uc.active.state = model.StateActive
		uc.mu.Unlock()
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	return conversation.SendMessageOutput{
		UserMessage:    userMsg,
		Reply:          reply,
		Failed:         genErr != nil,
		Classification: uc.active.classification,
		Conversation:   uc.snapshotLocked(),
	}, nil
}

func (uc *implUseCase) generateReply(ctx context.Context, transcript []model.Message, profile model.BusinessProfile) (string, error) {
	if err := uc.sleep(ctx, uc.replyDelay()); err != nil {
		return "", err
	}

	req := llmprovider.NewTextRequest(buildConversationPrompt(transcript, profile))
	req.Temperature = uc.cfg.Temperature
	req.MaxTokens = uc.cfg.MaxTokens

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// UpdateLead sets the contact details of the active conversation.
func (uc *implUseCase) UpdateLead(ctx context.Context, input conversation.UpdateLeadInput) (conversation.ConversationOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = model.DefaultLeadName
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.active.lead = model.LeadInfo{
		Name:  name,
		Phone: strings.TrimSpace(input.Phone),
		Email: strings.TrimSpace(input.Email),
	}
	return uc.snapshotLocked(), nil
}

// Clear archives a non-empty conversation into history and starts a new one.
func (uc *implUseCase) Clear(ctx context.Context) (conversation.ClearOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.active.state.Busy() {
		return conversation.ClearOutput{}, conversation.ErrConversationBusy
	}

	var archived *model.ConversationHistory
	if len(uc.active.messages) > 0 {
		h := uc.archiveLocked()
		prev := uc.active.state
		uc.active.state = model.StateArchived
		if err := uc.repo.CreateHistory(ctx, h); err != nil {
			uc.active.state = prev
			uc.l.Errorf(ctx, "conversation.usecase.Clear.CreateHistory: %v", err)
			return conversation.ClearOutput{}, err
		}
		archived = &h
		uc.l.Infof(ctx, "conversation %s archived with %d messages as %s", h.ID, h.MessageCount, h.Classification)
		uc.observeHistorySize(ctx)
	}

	uc.active = uc.newSession()
	return conversation.ClearOutput{
		Archived:     archived,
		Conversation: uc.snapshotLocked(),
	}, nil
}
