package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"lead-qualification-assistant/internal/conversation"
	"lead-qualification-assistant/internal/conversation/repository/memory"
	"lead-qualification-assistant/internal/model"
	"lead-qualification-assistant/pkg/llmprovider"
	"lead-qualification-assistant/pkg/log"
)

// mockGenerator answers conversation prompts with reply and classification
// prompts with verdict.
type mockGenerator struct {
	mu sync.Mutex

	reply      string
	verdict    string
	replyErr   error
	verdictErr error

	// block, when set, holds conversation calls until it is closed.
	block   chan struct{}
	started chan struct{}

	prompts []string
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	prompt := req.Messages[0].Parts[0].Text

	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	block, started := m.block, m.started
	m.mu.Unlock()

	if strings.HasPrefix(prompt, "Analyze this lead") {
		if m.verdictErr != nil {
			return nil, m.verdictErr
		}
		return textResp(m.verdict), nil
	}

	if started != nil {
		started <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if m.replyErr != nil {
		return nil, m.replyErr
	}
	return textResp(m.reply), nil
}

func (m *mockGenerator) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

func (m *mockGenerator) classificationCalls() int {
	n := 0
	for _, p := range m.calls() {
		if strings.HasPrefix(p, "Analyze this lead") {
			n++
		}
	}
	return n
}

func textResp(text string) *llmprovider.Response {
	return &llmprovider.Response{Content: llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: text}}}}
}

var defaultProfile = model.BusinessProfile{
	BusinessName:  "GrowEasy Realtors",
	Industry:      "real-estate",
	Location:      "Mumbai, India",
	AgentName:     "Sarah",
	ResponseStyle: "Professional",
}

func newTestUseCase(gen *mockGenerator) *implUseCase {
	repo := memory.New(log.NewNop(), memory.Options{
		Profile: defaultProfile,
		Rules: model.ClassificationRules{
			HotCriteria:     "Budget defined",
			ColdCriteria:    "Just browsing",
			InvalidCriteria: "Spam",
		},
	})
	uc := New(log.NewNop(), repo, gen, nil, Config{ClassificationThreshold: 4})

	clock := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time {
		clock = clock.Add(10 * time.Second)
		return clock
	}
	uc.sleep = func(ctx context.Context, d time.Duration) error { return ctx.Err() }
	return uc
}

func send(t *testing.T, uc *implUseCase, content string) conversation.SendMessageOutput {
	t.Helper()
	out, err := uc.SendMessage(context.Background(), conversation.SendMessageInput{Content: content})
	if err != nil {
		t.Fatalf("SendMessage(%q): %v", content, err)
	}
	return out
}

func TestNew_StartsEmpty(t *testing.T) {
	uc := newTestUseCase(&mockGenerator{})
	cur, _ := uc.Current(context.Background())

	if cur.State != model.StateEmpty {
		t.Errorf("expected EMPTY, got %s", cur.State)
	}
	if cur.Classification != model.ClassificationAnalyzing {
		t.Errorf("expected ANALYZING, got %s", cur.Classification)
	}
	if !strings.HasPrefix(cur.ID, "conv_") {
		t.Errorf("expected conv_ id, got %s", cur.ID)
	}
	if cur.Lead.Name != model.DefaultLeadName {
		t.Errorf("expected default lead name, got %s", cur.Lead.Name)
	}
}

func TestSendMessage_Reply(t *testing.T) {
	gen := &mockGenerator{reply: "Hello! How can I help?"}
	uc := newTestUseCase(gen)

	out := send(t, uc, "  Hi there  ")

	if out.UserMessage.Content != "Hi there" || out.UserMessage.Sender != model.SenderUser {
		t.Errorf("unexpected user message: %+v", out.UserMessage)
	}
	if out.Reply.Sender != model.SenderAI || out.Reply.Content != "Hello! How can I help?" {
		t.Errorf("unexpected reply: %+v", out.Reply)
	}
	if out.Failed {
		t.Error("expected Failed=false")
	}
	if len(out.Conversation.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(out.Conversation.Messages))
	}
	if out.Conversation.State != model.StateActive {
		t.Errorf("expected ACTIVE, got %s", out.Conversation.State)
	}
	if out.Classification != model.ClassificationAnalyzing {
		t.Errorf("expected ANALYZING below threshold, got %s", out.Classification)
	}
	if gen.classificationCalls() != 0 {
		t.Errorf("expected no classification call below threshold")
	}

	prompt := gen.calls()[0]
	for _, want := range []string{
		"You are Sarah, a professional real-estate agent from GrowEasy Realtors located in Mumbai, India.",
		"Current conversation:\nLead: Hi there\n\nRespond as Sarah:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestSendMessage_EmptyContent(t *testing.T) {
	gen := &mockGenerator{reply: "x"}
	uc := newTestUseCase(gen)

	_, err := uc.SendMessage(context.Background(), conversation.SendMessageInput{Content: " \n\t"})
	if !errors.Is(err, conversation.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
	if len(gen.calls()) != 0 {
		t.Error("expected no generation call")
	}
}

func TestSendMessage_FailureAppendsSystemMessage(t *testing.T) {
	gen := &mockGenerator{replyErr: llmprovider.ErrGenerationFailed}
	uc := newTestUseCase(gen)

	out := send(t, uc, "Hello")

	if !out.Failed {
		t.Error("expected Failed=true")
	}
	if out.Reply.Sender != model.SenderSystem || out.Reply.Content != ErrorReply {
		t.Errorf("unexpected reply: %+v", out.Reply)
	}
	if out.Conversation.State != model.StateActive {
		t.Errorf("expected ACTIVE after failure, got %s", out.Conversation.State)
	}
	if n := len(gen.calls()); n != 1 {
		t.Errorf("expected a single attempt, got %d", n)
	}
}

func TestSendMessage_ClassifiesFromFourMessages(t *testing.T) {
	gen := &mockGenerator{reply: "Sure, what budget?", verdict: " hot\n"}
	uc := newTestUseCase(gen)

	send(t, uc, "I want a 2BHK in Baner")
	out := send(t, uc, "Budget 80 lakhs, moving in 2 months")

	if out.Classification != model.ClassificationHot {
		t.Errorf("expected HOT, got %s", out.Classification)
	}
	if gen.classificationCalls() != 1 {
		t.Errorf("expected 1 classification call, got %d", gen.classificationCalls())
	}

	var prompt string
	for _, p := range gen.calls() {
		if strings.HasPrefix(p, "Analyze this lead") {
			prompt = p
		}
	}
	for _, want := range []string{
		"Business Context: real-estate business (GrowEasy Realtors)",
		"- HOT: Budget defined",
		"user: I want a 2BHK in Baner\nai: Sure, what budget?",
		"Respond with only one word: HOT, COLD, or INVALID",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("classification prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestSendMessage_UnexpectedVerdictIsAnalyzing(t *testing.T) {
	for _, gen := range []*mockGenerator{
		{reply: "ok", verdict: "The lead seems HOT"},
		{reply: "ok", verdictErr: errors.New("boom")},
	} {
		uc := newTestUseCase(gen)
		send(t, uc, "one")
		out := send(t, uc, "two")
		if out.Classification != model.ClassificationAnalyzing {
			t.Errorf("expected ANALYZING, got %s", out.Classification)
		}
		if out.Conversation.State != model.StateActive {
			t.Errorf("expected ACTIVE, got %s", out.Conversation.State)
		}
	}
}

func TestSendMessage_RejectedWhileAwaitingReply(t *testing.T) {
	gen := &mockGenerator{reply: "late reply", block: make(chan struct{}), started: make(chan struct{}, 1)}
	uc := newTestUseCase(gen)

	done := make(chan conversation.SendMessageOutput)
	go func() {
		out, _ := uc.SendMessage(context.Background(), conversation.SendMessageInput{Content: "first"})
		done <- out
	}()
	<-gen.started

	cur, _ := uc.Current(context.Background())
	if cur.State != model.StateAwaitingAIResponse {
		t.Errorf("expected AWAITING_AI_RESPONSE, got %s", cur.State)
	}
	if _, err := uc.SendMessage(context.Background(), conversation.SendMessageInput{Content: "second"}); !errors.Is(err, conversation.ErrConversationBusy) {
		t.Errorf("expected ErrConversationBusy on send, got %v", err)
	}
	if _, err := uc.Clear(context.Background()); !errors.Is(err, conversation.ErrConversationBusy) {
		t.Errorf("expected ErrConversationBusy on clear, got %v", err)
	}
	if _, err := uc.Classify(context.Background()); !errors.Is(err, conversation.ErrConversationBusy) {
		t.Errorf("expected ErrConversationBusy on classify, got %v", err)
	}

	close(gen.block)
	out := <-done
	if len(out.Conversation.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(out.Conversation.Messages))
	}
}

func TestSendMessage_CancelledDuringDelay(t *testing.T) {
	gen := &mockGenerator{reply: "never"}
	uc := newTestUseCase(gen)
	uc.cfg.MinReplyDelay, uc.cfg.MaxReplyDelay = time.Hour, time.Hour
	uc.sleep = sleepContext

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := uc.SendMessage(ctx, conversation.SendMessageInput{Content: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Failed || out.Reply.Sender != model.SenderSystem {
		t.Errorf("expected system reply, got %+v", out.Reply)
	}
	if len(gen.calls()) != 0 {
		t.Error("expected no generation call after cancellation")
	}
}

func TestClassify(t *testing.T) {
	gen := &mockGenerator{reply: "ok", verdict: "COLD"}
	uc := newTestUseCase(gen)

	out, err := uc.Classify(context.Background())
	if err != nil || out.Classification != model.ClassificationAnalyzing {
		t.Errorf("expected ANALYZING for empty conversation, got %s, %v", out.Classification, err)
	}
	if gen.classificationCalls() != 0 {
		t.Error("expected no network call below threshold")
	}

	send(t, uc, "one")
	send(t, uc, "two")
	gen.verdict = "INVALID"

	out, err = uc.Classify(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Classification != model.ClassificationInvalid || out.MessageCount != 4 {
		t.Errorf("unexpected output: %+v", out)
	}
	cur, _ := uc.Current(context.Background())
	if cur.Classification != model.ClassificationInvalid || cur.State != model.StateActive {
		t.Errorf("unexpected conversation: %s %s", cur.Classification, cur.State)
	}
}

func TestClear_ArchivesConversation(t *testing.T) {
	gen := &mockGenerator{reply: "Hello!", verdict: "HOT"}
	uc := newTestUseCase(gen)
	ctx := context.Background()

	if _, err := uc.UpdateLead(ctx, conversation.UpdateLeadInput{Name: "Ravi", Phone: "98765"}); err != nil {
		t.Fatalf("UpdateLead: %v", err)
	}
	send(t, uc, "one")
	send(t, uc, "two")
	before, _ := uc.Current(ctx)

	out, err := uc.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if out.Archived == nil {
		t.Fatal("expected an archived record")
	}

	h := out.Archived
	if h.ID != before.ID {
		t.Errorf("expected history id %s, got %s", before.ID, h.ID)
	}
	if h.MessageCount != 4 || len(h.Messages) != 4 {
		t.Errorf("expected 4 messages, got %d/%d", h.MessageCount, len(h.Messages))
	}
	if h.Classification != model.ClassificationHot {
		t.Errorf("expected HOT, got %s", h.Classification)
	}
	if h.LeadName != "Ravi" || h.LeadPhone != "98765" {
		t.Errorf("unexpected lead: %s %s", h.LeadName, h.LeadPhone)
	}
	if h.LastMessage != "Hello!" {
		t.Errorf("unexpected last message: %q", h.LastMessage)
	}
	wantDuration := int(h.EndedAt.Sub(h.StartedAt) / time.Second)
	if h.Duration != wantDuration || h.Duration <= 0 {
		t.Errorf("unexpected duration %d (want %d)", h.Duration, wantDuration)
	}

	if out.Conversation.State != model.StateEmpty || len(out.Conversation.Messages) != 0 {
		t.Errorf("expected reset conversation, got %+v", out.Conversation)
	}
	if out.Conversation.Classification != model.ClassificationAnalyzing {
		t.Errorf("expected ANALYZING, got %s", out.Conversation.Classification)
	}
	if out.Conversation.ID == before.ID {
		t.Error("expected a fresh conversation id")
	}

	list, _ := uc.ListHistory(ctx, conversation.ListHistoryInput{})
	if list.All != 1 || len(list.Items) != 1 {
		t.Errorf("expected exactly one history record, got %d", list.All)
	}
}

func TestClear_EmptyCreatesNothing(t *testing.T) {
	uc := newTestUseCase(&mockGenerator{})
	ctx := context.Background()

	out, err := uc.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if out.Archived != nil {
		t.Error("expected no archived record")
	}
	list, _ := uc.ListHistory(ctx, conversation.ListHistoryInput{})
	if list.All != 0 {
		t.Errorf("expected empty history, got %d", list.All)
	}
}

func TestLoadHistory(t *testing.T) {
	gen := &mockGenerator{reply: "Hello!", verdict: "COLD"}
	uc := newTestUseCase(gen)
	ctx := context.Background()

	send(t, uc, "one")
	send(t, uc, "two")
	cleared, _ := uc.Clear(ctx)
	id := cleared.Archived.ID

	cur, err := uc.LoadHistory(ctx, id)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if cur.ID == id {
		t.Error("expected a fresh id for the resumed conversation")
	}
	if cur.ResumedFrom != id {
		t.Errorf("expected resumedFrom %s, got %s", id, cur.ResumedFrom)
	}
	if len(cur.Messages) != 4 || cur.Classification != model.ClassificationCold || cur.State != model.StateActive {
		t.Errorf("unexpected loaded conversation: %+v", cur)
	}

	send(t, uc, "three")
	h, err := uc.GetHistory(ctx, id)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(h.Messages) != 4 {
		t.Errorf("expected archived record untouched, got %d messages", len(h.Messages))
	}

	if _, err := uc.LoadHistory(ctx, "conv_missing"); !errors.Is(err, conversation.ErrConversationNotFound) {
		t.Errorf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestDeleteHistory(t *testing.T) {
	uc := newTestUseCase(&mockGenerator{reply: "ok"})
	ctx := context.Background()

	send(t, uc, "hello")
	cleared, _ := uc.Clear(ctx)

	if err := uc.DeleteHistory(ctx, cleared.Archived.ID); err != nil {
		t.Fatalf("DeleteHistory: %v", err)
	}
	if err := uc.DeleteHistory(ctx, cleared.Archived.ID); !errors.Is(err, conversation.ErrConversationNotFound) {
		t.Errorf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestListHistory_Filters(t *testing.T) {
	gen := &mockGenerator{reply: "ok", verdict: "HOT"}
	uc := newTestUseCase(gen)
	ctx := context.Background()

	send(t, uc, "villa in pune")
	send(t, uc, "asap")
	uc.Clear(ctx)
	send(t, uc, "just looking")
	uc.Clear(ctx)

	out, err := uc.ListHistory(ctx, conversation.ListHistoryInput{Classification: "hot"})
	if err != nil {
		t.Fatalf("ListHistory: %v", err)
	}
	if out.Total != 1 || out.All != 2 {
		t.Errorf("expected 1 of 2, got %d of %d", out.Total, out.All)
	}

	out, _ = uc.ListHistory(ctx, conversation.ListHistoryInput{Search: "LOOKING", Classification: "all"})
	if out.Total != 1 || out.Items[0].Classification != model.ClassificationAnalyzing {
		t.Errorf("unexpected search result: %+v", out.Items)
	}

	out, _ = uc.ListHistory(ctx, conversation.ListHistoryInput{Limit: 500})
	if out.Limit != maxHistoryLimit {
		t.Errorf("expected limit clamp to %d, got %d", maxHistoryLimit, out.Limit)
	}

	if _, err := uc.ListHistory(ctx, conversation.ListHistoryInput{Classification: "WARM"}); !errors.Is(err, conversation.ErrInvalidClassification) {
		t.Errorf("expected ErrInvalidClassification, got %v", err)
	}
}

func TestExport(t *testing.T) {
	uc := newTestUseCase(&mockGenerator{reply: "Which area?"})
	ctx := context.Background()
	send(t, uc, "Looking for a flat")

	out, err := uc.Export(ctx, conversation.ExportInput{Format: "csv", Metadata: map[string]string{"location": "Pune"}})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(out.Filename, "lead_conversation_lead_") || !strings.HasSuffix(out.Filename, ".csv") {
		t.Errorf("unexpected filename: %s", out.Filename)
	}
	body := string(out.Body)
	if !strings.Contains(body, `"Location","Pune"`) || !strings.Contains(body, `"Property Type","FLAT"`) {
		t.Errorf("unexpected csv body:\n%s", body)
	}

	if _, err := uc.Export(ctx, conversation.ExportInput{Format: "pdf"}); !errors.Is(err, conversation.ErrUnsupportedExportFormat) {
		t.Errorf("expected ErrUnsupportedExportFormat, got %v", err)
	}

	cleared, _ := uc.Clear(ctx)
	hist, err := uc.ExportHistory(ctx, cleared.Archived.ID, conversation.ExportInput{})
	if err != nil {
		t.Fatalf("ExportHistory: %v", err)
	}
	if hist.ContentType != "application/json" || !strings.Contains(string(hist.Body), `"leadId"`) {
		t.Errorf("unexpected json export: %s", hist.Body)
	}

	if _, err := uc.ExportHistory(ctx, "nope", conversation.ExportInput{}); !errors.Is(err, conversation.ErrConversationNotFound) {
		t.Errorf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestUpdateProfileAndRules(t *testing.T) {
	gen := &mockGenerator{reply: "Namaste!"}
	uc := newTestUseCase(gen)
	ctx := context.Background()

	_, err := uc.UpdateProfile(ctx, model.BusinessProfile{BusinessName: "Acme"})
	if !errors.Is(err, conversation.ErrInvalidProfile) {
		t.Errorf("expected ErrInvalidProfile, got %v", err)
	}

	p, err := uc.UpdateProfile(ctx, model.BusinessProfile{
		BusinessName: " Skyline Homes ", Industry: "real-estate", Location: "Pune", AgentName: "Arjun", ResponseStyle: "Friendly",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if p.BusinessName != "Skyline Homes" {
		t.Errorf("expected trimmed business name, got %q", p.BusinessName)
	}

	send(t, uc, "hi")
	if !strings.Contains(gen.calls()[0], "You are Arjun, a friendly real-estate agent from Skyline Homes located in Pune.") {
		t.Errorf("prompt did not use the new profile:\n%s", gen.calls()[0])
	}

	if _, err := uc.UpdateRules(ctx, model.ClassificationRules{HotCriteria: "x"}); !errors.Is(err, conversation.ErrInvalidRules) {
		t.Errorf("expected ErrInvalidRules, got %v", err)
	}
	rules, err := uc.UpdateRules(ctx, model.ClassificationRules{HotCriteria: "a", ColdCriteria: "b", InvalidCriteria: "c"})
	if err != nil || rules.ColdCriteria != "b" {
		t.Errorf("unexpected rules update: %+v, %v", rules, err)
	}
}

func TestBuildConversationPrompt_FirstInteraction(t *testing.T) {
	prompt := buildConversationPrompt(nil, defaultProfile)
	if !strings.Contains(prompt, firstInteractionInstruction) {
		t.Errorf("expected greeting instruction for an empty transcript")
	}

	prompt = buildConversationPrompt([]model.Message{{Sender: model.SenderUser, Content: "hi"}}, defaultProfile)
	if strings.Contains(prompt, firstInteractionInstruction) {
		t.Errorf("unexpected greeting instruction once the lead has spoken")
	}
}

func TestReplyDelayWithinBounds(t *testing.T) {
	uc := newTestUseCase(&mockGenerator{})
	uc.cfg.MinReplyDelay, uc.cfg.MaxReplyDelay = time.Second, 3*time.Second

	for i := 0; i < 100; i++ {
		d := uc.replyDelay()
		if d < time.Second || d > 3*time.Second {
			t.Fatalf("delay %s out of bounds", d)
		}
	}
}

func TestUpdateLead(t *testing.T) {
	uc := newTestUseCase(&mockGenerator{reply: "Hi"})
	ctx := context.Background()

	out, err := uc.UpdateLead(ctx, conversation.UpdateLeadInput{Name: "  Priya  ", Phone: " 98200 ", Email: "p@example.com"})
	if err != nil {
		t.Fatalf("UpdateLead: %v", err)
	}
	if out.Lead.Name != "Priya" || out.Lead.Phone != "98200" || out.Lead.Email != "p@example.com" {
		t.Errorf("unexpected lead %+v", out.Lead)
	}

	out, _ = uc.UpdateLead(ctx, conversation.UpdateLeadInput{Name: "   "})
	if out.Lead.Name != model.DefaultLeadName {
		t.Errorf("expected blank name to fall back to %q, got %q", model.DefaultLeadName, out.Lead.Name)
	}

	uc.UpdateLead(ctx, conversation.UpdateLeadInput{Name: "Priya"})
	send(t, uc, "hello")
	cleared, err := uc.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if cleared.Archived == nil || cleared.Archived.LeadName != "Priya" {
		t.Errorf("expected archived record to carry the lead name, got %+v", cleared.Archived)
	}
}
