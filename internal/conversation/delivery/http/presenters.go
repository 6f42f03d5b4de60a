package http

import (
	"lead-qualification-assistant/internal/conversation"
	"lead-qualification-assistant/internal/model"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Content string `json:"content" binding:"required,max=4000"`
}

func (r sendMessageReq) toInput() conversation.SendMessageInput {
	return conversation.SendMessageInput{Content: r.Content}
}

// ---

type updateLeadReq struct {
	Name  string `json:"name"  binding:"max=120"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
	Email string `json:"email" binding:"omitempty,email"`
}

func (r updateLeadReq) toInput() conversation.UpdateLeadInput {
	return conversation.UpdateLeadInput{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
	}
}

// ---

type listHistoryReq struct {
	Search         string `form:"search"`
	Classification string `form:"classification"`
	Limit          int    `form:"limit"`
	Offset         int    `form:"offset"`
}

func (r listHistoryReq) toInput() conversation.ListHistoryInput {
	return conversation.ListHistoryInput{
		Search:         r.Search,
		Classification: r.Classification,
		Limit:          r.Limit,
		Offset:         r.Offset,
	}
}

// ---

type exportReq struct {
	Format   string            `form:"format"`
	Metadata map[string]string `form:"-"`
}

func (r exportReq) toInput() conversation.ExportInput {
	return conversation.ExportInput{
		Format:   r.Format,
		Metadata: r.Metadata,
	}
}

// ---

type profileReq struct {
	BusinessName  string `json:"businessName"  binding:"required,max=200"`
	Industry      string `json:"industry"      binding:"required,max=100"`
	Location      string `json:"location"      binding:"required,max=200"`
	AgentName     string `json:"agentName"     binding:"required,max=100"`
	ResponseStyle string `json:"responseStyle" binding:"required,max=100"`
}

func (r profileReq) toModel() model.BusinessProfile {
	return model.BusinessProfile{
		BusinessName:  r.BusinessName,
		Industry:      r.Industry,
		Location:      r.Location,
		AgentName:     r.AgentName,
		ResponseStyle: r.ResponseStyle,
	}
}

type rulesReq struct {
	HotCriteria     string `json:"hotCriteria"     binding:"required,max=1000"`
	ColdCriteria    string `json:"coldCriteria"    binding:"required,max=1000"`
	InvalidCriteria string `json:"invalidCriteria" binding:"required,max=1000"`
}

func (r rulesReq) toModel() model.ClassificationRules {
	return model.ClassificationRules{
		HotCriteria:     r.HotCriteria,
		ColdCriteria:    r.ColdCriteria,
		InvalidCriteria: r.InvalidCriteria,
	}
}

// --- Response DTOs ---

type messageResp struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:        m.ID,
		Sender:    string(m.Sender),
		Content:   m.Content,
		Timestamp: model.FormatTimestamp(m.Timestamp),
	}
}

func newMessagesResp(msgs []model.Message) []messageResp {
	out := make([]messageResp, len(msgs))
	for i, m := range msgs {
		out[i] = newMessageResp(m)
	}
	return out
}

type leadResp struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type conversationResp struct {
	ID             string        `json:"id"`
	Lead           leadResp      `json:"lead"`
	Messages       []messageResp `json:"messages"`
	MessageCount   int           `json:"messageCount"`
	Classification string        `json:"classification"`
	State          string        `json:"state"`
	ResumedFrom    string        `json:"resumedFrom,omitempty"`
}

func newConversationResp(out conversation.ConversationOutput) conversationResp {
	return conversationResp{
		ID:             out.ID,
		Lead:           leadResp{Name: out.Lead.Name, Phone: out.Lead.Phone, Email: out.Lead.Email},
		Messages:       newMessagesResp(out.Messages),
		MessageCount:   len(out.Messages),
		Classification: string(out.Classification),
		State:          string(out.State),
		ResumedFrom:    out.ResumedFrom,
	}
}

type sendMessageResp struct {
	UserMessage    messageResp      `json:"userMessage"`
	Reply          messageResp      `json:"reply"`
	Failed         bool             `json:"failed"`
	Classification string           `json:"classification"`
	Conversation   conversationResp `json:"conversation"`
}

func (h *handler) newSendMessageResp(out conversation.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		UserMessage:    newMessageResp(out.UserMessage),
		Reply:          newMessageResp(out.Reply),
		Failed:         out.Failed,
		Classification: string(out.Classification),
		Conversation:   newConversationResp(out.Conversation),
	}
}

type classifyResp struct {
	Classification string `json:"classification"`
	MessageCount   int    `json:"messageCount"`
}

func (h *handler) newClassifyResp(out conversation.ClassifyOutput) classifyResp {
	return classifyResp{
		Classification: string(out.Classification),
		MessageCount:   out.MessageCount,
	}
}

// historyResp omits the transcript in list views.
type historyResp struct {
	ID             string        `json:"id"`
	LeadName       string        `json:"leadName"`
	LeadPhone      string        `json:"leadPhone,omitempty"`
	LeadEmail      string        `json:"leadEmail,omitempty"`
	Messages       []messageResp `json:"messages,omitempty"`
	Classification string        `json:"classification"`
	Duration       int           `json:"duration"`
	DurationText   string        `json:"durationText"`
	MessageCount   int           `json:"messageCount"`
	StartedAt      string        `json:"startedAt"`
	EndedAt        string        `json:"endedAt"`
	LastMessage    string        `json:"lastMessage,omitempty"`
	ResumedFrom    string        `json:"resumedFrom,omitempty"`
}

func newHistoryResp(h model.ConversationHistory, withMessages bool) historyResp {
	resp := historyResp{
		ID:             h.ID,
		LeadName:       h.LeadName,
		LeadPhone:      h.LeadPhone,
		LeadEmail:      h.LeadEmail,
		Classification: string(h.Classification),
		Duration:       h.Duration,
		DurationText:   h.FormattedDuration(),
		MessageCount:   h.MessageCount,
		StartedAt:      model.FormatTimestamp(h.StartedAt),
		EndedAt:        model.FormatTimestamp(h.EndedAt),
		LastMessage:    h.LastMessage,
		ResumedFrom:    h.ResumedFrom,
	}
	if withMessages {
		resp.Messages = newMessagesResp(h.Messages)
	}
	return resp
}

type clearResp struct {
	Archived     *historyResp     `json:"archived"`
	Conversation conversationResp `json:"conversation"`
}

func (h *handler) newClearResp(out conversation.ClearOutput) clearResp {
	resp := clearResp{Conversation: newConversationResp(out.Conversation)}
	if out.Archived != nil {
		archived := newHistoryResp(*out.Archived, false)
		resp.Archived = &archived
	}
	return resp
}

type listHistoryResp struct {
	Items  []historyResp `json:"items"`
	Total  int           `json:"total"`
	All    int           `json:"all"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

func (h *handler) newListHistoryResp(out conversation.ListHistoryOutput) listHistoryResp {
	items := make([]historyResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newHistoryResp(item, false)
	}
	return listHistoryResp{
		Items:  items,
		Total:  out.Total,
		All:    out.All,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type profileResp struct {
	BusinessName  string `json:"businessName"`
	Industry      string `json:"industry"`
	Location      string `json:"location"`
	AgentName     string `json:"agentName"`
	ResponseStyle string `json:"responseStyle"`
}

func newProfileResp(p model.BusinessProfile) profileResp {
	return profileResp{
		BusinessName:  p.BusinessName,
		Industry:      p.Industry,
		Location:      p.Location,
		AgentName:     p.AgentName,
		ResponseStyle: p.ResponseStyle,
	}
}

type rulesResp struct {
	HotCriteria     string `json:"hotCriteria"`
	ColdCriteria    string `json:"coldCriteria"`
	InvalidCriteria string `json:"invalidCriteria"`
}

func newRulesResp(r model.ClassificationRules) rulesResp {
	return rulesResp{
		HotCriteria:     r.HotCriteria,
		ColdCriteria:    r.ColdCriteria,
		InvalidCriteria: r.InvalidCriteria,
	}
}
