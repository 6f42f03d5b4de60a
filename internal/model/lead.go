package model

import (
	"fmt"
	"strings"
	"time"
)

// Classification is the sales readiness verdict for a lead.
type Classification string

const (
	ClassificationHot       Classification = "HOT"
	ClassificationCold      Classification = "COLD"
	ClassificationInvalid   Classification = "INVALID"
	ClassificationAnalyzing Classification = "ANALYZING"
)

// ParseClassification accepts a model verdict. Only HOT, COLD and INVALID are
// accepted, after trimming and upper-casing; anything else is not ok.
func ParseClassification(raw string) (Classification, bool) {
	switch c := Classification(strings.ToUpper(strings.TrimSpace(raw))); c {
	case ClassificationHot, ClassificationCold, ClassificationInvalid:
		return c, true
	default:
		return ClassificationAnalyzing, false
	}
}

// IsValid reports whether c is one of the four labels.
func (c Classification) IsValid() bool {
	switch c {
	case ClassificationHot, ClassificationCold, ClassificationInvalid, ClassificationAnalyzing:
		return true
	}
	return false
}

// ConversationState tracks where the active conversation is in its lifecycle.
type ConversationState string

const (
	StateEmpty              ConversationState = "EMPTY"
	StateAwaitingAIResponse ConversationState = "AWAITING_AI_RESPONSE"
	StateActive             ConversationState = "ACTIVE"
	StateClassifying        ConversationState = "CLASSIFYING"
	StateArchived           ConversationState = "ARCHIVED"
)

// Busy reports whether a reply or classification is in flight.
func (s ConversationState) Busy() bool {
	return s == StateAwaitingAIResponse || s == StateClassifying
}

// DefaultLeadName is used until the lead introduces themselves.
const DefaultLeadName = "Anonymous Lead"

// LeadInfo is the contact data attached to a conversation.
type LeadInfo struct {
	Name  string
	Phone string
	Email string
}

// BusinessProfile is the agent persona injected into every prompt.
type BusinessProfile struct {
	BusinessName  string
	Industry      string
	Location      string
	AgentName     string
	ResponseStyle string
}

// ClassificationRules are the business criteria appended to the classification prompt.
type ClassificationRules struct {
	HotCriteria     string
	ColdCriteria    string
	InvalidCriteria string
}

// ConversationHistory is the archived snapshot of a cleared conversation.
// It is created once and never modified.
type ConversationHistory struct {
	ID             string
	LeadName       string
	LeadPhone      string
	LeadEmail      string
	Messages       []Message
	Classification Classification
	Duration       int // seconds between first and last message
	MessageCount   int
	StartedAt      time.Time
	EndedAt        time.Time
	LastMessage    string
	ResumedFrom    string
}

// LeadInfo returns the contact data stored on the record.
func (h ConversationHistory) LeadInfo() LeadInfo {
	return LeadInfo{Name: h.LeadName, Phone: h.LeadPhone, Email: h.LeadEmail}
}

// FormattedDuration renders Duration as mm:ss.
func (h ConversationHistory) FormattedDuration() string {
	return fmt.Sprintf("%d:%02d", h.Duration/60, h.Duration%60)
}
