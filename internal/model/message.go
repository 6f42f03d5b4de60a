package model

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderAI     Sender = "ai"
	SenderUser   Sender = "user"
	SenderSystem Sender = "system"
)

// Message is one immutable entry of a conversation transcript.
type Message struct {
	ID        string // msg_<unixmillis>_<9 base36 chars>
	Sender    Sender
	Content   string
	Timestamp time.Time
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewMessage stamps a message with a fresh ID and the given time.
func NewMessage(sender Sender, content string, now time.Time) Message {
	return Message{
		ID:        NewMessageID(now),
		Sender:    sender,
		Content:   content,
		Timestamp: now,
	}
}

// NewMessageID returns msg_<unixmillis>_<9 random base36 chars>.
func NewMessageID(now time.Time) string {
	return newID("msg", now)
}

// NewConversationID returns conv_<unixmillis>_<9 random base36 chars>.
func NewConversationID(now time.Time) string {
	return newID("conv", now)
}

func newID(prefix string, now time.Time) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte('_')
	sb.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	sb.WriteByte('_')
	for i := 0; i < 9; i++ {
		sb.WriteByte(base36[rand.IntN(len(base36))])
	}
	return sb.String()
}

// CloneMessages returns an independent copy of msgs.
func CloneMessages(msgs []Message) []Message {
	if msgs == nil {
		return []Message{}
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// TimestampLayout renders UTC instants with millisecond precision, e.g. 2024-05-01T10:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
