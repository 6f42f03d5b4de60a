package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"lead-qualification-assistant/internal/conversation/repository"
	"lead-qualification-assistant/internal/model"
	"lead-qualification-assistant/pkg/log"
)

// Options configures the in-memory store.
type Options struct {
	// MaxEntries bounds the history; the oldest record is evicted first. 0 means unbounded.
	MaxEntries int
	// Retention expires history records after this long. 0 keeps them forever.
	Retention time.Duration

	Profile model.BusinessProfile
	Rules   model.ClassificationRules
}

type implRepository struct {
	l       log.Logger
	history *expirable.LRU[string, model.ConversationHistory]

	mu      sync.RWMutex
	profile model.BusinessProfile
	rules   model.ClassificationRules
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a process-local repository.
func New(l log.Logger, opt Options) *implRepository {
	r := &implRepository{
		l:       l,
		profile: opt.Profile,
		rules:   opt.Rules,
	}
	r.history = expirable.NewLRU[string, model.ConversationHistory](opt.MaxEntries, r.onEvict, opt.Retention)
	return r
}

func (r *implRepository) onEvict(id string, _ model.ConversationHistory) {
	r.l.Debugf(context.Background(), "memory.history: %s dropped", id)
}
