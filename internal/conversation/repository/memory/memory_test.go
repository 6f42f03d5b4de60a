package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-qualification-assistant/internal/conversation/repository"
	"lead-qualification-assistant/internal/model"
	"lead-qualification-assistant/pkg/log"
)

func newRepo(opt Options) *implRepository {
	return New(log.NewNop(), opt)
}

func record(id, name, phone string, c model.Classification, contents ...string) model.ConversationHistory {
	msgs := make([]model.Message, len(contents))
	for i, content := range contents {
		msgs[i] = model.Message{ID: fmt.Sprintf("%s_m%d", id, i), Sender: model.SenderUser, Content: content}
	}
	return model.ConversationHistory{
		ID:             id,
		LeadName:       name,
		LeadPhone:      phone,
		Messages:       msgs,
		Classification: c,
		MessageCount:   len(msgs),
	}
}

func seed(t *testing.T, r *implRepository, records ...model.ConversationHistory) {
	t.Helper()
	for _, h := range records {
		require.NoError(t, r.CreateHistory(context.Background(), h))
	}
}

func TestListHistory_NewestFirst(t *testing.T) {
	r := newRepo(Options{})
	seed(t, r,
		record("conv_1", "A", "", model.ClassificationHot),
		record("conv_2", "B", "", model.ClassificationCold),
		record("conv_3", "C", "", model.ClassificationInvalid),
	)

	items, total, err := r.ListHistory(context.Background(), repository.ListHistoryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.Equal(t, "conv_3", items[0].ID)
	assert.Equal(t, "conv_1", items[2].ID)
}

func TestListHistory_Filters(t *testing.T) {
	r := newRepo(Options{})
	seed(t, r,
		record("conv_1", "Ravi Kumar", "+91 98765 43210", model.ClassificationHot, "Need a villa"),
		record("conv_2", "Anonymous Lead", "", model.ClassificationCold, "Just browsing apartments"),
		record("conv_3", "Priya", "022-555", model.ClassificationHot, "Office space in Pune"),
	)

	tests := []struct {
		name string
		opt  repository.ListHistoryOptions
		want []string
	}{
		{"name case-insensitive", repository.ListHistoryOptions{Search: "ravi"}, []string{"conv_1"}},
		{"phone substring", repository.ListHistoryOptions{Search: "98765"}, []string{"conv_1"}},
		{"message content", repository.ListHistoryOptions{Search: "APARTMENTS"}, []string{"conv_2"}},
		{"classification", repository.ListHistoryOptions{Classification: model.ClassificationHot}, []string{"conv_3", "conv_1"}},
		{"search and classification", repository.ListHistoryOptions{Search: "pune", Classification: model.ClassificationCold}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := r.ListHistory(context.Background(), tt.opt)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), total)
			ids := make([]string, 0, len(items))
			for _, h := range items {
				ids = append(ids, h.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestListHistory_Paging(t *testing.T) {
	r := newRepo(Options{})
	for i := 1; i <= 5; i++ {
		seed(t, r, record(fmt.Sprintf("conv_%d", i), "L", "", model.ClassificationAnalyzing))
	}

	items, total, err := r.ListHistory(context.Background(), repository.ListHistoryOptions{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, "conv_4", items[0].ID)
	assert.Equal(t, "conv_3", items[1].ID)

	items, _, err = r.ListHistory(context.Background(), repository.ListHistoryOptions{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMaxEntriesEvictsOldest(t *testing.T) {
	r := newRepo(Options{MaxEntries: 2})
	seed(t, r,
		record("conv_1", "A", "", model.ClassificationHot),
		record("conv_2", "B", "", model.ClassificationHot),
		record("conv_3", "C", "", model.ClassificationHot),
	)

	n, err := r.CountHistory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = r.GetOneHistory(context.Background(), "conv_1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRetentionExpiresRecords(t *testing.T) {
	r := newRepo(Options{Retention: 20 * time.Millisecond})
	seed(t, r, record("conv_1", "A", "", model.ClassificationHot))

	time.Sleep(60 * time.Millisecond)

	_, err := r.GetOneHistory(context.Background(), "conv_1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateHistory_RejectsDuplicates(t *testing.T) {
	r := newRepo(Options{})
	seed(t, r, record("conv_1", "A", "", model.ClassificationHot))

	err := r.CreateHistory(context.Background(), record("conv_1", "B", "", model.ClassificationCold))
	assert.ErrorIs(t, err, repository.ErrFailedToInsert)

	err = r.CreateHistory(context.Background(), model.ConversationHistory{})
	assert.ErrorIs(t, err, repository.ErrFailedToInsert)
}

func TestStoredHistoryIsIsolated(t *testing.T) {
	r := newRepo(Options{})
	h := record("conv_1", "A", "", model.ClassificationHot, "original")
	seed(t, r, h)

	h.Messages[0].Content = "mutated by caller"
	got, err := r.GetOneHistory(context.Background(), "conv_1")
	require.NoError(t, err)
	assert.Equal(t, "original", got.Messages[0].Content)

	got.Messages[0].Content = "mutated by reader"
	again, err := r.GetOneHistory(context.Background(), "conv_1")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Messages[0].Content)
}

func TestDeleteHistory(t *testing.T) {
	r := newRepo(Options{})
	seed(t, r, record("conv_1", "A", "", model.ClassificationHot))

	require.NoError(t, r.DeleteHistory(context.Background(), "conv_1"))
	assert.ErrorIs(t, r.DeleteHistory(context.Background(), "conv_1"), repository.ErrNotFound)
}

func TestProfileAndRules(t *testing.T) {
	r := newRepo(Options{
		Profile: model.BusinessProfile{AgentName: "Sarah"},
		Rules:   model.ClassificationRules{HotCriteria: "ready to buy"},
	})

	p, err := r.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sarah", p.AgentName)

	_, err = r.UpdateProfile(context.Background(), model.BusinessProfile{AgentName: "Arjun"})
	require.NoError(t, err)
	p, _ = r.GetProfile(context.Background())
	assert.Equal(t, "Arjun", p.AgentName)

	rules, err := r.UpdateRules(context.Background(), model.ClassificationRules{HotCriteria: "budget set"})
	require.NoError(t, err)
	assert.Equal(t, "budget set", rules.HotCriteria)
}
