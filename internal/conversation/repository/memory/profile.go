package memory

import (
	"context"

	"lead-qualification-assistant/internal/model"
)

func (r *implRepository) GetProfile(ctx context.Context) (model.BusinessProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile, nil
}

func (r *implRepository) UpdateProfile(ctx context.Context, profile model.BusinessProfile) (model.BusinessProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = profile
	return r.profile, nil
}

func (r *implRepository) GetRules(ctx context.Context) (model.ClassificationRules, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rules, nil
}

func (r *implRepository) UpdateRules(ctx context.Context, rules model.ClassificationRules) (model.ClassificationRules, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = rules
	return r.rules, nil
}
