package usecase

import (
	"context"
	"strings"

	"lead-qualification-assistant/internal/conversation"
	"lead-qualification-assistant/internal/model"
)

func (uc *implUseCase) GetProfile(ctx context.Context) (model.BusinessProfile, error) {
	p, err := uc.repo.GetProfile(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.GetProfile: %v", err)
		return model.BusinessProfile{}, err
	}
	return p, nil
}

// UpdateProfile replaces the business profile. Every field is required.
func (uc *implUseCase) UpdateProfile(ctx context.Context, profile model.BusinessProfile) (model.BusinessProfile, error) {
	profile = model.BusinessProfile{
		BusinessName:  strings.TrimSpace(profile.BusinessName),
		Industry:      strings.TrimSpace(profile.Industry),
		Location:      strings.TrimSpace(profile.Location),
		AgentName:     strings.TrimSpace(profile.AgentName),
		ResponseStyle: strings.TrimSpace(profile.ResponseStyle),
	}
	for _, f := range []string{profile.BusinessName, profile.Industry, profile.Location, profile.AgentName, profile.ResponseStyle} {
		if f == "" {
			return model.BusinessProfile{}, conversation.ErrInvalidProfile
		}
	}

	p, err := uc.repo.UpdateProfile(ctx, profile)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.UpdateProfile: %v", err)
		return model.BusinessProfile{}, err
	}
	return p, nil
}

func (uc *implUseCase) GetRules(ctx context.Context) (model.ClassificationRules, error) {
	r, err := uc.repo.GetRules(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.GetRules: %v", err)
		return model.ClassificationRules{}, err
	}
	return r, nil
}

// UpdateRules replaces the classification criteria. Every criterion is required.
func (uc *implUseCase) UpdateRules(ctx context.Context, rules model.ClassificationRules) (model.ClassificationRules, error) {
	rules = model.ClassificationRules{
		HotCriteria:     strings.TrimSpace(rules.HotCriteria),
		ColdCriteria:    strings.TrimSpace(rules.ColdCriteria),
		InvalidCriteria: strings.TrimSpace(rules.InvalidCriteria),
	}
	if rules.HotCriteria == "" || rules.ColdCriteria == "" || rules.InvalidCriteria == "" {
		return model.ClassificationRules{}, conversation.ErrInvalidRules
	}

	r, err := uc.repo.UpdateRules(ctx, rules)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.UpdateRules: %v", err)
		return model.ClassificationRules{}, err
	}
	return r, nil
}
