package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/krit/mlbb-counter-website/internal/data"
	"github.com/krit/mlbb-counter-website/internal/domain"
	"github.com/krit/mlbb-counter-website/internal/repository"
)

// RuleService owns the two rule collections: hero-counter rules (compiled-in
// base plus an admin-editable custom list) and item-counter rules (custom
// only). The custom lists are edited by position, matching the admin UI.
type RuleService struct {
	stores *repository.Stores
}

func NewRuleService(stores *repository.Stores) *RuleService {
	return &RuleService{stores: stores}
}

// Rules returns the effective counter-rule list: base rules first, then the
// custom list in insertion order.
func (s *RuleService) Rules(ctx context.Context) ([]domain.CounterRule, error) {
	custom, err := s.stores.CustomRules.Get(ctx)
	if err != nil {
		return nil, err
	}
	rules := make([]domain.CounterRule, 0, len(data.CounterRules)+len(custom))
	rules = append(rules, data.CounterRules...)
	rules = append(rules, custom...)
	return rules, nil
}

func (s *RuleService) CustomRules(ctx context.Context) ([]domain.CounterRule, error) {
	return s.stores.CustomRules.Get(ctx)
}

func normalizeRule(r domain.CounterRule) (domain.CounterRule, error) {
	r.EnemyTags = domain.NormalizeTags(r.EnemyTags)
	if err := r.Validate(); err != nil {
		return domain.CounterRule{}, err
	}
	return r, nil
}

func (s *RuleService) AddRule(ctx context.Context, r domain.CounterRule) ([]domain.CounterRule, error) {
	r, err := normalizeRule(r)
	if err != nil {
		return nil, err
	}
	return s.stores.CustomRules.Add(ctx, r)
}

func (s *RuleService) UpdateRule(ctx context.Context, index int, r domain.CounterRule) ([]domain.CounterRule, error) {
	r, err := normalizeRule(r)
	if err != nil {
		return nil, err
	}
	return s.stores.CustomRules.UpdateAt(ctx, index, r)
}

func (s *RuleService) DeleteRule(ctx context.Context, index int) ([]domain.CounterRule, error) {
	return s.stores.CustomRules.DeleteAt(ctx, index)
}

func (s *RuleService) ResetRules(ctx context.Context) error {
	return s.stores.CustomRules.Reset(ctx)
}

// ExportRules returns the custom rule list as a JSON array.
func (s *RuleService) ExportRules(ctx context.Context) ([]byte, error) {
	rules, err := s.stores.CustomRules.Get(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(rules, "", "  ")
}

// ImportRules replaces the custom rule list with the given JSON array. The
// payload must be an array and every element is validated before anything
// is written; a single bad element rejects the whole batch.
func (s *RuleService) ImportRules(ctx context.Context, raw []byte) ([]domain.CounterRule, error) {
	var rules []domain.CounterRule
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, domain.ErrInvalidImport
	}
	if rules == nil {
		// json.Unmarshal accepts the literal null without touching the
		// slice; only a real array may replace the collection.
		return nil, domain.ErrInvalidImport
	}
	for i := range rules {
		normalized, err := normalizeRule(rules[i])
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", domain.ErrInvalidImport, i, err)
		}
		rules[i] = normalized
	}
	if err := s.stores.CustomRules.Save(ctx, rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (s *RuleService) ItemRules(ctx context.Context) ([]domain.ItemCounterRule, error) {
	return s.stores.ItemCounterRules.Get(ctx)
}

func (s *RuleService) AddItemRule(ctx context.Context, r domain.ItemCounterRule) ([]domain.ItemCounterRule, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return s.stores.ItemCounterRules.Add(ctx, r)
}

func (s *RuleService) UpdateItemRule(ctx context.Context, index int, r domain.ItemCounterRule) ([]domain.ItemCounterRule, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return s.stores.ItemCounterRules.UpdateAt(ctx, index, r)
}

func (s *RuleService) DeleteItemRule(ctx context.Context, index int) ([]domain.ItemCounterRule, error) {
	return s.stores.ItemCounterRules.DeleteAt(ctx, index)
}

func (s *RuleService) ResetItemRules(ctx context.Context) error {
	return s.stores.ItemCounterRules.Reset(ctx)
}
