package service

import (
	"context"

	"github.com/krit/mlbb-counter-website/internal/counter"
	"github.com/krit/mlbb-counter-website/internal/domain"
)

// CounterService composes the catalog and rule collections into the full
// counter report for one enemy hero.
type CounterService struct {
	catalog *CatalogService
	rules   *RuleService
}

func NewCounterService(catalog *CatalogService, rules *RuleService) *CounterService {
	return &CounterService{catalog: catalog, rules: rules}
}

// CounterData is the per-enemy report: the resolved enemy, the ranked
// counter picks, and the early/late item recommendations.
type CounterData struct {
	Enemy    domain.Hero               `json:"enemy"`
	Counters []domain.CounterPick      `json:"counters"`
	Items    domain.ItemRecommendation `json:"items"`
}

func (s *CounterService) GetCounterData(ctx context.Context, enemyID string) (*CounterData, error) {
	heroes, err := s.catalog.Heroes(ctx)
	if err != nil {
		return nil, err
	}
	enemy, err := s.catalog.HeroByID(ctx, enemyID)
	if err != nil {
		return nil, err
	}

	rules, err := s.rules.Rules(ctx)
	if err != nil {
		return nil, err
	}
	picks := counter.MatchCounters(enemy, rules, heroes)

	items, err := s.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}
	rec := counter.RecommendItems(enemy, items)

	itemRules, err := s.rules.ItemRules(ctx)
	if err != nil {
		return nil, err
	}
	rec = counter.ApplyItemRules(rec, enemy.ID, itemRules, items)

	return &CounterData{Enemy: enemy, Counters: picks, Items: rec}, nil
}
