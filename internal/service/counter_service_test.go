package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krit/mlbb-counter-website/internal/data"
	"github.com/krit/mlbb-counter-website/internal/domain"
	"github.com/krit/mlbb-counter-website/internal/repository"
	"github.com/krit/mlbb-counter-website/internal/repository/memstore"
	"github.com/krit/mlbb-counter-website/internal/service"
)

func newCounterStack() (*service.CounterService, *service.RuleService, *service.CatalogService) {
	stores := repository.NewStores(memstore.New())
	catalog := service.NewCatalogService(stores)
	rules := service.NewRuleService(stores)
	return service.NewCounterService(catalog, rules), rules, catalog
}

func TestGetCounterDataForFanny(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCounterStack()

	report, err := svc.GetCounterData(ctx, "fanny")
	require.NoError(t, err)

	assert.Equal(t, "fanny", report.Enemy.ID)
	require.NotEmpty(t, report.Counters)
	assert.Equal(t, "khufra", report.Counters[0].Hero.ID)
	assert.GreaterOrEqual(t, len(report.Items.Early), 2)
	assert.GreaterOrEqual(t, len(report.Items.Late), 2)
}

func TestGetCounterDataUnknownEnemy(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCounterStack()

	_, err := svc.GetCounterData(ctx, "no-such-hero")
	assert.ErrorIs(t, err, domain.ErrHeroNotFound)
}

func TestCustomRuleShowsUpInReport(t *testing.T) {
	ctx := context.Background()
	svc, rules, _ := newCounterStack()

	_, err := rules.AddRule(ctx, domain.CounterRule{
		EnemyTags:  []string{"cable"},
		CounterID:  "tigreal",
		WinRate:    80,
		Reason:     "custom tech pick",
		Difficulty: domain.DifficultyMedium,
		Priority:   999,
	})
	require.NoError(t, err)

	report, err := svc.GetCounterData(ctx, "fanny")
	require.NoError(t, err)

	require.NotEmpty(t, report.Counters)
	assert.Equal(t, "tigreal", report.Counters[0].Hero.ID)
	assert.Equal(t, "custom tech pick", report.Counters[0].Reason)
}

func TestItemRuleAugmentsReport(t *testing.T) {
	ctx := context.Background()
	svc, rules, _ := newCounterStack()

	_, err := rules.AddItemRule(ctx, domain.ItemCounterRule{
		ItemIDs:       []string{data.ItemWinterTruncheon},
		TargetHeroIDs: []string{"fanny"},
		Reason:        "freeze through the cable dive",
		Phase:         domain.PhaseLate,
		Priority:      50,
	})
	require.NoError(t, err)

	report, err := svc.GetCounterData(ctx, "fanny")
	require.NoError(t, err)

	var found bool
	for _, it := range report.Items.Late {
		if it.ID == data.ItemWinterTruncheon {
			found = true
			assert.Equal(t, "freeze through the cable dive", it.Description)
		}
	}
	assert.True(t, found)
}
