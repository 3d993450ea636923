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

func newRuleService() *service.RuleService {
	return service.NewRuleService(repository.NewStores(memstore.New()))
}

func validRule() domain.CounterRule {
	return domain.CounterRule{
		EnemyTags:  []string{"dash"},
		CounterID:  "khufra",
		WinRate:    65,
		Reason:     "stops dashes cold",
		Difficulty: domain.DifficultyEasy,
		Priority:   95,
	}
}

func TestRulesConcatenatesBaseAndCustom(t *testing.T) {
	ctx := context.Background()
	svc := newRuleService()

	_, err := svc.AddRule(ctx, validRule())
	require.NoError(t, err)

	rules, err := svc.Rules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, len(data.CounterRules)+1)
	assert.Equal(t, data.CounterRules[0], rules[0])
	assert.Equal(t, "stops dashes cold", rules[len(rules)-1].Reason)
}

func TestAddRuleNormalizesTags(t *testing.T) {
	ctx := context.Background()
	svc := newRuleService()

	r := validRule()
	r.EnemyTags = []string{" Dash ", "CC", "dash"}

	rules, err := svc.AddRule(ctx, r)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, []string{"dash", "cc"}, rules[0].EnemyTags)
}

func TestAddRuleValidation(t *testing.T) {
	ctx := context.Background()
	svc := newRuleService()

	r := validRule()
	r.Reason = "  "
	_, err := svc.AddRule(ctx, r)
	assert.ErrorIs(t, err, domain.ErrEmptyReason)

	r = validRule()
	r.EnemyTags = []string{"  "}
	_, err = svc.AddRule(ctx, r)
	assert.ErrorIs(t, err, domain.ErrEmptyEnemyTags)

	r = validRule()
	r.Difficulty = "Impossible"
	_, err = svc.AddRule(ctx, r)
	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
}

func TestUpdateRuleOutOfRange(t *testing.T) {
	ctx := context.Background()
	svc := newRuleService()

	_, err := svc.UpdateRule(ctx, 3, validRule())
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestImportRulesReplacesCustomList(t *testing.T) {
	ctx := context.Background()
	svc := newRuleService()

	_, err := svc.AddRule(ctx, validRule())
	require.NoError(t, err)

	raw := []byte(`[
		{"enemyTags":["burst"],"counterId":"esmeralda","winRate":58,"reason":"shield eats poke","difficulty":"Medium","priority":70}
	]`)
	rules, err := svc.ImportRules(ctx, raw)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "esmeralda", rules[0].CounterID)

	custom, err := svc.CustomRules(ctx)
	require.NoError(t, err)
	assert.Len(t, custom, 1)
}

func TestImportRulesRejectsWholeBatchOnOneBadElement(t *testing.T) {
	ctx := context.Background()
	svc := newRuleService()

	_, err := svc.AddRule(ctx, validRule())
	require.NoError(t, err)

	// Last element has no reason; nothing may be written.
	raw := []byte(`[
		{"enemyTags":["burst"],"counterId":"esmeralda","winRate":58,"reason":"ok","difficulty":"Medium","priority":70},
		{"enemyTags":["poke"],"counterId":"lunox","winRate":52,"difficulty":"Easy","priority":40}
	]`)
	_, err = svc.ImportRules(ctx, raw)
	assert.ErrorIs(t, err, domain.ErrInvalidImport)

	custom, err := svc.CustomRules(ctx)
	require.NoError(t, err)
	require.Len(t, custom, 1)
	assert.Equal(t, "stops dashes cold", custom[0].Reason)
}

func TestImportRulesRejectsMalformedJSON(t *testing.T) {
	ctx := context.Background()
	svc := newRuleService()

	_, err := svc.ImportRules(ctx, []byte(`{"not":"an array"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidImport)
}

func TestImportRulesRejectsNullWithoutWiping(t *testing.T) {
	ctx := context.Background()
	svc := newRuleService()

	_, err := svc.AddRule(ctx, validRule())
	require.NoError(t, err)

	// The literal null unmarshals into a nil slice without error; it must
	// not pass for an empty array and erase the collection.
	_, err = svc.ImportRules(ctx, []byte(`null`))
	assert.ErrorIs(t, err, domain.ErrInvalidImport)

	custom, err := svc.CustomRules(ctx)
	require.NoError(t, err)
	require.Len(t, custom, 1)
	assert.Equal(t, "stops dashes cold", custom[0].Reason)
}

func TestImportRulesAcceptsEmptyArray(t *testing.T) {
	ctx := context.Background()
	svc := newRuleService()

	_, err := svc.AddRule(ctx, validRule())
	require.NoError(t, err)

	rules, err := svc.ImportRules(ctx, []byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, rules)

	custom, err := svc.CustomRules(ctx)
	require.NoError(t, err)
	assert.Empty(t, custom)
}

func TestItemRuleLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newRuleService()

	rule := domain.ItemCounterRule{
		ItemIDs:       []string{data.ItemSeaHalberd},
		TargetHeroIDs: []string{"esmeralda"},
		Reason:        "anti-heal against shield stacking",
		Phase:         domain.PhaseEarly,
		Priority:      10,
	}

	rules, err := svc.AddItemRule(ctx, rule)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	rule.Priority = 20
	rules, err = svc.UpdateItemRule(ctx, 0, rule)
	require.NoError(t, err)
	assert.Equal(t, 20, rules[0].Priority)

	rules, err = svc.DeleteItemRule(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestAddItemRuleValidation(t *testing.T) {
	ctx := context.Background()
	svc := newRuleService()

	_, err := svc.AddItemRule(ctx, domain.ItemCounterRule{
		TargetHeroIDs: []string{"x"},
		Reason:        "r",
		Phase:         domain.PhaseEarly,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyItemIDs)

	_, err = svc.AddItemRule(ctx, domain.ItemCounterRule{
		ItemIDs:       []string{"i"},
		TargetHeroIDs: []string{"x"},
		Reason:        "r",
		Phase:         "mid",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPhase)
}
