package counter_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krit/mlbb-counter-website/internal/counter"
	"github.com/krit/mlbb-counter-website/internal/data"
	"github.com/krit/mlbb-counter-website/internal/domain"
)

func testHeroes(ids ...string) []domain.Hero {
	heroes := make([]domain.Hero, 0, len(ids))
	for _, id := range ids {
		heroes = append(heroes, domain.Hero{ID: id, Name: id, Role: domain.RoleTank})
	}
	return heroes
}

func simpleRule(tags []string, counterID string, priority int) domain.CounterRule {
	return domain.CounterRule{
		EnemyTags:  tags,
		CounterID:  counterID,
		WinRate:    50,
		Reason:     "reason " + counterID,
		Difficulty: domain.DifficultyEasy,
		Priority:   priority,
	}
}

func TestMatchCountersRequiresAllTags(t *testing.T) {
	enemy := domain.Hero{ID: "enemy", Tags: []string{"cable", "dash"}}
	heroes := testHeroes("a", "b")
	rules := []domain.CounterRule{
		simpleRule([]string{"cable"}, "a", 10),
		simpleRule([]string{"cable", "wall"}, "b", 20),
	}

	picks := counter.MatchCounters(enemy, rules, heroes)

	require.Len(t, picks, 1)
	assert.Equal(t, "a", picks[0].Hero.ID)
}

func TestMatchCountersSkipsSelfCounter(t *testing.T) {
	enemy := domain.Hero{ID: "enemy", Tags: []string{"dash"}}
	heroes := append(testHeroes("a"), domain.Hero{ID: "enemy"})
	rules := []domain.CounterRule{
		simpleRule([]string{"dash"}, "enemy", 100),
		simpleRule([]string{"dash"}, "a", 10),
	}

	picks := counter.MatchCounters(enemy, rules, heroes)

	require.Len(t, picks, 1)
	assert.Equal(t, "a", picks[0].Hero.ID)
}

func TestMatchCountersDedupKeepsHighestPriority(t *testing.T) {
	enemy := domain.Hero{ID: "enemy", Tags: []string{"dash", "burst"}}
	heroes := testHeroes("a", "b")

	low := simpleRule([]string{"dash"}, "a", 50)
	low.Reason = "low"
	high := simpleRule([]string{"burst"}, "a", 90)
	high.Reason = "high"
	rules := []domain.CounterRule{
		simpleRule([]string{"dash"}, "b", 70),
		low,
		high,
	}

	picks := counter.MatchCounters(enemy, rules, heroes)

	require.Len(t, picks, 2)
	assert.Equal(t, "a", picks[0].Hero.ID)
	assert.Equal(t, "high", picks[0].Reason)
	assert.Equal(t, "b", picks[1].Hero.ID)
}

func TestMatchCountersEqualPriorityKeepsFirstRule(t *testing.T) {
	enemy := domain.Hero{ID: "enemy", Tags: []string{"dash", "burst"}}
	heroes := testHeroes("a")

	first := simpleRule([]string{"dash"}, "a", 60)
	first.Reason = "first"
	second := simpleRule([]string{"burst"}, "a", 60)
	second.Reason = "second"

	picks := counter.MatchCounters(enemy, []domain.CounterRule{first, second}, heroes)

	require.Len(t, picks, 1)
	assert.Equal(t, "first", picks[0].Reason)
}

func TestMatchCountersBoundAndOrdering(t *testing.T) {
	enemy := domain.Hero{ID: "enemy", Tags: []string{"dash"}}

	var heroes []domain.Hero
	var rules []domain.CounterRule
	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("hero-%02d", i)
		heroes = append(heroes, domain.Hero{ID: id, Name: id})
		rules = append(rules, simpleRule([]string{"dash"}, id, i))
	}

	picks := counter.MatchCounters(enemy, rules, heroes)

	require.Len(t, picks, counter.MaxCounterPicks)
	for i := 0; i < len(picks); i++ {
		assert.Equal(t, fmt.Sprintf("hero-%02d", 19-i), picks[i].Hero.ID)
	}
}

func TestMatchCountersDropsUnknownCounterIDs(t *testing.T) {
	enemy := domain.Hero{ID: "enemy", Tags: []string{"dash"}}
	heroes := testHeroes("a")
	rules := []domain.CounterRule{
		simpleRule([]string{"dash"}, "deleted-hero", 100),
		simpleRule([]string{"dash"}, "a", 10),
	}

	picks := counter.MatchCounters(enemy, rules, heroes)

	require.Len(t, picks, 1)
	assert.Equal(t, "a", picks[0].Hero.ID)
}

func TestMatchCountersFannyAgainstBaseData(t *testing.T) {
	var fanny domain.Hero
	for _, h := range data.Heroes {
		if h.ID == "fanny" {
			fanny = h
			break
		}
	}
	require.NotEmpty(t, fanny.ID)

	picks := counter.MatchCounters(fanny, data.CounterRules, data.Heroes)

	require.NotEmpty(t, picks)
	assert.Equal(t, "khufra", picks[0].Hero.ID)
	assert.InDelta(t, 72, picks[0].WinRate, 0.001)
	assert.Equal(t, domain.DifficultyEasy, picks[0].Difficulty)
	assert.LessOrEqual(t, len(picks), counter.MaxCounterPicks)

	seen := make(map[string]bool)
	for _, p := range picks {
		assert.False(t, seen[p.Hero.ID], "duplicate counter %s", p.Hero.ID)
		seen[p.Hero.ID] = true
		assert.NotEqual(t, "fanny", p.Hero.ID)
	}
}
