// Package counter implements the counter-pick and item-recommendation
// engines. Both are pure functions over the merged catalogs and the rule
// tables; lookup misses degrade silently so that a rule referencing a
// deleted hero or item drops out of the result instead of failing it.
package counter

import (
	"sort"

	"github.com/krit/mlbb-counter-website/internal/domain"
)

// MaxCounterPicks bounds the counter list shown for one enemy.
const MaxCounterPicks = 12

// MatchCounters returns the ranked counter picks against the given enemy.
// A rule matches when every one of its enemy tags is present on the enemy
// (set containment). Rules naming the enemy itself as the counter are
// skipped. When several rules recommend the same hero, the one with the
// strictly highest priority wins; on equal priority the earlier rule in
// declaration order is kept.
func MatchCounters(enemy domain.Hero, rules []domain.CounterRule, heroes []domain.Hero) []domain.CounterPick {
	type match struct {
		rule  domain.CounterRule
		order int
	}

	best := make(map[string]match)
	var ids []string
	for i, r := range rules {
		if r.CounterID == enemy.ID {
			continue
		}
		if !enemy.HasAllTags(r.EnemyTags) {
			continue
		}
		if prev, ok := best[r.CounterID]; ok {
			if r.Priority > prev.rule.Priority {
				best[r.CounterID] = match{rule: r, order: prev.order}
			}
			continue
		}
		best[r.CounterID] = match{rule: r, order: i}
		ids = append(ids, r.CounterID)
	}

	sort.SliceStable(ids, func(a, b int) bool {
		ma, mb := best[ids[a]], best[ids[b]]
		if ma.rule.Priority != mb.rule.Priority {
			return ma.rule.Priority > mb.rule.Priority
		}
		return ma.order < mb.order
	})

	if len(ids) > MaxCounterPicks {
		ids = ids[:MaxCounterPicks]
	}

	byID := make(map[string]domain.Hero, len(heroes))
	for _, h := range heroes {
		byID[h.ID] = h
	}

	picks := make([]domain.CounterPick, 0, len(ids))
	for _, id := range ids {
		hero, ok := byID[id]
		if !ok {
			continue // rule references an unknown hero, drop it
		}
		r := best[id].rule
		picks = append(picks, domain.CounterPick{
			Hero:       hero,
			WinRate:    r.WinRate,
			Reason:     r.Reason,
			Difficulty: r.Difficulty,
		})
	}
	return picks
}
