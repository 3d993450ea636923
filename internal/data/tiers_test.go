package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krit/mlbb-counter-website/internal/data"
	"github.com/krit/mlbb-counter-website/internal/domain"
)

func baseHeroIDSet(t *testing.T) map[string]bool {
	t.Helper()

	ids := make(map[string]bool, len(data.Heroes))
	for _, h := range data.Heroes {
		ids[h.ID] = true
	}
	return ids
}

func TestDefaultTierMapIDsResolveInCatalog(t *testing.T) {
	ids := baseHeroIDSet(t)

	for lane, tiers := range data.DefaultTierMap() {
		for rank, heroIDs := range tiers {
			for _, id := range heroIDs {
				assert.True(t, ids[id], "lane %s tier %s references unknown hero id %q", lane, rank, id)
			}
		}
	}
}

func TestDefaultTierMapCoversAllLanes(t *testing.T) {
	m := data.DefaultTierMap()

	require.Len(t, m, len(domain.AllLanes))
	for _, lane := range domain.AllLanes {
		require.Contains(t, m, lane)
	}
}

func TestDefaultTierMapReturnsIndependentCopies(t *testing.T) {
	a := data.DefaultTierMap()
	a[domain.LaneMid][domain.TierSS] = append(a[domain.LaneMid][domain.TierSS], "scribble")

	b := data.DefaultTierMap()
	assert.NotContains(t, b[domain.LaneMid][domain.TierSS], "scribble")
}

func TestCounterRuleIDsResolveInCatalog(t *testing.T) {
	ids := baseHeroIDSet(t)

	for i, r := range data.CounterRules {
		assert.True(t, ids[r.CounterID], "rule %d references unknown counter id %q", i, r.CounterID)
	}
}
