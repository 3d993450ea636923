package tier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krit/mlbb-counter-website/internal/data"
	"github.com/krit/mlbb-counter-website/internal/domain"
	"github.com/krit/mlbb-counter-website/internal/tier"
)

func laneTiersContaining(m domain.LaneTierMap, lane domain.Lane, heroID string) []domain.TierRank {
	var found []domain.TierRank
	for rank, ids := range m[lane] {
		for _, id := range ids {
			if id == heroID {
				found = append(found, rank)
			}
		}
	}
	return found
}

func TestAddHeroKeepsOneTierPerLane(t *testing.T) {
	m := domain.LaneTierMap{}

	tier.AddHero(m, domain.LaneMid, domain.TierA, "kagura")
	tier.AddHero(m, domain.LaneMid, domain.TierSS, "kagura")

	assert.Equal(t, []domain.TierRank{domain.TierSS}, laneTiersContaining(m, domain.LaneMid, "kagura"))
}

func TestAddHeroLeavesOtherLanesAlone(t *testing.T) {
	m := domain.LaneTierMap{}

	tier.AddHero(m, domain.LaneMid, domain.TierA, "kagura")
	tier.AddHero(m, domain.LaneGold, domain.TierB, "kagura")

	assert.Equal(t, []domain.TierRank{domain.TierA}, laneTiersContaining(m, domain.LaneMid, "kagura"))
	assert.Equal(t, []domain.TierRank{domain.TierB}, laneTiersContaining(m, domain.LaneGold, "kagura"))
}

func TestMoveHeroIsTotal(t *testing.T) {
	m := domain.LaneTierMap{}

	// Moving a hero that was never placed still lands it in the target tier.
	tier.MoveHero(m, domain.LaneExp, "yu-zhong", domain.TierC, domain.TierS)

	assert.Equal(t, []domain.TierRank{domain.TierS}, laneTiersContaining(m, domain.LaneExp, "yu-zhong"))
}

func TestRemoveHeroFromLane(t *testing.T) {
	m := domain.LaneTierMap{}
	tier.AddHero(m, domain.LaneRoam, domain.TierS, "khufra")

	tier.RemoveHeroFromLane(m, domain.LaneRoam, "khufra")
	assert.Empty(t, laneTiersContaining(m, domain.LaneRoam, "khufra"))

	// Removing again is a no-op.
	tier.RemoveHeroFromLane(m, domain.LaneRoam, "khufra")
}

func TestBuildOverallBestTierWins(t *testing.T) {
	m := domain.LaneTierMap{}
	tier.AddHero(m, domain.LaneRoam, domain.TierA, "khufra")
	tier.AddHero(m, domain.LaneExp, domain.TierSS, "khufra")
	tier.AddHero(m, domain.LaneMid, domain.TierB, "kagura")

	overall := tier.BuildOverall(m)

	require.Len(t, overall, 2)
	assert.Equal(t, domain.TierSS, overall[0].Tier)
	assert.Equal(t, []string{"khufra"}, overall[0].HeroIDs)
	assert.Equal(t, domain.TierB, overall[1].Tier)
	assert.Equal(t, []string{"kagura"}, overall[1].HeroIDs)
}

func TestBuildOverallOmitsEmptyTiersAndDedups(t *testing.T) {
	m := domain.LaneTierMap{}
	tier.AddHero(m, domain.LaneRoam, domain.TierS, "tigreal")
	tier.AddHero(m, domain.LaneExp, domain.TierS, "tigreal")

	overall := tier.BuildOverall(m)

	require.Len(t, overall, 1)
	assert.Equal(t, domain.TierS, overall[0].Tier)
	assert.Equal(t, []string{"tigreal"}, overall[0].HeroIDs)
}

func TestBuildOverallOnDefaultData(t *testing.T) {
	overall := tier.BuildOverall(data.DefaultTierMap())

	require.NotEmpty(t, overall)

	seen := make(map[string]bool)
	lastIdx := -1
	order := map[domain.TierRank]int{}
	for i, r := range domain.AllTiers {
		order[r] = i
	}
	for _, entry := range overall {
		require.NotEmpty(t, entry.HeroIDs)
		assert.Greater(t, order[entry.Tier], lastIdx)
		lastIdx = order[entry.Tier]
		for _, id := range entry.HeroIDs {
			assert.False(t, seen[id], "hero %s appears twice in overall", id)
			seen[id] = true
		}
	}
}

func TestHeroesNotInLane(t *testing.T) {
	m := domain.LaneTierMap{}
	tier.AddHero(m, domain.LaneMid, domain.TierA, "kagura")

	candidates := []domain.Hero{{ID: "kagura"}, {ID: "lunox"}}
	out := tier.HeroesNotInLane(m, domain.LaneMid, candidates)

	require.Len(t, out, 1)
	assert.Equal(t, "lunox", out[0].ID)
}
