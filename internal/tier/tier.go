// Package tier implements the lane tier-list model: per-lane placements,
// the mutation helpers that keep a hero in at most one tier per lane, and
// the overall aggregation that merges five lane rankings into one.
package tier

import "github.com/krit/mlbb-counter-website/internal/domain"

// OverallEntry is an aggregated tier row of hero ids, before display
// resolution.
type OverallEntry struct {
	Tier    domain.TierRank
	HeroIDs []string
}

// BuildOverall merges every lane's placements into a single ranking. A
// hero's overall tier is the best tier it occupies in any lane; it appears
// exactly once, and tiers left with no heroes are omitted.
func BuildOverall(m domain.LaneTierMap) []OverallEntry {
	bestTier := make(map[string]domain.TierRank)
	for _, t := range domain.AllTiers {
		for _, lane := range domain.AllLanes {
			for _, id := range m[lane][t] {
				if _, ok := bestTier[id]; !ok {
					bestTier[id] = t
				}
			}
		}
	}

	var out []OverallEntry
	for _, t := range domain.AllTiers {
		var ids []string
		seen := make(map[string]struct{})
		for _, lane := range domain.AllLanes {
			for _, id := range m[lane][t] {
				if _, dup := seen[id]; dup {
					continue
				}
				if bestTier[id] != t {
					continue
				}
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			out = append(out, OverallEntry{Tier: t, HeroIDs: ids})
		}
	}
	return out
}

// AddHero places a hero into a lane tier, removing it from any other tier
// of that lane first. Adding is total: it succeeds whether or not the hero
// was previously placed.
func AddHero(m domain.LaneTierMap, lane domain.Lane, rank domain.TierRank, heroID string) {
	removeFromLane(m, lane, heroID)
	ensureLane(m, lane)
	m[lane][rank] = append(m[lane][rank], heroID)
}

// MoveHero moves a hero to a new tier within a lane. The from tier is
// advisory; the hero is stripped from every tier of the lane regardless, so
// moving an absent hero simply inserts it.
func MoveHero(m domain.LaneTierMap, lane domain.Lane, heroID string, from, to domain.TierRank) {
	_ = from
	AddHero(m, lane, to, heroID)
}

// RemoveHeroFromLane removes a hero from every tier of a lane.
func RemoveHeroFromLane(m domain.LaneTierMap, lane domain.Lane, heroID string) {
	removeFromLane(m, lane, heroID)
}

// HeroesNotInLane returns the ids from candidates that have no placement in
// the lane.
func HeroesNotInLane(m domain.LaneTierMap, lane domain.Lane, candidates []domain.Hero) []domain.Hero {
	placed := make(map[string]struct{})
	for _, t := range domain.AllTiers {
		for _, id := range m[lane][t] {
			placed[id] = struct{}{}
		}
	}
	var out []domain.Hero
	for _, h := range candidates {
		if _, ok := placed[h.ID]; !ok {
			out = append(out, h)
		}
	}
	return out
}

func ensureLane(m domain.LaneTierMap, lane domain.Lane) {
	if m[lane] == nil {
		m[lane] = make(map[domain.TierRank][]string, len(domain.AllTiers))
	}
}

func removeFromLane(m domain.LaneTierMap, lane domain.Lane, heroID string) {
	for _, t := range domain.AllTiers {
		ids := m[lane][t]
		if len(ids) == 0 {
			continue
		}
		kept := ids[:0:0]
		for _, id := range ids {
			if id != heroID {
				kept = append(kept, id)
			}
		}
		m[lane][t] = kept
	}
}
