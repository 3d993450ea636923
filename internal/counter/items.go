package counter

import (
	"fmt"

	"github.com/krit/mlbb-counter-website/internal/data"
	"github.com/krit/mlbb-counter-website/internal/domain"
)

// Phase caps applied after deduplication.
const (
	MaxEarlyItems = 4
	MaxLateItems  = 5
)

// RecommendItems runs the heuristic item producer against the enemy's tags
// and role, selecting generic mitigation items from the merged item catalog
// with descriptions templated on the enemy's name. Fallback defaults keep
// both phase lists from coming back empty.
func RecommendItems(enemy domain.Hero, items []domain.ItemDef) domain.ItemRecommendation {
	isPhysical := enemy.HasTag("physical")
	isMagic := enemy.HasTag("magic")
	isSustain := enemy.HasTag("sustain") || enemy.HasTag("heal")
	isBurst := enemy.HasTag("burst")
	isCC := enemy.HasTag("cc") || enemy.HasTag("freeze") || enemy.HasTag("setup")
	isCrit := enemy.HasTag("crit")

	b := newPicker(items, enemy.Name)

	if isPhysical {
		b.early(data.ItemBladeArmor, "Reflects physical damage so %s hurts themselves with every hit")
		b.early(data.ItemWindOfNature, "Active grants 2s of physical immunity to dodge %s's burst")
		b.late(data.ItemAntiqueCuirass, "Stacks physical ATK reduction on attackers, sapping %s's damage")
		b.late(data.ItemImmortality, "Revives on death, forcing %s to kill you twice")
		if isCrit {
			b.late(data.ItemTwilightArmor, "Caps the critical burst damage coming from %s")
		}
		if isSustain {
			b.early(data.ItemSeaHalberd, "Cuts %s's HP regen by 50%% for physical fighters")
			b.late(data.ItemDominanceIce, "Reduces regen and attack speed of %s nearby")
		}
	}

	if isMagic {
		b.early(data.ItemAthenasShield, "Absorbs magic damage automatically, blunting %s's burst")
		b.early(data.ItemToughBoots, "30%% shorter CC and extra magic defense against %s")
		b.late(data.ItemRadiantArmor, "Stacking magic damage reduction for sustained fights with %s")
		if isSustain {
			b.early(data.ItemNecklaceOfDurance, "Cuts %s's HP regen by 50%%, gutting the lifesteal")
			b.late(data.ItemDominanceIce, "Reduces regen of %s nearby")
		}
		if isBurst {
			b.late(data.ItemWinterTruncheon, "Freeze yourself for 2s to skip %s's entire combo")
		}
		b.late(data.ItemImmortality, "Revives you after %s's burst lands")
	}

	if isCC && !isMagic {
		b.early(data.ItemToughBoots, "30%% shorter crowd control from %s's skills")
	}

	if enemy.Role == domain.RoleTank && !isSustain {
		b.early(data.ItemToughBoots, "Shortens the crowd control coming from %s")
		b.late(data.ItemMaleficRoar, "Pierces %s's high physical defense")
		b.late(data.ItemDivineGlaive, "Magic penetration if you fight %s as a mage")
	}

	// Defaults so every enemy gets at least two suggestions per phase.
	if b.earlyCount() < 2 {
		b.early(data.ItemToughBoots, "Shortens the crowd control coming from %s")
		if isPhysical {
			b.early(data.ItemWarriorBoots, "Cheap early physical defense against %s")
		}
	}
	if b.lateCount() < 2 {
		b.late(data.ItemImmortality, "Revives you after %s takes you down")
	}

	return b.result()
}

// ApplyItemRules merges explicit item-counter rules targeting the enemy into
// an existing recommendation. Rules are applied in priority order; an item
// already present in a phase bucket keeps its existing description, so the
// heuristic entry wins on id collision. Unknown item ids are skipped.
func ApplyItemRules(rec domain.ItemRecommendation, enemyID string, rules []domain.ItemCounterRule, items []domain.ItemDef) domain.ItemRecommendation {
	matching := make([]domain.ItemCounterRule, 0)
	for _, r := range rules {
		if r.Targets(enemyID) {
			matching = append(matching, r)
		}
	}
	sortRulesByPriority(matching)

	byID := make(map[string]domain.ItemDef, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	for _, r := range matching {
		for _, id := range r.ItemIDs {
			item, ok := byID[id]
			if !ok {
				continue
			}
			ci := domain.CounterItem{ItemDef: item, Description: r.Reason}
			if r.Phase == domain.PhaseEarly {
				if !containsItem(rec.Early, id) {
					rec.Early = append(rec.Early, ci)
				}
			} else {
				if !containsItem(rec.Late, id) {
					rec.Late = append(rec.Late, ci)
				}
			}
		}
	}
	return rec
}

func sortRulesByPriority(rules []domain.ItemCounterRule) {
	for i := 1; i < len(rules); i++ {
		for j := i; j > 0 && rules[j].Priority > rules[j-1].Priority; j-- {
			rules[j], rules[j-1] = rules[j-1], rules[j]
		}
	}
}

func containsItem(list []domain.CounterItem, id string) bool {
	for _, it := range list {
		if it.ID == id {
			return true
		}
	}
	return false
}

// picker accumulates phase buckets with first-occurrence dedup and caps.
type picker struct {
	items     map[string]domain.ItemDef
	enemyName string
	earlyList []domain.CounterItem
	lateList  []domain.CounterItem
}

func newPicker(items []domain.ItemDef, enemyName string) *picker {
	byID := make(map[string]domain.ItemDef, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &picker{items: byID, enemyName: enemyName}
}

func (p *picker) early(itemID, tmpl string) {
	if ci, ok := p.make(itemID, tmpl); ok && !containsItem(p.earlyList, itemID) {
		p.earlyList = append(p.earlyList, ci)
	}
}

func (p *picker) late(itemID, tmpl string) {
	if ci, ok := p.make(itemID, tmpl); ok && !containsItem(p.lateList, itemID) {
		p.lateList = append(p.lateList, ci)
	}
}

func (p *picker) make(itemID, tmpl string) (domain.CounterItem, bool) {
	it, ok := p.items[itemID]
	if !ok {
		return domain.CounterItem{}, false
	}
	return domain.CounterItem{ItemDef: it, Description: fmt.Sprintf(tmpl, p.enemyName)}, true
}

func (p *picker) earlyCount() int { return len(p.earlyList) }
func (p *picker) lateCount() int  { return len(p.lateList) }

func (p *picker) result() domain.ItemRecommendation {
	early := p.earlyList
	if len(early) > MaxEarlyItems {
		early = early[:MaxEarlyItems]
	}
	late := p.lateList
	if len(late) > MaxLateItems {
		late = late[:MaxLateItems]
	}
	return domain.ItemRecommendation{Early: early, Late: late}
}
