package repository

import (
	"github.com/krit/mlbb-counter-website/internal/catalog"
	"github.com/krit/mlbb-counter-website/internal/domain"
)

// Stores bundles every typed store over one shared KVStore backend.
type Stores struct {
	CustomRules       *ListStore[domain.CounterRule]
	ItemCounterRules  *ListStore[domain.ItemCounterRule]
	CustomHeroes      *ListStore[domain.Hero]
	CustomItemDefs    *ListStore[domain.ItemDef]
	BaseHeroOverrides *MapStore[catalog.HeroOverride]
	BaseItemOverrides *MapStore[catalog.ItemOverride]
	TierMap           *ValueStore[domain.LaneTierMap]
	TierMeta          *ValueStore[domain.TierListMeta]
}

func NewStores(kv KVStore) *Stores {
	return &Stores{
		CustomRules:       NewListStore[domain.CounterRule](kv, KeyCustomRules),
		ItemCounterRules:  NewListStore[domain.ItemCounterRule](kv, KeyItemCounterRules),
		CustomHeroes:      NewListStore[domain.Hero](kv, KeyCustomHeroes),
		CustomItemDefs:    NewListStore[domain.ItemDef](kv, KeyCustomItemDefs),
		BaseHeroOverrides: NewMapStore[catalog.HeroOverride](kv, KeyBaseHeroOverrides),
		BaseItemOverrides: NewMapStore[catalog.ItemOverride](kv, KeyBaseItemOverrides),
		TierMap:           NewValueStore[domain.LaneTierMap](kv, KeyTierMap),
		TierMeta:          NewValueStore[domain.TierListMeta](kv, KeyTierMeta),
	}
}
