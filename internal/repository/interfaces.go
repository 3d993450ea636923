package repository

import "context"

// KVStore is the persistence boundary: synchronous get/set/delete of JSON
// values by string key. Get returns (nil, nil) for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Storage keys for the overlay and rule layers.
const (
	KeyCustomRules       = "mlbb:custom-counter-rules"
	KeyItemCounterRules  = "mlbb:item-counter-rules"
	KeyCustomHeroes      = "mlbb:custom-heroes"
	KeyCustomItemDefs    = "mlbb:custom-item-defs"
	KeyBaseHeroOverrides = "mlbb:base-hero-overrides"
	KeyBaseItemOverrides = "mlbb:base-item-overrides"
	KeyTierMap           = "mlbb:tier-list-data"
	KeyTierMeta          = "mlbb:tier-list-meta"
)
