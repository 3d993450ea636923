// Package catalog implements the three-layer overlay merge that turns base
// records, admin overrides, and user-created entities into one logical
// collection. The merge is pure: base order is preserved, overrides are
// applied field-wise onto their base entity with the id pinned, and custom
// entities union in by id afterwards.
package catalog

import (
	"sort"
	"strings"

	"github.com/krit/mlbb-counter-website/internal/domain"
)

// HeroOverride is a partial hero record keyed by a base hero id. Nil fields
// leave the base value untouched.
type HeroOverride struct {
	Name  *string   `json:"name,omitempty"`
	Role  *string   `json:"role,omitempty"`
	Icon  *string   `json:"icon,omitempty"`
	Image *string   `json:"image,omitempty"`
	Tags  *[]string `json:"tags,omitempty"`
}

// ItemOverride is a partial item record keyed by a base item id.
type ItemOverride struct {
	Name  *string `json:"name,omitempty"`
	Icon  *string `json:"icon,omitempty"`
	Image *string `json:"image,omitempty"`
	Stat  *string `json:"stat,omitempty"`
	Price *int    `json:"price,omitempty"`
}

func (o HeroOverride) apply(h domain.Hero) domain.Hero {
	if o.Name != nil {
		h.Name = *o.Name
	}
	if o.Role != nil && domain.HeroRole(*o.Role).IsValid() {
		h.Role = domain.HeroRole(*o.Role)
	}
	if o.Icon != nil {
		h.Icon = *o.Icon
	}
	if o.Image != nil {
		h.Image = *o.Image
	}
	if o.Tags != nil {
		h.Tags = domain.NormalizeTags(*o.Tags)
	}
	return h
}

func (o ItemOverride) apply(i domain.ItemDef) domain.ItemDef {
	if o.Name != nil {
		i.Name = *o.Name
	}
	if o.Icon != nil {
		i.Icon = *o.Icon
	}
	if o.Image != nil {
		i.Image = *o.Image
	}
	if o.Stat != nil {
		i.Stat = *o.Stat
	}
	if o.Price != nil && *o.Price >= 0 {
		i.Price = *o.Price
	}
	return i
}

// MergeHeroes composes the three hero layers into one collection. A custom
// hero whose id collides with a base id replaces the base entity in the
// merged view; creation-time validation is expected to prevent that case.
func MergeHeroes(base []domain.Hero, overrides map[string]HeroOverride, custom []domain.Hero) []domain.Hero {
	merged := make([]domain.Hero, 0, len(base)+len(custom))
	index := make(map[string]int, len(base)+len(custom))

	for _, h := range base {
		if ov, ok := overrides[h.ID]; ok {
			id := h.ID
			h = ov.apply(h)
			h.ID = id
		}
		index[h.ID] = len(merged)
		merged = append(merged, h)
	}
	for _, h := range custom {
		if i, ok := index[h.ID]; ok {
			merged[i] = h
			continue
		}
		index[h.ID] = len(merged)
		merged = append(merged, h)
	}
	return merged
}

// MergeItems composes the three item layers into one collection.
func MergeItems(base []domain.ItemDef, overrides map[string]ItemOverride, custom []domain.ItemDef) []domain.ItemDef {
	merged := make([]domain.ItemDef, 0, len(base)+len(custom))
	index := make(map[string]int, len(base)+len(custom))

	for _, it := range base {
		if ov, ok := overrides[it.ID]; ok {
			id := it.ID
			it = ov.apply(it)
			it.ID = id
		}
		index[it.ID] = len(merged)
		merged = append(merged, it)
	}
	for _, it := range custom {
		if i, ok := index[it.ID]; ok {
			merged[i] = it
			continue
		}
		index[it.ID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

// HeroByID finds a hero in a merged collection.
func HeroByID(heroes []domain.Hero, id string) (domain.Hero, error) {
	for _, h := range heroes {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hero{}, domain.ErrHeroNotFound
}

// ItemByID finds an item in a merged collection.
func ItemByID(items []domain.ItemDef, id string) (domain.ItemDef, error) {
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.ItemDef{}, domain.ErrItemNotFound
}

// SearchHeroes returns heroes whose name, role, or id contains the query,
// case-insensitive. An empty query matches nothing.
func SearchHeroes(heroes []domain.Hero, query string) []domain.Hero {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []domain.Hero
	for _, h := range heroes {
		if strings.Contains(strings.ToLower(h.Name), q) ||
			strings.Contains(strings.ToLower(string(h.Role)), q) ||
			strings.Contains(strings.ToLower(h.ID), q) {
			out = append(out, h)
		}
	}
	return out
}

// AllTags returns the distinct tag values across all heroes, lowercase and
// sorted for stable display.
func AllTags(heroes []domain.Hero) []string {
	set := make(map[string]struct{})
	for _, h := range heroes {
		for _, t := range h.Tags {
			set[strings.ToLower(t)] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// HeroesWithAllTags returns heroes whose tag sets contain every given tag.
func HeroesWithAllTags(heroes []domain.Hero, tags []string) []domain.Hero {
	var out []domain.Hero
	for _, h := range heroes {
		if h.HasAllTags(tags) {
			out = append(out, h)
		}
	}
	return out
}
