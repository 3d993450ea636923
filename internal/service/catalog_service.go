package service

import (
	"context"

	"github.com/krit/mlbb-counter-website/internal/catalog"
	"github.com/krit/mlbb-counter-website/internal/data"
	"github.com/krit/mlbb-counter-website/internal/domain"
	"github.com/krit/mlbb-counter-website/internal/repository"
)

// CatalogService serves the merged hero and item catalogs and owns the two
// writable layers: base overrides and custom entities. The base layer is
// compiled in and never mutated.
type CatalogService struct {
	stores *repository.Stores

	baseHeroIDs map[string]bool
	baseItemIDs map[string]bool
}

func NewCatalogService(stores *repository.Stores) *CatalogService {
	heroIDs := make(map[string]bool, len(data.Heroes))
	for _, h := range data.Heroes {
		heroIDs[h.ID] = true
	}
	itemIDs := make(map[string]bool, len(data.Items))
	for _, i := range data.Items {
		itemIDs[i.ID] = true
	}
	return &CatalogService{
		stores:      stores,
		baseHeroIDs: heroIDs,
		baseItemIDs: itemIDs,
	}
}

// Heroes returns the merged hero collection: base, with overrides applied,
// plus custom heroes.
func (s *CatalogService) Heroes(ctx context.Context) ([]domain.Hero, error) {
	overrides, err := s.stores.BaseHeroOverrides.Get(ctx)
	if err != nil {
		return nil, err
	}
	custom, err := s.stores.CustomHeroes.Get(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.MergeHeroes(data.Heroes, overrides, custom), nil
}

// Items returns the merged item collection.
func (s *CatalogService) Items(ctx context.Context) ([]domain.ItemDef, error) {
	overrides, err := s.stores.BaseItemOverrides.Get(ctx)
	if err != nil {
		return nil, err
	}
	custom, err := s.stores.CustomItemDefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.MergeItems(data.Items, overrides, custom), nil
}

func (s *CatalogService) HeroByID(ctx context.Context, id string) (domain.Hero, error) {
	heroes, err := s.Heroes(ctx)
	if err != nil {
		return domain.Hero{}, err
	}
	return catalog.HeroByID(heroes, id)
}

func (s *CatalogService) ItemByID(ctx context.Context, id string) (domain.ItemDef, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return domain.ItemDef{}, err
	}
	return catalog.ItemByID(items, id)
}

// SearchHeroes filters the merged collection by a case-insensitive substring
// match on name, role, or id. An empty query returns the full collection.
func (s *CatalogService) SearchHeroes(ctx context.Context, query string) ([]domain.Hero, error) {
	heroes, err := s.Heroes(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return heroes, nil
	}
	return catalog.SearchHeroes(heroes, query), nil
}

// Tags returns the distinct sorted tag vocabulary of the merged collection.
func (s *CatalogService) Tags(ctx context.Context) ([]string, error) {
	heroes, err := s.Heroes(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.AllTags(heroes), nil
}

// HeroInput carries the writable fields of a hero. The id is always derived
// from the name on creation.
type HeroInput struct {
	Name  string   `json:"name"`
	Role  string   `json:"role"`
	Icon  string   `json:"icon"`
	Image string   `json:"image"`
	Tags  []string `json:"tags"`
}

func (in HeroInput) toHero(id string) domain.Hero {
	return domain.Hero{
		ID:    id,
		Name:  in.Name,
		Role:  domain.HeroRole(in.Role),
		Icon:  in.Icon,
		Image: in.Image,
		Tags:  domain.NormalizeTags(in.Tags),
	}
}

func (s *CatalogService) CustomHeroes(ctx context.Context) ([]domain.Hero, error) {
	return s.stores.CustomHeroes.Get(ctx)
}

// CreateHero adds a custom hero. The id is the slug of the name; a slug that
// collides with a compiled-in hero id is rejected so the base layer cannot
// be shadowed by accident.
func (s *CatalogService) CreateHero(ctx context.Context, in HeroInput) (domain.Hero, error) {
	h := in.toHero(domain.Slugify(in.Name))
	if err := h.Validate(); err != nil {
		return domain.Hero{}, err
	}
	if s.baseHeroIDs[h.ID] {
		return domain.Hero{}, domain.ErrIDConflictsWithBase
	}
	custom, err := s.stores.CustomHeroes.Get(ctx)
	if err != nil {
		return domain.Hero{}, err
	}
	for _, existing := range custom {
		if existing.ID == h.ID {
			return domain.Hero{}, domain.ErrIDConflictsWithBase
		}
	}
	if _, err := s.stores.CustomHeroes.Add(ctx, h); err != nil {
		return domain.Hero{}, err
	}
	return h, nil
}

// UpdateHero replaces the writable fields of the custom hero with the given
// id. The id itself is immutable.
func (s *CatalogService) UpdateHero(ctx context.Context, id string, in HeroInput) (domain.Hero, error) {
	custom, err := s.stores.CustomHeroes.Get(ctx)
	if err != nil {
		return domain.Hero{}, err
	}
	for i, existing := range custom {
		if existing.ID != id {
			continue
		}
		h := in.toHero(id)
		if err := h.Validate(); err != nil {
			return domain.Hero{}, err
		}
		if _, err := s.stores.CustomHeroes.UpdateAt(ctx, i, h); err != nil {
			return domain.Hero{}, err
		}
		return h, nil
	}
	return domain.Hero{}, domain.ErrHeroNotFound
}

func (s *CatalogService) DeleteHero(ctx context.Context, id string) error {
	custom, err := s.stores.CustomHeroes.Get(ctx)
	if err != nil {
		return err
	}
	for i, existing := range custom {
		if existing.ID == id {
			_, err := s.stores.CustomHeroes.DeleteAt(ctx, i)
			return err
		}
	}
	return domain.ErrHeroNotFound
}

func (s *CatalogService) ResetCustomHeroes(ctx context.Context) error {
	return s.stores.CustomHeroes.Reset(ctx)
}

// ItemInput carries the writable fields of an item definition.
type ItemInput struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Image string `json:"image"`
	Stat  string `json:"stat"`
	Price int    `json:"price"`
}

func (in ItemInput) toItem(id string) domain.ItemDef {
	return domain.ItemDef{
		ID:    id,
		Name:  in.Name,
		Icon:  in.Icon,
		Image: in.Image,
		Stat:  in.Stat,
		Price: in.Price,
	}
}

func (s *CatalogService) CustomItems(ctx context.Context) ([]domain.ItemDef, error) {
	return s.stores.CustomItemDefs.Get(ctx)
}

func (s *CatalogService) CreateItem(ctx context.Context, in ItemInput) (domain.ItemDef, error) {
	item := in.toItem(domain.Slugify(in.Name))
	if err := item.Validate(); err != nil {
		return domain.ItemDef{}, err
	}
	if s.baseItemIDs[item.ID] {
		return domain.ItemDef{}, domain.ErrIDConflictsWithBase
	}
	custom, err := s.stores.CustomItemDefs.Get(ctx)
	if err != nil {
		return domain.ItemDef{}, err
	}
	for _, existing := range custom {
		if existing.ID == item.ID {
			return domain.ItemDef{}, domain.ErrIDConflictsWithBase
		}
	}
	if _, err := s.stores.CustomItemDefs.Add(ctx, item); err != nil {
		return domain.ItemDef{}, err
	}
	return item, nil
}

func (s *CatalogService) UpdateItem(ctx context.Context, id string, in ItemInput) (domain.ItemDef, error) {
	custom, err := s.stores.CustomItemDefs.Get(ctx)
	if err != nil {
		return domain.ItemDef{}, err
	}
	for i, existing := range custom {
		if existing.ID != id {
			continue
		}
		item := in.toItem(id)
		if err := item.Validate(); err != nil {
			return domain.ItemDef{}, err
		}
		if _, err := s.stores.CustomItemDefs.UpdateAt(ctx, i, item); err != nil {
			return domain.ItemDef{}, err
		}
		return item, nil
	}
	return domain.ItemDef{}, domain.ErrItemNotFound
}

func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	custom, err := s.stores.CustomItemDefs.Get(ctx)
	if err != nil {
		return err
	}
	for i, existing := range custom {
		if existing.ID == id {
			_, err := s.stores.CustomItemDefs.DeleteAt(ctx, i)
			return err
		}
	}
	return domain.ErrItemNotFound
}

func (s *CatalogService) ResetCustomItems(ctx context.Context) error {
	return s.stores.CustomItemDefs.Reset(ctx)
}

func (s *CatalogService) HeroOverrides(ctx context.Context) (map[string]catalog.HeroOverride, error) {
	return s.stores.BaseHeroOverrides.Get(ctx)
}

// SetHeroOverride stores a partial override pinned to a compiled-in hero id.
func (s *CatalogService) SetHeroOverride(ctx context.Context, id string, ov catalog.HeroOverride) error {
	if !s.baseHeroIDs[id] {
		return domain.ErrHeroNotFound
	}
	_, err := s.stores.BaseHeroOverrides.Set(ctx, id, ov)
	return err
}

func (s *CatalogService) RemoveHeroOverride(ctx context.Context, id string) error {
	_, err := s.stores.BaseHeroOverrides.Remove(ctx, id)
	return err
}

func (s *CatalogService) ResetHeroOverrides(ctx context.Context) error {
	return s.stores.BaseHeroOverrides.Reset(ctx)
}

func (s *CatalogService) ItemOverrides(ctx context.Context) (map[string]catalog.ItemOverride, error) {
	return s.stores.BaseItemOverrides.Get(ctx)
}

func (s *CatalogService) SetItemOverride(ctx context.Context, id string, ov catalog.ItemOverride) error {
	if !s.baseItemIDs[id] {
		return domain.ErrItemNotFound
	}
	_, err := s.stores.BaseItemOverrides.Set(ctx, id, ov)
	return err
}

func (s *CatalogService) RemoveItemOverride(ctx context.Context, id string) error {
	_, err := s.stores.BaseItemOverrides.Remove(ctx, id)
	return err
}

func (s *CatalogService) ResetItemOverrides(ctx context.Context) error {
	return s.stores.BaseItemOverrides.Reset(ctx)
}
