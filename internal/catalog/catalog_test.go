package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krit/mlbb-counter-website/internal/catalog"
	"github.com/krit/mlbb-counter-website/internal/domain"
)

func baseHeroes() []domain.Hero {
	return []domain.Hero{
		{ID: "ling", Name: "Ling", Role: domain.RoleAssassin, Tags: []string{"dash", "wall"}},
		{ID: "khufra", Name: "Khufra", Role: domain.RoleTank, Tags: []string{"antidash", "cc"}},
	}
}

func strPtr(s string) *string { return &s }

func TestMergeHeroesPreservesBaseOrder(t *testing.T) {
	merged := catalog.MergeHeroes(baseHeroes(), nil, nil)

	require.Len(t, merged, 2)
	assert.Equal(t, "ling", merged[0].ID)
	assert.Equal(t, "khufra", merged[1].ID)
}

func TestMergeHeroesAppliesOverrideWithPinnedID(t *testing.T) {
	overrides := map[string]catalog.HeroOverride{
		"ling": {
			Name: strPtr("Ling Reworked"),
			Tags: &[]string{"Dash", "BURST", "dash"},
		},
	}

	merged := catalog.MergeHeroes(baseHeroes(), overrides, nil)

	require.Len(t, merged, 2)
	assert.Equal(t, "ling", merged[0].ID)
	assert.Equal(t, "Ling Reworked", merged[0].Name)
	assert.Equal(t, []string{"dash", "burst"}, merged[0].Tags)
	// Untouched fields keep their base values.
	assert.Equal(t, domain.RoleAssassin, merged[0].Role)
}

func TestMergeHeroesIgnoresOverrideForUnknownID(t *testing.T) {
	overrides := map[string]catalog.HeroOverride{
		"nobody": {Name: strPtr("Ghost")},
	}

	merged := catalog.MergeHeroes(baseHeroes(), overrides, nil)

	require.Len(t, merged, 2)
	for _, h := range merged {
		assert.NotEqual(t, "Ghost", h.Name)
	}
}

func TestMergeHeroesUnionsCustomByID(t *testing.T) {
	custom := []domain.Hero{
		{ID: "new-hero", Name: "New Hero", Role: domain.RoleMage},
		{ID: "khufra", Name: "Khufra Replaced", Role: domain.RoleTank},
	}

	merged := catalog.MergeHeroes(baseHeroes(), nil, custom)

	require.Len(t, merged, 3)
	assert.Equal(t, "Khufra Replaced", merged[1].Name)
	assert.Equal(t, "new-hero", merged[2].ID)
}

func TestMergeItemsOverrideAndCustom(t *testing.T) {
	base := []domain.ItemDef{{ID: "blade-armor", Name: "Blade Armor", Price: 1660}}
	price := 1800
	overrides := map[string]catalog.ItemOverride{
		"blade-armor": {Price: &price},
	}
	custom := []domain.ItemDef{{ID: "prototype", Name: "Prototype", Price: 100}}

	merged := catalog.MergeItems(base, overrides, custom)

	require.Len(t, merged, 2)
	assert.Equal(t, 1800, merged[0].Price)
	assert.Equal(t, "Blade Armor", merged[0].Name)
	assert.Equal(t, "prototype", merged[1].ID)
}

func TestHeroByID(t *testing.T) {
	h, err := catalog.HeroByID(baseHeroes(), "khufra")
	require.NoError(t, err)
	assert.Equal(t, "Khufra", h.Name)

	_, err = catalog.HeroByID(baseHeroes(), "missing")
	assert.ErrorIs(t, err, domain.ErrHeroNotFound)
}

func TestItemByIDMissing(t *testing.T) {
	_, err := catalog.ItemByID(nil, "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSearchHeroes(t *testing.T) {
	heroes := baseHeroes()

	assert.Len(t, catalog.SearchHeroes(heroes, "LING"), 1)
	assert.Len(t, catalog.SearchHeroes(heroes, "tank"), 1)
	assert.Len(t, catalog.SearchHeroes(heroes, "khuf"), 1)
	assert.Empty(t, catalog.SearchHeroes(heroes, "zzz"))
	assert.Empty(t, catalog.SearchHeroes(heroes, ""))
}

func TestAllTagsSortedDistinct(t *testing.T) {
	tags := catalog.AllTags(baseHeroes())

	assert.Equal(t, []string{"antidash", "cc", "dash", "wall"}, tags)
}

func TestHeroesWithAllTags(t *testing.T) {
	heroes := baseHeroes()

	out := catalog.HeroesWithAllTags(heroes, []string{"dash", "wall"})
	require.Len(t, out, 1)
	assert.Equal(t, "ling", out[0].ID)

	assert.Empty(t, catalog.HeroesWithAllTags(heroes, []string{"dash", "cc"}))
}
