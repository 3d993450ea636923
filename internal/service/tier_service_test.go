package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krit/mlbb-counter-website/internal/data"
	"github.com/krit/mlbb-counter-website/internal/domain"
	"github.com/krit/mlbb-counter-website/internal/repository"
	"github.com/krit/mlbb-counter-website/internal/repository/memstore"
	"github.com/krit/mlbb-counter-website/internal/service"
)

func newTierService() (*service.TierService, *repository.Stores) {
	stores := repository.NewStores(memstore.New())
	return service.NewTierService(stores, service.NewCatalogService(stores)), stores
}

func TestGetTierListServesDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTierService()

	list, err := svc.GetTierList(ctx)
	require.NoError(t, err)

	assert.Equal(t, data.TierPatch, list.Patch)
	assert.Equal(t, data.TierSource, list.Source)
	require.Len(t, list.Lanes, len(domain.AllLanes))
	assert.NotEmpty(t, list.Overall)

	for _, lane := range list.Lanes {
		assert.NotEmpty(t, lane.Label)
		for _, entry := range lane.Tiers {
			assert.NotEmpty(t, entry.Heroes, "lane %s tier %s rendered empty", lane.Lane, entry.Tier)
			for _, h := range entry.Heroes {
				assert.NotEmpty(t, h.Name)
			}
		}
	}
}

func TestGetTierListNextUpdateInFuture(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTierService()

	list, err := svc.GetTierList(ctx)
	require.NoError(t, err)

	next, err := time.Parse(time.RFC3339, list.NextUpdateAt)
	require.NoError(t, err)
	assert.True(t, next.After(time.Now()), "nextUpdateAt must be strictly in the future")
	assert.Equal(t, 0, next.Hour())
	assert.Equal(t, 0, next.Minute())
}

func TestAddHeroPersistsMutatedDefaults(t *testing.T) {
	ctx := context.Background()
	svc, stores := newTierService()

	m, err := svc.AddHero(ctx, domain.LaneMid, domain.TierSS, "custom-mage")
	require.NoError(t, err)
	assert.Contains(t, m[domain.LaneMid][domain.TierSS], "custom-mage")

	stored, ok, err := stores.TierMap.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, stored[domain.LaneMid][domain.TierSS], "custom-mage")
}

func TestAddHeroValidatesLaneAndTier(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTierService()

	_, err := svc.AddHero(ctx, "Top", domain.TierA, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidLane)

	_, err = svc.AddHero(ctx, domain.LaneMid, "F", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidTier)
}

func TestMoveHeroRelocatesWithinLane(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTierService()

	_, err := svc.AddHero(ctx, domain.LaneGold, domain.TierB, "tester")
	require.NoError(t, err)

	m, err := svc.MoveHero(ctx, domain.LaneGold, "tester", domain.TierB, domain.TierSS)
	require.NoError(t, err)

	assert.Contains(t, m[domain.LaneGold][domain.TierSS], "tester")
	assert.NotContains(t, m[domain.LaneGold][domain.TierB], "tester")
}

func TestUnknownHeroRendersAsPlaceholder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTierService()

	_, err := svc.AddHero(ctx, domain.LaneRoam, domain.TierSS, "not-in-catalog")
	require.NoError(t, err)

	list, err := svc.GetTierList(ctx)
	require.NoError(t, err)

	var found bool
	for _, lane := range list.Lanes {
		if lane.Lane != domain.LaneRoam {
			continue
		}
		for _, entry := range lane.Tiers {
			for _, h := range entry.Heroes {
				if h.ID == "not-in-catalog" {
					found = true
					assert.Equal(t, "not-in-catalog", h.Name)
				}
			}
		}
	}
	assert.True(t, found)
}

func TestUpdateMetaStampsTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTierService()

	meta, err := svc.UpdateMeta(ctx, "Patch 2.0", "manual")
	require.NoError(t, err)

	assert.Equal(t, "Patch 2.0", meta.Patch)
	assert.Equal(t, "manual", meta.Source)

	updated, err := time.Parse(time.RFC3339, meta.UpdatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), updated, time.Minute)
}

func TestImportRejectsInvalidLaneAtomically(t *testing.T) {
	ctx := context.Background()
	svc, stores := newTierService()

	raw := []byte(`{"tierMap":{"Top":{"SS":["x"]}},"meta":{"updatedAt":"now","patch":"p","source":"s"}}`)
	err := svc.Import(ctx, raw)
	assert.ErrorIs(t, err, domain.ErrInvalidImport)

	_, ok, err := stores.TierMap.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "nothing may be stored after a rejected import")
}

func TestImportRequiresMeta(t *testing.T) {
	ctx := context.Background()
	svc, stores := newTierService()

	raw := []byte(`{"tierMap":{"Mid":{"SS":["kagura"]}}}`)
	err := svc.Import(ctx, raw)
	assert.ErrorIs(t, err, domain.ErrInvalidImport)

	_, ok, err := stores.TierMap.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestImportExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTierService()

	_, err := svc.AddHero(ctx, domain.LaneExp, domain.TierS, "round-tripper")
	require.NoError(t, err)

	raw, err := svc.Export(ctx)
	require.NoError(t, err)

	other, _ := newTierService()
	require.NoError(t, other.Import(ctx, raw))

	m, err := other.AddHero(ctx, domain.LaneExp, domain.TierS, "round-tripper")
	require.NoError(t, err)
	assert.Contains(t, m[domain.LaneExp][domain.TierS], "round-tripper")
}

func TestResetRestoresDefaults(t *testing.T) {
	ctx := context.Background()
	svc, stores := newTierService()

	_, err := svc.AddHero(ctx, domain.LaneMid, domain.TierD, "temp")
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))

	_, ok, err := stores.TierMap.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := svc.GetTierList(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.TierPatch, list.Patch)
}
