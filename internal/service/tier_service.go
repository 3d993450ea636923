package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/krit/mlbb-counter-website/internal/data"
	"github.com/krit/mlbb-counter-website/internal/domain"
	"github.com/krit/mlbb-counter-website/internal/repository"
	"github.com/krit/mlbb-counter-website/internal/tier"
)

// TierService persists the lane tier map plus its provenance meta and
// renders the published tier-list document. When nothing has been stored
// yet, the compiled-in defaults are served and the first mutation persists
// a mutated copy of them.
type TierService struct {
	stores  *repository.Stores
	catalog *CatalogService

	now func() time.Time
}

func NewTierService(stores *repository.Stores, catalog *CatalogService) *TierService {
	return &TierService{
		stores:  stores,
		catalog: catalog,
		now:     time.Now,
	}
}

func (s *TierService) tierMap(ctx context.Context) (domain.LaneTierMap, error) {
	m, ok, err := s.stores.TierMap.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return data.DefaultTierMap(), nil
	}
	return m, nil
}

func (s *TierService) meta(ctx context.Context) (domain.TierListMeta, error) {
	meta, ok, err := s.stores.TierMeta.Get(ctx)
	if err != nil {
		return domain.TierListMeta{}, err
	}
	if !ok {
		return domain.TierListMeta{
			UpdatedAt: s.now().UTC().Format(time.RFC3339),
			Patch:     data.TierPatch,
			Source:    data.TierSource,
		}, nil
	}
	return meta, nil
}

// GetTierList renders the full published document: per-lane rankings with
// empty tiers filtered out, the overall aggregate, and the refresh window.
func (s *TierService) GetTierList(ctx context.Context) (*domain.TierListData, error) {
	m, err := s.tierMap(ctx)
	if err != nil {
		return nil, err
	}
	meta, err := s.meta(ctx)
	if err != nil {
		return nil, err
	}
	heroes, err := s.catalog.Heroes(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Hero, len(heroes))
	for _, h := range heroes {
		byID[h.ID] = h
	}

	lanes := make([]domain.LaneTierList, 0, len(domain.AllLanes))
	for _, lane := range domain.AllLanes {
		label := data.LaneLabels[lane]
		list := domain.LaneTierList{Lane: lane, Label: label.Label, Icon: label.Icon}
		for _, t := range domain.AllTiers {
			ids := m[lane][t]
			if len(ids) == 0 {
				continue
			}
			list.Tiers = append(list.Tiers, domain.TierEntry{Tier: t, Heroes: resolveTierHeroes(ids, byID)})
		}
		lanes = append(lanes, list)
	}

	overall := make([]domain.TierEntry, 0)
	for _, entry := range tier.BuildOverall(m) {
		overall = append(overall, domain.TierEntry{Tier: entry.Tier, Heroes: resolveTierHeroes(entry.HeroIDs, byID)})
	}

	return &domain.TierListData{
		UpdatedAt:    meta.UpdatedAt,
		NextUpdateAt: nextMidnightUTC(s.now()).Format(time.RFC3339),
		Source:       meta.Source,
		Patch:        meta.Patch,
		Lanes:        lanes,
		Overall:      overall,
	}, nil
}

// resolveTierHeroes maps placement ids to display heroes. An id absent from
// the catalog still renders, as a name-only placeholder, so stale tier data
// never hides a row.
func resolveTierHeroes(ids []string, byID map[string]domain.Hero) []domain.TierHero {
	out := make([]domain.TierHero, 0, len(ids))
	for _, id := range ids {
		h, ok := byID[id]
		if !ok {
			out = append(out, domain.TierHero{ID: id, Name: id})
			continue
		}
		out = append(out, domain.TierHero{
			ID:    h.ID,
			Name:  h.Name,
			Role:  h.Role,
			Image: h.Image,
			Icon:  h.Icon,
		})
	}
	return out
}

// nextMidnightUTC returns the first midnight UTC strictly after now.
func nextMidnightUTC(now time.Time) time.Time {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Add(24 * time.Hour)
}

func (s *TierService) mutate(ctx context.Context, fn func(domain.LaneTierMap)) (domain.LaneTierMap, error) {
	m, err := s.tierMap(ctx)
	if err != nil {
		return nil, err
	}
	fn(m)
	if err := s.stores.TierMap.Save(ctx, m); err != nil {
		return nil, err
	}
	if err := s.touchMeta(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *TierService) touchMeta(ctx context.Context) error {
	meta, err := s.meta(ctx)
	if err != nil {
		return err
	}
	meta.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return s.stores.TierMeta.Save(ctx, meta)
}

func (s *TierService) AddHero(ctx context.Context, lane domain.Lane, rank domain.TierRank, heroID string) (domain.LaneTierMap, error) {
	if !lane.IsValid() {
		return nil, domain.ErrInvalidLane
	}
	if !rank.IsValid() {
		return nil, domain.ErrInvalidTier
	}
	return s.mutate(ctx, func(m domain.LaneTierMap) {
		tier.AddHero(m, lane, rank, heroID)
	})
}

func (s *TierService) MoveHero(ctx context.Context, lane domain.Lane, heroID string, from, to domain.TierRank) (domain.LaneTierMap, error) {
	if !lane.IsValid() {
		return nil, domain.ErrInvalidLane
	}
	if !to.IsValid() {
		return nil, domain.ErrInvalidTier
	}
	return s.mutate(ctx, func(m domain.LaneTierMap) {
		tier.MoveHero(m, lane, heroID, from, to)
	})
}

func (s *TierService) RemoveHero(ctx context.Context, lane domain.Lane, heroID string) (domain.LaneTierMap, error) {
	if !lane.IsValid() {
		return nil, domain.ErrInvalidLane
	}
	return s.mutate(ctx, func(m domain.LaneTierMap) {
		tier.RemoveHeroFromLane(m, lane, heroID)
	})
}

// UpdateMeta sets the provenance fields and stamps the update time.
func (s *TierService) UpdateMeta(ctx context.Context, patch, source string) (domain.TierListMeta, error) {
	meta, err := s.meta(ctx)
	if err != nil {
		return domain.TierListMeta{}, err
	}
	if patch != "" {
		meta.Patch = patch
	}
	if source != "" {
		meta.Source = source
	}
	meta.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	if err := s.stores.TierMeta.Save(ctx, meta); err != nil {
		return domain.TierListMeta{}, err
	}
	return meta, nil
}

// tierExport is the import/export document: the raw map plus its meta.
type tierExport struct {
	TierMap domain.LaneTierMap  `json:"tierMap"`
	Meta    domain.TierListMeta `json:"meta"`
}

func (s *TierService) Export(ctx context.Context) ([]byte, error) {
	m, err := s.tierMap(ctx)
	if err != nil {
		return nil, err
	}
	meta, err := s.meta(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(tierExport{TierMap: m, Meta: meta}, "", "  ")
}

// Import replaces the stored map and meta from an export document. Both
// keys are required and the whole document is shape-checked before
// anything is written.
func (s *TierService) Import(ctx context.Context, raw []byte) error {
	var doc tierExport
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.ErrInvalidImport
	}
	if doc.TierMap == nil || doc.Meta == (domain.TierListMeta{}) {
		return domain.ErrInvalidImport
	}
	for lane, tiers := range doc.TierMap {
		if !lane.IsValid() {
			return domain.ErrInvalidImport
		}
		for rank := range tiers {
			if !rank.IsValid() {
				return domain.ErrInvalidImport
			}
		}
	}
	if err := s.stores.TierMap.Save(ctx, doc.TierMap); err != nil {
		return err
	}
	return s.stores.TierMeta.Save(ctx, doc.Meta)
}

// Reset drops the stored map and meta, reverting to compiled-in defaults.
func (s *TierService) Reset(ctx context.Context) error {
	if err := s.stores.TierMap.Reset(ctx); err != nil {
		return err
	}
	return s.stores.TierMeta.Reset(ctx)
}
