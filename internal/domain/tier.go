package domain

// TierRank is a hero strength rank within a lane, ordered SS > S > A > B > C > D.
type TierRank string

const (
	TierSS TierRank = "SS"
	TierS  TierRank = "S"
	TierA  TierRank = "A"
	TierB  TierRank = "B"
	TierC  TierRank = "C"
	TierD  TierRank = "D"
)

// AllTiers contains all tier ranks in descending order of strength.
var AllTiers = []TierRank{TierSS, TierS, TierA, TierB, TierC, TierD}

// IsValid checks if a tier rank is valid
func (t TierRank) IsValid() bool {
	switch t {
	case TierSS, TierS, TierA, TierB, TierC, TierD:
		return true
	}
	return false
}

// Lane is one of the five fixed role-position zones.
type Lane string

const (
	LaneRoam   Lane = "Roam"
	LaneExp    Lane = "Exp"
	LaneJungle Lane = "Jungle"
	LaneMid    Lane = "Mid"
	LaneGold   Lane = "Gold"
)

// AllLanes contains all lanes in display order.
var AllLanes = []Lane{LaneRoam, LaneExp, LaneJungle, LaneMid, LaneGold}

// IsValid checks if a lane is valid
func (l Lane) IsValid() bool {
	switch l {
	case LaneRoam, LaneExp, LaneJungle, LaneMid, LaneGold:
		return true
	}
	return false
}

// LaneTierMap holds per-lane hero placements: lane -> tier -> ordered hero ids.
// A hero id occupies at most one tier within a lane; the tier mutation helpers
// maintain that invariant by construction.
type LaneTierMap map[Lane]map[TierRank][]string

// TierHero is the display form of a hero inside a tier list.
type TierHero struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Role  HeroRole `json:"role"`
	Image string   `json:"image"`
	Icon  string   `json:"icon"`
}

// TierEntry is one tier row: the rank plus the heroes placed in it.
type TierEntry struct {
	Tier   TierRank   `json:"tier"`
	Heroes []TierHero `json:"heroes"`
}

// LaneTierList is the display form of a single lane's ranking.
type LaneTierList struct {
	Lane  Lane        `json:"lane"`
	Label string      `json:"label"`
	Icon  string      `json:"icon"`
	Tiers []TierEntry `json:"tiers"`
}

// TierListMeta carries the provenance of the current tier data.
type TierListMeta struct {
	UpdatedAt string `json:"updatedAt"`
	Patch     string `json:"patch"`
	Source    string `json:"source"`
}

// TierListData is the full published tier list document.
type TierListData struct {
	UpdatedAt    string         `json:"updatedAt"`
	NextUpdateAt string         `json:"nextUpdateAt"`
	Source       string         `json:"source"`
	Patch        string         `json:"patch"`
	Lanes        []LaneTierList `json:"lanes"`
	Overall      []TierEntry    `json:"overall"`
}
