package domain

import "strings"

// ItemDef is an equipment definition. Items carry no gameplay tags and are
// referenced by explicit id only.
type ItemDef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Image string `json:"image"`
	Stat  string `json:"stat"` // free text, e.g. "+90 Physical DEF"
	Price int    `json:"price"`
}

// Validate checks a full item record for creation.
func (i ItemDef) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if i.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// CounterItem is an item recommendation: an item plus the reason it counters
// the selected enemy.
type CounterItem struct {
	ItemDef
	Description string `json:"description"`
}

// ItemPhase classifies when an item should be bought.
type ItemPhase string

const (
	PhaseEarly ItemPhase = "early"
	PhaseLate  ItemPhase = "late"
)

// IsValid checks if a phase is valid
func (p ItemPhase) IsValid() bool {
	return p == PhaseEarly || p == PhaseLate
}

// ItemCounterRule recommends specific items against specific enemy heroes.
type ItemCounterRule struct {
	ItemIDs       []string  `json:"itemIds"`
	TargetHeroIDs []string  `json:"targetHeroIds"`
	Reason        string    `json:"reason"`
	Phase         ItemPhase `json:"phase"`
	Priority      int       `json:"priority"`
}

// Targets reports whether the rule applies to the given enemy hero id.
func (r ItemCounterRule) Targets(heroID string) bool {
	for _, id := range r.TargetHeroIDs {
		if id == heroID {
			return true
		}
	}
	return false
}

// Validate checks an item counter rule for creation or import.
func (r ItemCounterRule) Validate() error {
	if len(r.ItemIDs) == 0 {
		return ErrEmptyItemIDs
	}
	if len(r.TargetHeroIDs) == 0 {
		return ErrEmptyTargetHeroes
	}
	if strings.TrimSpace(r.Reason) == "" {
		return ErrEmptyReason
	}
	if !r.Phase.IsValid() {
		return ErrInvalidPhase
	}
	return nil
}

// ItemRecommendation groups recommended items by purchase phase.
type ItemRecommendation struct {
	Early []CounterItem `json:"early"`
	Late  []CounterItem `json:"late"`
}
