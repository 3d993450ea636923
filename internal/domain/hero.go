package domain

import (
	"regexp"
	"strings"
)

// HeroRole represents a hero's class in Mobile Legends
type HeroRole string

const (
	RoleFighter  HeroRole = "Fighter"
	RoleMage     HeroRole = "Mage"
	RoleMarksman HeroRole = "Marksman"
	RoleAssassin HeroRole = "Assassin"
	RoleTank     HeroRole = "Tank"
	RoleSupport  HeroRole = "Support"
)

// AllRoles contains all valid hero roles
var AllRoles = []HeroRole{RoleFighter, RoleMage, RoleMarksman, RoleAssassin, RoleTank, RoleSupport}

// IsValid checks if a role is valid
func (r HeroRole) IsValid() bool {
	switch r {
	case RoleFighter, RoleMage, RoleMarksman, RoleAssassin, RoleTank, RoleSupport:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r HeroRole) String() string {
	return string(r)
}

type Hero struct {
	ID    string   `json:"id"`    // slug, e.g. "yu-zhong"
	Name  string   `json:"name"`  // Display name
	Role  HeroRole `json:"role"`
	Icon  string   `json:"icon"`  // Two-letter label shown when no image is set
	Image string   `json:"image"` // Full URL, may be empty
	Tags  []string `json:"tags"`  // Gameplay tags used for counter matching, lowercase
}

// HasTag reports whether the hero carries the given tag.
func (h Hero) HasTag(tag string) bool {
	for _, t := range h.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAllTags reports whether the hero's tag set contains every given tag.
func (h Hero) HasAllTags(tags []string) bool {
	for _, t := range tags {
		if !h.HasTag(t) {
			return false
		}
	}
	return true
}

// Validate checks a full hero record for creation.
func (h Hero) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(h.Name) == "" {
		return ErrEmptyName
	}
	if !h.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// IsValid checks if a difficulty is valid
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// CounterRule maps a set of required enemy tags to a recommended counter hero.
// Every tag in EnemyTags must be present on the enemy for the rule to match.
type CounterRule struct {
	EnemyTags  []string   `json:"enemyTags"`
	CounterID  string     `json:"counterId"`
	WinRate    float64    `json:"winRate"` // presentation only, not clamped
	Reason     string     `json:"reason"`
	Difficulty Difficulty `json:"difficulty"`
	Priority   int        `json:"priority"` // higher shows first
}

// Validate checks a counter rule for creation or import.
func (r CounterRule) Validate() error {
	if len(r.EnemyTags) == 0 {
		return ErrEmptyEnemyTags
	}
	if strings.TrimSpace(r.CounterID) == "" {
		return ErrEmptyCounterID
	}
	if strings.TrimSpace(r.Reason) == "" {
		return ErrEmptyReason
	}
	if !r.Difficulty.IsValid() {
		return ErrInvalidDifficulty
	}
	return nil
}

// CounterPick is an engine result entry: a counter hero plus rule metadata.
type CounterPick struct {
	Hero       Hero       `json:"hero"`
	WinRate    float64    `json:"winRate"`
	Reason     string     `json:"reason"`
	Difficulty Difficulty `json:"difficulty"`
}

// NormalizeTags lowercases, trims, and deduplicates a tag list, preserving
// first-seen order. Empty entries are dropped.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ParseTags splits comma-separated tag input and normalizes it.
func ParseTags(input string) []string {
	return NormalizeTags(strings.Split(input, ","))
}

var slugStrip = regexp.MustCompile(`[\s'.]+`)

// Slugify derives an id slug from a display name, e.g. "Yi Sun-shin" ->
// "yi-sun-shin".
func Slugify(name string) string {
	return slugStrip.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
