package data

import (
	"strings"

	"github.com/krit/mlbb-counter-website/internal/domain"
)

// TierPatch and TierSource describe where the default tier data came from.
const (
	TierPatch  = "Patch 1.9.48"
	TierSource = "mlbb.gg / mlbbmeta.com"
)

var heroIDByName = func() map[string]string {
	m := make(map[string]string, len(Heroes))
	for _, h := range Heroes {
		m[strings.ToLower(h.Name)] = h.ID
	}
	return m
}()

// heroIDs resolves a comma-separated list of display names against the hero
// catalog, falling back to the name's slug for anything not listed there.
func heroIDs(names string) []string {
	parts := strings.Split(names, ",")
	ids := make([]string, 0, len(parts))
	for _, n := range parts {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if id, ok := heroIDByName[strings.ToLower(n)]; ok {
			ids = append(ids, id)
			continue
		}
		ids = append(ids, domain.Slugify(n))
	}
	return ids
}

// DefaultTierMap returns a fresh copy of the built-in lane tier placements.
// Callers receive an independent map and may mutate it freely.
func DefaultTierMap() domain.LaneTierMap {
	return domain.LaneTierMap{
		domain.LaneRoam: {
			domain.TierSS: heroIDs("Gatotkaca, Belerick, Chip, Kalea"),
			domain.TierS:  heroIDs("Khufra, Atlas, Tigreal, Lolita, Hylos, Edith, Carmilla, Johnson"),
			domain.TierA:  heroIDs("Franco, Gloo, Barats, Mathilda, Floryn, Diggie, Angela, Estes"),
			domain.TierB:  heroIDs("Akai, Minotaur, Rafaela, Kaja, Faramis"),
			domain.TierC:  heroIDs("Uranus, Grock, Baxia"),
			domain.TierD:  {},
		},
		domain.LaneExp: {
			domain.TierSS: heroIDs("Lukas, Suyou, Cici, Phoveus, Yin"),
			domain.TierS:  heroIDs("Arlott, Fredrinn, Badang, Martis, Alpha, Guinevere, Esmeralda, X.Borg, Yu Zhong"),
			domain.TierA:  heroIDs("Khaleed, Jawhead, Chou, Sun, Argus, Freya, Lapu-Lapu, Aulus, Thamuz, Masha"),
			domain.TierB:  heroIDs("Balmond, Silvanna, Ruby, Zilong, Dyrroth, Terizla, Leomord, Aldous"),
			domain.TierC:  heroIDs("Minsitthar, Hilda, Bane, Alucard"),
			domain.TierD:  heroIDs("Paquito"),
		},
		domain.LaneJungle: {
			domain.TierSS: heroIDs("Fanny, Hayabusa, Ling, Suyou"),
			domain.TierS:  heroIDs("Helcurt, Saber, Benedetta, Julian, Lancelot, Karina, Hanzo, Selena, Gusion, Aamon"),
			domain.TierA:  heroIDs("Joy, Nolan, Roger, Alpha, Yin, Granger, Barats"),
			domain.TierB:  heroIDs("Natalia, Yi Sun-shin, Alucard, Zilong"),
			domain.TierC:  heroIDs("Harley"),
			domain.TierD:  {},
		},
		domain.LaneMid: {
			domain.TierSS: heroIDs("Zhuxin, Kagura, Zetian"),
			domain.TierS:  heroIDs("Xavier, Vale, Lunox, Aurora, Gord, Zhask, Kimmy, Yve, Valentina, Eudora"),
			domain.TierA:  heroIDs("Pharsa, Cecilion, Harley, Harith, Chang'e, Luo Yi, Kadita, Odette, Nana, Lylia"),
			domain.TierB:  heroIDs("Cyclops, Vexana, Valir, Alice"),
			domain.TierC:  heroIDs("Novaria"),
			domain.TierD:  {},
		},
		domain.LaneGold: {
			domain.TierSS: heroIDs("Moskov, Miya, Granger, Melissa"),
			domain.TierS:  heroIDs("Beatrix, Wanwan, Layla, Lesley, Bruno, Natan, Ixia, Edith"),
			domain.TierA:  heroIDs("Brody, Hanabi, Clint, Claude, Irithel, Popol and Kupa, Karrie"),
			domain.TierB:  heroIDs("Kimmy, Obsidia"),
			domain.TierC:  {},
			domain.TierD:  {},
		},
	}
}

// LaneLabels maps each lane to its display label and icon name.
var LaneLabels = map[domain.Lane]struct {
	Label string
	Icon  string
}{
	domain.LaneRoam:   {Label: "Roaming", Icon: "shield"},
	domain.LaneExp:    {Label: "EXP Lane", Icon: "swords"},
	domain.LaneJungle: {Label: "Jungle", Icon: "trees"},
	domain.LaneMid:    {Label: "Mid Lane", Icon: "zap"},
	domain.LaneGold:   {Label: "Gold Lane", Icon: "coins"},
}
