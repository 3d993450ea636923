package data

import "github.com/krit/mlbb-counter-website/internal/domain"

// Item ids referenced by the recommendation engine and the base item rules.
const (
	ItemBladeArmor        = "blade-armor"
	ItemWindOfNature      = "wind-of-nature"
	ItemAntiqueCuirass    = "antique-cuirass"
	ItemImmortality       = "immortality"
	ItemWinterTruncheon   = "winter-truncheon"
	ItemAthenasShield     = "athenas-shield"
	ItemToughBoots        = "tough-boots"
	ItemRadiantArmor      = "radiant-armor"
	ItemNecklaceOfDurance = "necklace-of-durance"
	ItemSeaHalberd        = "sea-halberd"
	ItemDivineGlaive      = "divine-glaive"
	ItemDominanceIce      = "dominance-ice"
	ItemTwilightArmor     = "twilight-armor"
	ItemMaleficRoar       = "malefic-roar"
	ItemWarriorBoots      = "warrior-boots"
)

// Items is the built-in equipment catalog.
var Items = []domain.ItemDef{
	{ID: ItemBladeArmor, Name: "Blade Armor", Icon: "BA", Stat: "+90 Physical DEF", Price: 1660},
	{ID: ItemWindOfNature, Name: "Wind of Nature", Icon: "WN", Stat: "+30 Physical ATK, +20% ATK Speed", Price: 1910},
	{ID: ItemAntiqueCuirass, Name: "Antique Cuirass", Icon: "AC", Stat: "+920 HP, +54 Physical DEF", Price: 2170},
	{ID: ItemImmortality, Name: "Immortality", Icon: "IM", Stat: "+800 HP, +40 Physical DEF", Price: 2120},
	{ID: ItemWinterTruncheon, Name: "Winter Truncheon", Icon: "WT", Stat: "+60 Magic Power, +25 Physical DEF", Price: 1910},
	{ID: ItemAthenasShield, Name: "Athena's Shield", Icon: "AS", Stat: "+900 HP, +62 Magic DEF", Price: 2150},
	{ID: ItemToughBoots, Name: "Tough Boots", Icon: "TB", Stat: "+22 Magic DEF, -30% CC Duration", Price: 700},
	{ID: ItemRadiantArmor, Name: "Radiant Armor", Icon: "RA", Stat: "+950 HP, +52 Magic DEF", Price: 1880},
	{ID: ItemNecklaceOfDurance, Name: "Necklace of Durance", Icon: "ND", Stat: "+60 Magic Power, +10% CD Reduction", Price: 2010},
	{ID: ItemSeaHalberd, Name: "Sea Halberd", Icon: "SH", Stat: "+80 Physical ATK, +25% ATK Speed", Price: 2050},
	{ID: ItemDivineGlaive, Name: "Divine Glaive", Icon: "DG", Stat: "+65 Magic Power, +40% Magic PEN", Price: 1970},
	{ID: ItemDominanceIce, Name: "Dominance Ice", Icon: "DI", Stat: "+500 Mana, +70 Physical DEF", Price: 2010},
	{ID: ItemTwilightArmor, Name: "Twilight Armor", Icon: "TA", Stat: "+1200 HP, +400 Mana", Price: 2260},
	{ID: ItemMaleficRoar, Name: "Malefic Roar", Icon: "MR", Stat: "+60 Physical ATK, +40% Physical PEN", Price: 2060},
	{ID: ItemWarriorBoots, Name: "Warrior Boots", Icon: "WB", Stat: "+22 Physical DEF", Price: 720},
}
