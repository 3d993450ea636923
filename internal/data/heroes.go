// Package data holds the built-in hero, item, rule, and tier tables. Base
// records are compiled into the binary and never mutated; runtime edits live
// in the overlay layers persisted by the repository package.
package data

import "github.com/krit/mlbb-counter-website/internal/domain"

const imgBase = "https://akmwebstatic.yuanzhanapp.com/web/madmin/hero/"

func hero(id, name string, role domain.HeroRole, icon string, tags ...string) domain.Hero {
	return domain.Hero{
		ID:    id,
		Name:  name,
		Role:  role,
		Icon:  icon,
		Image: imgBase + id + ".png",
		Tags:  tags,
	}
}

// Heroes is the built-in hero catalog. Tags describe gameplay traits and are
// the sole predicate vocabulary for counter rules.
var Heroes = []domain.Hero{
	// Assassin
	hero("ling", "Ling", domain.RoleAssassin, "LI", "dash", "wall", "burst", "physical", "melee"),
	hero("fanny", "Fanny", domain.RoleAssassin, "FA", "cable", "dash", "burst", "physical", "melee", "energy"),
	hero("lancelot", "Lancelot", domain.RoleAssassin, "LA", "dash", "immune", "burst", "physical", "melee"),
	hero("gusion", "Gusion", domain.RoleAssassin, "GU", "dash", "burst", "magic", "melee", "projectile"),
	hero("hayabusa", "Hayabusa", domain.RoleAssassin, "HA", "dash", "split", "burst", "physical", "melee"),
	hero("helcurt", "Helcurt", domain.RoleAssassin, "HE", "silence", "dash", "burst", "physical", "melee"),
	hero("saber", "Saber", domain.RoleAssassin, "SA", "dash", "lockdown", "burst", "physical", "melee"),
	hero("karina", "Karina", domain.RoleAssassin, "KA", "dash", "burst", "magic", "melee", "reset"),
	hero("benedetta", "Benedetta", domain.RoleAssassin, "BE", "dash", "immune", "burst", "physical", "melee"),
	hero("joy", "Joy", domain.RoleAssassin, "JO", "dash", "burst", "magic", "melee"),
	hero("natalia", "Natalia", domain.RoleAssassin, "NT", "burst", "physical", "melee", "camo", "silence"),
	hero("selena", "Selena", domain.RoleAssassin, "SE", "cc", "burst", "magic", "ranged", "transform"),
	hero("hanzo", "Hanzo", domain.RoleAssassin, "HZ", "burst", "physical", "melee", "clone", "ranged"),
	hero("yi-sun-shin", "Yi Sun-shin", domain.RoleAssassin, "YS", "burst", "physical", "ranged", "global"),
	hero("aamon", "Aamon", domain.RoleAssassin, "AM", "burst", "magic", "melee", "camo"),
	hero("nolan", "Nolan", domain.RoleAssassin, "NO", "dash", "burst", "physical", "melee"),
	hero("julian", "Julian", domain.RoleAssassin, "JU", "dash", "burst", "magic", "melee"),
	hero("suyou", "Suyou", domain.RoleAssassin, "SY", "dash", "burst", "physical", "melee"),
	// Fighter
	hero("chou", "Chou", domain.RoleFighter, "CH", "dash", "cc", "immune", "burst", "physical", "melee"),
	hero("esmeralda", "Esmeralda", domain.RoleFighter, "ES", "shield", "sustain", "magic", "melee"),
	hero("yu-zhong", "Yu Zhong", domain.RoleFighter, "YZ", "sustain", "cc", "physical", "melee", "transform"),
	hero("paquito", "Paquito", domain.RoleFighter, "PA", "dash", "cc", "burst", "physical", "melee"),
	hero("thamuz", "Thamuz", domain.RoleFighter, "TH", "sustain", "physical", "melee"),
	hero("xborg", "X.Borg", domain.RoleFighter, "XB", "truedmg", "sustained", "physical", "melee"),
	hero("aldous", "Aldous", domain.RoleFighter, "AL", "burst", "physical", "melee", "global", "stack"),
	hero("alucard", "Alucard", domain.RoleFighter, "AU", "dash", "sustain", "burst", "physical", "melee"),
	hero("argus", "Argus", domain.RoleFighter, "AR", "immortal", "dash", "physical", "melee"),
	hero("badang", "Badang", domain.RoleFighter, "BD", "cc", "wall", "burst", "physical", "melee"),
	hero("balmond", "Balmond", domain.RoleFighter, "BL", "sustain", "physical", "melee", "execute"),
	hero("freya", "Freya", domain.RoleFighter, "FR", "dash", "cc", "burst", "physical", "melee"),
	hero("guinevere", "Guinevere", domain.RoleFighter, "GN", "dash", "cc", "burst", "magic", "melee"),
	hero("jawhead", "Jawhead", domain.RoleFighter, "JW", "cc", "throw", "burst", "physical", "melee"),
	hero("lapu-lapu", "Lapu-Lapu", domain.RoleFighter, "LL", "burst", "physical", "melee", "transform"),
	hero("leomord", "Leomord", domain.RoleFighter, "LM", "dash", "burst", "physical", "melee", "mount"),
	hero("martis", "Martis", domain.RoleFighter, "MA", "cc", "dash", "physical", "melee", "immune"),
	hero("minsitthar", "Minsitthar", domain.RoleFighter, "MI", "antidash", "cc", "physical", "melee", "hook"),
	hero("ruby", "Ruby", domain.RoleFighter, "RU", "sustain", "cc", "physical", "melee"),
	hero("sun", "Sun", domain.RoleFighter, "SU", "clone", "physical", "melee", "sustained"),
	hero("terizla", "Terizla", domain.RoleFighter, "TE", "cc", "sustained", "physical", "melee", "slow"),
	hero("zilong", "Zilong", domain.RoleFighter, "ZI", "dash", "burst", "physical", "melee", "speed"),
	hero("bane", "Bane", domain.RoleFighter, "BN2", "burst", "physical", "melee", "sustained", "summon"),
	hero("alpha", "Alpha", domain.RoleFighter, "AP", "dash", "cc", "burst", "physical", "melee", "sustain"),
	hero("dyrroth", "Dyrroth", domain.RoleFighter, "DY", "dash", "burst", "physical", "melee"),
	hero("khaleed", "Khaleed", domain.RoleFighter, "KL", "dash", "cc", "sustain", "physical", "melee"),
	hero("silvanna", "Silvanna", domain.RoleFighter, "SV", "dash", "cc", "burst", "magic", "melee", "lockdown"),
	hero("masha", "Masha", domain.RoleFighter, "MS", "sustained", "physical", "melee", "speed"),
	hero("phoveus", "Phoveus", domain.RoleFighter, "PV", "cc", "sustain", "magic", "melee", "antidash"),
	hero("aulus", "Aulus", domain.RoleFighter, "AUL", "cc", "sustained", "physical", "melee", "stack"),
	hero("yin", "Yin", domain.RoleFighter, "YN", "dash", "burst", "physical", "melee", "lockdown"),
	hero("fredrinn", "Fredrinn", domain.RoleFighter, "FD", "cc", "sustained", "physical", "melee", "reflect"),
	hero("arlott", "Arlott", domain.RoleFighter, "ARL", "dash", "cc", "burst", "physical", "melee"),
	hero("cici", "Cici", domain.RoleFighter, "CI", "dash", "sustain", "physical", "melee"),
	hero("lukas", "Lukas", domain.RoleFighter, "LK", "sustain", "physical", "melee", "transform"),
	hero("sora", "Sora", domain.RoleFighter, "SR", "dash", "burst", "cc", "physical", "melee", "transform", "stack"),
	// Mage
	hero("lunox", "Lunox", domain.RoleMage, "LU", "burst", "sustain", "magic", "immune", "ranged"),
	hero("kagura", "Kagura", domain.RoleMage, "KG", "burst", "cc", "magic", "purify", "ranged", "projectile"),
	hero("valentina", "Valentina", domain.RoleMage, "VA", "burst", "cc", "magic", "copy", "ranged"),
	hero("yve", "Yve", domain.RoleMage, "YV", "zone", "cc", "magic", "ranged", "channel"),
	hero("pharsa", "Pharsa", domain.RoleMage, "PH", "burst", "magic", "ranged", "channel", "fly"),
	hero("cecilion", "Cecilion", domain.RoleMage, "CE", "burst", "magic", "ranged", "scaling"),
	hero("alice", "Alice", domain.RoleMage, "AI", "sustain", "magic", "melee", "channel"),
	hero("aurora", "Aurora", domain.RoleMage, "AO", "burst", "cc", "magic", "ranged", "freeze"),
	hero("chang-e", "Chang'e", domain.RoleMage, "CG", "burst", "magic", "ranged", "channel"),
	hero("cyclops", "Cyclops", domain.RoleMage, "CY", "burst", "cc", "magic", "ranged"),
	hero("eudora", "Eudora", domain.RoleMage, "EU", "burst", "cc", "magic", "ranged"),
	hero("harith", "Harith", domain.RoleMage, "HI", "dash", "burst", "magic", "melee"),
	hero("harley", "Harley", domain.RoleMage, "HL", "dash", "burst", "magic", "ranged", "teleport"),
	hero("kadita", "Kadita", domain.RoleMage, "KD", "burst", "cc", "magic", "immune", "ranged"),
	hero("lylia", "Lylia", domain.RoleMage, "LY", "burst", "magic", "ranged", "rewind"),
	hero("nana", "Nana", domain.RoleMage, "NA", "cc", "magic", "ranged", "transform", "revive"),
	hero("odette", "Odette", domain.RoleMage, "OD", "burst", "cc", "magic", "ranged", "channel"),
	hero("vale", "Vale", domain.RoleMage, "VL", "burst", "cc", "magic", "ranged"),
	hero("valir", "Valir", domain.RoleMage, "VR", "cc", "magic", "ranged", "pushback", "sustained"),
	hero("vexana", "Vexana", domain.RoleMage, "VX", "burst", "cc", "magic", "ranged", "summon"),
	hero("zhask", "Zhask", domain.RoleMage, "ZH", "zone", "magic", "ranged", "summon", "sustained"),
	hero("gord", "Gord", domain.RoleMage, "GD", "burst", "magic", "ranged", "channel"),
	hero("luo-yi", "Luo Yi", domain.RoleMage, "LI2", "cc", "magic", "ranged", "teleport"),
	hero("xavier", "Xavier", domain.RoleMage, "XV", "burst", "magic", "ranged", "longrange", "projectile"),
	hero("novaria", "Novaria", domain.RoleMage, "NV", "burst", "magic", "ranged", "projectile"),
	hero("zhuxin", "Zhuxin", domain.RoleMage, "ZX", "cc", "sustained", "magic", "ranged"),
	hero("zetian", "Zetian", domain.RoleMage, "ZT", "cc", "burst", "magic", "ranged"),
	hero("kimmy", "Kimmy", domain.RoleMage, "KM", "sustained", "magic", "ranged", "physical"),
	// Marksman
	hero("beatrix", "Beatrix", domain.RoleMarksman, "BT", "burst", "physical", "ranged", "multiweapon"),
	hero("wanwan", "Wanwan", domain.RoleMarksman, "WW", "dash", "burst", "physical", "ranged", "purify"),
	hero("brody", "Brody", domain.RoleMarksman, "BR", "burst", "physical", "ranged", "stack"),
	hero("moskov", "Moskov", domain.RoleMarksman, "MO", "dash", "cc", "physical", "ranged"),
	hero("bruno", "Bruno", domain.RoleMarksman, "BN", "burst", "physical", "ranged", "crit"),
	hero("claude", "Claude", domain.RoleMarksman, "CL", "dash", "burst", "physical", "ranged", "aoe"),
	hero("clint", "Clint", domain.RoleMarksman, "CT", "burst", "physical", "ranged"),
	hero("granger", "Granger", domain.RoleMarksman, "GR", "dash", "burst", "physical", "ranged"),
	hero("hanabi", "Hanabi", domain.RoleMarksman, "HB", "physical", "ranged", "ccimmune", "sustained"),
	hero("irithel", "Irithel", domain.RoleMarksman, "IR", "burst", "physical", "ranged", "crit"),
	hero("karrie", "Karrie", domain.RoleMarksman, "KR", "truedmg", "physical", "ranged", "sustained"),
	hero("layla", "Layla", domain.RoleMarksman, "LO", "burst", "physical", "ranged", "longrange"),
	hero("lesley", "Lesley", domain.RoleMarksman, "LE", "burst", "physical", "ranged", "crit", "camo"),
	hero("melissa", "Melissa", domain.RoleMarksman, "ML", "burst", "physical", "ranged", "zone"),
	hero("miya", "Miya", domain.RoleMarksman, "MY", "physical", "ranged", "purify", "sustained"),
	hero("roger", "Roger", domain.RoleMarksman, "RO", "dash", "burst", "physical", "transform"),
	hero("popol-and-kupa", "Popol and Kupa", domain.RoleMarksman, "PK", "cc", "physical", "ranged", "summon"),
	hero("natan", "Natan", domain.RoleMarksman, "NN", "burst", "magic", "ranged"),
	hero("ixia", "Ixia", domain.RoleMarksman, "IX", "burst", "physical", "ranged", "sustained"),
	hero("edith", "Edith", domain.RoleMarksman, "ED", "cc", "burst", "physical", "ranged", "transform"),
	hero("obsidia", "Obsidia", domain.RoleMarksman, "OB", "burst", "physical", "ranged"),
	// Tank
	hero("atlas", "Atlas", domain.RoleTank, "AT", "cc", "magic", "melee", "aoe", "setup"),
	hero("khufra", "Khufra", domain.RoleTank, "KH", "antidash", "cc", "magic", "melee"),
	hero("franco", "Franco", domain.RoleTank, "FN", "cc", "hook", "physical", "melee", "lockdown"),
	hero("tigreal", "Tigreal", domain.RoleTank, "TI", "cc", "physical", "melee", "aoe", "setup"),
	hero("akai", "Akai", domain.RoleTank, "AK", "cc", "physical", "melee", "pushback"),
	hero("baxia", "Baxia", domain.RoleTank, "BX", "antiheal", "magic", "melee", "dash"),
	hero("belerick", "Belerick", domain.RoleTank, "BK", "cc", "sustain", "magic", "melee", "reflect"),
	hero("gatotkaca", "Gatotkaca", domain.RoleTank, "GT", "cc", "magic", "melee", "taunt", "global"),
	hero("gloo", "Gloo", domain.RoleTank, "GL", "cc", "sustain", "magic", "melee", "attach"),
	hero("grock", "Grock", domain.RoleTank, "GK", "cc", "physical", "melee", "wall"),
	hero("hilda", "Hilda", domain.RoleTank, "HD", "burst", "physical", "melee", "bush", "sustain"),
	hero("hylos", "Hylos", domain.RoleTank, "HY", "cc", "sustain", "magic", "melee"),
	hero("johnson", "Johnson", domain.RoleTank, "JN", "cc", "magic", "melee", "global", "transform"),
	hero("lolita", "Lolita", domain.RoleTank, "LT", "cc", "physical", "melee", "block", "shield"),
	hero("minotaur", "Minotaur", domain.RoleTank, "MN", "cc", "sustain", "magic", "melee", "heal"),
	hero("uranus", "Uranus", domain.RoleTank, "UR", "sustain", "magic", "melee"),
	hero("barats", "Barats", domain.RoleTank, "BR2", "cc", "physical", "melee", "stack", "sustained"),
	// Support
	hero("angela", "Angela", domain.RoleSupport, "AG", "cc", "sustain", "magic", "ranged", "attach"),
	hero("diggie", "Diggie", domain.RoleSupport, "DI", "cc", "magic", "ranged", "purify", "anticchero"),
	hero("estes", "Estes", domain.RoleSupport, "ET", "sustain", "magic", "ranged", "heal"),
	hero("floryn", "Floryn", domain.RoleSupport, "FL", "sustain", "magic", "ranged", "heal", "global"),
	hero("mathilda", "Mathilda", domain.RoleSupport, "MT", "dash", "cc", "physical", "melee"),
	hero("rafaela", "Rafaela", domain.RoleSupport, "RA", "sustain", "cc", "magic", "ranged", "heal", "speed"),
	hero("kaja", "Kaja", domain.RoleSupport, "KJ", "cc", "magic", "melee", "lockdown"),
	hero("faramis", "Faramis", domain.RoleSupport, "FM", "magic", "ranged", "revive"),
	hero("carmilla", "Carmilla", domain.RoleSupport, "CM", "cc", "magic", "melee", "sustain"),
	hero("chip", "Chip", domain.RoleSupport, "CP", "cc", "magic", "ranged", "teleport"),
	hero("kalea", "Kalea", domain.RoleSupport, "KLE", "cc", "sustain", "magic", "melee"),
}
