package data

import "github.com/krit/mlbb-counter-website/internal/domain"

func rule(tags []string, counterID string, winRate float64, reason string, diff domain.Difficulty, priority int) domain.CounterRule {
	return domain.CounterRule{
		EnemyTags:  tags,
		CounterID:  counterID,
		WinRate:    winRate,
		Reason:     reason,
		Difficulty: diff,
		Priority:   priority,
	}
}

func t(tags ...string) []string { return tags }

// CounterRules is the built-in counter rule table. Rules are data, not code:
// each maps required enemy tags to a recommended counter hero. Order matters
// only for priority ties, where the earlier rule wins.
var CounterRules = []domain.CounterRule{
	// Anti-dash
	rule(t("dash"), "khufra", 65, "Bouncing Ball stops every dash skill, leaving the enemy no way in or out.", domain.DifficultyEasy, 95),
	rule(t("dash"), "minsitthar", 63, "King's Calling creates a zone that forbids dashes and blinks entirely.", domain.DifficultyEasy, 90),
	rule(t("dash"), "franco", 60, "Hook into Bloody Hunt locks the target down, making mobility irrelevant.", domain.DifficultyMedium, 75),

	// Anti-cable (Fanny)
	rule(t("cable"), "khufra", 72, "The best Fanny answer: Bouncing Ball interrupts cable flight on contact.", domain.DifficultyEasy, 100),
	rule(t("cable"), "minsitthar", 70, "The ultimate zone blocks cable flight; Fanny cannot pass through it.", domain.DifficultyEasy, 98),
	rule(t("cable"), "saber", 62, "Triple Sweep suppresses Fanny mid-flight and holds her in place.", domain.DifficultyEasy, 85),
	rule(t("cable"), "akai", 58, "Heavy Spin pins Fanny against a wall and cuts every cable.", domain.DifficultyMedium, 70),
	rule(t("cable"), "chou", 55, "A well-timed kick knocks Fanny off the cable and chains crowd control for the team.", domain.DifficultyHard, 60),

	// Anti-immune
	rule(t("immune"), "saber", 62, "Suppression lands before the immunity skill can be used.", domain.DifficultyEasy, 88),
	rule(t("immune"), "franco", 60, "Bloody Hunt suppresses through everything except an already-active immunity.", domain.DifficultyMedium, 82),
	rule(t("immune"), "karina", 56, "Wait out the immunity window, then burst immediately after it ends.", domain.DifficultyMedium, 50),

	// Anti-burst physical
	rule(t("burst", "physical"), "gatotkaca", 60, "His passive converts physical damage taken into magic power; hitting him makes him stronger.", domain.DifficultyEasy, 70),
	rule(t("burst", "physical"), "lolita", 58, "Guardian's Bulwark blocks projectiles, shielding the team from physical burst.", domain.DifficultyMedium, 65),
	rule(t("burst", "physical"), "belerick", 58, "Nature's Strike reflects damage, so bursting him hurts the attacker too.", domain.DifficultyEasy, 60),

	// Anti-burst magic
	rule(t("burst", "magic"), "lolita", 62, "The shield blocks magic projectiles, negating the whole combo.", domain.DifficultyEasy, 80),
	rule(t("burst", "magic"), "diggie", 58, "Time Journey purifies the team and shields through the magic burst.", domain.DifficultyEasy, 65),

	// Anti-sustain / anti-heal
	rule(t("sustain"), "baxia", 67, "His passive cuts HP regen and shields around him, gutting lifesteal.", domain.DifficultyEasy, 95),
	rule(t("sustain"), "karrie", 62, "Percent-HP true damage pierces straight through sustain tanks.", domain.DifficultyEasy, 80),
	rule(t("sustain"), "xborg", 58, "Constant true damage from Fire Missiles outpaces the enemy's regen.", domain.DifficultyMedium, 65),
	rule(t("sustain"), "esmeralda", 57, "She steals enemy shields for herself and wins the long trade.", domain.DifficultyMedium, 60),
	rule(t("heal"), "baxia", 70, "The regen cut makes enemy healing nearly worthless.", domain.DifficultyEasy, 98),
	rule(t("heal"), "esmeralda", 55, "Shield conversion beats healing in extended fights.", domain.DifficultyMedium, 50),

	// Anti-shield
	rule(t("shield"), "baxia", 65, "Shield generation around him is halved by the passive.", domain.DifficultyEasy, 90),
	rule(t("shield"), "karrie", 63, "True damage by percent HP goes straight through shields.", domain.DifficultyEasy, 85),
	rule(t("shield"), "lunox", 58, "Chaos-side penetration melts shields quickly.", domain.DifficultyMedium, 65),

	// Anti-CC
	rule(t("cc"), "diggie", 68, "Time Journey purifies the whole team, making enemy crowd control worthless.", domain.DifficultyEasy, 95),
	rule(t("cc"), "kagura", 57, "Her second skill purifies on use and lets her answer back.", domain.DifficultyHard, 55),
	rule(t("cc"), "wanwan", 56, "The passive dash sidesteps crowd control; full weakness stacks enable the untouchable ultimate.", domain.DifficultyHard, 50),

	// Anti-channel
	rule(t("channel"), "saber", 67, "Suppression cuts any channel instantly and cannot be resisted.", domain.DifficultyEasy, 95),
	rule(t("channel"), "franco", 65, "Bloody Hunt interrupts whatever the enemy is casting.", domain.DifficultyMedium, 90),
	rule(t("channel"), "helcurt", 63, "Silence stops a channeling enemy from continuing.", domain.DifficultyEasy, 88),
	rule(t("channel"), "chou", 60, "The ultimate kicks the caster out of channel position.", domain.DifficultyMedium, 75),
	rule(t("channel"), "atlas", 58, "Fatal Links grabs channelers and stops the cast.", domain.DifficultyMedium, 70),

	// Anti-silence
	rule(t("silence"), "diggie", 65, "Team-wide purify removes silence immediately.", domain.DifficultyEasy, 90),
	rule(t("silence"), "kagura", 55, "Skill 2 purify breaks the silence.", domain.DifficultyMedium, 60),

	// Anti-projectile
	rule(t("projectile"), "lolita", 68, "The shield blocks every projectile, deleting the damage entirely.", domain.DifficultyEasy, 98),

	// Anti-summon / anti-clone
	rule(t("summon"), "xborg", 60, "Flames burn summons and the summoner at the same time.", domain.DifficultyEasy, 75),
	rule(t("summon"), "valir", 58, "Fire clears summons quickly and pushes the real target away.", domain.DifficultyMedium, 70),
	rule(t("clone"), "xborg", 63, "True-damage fire wipes clones in moments.", domain.DifficultyEasy, 85),
	rule(t("clone"), "valir", 60, "Burns clones down fast while keeping the original at range.", domain.DifficultyEasy, 80),
	rule(t("clone"), "chang-e", 58, "The ultimate barrage destroys every clone simultaneously.", domain.DifficultyMedium, 72),

	// Anti-hook
	rule(t("hook"), "diggie", 65, "Purify frees hooked teammates from the follow-up crowd control.", domain.DifficultyEasy, 85),
	rule(t("hook"), "chou", 58, "Skill 2 immunity dodges the hook on a good read.", domain.DifficultyHard, 55),

	// Anti-global
	rule(t("global"), "khufra", 63, "Bouncing Ball stops the landing from a global ultimate.", domain.DifficultyEasy, 85),
	rule(t("global"), "diggie", 62, "Team purify escapes the lock after a global engage.", domain.DifficultyEasy, 80),
	rule(t("global"), "franco", 58, "Suppression locks the arriving diver immediately.", domain.DifficultyMedium, 70),

	// Anti-immortal (Argus)
	rule(t("immortal"), "franco", 63, "Hold him with suppression and simply wait out the immortality timer.", domain.DifficultyEasy, 90),
	rule(t("immortal"), "khufra", 60, "Chain crowd control until the ultimate expires.", domain.DifficultyEasy, 85),
	rule(t("immortal"), "atlas", 58, "Fatal Links holds him while the team waits out the timer.", domain.DifficultyMedium, 75),

	// Anti-attach
	rule(t("attach"), "saber", 62, "Suppress the enemy before they can attach to an ally.", domain.DifficultyEasy, 85),
	rule(t("attach"), "helcurt", 60, "Silence blocks the attach skill outright.", domain.DifficultyEasy, 80),

	// Anti-transform
	rule(t("transform"), "saber", 62, "Suppression works before or during the transformation.", domain.DifficultyEasy, 80),
	rule(t("transform"), "khufra", 60, "Movement denial applies to both forms.", domain.DifficultyEasy, 75),

	// Anti-lockdown
	rule(t("lockdown"), "diggie", 68, "Purify releases the team from suppression chains instantly.", domain.DifficultyEasy, 95),
	rule(t("lockdown"), "lancelot", 60, "Skill 2 immunity dodges the lockdown ultimate.", domain.DifficultyMedium, 70),
	rule(t("lockdown"), "chou", 58, "Immunity slips the lockdown and counterattacks.", domain.DifficultyMedium, 65),

	// Anti-wall
	rule(t("wall"), "diggie", 65, "Team purify escapes wall pins immediately.", domain.DifficultyEasy, 85),
	rule(t("wall"), "lancelot", 60, "Puncture's immunity passes through enemy walls.", domain.DifficultyMedium, 70),
	rule(t("wall"), "kagura", 58, "Purify breaks free from the wall pin at once.", domain.DifficultyMedium, 65),

	// Anti-fly
	rule(t("fly"), "saber", 67, "Suppression drags flyers straight out of the air.", domain.DifficultyEasy, 95),
	rule(t("fly"), "helcurt", 63, "Silence cancels the flight immediately.", domain.DifficultyEasy, 85),

	// Anti-setup
	rule(t("setup"), "diggie", 70, "Team purify renders area CC setups worthless.", domain.DifficultyEasy, 98),
	rule(t("setup"), "valir", 62, "Pushback ejects the tank before the setup lands.", domain.DifficultyEasy, 82),
	rule(t("setup"), "wanwan", 56, "Her passive dash weaves out of tank setups.", domain.DifficultyHard, 55),

	// Anti-pushback
	rule(t("pushback"), "lancelot", 60, "Immunity frames ignore the displacement.", domain.DifficultyMedium, 70),
	rule(t("pushback"), "chou", 58, "Skill 2 immunity shrugs off the knockback.", domain.DifficultyMedium, 65),

	// Anti-taunt
	rule(t("taunt"), "diggie", 68, "Team purify removes the taunt instantly.", domain.DifficultyEasy, 90),
	rule(t("taunt"), "kagura", 58, "Purify breaks the taunt on herself.", domain.DifficultyMedium, 60),

	// Anti-zone
	rule(t("zone"), "saber", 62, "Suppression pulls the enemy out of their own zone.", domain.DifficultyEasy, 80),
	rule(t("zone"), "franco", 60, "Hook drags the zone controller out of position.", domain.DifficultyMedium, 75),

	// Anti-copy (Valentina)
	rule(t("copy"), "saber", 63, "Lock her down before she can steal an ultimate.", domain.DifficultyEasy, 88),
	rule(t("copy"), "helcurt", 60, "Silence denies every stolen skill.", domain.DifficultyMedium, 80),

	// Anti-rewind (Lylia)
	rule(t("rewind"), "saber", 63, "Suppress her before the rewind goes off.", domain.DifficultyEasy, 88),
	rule(t("rewind"), "helcurt", 60, "Silence blocks the rewind ultimate entirely.", domain.DifficultyEasy, 82),

	// Anti-revive
	rule(t("revive"), "saber", 60, "Burst kills quickly both before and after the revive.", domain.DifficultyEasy, 70),
	rule(t("revive"), "helcurt", 58, "Silence shuts down skills, then clean up after the revive.", domain.DifficultyMedium, 65),

	// Anti-freeze
	rule(t("freeze"), "diggie", 68, "Team purify removes the freeze immediately.", domain.DifficultyEasy, 95),
	rule(t("freeze"), "lancelot", 60, "Immunity dodges the freeze, then burst follows.", domain.DifficultyMedium, 70),

	// Anti-teleport
	rule(t("teleport"), "saber", 63, "Suppress before the escape teleport finishes.", domain.DifficultyEasy, 88),
	rule(t("teleport"), "helcurt", 60, "Silence cancels the teleport channel.", domain.DifficultyEasy, 80),

	// Anti-crit
	rule(t("crit"), "gatotkaca", 60, "Crits feed his passive; the harder he is hit, the tankier he gets.", domain.DifficultyEasy, 70),
	rule(t("crit"), "lolita", 58, "The shield blocks ranged critical hits outright.", domain.DifficultyEasy, 65),

	// Anti-stack
	rule(t("stack"), "saber", 62, "Kill the stacker early, before the scaling comes online.", domain.DifficultyEasy, 80),
	rule(t("stack"), "helcurt", 58, "Silence plus burst denies stacks before they matter.", domain.DifficultyMedium, 70),
	rule(t("stack"), "lancelot", 57, "Early pressure keeps the stacker from ever scaling.", domain.DifficultyMedium, 65),

	// Anti-longrange
	rule(t("longrange"), "saber", 65, "The ultimate crosses the distance and suppresses the artillery instantly.", domain.DifficultyEasy, 92),
	rule(t("longrange"), "lancelot", 62, "Multiple dashes close the gap before the poke matters.", domain.DifficultyMedium, 80),
	rule(t("longrange"), "gusion", 60, "Dagger combo deletes squishy long-range casters.", domain.DifficultyHard, 72),

	// Anti-camo
	rule(t("camo"), "saber", 63, "The ultimate auto-targets; concealment does not hide from it.", domain.DifficultyEasy, 85),
	rule(t("camo"), "helcurt", 58, "His own darkness levels the field, then burst wins it.", domain.DifficultyMedium, 70),

	// Anti-execute
	rule(t("execute"), "diggie", 60, "Purify plus shield keeps low-HP teammates alive through the execute.", domain.DifficultyEasy, 72),

	// Anti-speed
	rule(t("speed"), "saber", 62, "Suppression does not care how fast the target runs.", domain.DifficultyEasy, 82),
	rule(t("speed"), "franco", 58, "A precise hook still catches sprinters.", domain.DifficultyHard, 60),

	// Anti-block (Lolita)
	rule(t("block"), "esmeralda", 63, "Her damage is melee, not projectile, so the shield wall does nothing.", domain.DifficultyEasy, 88),
	rule(t("block"), "chou", 60, "Kick her out of position while the shield is up.", domain.DifficultyMedium, 75),
	rule(t("block"), "franco", 58, "Hook pulls her out from behind the block.", domain.DifficultyMedium, 68),

	// Anti-reflect
	rule(t("reflect"), "karrie", 62, "True damage is not reflected; she shreds him safely.", domain.DifficultyEasy, 80),
	rule(t("reflect"), "lunox", 58, "Chaos penetration kills the reflector before the reflection matters.", domain.DifficultyMedium, 65),

	// Anti-ccimmune (Hanabi)
	rule(t("ccimmune"), "saber", 62, "Suppression pierces crowd-control immunity.", domain.DifficultyEasy, 85),
	rule(t("ccimmune"), "franco", 60, "Bloody Hunt is a suppress and ignores the immunity bubble.", domain.DifficultyMedium, 78),

	// Anti-throw
	rule(t("throw"), "diggie", 63, "Purify frees the thrown teammate immediately.", domain.DifficultyEasy, 82),
	rule(t("throw"), "chou", 58, "Immunity dodges the grab on a good read.", domain.DifficultyMedium, 65),

	// Anti-antidash
	rule(t("antidash"), "karrie", 63, "Percent-HP true damage cuts through the anti-dash tank's defense.", domain.DifficultyEasy, 80),
	rule(t("antidash"), "valir", 60, "Pushback keeps the anti-dash tank away without ever dashing.", domain.DifficultyMedium, 72),
	rule(t("antidash"), "esmeralda", 58, "Shield drain wins the extended tank matchup.", domain.DifficultyMedium, 65),

	// Anti-antiheal (Baxia)
	rule(t("antiheal"), "karrie", 63, "True damage per hit does not care about his defenses.", domain.DifficultyEasy, 82),
	rule(t("antiheal"), "valir", 60, "Pushback denies the rolling engage.", domain.DifficultyMedium, 70),

	// Anti-mount
	rule(t("mount"), "saber", 62, "Suppression dismounts the rider instantly.", domain.DifficultyEasy, 82),
	rule(t("mount"), "khufra", 60, "Bouncing Ball halts mounted movement.", domain.DifficultyEasy, 78),

	// Anti-purify
	rule(t("purify"), "saber", 62, "His ultimate is a suppress, which purify cannot remove.", domain.DifficultyEasy, 85),
	rule(t("purify"), "franco", 60, "Bloody Hunt is suppression; purify does not break it.", domain.DifficultyMedium, 78),

	// Anti-reset (Karina)
	rule(t("reset"), "saber", 63, "Lock her before the first kill that starts the reset chain.", domain.DifficultyEasy, 88),
	rule(t("reset"), "khufra", 60, "Stopping the dash denies the entry that feeds resets.", domain.DifficultyEasy, 82),

	// Anti-scaling
	rule(t("scaling"), "saber", 63, "Punish the scaler from level one and deny the farm.", domain.DifficultyEasy, 82),
	rule(t("scaling"), "lancelot", 60, "Early burst kills keep the scaler irrelevant.", domain.DifficultyMedium, 72),

	// Anti-aoe
	rule(t("aoe"), "diggie", 62, "Purify and shields blunt area damage and crowd control.", domain.DifficultyEasy, 78),
	rule(t("aoe"), "lolita", 58, "The shield wall blocks area projectiles for the team.", domain.DifficultyEasy, 70),

	// Anti-multiweapon (Beatrix)
	rule(t("multiweapon"), "saber", 64, "Suppression denies both the weapon swap and the escape.", domain.DifficultyEasy, 90),
	rule(t("multiweapon"), "lancelot", 60, "Fast engage with immunity to dodge the shotgun burst.", domain.DifficultyMedium, 78),

	// Anti-energy (Fanny)
	rule(t("energy"), "saber", 62, "Pressure the energy hero before the farm comes online.", domain.DifficultyEasy, 78),

	// Anti-anticchero (Diggie)
	rule(t("anticchero"), "helcurt", 60, "Silence lands before the purify ultimate can go off.", domain.DifficultyMedium, 72),
	rule(t("anticchero"), "saber", 58, "Suppress the purifier before the team purify.", domain.DifficultyMedium, 68),

	// General archetype rules
	rule(t("burst", "melee"), "atlas", 58, "Fatal Links catches diving melee burst and holds it for the team.", domain.DifficultyMedium, 55),
	rule(t("burst", "melee"), "tigreal", 56, "Implosion drags the diver in for the team to finish.", domain.DifficultyMedium, 45),
	rule(t("physical", "ranged"), "saber", 64, "The ultimate reaches isolated marksmen immediately.", domain.DifficultyEasy, 82),
	rule(t("physical", "ranged"), "lancelot", 60, "Dashes close on the marksman for a fast kill.", domain.DifficultyMedium, 72),
	rule(t("physical", "ranged"), "helcurt", 57, "Silence and burst punish a lone marksman.", domain.DifficultyMedium, 58),
	rule(t("magic", "ranged"), "saber", 63, "Squishy mages die to a single suppressed combo.", domain.DifficultyEasy, 80),
	rule(t("magic", "ranged"), "helcurt", 60, "Silence turns the mage off, then burst finishes.", domain.DifficultyEasy, 75),
	rule(t("magic", "ranged"), "lancelot", 58, "Immunity through the spells, then burst on top.", domain.DifficultyMedium, 68),
	rule(t("melee"), "valir", 58, "Pushback keeps melee threats permanently out of reach.", domain.DifficultyMedium, 40),

	// Current meta, multi-tag
	rule(t("dash", "transform", "stack"), "phoveus", 68, "Every Sora dash resets his skill, so he follows her through every jump.", domain.DifficultyEasy, 96),
	rule(t("antidash", "cc", "sustain"), "karrie", 65, "Percent-HP true damage pierces Phoveus's bulk.", domain.DifficultyEasy, 90),
	rule(t("dash", "burst", "lockdown"), "diggie", 67, "Team purify breaks Yin's domain lock instantly.", domain.DifficultyEasy, 95),
	rule(t("cc", "sustained", "reflect"), "karrie", 65, "True damage keeps Fredrinn's gray HP from ever mattering.", domain.DifficultyEasy, 88),
	rule(t("dash", "burst", "magic", "melee"), "phoveus", 67, "He jumps on Julian after every dash, breaking the combo chain.", domain.DifficultyEasy, 92),
	rule(t("cc", "sustained", "magic", "ranged"), "saber", 65, "Suppress Zhuxin before the teamfight and she dies in one rotation.", domain.DifficultyEasy, 90),
	rule(t("dash", "sustain", "physical", "melee"), "phoveus", 66, "Each Cici dash feeds his reset; she cannot disengage.", domain.DifficultyEasy, 90),
	rule(t("sustain", "physical", "melee", "transform"), "baxia", 65, "Regen reduction stops Lukas from outlasting trades.", domain.DifficultyEasy, 88),
	rule(t("sustain", "magic", "ranged", "heal", "global"), "baxia", 70, "The heal cut makes Floryn's global sustain nearly useless.", domain.DifficultyEasy, 95),
	rule(t("cc", "magic", "melee", "lockdown"), "diggie", 68, "Purify breaks Kaja's suppress chain for the whole team.", domain.DifficultyEasy, 95),
	rule(t("cc", "burst", "physical", "ranged", "transform"), "saber", 64, "Suppress Edith before she swaps into her ranged form.", domain.DifficultyEasy, 88),
	rule(t("burst", "magic", "ranged"), "saber", 65, "Natan is paper under a suppressed combo.", domain.DifficultyEasy, 90),
}
