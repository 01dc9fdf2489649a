package engine

import (
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

// executeMove runs one side's chosen move from pre-action checks through
// residual riders. idx -1 is Struggle.
func (b *Battle) executeMove(side, idx int) {
	c := b.Sides[side].Active()

	if c.Vol.EncoreTurns > 0 && c.Vol.EncoreMove >= 0 {
		idx = c.Vol.EncoreMove
	}
	if c.Vol.ChoiceLock >= 0 {
		idx = c.Vol.ChoiceLock
	}
	if idx >= 0 && (idx >= len(c.Moves) || c.Moves[idx].PP <= 0) {
		idx = -1
	}
	mv := b.resolveMove(side, idx)

	if !b.preActionCheck(side, mv) {
		return
	}
	if idx >= 0 {
		if reason := b.moveBlockReason(side, idx); reason != "" {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Move: mv.Name, Outcome: reason})
			return
		}
	}

	b.emit(moveUsedEvent{Side: side, Idx: idx})

	if mv.Category == data.Status {
		b.executeStatusMove(side, mv)
		return
	}
	b.executeDamagingMove(side, mv, idx < 0)
}

// targetedStatus reports whether a status move is aimed at the opponent
// rather than the user or the field.
func targetedStatus(mv data.Move) bool {
	if mv.Accuracy > 0 && !mv.Flags.Bypass {
		return true
	}
	switch mv.Effect {
	case data.EffectTorment, data.EffectTaunt, data.EffectEncore, data.EffectDisable, data.EffectLeechSeed:
		return true
	}
	return false
}

func (b *Battle) executeStatusMove(side int, mv data.Move) {
	c := b.Sides[side].Active()
	foeSide := Opponent(side)
	foe := b.Sides[foeSide].Active()

	if mv.Effect == data.EffectProtect {
		if c.Vol.UsedProtect {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Move: mv.Name, Outcome: "consecutive_protect"})
			return
		}
		c.Vol.Protected = true
		b.record(Entry{Side: side, Kind: EventVolatileSet, Target: c.Name, Outcome: "protect"})
		return
	}

	var accRoll int
	if targetedStatus(mv) {
		if foe.Vol.Protected {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Move: mv.Name, Outcome: "protected"})
			return
		}
		hit, roll := b.accuracyCheck(side, mv)
		accRoll = roll
		if !hit {
			b.record(Entry{Side: side, Kind: EventMissed, Actor: c.Name, Move: mv.Name, AccuracyRoll: accRoll})
			return
		}
		if foe.Vol.SubstituteHP > 0 && !mv.Flags.Sound && !c.HasAbility(data.AbilityInfiltrator) {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Move: mv.Name, Outcome: "blocked_by_substitute", AccuracyRoll: accRoll})
			return
		}
	}

	if mv.Secondary != nil {
		b.applySecondary(side, mv, mv.Secondary, false, accRoll)
	}

	switch mv.Effect {
	case data.EffectStealthRock, data.EffectSpikes, data.EffectToxicSpikes, data.EffectStickyWeb:
		b.setHazard(foeSide, mv.Effect)
	case data.EffectDefog:
		b.clearHazards(side, "defog")
		b.clearHazards(foeSide, "defog")
		fs := b.Sides[foeSide]
		if fs.Reflect > 0 || fs.LightScreen > 0 || fs.AuroraVeil > 0 {
			fs.Reflect, fs.LightScreen, fs.AuroraVeil = 0, 0, 0
			b.record(Entry{Side: foeSide, Kind: EventScreenChanged, Outcome: "blown_away", Detail: "defog"})
		}
	case data.EffectReflect, data.EffectLightScreen, data.EffectAuroraVeil:
		b.setScreen(side, mv.Effect)
	case data.EffectTailwind:
		s := b.Sides[side]
		if s.Tailwind > 0 {
			b.record(Entry{Side: side, Kind: EventActionFailed, Outcome: "tailwind_already_up"})
		} else {
			s.Tailwind = tailwindDuration
			b.record(Entry{Side: side, Kind: EventScreenChanged, Outcome: "tailwind"})
		}
	case data.EffectTrickRoom, data.EffectGravity, data.EffectWonderRoom, data.EffectMagicRoom:
		b.setRoom(mv.Effect)
	case data.EffectSunnyDay:
		b.trySetWeather(side, WeatherSun)
	case data.EffectRainDance:
		b.trySetWeather(side, WeatherRain)
	case data.EffectSandstorm:
		b.trySetWeather(side, WeatherSand)
	case data.EffectHail:
		b.trySetWeather(side, WeatherHail)
	case data.EffectSnowscape:
		b.trySetWeather(side, WeatherSnow)
	case data.EffectElectricTerr:
		b.trySetTerrain(side, TerrainElectric)
	case data.EffectGrassyTerr:
		b.trySetTerrain(side, TerrainGrassy)
	case data.EffectMistyTerr:
		b.trySetTerrain(side, TerrainMisty)
	case data.EffectPsychicTerr:
		b.trySetTerrain(side, TerrainPsychic)
	case data.EffectSubstitute:
		cost := c.MaxHP / 4
		if c.Vol.SubstituteHP > 0 || c.HP <= cost {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Outcome: "substitute_failed"})
			return
		}
		b.emit(&damageEvent{Side: side, Amount: cost, Source: "substitute"})
		c.Vol.SubstituteHP = cost
		b.record(Entry{Side: side, Kind: EventVolatileSet, Target: c.Name, Outcome: "substitute"})
	case data.EffectLeechSeed:
		if foe.HasType("grass") {
			b.record(Entry{Side: side, Kind: EventActionFailed, Move: mv.Name, Outcome: "grass_immune"})
			return
		}
		if foe.Vol.LeechSeed {
			b.record(Entry{Side: side, Kind: EventActionFailed, Move: mv.Name, Outcome: "already_seeded"})
			return
		}
		foe.Vol.LeechSeed = true
		b.record(Entry{Side: foeSide, Kind: EventVolatileSet, Target: foe.Name, Outcome: "leech_seed", AccuracyRoll: accRoll})
	case data.EffectPerishSong:
		for i, s := range b.Sides {
			a := s.Active()
			if !a.Fainted() && a.Vol.PerishCount < 0 {
				a.Vol.PerishCount = 3
				b.record(Entry{Side: i, Kind: EventVolatileSet, Target: a.Name, Outcome: "perish_song"})
			}
		}
	case data.EffectTaunt:
		foe.Vol.TauntTurns = 3
		b.record(Entry{Side: foeSide, Kind: EventVolatileSet, Target: foe.Name, Outcome: "taunt", AccuracyRoll: accRoll})
	case data.EffectEncore:
		if foe.Vol.LastMove < 0 {
			b.record(Entry{Side: side, Kind: EventActionFailed, Move: mv.Name, Outcome: "nothing_to_encore"})
			return
		}
		foe.Vol.EncoreTurns = 3
		foe.Vol.EncoreMove = foe.Vol.LastMove
		b.record(Entry{Side: foeSide, Kind: EventVolatileSet, Target: foe.Name, Outcome: "encore", AccuracyRoll: accRoll})
	case data.EffectDisable:
		if foe.Vol.LastMove < 0 || foe.Vol.DisableTurns > 0 {
			b.record(Entry{Side: side, Kind: EventActionFailed, Move: mv.Name, Outcome: "disable_failed"})
			return
		}
		foe.Vol.DisableTurns = 4
		foe.Vol.DisabledMove = foe.Vol.LastMove
		b.record(Entry{Side: foeSide, Kind: EventVolatileSet, Target: foe.Name, Outcome: "disable", AccuracyRoll: accRoll})
	case data.EffectTorment:
		foe.Vol.Torment = true
		b.record(Entry{Side: foeSide, Kind: EventVolatileSet, Target: foe.Name, Outcome: "torment", AccuracyRoll: accRoll})
	case data.EffectImprison:
		c.Vol.Imprison = true
		b.record(Entry{Side: side, Kind: EventVolatileSet, Target: c.Name, Outcome: "imprison"})
	case data.EffectRecover:
		if c.HP == c.MaxHP {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Outcome: "full_hp"})
			return
		}
		b.emit(&healEvent{Side: side, Amount: c.MaxHP / 2, Source: "recover"})
	case data.EffectRest:
		if c.HP == c.MaxHP {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Outcome: "full_hp"})
			return
		}
		if c.HasAbility(data.AbilityInsomnia) || (b.Terrain == TerrainElectric && b.Grounded(c)) || (b.Terrain == TerrainMisty && b.Grounded(c)) {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Outcome: "cannot_sleep"})
			return
		}
		if c.Status != StatusNone {
			b.emit(&cureStatusEvent{Side: side, Source: "rest"})
		}
		b.emit(&healEvent{Side: side, Amount: c.MaxHP, Source: "rest"})
		b.emit(statusEvent{Side: side, Status: StatusSleep, Source: "rest"})
		c.SleepTurns = 1
	case data.EffectHaze:
		for i, s := range b.Sides {
			a := s.Active()
			a.Boosts = [statCount]int{}
			b.record(Entry{Side: i, Kind: EventVolatileSet, Target: a.Name, Outcome: "boosts_cleared", Detail: "haze"})
		}
	case data.EffectRoar:
		reps := b.Sides[foeSide].Replacements()
		if len(reps) == 0 {
			b.record(Entry{Side: side, Kind: EventActionFailed, Move: mv.Name, Outcome: "no_replacement"})
			return
		}
		b.performSwitch(foeSide, reps[b.RNG.IntN(len(reps))])
	}
}

func (b *Battle) trySetWeather(side int, w Weather) {
	if b.Weather == w {
		b.record(Entry{Side: side, Kind: EventActionFailed, Outcome: "weather_already_active"})
		return
	}
	b.setWeather(w, "move")
}

func (b *Battle) trySetTerrain(side int, t Terrain) {
	if b.Terrain == t {
		b.record(Entry{Side: side, Kind: EventActionFailed, Outcome: "terrain_already_active"})
		return
	}
	b.setTerrain(t, "move")
}

// applySecondary resolves an on-hit rider once its chance roll passes.
// accRoll is the accuracy draw that let the move land, carried into the
// rider's log entries.
func (b *Battle) applySecondary(side int, mv data.Move, sec *data.SecondaryEffect, blockedBySub bool, accRoll int) {
	if !b.RNG.Chance(sec.Chance) {
		return
	}
	foeSide := Opponent(side)
	if sec.Self {
		applyBoostMap(b, side, sec.Boosts, mv.Name, false)
		return
	}
	if blockedBySub {
		return
	}
	if sec.Status != "" {
		switch sec.Status {
		case "flinch":
			foe := b.Sides[foeSide].Active()
			if !foe.Fainted() {
				foe.Vol.Flinch = true
				b.record(Entry{Side: foeSide, Kind: EventVolatileSet, Target: foe.Name, Outcome: "flinch", Detail: mv.Name})
			}
		case "confusion":
			b.tryConfuse(foeSide, mv.Name, accRoll)
		default:
			b.tryStatusRolled(foeSide, Status(sec.Status), mv.Name, mv.Category == data.Status, accRoll)
		}
	}
	if len(sec.Boosts) > 0 {
		applyBoostMap(b, foeSide, sec.Boosts, mv.Name, true)
	}
}

// applyBoostMap applies a stat->delta map in canonical stat order so
// identical seeds replay identically.
func applyBoostMap(b *Battle, side int, boosts map[string]int, source string, fromOpponent bool) {
	for st := Stat(0); st < statCount; st++ {
		if delta, ok := boosts[st.String()]; ok && delta != 0 {
			b.applyBoost(side, st, delta, source, fromOpponent)
		}
	}
}

// multiHitCount draws the number of strikes for a multi-hit move.
func (b *Battle) multiHitCount(attacker *Combatant) int {
	if b.HeldItem(attacker).Effect == data.ItemLoadedDice {
		return 4 + b.RNG.IntN(2)
	}
	r := b.RNG.IntN(100)
	switch {
	case r < 35:
		return 2
	case r < 70:
		return 3
	case r < 85:
		return 4
	default:
		return 5
	}
}

func (b *Battle) executeDamagingMove(side int, mv data.Move, isStruggle bool) {
	c := b.Sides[side].Active()
	foeSide := Opponent(side)
	foe := b.Sides[foeSide].Active()

	if foe.Vol.Protected {
		b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Move: mv.Name, Outcome: "protected"})
		return
	}

	hit, accRoll := b.accuracyCheck(side, mv)
	if !hit {
		b.record(Entry{Side: side, Kind: EventMissed, Actor: c.Name, Move: mv.Name, AccuracyRoll: accRoll})
		return
	}

	moveType := moveTypeFor(c, mv)
	if !c.HasAbility(data.AbilityMoldBreaker) {
		switch {
		case moveType == "electric" && foe.HasAbility(data.AbilityVoltAbsorb),
			moveType == "water" && foe.HasAbility(data.AbilityWaterAbsorb):
			b.record(Entry{Side: foeSide, Kind: EventAbilityFired, Target: foe.Name, Outcome: foe.Ability.Name, Move: mv.Name})
			if foe.HP < foe.MaxHP {
				b.emit(&healEvent{Side: foeSide, Amount: foe.MaxHP / 4, Source: foe.Ability.Name})
			}
			return
		case moveType == "fire" && foe.HasAbility(data.AbilityFlashFire):
			foe.Vol.FlashFire = true
			b.record(Entry{Side: foeSide, Kind: EventAbilityFired, Target: foe.Name, Outcome: foe.Ability.Name, Move: mv.Name})
			return
		case moveType == "ground" && foe.HasAbility(data.AbilityLevitate):
			b.record(Entry{Side: foeSide, Kind: EventAbilityFired, Target: foe.Name, Outcome: foe.Ability.Name, Move: mv.Name})
			return
		}
	}
	if moveType != "" && data.Effectiveness(moveType, foe.Types()) == 0 {
		b.record(Entry{Side: side, Kind: EventDamageDealt, Actor: c.Name, Move: mv.Name, Target: foe.Name, Outcome: "immune"})
		return
	}

	hits := 1
	if mv.MultiHit {
		hits = b.multiHitCount(c)
	}

	total := 0
	hitSub := false
	for i := 0; i < hits; i++ {
		if c.Fainted() || foe.Fainted() {
			break
		}
		crit := b.RNG.IntN(critChance) == 0
		roll := b.RNG.DamageRoll()
		dmg, eff := b.computeDamage(side, mv, crit, roll)

		toSub := foe.Vol.SubstituteHP > 0 && !mv.Flags.Sound && !c.HasAbility(data.AbilityInfiltrator)
		hitSub = toSub
		if toSub {
			ev := &damageEvent{Side: foeSide, Amount: dmg, ToSub: true, Move: mv.Name, Source: c.Name, Critical: crit, Effectiveness: eff, AccuracyRoll: accRoll}
			b.emit(ev)
			if foe.Vol.SubstituteHP == 0 {
				b.record(Entry{Side: foeSide, Kind: EventVolatileSet, Target: foe.Name, Outcome: "substitute_broke"})
			}
		} else {
			dmg = b.survivalClamp(foeSide, dmg)
			ev := &damageEvent{Side: foeSide, Amount: dmg, Move: mv.Name, Source: c.Name, Critical: crit, Effectiveness: eff, AccuracyRoll: accRoll}
			b.emit(ev)
			total += ev.applied
			b.contactEffects(side, mv)
		}
		b.checkFaint(foeSide)
		b.checkFaint(side)
	}

	if total > 0 {
		if mv.Drain > 0 && !c.Fainted() && c.HP < c.MaxHP {
			b.emit(&healEvent{Side: side, Amount: total * mv.Drain / 100, Source: "drain"})
		}
		if isStruggle {
			// struggle recoil ignores every damage-prevention effect
			b.emit(&damageEvent{Side: side, Amount: c.MaxHP / 4, Source: "struggle_recoil"})
			b.checkFaint(side)
		} else if mv.Recoil > 0 && !c.Fainted() {
			b.residualDamage(side, total*mv.Recoil/100, "recoil")
		}
		if !c.Fainted() && b.HeldItem(c).Effect == data.ItemLifeOrb {
			b.residualDamage(side, c.MaxHP/10, "life_orb")
		}
	}

	if mv.Secondary != nil && !c.Fainted() {
		b.applySecondary(side, mv, mv.Secondary, hitSub, accRoll)
	}

	if !c.Fainted() {
		switch mv.Effect {
		case data.EffectRapidSpin:
			b.clearHazards(side, "rapid_spin")
			c.Vol.LeechSeed = false
			c.Vol.TrapTurns = 0
		case data.EffectPartialTrap:
			if total > 0 && !foe.Fainted() && foe.Vol.TrapTurns == 0 {
				foe.Vol.TrapTurns = 4 + b.RNG.IntN(2)
				b.record(Entry{Side: foeSide, Kind: EventVolatileSet, Target: foe.Name, Outcome: "trapped", Detail: mv.Name})
			}
		case data.EffectUTurn:
			if to := b.pickReplacement(side); to >= 0 {
				b.performSwitch(side, to)
			}
		}
	}
}

// survivalClamp applies Focus Sash and Sturdy to a would-be lethal hit
// taken at full HP.
func (b *Battle) survivalClamp(side, dmg int) int {
	c := b.Sides[side].Active()
	if dmg < c.HP || c.HP != c.MaxHP {
		return dmg
	}
	if b.HeldItem(c).Effect == data.ItemFocusSash {
		c.ItemGone = true
		b.record(Entry{Side: side, Kind: EventItemTriggered, Target: c.Name, Outcome: c.Item.Name})
		return c.HP - 1
	}
	if c.HasAbility(data.AbilitySturdy) {
		b.record(Entry{Side: side, Kind: EventAbilityFired, Target: c.Name, Outcome: c.Ability.Name})
		return c.HP - 1
	}
	return dmg
}

// contactEffects fires the defender's punish-on-contact abilities and
// item against the attacker.
func (b *Battle) contactEffects(atkSide int, mv data.Move) {
	if !mv.Flags.Contact {
		return
	}
	attacker := b.Sides[atkSide].Active()
	defender := b.Sides[Opponent(atkSide)].Active()
	if attacker.Fainted() {
		return
	}
	switch defender.Ability.Effect {
	case data.AbilityRoughSkin, data.AbilityIronBarbs:
		b.record(Entry{Side: Opponent(atkSide), Kind: EventAbilityFired, Target: defender.Name, Outcome: defender.Ability.Name})
		b.residualDamage(atkSide, attacker.MaxHP/8, "rough_skin")
	case data.AbilityStatic:
		if b.RNG.Chance(10) {
			b.tryStatus(atkSide, StatusParalysis, "static", false)
		}
	case data.AbilityFlameBody:
		if b.RNG.Chance(10) {
			b.tryStatus(atkSide, StatusBurn, "flame_body", false)
		}
	}
	if !attacker.Fainted() && b.HeldItem(defender).Effect == data.ItemRockyHelmet {
		b.record(Entry{Side: Opponent(atkSide), Kind: EventItemTriggered, Target: defender.Name, Outcome: defender.Item.Name})
		b.residualDamage(atkSide, attacker.MaxHP/4, "rocky_helmet")
	}
}
