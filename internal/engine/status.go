package engine

import (
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

const (
	sleepWakeChance  = 33
	sleepMaxTurns    = 3
	freezeThawChance = 20
	paralysisChance  = 25
	confusionChance  = 33
	confusionMaxTurn = 4
)

// statusBlocked names why a status cannot land on the current target,
// or returns the empty string when it can.
func (b *Battle) statusBlocked(targetSide int, st Status, fromMove bool) string {
	c := b.Sides[targetSide].Active()
	if c.Status != StatusNone {
		return "already_statused"
	}
	if b.Terrain == TerrainMisty && b.Grounded(c) {
		return "misty_terrain"
	}
	switch st {
	case StatusBurn:
		if c.HasType("fire") {
			return "type_immune"
		}
	case StatusPoison, StatusToxic:
		if c.HasType("poison") || c.HasType("steel") {
			return "type_immune"
		}
	case StatusParalysis:
		if c.HasType("electric") {
			return "type_immune"
		}
		if c.HasAbility(data.AbilityLimber) {
			return "ability_immune"
		}
	case StatusFreeze:
		if c.HasType("ice") {
			return "type_immune"
		}
	case StatusSleep:
		if c.HasAbility(data.AbilityInsomnia) {
			return "ability_immune"
		}
		if b.Terrain == TerrainElectric && b.Grounded(c) {
			return "electric_terrain"
		}
		if fromMove && b.Format.SleepClause && b.sideHasSleeper(targetSide) {
			return "sleep_clause"
		}
	}
	return ""
}

func (b *Battle) sideHasSleeper(side int) bool {
	for _, c := range b.Sides[side].Team {
		if !c.Fainted() && c.Status == StatusSleep {
			return true
		}
	}
	return false
}

// tryStatus applies a major status if the target permits it.
func (b *Battle) tryStatus(targetSide int, st Status, source string, fromMove bool) bool {
	return b.tryStatusRolled(targetSide, st, source, fromMove, 0)
}

// tryStatusRolled is tryStatus carrying the accuracy draw that let the
// inflicting move land, so the audit trail survives into the log entry.
func (b *Battle) tryStatusRolled(targetSide int, st Status, source string, fromMove bool, accRoll int) bool {
	if reason := b.statusBlocked(targetSide, st, fromMove); reason != "" {
		if fromMove {
			b.record(Entry{Side: targetSide, Kind: EventActionFailed, Target: b.Sides[targetSide].Active().Name, Outcome: reason, AccuracyRoll: accRoll, Detail: source})
		}
		return false
	}
	b.emit(statusEvent{Side: targetSide, Status: st, Source: source, AccRoll: accRoll})
	return true
}

// tryConfuse applies the confusion volatile.
func (b *Battle) tryConfuse(targetSide int, source string, accRoll int) bool {
	c := b.Sides[targetSide].Active()
	if c.Vol.Confusion > 0 {
		return false
	}
	if b.Terrain == TerrainMisty && b.Grounded(c) {
		return false
	}
	c.Vol.Confusion = 2 + b.RNG.IntN(confusionMaxTurn-1)
	b.record(Entry{Side: targetSide, Kind: EventVolatileSet, Target: c.Name, Outcome: "confusion", AccuracyRoll: accRoll, Detail: source})
	return true
}

// preActionCheck runs the incapacitation gauntlet before a move fires.
// It returns false when the turn is lost, with the cause already logged.
func (b *Battle) preActionCheck(side int, mv data.Move) bool {
	c := b.Sides[side].Active()

	if c.Vol.Flinch {
		c.Vol.Flinch = false
		b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Outcome: "flinched"})
		return false
	}

	switch c.Status {
	case StatusSleep:
		c.SleepTurns++
		if c.SleepTurns >= sleepMaxTurns || b.RNG.Chance(sleepWakeChance) {
			b.emit(&cureStatusEvent{Side: side, Source: "woke_up"})
		} else {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Outcome: "asleep"})
			return false
		}
	case StatusFreeze:
		thawed := b.RNG.Chance(freezeThawChance)
		if !thawed && moveTypeFor(c, mv) == "fire" {
			thawed = true
		}
		if thawed {
			b.emit(&cureStatusEvent{Side: side, Source: "thawed"})
		} else {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Outcome: "frozen"})
			return false
		}
	case StatusParalysis:
		if b.RNG.Chance(paralysisChance) {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Outcome: "fully_paralyzed"})
			return false
		}
	}

	if c.Vol.Confusion > 0 {
		c.Vol.Confusion--
		if c.Vol.Confusion == 0 {
			b.record(Entry{Side: side, Kind: EventVolatileSet, Target: c.Name, Outcome: "confusion_ended"})
		} else if b.RNG.Chance(confusionChance) {
			dmg := b.confusionSelfHit(side)
			ev := &damageEvent{Side: side, Amount: dmg, Source: "confusion"}
			b.emit(ev)
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: c.Name, Outcome: "hurt_itself"})
			b.checkFaint(side)
			return false
		}
	}
	return true
}

// confusionSelfHit computes the typeless 40-power physical self-hit.
func (b *Battle) confusionSelfHit(side int) int {
	c := b.Sides[side].Active()
	atk := float64(b.StatWithStage(c, Atk, c.Boosts[Atk]))
	def := float64(b.StatWithStage(c, Def, c.Boosts[Def]))
	levelFactor := float64(2*c.Level+10) / 250
	dmg := int((levelFactor*atk*40/def + 2) * b.RNG.DamageRoll())
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// residualDamage applies one source of indirect damage, which Magic
// Guard holders ignore.
func (b *Battle) residualDamage(side int, amount int, source string) {
	c := b.Sides[side].Active()
	if c.Fainted() || c.HasAbility(data.AbilityMagicGuard) {
		return
	}
	b.emit(&damageEvent{Side: side, Amount: amount, Source: source})
	b.checkFaint(side)
}

// statusResiduals applies one side's major-status damage or healing.
func (b *Battle) statusResiduals(side int) {
	c := b.Sides[side].Active()
	if c.Fainted() {
		return
	}
	switch c.Status {
	case StatusBurn:
		b.residualDamage(side, c.MaxHP/8, "burn")
	case StatusPoison:
		if c.HasAbility(data.AbilityPoisonHeal) {
			b.emit(&healEvent{Side: side, Amount: c.MaxHP / 8, Source: "poison_heal"})
		} else {
			b.residualDamage(side, c.MaxHP/8, "poison")
		}
	case StatusToxic:
		if c.HasAbility(data.AbilityPoisonHeal) {
			b.emit(&healEvent{Side: side, Amount: c.MaxHP / 8, Source: "poison_heal"})
		} else {
			b.residualDamage(side, c.MaxHP/8*c.ToxicStacks, "toxic")
			c.ToxicStacks++
		}
	}
}

// fieldResiduals runs one side's terrain healing and the field-bound
// volatiles (leech seed, trapping, perish count).
func (b *Battle) fieldResiduals(side int) {
	c := b.Sides[side].Active()
	if c.Fainted() {
		return
	}

	if b.Terrain == TerrainGrassy && b.Grounded(c) && c.HP < c.MaxHP {
		b.emit(&healEvent{Side: side, Amount: c.MaxHP / 16, Source: "grassy_terrain"})
	}

	if c.Vol.LeechSeed {
		drained := c.MaxHP / 8
		if drained > c.HP {
			drained = c.HP
		}
		b.residualDamage(side, drained, "leech_seed")
		foe := b.Sides[Opponent(side)].Active()
		if !foe.Fainted() && drained > 0 {
			b.emit(&healEvent{Side: Opponent(side), Amount: drained, Source: "leech_seed"})
		}
		if c.Fainted() {
			return
		}
	}

	if c.Vol.TrapTurns > 0 {
		c.Vol.TrapTurns--
		b.residualDamage(side, c.MaxHP/8, "trapped")
		if c.Fainted() {
			return
		}
	}

	if c.Vol.PerishCount >= 0 {
		c.Vol.PerishCount--
		b.record(Entry{Side: side, Kind: EventVolatileSet, Target: c.Name, Outcome: "perish_count", Damage: c.Vol.PerishCount})
		if c.Vol.PerishCount <= 0 {
			b.emit(&damageEvent{Side: side, Amount: c.HP, Source: "perish_song"})
			b.checkFaint(side)
		}
	}
}

// itemResiduals fires one side's end-of-turn held item effects.
func (b *Battle) itemResiduals(side int) {
	c := b.Sides[side].Active()
	if c.Fainted() {
		return
	}
	if b.HeldItem(c).Effect == data.ItemLeftovers && c.HP < c.MaxHP {
		b.emit(&healEvent{Side: side, Amount: c.MaxHP / 16, Source: "leftovers"})
	}
}
