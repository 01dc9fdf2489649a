package engine

import (
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

const critChance = 16 // 1 in 16

// moveTypeFor resolves a move's effective type on this attacker: the
// type-changing abilities convert normal-type moves.
func moveTypeFor(c *Combatant, mv data.Move) string {
	if mv.Type != "normal" {
		return mv.Type
	}
	switch c.Ability.Effect {
	case data.AbilityAerilate:
		return "flying"
	case data.AbilityPixilate:
		return "fairy"
	case data.AbilityRefrigerate:
		return "ice"
	case data.AbilityGalvanize:
		return "electric"
	}
	return mv.Type
}

// stab returns the same-type bonus multiplier for this attacker and
// move type.
func stab(c *Combatant, moveType string) float64 {
	if moveType == "" {
		return 1
	}
	for _, t := range c.STABTypes() {
		if t == moveType {
			if c.HasAbility(data.AbilityAdaptability) {
				return 2
			}
			return 1.5
		}
	}
	return 1
}

// typeEffect is the chart lookup with the defensive ability overrides
// folded in. A zero return means the move does nothing at all.
func (b *Battle) typeEffect(attacker *Combatant, defender *Combatant, moveType string) float64 {
	if moveType == "" {
		return 1
	}
	mult := data.Effectiveness(moveType, defender.Types())
	breaker := attacker.HasAbility(data.AbilityMoldBreaker)
	if !breaker {
		switch {
		case moveType == "ground" && defender.HasAbility(data.AbilityLevitate):
			return 0
		case moveType == "electric" && defender.HasAbility(data.AbilityVoltAbsorb):
			return 0
		case moveType == "water" && defender.HasAbility(data.AbilityWaterAbsorb):
			return 0
		case moveType == "fire" && defender.HasAbility(data.AbilityFlashFire):
			return 0
		}
		if defender.HasAbility(data.AbilityThickFat) && (moveType == "fire" || moveType == "ice") {
			mult *= 0.5
		}
	}
	return mult
}

// computeDamage runs the full formula for one hit and returns the final
// damage plus the type effectiveness it used. crit and roll come from
// the caller so the executor draws them once per hit and tests can pin
// them.
func (b *Battle) computeDamage(atkSide int, mv data.Move, crit bool, roll float64) (int, float64) {
	attacker := b.Sides[atkSide].Active()
	defender := b.Sides[Opponent(atkSide)].Active()

	moveType := moveTypeFor(attacker, mv)
	eff := b.typeEffect(attacker, defender, moveType)
	if eff == 0 {
		return 0, 0
	}

	power := float64(mv.Power)
	if attacker.HasAbility(data.AbilityTechnician) && mv.Power <= 60 {
		power *= 1.5
	}
	if moveType != mv.Type {
		power *= 1.2 // type-changing ability bonus
	}

	atkStat, defStat := Atk, Def
	if mv.Category == data.Special {
		atkStat, defStat = SpA, SpD
	}

	atkStage := attacker.Boosts[atkStat]
	defStage := defender.Boosts[defStat]
	if defender.HasAbility(data.AbilityUnaware) {
		atkStage = 0
	}
	if attacker.HasAbility(data.AbilityUnaware) {
		defStage = 0
	}
	if crit {
		// a crit ignores the attacker's drops and the defender's gains
		if atkStage < 0 {
			atkStage = 0
		}
		if defStage > 0 {
			defStage = 0
		}
	}
	atk := float64(b.StatWithStage(attacker, atkStat, atkStage))
	def := float64(b.StatWithStage(defender, defStat, defStage))

	levelFactor := float64(2*attacker.Level+10) / 250
	if crit {
		levelFactor *= 2
	}
	dmg := (levelFactor*atk*power/def + 2)

	dmg *= stab(attacker, moveType)
	dmg *= eff

	switch b.Weather {
	case WeatherSun:
		if moveType == "fire" {
			dmg *= 1.5
		} else if moveType == "water" {
			dmg *= 0.5
		}
	case WeatherRain:
		if moveType == "water" {
			dmg *= 1.5
		} else if moveType == "fire" {
			dmg *= 0.5
		}
	}

	dmg *= b.terrainMod(attacker, defender, mv, moveType)
	dmg *= b.screenMod(attacker, Opponent(atkSide), mv.Category, crit)
	dmg *= b.itemMod(attacker, mv, eff)

	if attacker.Vol.FlashFire && moveType == "fire" {
		dmg *= 1.5
	}

	dmg *= roll

	if attacker.Status == StatusBurn && mv.Category == data.Physical && !attacker.HasAbility(data.AbilityGuts) {
		dmg *= 0.5
	}

	out := int(dmg)
	if out < 1 {
		out = 1
	}
	return out, eff
}

func (b *Battle) terrainMod(attacker, defender *Combatant, mv data.Move, moveType string) float64 {
	mod := 1.0
	if b.Terrain == TerrainNone {
		return mod
	}
	if b.Grounded(attacker) {
		switch {
		case b.Terrain == TerrainElectric && moveType == "electric",
			b.Terrain == TerrainGrassy && moveType == "grass",
			b.Terrain == TerrainPsychic && moveType == "psychic":
			mod *= 1.3
		}
	}
	if b.Grounded(defender) {
		if b.Terrain == TerrainMisty && moveType == "dragon" {
			mod *= 0.5
		}
		if b.Terrain == TerrainGrassy && data.NormalizeID(mv.Name) == "earthquake" {
			mod *= 0.5
		}
	}
	return mod
}

func (b *Battle) screenMod(attacker *Combatant, defSide int, cat data.MoveCategory, crit bool) float64 {
	if crit || attacker.HasAbility(data.AbilityInfiltrator) {
		return 1
	}
	s := b.Sides[defSide]
	if s.AuroraVeil > 0 {
		return 0.5
	}
	if cat == data.Physical && s.Reflect > 0 {
		return 0.5
	}
	if cat == data.Special && s.LightScreen > 0 {
		return 0.5
	}
	return 1
}

func (b *Battle) itemMod(attacker *Combatant, mv data.Move, eff float64) float64 {
	item := b.HeldItem(attacker)
	switch item.Effect {
	case data.ItemLifeOrb:
		return 1.3
	case data.ItemTypeBoost:
		if item.Param == mv.Type {
			return 1.2
		}
	case data.ItemExpertBelt:
		if eff > 1 {
			return 1.2
		}
	}
	return 1
}
