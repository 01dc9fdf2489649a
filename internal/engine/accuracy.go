package engine

import (
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

// effectiveAccuracy folds boosts, weather and field state into a move's
// hit chance, clamped to [1, 100]. A zero return means the accuracy
// check is skipped entirely.
func (b *Battle) effectiveAccuracy(atkSide int, mv data.Move) int {
	if mv.Accuracy <= 0 || mv.Flags.Bypass {
		return 0
	}
	attacker := b.Sides[atkSide].Active()
	defender := b.Sides[Opponent(atkSide)].Active()

	id := data.NormalizeID(mv.Name)
	switch {
	case b.Weather == WeatherRain && (id == "thunder" || id == "hurricane"):
		return 0
	case (b.Weather == WeatherHail || b.Weather == WeatherSnow) && id == "blizzard":
		return 0
	}

	acc := float64(mv.Accuracy)
	acc *= BoostMult(attacker.Boosts[Acc])
	acc /= BoostMult(defender.Boosts[Eva])
	if b.Gravity > 0 {
		acc *= 5.0 / 3.0
	}
	if attacker.Status == StatusParalysis {
		acc *= 0.8
	}

	out := int(acc)
	if out < 1 {
		out = 1
	}
	if out > 100 {
		out = 100
	}
	return out
}

// accuracyCheck rolls the hit. The roll is returned even on a skipped
// check (as zero) so the log always carries it.
func (b *Battle) accuracyCheck(atkSide int, mv data.Move) (hit bool, roll int) {
	acc := b.effectiveAccuracy(atkSide, mv)
	if acc == 0 {
		return true, 0
	}
	roll = b.RNG.AccuracyRoll()
	return roll <= acc, roll
}
