package engine

import (
	"github.com/rs/zerolog"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

// Hazards are the entry effects laid on one side of the field.
type Hazards struct {
	StealthRock bool
	Spikes      int // 0..3 layers
	ToxicSpikes int // 0..2 layers
	StickyWeb   bool
}

func (h Hazards) Any() bool {
	return h.StealthRock || h.Spikes > 0 || h.ToxicSpikes > 0 || h.StickyWeb
}

// SideState is everything one player owns: the team, which member is
// out, and the side-scoped field effects.
type SideState struct {
	Team      []*Combatant
	ActiveIdx int

	Hazards     Hazards
	Reflect     int // turns remaining, 0 when down
	LightScreen int
	AuroraVeil  int
	Tailwind    int

	UsedTera bool
}

// Active returns the member currently on the field.
func (s *SideState) Active() *Combatant { return s.Team[s.ActiveIdx] }

// Replacements lists team indices that can legally switch in.
func (s *SideState) Replacements() []int {
	var out []int
	for i, c := range s.Team {
		if i != s.ActiveIdx && !c.Fainted() {
			out = append(out, i)
		}
	}
	return out
}

// Defeated reports whether every member has fainted.
func (s *SideState) Defeated() bool {
	for _, c := range s.Team {
		if !c.Fainted() {
			return false
		}
	}
	return true
}

// Battle is the full simulation state plus its append-only log. All
// mutation flows through emit, so the log replays the battle exactly.
type Battle struct {
	Dex    *data.Dex
	Format data.Format
	RNG    *RNG

	Sides [2]*SideState
	Turn  int

	Weather      Weather
	WeatherTurns int
	Terrain      Terrain
	TerrainTurns int

	TrickRoom  int
	Gravity    int
	WonderRoom int
	MagicRoom  int

	MaxTurns int
	Outcome  Result

	// ReplacementPicker chooses who comes in after a faint or a pivot
	// move. Nil falls back to the first healthy teammate.
	ReplacementPicker func(b *Battle, side int) int

	Log []Entry

	logger zerolog.Logger
}

// Opponent returns the index of the other side.
func Opponent(side int) int { return 1 - side }

// HeldItem is the battle-aware item accessor: Magic Room suppresses
// every held item while it lasts.
func (b *Battle) HeldItem(c *Combatant) data.Item {
	if b.MagicRoom > 0 {
		return data.Item{}
	}
	return c.HeldItem()
}

// Grounded reports whether a combatant is affected by terrain and
// ground-bound hazards. Gravity grounds everything.
func (b *Battle) Grounded(c *Combatant) bool {
	if b.Gravity > 0 {
		return true
	}
	if c.HasType("flying") || c.HasAbility(data.AbilityLevitate) {
		return false
	}
	return true
}

// EffectiveStat resolves one of the four combat stats with boosts,
// status, items and field state applied.
func (b *Battle) EffectiveStat(c *Combatant, st Stat) int {
	return b.StatWithStage(c, st, c.Boosts[st])
}

// StatWithStage is EffectiveStat with the boost stage supplied by the
// caller, for the crit and Unaware paths that ignore or clip stages.
// Wonder Room swaps the two defenses before boosts.
func (b *Battle) StatWithStage(c *Combatant, st Stat, stage int) int {
	base := st
	if b.WonderRoom > 0 {
		if st == Def {
			base = SpD
		} else if st == SpD {
			base = Def
		}
	}
	v := float64(c.Stats[base]) * BoostMult(stage)
	switch st {
	case Atk:
		if c.HasAbility(data.AbilityHugePower) {
			v *= 2
		}
		// burn halving lives in the damage formula so the log can show it
		if c.Status != StatusNone && c.HasAbility(data.AbilityGuts) {
			v *= 1.5
		}
		if b.HeldItem(c).Effect == data.ItemChoiceBand {
			v *= 1.5
		}
	case SpA:
		if b.HeldItem(c).Effect == data.ItemChoiceSpecs {
			v *= 1.5
		}
	case SpD:
		if b.HeldItem(c).Effect == data.ItemAssaultVest {
			v *= 1.5
		}
		if b.Weather == WeatherSand && c.HasType("rock") {
			v *= 1.5
		}
	case Def:
		if b.Weather == WeatherSnow && c.HasType("ice") {
			v *= 1.5
		}
	}
	if v < 1 {
		v = 1
	}
	return int(v)
}

// Speed resolves effective speed for turn ordering.
func (b *Battle) Speed(side int) int {
	s := b.Sides[side]
	c := s.Active()
	v := float64(c.Stats[Spe]) * BoostMult(c.Boosts[Spe])
	if c.Status == StatusParalysis {
		v *= 0.25
	}
	if s.Tailwind > 0 {
		v *= 2
	}
	if b.HeldItem(c).Effect == data.ItemChoiceScarf {
		v *= 1.5
	}
	switch {
	case b.Weather == WeatherRain && c.HasAbility(data.AbilitySwiftSwim),
		b.Weather == WeatherSun && c.HasAbility(data.AbilityChlorophyll),
		b.Weather == WeatherSand && c.HasAbility(data.AbilitySandRush),
		(b.Weather == WeatherHail || b.Weather == WeatherSnow) && c.HasAbility(data.AbilitySlushRush):
		v *= 2
	}
	if v < 1 {
		v = 1
	}
	return int(v)
}
