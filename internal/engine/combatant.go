package engine

import (
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

// MoveSlot is one learned move with its remaining PP.
type MoveSlot struct {
	Move data.Move
	PP   int
}

// Volatiles are the conditions that clear when the holder leaves the
// field. ChoiceLock and LastMove index the move list; -1 means unset.
type Volatiles struct {
	Confusion    int // turns remaining
	Flinch       bool
	TauntTurns   int
	EncoreTurns  int
	EncoreMove   int
	DisableTurns int
	DisabledMove int
	Torment      bool
	Imprison     bool
	SubstituteHP int
	TrapTurns    int
	LeechSeed    bool
	PerishCount  int
	ChoiceLock   int
	FlashFire    bool
	Protected    bool
	UsedProtect  bool
	LastMove     int
}

func newVolatiles() Volatiles {
	return Volatiles{EncoreMove: -1, DisabledMove: -1, PerishCount: -1, ChoiceLock: -1, LastMove: -1}
}

// Combatant is one team member's battle state.
type Combatant struct {
	Name    string
	Species data.Species
	Level   int

	MaxHP int
	HP    int
	Stats [5]int // Atk..Spe, unboosted

	Boosts [statCount]int

	Status      Status
	SleepTurns  int
	ToxicStacks int

	Moves    []MoveSlot
	Ability  data.Ability
	Item     data.Item
	ItemGone bool

	TeraType      string
	Terastallized bool

	FaintRecorded bool

	Vol Volatiles
}

// NewCombatant derives battle stats from a roster slot. Levels come
// from the roster and default to 100.
func NewCombatant(m data.RosterMember, dex *data.Dex) *Combatant {
	sp := dex.Species(m.Species)
	lvl := m.Level
	if lvl <= 0 || lvl > 100 {
		lvl = 100
	}
	stat := func(base int) int { return 2*base*lvl/100 + 5 }
	c := &Combatant{
		Name:     sp.Name,
		Species:  sp,
		Level:    lvl,
		MaxHP:    2*sp.Base.HP*lvl/100 + lvl + 10,
		Stats:    [5]int{stat(sp.Base.Atk), stat(sp.Base.Def), stat(sp.Base.SpA), stat(sp.Base.SpD), stat(sp.Base.Spe)},
		Ability:  dex.Ability(m.Ability),
		Item:     dex.Item(m.Item),
		TeraType: data.NormalizeID(m.TeraType),
		Vol:      newVolatiles(),
	}
	c.HP = c.MaxHP
	for _, mv := range m.Moves {
		row := dex.Move(mv)
		c.Moves = append(c.Moves, MoveSlot{Move: row, PP: row.PP})
	}
	return c
}

// Types returns the defensive typing, which collapses to the tera type
// once terastallized.
func (c *Combatant) Types() []string {
	if c.Terastallized && c.TeraType != "" {
		return []string{c.TeraType}
	}
	return c.Species.Types
}

// HasType reports membership in the current typing.
func (c *Combatant) HasType(t string) bool {
	for _, ct := range c.Types() {
		if ct == t {
			return true
		}
	}
	return false
}

// STABTypes returns the types granting the same-type bonus: the original
// typing always, plus the tera type once terastallized.
func (c *Combatant) STABTypes() []string {
	if c.Terastallized && c.TeraType != "" {
		out := append([]string{c.TeraType}, c.Species.Types...)
		return out
	}
	return c.Species.Types
}

func (c *Combatant) Fainted() bool { return c.HP <= 0 }

// HeldItem returns the item, or the zero item once consumed or removed.
func (c *Combatant) HeldItem() data.Item {
	if c.ItemGone {
		return data.Item{}
	}
	return c.Item
}

// HasAbility reports the ability effect tag, found on this combatant.
func (c *Combatant) HasAbility(effect string) bool {
	return c.Ability.Effect == effect
}

// BoostMult converts a stage in [-6, 6] to its multiplier.
func BoostMult(stage int) float64 {
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}

// ChangeBoost applies a stage delta with clamping and returns the
// delta actually applied. Contrary inversion is the caller's concern.
func (c *Combatant) ChangeBoost(st Stat, delta int) int {
	before := c.Boosts[st]
	after := before + delta
	if after > 6 {
		after = 6
	}
	if after < -6 {
		after = -6
	}
	c.Boosts[st] = after
	return after - before
}

// Damage reduces HP, clamping at zero, and returns the amount actually
// lost.
func (c *Combatant) Damage(n int) int {
	if n < 0 {
		n = 0
	}
	if n > c.HP {
		n = c.HP
	}
	c.HP -= n
	return n
}

// Heal restores HP, clamping at MaxHP, and returns the amount actually
// gained.
func (c *Combatant) Heal(n int) int {
	if n < 0 {
		n = 0
	}
	if c.HP+n > c.MaxHP {
		n = c.MaxHP - c.HP
	}
	c.HP += n
	return n
}

// ResetOnSwitch clears boosts and volatiles when the holder leaves the
// field. Major status stays; the toxic counter restarts.
func (c *Combatant) ResetOnSwitch() {
	c.Boosts = [statCount]int{}
	c.Vol = newVolatiles()
	if c.Status == StatusToxic {
		c.ToxicStacks = 1
	}
}
