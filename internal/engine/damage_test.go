package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

func member(species string, moves ...string) data.RosterMember {
	return data.RosterMember{Species: species, Moves: moves}
}

func newTestBattle(t *testing.T, seed uint64, teamA, teamB []data.RosterMember) *Battle {
	t.Helper()
	dex := data.NewDex()
	b, err := NewBattle(dex, Config{Seed: seed, Format: "classic"}, [2]*data.Roster{
		{Name: "a", Members: teamA},
		{Name: "b", Members: teamB},
	})
	require.NoError(t, err)
	return b
}

// neutralPair builds a battle where neither active has STAB, items or
// abilities relevant to the typeless test move.
func neutralPair(t *testing.T) *Battle {
	b := newTestBattle(t, 1,
		[]data.RosterMember{member("Garchomp", "earthquake")},
		[]data.RosterMember{member("Garchomp", "earthquake")},
	)
	for _, s := range b.Sides {
		c := s.Active()
		c.Species.Types = []string{"normal"}
	}
	return b
}

func TestDamageFormulaReference(t *testing.T) {
	b := neutralPair(t)
	atk := b.Sides[0].Active()
	def := b.Sides[1].Active()
	atk.Stats[Atk] = 130
	def.Stats[Def] = 95

	mv := data.Move{Name: "Test Hit", Type: "", Category: data.Physical, Power: 100}
	dmg, eff := b.computeDamage(0, mv, false, 1.0)
	assert.Equal(t, 116, dmg)
	assert.Equal(t, 1.0, eff)
}

func TestDamageCritDoublesLevelFactor(t *testing.T) {
	b := neutralPair(t)
	b.Sides[0].Active().Stats[Atk] = 130
	b.Sides[1].Active().Stats[Def] = 95

	mv := data.Move{Name: "Test Hit", Type: "", Category: data.Physical, Power: 100}
	dmg, _ := b.computeDamage(0, mv, true, 1.0)
	assert.Equal(t, 231, dmg)
}

func TestDamageSTABAndEffectiveness(t *testing.T) {
	b := newTestBattle(t, 1,
		[]data.RosterMember{member("Garchomp", "earthquake")},
		[]data.RosterMember{member("Heatran", "flamethrower")},
	)
	// ground attack from a ground type into fire/steel: 1.5 STAB, 4x
	mv := b.Sides[0].Active().Moves[0].Move
	dmg, eff := b.computeDamage(0, mv, false, 1.0)
	assert.Equal(t, 4.0, eff)

	noStab := mv
	noStab.Type = "water"
	dmgWater, effWater := b.computeDamage(0, noStab, false, 1.0)
	assert.Equal(t, 2.0, effWater)
	assert.Greater(t, dmg, dmgWater)
}

func TestDamageBurnHalvesPhysicalOnly(t *testing.T) {
	b := neutralPair(t)
	atk := b.Sides[0].Active()

	phys := data.Move{Name: "Hit", Type: "", Category: data.Physical, Power: 100}
	spec := data.Move{Name: "Beam", Type: "", Category: data.Special, Power: 100}

	basePhys, _ := b.computeDamage(0, phys, false, 1.0)
	baseSpec, _ := b.computeDamage(0, spec, false, 1.0)

	atk.Status = StatusBurn
	burnedPhys, _ := b.computeDamage(0, phys, false, 1.0)
	burnedSpec, _ := b.computeDamage(0, spec, false, 1.0)

	assert.Equal(t, basePhys/2, burnedPhys)
	assert.Equal(t, baseSpec, burnedSpec)
}

func TestDamageNeverBelowOne(t *testing.T) {
	b := newTestBattle(t, 1,
		[]data.RosterMember{member("Blissey", "earthquake")},
		[]data.RosterMember{member("Ferrothorn", "powerwhip")},
	)
	mv := data.Move{Name: "Tickle", Type: "", Category: data.Physical, Power: 1}
	b.Sides[0].Active().Boosts[Atk] = -6
	b.Sides[1].Active().Boosts[Def] = 6
	dmg, _ := b.computeDamage(0, mv, false, 0.85)
	assert.Equal(t, 1, dmg)
}

func TestDamageImmunityReturnsZero(t *testing.T) {
	b := newTestBattle(t, 1,
		[]data.RosterMember{member("Garchomp", "earthquake")},
		[]data.RosterMember{member("Talonflame", "bravebird")},
	)
	mv := b.Sides[0].Active().Moves[0].Move
	dmg, eff := b.computeDamage(0, mv, false, 1.0)
	assert.Equal(t, 0, dmg)
	assert.Equal(t, 0.0, eff)
}

func TestBoostMultiplierLaw(t *testing.T) {
	assert.Equal(t, 1.0, BoostMult(0))
	assert.Equal(t, 1.5, BoostMult(1))
	assert.Equal(t, 2.0, BoostMult(2))
	assert.Equal(t, 4.0, BoostMult(6))
	assert.Equal(t, 2.0/3.0, BoostMult(-1))
	assert.Equal(t, 0.5, BoostMult(-2))
	assert.Equal(t, 0.25, BoostMult(-6))
}

func TestBoostClamping(t *testing.T) {
	b := neutralPair(t)
	c := b.Sides[0].Active()
	c.Boosts[Atk] = 6
	assert.Equal(t, 0, c.ChangeBoost(Atk, 2))
	c.Boosts[Def] = -5
	assert.Equal(t, -1, c.ChangeBoost(Def, -3))
	assert.Equal(t, -6, c.Boosts[Def])
}

func TestScreensHalveMatchingCategory(t *testing.T) {
	b := neutralPair(t)
	phys := data.Move{Name: "Hit", Type: "", Category: data.Physical, Power: 100}

	base, _ := b.computeDamage(0, phys, false, 1.0)
	b.Sides[1].Reflect = screenDuration
	screened, _ := b.computeDamage(0, phys, false, 1.0)
	assert.Equal(t, base/2, screened)

	// a crit goes through the screen
	critBase, _ := b.computeDamage(0, phys, true, 1.0)
	b.Sides[1].Reflect = 0
	critClean, _ := b.computeDamage(0, phys, true, 1.0)
	assert.Equal(t, critClean, critBase)
}

func TestWeatherDamageMods(t *testing.T) {
	b := newTestBattle(t, 1,
		[]data.RosterMember{member("Heatran", "flamethrower")},
		[]data.RosterMember{member("Blissey", "bodyslam")},
	)
	mv := b.Sides[0].Active().Moves[0].Move

	base, _ := b.computeDamage(0, mv, false, 1.0)
	b.Weather = WeatherSun
	sunny, _ := b.computeDamage(0, mv, false, 1.0)
	b.Weather = WeatherRain
	rainy, _ := b.computeDamage(0, mv, false, 1.0)

	assert.Greater(t, sunny, base)
	assert.Less(t, rainy, base)
}

func TestStatDerivation(t *testing.T) {
	dex := data.NewDex()
	c := NewCombatant(member("Garchomp", "earthquake"), dex)
	assert.Equal(t, 108*2+110, c.MaxHP)
	assert.Equal(t, 130*2+5, c.Stats[Atk])
	assert.Equal(t, 102*2+5, c.Stats[Spe])
	assert.Equal(t, c.MaxHP, c.HP)
}

func TestStatDerivationAtLowerLevel(t *testing.T) {
	dex := data.NewDex()
	m := member("Garchomp", "earthquake")
	m.Level = 50
	c := NewCombatant(m, dex)
	assert.Equal(t, 50, c.Level)
	assert.Equal(t, 2*108*50/100+50+10, c.MaxHP)
	assert.Equal(t, 2*130*50/100+5, c.Stats[Atk])
}

func TestTeraChangesDefensiveTypingAndKeepsSTAB(t *testing.T) {
	dex := data.NewDex()
	m := member("Garchomp", "earthquake")
	m.TeraType = "fire"
	c := NewCombatant(m, dex)

	c.Terastallized = true
	assert.Equal(t, []string{"fire"}, c.Types())
	assert.Contains(t, c.STABTypes(), "ground")
	assert.Contains(t, c.STABTypes(), "fire")
}
