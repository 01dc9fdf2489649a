package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "rotomwash", NormalizeID("Rotom-Wash"))
	assert.Equal(t, "flabebe", NormalizeID("Flabébé"))
	assert.Equal(t, "willowisp", NormalizeID("Will-O-Wisp"))
	assert.Equal(t, "uturn", NormalizeID("U-turn"))
	assert.Equal(t, "farfetchd", NormalizeID("Farfetch'd"))
	assert.Equal(t, NormalizeID("GARCHOMP"), NormalizeID("garchomp"))
}

func TestEffectiveness(t *testing.T) {
	assert.Equal(t, 2.0, Effectiveness("water", []string{"fire"}))
	assert.Equal(t, 4.0, Effectiveness("ice", []string{"dragon", "flying"}))
	assert.Equal(t, 0.25, Effectiveness("grass", []string{"fire", "flying"}))
	assert.Equal(t, 0.0, Effectiveness("ground", []string{"flying"}))
	assert.Equal(t, 0.0, Effectiveness("electric", []string{"water", "ground"}))
	assert.Equal(t, 1.0, Effectiveness("dark", []string{"normal"}))
}

func TestDexPlaceholders(t *testing.T) {
	d := NewDex()

	s := d.Species("Garchomp")
	assert.False(t, s.Placeholder)
	assert.Equal(t, 130, s.Base.Atk)

	unknown := d.Species("Missingno")
	assert.True(t, unknown.Placeholder)
	assert.Equal(t, []string{"normal"}, unknown.Types)
	assert.Equal(t, 80, unknown.Base.HP)

	m := d.Move("not-a-move")
	assert.True(t, m.Placeholder)
	assert.Equal(t, 50, m.Power)
	assert.Equal(t, Physical, m.Category)

	a := d.Ability("not-an-ability")
	assert.True(t, a.Placeholder)
	assert.Empty(t, a.Effect)

	assert.Empty(t, d.Ability("").Name)
	assert.Empty(t, d.Item("").Name)
}

func TestLoadDirsOverride(t *testing.T) {
	dir := t.TempDir()
	moves := `
earthquake:
  name: Earthquake
  type: ground
  category: physical
  power: 120
  accuracy: 100
  pp: 10
customlaser:
  name: Custom Laser
  type: steel
  category: special
  power: 95
  accuracy: 100
  pp: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "moves.yaml"), []byte(moves), 0o644))

	d, err := LoadDirs([]string{dir})
	require.NoError(t, err)

	// overridden row replaces the built-in one
	assert.Equal(t, 120, d.Move("earthquake").Power)
	// new row is reachable
	assert.Equal(t, 95, d.Move("Custom Laser").Power)
	// untouched built-ins survive the merge
	assert.Equal(t, 90, d.Move("icebeam").Power)
}

func TestLoadDirsMissingDirIsFine(t *testing.T) {
	d, err := LoadDirs([]string{"/nonexistent/data"})
	require.NoError(t, err)
	assert.False(t, d.Species("garchomp").Placeholder)
}

func TestFormatLookup(t *testing.T) {
	d := NewDex()
	f, err := d.Format("gen9ou")
	require.NoError(t, err)
	assert.True(t, f.TeraAllowed)
	assert.Equal(t, 200, f.MaxTurns)

	_, err = d.Format("gen1uu")
	assert.Error(t, err)
}

func TestValidateRoster(t *testing.T) {
	d := NewDex()
	f := Format{Name: "test", TeamSize: 6, SpeciesClause: true, BannedSpecies: []string{"Mewtwo"}, BannedItems: []string{"Kings Rock"}}

	ok := &Roster{Name: "ok", Members: []RosterMember{
		{Species: "Garchomp", Moves: []string{"earthquake"}},
		{Species: "Heatran", Moves: []string{"flamethrower"}, Item: "leftovers"},
	}}
	assert.NoError(t, d.ValidateRoster(ok, f))

	dup := &Roster{Name: "dup", Members: []RosterMember{
		{Species: "Garchomp"}, {Species: "garchomp"},
	}}
	assert.ErrorContains(t, d.ValidateRoster(dup, f), "species clause")

	banned := &Roster{Name: "banned", Members: []RosterMember{{Species: "Mewtwo"}}}
	assert.ErrorContains(t, d.ValidateRoster(banned, f), "banned")

	bannedItem := &Roster{Name: "item", Members: []RosterMember{{Species: "Garchomp", Item: "kingsrock"}}}
	assert.ErrorContains(t, d.ValidateRoster(bannedItem, f), "banned")

	noTera := Format{Name: "classic", TeamSize: 6}
	tera := &Roster{Name: "tera", Members: []RosterMember{{Species: "Garchomp", TeraType: "fire"}}}
	assert.ErrorContains(t, d.ValidateRoster(tera, noTera), "terastallization")
}

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()
	body := `
name: sample
members:
  - species: Garchomp
    moves: [earthquake, dragonclaw, stealthrock, swordsdance]
    ability: roughskin
    item: rockyhelmet
  - species: Heatran
    moves: [flamethrower]
`
	path := filepath.Join(dir, "team.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	r, err := LoadRoster(path)
	require.NoError(t, err)
	assert.Len(t, r.Members, 2)
	assert.Equal(t, "roughskin", r.Members[0].Ability)

	_, err = LoadRoster(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
