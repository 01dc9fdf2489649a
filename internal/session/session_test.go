package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/engine"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	dex := data.NewDex()
	r1 := &data.Roster{Name: "you", Members: []data.RosterMember{
		{Species: "garchomp", Ability: "roughskin", Moves: []string{"earthquake", "dragonclaw", "swordsdance", "protect"}},
		{Species: "heatran", Ability: "flashfire", Moves: []string{"flamethrower", "stealthrock"}},
	}}
	r2 := &data.Roster{Name: "them", Members: []data.RosterMember{
		{Species: "blissey", Ability: "naturalcure", Moves: []string{"thunderwave", "protect"}},
		{Species: "toxapex", Ability: "regenerator", Moves: []string{"recover", "haze"}},
	}}
	b, err := engine.NewBattle(dex, engine.Config{Seed: 11, Format: "classic"}, [2]*data.Roster{r1, r2})
	require.NoError(t, err)
	return New(b, 0, engine.NewRandomPolicy(23))
}

func TestSessionRunsTurn(t *testing.T) {
	s := newTestSession(t)

	out, err := s.Execute("move 1")
	require.NoError(t, err)
	assert.Contains(t, out, "Turn 1")
	assert.Contains(t, out, "used")
	assert.Equal(t, 1, s.Battle().Turn)
}

func TestSessionRejectsIllegalAction(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Execute("move 9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "legal")

	// switching to the active slot is never legal
	_, err = s.Execute("switch 1")
	require.Error(t, err)
}

func TestSessionQueries(t *testing.T) {
	s := newTestSession(t)

	team, err := s.Execute("team")
	require.NoError(t, err)
	assert.Contains(t, team, "You:")
	assert.Contains(t, team, "Garchomp")

	moves, err := s.Execute("moves")
	require.NoError(t, err)
	assert.Contains(t, moves, "Earthquake")
	assert.Contains(t, moves, "PP")

	field, err := s.Execute("field")
	require.NoError(t, err)
	assert.Equal(t, "the field is clear", field)

	help, err := s.Execute("help")
	require.NoError(t, err)
	assert.Contains(t, help, "switch <slot>")
}

func TestSessionQuit(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Execute("quit")
	assert.ErrorIs(t, err, ErrQuit)
}

func TestSessionUnknownCommand(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Execute("dance")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "help")
}

func TestSessionLogAccumulates(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Execute("switch 2")
	require.NoError(t, err)

	log, err := s.Execute("log")
	require.NoError(t, err)
	assert.True(t, strings.Contains(log, "Battle started"))
	assert.True(t, strings.Contains(log, "sent out"))
}
