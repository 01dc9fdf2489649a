package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/engine"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.jsonl")
	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	entries := []engine.Entry{
		{Turn: 0, Side: -1, Kind: engine.EventBattleStarted, Detail: "classic"},
		{Turn: 1, Side: 0, Kind: engine.EventMoveUsed, Actor: "Garchomp", Move: "Earthquake"},
		{Turn: 1, Side: 1, Kind: engine.EventDamageDealt, Target: "Heatran", Outcome: "hit", Damage: 412, AccuracyRoll: 37, Critical: true, Effectiveness: 4},
		{Turn: 1, Side: 1, Kind: engine.EventFainted, Target: "Heatran"},
		{Turn: 1, Side: -1, Kind: engine.EventBattleEnded, Outcome: "p1"},
	}
	require.NoError(t, store.AppendAll(entries))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestStoreAppendsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.jsonl")

	s1, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s1.Append(engine.Entry{Turn: 1, Side: 0, Kind: engine.EventMoveUsed}))
	require.NoError(t, s1.Close())

	s2, err := NewStore(path)
	require.NoError(t, err)
	defer s2.Close()
	require.NoError(t, s2.Append(engine.Entry{Turn: 2, Side: 1, Kind: engine.EventMoveUsed}))

	loaded, err := s2.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 1, loaded[0].Turn)
	assert.Equal(t, 2, loaded[1].Turn)
}
