package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

const defaultMaxTurns = 200

// Config seeds and scopes one battle.
type Config struct {
	Seed     uint64
	Format   string
	MaxTurns int // 0 takes the format's cap, then the engine default
	Logger   *zerolog.Logger
}

// NewBattle validates both rosters against the format, builds the teams
// and fires the battle-start phase (lead abilities included).
func NewBattle(dex *data.Dex, cfg Config, rosters [2]*data.Roster) (*Battle, error) {
	format, err := dex.Format(cfg.Format)
	if err != nil {
		return nil, err
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	b := &Battle{
		Dex:    dex,
		Format: format,
		RNG:    NewRNG(cfg.Seed),
		logger: logger,
	}
	b.MaxTurns = cfg.MaxTurns
	if b.MaxTurns == 0 {
		b.MaxTurns = format.MaxTurns
	}
	if b.MaxTurns == 0 {
		b.MaxTurns = defaultMaxTurns
	}
	for i, r := range rosters {
		if err := dex.ValidateRoster(r, format); err != nil {
			return nil, fmt.Errorf("side %d: %w", i+1, err)
		}
		s := &SideState{}
		for _, m := range r.Members {
			s.Team = append(s.Team, NewCombatant(m, dex))
		}
		b.Sides[i] = s
	}

	b.emit(battleStartedEvent{})
	for i := range b.Sides {
		b.recordFallbacks(i)
	}
	lead := 0
	if b.Speed(1) > b.Speed(0) || (b.Speed(1) == b.Speed(0) && !b.RNG.Flip()) {
		lead = 1
	}
	b.switchInEffects(lead)
	b.switchInEffects(Opponent(lead))
	return b, nil
}

// recordFallbacks marks every placeholder synthesized for an unknown id
// in the battle log, so downstream consumers can tell degraded entries
// from real data.
func (b *Battle) recordFallbacks(side int) {
	for _, c := range b.Sides[side].Team {
		if c.Species.Placeholder {
			b.record(Entry{Side: side, Kind: EventDataFallback, Actor: c.Name, Outcome: "fallback", Detail: "species " + data.NormalizeID(c.Name)})
		}
		if c.Ability.Placeholder {
			b.record(Entry{Side: side, Kind: EventDataFallback, Actor: c.Name, Outcome: "fallback", Detail: "ability " + data.NormalizeID(c.Ability.Name)})
		}
		if c.Item.Placeholder {
			b.record(Entry{Side: side, Kind: EventDataFallback, Actor: c.Name, Outcome: "fallback", Detail: "item " + data.NormalizeID(c.Item.Name)})
		}
		for _, slot := range c.Moves {
			if slot.Move.Placeholder {
				b.record(Entry{Side: side, Kind: EventDataFallback, Actor: c.Name, Move: slot.Move.Name, Outcome: "fallback", Detail: "move " + data.NormalizeID(slot.Move.Name)})
			}
		}
	}
}

// Policy picks a side's action each turn.
type Policy interface {
	Choose(b *Battle, side int) Action
}

// Run plays the battle to completion under the two policies.
func (b *Battle) Run(policies [2]Policy) Result {
	for b.Outcome == ResultOngoing {
		var actions [2]Action
		for side, p := range policies {
			actions[side] = p.Choose(b, side)
		}
		b.RunTurn(actions)
	}
	return b.Outcome
}

// RandomPolicy plays uniformly random legal moves, preferring attacks
// over switches 70/30 when both are available. It draws from its own
// stream so battle randomness and policy randomness stay independent.
type RandomPolicy struct {
	rng *RNG
}

func NewRandomPolicy(seed uint64) *RandomPolicy {
	return &RandomPolicy{rng: NewRNG(seed)}
}

func (p *RandomPolicy) Choose(b *Battle, side int) Action {
	legal := b.LegalActions(side)
	var moves, switches []Action
	for _, a := range legal {
		if a.Kind == ActionSwitch {
			switches = append(switches, a)
		} else {
			moves = append(moves, a)
		}
	}
	if len(moves) > 0 && (len(switches) == 0 || p.rng.Chance(70)) {
		return moves[p.rng.IntN(len(moves))]
	}
	if len(switches) > 0 {
		return switches[p.rng.IntN(len(switches))]
	}
	return legal[0]
}

// RandomReplacementPicker returns a picker that chooses replacements
// uniformly from the healthy bench.
func RandomReplacementPicker(rng *RNG) func(b *Battle, side int) int {
	return func(b *Battle, side int) int {
		reps := b.Sides[side].Replacements()
		if len(reps) == 0 {
			return -1
		}
		return reps[rng.IntN(len(reps))]
	}
}
