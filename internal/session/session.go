package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/engine"
)

// ErrQuit signals that the player closed the session.
var ErrQuit = errors.New("session closed")

// Session manages the cohesive loop of taking player commands, running
// turns against an opponent policy, and rendering the resulting log.
type Session struct {
	battle   *engine.Battle
	side     int
	opponent engine.Policy
	cursor   int
}

// New wraps an already constructed battle. The player controls side,
// the opponent policy drives the other one.
func New(b *engine.Battle, side int, opponent engine.Policy) *Session {
	return &Session{battle: b, side: side, opponent: opponent, cursor: len(b.Log)}
}

// Battle exposes the underlying battle, mainly for replacement hooks.
func (s *Session) Battle() *engine.Battle { return s.battle }

// Done reports whether the battle reached a terminal outcome.
func (s *Session) Done() bool { return s.battle.Outcome != engine.ResultOngoing }

// Result returns the terminal outcome, empty while ongoing.
func (s *Session) Result() engine.Result { return s.battle.Outcome }

// Execute takes a raw command string, coordinates one turn or answers a
// query, and returns the printable result.
func (s *Session) Execute(input string) (string, error) {
	cmd := ParseInput(input)

	switch cmd.Command {
	case "":
		return "", nil
	case "quit", "exit":
		return "", ErrQuit
	case "help":
		return helpText, nil
	case "team":
		return s.renderTeams(), nil
	case "moves":
		return s.renderMoves(), nil
	case "field":
		return s.renderField(), nil
	case "log":
		return RenderEntries(s.battle.Log), nil
	case "move", "tera", "struggle", "switch":
		return s.runTurn(cmd)
	}
	return "", fmt.Errorf("unknown command %q, type help for usage", cmd.Command)
}

func (s *Session) runTurn(cmd ParsedInput) (string, error) {
	if s.Done() {
		return "", fmt.Errorf("the battle is over (%s)", s.battle.Outcome)
	}

	action, err := s.buildAction(cmd)
	if err != nil {
		return "", err
	}

	var actions [2]engine.Action
	actions[s.side] = action
	opp := engine.Opponent(s.side)
	actions[opp] = s.opponent.Choose(s.battle, opp)

	s.battle.RunTurn(actions)
	return s.flush(), nil
}

// buildAction validates the player's choice against the engine's own
// view of what is legal this turn.
func (s *Session) buildAction(cmd ParsedInput) (engine.Action, error) {
	var want engine.Action
	switch cmd.Command {
	case "move":
		want = engine.Action{Kind: engine.ActionMove, MoveIndex: cmd.Index}
		if cmd.Tera {
			want.Kind = engine.ActionTera
		}
	case "tera":
		want = engine.Action{Kind: engine.ActionTera, MoveIndex: cmd.Index}
	case "struggle":
		want = engine.Action{Kind: engine.ActionMove, MoveIndex: -1}
	case "switch":
		want = engine.Action{Kind: engine.ActionSwitch, SwitchTo: cmd.Index}
	}

	for _, a := range s.battle.LegalActions(s.side) {
		if a == want {
			return want, nil
		}
	}
	return engine.Action{}, fmt.Errorf("%s is not legal right now; legal: %s", describeAction(want), s.renderLegal())
}

func (s *Session) renderLegal() string {
	var parts []string
	for _, a := range s.battle.LegalActions(s.side) {
		parts = append(parts, describeAction(a))
	}
	return strings.Join(parts, ", ")
}

func describeAction(a engine.Action) string {
	switch a.Kind {
	case engine.ActionMove:
		if a.MoveIndex < 0 {
			return "struggle"
		}
		return fmt.Sprintf("move %d", a.MoveIndex+1)
	case engine.ActionTera:
		return fmt.Sprintf("move %d tera", a.MoveIndex+1)
	case engine.ActionSwitch:
		return fmt.Sprintf("switch %d", a.SwitchTo+1)
	}
	return string(a.Kind)
}

// flush renders everything logged since the previous flush.
func (s *Session) flush() string {
	entries := s.battle.Log[s.cursor:]
	s.cursor = len(s.battle.Log)
	return RenderEntries(entries)
}

func (s *Session) renderTeams() string {
	var sb strings.Builder
	for side := 0; side < 2; side++ {
		st := s.battle.Sides[side]
		label := "You"
		if side != s.side {
			label = "Opponent"
		}
		fmt.Fprintf(&sb, "%s:\n", label)
		for i, c := range st.Team {
			marker := " "
			if i == st.ActiveIdx {
				marker = "*"
			}
			status := ""
			if c.Status != engine.StatusNone {
				status = fmt.Sprintf(" [%s]", c.Status)
			}
			fmt.Fprintf(&sb, " %s %d. %s %d/%d HP%s\n", marker, i+1, c.Name, c.HP, c.MaxHP, status)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (s *Session) renderMoves() string {
	c := s.battle.Sides[s.side].Active()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s's moves:\n", c.Name)
	for i, slot := range c.Moves {
		fmt.Fprintf(&sb, " %d. %s (%d PP)\n", i+1, slot.Move.Name, slot.PP)
	}
	if c.TeraType != "" && !s.battle.Sides[s.side].UsedTera && s.battle.Format.TeraAllowed {
		fmt.Fprintf(&sb, " tera type: %s (add \"tera\" to a move)\n", c.TeraType)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (s *Session) renderField() string {
	b := s.battle
	var parts []string
	if b.Weather != engine.WeatherNone {
		parts = append(parts, fmt.Sprintf("weather: %s (%d turns)", b.Weather, b.WeatherTurns))
	}
	if b.Terrain != engine.TerrainNone {
		parts = append(parts, fmt.Sprintf("terrain: %s (%d turns)", b.Terrain, b.TerrainTurns))
	}
	if b.TrickRoom > 0 {
		parts = append(parts, fmt.Sprintf("trick room (%d turns)", b.TrickRoom))
	}
	if b.Gravity > 0 {
		parts = append(parts, fmt.Sprintf("gravity (%d turns)", b.Gravity))
	}
	for side := 0; side < 2; side++ {
		h := b.Sides[side].Hazards
		if h.Any() {
			parts = append(parts, fmt.Sprintf("side %d hazards: rocks=%v spikes=%d tspikes=%d web=%v",
				side+1, h.StealthRock, h.Spikes, h.ToxicSpikes, h.StickyWeb))
		}
	}
	if len(parts) == 0 {
		return "the field is clear"
	}
	return strings.Join(parts, "\n")
}

const helpText = `commands:
  move <slot>        use a move by slot number
  move <slot> tera   terastallize, then use the move
  struggle           when no move is usable
  switch <slot>      swap to a teammate
  team               show both teams
  moves              show your active member's moves
  field              show weather, terrain and hazards
  log                replay the full battle log
  quit               leave the battle`
