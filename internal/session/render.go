package session

import (
	"fmt"
	"strings"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/engine"
)

// RenderEntry turns one log entry into a line of battle commentary.
func RenderEntry(e engine.Entry) string {
	switch e.Kind {
	case engine.EventBattleStarted:
		return fmt.Sprintf("Battle started (%s)", e.Detail)
	case engine.EventTurnStarted:
		return fmt.Sprintf("--- Turn %d ---", e.Turn)
	case engine.EventMoveUsed:
		return fmt.Sprintf("%s used %s", e.Actor, e.Move)
	case engine.EventDamageDealt:
		line := fmt.Sprintf("%s took %d damage", e.Target, e.Damage)
		if e.Critical {
			line += " (critical hit)"
		}
		if e.Effectiveness > 1 {
			line += " (super effective)"
		} else if e.Effectiveness > 0 && e.Effectiveness < 1 {
			line += " (not very effective)"
		}
		if e.Detail != "" {
			line += " [" + e.Detail + "]"
		}
		return line
	case engine.EventHealed:
		return fmt.Sprintf("%s recovered %d HP", e.Target, e.Heal)
	case engine.EventMissed:
		return fmt.Sprintf("%s's %s missed", e.Actor, e.Move)
	case engine.EventActionFailed:
		who := e.Actor
		if who == "" {
			who = e.Target
		}
		if who == "" {
			return fmt.Sprintf("action failed (%s)", e.Outcome)
		}
		return fmt.Sprintf("%s's action failed (%s)", who, e.Outcome)
	case engine.EventSwitched:
		return fmt.Sprintf("side %d sent out %s", e.Side+1, e.Actor)
	case engine.EventStatusApplied:
		return fmt.Sprintf("%s is now %s", e.Target, e.Outcome)
	case engine.EventStatusCured:
		return fmt.Sprintf("%s was cured of %s", e.Target, e.Outcome)
	case engine.EventBoostChanged:
		return fmt.Sprintf("%s: %s", e.Target, e.Outcome)
	case engine.EventVolatileSet:
		return fmt.Sprintf("%s: %s", e.Target, e.Outcome)
	case engine.EventHazardChanged:
		return fmt.Sprintf("side %d hazards: %s", e.Side+1, e.Outcome)
	case engine.EventScreenChanged:
		return fmt.Sprintf("side %d screen: %s", e.Side+1, e.Outcome)
	case engine.EventWeatherChanged:
		return fmt.Sprintf("the weather became %s", e.Outcome)
	case engine.EventTerrainChanged:
		return fmt.Sprintf("the terrain became %s", e.Outcome)
	case engine.EventRoomChanged:
		return fmt.Sprintf("field effect: %s", e.Outcome)
	case engine.EventItemTriggered:
		return fmt.Sprintf("%s's item activated (%s)", e.Target, e.Outcome)
	case engine.EventAbilityFired:
		who := e.Actor
		if who == "" {
			who = e.Target
		}
		return fmt.Sprintf("%s's ability activated (%s)", who, e.Outcome)
	case engine.EventDataFallback:
		return fmt.Sprintf("%s uses baseline data (%s)", e.Actor, e.Detail)
	case engine.EventTerastallized:
		return fmt.Sprintf("%s terastallized into the %s type", e.Actor, e.Outcome)
	case engine.EventFainted:
		return fmt.Sprintf("%s fainted", e.Target)
	case engine.EventBattleEnded:
		if e.Outcome == string(engine.ResultTie) {
			return "The battle ended in a tie"
		}
		return fmt.Sprintf("The battle ended: %s wins", e.Outcome)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Outcome)
}

// RenderEntries renders a slice of entries, one per line.
func RenderEntries(entries []engine.Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = RenderEntry(e)
	}
	return strings.Join(lines, "\n")
}
