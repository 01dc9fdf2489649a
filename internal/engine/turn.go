package engine

import (
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

// moveBlockReason explains why a move slot cannot be chosen right now,
// or returns the empty string when it can.
func (b *Battle) moveBlockReason(side, idx int) string {
	c := b.Sides[side].Active()
	if idx < 0 || idx >= len(c.Moves) {
		return "no_such_move"
	}
	slot := c.Moves[idx]
	if slot.PP <= 0 {
		return "no_pp"
	}
	if c.Vol.TauntTurns > 0 && slot.Move.Category == data.Status {
		return "taunted"
	}
	if c.Vol.DisableTurns > 0 && c.Vol.DisabledMove == idx {
		return "disabled"
	}
	if c.Vol.EncoreTurns > 0 && c.Vol.EncoreMove != idx {
		return "encored"
	}
	if c.Vol.Torment && c.Vol.LastMove == idx {
		return "tormented"
	}
	if c.Vol.ChoiceLock >= 0 && c.Vol.ChoiceLock != idx {
		return "choice_locked"
	}
	foe := b.Sides[Opponent(side)].Active()
	if foe.Vol.Imprison && !foe.Fainted() {
		name := data.NormalizeID(slot.Move.Name)
		for _, fm := range foe.Moves {
			if data.NormalizeID(fm.Move.Name) == name {
				return "imprisoned"
			}
		}
	}
	aVest := b.HeldItem(c).Effect == data.ItemAssaultVest
	if aVest && slot.Move.Category == data.Status {
		return "assault_vest"
	}
	return ""
}

// LegalActions enumerates everything a side may do this turn. An empty
// move set yields Struggle (MoveIndex -1).
func (b *Battle) LegalActions(side int) []Action {
	s := b.Sides[side]
	c := s.Active()
	var out []Action
	for i := range c.Moves {
		if b.moveBlockReason(side, i) == "" {
			out = append(out, Action{Kind: ActionMove, MoveIndex: i})
			if b.Format.TeraAllowed && !s.UsedTera && c.TeraType != "" {
				out = append(out, Action{Kind: ActionTera, MoveIndex: i})
			}
		}
	}
	if len(out) == 0 {
		out = append(out, Action{Kind: ActionMove, MoveIndex: -1})
	}
	if c.Vol.TrapTurns == 0 {
		for _, idx := range s.Replacements() {
			out = append(out, Action{Kind: ActionSwitch, SwitchTo: idx})
		}
	}
	return out
}

// actionPriority computes the priority bracket of a chosen action.
func (b *Battle) actionPriority(side int, a Action) int {
	if a.Kind == ActionSwitch {
		return switchPriority
	}
	c := b.Sides[side].Active()
	mv := b.resolveMove(side, a.MoveIndex)
	p := mv.Priority
	if c.HasAbility(data.AbilityPrankster) && mv.Category == data.Status {
		p++
	}
	if c.HasAbility(data.AbilityGaleWings) && moveTypeFor(c, mv) == "flying" && c.HP == c.MaxHP {
		p++
	}
	return p
}

// resolveMove maps a chosen index to its move row; -1 and empty slots
// resolve to Struggle.
func (b *Battle) resolveMove(side, idx int) data.Move {
	c := b.Sides[side].Active()
	if idx < 0 || idx >= len(c.Moves) {
		return b.Dex.Move("struggle")
	}
	return c.Moves[idx].Move
}

// firstMover decides who acts first: higher priority wins outright,
// then effective speed (inverted under Trick Room), then a coin flip.
func (b *Battle) firstMover(actions [2]Action) int {
	p0 := b.actionPriority(0, actions[0])
	p1 := b.actionPriority(1, actions[1])
	if p0 != p1 {
		if p0 > p1 {
			return 0
		}
		return 1
	}
	s0, s1 := b.Speed(0), b.Speed(1)
	if s0 != s1 {
		faster := 0
		if s1 > s0 {
			faster = 1
		}
		if b.TrickRoom > 0 {
			return Opponent(faster)
		}
		return faster
	}
	if b.RNG.Flip() {
		return 0
	}
	return 1
}

// checkFaint records a faint exactly once.
func (b *Battle) checkFaint(side int) {
	c := b.Sides[side].Active()
	if c.Fainted() && !c.FaintRecorded {
		c.FaintRecorded = true
		b.emit(faintEvent{Side: side})
	}
}

// performSwitch executes a voluntary or forced switch, including the
// outgoing Regenerator heal and the incoming hazard and ability phase.
func (b *Battle) performSwitch(side, to int) {
	out := b.Sides[side].Active()
	if !out.Fainted() && out.HasAbility(data.AbilityRegenerator) && out.HP < out.MaxHP {
		b.emit(&healEvent{Side: side, Amount: out.MaxHP / 3, Source: "regenerator"})
	}
	b.emit(switchEvent{Side: side, To: to})
	b.switchInEffects(side)
	b.checkFaint(side)
}

// RunTurn advances the battle by one full turn given both sides'
// choices. It returns the outcome, which stays ResultOngoing until the
// battle ends.
func (b *Battle) RunTurn(actions [2]Action) Result {
	if b.Outcome != ResultOngoing {
		return b.Outcome
	}
	b.emit(turnStartedEvent{})

	first := b.firstMover(actions)
	order := [2]int{first, Opponent(first)}

	actors := [2]*Combatant{b.Sides[0].Active(), b.Sides[1].Active()}
	for _, side := range order {
		if b.finished() {
			break
		}
		b.executeAction(side, actions[side], actors[side])
	}

	if !b.finished() {
		b.endOfTurn(order)
	}
	b.forcedReplacements(order)
	b.resolveOutcome()
	return b.Outcome
}

func (b *Battle) finished() bool {
	return b.Sides[0].Defeated() || b.Sides[1].Defeated()
}

func (b *Battle) resolveOutcome() {
	if b.Outcome != ResultOngoing {
		return
	}
	d0, d1 := b.Sides[0].Defeated(), b.Sides[1].Defeated()
	switch {
	case d0 && d1:
		b.emit(endEvent{Result: ResultTie})
	case d0:
		b.emit(endEvent{Result: ResultSideB})
	case d1:
		b.emit(endEvent{Result: ResultSideA})
	case b.Turn >= b.MaxTurns:
		b.emit(endEvent{Result: ResultTie})
	}
}

func (b *Battle) executeAction(side int, a Action, actor *Combatant) {
	s := b.Sides[side]
	// a replacement that came in mid-turn does not also act
	if s.Active() != actor || actor.Fainted() {
		return
	}
	switch a.Kind {
	case ActionSwitch:
		if a.SwitchTo == s.ActiveIdx || a.SwitchTo < 0 || a.SwitchTo >= len(s.Team) || s.Team[a.SwitchTo].Fainted() || actor.Vol.TrapTurns > 0 {
			b.record(Entry{Side: side, Kind: EventActionFailed, Actor: actor.Name, Outcome: "illegal_switch"})
			return
		}
		b.performSwitch(side, a.SwitchTo)
	case ActionTera:
		if b.Format.TeraAllowed && !s.UsedTera && actor.TeraType != "" {
			b.emit(teraEvent{Side: side})
		}
		b.executeMove(side, a.MoveIndex)
	default:
		b.executeMove(side, a.MoveIndex)
	}
}

// endOfTurn runs the residual phase in action order: status damage,
// then weather, then terrain and field-bound volatiles, then held
// items. Faint checks happen after every damaging step.
func (b *Battle) endOfTurn(order [2]int) {
	for _, side := range order {
		b.statusResiduals(side)
	}
	for _, side := range order {
		b.weatherChip(side)
	}
	for _, side := range order {
		b.fieldResiduals(side)
	}
	for _, side := range order {
		b.itemResiduals(side)
	}
	for _, side := range order {
		c := b.Sides[side].Active()
		c.Vol.UsedProtect = c.Vol.Protected
		c.Vol.Protected = false
		c.Vol.Flinch = false
		tickVol := func(field *int) {
			if *field > 0 {
				*field--
			}
		}
		tickVol(&c.Vol.TauntTurns)
		tickVol(&c.Vol.DisableTurns)
		if c.Vol.DisableTurns == 0 {
			c.Vol.DisabledMove = -1
		}
		tickVol(&c.Vol.EncoreTurns)
		if c.Vol.EncoreTurns == 0 {
			c.Vol.EncoreMove = -1
		}
	}
	b.tickField()
}

// forcedReplacements brings in replacements for fainted actives.
func (b *Battle) forcedReplacements(order [2]int) {
	for _, side := range order {
		s := b.Sides[side]
		if !s.Active().Fainted() || s.Defeated() {
			continue
		}
		to := b.pickReplacement(side)
		if to >= 0 {
			b.performSwitch(side, to)
		}
	}
}

func (b *Battle) pickReplacement(side int) int {
	if b.ReplacementPicker != nil {
		if to := b.ReplacementPicker(b, side); to >= 0 {
			s := b.Sides[side]
			if to != s.ActiveIdx && to < len(s.Team) && !s.Team[to].Fainted() {
				return to
			}
		}
	}
	reps := b.Sides[side].Replacements()
	if len(reps) == 0 {
		return -1
	}
	return reps[0]
}
