package engine

import (
	"fmt"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

// EventType tags every log entry.
type EventType string

const (
	EventBattleStarted  EventType = "BattleStarted"
	EventTurnStarted    EventType = "TurnStarted"
	EventMoveUsed       EventType = "MoveUsed"
	EventDamageDealt    EventType = "DamageDealt"
	EventHealed         EventType = "Healed"
	EventMissed         EventType = "Missed"
	EventActionFailed   EventType = "ActionFailed"
	EventSwitched       EventType = "Switched"
	EventStatusApplied  EventType = "StatusApplied"
	EventStatusCured    EventType = "StatusCured"
	EventBoostChanged   EventType = "BoostChanged"
	EventVolatileSet    EventType = "VolatileSet"
	EventHazardChanged  EventType = "HazardChanged"
	EventScreenChanged  EventType = "ScreenChanged"
	EventWeatherChanged EventType = "WeatherChanged"
	EventTerrainChanged EventType = "TerrainChanged"
	EventRoomChanged    EventType = "RoomChanged"
	EventItemTriggered  EventType = "ItemTriggered"
	EventAbilityFired   EventType = "AbilityFired"
	EventTerastallized  EventType = "Terastallized"
	EventDataFallback   EventType = "DataFallback"
	EventFainted        EventType = "Fainted"
	EventBattleEnded    EventType = "BattleEnded"
)

// Entry is one flat, replayable log record. Side is the acting or
// affected side (0 or 1), -1 for field-wide records.
type Entry struct {
	Turn          int       `json:"turn"`
	Side          int       `json:"side"`
	Kind          EventType `json:"kind"`
	Actor         string    `json:"actor,omitempty"`
	Move          string    `json:"move,omitempty"`
	Target        string    `json:"target,omitempty"`
	Outcome       string    `json:"outcome,omitempty"`
	Damage        int       `json:"damage,omitempty"`
	Heal          int       `json:"heal,omitempty"`
	AccuracyRoll  int       `json:"accuracy_roll,omitempty"`
	Critical      bool      `json:"critical_hit,omitempty"`
	Effectiveness float64   `json:"effectiveness,omitempty"`
	Detail        string    `json:"detail,omitempty"`
}

// Event is the building block of the engine: every state change is an
// event applied to the battle and projected into a log entry.
type Event interface {
	Type() EventType
	Apply(b *Battle) error
	Entry(b *Battle) Entry
}

// emit applies an event and appends its projection to the log. An apply
// error means the executor constructed an impossible event, which is a
// bug, not a game state.
func (b *Battle) emit(ev Event) {
	if err := ev.Apply(b); err != nil {
		panic(fmt.Sprintf("apply %s: %v", ev.Type(), err))
	}
	e := ev.Entry(b)
	e.Turn = b.Turn
	b.Log = append(b.Log, e)
	b.logger.Debug().Str("kind", string(e.Kind)).Int("side", e.Side).Str("actor", e.Actor).Str("detail", e.Detail).Msg("event")
}

// record appends a log-only entry with no state change.
func (b *Battle) record(e Entry) {
	e.Turn = b.Turn
	b.Log = append(b.Log, e)
}

type battleStartedEvent struct{}

func (battleStartedEvent) Type() EventType       { return EventBattleStarted }
func (battleStartedEvent) Apply(b *Battle) error { return nil }
func (battleStartedEvent) Entry(b *Battle) Entry {
	return Entry{Side: -1, Kind: EventBattleStarted, Detail: b.Format.Name}
}

type turnStartedEvent struct{}

func (turnStartedEvent) Type() EventType { return EventTurnStarted }
func (turnStartedEvent) Apply(b *Battle) error {
	b.Turn++
	return nil
}
func (turnStartedEvent) Entry(b *Battle) Entry { return Entry{Side: -1, Kind: EventTurnStarted} }

// moveUsedEvent deducts PP and records move selection state.
type moveUsedEvent struct {
	Side int
	Idx  int
}

func (e moveUsedEvent) Type() EventType { return EventMoveUsed }
func (e moveUsedEvent) Apply(b *Battle) error {
	c := b.Sides[e.Side].Active()
	if e.Idx < 0 || e.Idx >= len(c.Moves) {
		return nil // struggle is not a slot
	}
	slot := &c.Moves[e.Idx]
	if slot.PP > 0 {
		slot.PP--
	}
	c.Vol.LastMove = e.Idx
	item := b.HeldItem(c).Effect
	if c.Vol.ChoiceLock < 0 && (item == data.ItemChoiceBand || item == data.ItemChoiceSpecs || item == data.ItemChoiceScarf) {
		c.Vol.ChoiceLock = e.Idx
	}
	return nil
}
func (e moveUsedEvent) Entry(b *Battle) Entry {
	c := b.Sides[e.Side].Active()
	name := "Struggle"
	if e.Idx >= 0 && e.Idx < len(c.Moves) {
		name = c.Moves[e.Idx].Move.Name
	}
	return Entry{Side: e.Side, Kind: EventMoveUsed, Actor: c.Name, Move: name}
}

// damageEvent reduces a target's HP, or its substitute when ToSub is set.
type damageEvent struct {
	Side          int // target side
	Amount        int
	ToSub         bool
	Move          string
	Source        string
	Critical      bool
	Effectiveness float64
	AccuracyRoll  int

	applied int
}

func (e *damageEvent) Type() EventType { return EventDamageDealt }
func (e *damageEvent) Apply(b *Battle) error {
	c := b.Sides[e.Side].Active()
	if e.ToSub {
		n := e.Amount
		if n > c.Vol.SubstituteHP {
			n = c.Vol.SubstituteHP
		}
		c.Vol.SubstituteHP -= n
		e.applied = n
		return nil
	}
	e.applied = c.Damage(e.Amount)
	return nil
}
func (e *damageEvent) Entry(b *Battle) Entry {
	target := b.Sides[e.Side].Active()
	out := "hit"
	if e.ToSub {
		out = "hit_substitute"
	}
	return Entry{
		Side: e.Side, Kind: EventDamageDealt, Target: target.Name, Move: e.Move,
		Outcome: out, Damage: e.applied, Critical: e.Critical,
		Effectiveness: e.Effectiveness, AccuracyRoll: e.AccuracyRoll, Detail: e.Source,
	}
}

type healEvent struct {
	Side   int
	Amount int
	Source string

	applied int
}

func (e *healEvent) Type() EventType { return EventHealed }
func (e *healEvent) Apply(b *Battle) error {
	e.applied = b.Sides[e.Side].Active().Heal(e.Amount)
	return nil
}
func (e *healEvent) Entry(b *Battle) Entry {
	return Entry{Side: e.Side, Kind: EventHealed, Target: b.Sides[e.Side].Active().Name, Heal: e.applied, Detail: e.Source}
}

// switchEvent swaps the active member. The outgoing member's boosts and
// volatiles reset.
type switchEvent struct {
	Side int
	To   int
}

func (e switchEvent) Type() EventType { return EventSwitched }
func (e switchEvent) Apply(b *Battle) error {
	s := b.Sides[e.Side]
	if e.To < 0 || e.To >= len(s.Team) {
		return fmt.Errorf("switch target %d out of range", e.To)
	}
	if s.Team[e.To].Fainted() {
		return fmt.Errorf("switch target %d has fainted", e.To)
	}
	s.Active().ResetOnSwitch()
	s.ActiveIdx = e.To
	return nil
}
func (e switchEvent) Entry(b *Battle) Entry {
	return Entry{Side: e.Side, Kind: EventSwitched, Actor: b.Sides[e.Side].Active().Name}
}

type statusEvent struct {
	Side    int
	Status  Status
	Source  string
	AccRoll int
}

func (e statusEvent) Type() EventType { return EventStatusApplied }
func (e statusEvent) Apply(b *Battle) error {
	c := b.Sides[e.Side].Active()
	if c.Status != StatusNone {
		return fmt.Errorf("%s already has status %s", c.Name, c.Status)
	}
	c.Status = e.Status
	switch e.Status {
	case StatusToxic:
		c.ToxicStacks = 1
	case StatusSleep:
		c.SleepTurns = 0
	}
	return nil
}
func (e statusEvent) Entry(b *Battle) Entry {
	return Entry{Side: e.Side, Kind: EventStatusApplied, Target: b.Sides[e.Side].Active().Name, Outcome: string(e.Status), AccuracyRoll: e.AccRoll, Detail: e.Source}
}

type cureStatusEvent struct {
	Side   int
	Source string

	was Status
}

func (e *cureStatusEvent) Type() EventType { return EventStatusCured }
func (e *cureStatusEvent) Apply(b *Battle) error {
	c := b.Sides[e.Side].Active()
	e.was = c.Status
	c.Status = StatusNone
	c.SleepTurns = 0
	c.ToxicStacks = 0
	return nil
}
func (e *cureStatusEvent) Entry(b *Battle) Entry {
	return Entry{Side: e.Side, Kind: EventStatusCured, Target: b.Sides[e.Side].Active().Name, Outcome: string(e.was), Detail: e.Source}
}

type boostEvent struct {
	Side   int
	Stat   Stat
	Delta  int
	Source string

	applied int
}

func (e *boostEvent) Type() EventType { return EventBoostChanged }
func (e *boostEvent) Apply(b *Battle) error {
	e.applied = b.Sides[e.Side].Active().ChangeBoost(e.Stat, e.Delta)
	return nil
}
func (e *boostEvent) Entry(b *Battle) Entry {
	return Entry{
		Side: e.Side, Kind: EventBoostChanged, Target: b.Sides[e.Side].Active().Name,
		Outcome: fmt.Sprintf("%s%+d", e.Stat, e.applied), Detail: e.Source,
	}
}

type faintEvent struct {
	Side int
}

func (e faintEvent) Type() EventType       { return EventFainted }
func (e faintEvent) Apply(b *Battle) error { return nil }
func (e faintEvent) Entry(b *Battle) Entry {
	return Entry{Side: e.Side, Kind: EventFainted, Target: b.Sides[e.Side].Active().Name}
}

type weatherEvent struct {
	Weather Weather
	Turns   int
}

func (e weatherEvent) Type() EventType { return EventWeatherChanged }
func (e weatherEvent) Apply(b *Battle) error {
	b.Weather = e.Weather
	b.WeatherTurns = e.Turns
	return nil
}
func (e weatherEvent) Entry(b *Battle) Entry {
	return Entry{Side: -1, Kind: EventWeatherChanged, Outcome: string(e.Weather)}
}

type terrainEvent struct {
	Terrain Terrain
	Turns   int
}

func (e terrainEvent) Type() EventType { return EventTerrainChanged }
func (e terrainEvent) Apply(b *Battle) error {
	b.Terrain = e.Terrain
	b.TerrainTurns = e.Turns
	return nil
}
func (e terrainEvent) Entry(b *Battle) Entry {
	return Entry{Side: -1, Kind: EventTerrainChanged, Outcome: string(e.Terrain)}
}

type endEvent struct {
	Result Result
}

func (e endEvent) Type() EventType { return EventBattleEnded }
func (e endEvent) Apply(b *Battle) error {
	b.Outcome = e.Result
	return nil
}
func (e endEvent) Entry(b *Battle) Entry {
	return Entry{Side: -1, Kind: EventBattleEnded, Outcome: string(e.Result)}
}

type teraEvent struct {
	Side int
}

func (e teraEvent) Type() EventType { return EventTerastallized }
func (e teraEvent) Apply(b *Battle) error {
	s := b.Sides[e.Side]
	c := s.Active()
	if s.UsedTera {
		return fmt.Errorf("side %d already terastallized", e.Side)
	}
	if c.TeraType == "" {
		return fmt.Errorf("%s has no tera type", c.Name)
	}
	c.Terastallized = true
	s.UsedTera = true
	return nil
}
func (e teraEvent) Entry(b *Battle) Entry {
	c := b.Sides[e.Side].Active()
	return Entry{Side: e.Side, Kind: EventTerastallized, Actor: c.Name, Outcome: c.TeraType}
}
