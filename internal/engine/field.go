package engine

import (
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

const (
	weatherDuration  = 5
	terrainDuration  = 5
	screenDuration   = 5
	roomDuration     = 5
	tailwindDuration = 4
	maxSpikesLayers  = 3
	maxTSpikesLayers = 2
)

// applyBoost routes every stage change through the modifier abilities:
// Contrary inverts, Clear Body refuses drops inflicted by the opponent.
func (b *Battle) applyBoost(targetSide int, st Stat, delta int, source string, fromOpponent bool) {
	c := b.Sides[targetSide].Active()
	if c.HasAbility(data.AbilityContrary) {
		delta = -delta
	}
	if delta < 0 && fromOpponent && c.HasAbility(data.AbilityClearBody) {
		b.record(Entry{Side: targetSide, Kind: EventAbilityFired, Target: c.Name, Outcome: c.Ability.Name, Detail: "blocked_" + source})
		return
	}
	b.emit(&boostEvent{Side: targetSide, Stat: st, Delta: delta, Source: source})
}

// setHazard lays one hazard on the target side.
func (b *Battle) setHazard(targetSide int, effect string) {
	h := &b.Sides[targetSide].Hazards
	var out string
	switch effect {
	case data.EffectStealthRock:
		if h.StealthRock {
			b.record(Entry{Side: targetSide, Kind: EventActionFailed, Outcome: "hazard_already_set"})
			return
		}
		h.StealthRock = true
		out = "stealth_rock"
	case data.EffectSpikes:
		if h.Spikes >= maxSpikesLayers {
			b.record(Entry{Side: targetSide, Kind: EventActionFailed, Outcome: "hazard_already_set"})
			return
		}
		h.Spikes++
		out = "spikes"
	case data.EffectToxicSpikes:
		if h.ToxicSpikes >= maxTSpikesLayers {
			b.record(Entry{Side: targetSide, Kind: EventActionFailed, Outcome: "hazard_already_set"})
			return
		}
		h.ToxicSpikes++
		out = "toxic_spikes"
	case data.EffectStickyWeb:
		if h.StickyWeb {
			b.record(Entry{Side: targetSide, Kind: EventActionFailed, Outcome: "hazard_already_set"})
			return
		}
		h.StickyWeb = true
		out = "sticky_web"
	}
	b.record(Entry{Side: targetSide, Kind: EventHazardChanged, Outcome: out})
}

// clearHazards removes every hazard from one side.
func (b *Battle) clearHazards(side int, source string) {
	if !b.Sides[side].Hazards.Any() {
		return
	}
	b.Sides[side].Hazards = Hazards{}
	b.record(Entry{Side: side, Kind: EventHazardChanged, Outcome: "cleared", Detail: source})
}

// switchInEffects runs entry hazards and entry abilities for the member
// that just came in, in that order.
func (b *Battle) switchInEffects(side int) {
	c := b.Sides[side].Active()
	h := b.Sides[side].Hazards
	boots := b.HeldItem(c).Effect == data.ItemHeavyDutyBoots

	if !boots {
		if h.StealthRock {
			eff := data.Effectiveness("rock", c.Types())
			dmg := int(float64(c.MaxHP) * 0.125 * eff)
			if dmg > 0 {
				b.residualDamage(side, dmg, "stealth_rock")
			}
		}
		if !c.Fainted() && h.Spikes > 0 && b.Grounded(c) {
			b.residualDamage(side, c.MaxHP*h.Spikes/8, "spikes")
		}
		if !c.Fainted() && h.ToxicSpikes > 0 && b.Grounded(c) {
			if c.HasType("poison") {
				b.Sides[side].Hazards.ToxicSpikes = 0
				b.record(Entry{Side: side, Kind: EventHazardChanged, Outcome: "toxic_spikes_absorbed", Actor: c.Name})
			} else if !c.HasType("steel") {
				st := StatusPoison
				if h.ToxicSpikes >= maxTSpikesLayers {
					st = StatusToxic
				}
				b.tryStatus(side, st, "toxic_spikes", false)
			}
		}
		if !c.Fainted() && h.StickyWeb && b.Grounded(c) {
			b.applyBoost(side, Spe, -1, "sticky_web", true)
		}
	}
	if c.Fainted() {
		return
	}

	switch c.Ability.Effect {
	case data.AbilityIntimidate:
		foe := Opponent(side)
		if !b.Sides[foe].Active().Fainted() {
			b.record(Entry{Side: side, Kind: EventAbilityFired, Actor: c.Name, Outcome: c.Ability.Name})
			b.applyBoost(foe, Atk, -1, "intimidate", true)
		}
	case data.AbilityDrought:
		b.setWeather(WeatherSun, c.Name)
	case data.AbilityDrizzle:
		b.setWeather(WeatherRain, c.Name)
	case data.AbilitySandStream:
		b.setWeather(WeatherSand, c.Name)
	case data.AbilitySnowWarning:
		b.setWeather(WeatherSnow, c.Name)
	}
}

func (b *Battle) setWeather(w Weather, source string) {
	if b.Weather == w {
		return
	}
	b.emit(weatherEvent{Weather: w, Turns: weatherDuration})
}

func (b *Battle) setTerrain(t Terrain, source string) {
	if b.Terrain == t {
		return
	}
	b.emit(terrainEvent{Terrain: t, Turns: terrainDuration})
}

// setScreen raises one of the three screens on the caster's side.
func (b *Battle) setScreen(side int, effect string) {
	s := b.Sides[side]
	switch effect {
	case data.EffectReflect:
		if s.Reflect > 0 {
			b.record(Entry{Side: side, Kind: EventActionFailed, Outcome: "screen_already_up"})
			return
		}
		s.Reflect = screenDuration
		b.record(Entry{Side: side, Kind: EventScreenChanged, Outcome: "reflect"})
	case data.EffectLightScreen:
		if s.LightScreen > 0 {
			b.record(Entry{Side: side, Kind: EventActionFailed, Outcome: "screen_already_up"})
			return
		}
		s.LightScreen = screenDuration
		b.record(Entry{Side: side, Kind: EventScreenChanged, Outcome: "light_screen"})
	case data.EffectAuroraVeil:
		if b.Weather != WeatherHail && b.Weather != WeatherSnow {
			b.record(Entry{Side: side, Kind: EventActionFailed, Outcome: "needs_hail"})
			return
		}
		if s.AuroraVeil > 0 {
			b.record(Entry{Side: side, Kind: EventActionFailed, Outcome: "screen_already_up"})
			return
		}
		s.AuroraVeil = screenDuration
		b.record(Entry{Side: side, Kind: EventScreenChanged, Outcome: "aurora_veil"})
	}
}

// setRoom handles the four room effects. Trick Room toggles off when
// set again; the others fail while active.
func (b *Battle) setRoom(effect string) {
	set := func(field *int, name string) {
		if *field > 0 {
			b.record(Entry{Side: -1, Kind: EventActionFailed, Outcome: "room_already_up", Detail: name})
			return
		}
		*field = roomDuration
		b.record(Entry{Side: -1, Kind: EventRoomChanged, Outcome: name})
	}
	switch effect {
	case data.EffectTrickRoom:
		if b.TrickRoom > 0 {
			b.TrickRoom = 0
			b.record(Entry{Side: -1, Kind: EventRoomChanged, Outcome: "trick_room_ended"})
			return
		}
		b.TrickRoom = roomDuration
		b.record(Entry{Side: -1, Kind: EventRoomChanged, Outcome: "trick_room"})
	case data.EffectGravity:
		set(&b.Gravity, "gravity")
	case data.EffectWonderRoom:
		set(&b.WonderRoom, "wonder_room")
	case data.EffectMagicRoom:
		set(&b.MagicRoom, "magic_room")
	}
}

// weatherChip applies end-of-turn weather damage to one side. Snow
// grants its Ice defense boost instead of chipping.
func (b *Battle) weatherChip(side int) {
	c := b.Sides[side].Active()
	if c.Fainted() {
		return
	}
	switch b.Weather {
	case WeatherSand:
		if !c.HasType("rock") && !c.HasType("ground") && !c.HasType("steel") {
			b.residualDamage(side, c.MaxHP/16, "sandstorm")
		}
	case WeatherHail:
		if !c.HasType("ice") {
			b.residualDamage(side, c.MaxHP/16, "hail")
		}
	}
}

// tickField advances every timed field effect at end of turn.
func (b *Battle) tickField() {
	if b.WeatherTurns > 0 {
		b.WeatherTurns--
		if b.WeatherTurns == 0 {
			b.emit(weatherEvent{Weather: WeatherNone})
		}
	}
	if b.TerrainTurns > 0 {
		b.TerrainTurns--
		if b.TerrainTurns == 0 {
			b.emit(terrainEvent{Terrain: TerrainNone})
		}
	}
	tick := func(field *int, name string) {
		if *field > 0 {
			*field--
			if *field == 0 {
				b.record(Entry{Side: -1, Kind: EventRoomChanged, Outcome: name + "_ended"})
			}
		}
	}
	tick(&b.TrickRoom, "trick_room")
	tick(&b.Gravity, "gravity")
	tick(&b.WonderRoom, "wonder_room")
	tick(&b.MagicRoom, "magic_room")

	for side, s := range b.Sides {
		sideTick := func(field *int, name string) {
			if *field > 0 {
				*field--
				if *field == 0 {
					b.record(Entry{Side: side, Kind: EventScreenChanged, Outcome: name + "_ended"})
				}
			}
		}
		sideTick(&s.Reflect, "reflect")
		sideTick(&s.LightScreen, "light_screen")
		sideTick(&s.AuroraVeil, "aurora_veil")
		sideTick(&s.Tailwind, "tailwind")
	}
}
