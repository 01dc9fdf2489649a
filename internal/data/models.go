package data

// MoveCategory partitions moves into the three damage classes.
type MoveCategory string

const (
	Physical MoveCategory = "physical"
	Special  MoveCategory = "special"
	Status   MoveCategory = "status"
)

// Stat boost targets used by move and ability effects.
const (
	StatAtk = "atk"
	StatDef = "def"
	StatSpA = "spa"
	StatSpD = "spd"
	StatSpe = "spe"
	StatAcc = "accuracy"
	StatEva = "evasion"
)

// BaseStats holds a species' six base values.
type BaseStats struct {
	HP  int `yaml:"hp"`
	Atk int `yaml:"atk"`
	Def int `yaml:"def"`
	SpA int `yaml:"spa"`
	SpD int `yaml:"spd"`
	Spe int `yaml:"spe"`
}

// Species is one row of the species table.
type Species struct {
	Name  string    `yaml:"name"`
	Types []string  `yaml:"types"`
	Base  BaseStats `yaml:"base"`
	// Placeholder marks a row synthesized for an unknown id rather than
	// loaded from a table.
	Placeholder bool `yaml:"-"`
}

// MoveFlags carries the boolean properties effect handlers key on.
type MoveFlags struct {
	Contact bool `yaml:"contact"`
	Sound   bool `yaml:"sound"`
	Bypass  bool `yaml:"bypass"` // ignores accuracy checks entirely
}

// SecondaryEffect is an on-hit rider (status or boost) with a percent chance.
type SecondaryEffect struct {
	Chance int            `yaml:"chance"`
	Status string         `yaml:"status,omitempty"`
	Boosts map[string]int `yaml:"boosts,omitempty"`
	Self   bool           `yaml:"self,omitempty"` // boosts apply to the user
}

// Move is one row of the move table. Effect is an enum tag dispatched by
// the engine; unrecognized tags are ignored so content files can stay
// ahead of the engine.
type Move struct {
	Name        string           `yaml:"name"`
	Type        string           `yaml:"type"`
	Category    MoveCategory     `yaml:"category"`
	Power       int              `yaml:"power"`
	Accuracy    int              `yaml:"accuracy"` // 0 means never misses
	Priority    int              `yaml:"priority"`
	PP          int              `yaml:"pp"`
	Flags       MoveFlags        `yaml:"flags"`
	Effect      string           `yaml:"effect,omitempty"`
	Secondary   *SecondaryEffect `yaml:"secondary,omitempty"`
	Drain       int              `yaml:"drain,omitempty"`  // percent of damage dealt healed
	Recoil      int              `yaml:"recoil,omitempty"` // percent of damage dealt taken
	MultiHit    bool             `yaml:"multi_hit,omitempty"`
	Placeholder bool             `yaml:"-"`
}

// Move effect tags understood by the engine.
const (
	EffectStealthRock  = "stealth_rock"
	EffectSpikes       = "spikes"
	EffectToxicSpikes  = "toxic_spikes"
	EffectStickyWeb    = "sticky_web"
	EffectDefog        = "defog"
	EffectRapidSpin    = "rapid_spin"
	EffectReflect      = "reflect"
	EffectLightScreen  = "light_screen"
	EffectAuroraVeil   = "aurora_veil"
	EffectTailwind     = "tailwind"
	EffectTrickRoom    = "trick_room"
	EffectGravity      = "gravity"
	EffectWonderRoom   = "wonder_room"
	EffectMagicRoom    = "magic_room"
	EffectSunnyDay     = "sunny_day"
	EffectRainDance    = "rain_dance"
	EffectSandstorm    = "sandstorm"
	EffectHail         = "hail"
	EffectSnowscape    = "snowscape"
	EffectElectricTerr = "electric_terrain"
	EffectGrassyTerr   = "grassy_terrain"
	EffectMistyTerr    = "misty_terrain"
	EffectPsychicTerr  = "psychic_terrain"
	EffectSubstitute   = "substitute"
	EffectLeechSeed    = "leech_seed"
	EffectPerishSong   = "perish_song"
	EffectTaunt        = "taunt"
	EffectEncore       = "encore"
	EffectDisable      = "disable"
	EffectTorment      = "torment"
	EffectImprison     = "imprison"
	EffectProtect      = "protect"
	EffectRecover      = "recover"
	EffectRest         = "rest"
	EffectPartialTrap  = "partial_trap"
	EffectFlinch       = "flinch"
	EffectHaze         = "haze"
	EffectRoar         = "roar"
	EffectUTurn        = "pivot"
)

// Ability is one row of the ability table. Effect is an enum tag; the
// engine treats unknown tags as inert.
type Ability struct {
	Name        string `yaml:"name"`
	Effect      string `yaml:"effect"`
	Placeholder bool   `yaml:"-"`
}

// Ability effect tags understood by the engine.
const (
	AbilityIntimidate   = "intimidate"
	AbilityLevitate     = "levitate"
	AbilityRegenerator  = "regenerator"
	AbilityVoltAbsorb   = "volt_absorb"
	AbilityWaterAbsorb  = "water_absorb"
	AbilityFlashFire    = "flash_fire"
	AbilityMoldBreaker  = "mold_breaker"
	AbilityUnaware      = "unaware"
	AbilityMagicGuard   = "magic_guard"
	AbilityClearBody    = "clear_body"
	AbilityContrary     = "contrary"
	AbilityInfiltrator  = "infiltrator"
	AbilityTechnician   = "technician"
	AbilityAerilate     = "aerilate"
	AbilityPixilate     = "pixilate"
	AbilityRefrigerate  = "refrigerate"
	AbilityGalvanize    = "galvanize"
	AbilityRoughSkin    = "rough_skin"
	AbilityIronBarbs    = "iron_barbs"
	AbilityPrankster    = "prankster"
	AbilityGaleWings    = "gale_wings"
	AbilitySwiftSwim    = "swift_swim"
	AbilityChlorophyll  = "chlorophyll"
	AbilitySandRush     = "sand_rush"
	AbilitySlushRush    = "slush_rush"
	AbilityDrought      = "drought"
	AbilityDrizzle      = "drizzle"
	AbilitySandStream   = "sand_stream"
	AbilitySnowWarning  = "snow_warning"
	AbilityStatic       = "static"
	AbilityFlameBody    = "flame_body"
	AbilityGuts         = "guts"
	AbilitySturdy       = "sturdy"
	AbilityThickFat     = "thick_fat"
	AbilityPoisonHeal   = "poison_heal"
	AbilityLimber       = "limber"
	AbilityInsomnia     = "insomnia"
	AbilityTeravolt     = "teravolt"
	AbilityTurboblaze   = "turboblaze"
	AbilityHugePower    = "huge_power"
	AbilityAdaptability = "adaptability"
)

// Item is one row of the item table. Param covers effects that need a
// value, such as the boosted type of a type-enhancing item.
type Item struct {
	Name        string `yaml:"name"`
	Effect      string `yaml:"effect"`
	Param       string `yaml:"param,omitempty"`
	Placeholder bool   `yaml:"-"`
}

// Item effect tags understood by the engine.
const (
	ItemHeavyDutyBoots = "heavy_duty_boots"
	ItemFocusSash      = "focus_sash"
	ItemLifeOrb        = "life_orb"
	ItemChoiceBand     = "choice_band"
	ItemChoiceSpecs    = "choice_specs"
	ItemChoiceScarf    = "choice_scarf"
	ItemLeftovers      = "leftovers"
	ItemRockyHelmet    = "rocky_helmet"
	ItemLoadedDice     = "loaded_dice"
	ItemAssaultVest    = "assault_vest"
	ItemTypeBoost      = "type_boost"
	ItemExpertBelt     = "expert_belt"
)

// Format gates what a team may bring and which mechanics are live.
type Format struct {
	Name            string   `yaml:"name"`
	TeraAllowed     bool     `yaml:"tera_allowed"`
	TeamSize        int      `yaml:"team_size"`
	MaxTurns        int      `yaml:"max_turns"`
	BannedSpecies   []string `yaml:"banned_species"`
	BannedMoves     []string `yaml:"banned_moves"`
	BannedAbilities []string `yaml:"banned_abilities"`
	BannedItems     []string `yaml:"banned_items"`
	SleepClause     bool     `yaml:"sleep_clause"`
	SpeciesClause   bool     `yaml:"species_clause"`
}

// RosterMember is one team slot in a roster file. Level 0 means the
// format default of 100.
type RosterMember struct {
	Species  string   `yaml:"species"`
	Moves    []string `yaml:"moves"`
	Ability  string   `yaml:"ability,omitempty"`
	Item     string   `yaml:"item,omitempty"`
	TeraType string   `yaml:"tera_type,omitempty"`
	Level    int      `yaml:"level,omitempty"`
}

// Roster is a full team file.
type Roster struct {
	Name    string         `yaml:"name"`
	Members []RosterMember `yaml:"members"`
}
