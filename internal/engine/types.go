package engine

// Stat indexes the boostable attributes of a combatant.
type Stat int

const (
	Atk Stat = iota
	Def
	SpA
	SpD
	Spe
	Acc
	Eva
	statCount
)

var statNames = [statCount]string{"atk", "def", "spa", "spd", "spe", "accuracy", "evasion"}

func (s Stat) String() string { return statNames[s] }

// StatByName maps the content-table stat keys onto Stat indices.
func StatByName(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return 0, false
}

// Status is a major (persistent) status condition. A combatant holds at
// most one.
type Status string

const (
	StatusNone      Status = ""
	StatusBurn      Status = "burn"
	StatusPoison    Status = "poison"
	StatusToxic     Status = "toxic"
	StatusParalysis Status = "paralysis"
	StatusSleep     Status = "sleep"
	StatusFreeze    Status = "freeze"
)

// Weather covers the five battlefield weathers.
type Weather string

const (
	WeatherNone Weather = ""
	WeatherSun  Weather = "sun"
	WeatherRain Weather = "rain"
	WeatherSand Weather = "sandstorm"
	WeatherHail Weather = "hail"
	WeatherSnow Weather = "snow"
)

// Terrain covers the four field terrains.
type Terrain string

const (
	TerrainNone     Terrain = ""
	TerrainElectric Terrain = "electric"
	TerrainGrassy   Terrain = "grassy"
	TerrainMisty    Terrain = "misty"
	TerrainPsychic  Terrain = "psychic"
)

// ActionKind discriminates the three things a side can do with its turn.
type ActionKind string

const (
	ActionMove   ActionKind = "move"
	ActionSwitch ActionKind = "switch"
	ActionTera   ActionKind = "tera"
)

// Action is one side's choice for a turn. MoveIndex addresses the active
// combatant's move list; SwitchTo addresses the team. ActionTera
// terastallizes and then uses MoveIndex.
type Action struct {
	Kind      ActionKind
	MoveIndex int
	SwitchTo  int
}

// Switches resolve before any move of the same speed tier.
const switchPriority = 6

// Result names the terminal outcome of a battle.
type Result string

const (
	ResultOngoing Result = ""
	ResultSideA   Result = "p1"
	ResultSideB   Result = "p2"
	ResultTie     Result = "tie"
)
