package data

// Built-in content tables. These cover a baseline competitive pool so the
// engine is usable with no data directory at all; YAML files layered on
// top replace or extend individual rows.

// TypeNames lists every battle type in canonical order.
var TypeNames = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// TypeChart maps attacking type to defending type for every non-neutral
// matchup. Missing entries are 1.0.
var TypeChart = map[string]map[string]float64{
	"normal":   {"rock": 0.5, "ghost": 0, "steel": 0.5},
	"fire":     {"fire": 0.5, "water": 0.5, "grass": 2, "ice": 2, "bug": 2, "rock": 0.5, "dragon": 0.5, "steel": 2},
	"water":    {"fire": 2, "water": 0.5, "grass": 0.5, "ground": 2, "rock": 2, "dragon": 0.5},
	"electric": {"water": 2, "electric": 0.5, "grass": 0.5, "ground": 0, "flying": 2, "dragon": 0.5},
	"grass":    {"fire": 0.5, "water": 2, "grass": 0.5, "poison": 0.5, "ground": 2, "flying": 0.5, "bug": 0.5, "rock": 2, "dragon": 0.5, "steel": 0.5},
	"ice":      {"fire": 0.5, "water": 0.5, "grass": 2, "ice": 0.5, "ground": 2, "flying": 2, "dragon": 2, "steel": 0.5},
	"fighting": {"normal": 2, "ice": 2, "poison": 0.5, "flying": 0.5, "psychic": 0.5, "bug": 0.5, "rock": 2, "ghost": 0, "dark": 2, "steel": 2, "fairy": 0.5},
	"poison":   {"grass": 2, "poison": 0.5, "ground": 0.5, "rock": 0.5, "ghost": 0.5, "steel": 0, "fairy": 2},
	"ground":   {"fire": 2, "electric": 2, "grass": 0.5, "poison": 2, "flying": 0, "bug": 0.5, "rock": 2, "steel": 2},
	"flying":   {"electric": 0.5, "grass": 2, "fighting": 2, "bug": 2, "rock": 0.5, "steel": 0.5},
	"psychic":  {"fighting": 2, "poison": 2, "psychic": 0.5, "dark": 0, "steel": 0.5},
	"bug":      {"fire": 0.5, "grass": 2, "fighting": 0.5, "poison": 0.5, "flying": 0.5, "psychic": 2, "ghost": 0.5, "dark": 2, "steel": 0.5, "fairy": 0.5},
	"rock":     {"fire": 2, "ice": 2, "fighting": 0.5, "ground": 0.5, "flying": 2, "bug": 2, "steel": 0.5},
	"ghost":    {"normal": 0, "psychic": 2, "ghost": 2, "dark": 0.5},
	"dragon":   {"dragon": 2, "steel": 0.5, "fairy": 0},
	"dark":     {"fighting": 0.5, "psychic": 2, "ghost": 2, "dark": 0.5, "fairy": 0.5},
	"steel":    {"fire": 0.5, "water": 0.5, "electric": 0.5, "ice": 2, "rock": 2, "steel": 0.5, "fairy": 2},
	"fairy":    {"fire": 0.5, "fighting": 2, "poison": 0.5, "dragon": 2, "dark": 2, "steel": 0.5},
}

// Effectiveness returns the combined multiplier of an attacking type
// against a set of defending types.
func Effectiveness(atkType string, defTypes []string) float64 {
	mult := 1.0
	row := TypeChart[atkType]
	for _, dt := range defTypes {
		if m, ok := row[dt]; ok {
			mult *= m
		}
	}
	return mult
}

var defaultSpecies = map[string]Species{
	"garchomp":   {Name: "Garchomp", Types: []string{"dragon", "ground"}, Base: BaseStats{HP: 108, Atk: 130, Def: 95, SpA: 80, SpD: 85, Spe: 102}},
	"heatran":    {Name: "Heatran", Types: []string{"fire", "steel"}, Base: BaseStats{HP: 91, Atk: 90, Def: 106, SpA: 130, SpD: 106, Spe: 77}},
	"charizard":  {Name: "Charizard", Types: []string{"fire", "flying"}, Base: BaseStats{HP: 78, Atk: 84, Def: 78, SpA: 109, SpD: 85, Spe: 100}},
	"rotomwash":  {Name: "Rotom-Wash", Types: []string{"electric", "water"}, Base: BaseStats{HP: 50, Atk: 65, Def: 107, SpA: 105, SpD: 107, Spe: 86}},
	"ferrothorn": {Name: "Ferrothorn", Types: []string{"grass", "steel"}, Base: BaseStats{HP: 74, Atk: 94, Def: 131, SpA: 54, SpD: 116, Spe: 20}},
	"gengar":     {Name: "Gengar", Types: []string{"ghost", "poison"}, Base: BaseStats{HP: 60, Atk: 65, Def: 60, SpA: 130, SpD: 75, Spe: 110}},
	"tyranitar":  {Name: "Tyranitar", Types: []string{"rock", "dark"}, Base: BaseStats{HP: 100, Atk: 134, Def: 110, SpA: 95, SpD: 100, Spe: 61}},
	"gliscor":    {Name: "Gliscor", Types: []string{"ground", "flying"}, Base: BaseStats{HP: 75, Atk: 95, Def: 125, SpA: 45, SpD: 75, Spe: 95}},
	"clefable":   {Name: "Clefable", Types: []string{"fairy"}, Base: BaseStats{HP: 95, Atk: 70, Def: 73, SpA: 95, SpD: 90, Spe: 60}},
	"dragonite":  {Name: "Dragonite", Types: []string{"dragon", "flying"}, Base: BaseStats{HP: 91, Atk: 134, Def: 95, SpA: 100, SpD: 100, Spe: 80}},
	"weavile":    {Name: "Weavile", Types: []string{"dark", "ice"}, Base: BaseStats{HP: 70, Atk: 120, Def: 65, SpA: 45, SpD: 85, Spe: 125}},
	"toxapex":    {Name: "Toxapex", Types: []string{"poison", "water"}, Base: BaseStats{HP: 50, Atk: 63, Def: 152, SpA: 53, SpD: 142, Spe: 35}},
	"excadrill":  {Name: "Excadrill", Types: []string{"ground", "steel"}, Base: BaseStats{HP: 110, Atk: 135, Def: 60, SpA: 50, SpD: 65, Spe: 88}},
	"pelipper":   {Name: "Pelipper", Types: []string{"water", "flying"}, Base: BaseStats{HP: 60, Atk: 50, Def: 100, SpA: 95, SpD: 70, Spe: 65}},
	"breloom":    {Name: "Breloom", Types: []string{"grass", "fighting"}, Base: BaseStats{HP: 60, Atk: 130, Def: 80, SpA: 60, SpD: 60, Spe: 70}},
	"talonflame": {Name: "Talonflame", Types: []string{"fire", "flying"}, Base: BaseStats{HP: 78, Atk: 81, Def: 71, SpA: 74, SpD: 69, Spe: 126}},
	"azumarill":  {Name: "Azumarill", Types: []string{"water", "fairy"}, Base: BaseStats{HP: 100, Atk: 50, Def: 80, SpA: 60, SpD: 80, Spe: 50}},
	"alakazam":   {Name: "Alakazam", Types: []string{"psychic"}, Base: BaseStats{HP: 55, Atk: 50, Def: 45, SpA: 135, SpD: 95, Spe: 120}},
	"scizor":     {Name: "Scizor", Types: []string{"bug", "steel"}, Base: BaseStats{HP: 70, Atk: 130, Def: 100, SpA: 55, SpD: 80, Spe: 65}},
	"blissey":    {Name: "Blissey", Types: []string{"normal"}, Base: BaseStats{HP: 255, Atk: 10, Def: 10, SpA: 75, SpD: 135, Spe: 55}},
}

var defaultMoves = map[string]Move{
	"earthquake":      {Name: "Earthquake", Type: "ground", Category: Physical, Power: 100, Accuracy: 100, PP: 10},
	"dragonclaw":      {Name: "Dragon Claw", Type: "dragon", Category: Physical, Power: 80, Accuracy: 100, PP: 15, Flags: MoveFlags{Contact: true}},
	"outrage":         {Name: "Outrage", Type: "dragon", Category: Physical, Power: 120, Accuracy: 100, PP: 10, Flags: MoveFlags{Contact: true}},
	"flamethrower":    {Name: "Flamethrower", Type: "fire", Category: Special, Power: 90, Accuracy: 100, PP: 15, Secondary: &SecondaryEffect{Chance: 10, Status: "burn"}},
	"fireblast":       {Name: "Fire Blast", Type: "fire", Category: Special, Power: 110, Accuracy: 85, PP: 5, Secondary: &SecondaryEffect{Chance: 10, Status: "burn"}},
	"flareblitz":      {Name: "Flare Blitz", Type: "fire", Category: Physical, Power: 120, Accuracy: 100, PP: 15, Flags: MoveFlags{Contact: true}, Recoil: 33, Secondary: &SecondaryEffect{Chance: 10, Status: "burn"}},
	"surf":            {Name: "Surf", Type: "water", Category: Special, Power: 90, Accuracy: 100, PP: 15},
	"hydropump":       {Name: "Hydro Pump", Type: "water", Category: Special, Power: 110, Accuracy: 80, PP: 5},
	"aquajet":         {Name: "Aqua Jet", Type: "water", Category: Physical, Power: 40, Accuracy: 100, PP: 20, Priority: 1, Flags: MoveFlags{Contact: true}},
	"thunderbolt":     {Name: "Thunderbolt", Type: "electric", Category: Special, Power: 90, Accuracy: 100, PP: 15, Secondary: &SecondaryEffect{Chance: 10, Status: "paralysis"}},
	"thunder":         {Name: "Thunder", Type: "electric", Category: Special, Power: 110, Accuracy: 70, PP: 10, Secondary: &SecondaryEffect{Chance: 30, Status: "paralysis"}},
	"voltswitch":      {Name: "Volt Switch", Type: "electric", Category: Special, Power: 70, Accuracy: 100, PP: 20, Effect: EffectUTurn},
	"gigadrain":       {Name: "Giga Drain", Type: "grass", Category: Special, Power: 75, Accuracy: 100, PP: 10, Drain: 50},
	"bulletseed":      {Name: "Bullet Seed", Type: "grass", Category: Physical, Power: 25, Accuracy: 100, PP: 30, MultiHit: true},
	"powerwhip":       {Name: "Power Whip", Type: "grass", Category: Physical, Power: 120, Accuracy: 85, PP: 10, Flags: MoveFlags{Contact: true}},
	"icebeam":         {Name: "Ice Beam", Type: "ice", Category: Special, Power: 90, Accuracy: 100, PP: 10, Secondary: &SecondaryEffect{Chance: 10, Status: "freeze"}},
	"blizzard":        {Name: "Blizzard", Type: "ice", Category: Special, Power: 110, Accuracy: 70, PP: 5, Secondary: &SecondaryEffect{Chance: 10, Status: "freeze"}},
	"iciclespear":     {Name: "Icicle Spear", Type: "ice", Category: Physical, Power: 25, Accuracy: 100, PP: 30, MultiHit: true},
	"closecombat":     {Name: "Close Combat", Type: "fighting", Category: Physical, Power: 120, Accuracy: 100, PP: 5, Flags: MoveFlags{Contact: true}, Secondary: &SecondaryEffect{Chance: 100, Self: true, Boosts: map[string]int{StatDef: -1, StatSpD: -1}}},
	"machpunch":       {Name: "Mach Punch", Type: "fighting", Category: Physical, Power: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: MoveFlags{Contact: true}},
	"sludgebomb":      {Name: "Sludge Bomb", Type: "poison", Category: Special, Power: 90, Accuracy: 100, PP: 10, Secondary: &SecondaryEffect{Chance: 30, Status: "poison"}},
	"gunkshot":        {Name: "Gunk Shot", Type: "poison", Category: Physical, Power: 120, Accuracy: 80, PP: 5, Secondary: &SecondaryEffect{Chance: 30, Status: "poison"}},
	"bravebird":       {Name: "Brave Bird", Type: "flying", Category: Physical, Power: 120, Accuracy: 100, PP: 15, Flags: MoveFlags{Contact: true}, Recoil: 33},
	"hurricane":       {Name: "Hurricane", Type: "flying", Category: Special, Power: 110, Accuracy: 70, PP: 10, Secondary: &SecondaryEffect{Chance: 30, Status: "confusion"}},
	"psychic":         {Name: "Psychic", Type: "psychic", Category: Special, Power: 90, Accuracy: 100, PP: 10, Secondary: &SecondaryEffect{Chance: 10, Boosts: map[string]int{StatSpD: -1}}},
	"uturn":           {Name: "U-turn", Type: "bug", Category: Physical, Power: 70, Accuracy: 100, PP: 20, Flags: MoveFlags{Contact: true}, Effect: EffectUTurn},
	"rockslide":       {Name: "Rock Slide", Type: "rock", Category: Physical, Power: 75, Accuracy: 90, PP: 10, Secondary: &SecondaryEffect{Chance: 30, Status: "flinch"}},
	"stoneedge":       {Name: "Stone Edge", Type: "rock", Category: Physical, Power: 100, Accuracy: 80, PP: 5},
	"rockblast":       {Name: "Rock Blast", Type: "rock", Category: Physical, Power: 25, Accuracy: 90, PP: 10, MultiHit: true},
	"shadowball":      {Name: "Shadow Ball", Type: "ghost", Category: Special, Power: 80, Accuracy: 100, PP: 15, Secondary: &SecondaryEffect{Chance: 20, Boosts: map[string]int{StatSpD: -1}}},
	"shadowsneak":     {Name: "Shadow Sneak", Type: "ghost", Category: Physical, Power: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: MoveFlags{Contact: true}},
	"dracometeor":     {Name: "Draco Meteor", Type: "dragon", Category: Special, Power: 130, Accuracy: 90, PP: 5, Secondary: &SecondaryEffect{Chance: 100, Self: true, Boosts: map[string]int{StatSpA: -2}}},
	"knockoff":        {Name: "Knock Off", Type: "dark", Category: Physical, Power: 65, Accuracy: 100, PP: 20, Flags: MoveFlags{Contact: true}},
	"suckerpunch":     {Name: "Sucker Punch", Type: "dark", Category: Physical, Power: 70, Accuracy: 100, PP: 5, Priority: 1, Flags: MoveFlags{Contact: true}},
	"ironhead":        {Name: "Iron Head", Type: "steel", Category: Physical, Power: 80, Accuracy: 100, PP: 15, Flags: MoveFlags{Contact: true}, Secondary: &SecondaryEffect{Chance: 30, Status: "flinch"}},
	"bulletpunch":     {Name: "Bullet Punch", Type: "steel", Category: Physical, Power: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: MoveFlags{Contact: true}},
	"moonblast":       {Name: "Moonblast", Type: "fairy", Category: Special, Power: 95, Accuracy: 100, PP: 15, Secondary: &SecondaryEffect{Chance: 30, Boosts: map[string]int{StatSpA: -1}}},
	"playrough":       {Name: "Play Rough", Type: "fairy", Category: Physical, Power: 90, Accuracy: 90, PP: 10, Flags: MoveFlags{Contact: true}, Secondary: &SecondaryEffect{Chance: 10, Boosts: map[string]int{StatAtk: -1}}},
	"extremespeed":    {Name: "Extreme Speed", Type: "normal", Category: Physical, Power: 80, Accuracy: 100, PP: 5, Priority: 2, Flags: MoveFlags{Contact: true}},
	"bodyslam":        {Name: "Body Slam", Type: "normal", Category: Physical, Power: 85, Accuracy: 100, PP: 15, Flags: MoveFlags{Contact: true}, Secondary: &SecondaryEffect{Chance: 30, Status: "paralysis"}},
	"hypervoice":      {Name: "Hyper Voice", Type: "normal", Category: Special, Power: 90, Accuracy: 100, PP: 10, Flags: MoveFlags{Sound: true}},
	"boomburst":       {Name: "Boomburst", Type: "normal", Category: Special, Power: 140, Accuracy: 100, PP: 10, Flags: MoveFlags{Sound: true}},
	"struggle":        {Name: "Struggle", Type: "", Category: Physical, Power: 50, Accuracy: 0, PP: 1, Flags: MoveFlags{Contact: true, Bypass: true}, Recoil: 25},
	"toxic":           {Name: "Toxic", Type: "poison", Category: Status, Accuracy: 90, PP: 10, Secondary: &SecondaryEffect{Chance: 100, Status: "toxic"}},
	"willowisp":       {Name: "Will-O-Wisp", Type: "fire", Category: Status, Accuracy: 85, PP: 15, Secondary: &SecondaryEffect{Chance: 100, Status: "burn"}},
	"thunderwave":     {Name: "Thunder Wave", Type: "electric", Category: Status, Accuracy: 90, PP: 20, Secondary: &SecondaryEffect{Chance: 100, Status: "paralysis"}},
	"spore":           {Name: "Spore", Type: "grass", Category: Status, Accuracy: 100, PP: 15, Secondary: &SecondaryEffect{Chance: 100, Status: "sleep"}},
	"hypnosis":        {Name: "Hypnosis", Type: "psychic", Category: Status, Accuracy: 60, PP: 20, Secondary: &SecondaryEffect{Chance: 100, Status: "sleep"}},
	"confuseray":      {Name: "Confuse Ray", Type: "ghost", Category: Status, Accuracy: 100, PP: 10, Secondary: &SecondaryEffect{Chance: 100, Status: "confusion"}},
	"swordsdance":     {Name: "Swords Dance", Type: "normal", Category: Status, PP: 20, Secondary: &SecondaryEffect{Chance: 100, Self: true, Boosts: map[string]int{StatAtk: 2}}},
	"nastyplot":       {Name: "Nasty Plot", Type: "dark", Category: Status, PP: 20, Secondary: &SecondaryEffect{Chance: 100, Self: true, Boosts: map[string]int{StatSpA: 2}}},
	"dragondance":     {Name: "Dragon Dance", Type: "dragon", Category: Status, PP: 20, Secondary: &SecondaryEffect{Chance: 100, Self: true, Boosts: map[string]int{StatAtk: 1, StatSpe: 1}}},
	"irondefense":     {Name: "Iron Defense", Type: "steel", Category: Status, PP: 15, Secondary: &SecondaryEffect{Chance: 100, Self: true, Boosts: map[string]int{StatDef: 2}}},
	"stealthrock":     {Name: "Stealth Rock", Type: "rock", Category: Status, PP: 20, Effect: EffectStealthRock},
	"spikes":          {Name: "Spikes", Type: "ground", Category: Status, PP: 20, Effect: EffectSpikes},
	"toxicspikes":     {Name: "Toxic Spikes", Type: "poison", Category: Status, PP: 20, Effect: EffectToxicSpikes},
	"stickyweb":       {Name: "Sticky Web", Type: "bug", Category: Status, PP: 20, Effect: EffectStickyWeb},
	"defog":           {Name: "Defog", Type: "flying", Category: Status, Accuracy: 100, PP: 15, Effect: EffectDefog},
	"rapidspin":       {Name: "Rapid Spin", Type: "normal", Category: Physical, Power: 50, Accuracy: 100, PP: 40, Flags: MoveFlags{Contact: true}, Effect: EffectRapidSpin, Secondary: &SecondaryEffect{Chance: 100, Self: true, Boosts: map[string]int{StatSpe: 1}}},
	"reflect":         {Name: "Reflect", Type: "psychic", Category: Status, PP: 20, Effect: EffectReflect},
	"lightscreen":     {Name: "Light Screen", Type: "psychic", Category: Status, PP: 30, Effect: EffectLightScreen},
	"auroraveil":      {Name: "Aurora Veil", Type: "ice", Category: Status, PP: 20, Effect: EffectAuroraVeil},
	"tailwind":        {Name: "Tailwind", Type: "flying", Category: Status, PP: 15, Effect: EffectTailwind},
	"trickroom":       {Name: "Trick Room", Type: "psychic", Category: Status, Priority: -7, PP: 5, Effect: EffectTrickRoom},
	"gravity":         {Name: "Gravity", Type: "psychic", Category: Status, PP: 5, Effect: EffectGravity},
	"wonderroom":      {Name: "Wonder Room", Type: "psychic", Category: Status, PP: 10, Effect: EffectWonderRoom},
	"magicroom":       {Name: "Magic Room", Type: "psychic", Category: Status, PP: 10, Effect: EffectMagicRoom},
	"sunnyday":        {Name: "Sunny Day", Type: "fire", Category: Status, PP: 5, Effect: EffectSunnyDay},
	"raindance":       {Name: "Rain Dance", Type: "water", Category: Status, PP: 5, Effect: EffectRainDance},
	"sandstorm":       {Name: "Sandstorm", Type: "rock", Category: Status, PP: 10, Effect: EffectSandstorm},
	"hail":            {Name: "Hail", Type: "ice", Category: Status, PP: 10, Effect: EffectHail},
	"snowscape":       {Name: "Snowscape", Type: "ice", Category: Status, PP: 10, Effect: EffectSnowscape},
	"electricterrain": {Name: "Electric Terrain", Type: "electric", Category: Status, PP: 10, Effect: EffectElectricTerr},
	"grassyterrain":   {Name: "Grassy Terrain", Type: "grass", Category: Status, PP: 10, Effect: EffectGrassyTerr},
	"mistyterrain":    {Name: "Misty Terrain", Type: "fairy", Category: Status, PP: 10, Effect: EffectMistyTerr},
	"psychicterrain":  {Name: "Psychic Terrain", Type: "psychic", Category: Status, PP: 10, Effect: EffectPsychicTerr},
	"substitute":      {Name: "Substitute", Type: "normal", Category: Status, PP: 10, Effect: EffectSubstitute},
	"leechseed":       {Name: "Leech Seed", Type: "grass", Category: Status, Accuracy: 90, PP: 10, Effect: EffectLeechSeed},
	"perishsong":      {Name: "Perish Song", Type: "normal", Category: Status, PP: 5, Flags: MoveFlags{Sound: true, Bypass: true}, Effect: EffectPerishSong},
	"taunt":           {Name: "Taunt", Type: "dark", Category: Status, Accuracy: 100, PP: 20, Effect: EffectTaunt},
	"encore":          {Name: "Encore", Type: "normal", Category: Status, Accuracy: 100, PP: 5, Effect: EffectEncore},
	"disable":         {Name: "Disable", Type: "normal", Category: Status, Accuracy: 100, PP: 20, Effect: EffectDisable},
	"torment":         {Name: "Torment", Type: "dark", Category: Status, Accuracy: 100, PP: 15, Effect: EffectTorment},
	"imprison":        {Name: "Imprison", Type: "psychic", Category: Status, PP: 10, Effect: EffectImprison},
	"protect":         {Name: "Protect", Type: "normal", Category: Status, Priority: 4, PP: 10, Effect: EffectProtect},
	"recover":         {Name: "Recover", Type: "normal", Category: Status, PP: 5, Effect: EffectRecover},
	"roost":           {Name: "Roost", Type: "flying", Category: Status, PP: 5, Effect: EffectRecover},
	"rest":            {Name: "Rest", Type: "psychic", Category: Status, PP: 5, Effect: EffectRest},
	"whirlpool":       {Name: "Whirlpool", Type: "water", Category: Special, Power: 35, Accuracy: 85, PP: 15, Effect: EffectPartialTrap},
	"firespin":        {Name: "Fire Spin", Type: "fire", Category: Special, Power: 35, Accuracy: 85, PP: 15, Effect: EffectPartialTrap},
	"fakeout":         {Name: "Fake Out", Type: "normal", Category: Physical, Power: 40, Accuracy: 100, Priority: 3, PP: 10, Flags: MoveFlags{Contact: true}, Secondary: &SecondaryEffect{Chance: 100, Status: "flinch"}},
	"haze":            {Name: "Haze", Type: "ice", Category: Status, PP: 30, Effect: EffectHaze},
	"roar":            {Name: "Roar", Type: "normal", Category: Status, Priority: -6, PP: 20, Flags: MoveFlags{Sound: true, Bypass: true}, Effect: EffectRoar},
}

var defaultAbilities = map[string]Ability{
	"intimidate":    {Name: "Intimidate", Effect: AbilityIntimidate},
	"levitate":      {Name: "Levitate", Effect: AbilityLevitate},
	"regenerator":   {Name: "Regenerator", Effect: AbilityRegenerator},
	"voltabsorb":    {Name: "Volt Absorb", Effect: AbilityVoltAbsorb},
	"waterabsorb":   {Name: "Water Absorb", Effect: AbilityWaterAbsorb},
	"flashfire":     {Name: "Flash Fire", Effect: AbilityFlashFire},
	"moldbreaker":   {Name: "Mold Breaker", Effect: AbilityMoldBreaker},
	"teravolt":      {Name: "Teravolt", Effect: AbilityMoldBreaker},
	"turboblaze":    {Name: "Turboblaze", Effect: AbilityMoldBreaker},
	"unaware":       {Name: "Unaware", Effect: AbilityUnaware},
	"magicguard":    {Name: "Magic Guard", Effect: AbilityMagicGuard},
	"clearbody":     {Name: "Clear Body", Effect: AbilityClearBody},
	"whitesmoke":    {Name: "White Smoke", Effect: AbilityClearBody},
	"fullmetalbody": {Name: "Full Metal Body", Effect: AbilityClearBody},
	"contrary":      {Name: "Contrary", Effect: AbilityContrary},
	"infiltrator":   {Name: "Infiltrator", Effect: AbilityInfiltrator},
	"technician":    {Name: "Technician", Effect: AbilityTechnician},
	"aerilate":      {Name: "Aerilate", Effect: AbilityAerilate},
	"pixilate":      {Name: "Pixilate", Effect: AbilityPixilate},
	"refrigerate":   {Name: "Refrigerate", Effect: AbilityRefrigerate},
	"galvanize":     {Name: "Galvanize", Effect: AbilityGalvanize},
	"roughskin":     {Name: "Rough Skin", Effect: AbilityRoughSkin},
	"ironbarbs":     {Name: "Iron Barbs", Effect: AbilityIronBarbs},
	"prankster":     {Name: "Prankster", Effect: AbilityPrankster},
	"galewings":     {Name: "Gale Wings", Effect: AbilityGaleWings},
	"swiftswim":     {Name: "Swift Swim", Effect: AbilitySwiftSwim},
	"chlorophyll":   {Name: "Chlorophyll", Effect: AbilityChlorophyll},
	"sandrush":      {Name: "Sand Rush", Effect: AbilitySandRush},
	"slushrush":     {Name: "Slush Rush", Effect: AbilitySlushRush},
	"drought":       {Name: "Drought", Effect: AbilityDrought},
	"drizzle":       {Name: "Drizzle", Effect: AbilityDrizzle},
	"sandstream":    {Name: "Sand Stream", Effect: AbilitySandStream},
	"snowwarning":   {Name: "Snow Warning", Effect: AbilitySnowWarning},
	"static":        {Name: "Static", Effect: AbilityStatic},
	"flamebody":     {Name: "Flame Body", Effect: AbilityFlameBody},
	"guts":          {Name: "Guts", Effect: AbilityGuts},
	"sturdy":        {Name: "Sturdy", Effect: AbilitySturdy},
	"thickfat":      {Name: "Thick Fat", Effect: AbilityThickFat},
	"poisonheal":    {Name: "Poison Heal", Effect: AbilityPoisonHeal},
	"limber":        {Name: "Limber", Effect: AbilityLimber},
	"insomnia":      {Name: "Insomnia", Effect: AbilityInsomnia},
	"hugepower":     {Name: "Huge Power", Effect: AbilityHugePower},
	"adaptability":  {Name: "Adaptability", Effect: AbilityAdaptability},
}

var defaultItems = map[string]Item{
	"heavydutyboots": {Name: "Heavy-Duty Boots", Effect: ItemHeavyDutyBoots},
	"focussash":      {Name: "Focus Sash", Effect: ItemFocusSash},
	"lifeorb":        {Name: "Life Orb", Effect: ItemLifeOrb},
	"choiceband":     {Name: "Choice Band", Effect: ItemChoiceBand},
	"choicespecs":    {Name: "Choice Specs", Effect: ItemChoiceSpecs},
	"choicescarf":    {Name: "Choice Scarf", Effect: ItemChoiceScarf},
	"leftovers":      {Name: "Leftovers", Effect: ItemLeftovers},
	"rockyhelmet":    {Name: "Rocky Helmet", Effect: ItemRockyHelmet},
	"loadeddice":     {Name: "Loaded Dice", Effect: ItemLoadedDice},
	"assaultvest":    {Name: "Assault Vest", Effect: ItemAssaultVest},
	"expertbelt":     {Name: "Expert Belt", Effect: ItemExpertBelt},
	"charcoal":       {Name: "Charcoal", Effect: ItemTypeBoost, Param: "fire"},
	"mysticwater":    {Name: "Mystic Water", Effect: ItemTypeBoost, Param: "water"},
	"magnet":         {Name: "Magnet", Effect: ItemTypeBoost, Param: "electric"},
	"miracleseed":    {Name: "Miracle Seed", Effect: ItemTypeBoost, Param: "grass"},
	"nevermeltice":   {Name: "Never-Melt Ice", Effect: ItemTypeBoost, Param: "ice"},
	"blackbelt":      {Name: "Black Belt", Effect: ItemTypeBoost, Param: "fighting"},
	"softsand":       {Name: "Soft Sand", Effect: ItemTypeBoost, Param: "ground"},
	"sharpbeak":      {Name: "Sharp Beak", Effect: ItemTypeBoost, Param: "flying"},
	"dragonfang":     {Name: "Dragon Fang", Effect: ItemTypeBoost, Param: "dragon"},
}

var defaultFormats = map[string]Format{
	"gen9ou": {
		Name:          "gen9ou",
		TeraAllowed:   true,
		TeamSize:      6,
		MaxTurns:      200,
		BannedMoves:   []string{"lastrespects", "shedtail"},
		BannedItems:   []string{"kingsrock"},
		SleepClause:   true,
		SpeciesClause: true,
	},
	"gen9ubers": {
		Name:        "gen9ubers",
		TeraAllowed: true,
		TeamSize:    6,
		MaxTurns:    200,
	},
	"classic": {
		Name:        "classic",
		TeraAllowed: false,
		TeamSize:    6,
		MaxTurns:    200,
	},
}
