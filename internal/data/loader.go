package data

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Dex is the read-only content layer: species, moves, abilities, items
// and formats, merged from the built-in tables and any number of data
// directories. Directories earlier in the list win on key conflicts.
type Dex struct {
	species   map[string]Species
	moves     map[string]Move
	abilities map[string]Ability
	items     map[string]Item
	formats   map[string]Format
}

// NewDex returns a Dex holding only the built-in tables.
func NewDex() *Dex {
	d := &Dex{
		species:   make(map[string]Species, len(defaultSpecies)),
		moves:     make(map[string]Move, len(defaultMoves)),
		abilities: make(map[string]Ability, len(defaultAbilities)),
		items:     make(map[string]Item, len(defaultItems)),
		formats:   make(map[string]Format, len(defaultFormats)),
	}
	for k, v := range defaultSpecies {
		d.species[k] = v
	}
	for k, v := range defaultMoves {
		d.moves[k] = v
	}
	for k, v := range defaultAbilities {
		d.abilities[k] = v
	}
	for k, v := range defaultItems {
		d.items[k] = v
	}
	for k, v := range defaultFormats {
		d.formats[k] = v
	}
	return d
}

// LoadDirs layers content files from the given directories over the
// built-in tables. Later directories override earlier ones. Missing
// directories and missing files are not errors.
func LoadDirs(dataDirs []string) (*Dex, error) {
	d := NewDex()
	for _, dir := range dataDirs {
		if err := d.mergeDir(dir); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dex) mergeDir(dir string) error {
	if err := mergeFile(filepath.Join(dir, "species.yaml"), d.species); err != nil {
		return err
	}
	if err := mergeFile(filepath.Join(dir, "moves.yaml"), d.moves); err != nil {
		return err
	}
	if err := mergeFile(filepath.Join(dir, "abilities.yaml"), d.abilities); err != nil {
		return err
	}
	if err := mergeFile(filepath.Join(dir, "items.yaml"), d.items); err != nil {
		return err
	}
	formats := filepath.Join(dir, "formats")
	entries, err := os.ReadDir(formats)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		var f Format
		if err := decodeFile(filepath.Join(formats, e.Name()), &f); err != nil {
			return err
		}
		d.formats[NormalizeID(f.Name)] = f
	}
	return nil
}

func mergeFile[T any](path string, into map[string]T) error {
	loaded := make(map[string]T)
	if err := decodeFile(path, &loaded); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for k, v := range loaded {
		into[NormalizeID(k)] = v
	}
	return nil
}

func decodeFile(path string, target any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Species resolves a species id. Unknown ids produce a logged placeholder
// with neutral stats so a battle can still run.
func (d *Dex) Species(name string) Species {
	id := NormalizeID(name)
	if s, ok := d.species[id]; ok {
		return s
	}
	log.Warn().Str("species", name).Msg("unknown species, using placeholder")
	return Species{
		Name:        name,
		Types:       []string{"normal"},
		Base:        BaseStats{HP: 80, Atk: 80, Def: 80, SpA: 80, SpD: 80, Spe: 80},
		Placeholder: true,
	}
}

// Move resolves a move id. Unknown ids produce a logged placeholder
// (typeless 50 power physical hit).
func (d *Dex) Move(name string) Move {
	id := NormalizeID(name)
	if m, ok := d.moves[id]; ok {
		return m
	}
	log.Warn().Str("move", name).Msg("unknown move, using placeholder")
	return Move{
		Name:        name,
		Type:        "",
		Category:    Physical,
		Power:       50,
		Accuracy:    100,
		PP:          10,
		Placeholder: true,
	}
}

// Ability resolves an ability id. Unknown ids are inert.
func (d *Dex) Ability(name string) Ability {
	if name == "" {
		return Ability{}
	}
	id := NormalizeID(name)
	if a, ok := d.abilities[id]; ok {
		return a
	}
	log.Warn().Str("ability", name).Msg("unknown ability, treating as inert")
	return Ability{Name: name, Placeholder: true}
}

// Item resolves an item id. Unknown ids are inert.
func (d *Dex) Item(name string) Item {
	if name == "" {
		return Item{}
	}
	id := NormalizeID(name)
	if it, ok := d.items[id]; ok {
		return it
	}
	log.Warn().Str("item", name).Msg("unknown item, treating as inert")
	return Item{Name: name, Placeholder: true}
}

// Format resolves a format id.
func (d *Dex) Format(name string) (Format, error) {
	if f, ok := d.formats[NormalizeID(name)]; ok {
		return f, nil
	}
	return Format{}, fmt.Errorf("unknown format %q", name)
}

// Formats lists the known format ids.
func (d *Dex) Formats() []string {
	out := make([]string, 0, len(d.formats))
	for k := range d.formats {
		out = append(out, k)
	}
	return out
}

// LoadRoster reads a team file.
func LoadRoster(path string) (*Roster, error) {
	var r Roster
	if err := decodeFile(path, &r); err != nil {
		return nil, err
	}
	if len(r.Members) == 0 {
		return nil, fmt.Errorf("roster %s has no members", path)
	}
	return &r, nil
}

// ValidateRoster checks a roster against a format's bans and clauses.
func (d *Dex) ValidateRoster(r *Roster, f Format) error {
	if f.TeamSize > 0 && len(r.Members) > f.TeamSize {
		return fmt.Errorf("roster %s has %d members, format %s allows %d", r.Name, len(r.Members), f.Name, f.TeamSize)
	}
	seen := make(map[string]bool)
	for _, m := range r.Members {
		id := NormalizeID(m.Species)
		if f.SpeciesClause && seen[id] {
			return fmt.Errorf("species clause: duplicate %s", m.Species)
		}
		seen[id] = true
		if containsID(f.BannedSpecies, id) {
			return fmt.Errorf("%s is banned in %s", m.Species, f.Name)
		}
		if m.Ability != "" && containsID(f.BannedAbilities, NormalizeID(m.Ability)) {
			return fmt.Errorf("ability %s is banned in %s", m.Ability, f.Name)
		}
		if m.Item != "" && containsID(f.BannedItems, NormalizeID(m.Item)) {
			return fmt.Errorf("item %s is banned in %s", m.Item, f.Name)
		}
		for _, mv := range m.Moves {
			if containsID(f.BannedMoves, NormalizeID(mv)) {
				return fmt.Errorf("move %s is banned in %s", mv, f.Name)
			}
		}
		if m.TeraType != "" && !f.TeraAllowed {
			return fmt.Errorf("terastallization is not allowed in %s", f.Name)
		}
	}
	return nil
}

func containsID(list []string, id string) bool {
	for _, v := range list {
		if NormalizeID(v) == id {
			return true
		}
	}
	return false
}
