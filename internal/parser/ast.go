package parser

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
)

// TeamList represents a full roster in the export paste format:
//
//	Garchomp @ Rocky Helmet
//	Ability: Rough Skin
//	Tera Type: Steel
//	- Earthquake
//	- Dragon Claw
//
// Members are separated by blank lines.
type TeamList struct {
	Members []*MemberBlock `parser:"Newline* @@ ( Newline Newline+ @@ )* Newline*"`
}

// MemberBlock is one team member: a header line naming the species and
// optionally its held item, followed by ability, tera and move lines.
type MemberBlock struct {
	Species []string      `parser:"@Word+"`
	Item    []string      `parser:"( At @Word+ )?"`
	Lines   []*MemberLine `parser:"( Newline @@ )*"`
}

// MemberLine is any line below the header. Move lines start with a
// dash. Lines the engine has no use for (EVs, natures) parse into
// Other and are dropped.
type MemberLine struct {
	Ability []string `parser:"  'Ability' Colon @Word+"`
	Tera    []string `parser:"| 'Tera' 'Type' Colon @Word+"`
	Level   string   `parser:"| 'Level' Colon @Word"`
	Move    []string `parser:"| Dash @Word+"`
	Other   []string `parser:"| @Word+ ( Colon @Word+ )?"`
}

// Roster lowers the parsed tree into the engine's roster model. Names
// are kept as written; lookups normalize them.
func (t *TeamList) Roster(name string) *data.Roster {
	r := &data.Roster{Name: name}
	for _, m := range t.Members {
		member := data.RosterMember{
			Species: strings.Join(m.Species, " "),
			Item:    strings.Join(m.Item, " "),
		}
		for _, l := range m.Lines {
			switch {
			case l.Ability != nil:
				member.Ability = strings.Join(l.Ability, " ")
			case l.Tera != nil:
				member.TeraType = strings.Join(l.Tera, " ")
			case l.Level != "":
				if n, err := strconv.Atoi(l.Level); err == nil {
					member.Level = n
				}
			case l.Move != nil:
				member.Moves = append(member.Moves, strings.Join(l.Move, " "))
			}
		}
		r.Members = append(r.Members, member)
	}
	return r
}

// ParseString parses a team paste into a roster with the given name.
func ParseString(name, src string) (*data.Roster, error) {
	team, err := Build().ParseString(name, src+"\n")
	if err != nil {
		return nil, MapError(name, err)
	}
	return team.Roster(name), nil
}

// ParseFile parses a team paste file. The roster takes its name from
// the file's base name.
func ParseFile(path string) (*data.Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseString(name, string(raw))
}
