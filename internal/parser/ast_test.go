package parser_test

import (
	"testing"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/parser"
)

const samplePaste = `Garchomp @ Rocky Helmet
Ability: Rough Skin
Tera Type: Steel
- Earthquake
- Dragon Claw
- Stone Edge
- Swords Dance

Pelipper @ Heavy-Duty Boots
Ability: Drizzle
- Hydro Pump
- Hurricane
- U-turn
- Roost
`

func TestParseFullPaste(t *testing.T) {
	roster, err := parser.ParseString("alpha", samplePaste)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if roster.Name != "alpha" {
		t.Errorf("Expected roster name alpha, got %s", roster.Name)
	}

	if len(roster.Members) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(roster.Members))
	}

	m := roster.Members[0]
	if m.Species != "Garchomp" {
		t.Errorf("Expected species Garchomp, got %s", m.Species)
	}
	if m.Item != "Rocky Helmet" {
		t.Errorf("Expected item Rocky Helmet, got %s", m.Item)
	}
	if m.Ability != "Rough Skin" {
		t.Errorf("Expected ability Rough Skin, got %s", m.Ability)
	}
	if m.TeraType != "Steel" {
		t.Errorf("Expected tera type Steel, got %s", m.TeraType)
	}
	if len(m.Moves) != 4 || m.Moves[3] != "Swords Dance" {
		t.Errorf("Unexpected moves: %v", m.Moves)
	}
}

func TestParseHeaderOnly(t *testing.T) {
	roster, err := parser.ParseString("solo", "Blissey\n- Seismic Toss\n")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	m := roster.Members[0]
	if m.Species != "Blissey" {
		t.Errorf("Expected species Blissey, got %s", m.Species)
	}
	if m.Item != "" {
		t.Errorf("Expected no item, got %s", m.Item)
	}
	if m.Ability != "" {
		t.Errorf("Expected no ability, got %s", m.Ability)
	}
}

func TestParseMultiWordNames(t *testing.T) {
	paste := "Iron Valiant @ Choice Specs\nAbility: Quark Drive\n- Moonblast\n"
	roster, err := parser.ParseString("ellis", paste)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	m := roster.Members[0]
	if m.Species != "Iron Valiant" {
		t.Errorf("Expected species Iron Valiant, got %s", m.Species)
	}
	if m.Item != "Choice Specs" {
		t.Errorf("Expected item Choice Specs, got %s", m.Item)
	}
	if m.Ability != "Quark Drive" {
		t.Errorf("Expected ability Quark Drive, got %s", m.Ability)
	}
}

func TestParseBlankLinesAroundPaste(t *testing.T) {
	paste := "\n\nWeavile @ Loaded Dice\n- Icicle Spear\n\n"
	roster, err := parser.ParseString("pad", paste)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if len(roster.Members) != 1 {
		t.Fatalf("Expected 1 member, got %d", len(roster.Members))
	}
}

func TestParseDetailLines(t *testing.T) {
	paste := `Garchomp @ Leftovers
Ability: Rough Skin
Level: 50
EVs: 252 Atk / 4 SpD / 252 Spe
Jolly Nature
- Earthquake
`
	roster, err := parser.ParseString("evs", paste)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	m := roster.Members[0]
	if m.Ability != "Rough Skin" {
		t.Errorf("Expected ability Rough Skin, got %s", m.Ability)
	}
	if m.Level != 50 {
		t.Errorf("Expected level 50, got %d", m.Level)
	}
	if len(m.Moves) != 1 || m.Moves[0] != "Earthquake" {
		t.Errorf("Unexpected moves: %v", m.Moves)
	}
}

func TestParseGarbageFails(t *testing.T) {
	if _, err := parser.ParseString("bad", "@ @ @\n"); err == nil {
		t.Fatal("Expected parse error for garbage input")
	}
}
