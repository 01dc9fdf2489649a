package parser

import (
	"fmt"
	"strings"
)

// MapError takes a roster name and a participle error, and returns a
// human-friendly guidance message.
func MapError(name string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Ability"):
		return fmt.Errorf("roster %s: ability lines must be: Ability: <name>", name)
	case strings.Contains(msg, "Tera"):
		return fmt.Errorf("roster %s: tera lines must be: Tera Type: <type>", name)
	case strings.Contains(msg, "Dash"):
		return fmt.Errorf("roster %s: move lines must be: - <move name>", name)
	}
	return fmt.Errorf("roster %s: each member needs a \"Species @ Item\" header followed by ability, tera and move lines: %w", name, err)
}
