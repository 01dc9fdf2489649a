package session

import (
	"strconv"
	"strings"
)

// ParsedInput represents the structured result of parsing a raw command
// string. The interactive format is:
//
//	move <slot> [tera]
//	switch <slot>
//	team | moves | field | log | help | quit
//
// Slots are 1-based on the wire and 0-based in Index.
type ParsedInput struct {
	Command string
	Index   int
	Tera    bool
}

// ParseInput parses a raw command string into a structured ParsedInput.
//
// Examples:
//
//	"move 1" → Command="move", Index=0
//	"move 2 tera" → Command="move", Index=1, Tera=true
//	"switch 3" → Command="switch", Index=2
//	"team" → Command="team"
func ParseInput(input string) ParsedInput {
	result := ParsedInput{Index: -1}

	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(tokens) == 0 {
		return result
	}

	result.Command = tokens[0]
	for _, tok := range tokens[1:] {
		if tok == "tera" {
			result.Tera = true
			continue
		}
		if n, err := strconv.Atoi(tok); err == nil {
			result.Index = n - 1
		}
	}
	return result
}
