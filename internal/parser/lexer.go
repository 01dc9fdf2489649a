package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes the team export format. Lines matter, so newlines are
// real tokens instead of elided whitespace.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "At", Pattern: `@`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Word", Pattern: `[^\s@:]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Build creates the team parser based on the struct tags in `ast.go`
func Build() *participle.Parser[TeamList] {
	return participle.MustBuild[TeamList](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
	)
}
