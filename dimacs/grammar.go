// SPDX-License-Identifier: MIT
// File: grammar.go
// Role: participle lexer and grammar for DIMACS graph files.

package dimacs

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var dimacsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `c\b[^\n]*`},
	{Name: "Keyword", Pattern: `[pen]\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var dimacsParser = participle.MustBuild[document](
	participle.Lexer(dimacsLexer),
	participle.Elide("Comment", "Whitespace"),
)

type document struct {
	Lines []*line `@@*`
}

type line struct {
	Pos lexer.Position

	Problem *problemLine `  "p" @@`
	Edge    *edgeLine    `| "e" @@`
	Node    *nodeLine    `| "n" @@`
}

type problemLine struct {
	Format string `@Ident`
	Nodes  int    `@Number`
	Edges  int    `@Number`
}

type edgeLine struct {
	U int `@Number`
	V int `@Number`
}

type nodeLine struct {
	U      int     `@Number`
	Weight float64 `@Number`
}
