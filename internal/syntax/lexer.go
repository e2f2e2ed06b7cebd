package syntax

import "github.com/alecthomas/participle/v2/lexer"

// FormulaLexer tokenizes the concrete syntax of spec.md 6. Keywords
// (forall, exists) are not their own token kind: like kanso-lang-kanso's
// KansoLexer (kanso-lang-kanso/grammar/lexer.go), they lex as plain
// Ident tokens and are matched by literal value in the grammar, which
// keeps the lexer itself small.
var FormulaLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Operator", `->|→|∀|∃|∧|∨|¬`, nil},
		{"Punctuation", `[(),.!&|]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
