// Package syntax implements the concrete-syntax parser and resolver of
// spec.md 6: a participle grammar over FormulaLexer, followed by a
// resolution pass that interns names into a symtab.Table and decides
// variable/constant/function/relation identity per spec.md 6's default-
// variable rule. Grounded on kanso-lang-kanso's participle-based parser
// (kanso-lang-kanso/grammar/parser.go): participle.Build with a Lexer and
// Elide option, wrapped errors surfaced via participle.Error.
package syntax

import (
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/fologic/prover/internal/perr"
	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/term"
	"github.com/pkg/errors"
)

var (
	buildOnce     sync.Once
	formulaParser *participle.Parser[Formula]
	buildErr      error
)

func getParser() (*participle.Parser[Formula], error) {
	buildOnce.Do(func() {
		formulaParser, buildErr = participle.Build[Formula](
			participle.Lexer(FormulaLexer),
			participle.Elide("Whitespace"),
			participle.UseLookahead(2),
		)
	})
	return formulaParser, buildErr
}

// Parse parses src in the concrete syntax of spec.md 6 and resolves it
// into a term.Formula, interning every name it encounters into st.
// Parse errors from participle are wrapped with errors.Wrap to preserve
// the underlying participle.Error (position, message) in the cause
// chain; symbol table conflicts surface as perr errors unwrapped.
func Parse(src string, st *symtab.Table) (*term.Formula, error) {
	p, err := getParser()
	if err != nil {
		return nil, errors.Wrap(err, "syntax: build parser")
	}

	ast, err := p.ParseString("", src)
	if err != nil {
		return nil, errors.Wrap(err, "syntax: parse formula")
	}

	r := newResolver(st)
	f, err := r.formula(ast)
	if err != nil {
		if perr.AsKind(err, perr.KindOrArityConflict) {
			return nil, err
		}
		return nil, errors.Wrap(err, "syntax: resolve formula")
	}
	return f, nil
}
