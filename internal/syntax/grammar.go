package syntax

// Grammar for the concrete syntax of spec.md 6, in decreasing precedence:
// Negation (!/¬), Conjunction (&/∧), Disjunction (|/∨), Implication
// (->/→, right-associative), then quantifiers (forall/∀, exists/∃),
// which bind loosest. Per spec.md 9's resolved ambiguity, ∨ binds looser
// than ∧ (the "later, standard" precedence).
//
// Field shapes (left @@, trailing ops list, optional/repeat groups via
// [ ]/{ }) follow kanso-lang-kanso's participle grammar
// (kanso-lang-kanso/grammar/grammar.go's BinaryExpr/PostfixExpr).

// Formula is either a quantified formula or a plain (quantifier-free at
// this level) implication.
type Formula struct {
	Quantified *Quantified  `  @@`
	Plain      *Implication `| @@`
}

// Quantified is ("forall"|"exists") var+ "." Formula. The bound
// variables are resolved against the identifier they name, not against
// the default-variable regex: an explicit binder always introduces a
// variable regardless of its spelling.
type Quantified struct {
	Kind string   `@("forall" | "exists" | "∀" | "∃")`
	Vars []string `@Ident { @Ident }`
	Body *Formula `"." @@`
}

// Implication right-associates.
type Implication struct {
	Left  *Disjunction `@@`
	Right *Implication `[ ("->" | "→") @@ ]`
}

// Disjunction left-associates and binds looser than Conjunction.
type Disjunction struct {
	Left *Conjunction   `@@`
	Ops  []*Conjunction `{ ("|" | "∨") @@ }`
}

// Conjunction left-associates and binds tighter than Disjunction.
type Conjunction struct {
	Left *Negation   `@@`
	Ops  []*Negation `{ ("&" | "∧") @@ }`
}

// Negation is a prefix operator of unbounded nesting depth ("!!P").
type Negation struct {
	Bang  bool      `(  @("!" | "¬")`
	Inner *Negation `   @@ )`
	Atom  *Atomic   `|  @@`
}

// Atomic is a parenthesised formula or a predicate application.
type Atomic struct {
	Paren *Formula   `  "(" @@ ")"`
	Pred  *Predicate `| @@`
}

// Predicate is a relation name with an optional argument list; a bare
// name (no parens) is a 0-ary relation.
type Predicate struct {
	Name string  `@Ident`
	Args []*Term `[ "(" @@ { "," @@ } ")" ]`
}

// Term is a variable, constant, or function application, disambiguated
// during resolution rather than in the grammar: a name followed by an
// argument list is a function application, otherwise it is resolved
// against lexical scope and the default-variable regex.
type Term struct {
	Name string  `@Ident`
	Args []*Term `[ "(" @@ { "," @@ } ")" ]`
}
