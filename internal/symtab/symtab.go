// Package symtab interns variable, constant, function, and relation names,
// assigning dense per-kind indices and recording arities.
package symtab

import "github.com/fologic/prover/internal/perr"

// Kind is the closed set of symbol kinds.
type Kind int

const (
	Variable Kind = iota
	Constant
	Function
	Relation
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "Variable"
	case Constant:
		return "Constant"
	case Function:
		return "Function"
	case Relation:
		return "Relation"
	default:
		return "UnknownKind"
	}
}

// Identity is any externally-supplied unique handle with O(1) equality,
// e.g. an interned string or a pointer into the caller's own arena.
type Identity interface{}

// Entry is one interned symbol.
type Entry struct {
	Identity Identity
	Name     string
	Kind     Kind
	Arity    int // meaningful for Function (>=1) and Relation (>=0)
	Index    int // dense, per-kind, insertion-order
}

// Table interns symbols and resolves them by identity or by (kind, index).
type Table struct {
	byIdentity map[Identity]*Entry
	byKindIdx  map[Kind][]*Entry
	nextIndex  map[Kind]int
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{
		byIdentity: make(map[Identity]*Entry),
		byKindIdx:  make(map[Kind][]*Entry),
		nextIndex:  make(map[Kind]int),
	}
}

// Intern adds a symbol, or returns the existing entry if identity was
// already interned with the same kind and arity. A re-intern attempt with a
// different kind or arity signals KindOrArityConflict.
func (t *Table) Intern(kind Kind, identity Identity, name string, arity int) (*Entry, error) {
	if existing, ok := t.byIdentity[identity]; ok {
		if existing.Kind != kind || existing.Arity != arity {
			return nil, perr.New(perr.KindOrArityConflict, "symtab", "Intern",
				"re-intern of identity with different kind or arity")
		}
		return existing, nil
	}

	idx := t.nextIndex[kind]
	entry := &Entry{
		Identity: identity,
		Name:     name,
		Kind:     kind,
		Arity:    arity,
		Index:    idx,
	}
	t.byIdentity[identity] = entry
	t.byKindIdx[kind] = append(t.byKindIdx[kind], entry)
	t.nextIndex[kind] = idx + 1
	return entry, nil
}

// Resolve looks up a symbol by its externally-supplied identity.
func (t *Table) Resolve(identity Identity) (*Entry, error) {
	if e, ok := t.byIdentity[identity]; ok {
		return e, nil
	}
	return nil, perr.New(perr.UnresolvedSymbol, "symtab", "Resolve", "identity not found")
}

// ResolveIndex looks up a symbol by its (kind, dense index) pair.
func (t *Table) ResolveIndex(kind Kind, index int) (*Entry, error) {
	entries := t.byKindIdx[kind]
	if index < 0 || index >= len(entries) {
		return nil, perr.New(perr.UnresolvedSymbol, "symtab", "ResolveIndex", "index out of range for kind")
	}
	return entries[index], nil
}

// Count returns how many symbols of the given kind have been interned.
func (t *Table) Count(kind Kind) int {
	return len(t.byKindIdx[kind])
}

// Describe renders the human name of an entry. Rendering consumes only the
// display name, per spec.md 4.A.
func Describe(e *Entry) string {
	if e == nil {
		return "<nil>"
	}
	return e.Name
}

// CheckArity reports InvalidSymbolArity if the use-site argument count does
// not match the symbol's declared arity. Construction is not checked for
// efficiency; internal/render is the only caller.
func CheckArity(e *Entry, argCount int, op string) error {
	if e.Kind == Function || e.Kind == Relation {
		if e.Arity != argCount {
			return perr.New(perr.InvalidSymbolArity, "symtab", op,
				"argument count does not match declared arity for "+e.Name)
		}
	}
	return nil
}
