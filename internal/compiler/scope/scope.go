package scope

import "github.com/btouchard/wpl/internal/compiler/token"

type Kind string

const (
	KindVar   Kind = "var"
	KindParam Kind = "param"
	KindFunc  Kind = "func"
)

// Declaration records one successful Declare call.
type Declaration struct {
	Name  string
	Type  string
	Kind  Kind
	Depth int // 1 is the global scope
	Pos   token.Position
}

// Table is a stack of scopes mapping identifier names to declared type
// spellings. The global scope is created by NewTable and is never popped.
type Table struct {
	scopes []map[string]string
	decls  []Declaration
}

func NewTable() *Table {
	return &Table{
		scopes: []map[string]string{make(map[string]string)},
	}
}

// Push opens a new innermost scope.
func (t *Table) Push() {
	t.scopes = append(t.scopes, make(map[string]string))
}

// Pop closes the innermost scope. The global scope stays.
func (t *Table) Pop() {
	if len(t.scopes) > 1 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

// Depth returns the number of open scopes, counting the global one.
func (t *Table) Depth() int {
	return len(t.scopes)
}

// Declare binds name to typ in the innermost scope, replacing any binding
// of the same name in that scope.
func (t *Table) Declare(name, typ string, kind Kind, pos token.Position) {
	t.scopes[len(t.scopes)-1][name] = typ
	t.decls = append(t.decls, Declaration{
		Name:  name,
		Type:  typ,
		Kind:  kind,
		Depth: len(t.scopes),
		Pos:   pos,
	})
}

// Lookup finds name starting from the innermost scope.
func (t *Table) Lookup(name string) (string, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if typ, ok := t.scopes[i][name]; ok {
			return typ, true
		}
	}
	return "", false
}

// LookupLocal only searches the innermost scope.
func (t *Table) LookupLocal(name string) (string, bool) {
	typ, ok := t.scopes[len(t.scopes)-1][name]
	return typ, ok
}

// Declarations returns every declaration made so far, in order.
func (t *Table) Declarations() []Declaration {
	out := make([]Declaration, len(t.decls))
	copy(out, t.decls)
	return out
}
