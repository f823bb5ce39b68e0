// Package ident provides the name interning table shared by every stage of
// the RTL pipeline.  Once a byte string has been interned it is referred to
// everywhere else purely by its integer identifier, so that downstream
// comparisons (keyword checks, wire-name lookups, cell-type resolution) are
// integer equality rather than string comparison.
package ident

// Table interns strings to small integer identifiers and back.  It is
// populated only while keywords are resolved and the input is tokenized;
// every later pass treats it as read-only.
type Table struct {
	ids   map[string]int
	names []string
}

// NewTable constructs an empty interning table.
func NewTable() *Table {
	return &Table{ids: make(map[string]int)}
}

// Find looks up an existing identifier for s, returning (id, true) if s has
// already been interned, or (0, false) otherwise.
func (t *Table) Find(s string) (int, bool) {
	id, ok := t.ids[s]
	return id, ok
}

// FindOrAdd interns s if necessary and returns its identifier.  Identifiers
// are assigned in first-seen order starting at 0.
func (t *Table) FindOrAdd(s string) int {
	if id, ok := t.ids[s]; ok {
		return id
	}

	id := len(t.names)
	t.ids[s] = id
	t.names = append(t.names, s)

	return id
}

// Str returns the string previously interned under id.  Panics if id is out
// of range, since every id flowing through the pipeline must originate from
// FindOrAdd.
func (t *Table) Str(id int) string {
	return t.names[id]
}

// Size returns the number of distinct strings interned so far.
func (t *Table) Size() int {
	return len(t.names)
}
