// Package keyword resolves the fixed set of grammar keywords to interned
// NameIDs exactly once per load, so every later comparison the Parser makes
// is integer equality rather than string comparison (spec.md §2).
package keyword

import "github.com/synthkit/wlnc/pkg/ident"

// Map holds the interned ID of every reserved word in the grammar
// (spec.md §6).  Resolved once from a fresh ident.Table via New.
type Map struct {
	Module    int
	End       int
	Wire      int
	Width     int
	Offset    int
	Input     int
	Output    int
	Signed    int
	Upto      int
	Attribute int
	Cell      int
	Parameter int
	Connect   int
}

// New interns every keyword into names and returns the resolved map.  Per
// spec.md §4.1, "module" must land at NameID 1 so that keywordID != 0
// distinguishes "present" from "absent"; names is expected to be fresh
// (nothing interned into it yet) so that guarantee holds.
func New(names *ident.Table) *Map {
	// ident.Table assigns ids from 0, so the empty string (which the
	// tokenizer never produces) claims NameID 0 and "module", interned
	// next, lands at NameID 1.
	names.FindOrAdd("")

	return &Map{
		Module:    names.FindOrAdd("module"),
		End:       names.FindOrAdd("end"),
		Wire:      names.FindOrAdd("wire"),
		Width:     names.FindOrAdd("width"),
		Offset:    names.FindOrAdd("offset"),
		Input:     names.FindOrAdd("input"),
		Output:    names.FindOrAdd("output"),
		Signed:    names.FindOrAdd("signed"),
		Upto:      names.FindOrAdd("upto"),
		Attribute: names.FindOrAdd("attribute"),
		Cell:      names.FindOrAdd("cell"),
		Parameter: names.FindOrAdd("parameter"),
		Connect:   names.FindOrAdd("connect"),
	}
}
