package ir

import "github.com/synthkit/wlnc/pkg/ident"

// Library is the top-level container produced by Parser and threaded
// through every later pass (spec.md §3): the set of modules declared in one
// source file, the shared name interning table, and the three side pools
// (Consts, Slices, Concats) that out-of-line Signal payloads are drawn from.
type Library struct {
	Names *ident.Table

	Modules []*Module

	Consts  []Const
	Slices  []Slice
	Concats []Concat

	// scratch is reused by the Normalizer's port repermutation as a
	// NameID -> wire-index map local to whichever module is currently being
	// processed; keeping one map alive for the Library's lifetime avoids
	// reallocating it per module per pass (spec.md §9's scratch-map note).
	scratch map[int]int
}

// NewLibrary constructs an empty Library with a fresh name table.
func NewLibrary() *Library {
	return &Library{
		Names:   ident.NewTable(),
		scratch: make(map[int]int),
	}
}

// ModuleByNameID returns the module interned under nameID, or nil if no such
// module has been declared.
func (l *Library) ModuleByNameID(nameID int) *Module {
	for _, m := range l.Modules {
		if m.NameID == nameID {
			return m
		}
	}

	return nil
}

// AddModule appends m to the library's module list.
func (l *Library) AddModule(m *Module) {
	l.Modules = append(l.Modules, m)
}

// AddConst interns c into the Consts pool and returns a Signal referring to
// it.
func (l *Library) AddConst(c Const) Signal {
	idx := len(l.Consts)
	l.Consts = append(l.Consts, c)

	return ConstSignal(idx)
}

// AddSlice interns s into the Slices pool and returns a Signal referring to
// it.
func (l *Library) AddSlice(s Slice) Signal {
	idx := len(l.Slices)
	l.Slices = append(l.Slices, s)

	return SliceSignal(idx)
}

// AddConcat interns c into the Concats pool and returns a Signal referring
// to it.
func (l *Library) AddConcat(c Concat) Signal {
	idx := len(l.Concats)
	l.Concats = append(l.Concats, c)

	return ConcatSignal(idx)
}

// Scratch returns the library's shared NameID -> wire-index scratch map,
// cleared of any entries left over from a previous pass.
func (l *Library) Scratch() map[int]int {
	for k := range l.scratch {
		delete(l.scratch, k)
	}

	return l.scratch
}

// ResolveModuleOrder returns the library's modules ordered by
// PlacementIndex, as set by the Linker.  The sort is stable, so modules
// that have not yet been placed (PlacementIndex == 0) keep their
// declaration order among themselves and come before any placed modules.
func (l *Library) ResolveModuleOrder() []*Module {
	ordered := make([]*Module, len(l.Modules))
	copy(ordered, l.Modules)

	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j-1].PlacementIndex > ordered[j].PlacementIndex; j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}

	return ordered
}
