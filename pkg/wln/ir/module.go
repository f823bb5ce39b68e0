package ir

import "github.com/synthkit/wlnc/pkg/aig"

// Module is a named collection of wires, cell instances and connections.
// Ordering of Wires/Cells/Conns is significant: declaration order initially,
// then normalized/scheduled order once the corresponding passes have run
// (spec.md §3).
type Module struct {
	NameID int

	Wires []Wire
	Cells []Cell
	Conns []Connection
	Attrs []Attr

	// SliceBegin, SliceEnd delimit the range within the owning Library's
	// Slices pool that textually appeared inside this module.  Used by
	// Normalizer to rewrite only this module's slices.
	SliceBegin int
	SliceEnd   int

	// NInputs, NOutputs are set by Normalizer; until then wires are in
	// declaration order and these are -1.
	NInputs  int
	NOutputs int

	// Order lists, once Scheduler has run, indices into the merged
	// input/cell/connection space in dataflow order (spec.md §4.5).
	Order []int

	// PlacementIndex is the Linker's final topological position for this
	// module (callees precede callers).
	PlacementIndex int

	// AIG is the bit-blasted result, nil until BitBlaster has processed
	// this module.
	AIG *aig.Graph
}

// NewModule constructs an empty module with no wires/cells/connections yet.
func NewModule(nameID int) *Module {
	return &Module{NameID: nameID, NInputs: -1, NOutputs: -1}
}

// WireIndex returns the index of the wire interned under nameID, or -1 if no
// such wire is declared in this module.
func (m *Module) WireIndex(nameID int) int {
	for i := range m.Wires {
		if m.Wires[i].NameID == nameID {
			return i
		}
	}

	return -1
}

// TotalBits returns the sum of all wire widths, i.e. the required length of
// the per-bit literal vector.
func (m *Module) TotalBits() int {
	n := 0
	for i := range m.Wires {
		n += m.Wires[i].Width
	}

	return n
}

// NCells returns the number of cell instances.
func (m *Module) NCells() int { return len(m.Cells) }

// NConns returns the number of module-scope connections.
func (m *Module) NConns() int { return len(m.Conns) }
