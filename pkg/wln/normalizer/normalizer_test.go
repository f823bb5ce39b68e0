package normalizer

import (
	"testing"

	"github.com/synthkit/wlnc/pkg/ident"
	"github.com/synthkit/wlnc/pkg/util/assert"
	"github.com/synthkit/wlnc/pkg/wln/ir"
)

func TestNormalize_WireReordering(t *testing.T) {
	lib := ir.NewLibrary()
	names := ident.NewTable()
	lib.Names = names

	m := ir.NewModule(names.FindOrAdd("m"))
	m.Wires = []ir.Wire{
		{NameID: names.FindOrAdd("internal1"), Width: 1},
		{NameID: names.FindOrAdd("out1"), Output: true, Port: 1, Width: 1},
		{NameID: names.FindOrAdd("in2"), Input: true, Port: 2, Width: 1},
		{NameID: names.FindOrAdd("in1"), Input: true, Port: 1, Width: 1},
	}
	lib.AddModule(m)

	errs := Normalize(lib)
	assert.Equal(t, 0, len(errs))

	assert.Equal(t, 2, m.NInputs)
	assert.Equal(t, 1, m.NOutputs)
	assert.Equal(t, names.FindOrAdd("in1"), m.Wires[0].NameID)
	assert.Equal(t, names.FindOrAdd("in2"), m.Wires[1].NameID)
	assert.Equal(t, names.FindOrAdd("out1"), m.Wires[2].NameID)
	assert.Equal(t, names.FindOrAdd("internal1"), m.Wires[3].NameID)
}

func TestNormalize_UptoSliceSwapsAndRebases(t *testing.T) {
	lib := ir.NewLibrary()
	names := ident.NewTable()
	lib.Names = names

	uNameID := names.FindOrAdd("u")
	m := ir.NewModule(names.FindOrAdd("m"))
	m.Wires = []ir.Wire{{NameID: uNameID, Width: 8, Upto: true, Offset: 0}}
	m.SliceBegin = len(lib.Slices)
	lib.Slices = append(lib.Slices, ir.Slice{WireNameID: uNameID, Left: 0, Right: 3})
	m.SliceEnd = len(lib.Slices)
	lib.AddModule(m)

	errs := Normalize(lib)
	assert.Equal(t, 0, len(errs))

	s := lib.Slices[0]
	assert.Equal(t, 3, s.Left)
	assert.Equal(t, 0, s.Right)
	assert.False(t, m.Wires[0].Upto)
}

func TestNormalize_HierarchicalPortRepermutation(t *testing.T) {
	lib := ir.NewLibrary()
	names := ident.NewTable()
	lib.Names = names

	in0 := names.FindOrAdd("in0")
	in1 := names.FindOrAdd("in1")
	out := names.FindOrAdd("out")

	sub := ir.NewModule(names.FindOrAdd("sub"))
	sub.Wires = []ir.Wire{
		{NameID: in0, Input: true, Port: 1, Width: 1},
		{NameID: in1, Input: true, Port: 2, Width: 1},
		{NameID: out, Output: true, Port: 1, Width: 1},
	}

	w0 := names.FindOrAdd("w0")
	w1 := names.FindOrAdd("w1")
	w2 := names.FindOrAdd("w2")

	top := ir.NewModule(names.FindOrAdd("top"))
	top.Cells = []ir.Cell{{
		TypeID:     names.FindOrAdd("sub"),
		InstanceID: names.FindOrAdd("u0"),
		Resolved:   int(ir.OperLast), // callee index 0 (sub, added first below)
		Conns: []ir.PortSignal{
			{Port: in1, Sig: ir.NoneSignal(w1)},
			{Port: out, Sig: ir.NoneSignal(w2)},
			{Port: in0, Sig: ir.NoneSignal(w0)},
		},
	}}

	lib.AddModule(sub)
	lib.AddModule(top)

	errs := Normalize(lib)
	assert.Equal(t, 0, len(errs))

	conns := lib.Modules[1].Cells[0].Conns
	assert.Equal(t, w0, conns[0].Sig.Index)
	assert.Equal(t, w1, conns[1].Sig.Index)
	assert.Equal(t, w2, conns[2].Sig.Index)
}
