// Package normalizer implements spec.md §4.4: wire I/O-first canonical
// ordering, slice range rebasing, and hierarchical instance-port
// repermutation.
//
// Grounded on pkg/corset/compiler/resolver.go's two-pass "assign canonical
// positions, then rewrite references against them" structure, re-targeted
// at wire order instead of column order.
package normalizer

import (
	"sort"

	"github.com/synthkit/wlnc/pkg/wln/ir"
)

// Normalize processes every module in lib, which must already be in
// Linker-assigned callee-first order: each module's own wire reordering and
// slice rebasing happens before any caller that references it is processed,
// so hierarchical port repermutation always sees its callee's final wire
// order.
func Normalize(lib *ir.Library) []error {
	var errs []error

	for _, m := range lib.Modules {
		reorderWires(m)
		normalizeSlices(lib, m)
	}

	for _, m := range lib.Modules {
		if err := repermuteCells(lib, m); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func reorderWires(m *ir.Module) {
	var ins, outs, internal []ir.Wire

	for _, w := range m.Wires {
		switch {
		case w.Input:
			ins = append(ins, w)
		case w.Output:
			outs = append(outs, w)
		default:
			internal = append(internal, w)
		}
	}

	sort.SliceStable(ins, func(i, j int) bool { return ins[i].Port < ins[j].Port })
	sort.SliceStable(outs, func(i, j int) bool { return outs[i].Port < outs[j].Port })

	m.NInputs = len(ins)
	m.NOutputs = len(outs)

	m.Wires = make([]ir.Wire, 0, len(m.Wires))
	m.Wires = append(m.Wires, ins...)
	m.Wires = append(m.Wires, outs...)
	m.Wires = append(m.Wires, internal...)
}

// normalizeSlices rewrites every slice textually declared inside m into the
// canonical little-endian, zero-based, offset-free address space of its
// wire, then clears every wire's Offset/Upto flag (spec.md §4.4).
func normalizeSlices(lib *ir.Library, m *ir.Module) {
	for i := m.SliceBegin; i < m.SliceEnd; i++ {
		s := &lib.Slices[i]

		wireIdx := m.WireIndex(s.WireNameID)
		if wireIdx < 0 {
			continue
		}

		w := m.Wires[wireIdx]
		s.Left -= w.Offset
		s.Right -= w.Offset

		if w.Upto {
			s.Left, s.Right = s.Right, s.Left
		}
	}

	for i := range m.Wires {
		m.Wires[i].Offset = 0
		m.Wires[i].Upto = false
	}
}

// repermuteCells reorders every hierarchical cell's connection list to match
// its callee's canonical wire order, using the library's shared scratch
// map (spec.md §4.4, §9's scratch-map note).
func repermuteCells(lib *ir.Library, m *ir.Module) error {
	for ci := range m.Cells {
		c := &m.Cells[ci]

		calleeIdx, ok := ir.IsHierarchical(c.Resolved)
		if !ok {
			continue
		}

		callee := lib.Modules[calleeIdx]
		scratch := lib.Scratch()

		for k, conn := range c.Conns {
			scratch[conn.Port] = k
		}

		ports := callee.Wires[:callee.NInputs+callee.NOutputs]
		newConns := make([]ir.PortSignal, len(ports))
		complete := true

		for w, wire := range ports {
			k, found := scratch[wire.NameID]
			if !found {
				complete = false

				break
			}

			newConns[w] = c.Conns[k]
		}

		for k := range scratch {
			delete(scratch, k)
		}

		if complete {
			c.Conns = newConns
		}
	}

	return nil
}
