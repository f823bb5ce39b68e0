// Package scheduler implements spec.md §4.5: the dataflow topological
// ordering of a module's primary inputs, cells and connections, such that
// every bit a step consumes was produced by some earlier step.
//
// Grounded on pkg/corset/compiler's iterative fixpoint constraint-resolution
// passes. The per-bit "is this already produced" test is backed by
// bits-and-blooms/bitset rather than a plain []bool, matching the
// teacher's preference for that library wherever a module needs a dense
// bit-indexed membership test (see DESIGN.md).
package scheduler

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/sirupsen/logrus"

	"github.com/synthkit/wlnc/pkg/wln/ir"
)

// Schedule computes an order vector for every module in lib. Modules
// already processed (i.e. listed earlier in lib.Modules thanks to linking)
// do not affect later ones: scheduling is strictly per-module.
func Schedule(lib *ir.Library) []error {
	var errs []error

	for _, m := range lib.Modules {
		if err := scheduleModule(lib, m); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func scheduleModule(lib *ir.Library, m *ir.Module) error {
	total := 0
	for i := range m.Wires {
		m.Wires[i].BitStart = total
		total += m.Wires[i].Width
	}

	defined := bitset.New(uint(total))

	var order []int

	for i := 0; i < m.NInputs; i++ {
		w := m.Wires[i]
		markRange(defined, w.BitStart, w.Width)
		order = append(order, i)
	}

	scheduledConn := make([]bool, len(m.Conns))

	for i := range m.Cells {
		m.Cells[i].Mark = 0
	}

	nCells := len(m.Cells)

	for {
		progress := false

		for ci := range m.Conns {
			if scheduledConn[ci] {
				continue
			}

			lhsDefined := signalDefined(lib, m, m.Conns[ci].LHS, defined)
			rhsDefined := signalDefined(lib, m, m.Conns[ci].RHS, defined)

			switch {
			case lhsDefined && rhsDefined:
				scheduledConn[ci] = true
			case rhsDefined && !lhsDefined:
				markSignal(lib, m, m.Conns[ci].LHS, defined)
				scheduledConn[ci] = true
				order = append(order, m.NInputs+nCells+ci)
				progress = true
			case lhsDefined && !rhsDefined:
				markSignal(lib, m, m.Conns[ci].RHS, defined)
				m.Conns[ci].LHS, m.Conns[ci].RHS = m.Conns[ci].RHS, m.Conns[ci].LHS
				scheduledConn[ci] = true
				order = append(order, m.NInputs+nCells+ci)
				progress = true
			}
		}

		for ci := range m.Cells {
			c := &m.Cells[ci]
			if c.Mark == 1 {
				continue
			}

			ready := true

			for k := 0; k < c.InputCount; k++ {
				if !signalDefined(lib, m, c.Conns[k].Sig, defined) {
					ready = false

					break
				}
			}

			if !ready {
				continue
			}

			for k := c.InputCount; k < len(c.Conns); k++ {
				markSignal(lib, m, c.Conns[k].Sig, defined)
			}

			c.Mark = 1
			order = append(order, m.NInputs+ci)
			progress = true
		}

		if !progress {
			break
		}
	}

	m.Order = order

	reportUnusedCells(lib, m)

	return verifyOutputsDefined(lib, m, defined)
}

// reportUnusedCells logs every cell the fixpoint loop never scheduled
// (spec.md §4.5, §7: "Scheduler reports unused cells but does not abort").
// This fires whenever such a cell exists, independent of whether the
// module's outputs end up fully defined.
func reportUnusedCells(lib *ir.Library, m *ir.Module) {
	names := unscheduledCellNames(lib, m)
	if names == "(none)" {
		return
	}

	logrus.WithFields(logrus.Fields{
		"module": lib.Names.Str(m.NameID),
		"cells":  names,
	}).Warn("unused cell(s) left unscheduled")
}

func verifyOutputsDefined(lib *ir.Library, m *ir.Module, defined *bitset.BitSet) error {
	for i := m.NInputs; i < m.NInputs+m.NOutputs; i++ {
		w := m.Wires[i]
		if !allDefinedRange(defined, w.BitStart, w.Width) {
			return &ir.ScheduleError{
				Module: lib.Names.Str(m.NameID),
				Msg:    fmt.Sprintf("output wire %q has undefined bits; likely a combinational cycle involving %s", lib.Names.Str(w.NameID), unscheduledCellNames(lib, m)),
			}
		}
	}

	return nil
}

func unscheduledCellNames(lib *ir.Library, m *ir.Module) string {
	var names []string

	for i := range m.Cells {
		if m.Cells[i].Mark == 0 {
			names = append(names, lib.Names.Str(m.Cells[i].InstanceID))
		}
	}

	if len(names) == 0 {
		return "(none)"
	}

	return strings.Join(names, ", ")
}

func markRange(defined *bitset.BitSet, start, width int) {
	for b := start; b < start+width; b++ {
		defined.Set(uint(b))
	}
}

func allDefinedRange(defined *bitset.BitSet, start, width int) bool {
	for b := start; b < start+width; b++ {
		if !defined.Test(uint(b)) {
			return false
		}
	}

	return true
}

// signalDefined reports whether every bit sig reads from is already
// produced, recursing through slices and concatenations; constants are
// always defined.
func signalDefined(lib *ir.Library, m *ir.Module, sig ir.Signal, defined *bitset.BitSet) bool {
	switch sig.Kind {
	case ir.SigNone:
		idx := m.WireIndex(sig.Index)
		if idx < 0 {
			return false
		}

		w := m.Wires[idx]

		return allDefinedRange(defined, w.BitStart, w.Width)
	case ir.SigConst:
		return true
	case ir.SigSlice:
		s := lib.Slices[sig.Index]

		idx := m.WireIndex(s.WireNameID)
		if idx < 0 {
			return false
		}

		w := m.Wires[idx]
		lo, hi := sliceBitRange(w, s)

		return allDefinedRange(defined, lo, hi-lo+1)
	case ir.SigConcat:
		c := lib.Concats[sig.Index]

		for _, child := range c.Signals {
			if !signalDefined(lib, m, child, defined) {
				return false
			}
		}

		return true
	}

	return false
}

// markSignal marks every bit sig writes to as defined. Constants are
// never a valid write target (spec.md §4.6); the case is a no-op rather
// than a panic since BitBlaster, not the Scheduler, is responsible for
// enforcing that invariant with a hard assertion.
func markSignal(lib *ir.Library, m *ir.Module, sig ir.Signal, defined *bitset.BitSet) {
	switch sig.Kind {
	case ir.SigNone:
		idx := m.WireIndex(sig.Index)
		if idx < 0 {
			return
		}

		w := m.Wires[idx]
		markRange(defined, w.BitStart, w.Width)
	case ir.SigSlice:
		s := lib.Slices[sig.Index]

		idx := m.WireIndex(s.WireNameID)
		if idx < 0 {
			return
		}

		w := m.Wires[idx]
		lo, hi := sliceBitRange(w, s)
		markRange(defined, lo, hi-lo+1)
	case ir.SigConcat:
		c := lib.Concats[sig.Index]
		for _, child := range c.Signals {
			markSignal(lib, m, child, defined)
		}
	}
}

func sliceBitRange(w ir.Wire, s ir.Slice) (lo, hi int) {
	return w.BitStart + s.Right, w.BitStart + s.Left
}
