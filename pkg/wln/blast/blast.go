// Package blast implements the BitBlaster of spec.md §4.6: replaying each
// module's schedule to build a per-module AIG, substituting callee AIGs for
// hierarchical cells and invoking the operator lowering package for
// built-in operator cells.
//
// Grounded on pkg/corset/compiler/mir's assignment-replay structure (walk a
// precomputed order, write into a flat per-bit store), re-targeted from
// field-element columns to AIG literals.
package blast

import (
	"github.com/synthkit/wlnc/pkg/aig"
	"github.com/synthkit/wlnc/pkg/aig/blastop"
	"github.com/synthkit/wlnc/pkg/wln/ir"
)

// unset marks a per-bit literal slot that has not yet been written.
const unset = aig.Lit(-1)

// Blast processes every module in lib, in lib.Modules order (already
// callee-first after linking), building each module's AIG.
func Blast(lib *ir.Library) []error {
	var errs []error

	for _, m := range lib.Modules {
		if err := blastModule(lib, m); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func blastModule(lib *ir.Library, m *ir.Module) error {
	g := aig.Start()

	total := m.TotalBits()
	lits := make([]aig.Lit, total)

	for i := range lits {
		lits[i] = unset
	}

	for i := 0; i < m.NInputs; i++ {
		w := m.Wires[i]
		for b := 0; b < w.Width; b++ {
			lits[w.BitStart+b] = g.AppendInput()
		}
	}

	nCells := len(m.Cells)

	for _, step := range m.Order {
		switch {
		case step < m.NInputs:
			continue
		case step < m.NInputs+nCells:
			if err := blastCell(lib, m, g, lits, step-m.NInputs); err != nil {
				return err
			}
		default:
			connIdx := step - m.NInputs - nCells
			conn := m.Conns[connIdx]
			bits := collectBits(lib, m, lits, conn.RHS)
			insertBits(lib, m, lits, conn.LHS, bits)
		}
	}

	for i := m.NInputs; i < m.NInputs+m.NOutputs; i++ {
		w := m.Wires[i]
		for b := 0; b < w.Width; b++ {
			g.AppendOutput(lits[w.BitStart+b])
		}
	}

	g.Cleanup()
	m.AIG = g

	return nil
}

func blastCell(lib *ir.Library, m *ir.Module, g *aig.Graph, lits []aig.Lit, cellIdx int) error {
	c := &m.Cells[cellIdx]

	if ir.IsBlackbox(c.Resolved) {
		return &ir.BlastError{
			Module: lib.Names.Str(m.NameID), Instance: lib.Names.Str(c.InstanceID),
			Msg: "blackbox cell cannot be blasted",
		}
	}

	if calleeIdx, ok := ir.IsHierarchical(c.Resolved); ok {
		return blastHierarchical(lib, m, g, lits, c, calleeIdx)
	}

	return blastOperator(lib, m, g, lits, c)
}

func blastHierarchical(lib *ir.Library, m *ir.Module, g *aig.Graph, lits []aig.Lit, c *ir.Cell, calleeIdx int) error {
	callee := lib.Modules[calleeIdx]
	if callee.AIG == nil {
		return &ir.BlastError{
			Module: lib.Names.Str(m.NameID), Instance: lib.Names.Str(c.InstanceID),
			Msg: "callee module has not been blasted yet",
		}
	}

	var inputLits []aig.Lit
	for k := 0; k < c.InputCount; k++ {
		inputLits = append(inputLits, collectBits(lib, m, lits, c.Conns[k].Sig)...)
	}

	outLits := g.DuplicateWithRemap(callee.AIG, inputLits)

	pos := 0
	for k := c.InputCount; k < len(c.Conns); k++ {
		sig := c.Conns[k].Sig
		width := signalWidth(lib, m, sig)
		insertBits(lib, m, lits, sig, outLits[pos:pos+width])
		pos += width
	}

	return nil
}

func blastOperator(lib *ir.Library, m *ir.Module, g *aig.Graph, lits []aig.Lit, c *ir.Cell) error {
	op := ir.OperatorID(c.Resolved)

	inputs := make([]blastop.Bits, c.InputCount)
	for k := 0; k < c.InputCount; k++ {
		inputs[k] = blastop.Bits(collectBits(lib, m, lits, c.Conns[k].Sig))
	}

	signedA, signedB := cellSignedness(lib, c)

	outWidth := 0
	if c.InputCount < len(c.Conns) {
		outWidth = signalWidth(lib, m, c.Conns[c.InputCount].Sig)
	}

	outBits, err := blastop.BlastNode(g, op, inputs, outWidth, signedA, signedB)
	if err != nil {
		return &ir.BlastError{
			Module: lib.Names.Str(m.NameID), Instance: lib.Names.Str(c.InstanceID),
			Msg: err.Error(),
		}
	}

	if c.InputCount < len(c.Conns) {
		insertBits(lib, m, lits, c.Conns[c.InputCount].Sig, []aig.Lit(outBits))
	}

	return nil
}

// cellSignedness reads the \A_SIGNED / \B_SIGNED integer parameters
// (spec.md §4.6, §8 scenario S3).
func cellSignedness(lib *ir.Library, c *ir.Cell) (signedA, signedB bool) {
	aID, aOK := lib.Names.Find(`\A_SIGNED`)
	bID, bOK := lib.Names.Find(`\B_SIGNED`)

	for _, p := range c.Params {
		switch {
		case aOK && p.Port == aID:
			signedA = constTruthy(lib, p.Sig)
		case bOK && p.Port == bID:
			signedB = constTruthy(lib, p.Sig)
		}
	}

	return signedA, signedB
}

func constTruthy(lib *ir.Library, sig ir.Signal) bool {
	if sig.Kind != ir.SigConst {
		return false
	}

	c := lib.Consts[sig.Index]

	return len(c.Words) > 0 && c.Words[0] != 0
}

func sliceBitRange(w ir.Wire, s ir.Slice) (lo, hi int) {
	return w.BitStart + s.Right, w.BitStart + s.Left
}

// signalWidth returns the bit width a signal reads or writes.
func signalWidth(lib *ir.Library, m *ir.Module, sig ir.Signal) int {
	switch sig.Kind {
	case ir.SigNone:
		idx := m.WireIndex(sig.Index)
		if idx < 0 {
			return 0
		}

		return m.Wires[idx].Width
	case ir.SigConst:
		c := lib.Consts[sig.Index]
		if c.Width == -1 {
			return 32
		}

		return c.Width
	case ir.SigSlice:
		s := lib.Slices[sig.Index]

		return s.Left - s.Right + 1
	case ir.SigConcat:
		c := lib.Concats[sig.Index]

		total := 0
		for _, ch := range c.Signals {
			total += signalWidth(lib, m, ch)
		}

		return total
	}

	return 0
}

// collectBits reads sig's bits in little-endian order (spec.md §4.6): a
// whole wire's bits 0..width-1, a slice's bits right..left, a constant's
// stored words (width -1 treated as 32 bits), or a concatenation's children
// in reverse declared (i.e. least-significant-child-first) order.
func collectBits(lib *ir.Library, m *ir.Module, lits []aig.Lit, sig ir.Signal) []aig.Lit {
	switch sig.Kind {
	case ir.SigNone:
		idx := m.WireIndex(sig.Index)
		if idx < 0 {
			return nil
		}

		w := m.Wires[idx]

		return append([]aig.Lit(nil), lits[w.BitStart:w.BitStart+w.Width]...)
	case ir.SigConst:
		return constBits(lib.Consts[sig.Index])
	case ir.SigSlice:
		s := lib.Slices[sig.Index]

		idx := m.WireIndex(s.WireNameID)
		if idx < 0 {
			return nil
		}

		w := m.Wires[idx]
		lo, hi := sliceBitRange(w, s)

		return append([]aig.Lit(nil), lits[lo:hi+1]...)
	case ir.SigConcat:
		c := lib.Concats[sig.Index]

		var out []aig.Lit
		for i := len(c.Signals) - 1; i >= 0; i-- {
			out = append(out, collectBits(lib, m, lits, c.Signals[i])...)
		}

		return out
	}

	return nil
}

func constBits(c ir.Const) []aig.Lit {
	width := c.Width
	if width == -1 {
		width = 32
	}

	out := make([]aig.Lit, width)

	for b := 0; b < width; b++ {
		word, bit := b/32, b%32

		if word < len(c.Words) && (c.Words[word]>>uint(bit))&1 == 1 {
			out[b] = aig.True
		} else {
			out[b] = aig.False
		}
	}

	return out
}

// insertBits writes bits into sig's destination bit positions, following
// the same ordering as collectBits. Writing into a constant signal is a
// programming error (spec.md §4.6's invariant); panicking here matches
// BitBlaster's documented hard assertion rather than silently dropping data.
func insertBits(lib *ir.Library, m *ir.Module, lits []aig.Lit, sig ir.Signal, bits []aig.Lit) {
	switch sig.Kind {
	case ir.SigNone:
		idx := m.WireIndex(sig.Index)
		if idx < 0 {
			return
		}

		w := m.Wires[idx]
		for b := 0; b < w.Width && b < len(bits); b++ {
			lits[w.BitStart+b] = bits[b]
		}
	case ir.SigSlice:
		s := lib.Slices[sig.Index]

		idx := m.WireIndex(s.WireNameID)
		if idx < 0 {
			return
		}

		w := m.Wires[idx]
		lo, hi := sliceBitRange(w, s)

		for b := 0; b < hi-lo+1 && b < len(bits); b++ {
			lits[lo+b] = bits[b]
		}
	case ir.SigConcat:
		c := lib.Concats[sig.Index]

		pos := 0
		for i := len(c.Signals) - 1; i >= 0; i-- {
			width := signalWidth(lib, m, c.Signals[i])
			if pos+width > len(bits) {
				width = len(bits) - pos
			}

			insertBits(lib, m, lits, c.Signals[i], bits[pos:pos+width])
			pos += width
		}
	case ir.SigConst:
		panic("blast: constant signal used as an assignment target")
	}
}
