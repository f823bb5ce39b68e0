// Package linker implements spec.md §4.3: resolving each cell's type string
// to a built-in operator, a blackbox, or a callee module index, and then
// topologically reordering the library's modules so callees precede
// callers.
//
// Grounded on pkg/corset/compiler/resolver.go's accumulate-don't-abort error
// style (undefined references are logged and recorded, not fatal) and its
// DFS-based dependency ordering.
package linker

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/synthkit/wlnc/pkg/wln/ir"
)

// operatorNames maps the fixed `$foo` cell-type strings to their resolved
// OperatorID (spec.md §4.3). `$paramod*` is deliberately excluded: those are
// parametric module instantiations, treated as ordinary module names.
var operatorNames = map[string]ir.OperatorID{
	"$not":         ir.OpNot,
	"$and":         ir.OpAnd,
	"$or":          ir.OpOr,
	"$xor":         ir.OpXor,
	"$xnor":        ir.OpXnor,
	"$nand":        ir.OpNand,
	"$nor":         ir.OpNor,
	"$reduce_and":  ir.OpReduceAnd,
	"$reduce_or":   ir.OpReduceOr,
	"$reduce_xor":  ir.OpReduceXor,
	"$reduce_xnor": ir.OpReduceXnor,
	"$reduce_bool": ir.OpReduceBool,
	"$logic_and":   ir.OpLogicAnd,
	"$logic_or":    ir.OpLogicOr,
	"$logic_not":   ir.OpLogicNot,
	"$shl":         ir.OpShiftL,
	"$shr":         ir.OpShiftR,
	"$sshl":        ir.OpSshiftL,
	"$sshr":        ir.OpSshiftR,
	// $shiftx is its own operator (spec.md §9's REDESIGN FLAG): never
	// folded into $shr.
	"$shiftx":   ir.OpShiftX,
	"$add":      ir.OpAdd,
	"$sub":      ir.OpSub,
	"$mul":      ir.OpMul,
	"$div":      ir.OpDiv,
	"$mod":      ir.OpMod,
	"$divfloor": ir.OpUnsupportedArith,
	"$modfloor": ir.OpUnsupportedArith,
	"$neg":      ir.OpNeg,
	"$pos":      ir.OpPos,
	"$eq":       ir.OpEq,
	"$ne":       ir.OpNe,
	"$lt":       ir.OpLt,
	"$le":       ir.OpLe,
	"$gt":       ir.OpGt,
	"$ge":       ir.OpGe,
	"$mux":      ir.OpMux,
	"$pmux":     ir.OpPmux,
	"$dff":      ir.OpLatch,
	"$dffe":     ir.OpLatch,
	"$adff":     ir.OpLatch,
	"$sdff":     ir.OpLatch,
}

// Link resolves every cell's type in lib and reorders lib.Modules so callees
// precede callers, rewriting each hierarchical cell's Resolved code to match
// the new indices. Errors accumulate rather than abort, per spec.md §7;
// only a genuine hierarchy cycle produces a fatal LinkError.
func Link(lib *ir.Library) []error {
	var errs []error

	nameToModule := make(map[int]int, len(lib.Modules))
	for i, m := range lib.Modules {
		nameToModule[m.NameID] = i
	}

	blackboxCount := 0

	for _, m := range lib.Modules {
		for ci := range m.Cells {
			c := &m.Cells[ci]
			typeStr := lib.Names.Str(c.TypeID)

			switch {
			case strings.HasPrefix(typeStr, "$") && !strings.HasPrefix(typeStr, "$paramod"):
				op, ok := operatorNames[typeStr]
				if !ok {
					errs = append(errs, &ir.LinkError{
						Module: lib.Names.Str(m.NameID), Instance: lib.Names.Str(c.InstanceID),
						Msg: "unknown built-in operator " + typeStr,
					})

					c.Resolved = int(ir.Blackbox)
					blackboxCount++

					continue
				}

				c.Resolved = int(op)
				c.InputCount = len(c.Conns) - 1
			default:
				calleeIdx, ok := nameToModule[c.TypeID]
				if !ok {
					logrus.WithFields(logrus.Fields{
						"module":   lib.Names.Str(m.NameID),
						"instance": lib.Names.Str(c.InstanceID),
						"type":     typeStr,
					}).Warn("undefined module reference treated as blackbox")

					c.Resolved = int(ir.Blackbox)
					blackboxCount++

					continue
				}

				callee := lib.Modules[calleeIdx]
				c.Resolved = int(ir.OperLast) + calleeIdx
				c.InputCount = countInputs(callee)
			}
		}
	}

	if blackboxCount > 0 {
		logrus.WithField("count", blackboxCount).Warn("blackbox cells present after linking")
	}

	if err := reorder(lib, nameToModule); err != nil {
		errs = append(errs, err)
	}

	return errs
}

func countInputs(m *ir.Module) int {
	n := 0

	for i := range m.Wires {
		if m.Wires[i].Input {
			n++
		}
	}

	return n
}

// reorder performs a DFS from every module over its hierarchical callees,
// assigning each module a post-order PlacementIndex so that, after
// rewriting lib.Modules into that order, every callee precedes its callers
// (spec.md §8 invariant 3). Rewrites every hierarchical cell's Resolved
// field to the post-reorder module indices.
func reorder(lib *ir.Library, oldNameToModule map[int]int) error {
	n := len(lib.Modules)

	const (
		white = iota
		grey
		black
	)

	color := make([]int, n)
	ordered := make([]*ir.Module, 0, n)

	var visit func(idx int) error

	visit = func(idx int) error {
		switch color[idx] {
		case black:
			return nil
		case grey:
			return &ir.LinkError{
				Module: lib.Names.Str(lib.Modules[idx].NameID),
				Msg:    "cyclic module hierarchy",
			}
		}

		color[idx] = grey
		m := lib.Modules[idx]

		for ci := range m.Cells {
			if calleeIdx, ok := ir.IsHierarchical(m.Cells[ci].Resolved); ok {
				if err := visit(calleeIdx); err != nil {
					return err
				}
			}
		}

		color[idx] = black
		ordered = append(ordered, m)

		return nil
	}

	for idx := range lib.Modules {
		if err := visit(idx); err != nil {
			return err
		}
	}

	oldIdxToNew := make(map[int]int, n)

	for newIdx, m := range ordered {
		for oldIdx, old := range lib.Modules {
			if old == m {
				oldIdxToNew[oldIdx] = newIdx
				break
			}
		}

		m.PlacementIndex = newIdx
	}

	for _, m := range ordered {
		for ci := range m.Cells {
			if oldCalleeIdx, ok := ir.IsHierarchical(m.Cells[ci].Resolved); ok {
				m.Cells[ci].Resolved = int(ir.OperLast) + oldIdxToNew[oldCalleeIdx]
			}
		}
	}

	lib.Modules = ordered

	return nil
}
