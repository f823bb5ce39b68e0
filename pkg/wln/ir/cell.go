package ir

// Operator enumerates the built-in cell types recognised by the Linker
// (spec.md §4.3).  Values occupy [0, Blackbox); Blackbox and the
// hierarchical encoding documented below them are reserved sentinels, not
// operators.
const (
	OpNot OperatorID = iota
	OpAnd
	OpOr
	OpXor
	OpXnor
	OpNand
	OpNor
	OpReduceAnd
	OpReduceOr
	OpReduceXor
	OpReduceXnor
	OpReduceBool
	OpLogicAnd
	OpLogicOr
	OpLogicNot
	OpShiftL
	OpShiftR
	OpSshiftL
	OpSshiftR
	// OpShiftX is $shiftx.  spec.md §9 flags that the original source
	// temporarily aliased this to SHIFT_R; per the REDESIGN FLAG this
	// implementation gives it its own operator instead (see
	// pkg/aig/blastop for the lowering).
	OpShiftX
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	// OpUnsupportedArith is the resolution target for $divfloor /
	// $modfloor, which spec.md §9 says should surface as a BlastError
	// rather than silently doing nothing.
	OpUnsupportedArith
	OpNeg
	OpPos
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpMux
	OpPmux
	// OpLatch is the combinational-flattening target for the $dff family
	// (see SPEC_FULL.md's supplemented-features section): a free AIG
	// input standing in for the latch's stored state, consistent with
	// spec.md §1's scope (sequential equivalence only up to combinational
	// flattening of flip-flops to primitive latches).
	OpLatch

	numOperators
)

// OperatorID identifies a built-in cell operator, or (via the Blackbox /
// hierarchical sentinels below) a non-operator resolution outcome.
type OperatorID int

// Blackbox is the resolved-module code for a cell whose callee module could
// not be found.  It is numerically equal to numOperators, i.e. one past the
// last real operator and one less than OperLast; checked for explicitly
// rather than folded into the "< OperLast" operator test (spec.md §3).
const Blackbox = numOperators

// OperLast is the base onto which a resolved module's index is added to
// encode a hierarchical cell: resolved == OperLast + moduleIndex.
const OperLast = numOperators + 1

// IsOperator reports whether resolved names a built-in operator (as opposed
// to Blackbox or a hierarchical module reference).
func IsOperator(resolved int) bool {
	return resolved >= 0 && resolved < int(Blackbox)
}

// IsBlackbox reports whether resolved marks an unresolved callee.
func IsBlackbox(resolved int) bool {
	return resolved == int(Blackbox)
}

// IsHierarchical reports whether resolved encodes a module index, returning
// that index when it does.
func IsHierarchical(resolved int) (int, bool) {
	if resolved >= int(OperLast) {
		return resolved - int(OperLast), true
	}

	return 0, false
}

// PortSignal is a single (port-name, signal) pair, used uniformly for a
// cell's attributes, parameters and connections (spec.md §3, §9's
// "struct with header fields plus three owned sequences" design note).
type PortSignal struct {
	Port int
	Sig  Signal
}

// Cell is an instance of an operator or another module inside a parent
// module.
type Cell struct {
	TypeID     int
	InstanceID int
	// Resolved is filled in by the Linker: an OperatorID, Blackbox, or
	// OperLast+moduleIndex.
	Resolved int
	// InputCount is the number of leading entries in Conns that are input
	// ports; the remainder are outputs.
	InputCount int
	// Mark is used by the Scheduler: 0 = unscheduled, 1 = scheduled.
	Mark int

	Attrs  []PortSignal
	Params []PortSignal
	Conns  []PortSignal
}

// OutputCount returns the number of output-port connections.
func (c *Cell) OutputCount() int {
	return len(c.Conns) - c.InputCount
}

// Connection is a module-scope `connect LHS RHS` pair.
type Connection struct {
	LHS Signal
	RHS Signal
}

// Attr is a module- or top-level `attribute K V` pair; both K and V are
// NameIDs.
type Attr struct {
	Key int
	Val int
}
