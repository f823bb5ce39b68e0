package ir

// SignalKind is the tag of a Signal's 4-variant sum type (spec.md §3).
//
// The original ABC implementation packs this into the low two bits of a
// single machine word; per the design note in spec.md §9 ("a reimplementation
// should prefer an explicit variant over pointer-sized ints"), Signal is
// instead an explicit tagged struct.  The interning-pool indices remain
// exactly the payload the original uses, just held in a named field instead
// of shifted bits.
type SignalKind uint8

const (
	// SigNone signals the entire extent of a wire.
	SigNone SignalKind = iota
	// SigConst signals a constant drawn from the Library's Consts pool.
	SigConst
	// SigSlice signals a bit-range of a wire drawn from the Slices pool.
	SigSlice
	// SigConcat signals the concatenation of signals drawn from the
	// Concats pool.
	SigConcat
)

// Signal is a tagged reference to a bit-vector-producing (or consuming)
// expression: an entire wire, a constant, a slice of a wire, or the
// concatenation of other signals.
type Signal struct {
	Kind SignalKind
	// Index is the payload: a wire NameID for SigNone, or an index into
	// the Library's Consts/Slices/Concats pool for the other three kinds.
	Index int
}

// NoneSignal constructs a Signal referring to the entire extent of the wire
// interned under nameID.
func NoneSignal(nameID int) Signal { return Signal{SigNone, nameID} }

// ConstSignal constructs a Signal referring to constant pool entry idx.
func ConstSignal(idx int) Signal { return Signal{SigConst, idx} }

// SliceSignal constructs a Signal referring to slice pool entry idx.
func SliceSignal(idx int) Signal { return Signal{SigSlice, idx} }

// ConcatSignal constructs a Signal referring to concatenation pool entry idx.
func ConcatSignal(idx int) Signal { return Signal{SigConcat, idx} }

// Const is a pool entry for an integer literal.  Width == -1 marks an
// "untyped integer literal" whose value is carried entirely in Words[0]; per
// spec.md §9 this is always treated as an effective 32-bit quantity when
// bits are collected during bit-blasting.
type Const struct {
	Width int
	Words []uint32
}

// Slice is a pool entry for `wire[L:R]` (or `wire[L]` when L==R).  Before
// Normalizer runs, L and R are expressed relative to the wire's declared
// offset/orientation; after Normalizer they are canonical zero-based,
// little-endian bit indices with L >= R.
type Slice struct {
	WireNameID int
	Left       int
	Right      int
}

// Concat is a pool entry for `{ sig1 sig2 ... }`.  Signals is stored in
// textual, most-significant-first order; bit-blasting iterates it in reverse
// to build the little-endian bit sequence (spec.md §4.6).
type Concat struct {
	Signals []Signal
}
