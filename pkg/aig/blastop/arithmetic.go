package blastop

import (
	"github.com/synthkit/wlnc/pkg/aig"
	"github.com/synthkit/wlnc/pkg/wln/ir"
)

// fullAdder returns sum and carry-out for a 1-bit full adder.
func fullAdder(sink *aig.Graph, a, b, cin aig.Lit) (sum aig.Lit, cout aig.Lit) {
	axb := sink.AppendXor(a, b)
	sum = sink.AppendXor(axb, cin)
	cout = sink.AppendOr(sink.AppendAnd(a, b), sink.AppendAnd(axb, cin))

	return sum, cout
}

// rippleAdd adds two equal-length bit-vectors with an initial carry-in,
// returning the sum (same width as the inputs) and the final carry-out.
// Grounded on the bit-serial carry-propagation idiom of
// pkg/ir/assignment/carry_assign.go.
func rippleAdd(sink *aig.Graph, a, b Bits, cin aig.Lit) (Bits, aig.Lit) {
	sum := make(Bits, len(a))
	carry := cin

	for i := range a {
		sum[i], carry = fullAdder(sink, a[i], b[i], carry)
	}

	return sum, carry
}

// subtract computes a - b using the standard single-chain two's-complement
// subtractor (a + ~b with carry-in forced to 1), returning the difference
// and the chain's final carry-out, which is 1 iff a >= b (unsigned).
// Deliberately a single ripple-carry chain rather than "negate b, then add"
// as two separate chains: splitting it loses the cin=1 contribution at the
// top of the chain and silently miscomputes the carry-out/borrow flag.
func subtract(sink *aig.Graph, a, b Bits) (Bits, aig.Lit) {
	invB := make(Bits, len(b))
	for i, bit := range b {
		invB[i] = aig.Not(bit)
	}

	return rippleAdd(sink, a, invB, aig.True)
}

// negate returns the two's-complement negation of v, i.e. 0 - v.
func negate(sink *aig.Graph, v Bits) Bits {
	zero := make(Bits, len(v))
	for i := range zero {
		zero[i] = aig.False
	}

	diff, _ := subtract(sink, zero, v)

	return diff
}

// blastMul synthesizes an unsigned shift-add multiplier: for each set bit
// of b, a (shifted) copy of a is conditionally added into the accumulator.
// Both operands are zero-extended to outWidth before multiplying, which is
// the common (and simplest correct) convention for word-level RTL
// multipliers whose output is narrower than the full product.
func blastMul(sink *aig.Graph, a, b Bits, outWidth int) Bits {
	ea := extendTo(a, outWidth, false)
	eb := extendTo(b, outWidth, false)

	acc := make(Bits, outWidth)
	for i := range acc {
		acc[i] = aig.False
	}

	for i := 0; i < outWidth; i++ {
		// partial = eb[i] ? (ea << i) : 0, truncated to outWidth
		partial := make(Bits, outWidth)
		for j := 0; j < outWidth; j++ {
			if j < i {
				partial[j] = aig.False
			} else {
				partial[j] = sink.AppendAnd(eb[i], ea[j-i])
			}
		}

		sum, _ := rippleAdd(sink, acc, partial, aig.False)
		acc = sum
	}

	return acc
}

// blastDivMod synthesizes unsigned restoring binary division, producing
// (quotient, remainder) both with the dividend's width.  Signed division is
// not distinguished structurally (sign correction is left to the caller via
// extendTo's signed truncation); this keeps the combinational structure a
// single family of gates regardless of signedness, matching how BitBlaster
// only has the A/B signedness flags to steer output interpretation, not
// sign-magnitude pre-processing.
func blastDivMod(sink *aig.Graph, a, b Bits, _ bool) (quotient Bits, remainder Bits) {
	width := len(a)
	if len(b) > width {
		width = len(b)
	}

	dividend := extendTo(a, width, false)
	divisor := extendTo(b, width, false)

	rem := make(Bits, width)
	for i := range rem {
		rem[i] = aig.False
	}

	quot := make(Bits, width)

	for i := width - 1; i >= 0; i-- {
		// rem = (rem << 1) | dividend[i]
		shifted := make(Bits, width)
		shifted[0] = dividend[i]
		copy(shifted[1:], rem[:width-1])

		diff, borrowOutCarry := subtract(sink, shifted, divisor)
		// rippleAdd's carry-out is 1 when shifted >= divisor (no borrow).
		ge := borrowOutCarry
		quot[i] = ge
		rem = muxBits(sink, ge, diff, shifted)
	}

	return quot, rem
}

// blastCompare implements $eq/$ne/$lt/$le/$gt/$ge as a subtraction-based
// magnitude comparison.  Signed comparisons are reduced to unsigned ones by
// flipping the sign bit of both operands (the standard trick: in two's
// complement, XOR-ing the MSB of each operand with 1 maps the signed order
// onto the unsigned order).
func blastCompare(sink *aig.Graph, op ir.OperatorID, a, b Bits, signed bool) aig.Lit {
	width := len(a)
	if len(b) > width {
		width = len(b)
	}

	ea := extendTo(a, width, signed)
	eb := extendTo(b, width, signed)

	if signed && width > 0 {
		ea = flipSign(ea)
		eb = flipSign(eb)
	}

	switch op {
	case ir.OpEq:
		return reduceEqual(sink, ea, eb)
	case ir.OpNe:
		return aig.Not(reduceEqual(sink, ea, eb))
	}

	_, cout := subtract(sink, ea, eb) // cout == 1 iff ea >= eb (unsigned)
	ge := cout
	eq := reduceEqual(sink, ea, eb)

	switch op {
	case ir.OpLt:
		return aig.Not(ge)
	case ir.OpLe:
		return sink.AppendOr(aig.Not(ge), eq)
	case ir.OpGt:
		return sink.AppendAnd(ge, aig.Not(eq))
	case ir.OpGe:
		return ge
	}

	return aig.False
}

func flipSign(v Bits) Bits {
	out := append(Bits(nil), v...)
	out[len(out)-1] = aig.Not(out[len(out)-1])

	return out
}

func reduceEqual(sink *aig.Graph, a, b Bits) aig.Lit {
	acc := aig.True
	for i := range a {
		acc = sink.AppendAnd(acc, aig.Not(sink.AppendXor(a[i], b[i])))
	}

	return acc
}
