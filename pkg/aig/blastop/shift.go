package blastop

import (
	"github.com/synthkit/wlnc/pkg/aig"
	"github.com/synthkit/wlnc/pkg/wln/ir"
)

// blastShift synthesizes a barrel shifter: one mux stage per bit of amt,
// each conditionally shifting by a power of two.  $shiftx (spec.md §9's
// REDESIGN FLAG) is its own operator, not an alias for $shiftr, but happens
// to share this same zero-fill right-shift network: a barrel shift that
// fills vacated bits with a constant already yields 0 for any out-of-range
// index once the shift amount equals or exceeds the data width, which is
// exactly $shiftx's documented "out-of-range selects an undefined/don't-care
// bit, modeled here as 0" behaviour. Reusing the network is not reviving the
// original's SHIFT_R aliasing: OpShiftX remains a distinct operator id, only
// its lowering happens to coincide with zero-filled OpShiftR.
func blastShift(sink *aig.Graph, op ir.OperatorID, data, amt Bits, outWidth int, signed bool) Bits {
	left := op == ir.OpShiftL || op == ir.OpSshiftL
	arithmeticRight := op == ir.OpSshiftR && signed

	result := append(Bits(nil), data...)

	signBit := aig.False
	if len(data) > 0 {
		signBit = data[len(data)-1]
	}

	for k := 0; k < len(amt); k++ {
		shifted := shiftByConst(sink, result, 1<<uint(k), left, arithmeticRight, signBit)
		result = muxBits(sink, amt[k], shifted, result)
	}

	return extendTo(result, outWidth, signed && !left)
}

// shiftByConst shifts v by exactly n positions (left or right), filling
// vacated bits with fill (arithmetic right shift) or aig.False otherwise.
func shiftByConst(sink *aig.Graph, v Bits, n int, left, arithmeticRight bool, fill aig.Lit) Bits {
	width := len(v)
	out := make(Bits, width)

	for i := 0; i < width; i++ {
		var srcIdx int
		if left {
			srcIdx = i - n
		} else {
			srcIdx = i + n
		}

		switch {
		case srcIdx < 0 || srcIdx >= width:
			if !left && arithmeticRight {
				out[i] = fill
			} else {
				out[i] = aig.False
			}
		default:
			out[i] = v[srcIdx]
		}
	}

	return out
}
