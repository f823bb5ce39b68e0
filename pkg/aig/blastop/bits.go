package blastop

import (
	"github.com/synthkit/wlnc/pkg/aig"
	"github.com/synthkit/wlnc/pkg/wln/ir"
)

// extendTo returns v resized to width bits: truncated if it is already
// wider, zero-extended if shorter and unsigned, sign-extended (duplicating
// the top bit) if shorter and signed.  Purely a literal-reuse operation; it
// never allocates new AIG nodes.
func extendTo(v Bits, width int, signed bool) Bits {
	if len(v) >= width {
		return append(Bits(nil), v[:width]...)
	}

	out := make(Bits, width)
	copy(out, v)

	pad := aig.False
	if signed && len(v) > 0 {
		pad = v[len(v)-1]
	}

	for i := len(v); i < width; i++ {
		out[i] = pad
	}

	return out
}

// alignPair extends a and b to a common width (the wider of the two),
// applying each side's own signedness.
func alignPair(a, b Bits, signedA, signedB bool) (Bits, Bits) {
	width := len(a)
	if len(b) > width {
		width = len(b)
	}

	return extendTo(a, width, signedA), extendTo(b, width, signedB)
}

func reduceAnd(sink *aig.Graph, v Bits) aig.Lit {
	acc := aig.True
	for _, b := range v {
		acc = sink.AppendAnd(acc, b)
	}

	return acc
}

func reduceOr(sink *aig.Graph, v Bits) aig.Lit {
	acc := aig.False
	for _, b := range v {
		acc = sink.AppendOr(acc, b)
	}

	return acc
}

func reduceXor(sink *aig.Graph, v Bits) aig.Lit {
	acc := aig.False
	for _, b := range v {
		acc = sink.AppendXor(acc, b)
	}

	return acc
}

// reduceLogic implements $reduce_or, $reduce_bool, $logic_and and
// $logic_or: each treats its operand(s) as booleans (true iff any bit set)
// and produces a single-bit result.
func reduceLogic(sink *aig.Graph, op ir.OperatorID, inputs []Bits) (Bits, error) {
	boolOf := func(v Bits) aig.Lit { return reduceOr(sink, v) }

	switch op {
	case ir.OpReduceOr, ir.OpReduceBool:
		return Bits{boolOf(inputs[0])}, nil
	case ir.OpLogicAnd:
		return Bits{sink.AppendAnd(boolOf(inputs[0]), boolOf(inputs[1]))}, nil
	case ir.OpLogicOr:
		return Bits{sink.AppendOr(boolOf(inputs[0]), boolOf(inputs[1]))}, nil
	}

	return nil, nil
}

// muxBits implements a per-bit 2:1 mux: sel ? onTrue : onFalse.
func muxBits(sink *aig.Graph, sel aig.Lit, onTrue, onFalse Bits) Bits {
	width := len(onTrue)
	if len(onFalse) > width {
		width = len(onFalse)
	}

	a := extendTo(onTrue, width, false)
	b := extendTo(onFalse, width, false)
	out := make(Bits, width)

	for i := range out {
		out[i] = sink.AppendMux(sel, a[i], b[i])
	}

	return out
}
