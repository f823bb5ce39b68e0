package blastop

import "github.com/synthkit/wlnc/pkg/aig"

// blastPmux implements a parallel (one-hot-select) multiplexer: sel has one
// bit per option, b holds the options concatenated back-to-back (each
// outWidth bits wide), and a is the default value selected when no bit of
// sel is set.  Options are assumed mutually exclusive, per word-level
// netlist convention; if more than one sel bit is set the options form a
// mux chain, so the option of the highest-indexed set bit is selected.
func blastPmux(sink *aig.Graph, a, b, sel Bits, outWidth int) Bits {
	def := extendTo(a, outWidth, false)
	out := make(Bits, outWidth)
	copy(out, def)

	for opt := 0; opt < len(sel); opt++ {
		lo := opt * outWidth
		hi := lo + outWidth
		if hi > len(b) {
			break
		}

		option := b[lo:hi]
		for i := 0; i < outWidth; i++ {
			out[i] = sink.AppendMux(sel[opt], option[i], out[i])
		}
	}

	return out
}
