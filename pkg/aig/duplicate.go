package aig

// DuplicateWithRemap splices source into sink, substituting source's primary
// inputs with inputLits (sink literals, one per source input, in order), and
// returns the sink literals corresponding to source's primary outputs.  This
// is how BitBlaster instantiates a hierarchical cell (spec.md §4.6): the
// callee's already-built AIG is spliced into the caller's under the actual
// connection literals, rather than re-lowered from scratch.
func (sink *Graph) DuplicateWithRemap(source *Graph, inputLits []Lit) []Lit {
	if len(inputLits) != len(source.inputs) {
		panic("DuplicateWithRemap: input count mismatch")
	}

	// litOf maps a source node id to its corresponding sink literal.
	litOf := make([]Lit, len(source.nodes))
	litOf[0] = False

	inputPos := make(map[int]int, len(source.inputs))
	for i, id := range source.inputs {
		inputPos[id] = i
	}

	for id := 1; id < len(source.nodes); id++ {
		n := source.nodes[id]

		if n.isInput() {
			litOf[id] = inputLits[inputPos[id]]
			continue
		}

		a := remapThroughLitOf(litOf, n.fanin0)
		b := remapThroughLitOf(litOf, n.fanin1)
		litOf[id] = sink.AppendAnd(a, b)
	}

	outs := make([]Lit, len(source.outputs))
	for i, lit := range source.outputs {
		outs[i] = remapThroughLitOf(litOf, lit)
	}

	return outs
}

func remapThroughLitOf(litOf []Lit, lit Lit) Lit {
	base := litOf[Var(lit)]
	if IsComplement(lit) {
		return Not(base)
	}

	return base
}

// Clone returns a structurally independent copy of g.  Used by the
// EquivalenceDriver (spec.md §4.7) to replace a larger module's AIG with a
// copy of a proven-equivalent smaller one.
func (g *Graph) Clone() *Graph {
	clone := Start()

	ins := make([]Lit, len(g.inputs))
	for i := range g.inputs {
		ins[i] = clone.AppendInput()
	}

	outs := clone.DuplicateWithRemap(g, ins)
	for _, o := range outs {
		clone.AppendOutput(o)
	}

	return clone
}
