package aig

// Eval simulates g combinationally given one boolean value per primary
// input (in input order) and returns one boolean value per primary output
// (in output order).  Used for testing and as the enumeration primitive
// behind pkg/aig/equiv's brute-force equivalence check.
func (g *Graph) Eval(inputs []bool) []bool {
	if len(inputs) != len(g.inputs) {
		panic("Eval: input count mismatch")
	}

	values := make([]bool, len(g.nodes))

	inputPos := make(map[int]int, len(g.inputs))
	for i, id := range g.inputs {
		inputPos[id] = i
	}

	for id := 1; id < len(g.nodes); id++ {
		n := g.nodes[id]
		if n.isInput() {
			values[id] = inputs[inputPos[id]]
			continue
		}

		values[id] = litValue(values, n.fanin0) && litValue(values, n.fanin1)
	}

	outs := make([]bool, len(g.outputs))
	for i, lit := range g.outputs {
		outs[i] = litValue(values, lit)
	}

	return outs
}

func litValue(values []bool, lit Lit) bool {
	v := values[Var(lit)]
	if IsComplement(lit) {
		return !v
	}

	return v
}
