package aig

// reachableFromOutputs returns the set of node ids (including node 0 and all
// primary inputs) reachable by following fanins back from the primary
// outputs, plus the primary inputs themselves (kept live regardless of use
// so a module's declared input count is never silently altered).
func (g *Graph) reachableFromOutputs() map[int]bool {
	seen := map[int]bool{0: true}

	for _, id := range g.inputs {
		seen[id] = true
	}

	var visit func(id int)
	visit = func(id int) {
		if seen[id] {
			return
		}

		seen[id] = true
		n := g.nodes[id]

		if !n.isInput() {
			visit(Var(n.fanin0))
			visit(Var(n.fanin1))
		}
	}

	for _, lit := range g.outputs {
		visit(Var(lit))
	}

	return seen
}

// Cleanup removes AND gates not reachable from any primary output, as
// spec.md §4.6 step 5 requires after replaying a module's schedule.  Node
// ordering is preserved (the kept nodes stay in their original relative order),
// and primary inputs are always retained so a module's interface is never
// altered by cleanup.
func (g *Graph) Cleanup() {
	reached := g.reachableFromOutputs()

	remap := make(map[int]int, len(reached))
	newNodes := make([]andNode, 0, len(reached))
	remap[0] = 0
	newNodes = append(newNodes, g.nodes[0])

	for id := 1; id < len(g.nodes); id++ {
		if !reached[id] {
			continue
		}

		n := g.nodes[id]
		newID := len(newNodes)
		remap[id] = newID

		if n.isInput() {
			newNodes = append(newNodes, n)
		} else {
			newNodes = append(newNodes, andNode{remapLit(remap, n.fanin0), remapLit(remap, n.fanin1)})
		}
	}

	newInputs := make([]int, len(g.inputs))
	for i, id := range g.inputs {
		newInputs[i] = remap[id]
	}

	newOutputs := make([]Lit, len(g.outputs))
	for i, lit := range g.outputs {
		newOutputs[i] = remapLit(remap, lit)
	}

	g.nodes = newNodes
	g.inputs = newInputs
	g.outputs = newOutputs
	g.buckets = make(map[uint64][]int)

	if g.hashing {
		for id, n := range g.nodes {
			if id != 0 && !n.isInput() {
				g.insert(n.fanin0, n.fanin1, id)
			}
		}
	}
}

func remapLit(remap map[int]int, lit Lit) Lit {
	return mkLit(remap[Var(lit)], IsComplement(lit))
}
