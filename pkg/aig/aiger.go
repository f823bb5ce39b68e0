package aig

import (
	"bufio"
	"fmt"
	"os"
)

// WriteAiger serialises g in the textual ASCII AIGER format (".aag"), the
// artifact format spec.md §6 names for debugging ("AIG artifacts written ...
// named temp<N>.aig").  Callers wanting the monotonic temp<N> naming scheme
// supply that path themselves; this method only handles serialisation.
//
// Node ids are written as AIGER variable indices without renumbering.  The
// output follows AIGER's "inputs precede ANDs" numbering only when every
// primary input was appended before any AND gate; a graph that appends an
// input later (as the latch lowering in pkg/aig/blastop does) is written
// with that input's own, higher node id.
func (g *Graph) WriteAiger(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	maxVar := len(g.nodes) - 1
	nAnd := maxVar - g.InputCount()

	if _, err := fmt.Fprintf(w, "aag %d %d 0 %d %d\n", maxVar, g.InputCount(), g.OutputCount(), nAnd); err != nil {
		return err
	}

	for _, id := range g.inputs {
		if _, err := fmt.Fprintf(w, "%d\n", id*2); err != nil {
			return err
		}
	}

	for _, lit := range g.outputs {
		if _, err := fmt.Fprintf(w, "%d\n", int(lit)); err != nil {
			return err
		}
	}

	for id := 1; id < len(g.nodes); id++ {
		n := g.nodes[id]
		if n.isInput() {
			continue
		}

		if _, err := fmt.Fprintf(w, "%d %d %d\n", id*2, int(n.fanin0), int(n.fanin1)); err != nil {
			return err
		}
	}

	return nil
}
