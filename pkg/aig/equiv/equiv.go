// Package equiv implements the "equivalence" external primitive of spec.md
// §6 (`proveEquivalent(a, b, effort) -> Status`, `solveSimple(g) -> Status`):
// a brute-force combinational check, adequate for the module sizes this
// toolchain produces and explicitly not a substitute for a real SAT solver.
//
// Grounded on pkg/cmd/verify.go's framing of verification as a thin driver
// around an external prover (see DESIGN.md).
package equiv

import "github.com/synthkit/wlnc/pkg/aig"

// Status is the three-valued outcome of an equivalence or satisfiability
// query.
type Status int

const (
	// Unknown means the query could not be resolved within the effort
	// bound (here: the input count exceeded MaxBruteForceInputs).
	Unknown Status = iota
	// Proven means the property holds for every input assignment.
	Proven
	// Disproven means at least one input assignment is a counterexample.
	Disproven
)

func (s Status) String() string {
	switch s {
	case Proven:
		return "proven"
	case Disproven:
		return "disproven"
	default:
		return "unknown"
	}
}

// MaxBruteForceInputs bounds the exhaustive enumeration used by this
// implementation; beyond it, queries return Unknown rather than spending
// exponential time.  A real deployment would swap this package for one
// backed by an actual SAT solver without changing any caller.
const MaxBruteForceInputs = 20

// ProveEquivalent checks whether a and b compute the same function, given
// they agree on input/output counts.  effort is accepted for interface
// compatibility with spec.md §6 but unused by this brute-force
// implementation.
func ProveEquivalent(a, b *aig.Graph, effort int) Status {
	if a.InputCount() != b.InputCount() || a.OutputCount() != b.OutputCount() {
		return Disproven
	}

	n := a.InputCount()
	if n > MaxBruteForceInputs {
		return Unknown
	}

	for assignment := uint64(0); assignment < uint64(1)<<uint(n); assignment++ {
		inputs := bits(assignment, n)

		outA := a.Eval(inputs)
		outB := b.Eval(inputs)

		for i := range outA {
			if outA[i] != outB[i] {
				return Disproven
			}
		}
	}

	return Proven
}

// SolveSimple checks whether g's OR-of-outputs miter is satisfiable.  Per
// spec.md §4.7, the EquivalenceDriver frames top-level verification as
// "invert all outputs, OR them into one, ask whether that is satisfiable";
// unsatisfiable means the two original circuits agreed on every output for
// every input, i.e. Proven here corresponds to UNSAT of the miter.
func SolveSimple(g *aig.Graph) Status {
	n := g.InputCount()
	if n > MaxBruteForceInputs {
		return Unknown
	}

	for assignment := uint64(0); assignment < uint64(1)<<uint(n); assignment++ {
		out := g.Eval(bits(assignment, n))

		for _, v := range out {
			if v {
				return Disproven
			}
		}
	}

	return Proven
}

func bits(assignment uint64, n int) []bool {
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = assignment&(1<<uint(i)) != 0
	}

	return out
}
