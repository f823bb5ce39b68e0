// Package equivalence implements the thin EquivalenceDriver of spec.md
// §4.7: pairwise module-AIG deduplication, and a final top-level miter
// check after dedup.
//
// Grounded on pkg/cmd/verify.go's framing of verification as a thin driver
// around an external prover: this package owns no proving logic itself,
// only the iterate/merge/re-blast orchestration around pkg/aig/equiv.
package equivalence

import (
	"github.com/sirupsen/logrus"

	"github.com/synthkit/wlnc/pkg/aig"
	"github.com/synthkit/wlnc/pkg/aig/equiv"
	"github.com/synthkit/wlnc/pkg/wln/blast"
	"github.com/synthkit/wlnc/pkg/wln/ir"
)

// Dedup repeatedly finds a pair of modules whose AIGs are proven equivalent,
// releases the larger's AIG in favor of a clone of the smaller, and
// re-blasts the whole library so hierarchical references pick up the
// deduped sub-AIG (spec.md §4.7). Stops when no further pair merges.
func Dedup(lib *ir.Library) []error {
	var errs []error

	for {
		a, b, ok := findEquivalentPair(lib)
		if !ok {
			break
		}

		keep, drop := a, b
		if b.AIG.AndCount() < a.AIG.AndCount() {
			keep, drop = b, a
		}

		logrus.WithFields(logrus.Fields{
			"kept":     lib.Names.Str(keep.NameID),
			"replaced": lib.Names.Str(drop.NameID),
		}).Info("modules proven equivalent; deduplicating")

		drop.AIG = keep.AIG.Clone()

		if reErrs := blast.Blast(lib); len(reErrs) > 0 {
			errs = append(errs, reErrs...)
		}
	}

	return errs
}

func findEquivalentPair(lib *ir.Library) (a, b *ir.Module, ok bool) {
	for i := 0; i < len(lib.Modules); i++ {
		for k := i + 1; k < len(lib.Modules); k++ {
			mi, mk := lib.Modules[i], lib.Modules[k]

			if mi.AIG == nil || mk.AIG == nil {
				continue
			}

			if mi.AIG.InputCount() != mk.AIG.InputCount() || mi.AIG.OutputCount() != mk.AIG.OutputCount() {
				continue
			}

			if equiv.ProveEquivalent(mi.AIG, mk.AIG, 0) == equiv.Proven {
				return mi, mk, true
			}
		}
	}

	return nil, nil, false
}

// VerifyTop builds a miter between before and after (two AIGs with matching
// input/output counts, typically the top module's AIG captured before and
// after Dedup) and checks it for unsatisfiability: duplicate both into a
// fresh sink under shared inputs, XOR each pair of corresponding outputs,
// OR all the XORs together, and hand that single output to SolveSimple
// (spec.md §4.7's "invert outputs, OR them, solve" miter, generalized to
// two graphs so there is something nontrivial to compare against).
func VerifyTop(before, after *aig.Graph) (equiv.Status, error) {
	if before.InputCount() != after.InputCount() || before.OutputCount() != after.OutputCount() {
		return equiv.Disproven, &ir.VerifyError{Msg: "input/output count mismatch between pre- and post-dedup top AIGs"}
	}

	g := aig.Start()

	ins := make([]aig.Lit, before.InputCount())
	for i := range ins {
		ins[i] = g.AppendInput()
	}

	outsBefore := g.DuplicateWithRemap(before, ins)
	outsAfter := g.DuplicateWithRemap(after, ins)

	miter := aig.False
	for i := range outsBefore {
		miter = g.AppendOr(miter, g.AppendXor(outsBefore[i], outsAfter[i]))
	}

	g.AppendOutput(miter)

	return equiv.SolveSimple(g), nil
}
