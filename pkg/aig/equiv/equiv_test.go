package equiv

import (
	"testing"

	"github.com/synthkit/wlnc/pkg/aig"
	"github.com/synthkit/wlnc/pkg/util/assert"
)

func buildAnd(t *testing.T) *aig.Graph {
	t.Helper()

	g := aig.Start()
	a := g.AppendInput()
	b := g.AppendInput()
	g.AppendOutput(g.AppendAnd(a, b))

	return g
}

func buildTwoGateAnd(t *testing.T) *aig.Graph {
	t.Helper()

	g := aig.Start()
	a := g.AppendInput()
	b := g.AppendInput()
	// a AND NOT(a AND NOT b) == a AND b, built from two AND gates rather
	// than the single direct AND of buildAnd.
	nab := g.AppendAnd(a, aig.Not(b))
	g.AppendOutput(g.AppendAnd(a, aig.Not(nab)))

	return g
}

func buildOr(t *testing.T) *aig.Graph {
	t.Helper()

	g := aig.Start()
	a := g.AppendInput()
	b := g.AppendInput()
	g.AppendOutput(g.AppendOr(a, b))

	return g
}

func TestProveEquivalent_StructurallyDifferentButEqual(t *testing.T) {
	a := buildAnd(t)
	b := buildTwoGateAnd(t)
	assert.Equal(t, Proven, ProveEquivalent(a, b, 0))
}

func TestProveEquivalent_Disproven(t *testing.T) {
	a := buildAnd(t)
	b := buildOr(t)
	assert.Equal(t, Disproven, ProveEquivalent(a, b, 0))
}

func TestSolveSimple(t *testing.T) {
	g := aig.Start()
	a := g.AppendInput()
	g.AppendOutput(g.AppendAnd(a, aig.Not(a)))
	assert.Equal(t, Proven, SolveSimple(g))

	g2 := aig.Start()
	i := g2.AppendInput()
	g2.AppendOutput(i)
	assert.Equal(t, Disproven, SolveSimple(g2))
}
