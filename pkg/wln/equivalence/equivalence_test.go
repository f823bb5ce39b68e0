package equivalence

import (
	"testing"

	"github.com/synthkit/wlnc/pkg/aig"
	"github.com/synthkit/wlnc/pkg/aig/equiv"
	"github.com/synthkit/wlnc/pkg/ident"
	"github.com/synthkit/wlnc/pkg/util/assert"
	"github.com/synthkit/wlnc/pkg/wln/ir"
)

func buildDirectAnd() *aig.Graph {
	g := aig.Start()
	a := g.AppendInput()
	b := g.AppendInput()
	g.AppendOutput(g.AppendAnd(a, b))

	return g
}

func buildDeMorganAnd() *aig.Graph {
	g := aig.Start()
	a := g.AppendInput()
	b := g.AppendInput()
	g.AppendOutput(aig.Not(g.AppendOr(aig.Not(a), aig.Not(b))))

	return g
}

func TestDedup_MergesEquivalentModules(t *testing.T) {
	lib := ir.NewLibrary()
	names := ident.NewTable()
	lib.Names = names

	a := ir.NewModule(names.FindOrAdd("a"))
	a.AIG = buildDirectAnd()

	b := ir.NewModule(names.FindOrAdd("b"))
	b.AIG = buildDeMorganAnd()

	lib.AddModule(a)
	lib.AddModule(b)

	errs := Dedup(lib)
	assert.Equal(t, 0, len(errs))

	assert.Equal(t, a.AIG.AndCount(), b.AIG.AndCount())
	assert.Equal(t, equiv.Proven, equiv.ProveEquivalent(a.AIG, b.AIG, 0))
}

func TestVerifyTop_IdenticalGraphsAreProven(t *testing.T) {
	g1 := buildDirectAnd()
	g2 := buildDeMorganAnd()

	status, err := VerifyTop(g1, g2)
	assert.True(t, err == nil)
	assert.Equal(t, equiv.Proven, status)
}

func TestVerifyTop_DifferentGraphsAreDisproven(t *testing.T) {
	orGraph := aig.Start()
	a := orGraph.AppendInput()
	b := orGraph.AppendInput()
	orGraph.AppendOutput(orGraph.AppendOr(a, b))

	status, err := VerifyTop(buildDirectAnd(), orGraph)
	assert.True(t, err == nil)
	assert.Equal(t, equiv.Disproven, status)
}
