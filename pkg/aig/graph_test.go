package aig

import (
	"testing"

	"github.com/synthkit/wlnc/pkg/util/assert"
)

func TestGraph_AndGate(t *testing.T) {
	g := Start()
	a := g.AppendInput()
	b := g.AppendInput()
	y := g.AppendAnd(a, b)
	g.AppendOutput(y)

	assert.Equal(t, 2, g.InputCount())
	assert.Equal(t, 1, g.OutputCount())
	assert.Equal(t, 1, g.AndCount())

	cases := []struct {
		a, b, want bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}

	for _, c := range cases {
		out := g.Eval([]bool{c.a, c.b})
		assert.Equal(t, c.want, out[0])
	}
}

func TestGraph_StructuralHashing(t *testing.T) {
	g := Start()
	a := g.AppendInput()
	b := g.AppendInput()

	y1 := g.AppendAnd(a, b)
	y2 := g.AppendAnd(b, a)
	g.AppendOutput(y1)
	g.AppendOutput(y2)

	assert.Equal(t, y1, y2)
	assert.Equal(t, 1, g.AndCount())
}

func TestGraph_TrivialSimplification(t *testing.T) {
	g := Start()
	a := g.AppendInput()

	assert.Equal(t, False, g.AppendAnd(a, False))
	assert.Equal(t, a, g.AppendAnd(a, True))
	assert.Equal(t, a, g.AppendAnd(a, a))
	assert.Equal(t, False, g.AppendAnd(a, Not(a)))
}

func TestGraph_Cleanup(t *testing.T) {
	g := Start()
	a := g.AppendInput()
	b := g.AppendInput()
	_ = g.AppendAnd(a, b) // dead: never used downstream
	g.AppendOutput(a)

	before := len(g.nodes)
	g.Cleanup()

	assert.Equal(t, 2, g.InputCount())
	assert.Equal(t, 0, g.AndCount())

	if len(g.nodes) >= before {
		t.Fatalf("expected cleanup to shrink node count")
	}
}

func TestGraph_DuplicateWithRemap(t *testing.T) {
	sub := Start()
	si := sub.AppendInput()
	sub.AppendOutput(Not(si))

	top := Start()
	ti := top.AppendInput()
	outs := top.DuplicateWithRemap(sub, []Lit{ti})
	top.AppendOutput(outs[0])

	res := top.Eval([]bool{true})
	assert.Equal(t, false, res[0])

	res = top.Eval([]bool{false})
	assert.Equal(t, true, res[0])
}

func TestGraph_Clone(t *testing.T) {
	g := Start()
	a := g.AppendInput()
	b := g.AppendInput()
	g.AppendOutput(g.AppendAnd(a, b))

	clone := g.Clone()
	assert.Equal(t, g.InputCount(), clone.InputCount())
	assert.Equal(t, g.OutputCount(), clone.OutputCount())

	for _, in := range [][]bool{{false, false}, {true, false}, {true, true}} {
		assert.Equal(t, g.Eval(in), clone.Eval(in))
	}
}
