package ir

import (
	"testing"

	"github.com/synthkit/wlnc/pkg/util/assert"
)

func TestLibrary_AddModuleAndLookup(t *testing.T) {
	l := NewLibrary()
	nameID := l.Names.FindOrAdd("top")
	m := NewModule(nameID)
	l.AddModule(m)

	assert.Equal(t, m, l.ModuleByNameID(nameID))
	assert.True(t, l.ModuleByNameID(l.Names.FindOrAdd("missing")) == nil)
}

func TestLibrary_PoolInterning(t *testing.T) {
	l := NewLibrary()

	s1 := l.AddConst(Const{Width: 8, Words: []uint32{42}})
	s2 := l.AddSlice(Slice{WireNameID: 1, Left: 3, Right: 0})
	s3 := l.AddConcat(Concat{Signals: []Signal{s1, s2}})

	assert.Equal(t, SigConst, s1.Kind)
	assert.Equal(t, 0, s1.Index)
	assert.Equal(t, SigSlice, s2.Kind)
	assert.Equal(t, 0, s2.Index)
	assert.Equal(t, SigConcat, s3.Kind)
	assert.Equal(t, uint32(42), l.Consts[s1.Index].Words[0])
	assert.Equal(t, 3, l.Slices[s2.Index].Left)
	assert.Equal(t, 2, len(l.Concats[s3.Index].Signals))
}

func TestLibrary_ScratchIsClearedEachCall(t *testing.T) {
	l := NewLibrary()

	m := l.Scratch()
	m[1] = 2

	m2 := l.Scratch()
	_, ok := m2[1]
	assert.False(t, ok)
}

func TestLibrary_ResolveModuleOrder(t *testing.T) {
	l := NewLibrary()

	a := NewModule(l.Names.FindOrAdd("a"))
	a.PlacementIndex = 2
	b := NewModule(l.Names.FindOrAdd("b"))
	b.PlacementIndex = 0
	c := NewModule(l.Names.FindOrAdd("c"))
	c.PlacementIndex = 1

	l.AddModule(a)
	l.AddModule(b)
	l.AddModule(c)

	ordered := l.ResolveModuleOrder()
	assert.Equal(t, b, ordered[0])
	assert.Equal(t, c, ordered[1])
	assert.Equal(t, a, ordered[2])
}
