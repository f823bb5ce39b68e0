package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/synthkit/wlnc/pkg/ident"
	"github.com/synthkit/wlnc/pkg/util/assert"
	"github.com/synthkit/wlnc/pkg/wln/ir"
	"github.com/synthkit/wlnc/pkg/wln/keyword"
	"github.com/synthkit/wlnc/pkg/wln/token"
)

func parseSource(t *testing.T, src string) *ir.Library {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "in.wln")

	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	names := ident.NewTable()
	kw := keyword.New(names)

	stream, err := token.Tokenize(path, names)
	assert.True(t, err == nil)

	lib, err := Parse(stream, names, kw)
	assert.True(t, err == nil)

	return lib
}

func TestParse_SingleAndGate(t *testing.T) {
	src := `module m1
wire input 1 a
wire input 2 b
wire output 1 y
cell $and g0
connect \A a
connect \B b
connect \Y y
end
end
`
	lib := parseSource(t, src)

	assert.Equal(t, 1, len(lib.Modules))

	m := lib.Modules[0]
	assert.Equal(t, 3, len(m.Wires))
	assert.Equal(t, 1, len(m.Cells))

	cell := m.Cells[0]
	assert.Equal(t, 3, len(cell.Conns))
}

func TestParse_SliceAndConcat(t *testing.T) {
	src := `module m2
wire width 4 x
wire width 4 y
connect y { x [3] x [2] x [1] x [0] }
end
`
	lib := parseSource(t, src)
	m := lib.Modules[0]

	assert.Equal(t, 1, len(m.Conns))
	rhs := m.Conns[0].RHS
	assert.Equal(t, ir.SigConcat, rhs.Kind)
	assert.Equal(t, 4, len(lib.Concats[rhs.Index].Signals))

	for _, s := range lib.Concats[rhs.Index].Signals {
		assert.Equal(t, ir.SigSlice, s.Kind)
	}
}

func TestParse_SizedConstantParameter(t *testing.T) {
	src := `module m3
cell $add g0
parameter \A_SIGNED 1'1
end
end
`
	lib := parseSource(t, src)
	m := lib.Modules[0]
	cell := m.Cells[0]

	assert.Equal(t, 1, len(cell.Params))

	sig := cell.Params[0].Sig
	assert.Equal(t, ir.SigConst, sig.Kind)
	assert.Equal(t, 1, lib.Consts[sig.Index].Width)
	assert.Equal(t, uint32(1), lib.Consts[sig.Index].Words[0])
}

func TestParse_UntypedConstant(t *testing.T) {
	src := `module m4
connect w 42
end
`
	lib := parseSource(t, src)
	m := lib.Modules[0]

	rhs := m.Conns[0].RHS
	assert.Equal(t, ir.SigConst, rhs.Kind)
	assert.Equal(t, -1, lib.Consts[rhs.Index].Width)
	assert.Equal(t, uint32(42), lib.Consts[rhs.Index].Words[0])
}

func TestParse_ModuleAttributes(t *testing.T) {
	src := `attribute \top 1
module m5
end
`
	lib := parseSource(t, src)
	m := lib.Modules[0]
	assert.Equal(t, 1, len(m.Attrs))
}
