package blast

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/synthkit/wlnc/pkg/ident"
	"github.com/synthkit/wlnc/pkg/util/assert"
	"github.com/synthkit/wlnc/pkg/wln/keyword"
	"github.com/synthkit/wlnc/pkg/wln/linker"
	"github.com/synthkit/wlnc/pkg/wln/normalizer"
	"github.com/synthkit/wlnc/pkg/wln/parser"
	"github.com/synthkit/wlnc/pkg/wln/scheduler"
	"github.com/synthkit/wlnc/pkg/wln/token"
)

func TestBlast_SingleAndGate(t *testing.T) {
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
	dir := t.TempDir()
	path := filepath.Join(dir, "in.wln")

	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	names := ident.NewTable()
	kw := keyword.New(names)

	stream, err := token.Tokenize(path, names)
	assert.True(t, err == nil)

	lib, err := parser.Parse(stream, names, kw)
	assert.True(t, err == nil)

	linkErrs := linker.Link(lib)
	assert.Equal(t, 0, len(linkErrs))

	normErrs := normalizer.Normalize(lib)
	assert.Equal(t, 0, len(normErrs))

	schedErrs := scheduler.Schedule(lib)
	assert.Equal(t, 0, len(schedErrs))

	blastErrs := Blast(lib)
	assert.Equal(t, 0, len(blastErrs))

	g := lib.Modules[0].AIG
	assert.Equal(t, 2, g.InputCount())
	assert.Equal(t, 1, g.OutputCount())

	out := g.Eval([]bool{true, true})
	assert.True(t, out[0])

	out = g.Eval([]bool{true, false})
	assert.False(t, out[0])
}

func TestBlast_SliceAndConcatReversesBits(t *testing.T) {
	src := `module m2
wire width 4 input 1 x
wire width 4 output 1 y
connect y { x [0] x [1] x [2] x [3] }
end
`
	dir := t.TempDir()
	path := filepath.Join(dir, "in.wln")

	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	names := ident.NewTable()
	kw := keyword.New(names)

	stream, err := token.Tokenize(path, names)
	assert.True(t, err == nil)

	lib, err := parser.Parse(stream, names, kw)
	assert.True(t, err == nil)

	assert.Equal(t, 0, len(linker.Link(lib)))
	assert.Equal(t, 0, len(normalizer.Normalize(lib)))
	assert.Equal(t, 0, len(scheduler.Schedule(lib)))
	assert.Equal(t, 0, len(Blast(lib)))

	g := lib.Modules[0].AIG
	assert.Equal(t, 4, g.InputCount())
	assert.Equal(t, 4, g.OutputCount())

	out := g.Eval([]bool{true, false, false, false})
	assert.True(t, out[3])
	assert.False(t, out[0])
}
