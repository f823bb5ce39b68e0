package keyword

import (
	"testing"

	"github.com/synthkit/wlnc/pkg/ident"
	"github.com/synthkit/wlnc/pkg/util/assert"
)

func TestNew_ModuleIsFirstInterned(t *testing.T) {
	names := ident.NewTable()
	kw := New(names)

	assert.Equal(t, 1, kw.Module)
	assert.Equal(t, "module", names.Str(kw.Module))
	assert.Equal(t, "connect", names.Str(kw.Connect))
}

func TestNew_AllDistinct(t *testing.T) {
	names := ident.NewTable()
	kw := New(names)

	seen := map[int]bool{}
	ids := []int{kw.Module, kw.End, kw.Wire, kw.Width, kw.Offset, kw.Input,
		kw.Output, kw.Signed, kw.Upto, kw.Attribute, kw.Cell, kw.Parameter, kw.Connect}

	for _, id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
}
