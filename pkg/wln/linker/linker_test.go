package linker

import (
	"testing"

	"github.com/synthkit/wlnc/pkg/ident"
	"github.com/synthkit/wlnc/pkg/util/assert"
	"github.com/synthkit/wlnc/pkg/wln/ir"
)

func TestLink_ResolvesBuiltinOperator(t *testing.T) {
	lib := ir.NewLibrary()
	names := ident.NewTable()
	lib.Names = names

	m := ir.NewModule(names.FindOrAdd("top"))
	m.Cells = append(m.Cells, ir.Cell{
		TypeID:     names.FindOrAdd("$and"),
		InstanceID: names.FindOrAdd("g0"),
		Conns:      []ir.PortSignal{{}, {}, {}},
	})
	lib.AddModule(m)

	errs := Link(lib)
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, int(ir.OpAnd), lib.Modules[0].Cells[0].Resolved)
	assert.Equal(t, 2, lib.Modules[0].Cells[0].InputCount)
}

func TestLink_UndefinedModuleIsBlackbox(t *testing.T) {
	lib := ir.NewLibrary()
	names := ident.NewTable()
	lib.Names = names

	m := ir.NewModule(names.FindOrAdd("top"))
	m.Cells = append(m.Cells, ir.Cell{
		TypeID:     names.FindOrAdd("missing_module"),
		InstanceID: names.FindOrAdd("g0"),
	})
	lib.AddModule(m)

	errs := Link(lib)
	assert.Equal(t, 0, len(errs))
	assert.True(t, ir.IsBlackbox(lib.Modules[0].Cells[0].Resolved))
}

func TestLink_ReordersCalleesBeforeCallers(t *testing.T) {
	lib := ir.NewLibrary()
	names := ident.NewTable()
	lib.Names = names

	top := ir.NewModule(names.FindOrAdd("top"))
	top.Cells = append(top.Cells, ir.Cell{TypeID: names.FindOrAdd("sub"), InstanceID: names.FindOrAdd("u0")})

	sub := ir.NewModule(names.FindOrAdd("sub"))

	// declared in caller-before-callee order
	lib.AddModule(top)
	lib.AddModule(sub)

	errs := Link(lib)
	assert.Equal(t, 0, len(errs))

	subIdx, okSub := indexOf(lib, names.FindOrAdd("sub"))
	topIdx, okTop := indexOf(lib, names.FindOrAdd("top"))
	assert.True(t, okSub)
	assert.True(t, okTop)
	assert.True(t, subIdx < topIdx)

	calleeIdx, ok := ir.IsHierarchical(lib.Modules[topIdx].Cells[0].Resolved)
	assert.True(t, ok)
	assert.Equal(t, subIdx, calleeIdx)
}

func TestLink_CyclicHierarchyIsLinkError(t *testing.T) {
	lib := ir.NewLibrary()
	names := ident.NewTable()
	lib.Names = names

	a := ir.NewModule(names.FindOrAdd("a"))
	a.Cells = append(a.Cells, ir.Cell{TypeID: names.FindOrAdd("b"), InstanceID: names.FindOrAdd("u0")})
	b := ir.NewModule(names.FindOrAdd("b"))
	b.Cells = append(b.Cells, ir.Cell{TypeID: names.FindOrAdd("a"), InstanceID: names.FindOrAdd("u0")})

	lib.AddModule(a)
	lib.AddModule(b)

	errs := Link(lib)
	assert.True(t, len(errs) > 0)
}

func indexOf(lib *ir.Library, nameID int) (int, bool) {
	for i, m := range lib.Modules {
		if m.NameID == nameID {
			return i, true
		}
	}

	return 0, false
}
