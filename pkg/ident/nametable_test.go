package ident

import (
	"testing"

	"github.com/synthkit/wlnc/pkg/util/assert"
)

func TestTable_FindOrAdd(t *testing.T) {
	tbl := NewTable()

	id1 := tbl.FindOrAdd("module")
	id2 := tbl.FindOrAdd("wire")
	id3 := tbl.FindOrAdd("module")

	assert.Equal(t, id1, id3)
	assert.Equal(t, "module", tbl.Str(id1))
	assert.Equal(t, "wire", tbl.Str(id2))
	assert.Equal(t, 2, tbl.Size())
}

func TestTable_Find(t *testing.T) {
	tbl := NewTable()
	tbl.FindOrAdd("cell")

	if id, ok := tbl.Find("cell"); !ok || tbl.Str(id) != "cell" {
		t.Fatalf("expected to find interned id for \"cell\"")
	}

	if _, ok := tbl.Find("missing"); ok {
		t.Fatalf("did not expect to find \"missing\"")
	}
}

func TestTable_ReservedModuleToken(t *testing.T) {
	// The keyword map relies on "module" always landing at id 1 (see
	// pkg/wln/keyword), so that a zero keyword id can mean "absent".  This
	// test documents that contract at the table level: whichever caller
	// interns "module" first is assigned a stable, non-zero id so long as
	// at least one other string is interned before it.
	tbl := NewTable()
	tbl.FindOrAdd("")
	id := tbl.FindOrAdd("module")
	assert.Equal(t, 1, id)
}
