package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/synthkit/wlnc/pkg/ident"
	"github.com/synthkit/wlnc/pkg/util/assert"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "in.wln")

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestTokenize_SkipsCommentsAndBlankLines(t *testing.T) {
	path := writeTemp(t, "# a comment\n\nmodule m\nend\n")
	names := ident.NewTable()

	s, err := Tokenize(path, names)
	assert.True(t, err == nil)

	module := names.FindOrAdd("module")
	end := names.FindOrAdd("end")
	m := names.FindOrAdd("m")

	assert.Equal(t, []int{module, m, LineEnd, end, LineEnd}, s.Tokens)
}

func TestTokenize_PreservesQuotedSpaces(t *testing.T) {
	path := writeTemp(t, `attribute \src "my file.v:3"` + "\n")
	names := ident.NewTable()

	s, err := Tokenize(path, names)
	assert.True(t, err == nil)

	quoted := `"my file.v:3"`
	id, ok := names.Find(quoted)
	assert.True(t, ok)

	found := false
	for _, tok := range s.Tokens {
		if tok == id {
			found = true
		}
	}
	assert.True(t, found)
}

func TestTokenize_MissingFileIsFileError(t *testing.T) {
	names := ident.NewTable()
	_, err := Tokenize(filepath.Join(t.TempDir(), "missing.wln"), names)
	assert.True(t, err != nil)
}
