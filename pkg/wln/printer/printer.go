// Package printer implements the textual dump format of spec.md §6: a
// round-trip-capable rendering of a Library back into the same grammar it
// was parsed from.
//
// Grounded on pkg/sexp's pretty-printer (walk the tree, indent by nesting
// depth, use the interning table to go back from ids to strings).
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/synthkit/wlnc/pkg/wln/ir"
)

// Print renders lib in the input grammar. Signal pools (Consts/Slices/
// Concats) are printed inline at each point of use, as the grammar
// expresses them, rather than as a separate section.
func Print(lib *ir.Library) string {
	var b strings.Builder

	for _, m := range lib.Modules {
		printModule(&b, lib, m)
	}

	return b.String()
}

func printModule(b *strings.Builder, lib *ir.Library, m *ir.Module) {
	for _, a := range m.Attrs {
		fmt.Fprintf(b, "attribute %s %s\n", lib.Names.Str(a.Key), lib.Names.Str(a.Val))
	}

	fmt.Fprintf(b, "module %s\n", lib.Names.Str(m.NameID))

	for _, w := range m.Wires {
		printWire(b, lib, w)
	}

	for _, c := range m.Cells {
		printCell(b, lib, c)
	}

	for _, conn := range m.Conns {
		fmt.Fprintf(b, "  connect %s %s\n", sigString(lib, conn.LHS), sigString(lib, conn.RHS))
	}

	b.WriteString("end\n")
}

func printWire(b *strings.Builder, lib *ir.Library, w ir.Wire) {
	b.WriteString("  wire")

	if w.Width != 1 {
		fmt.Fprintf(b, " width %d", w.Width)
	}

	if w.Offset != 0 {
		fmt.Fprintf(b, " offset %d", w.Offset)
	}

	if w.Input {
		fmt.Fprintf(b, " input %d", w.Port)
	}

	if w.Output {
		fmt.Fprintf(b, " output %d", w.Port)
	}

	if w.Signed {
		b.WriteString(" signed")
	}

	if w.Upto {
		b.WriteString(" upto")
	}

	fmt.Fprintf(b, " %s\n", lib.Names.Str(w.NameID))
}

func printCell(b *strings.Builder, lib *ir.Library, c ir.Cell) {
	for _, a := range c.Attrs {
		fmt.Fprintf(b, "  attribute %s %s\n", lib.Names.Str(a.Port), sigString(lib, a.Sig))
	}

	fmt.Fprintf(b, "  cell %s %s\n", lib.Names.Str(c.TypeID), lib.Names.Str(c.InstanceID))

	for _, p := range c.Params {
		fmt.Fprintf(b, "    parameter %s %s\n", lib.Names.Str(p.Port), sigString(lib, p.Sig))
	}

	for _, conn := range c.Conns {
		fmt.Fprintf(b, "    connect %s %s\n", lib.Names.Str(conn.Port), sigString(lib, conn.Sig))
	}

	b.WriteString("  end\n")
}

func sigString(lib *ir.Library, sig ir.Signal) string {
	switch sig.Kind {
	case ir.SigNone:
		return lib.Names.Str(sig.Index)
	case ir.SigConst:
		return constString(lib.Consts[sig.Index])
	case ir.SigSlice:
		// A space separates the wire name from its bracket: the tokenizer
		// splits on whitespace only, and the parser recognizes a slice by
		// inspecting the *next* token for a leading '[' (parser.go's
		// parseSig). Printing "name[3]" as one token would silently parse
		// back as a whole-wire SigNone reference to that literal string.
		s := lib.Slices[sig.Index]
		if s.Left == s.Right {
			return fmt.Sprintf("%s [%d]", lib.Names.Str(s.WireNameID), s.Left)
		}

		return fmt.Sprintf("%s [%d:%d]", lib.Names.Str(s.WireNameID), s.Left, s.Right)
	case ir.SigConcat:
		c := lib.Concats[sig.Index]

		parts := make([]string, len(c.Signals))
		for i, s := range c.Signals {
			parts[i] = sigString(lib, s)
		}

		return "{ " + strings.Join(parts, " ") + " }"
	}

	return "?"
}

func constString(c ir.Const) string {
	if c.Width == -1 {
		if len(c.Words) == 0 {
			return "0"
		}

		return strconv.FormatUint(uint64(c.Words[0]), 10)
	}

	bits := make([]byte, c.Width)
	for i := 0; i < c.Width; i++ {
		word, bit := i/32, i%32

		ch := byte('0')
		if word < len(c.Words) && (c.Words[word]>>uint(bit))&1 == 1 {
			ch = '1'
		}

		bits[c.Width-1-i] = ch
	}

	return fmt.Sprintf("%d'%s", c.Width, string(bits))
}
