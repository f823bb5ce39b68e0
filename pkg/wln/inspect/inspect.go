// Package inspect implements an interactive terminal browser over a
// compiled Library: one tab per module, each showing its wires and cell
// instances in declaration order.
//
// Grounded on pkg/cmd/inspector's Tabs/Table-driven navigation loop,
// reduced to the single browse mode this IR needs (no trace expansion, no
// perspectives, no query language).
package inspect

import (
	"fmt"

	"github.com/synthkit/wlnc/pkg/util/termio"
	"github.com/synthkit/wlnc/pkg/util/termio/widget"
	"github.com/synthkit/wlnc/pkg/wln/ir"
)

// Run launches the interactive browser against lib until the user quits.
func Run(lib *ir.Library) error {
	term, err := termio.NewTerminal()
	if err != nil {
		return err
	}

	defer term.Restore()

	names := make([]string, len(lib.Modules))
	for i, m := range lib.Modules {
		names[i] = lib.Names.Str(m.NameID)
	}

	tabs := widget.NewTabs(names...)
	status := widget.NewText()
	table := widget.NewTable(newModuleSource(lib, lib.Modules[0]))

	term.Add(tabs)
	term.Add(widget.NewSeparator("-"))
	term.Add(status)
	term.Add(table)

	setStatus(status, lib, lib.Modules[0])

	for {
		if err := term.Render(); err != nil {
			return err
		}

		key, err := term.ReadKey()
		if err != nil {
			return err
		}

		switch key {
		case 'q':
			return nil
		case termio.TAB:
			tabs.Select(tabs.Selected() + 1)
			m := lib.Modules[tabs.Selected()]
			table.SetSource(newModuleSource(lib, m))
			setStatus(status, lib, m)
		case termio.BACKTAB:
			tabs.Select(tabs.Selected() + uint(len(lib.Modules)) - 1)
			m := lib.Modules[tabs.Selected()]
			table.SetSource(newModuleSource(lib, m))
			setStatus(status, lib, m)
		}
	}
}

// setStatus refreshes the status line shown below the module tabs with a
// one-line summary of the selected module.
func setStatus(status *widget.TextLine, lib *ir.Library, m *ir.Module) {
	status.Clear()
	status.Add(termio.NewText(fmt.Sprintf(
		"%s: %d wires, %d cells, %d inputs, %d outputs",
		lib.Names.Str(m.NameID), len(m.Wires), len(m.Cells), m.NInputs, m.NOutputs)))
}

// moduleSource renders one module's wires (input/output/internal) followed
// by its cell instances as a one-column table, one row per wire or cell.
type moduleSource struct {
	lib  *ir.Library
	rows []termio.FormattedText
}

func newModuleSource(lib *ir.Library, m *ir.Module) *moduleSource {
	var rows []termio.FormattedText

	for _, w := range m.Wires {
		kind := "wire"

		switch {
		case w.Input:
			kind = "input"
		case w.Output:
			kind = "output"
		}

		rows = append(rows, termio.NewText(fmt.Sprintf("%-6s width %-4d %s", kind, w.Width, lib.Names.Str(w.NameID))))
	}

	for _, c := range m.Cells {
		rows = append(rows, termio.NewColouredText(
			fmt.Sprintf("cell %s %s", lib.Names.Str(c.TypeID), lib.Names.Str(c.InstanceID)),
			termio.TERM_YELLOW))
	}

	return &moduleSource{lib, rows}
}

// ColumnWidth returns the width of the (only) column.
func (s *moduleSource) ColumnWidth(col uint) uint {
	if col != 0 {
		return 0
	}

	max := uint(8)

	for _, r := range s.rows {
		if l := r.Len(); l > max {
			max = l
		}
	}

	return max
}

// Dimensions returns the size of the table.
func (s *moduleSource) Dimensions() (uint, uint) {
	return 1, uint(len(s.rows))
}

// CellAt returns the content of a given cell in the table.
func (s *moduleSource) CellAt(col, row uint) termio.FormattedText {
	if col != 0 || row >= uint(len(s.rows)) {
		return termio.NewText("")
	}

	return s.rows[row]
}
