// Package parser implements the statement-driven recursive-descent Parser
// of spec.md §4.2: it consumes a token.Stream and keyword.Map and produces
// an ir.Library.
//
// Grounded on the teacher's pkg/sexp.Parser (a hand-rolled recursive
// descent parser driven by a token cursor and position-tagged errors), but
// restructured around this format's line-statement grammar instead of
// nested s-expressions.
package parser

import (
	"strconv"
	"strings"

	"github.com/synthkit/wlnc/pkg/ident"
	"github.com/synthkit/wlnc/pkg/wln/ir"
	"github.com/synthkit/wlnc/pkg/wln/keyword"
	"github.com/synthkit/wlnc/pkg/wln/token"
)

type parser struct {
	toks  []int
	pos   int
	names *ident.Table
	kw    *keyword.Map
	lib   *ir.Library
}

// Parse consumes stream (tokenized against names, with kw resolved from the
// same table) and builds the Library it describes.
func Parse(stream *token.Stream, names *ident.Table, kw *keyword.Map) (*ir.Library, error) {
	p := &parser{
		toks:  stream.Tokens,
		names: names,
		kw:    kw,
		lib:   ir.NewLibrary(),
	}
	p.lib.Names = names

	var pendingAttrs []ir.Attr

	for p.pos < len(p.toks) {
		if p.cur() == token.LineEnd {
			p.pos++
			continue
		}

		switch p.cur() {
		case kw.Attribute:
			a, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}

			pendingAttrs = append(pendingAttrs, a)
		case kw.Module:
			m, err := p.parseModule(pendingAttrs)
			if err != nil {
				return nil, err
			}

			pendingAttrs = nil
			p.lib.AddModule(m)
		default:
			return nil, p.errorf("expected 'attribute' or 'module'")
		}
	}

	return p.lib, nil
}

func (p *parser) cur() int {
	if p.pos >= len(p.toks) {
		return token.LineEnd
	}

	return p.toks[p.pos]
}

func (p *parser) str(tok int) string { return p.names.Str(tok) }

func (p *parser) errorf(format string) error {
	return &ir.ParseError{Span: ir.NewSpan(p.pos, p.pos+1), Msg: format}
}

// skipToLineEnd consumes tokens until (and including) the next LineEnd
// sentinel, tolerating trailing garbage rather than failing the whole
// statement on it.
func (p *parser) skipToLineEnd() {
	for p.cur() != token.LineEnd && p.pos < len(p.toks) {
		p.pos++
	}

	if p.pos < len(p.toks) {
		p.pos++ // consume the LineEnd itself
	}
}

func (p *parser) parseAttribute() (ir.Attr, error) {
	p.pos++ // "attribute"

	if p.cur() == token.LineEnd {
		return ir.Attr{}, p.errorf("attribute: missing key/value")
	}

	key := p.cur()
	p.pos++

	if p.cur() == token.LineEnd {
		return ir.Attr{}, p.errorf("attribute: missing value")
	}

	val := p.cur()
	p.pos++
	p.skipToLineEnd()

	return ir.Attr{Key: key, Val: val}, nil
}

func (p *parser) parseModule(pendingAttrs []ir.Attr) (*ir.Module, error) {
	p.pos++ // "module"

	if p.cur() == token.LineEnd {
		return nil, p.errorf("module: missing name")
	}

	nameID := p.cur()
	p.pos++
	p.skipToLineEnd()

	m := ir.NewModule(nameID)
	m.Attrs = append(m.Attrs, pendingAttrs...)
	m.SliceBegin = len(p.lib.Slices)

	var cellPendingAttrs []ir.Attr

	for {
		if p.pos >= len(p.toks) {
			return nil, p.errorf("module: missing 'end'")
		}

		if p.cur() == token.LineEnd {
			p.pos++
			continue
		}

		switch p.cur() {
		case p.kw.End:
			p.pos++
			p.skipToLineEnd()
			m.SliceEnd = len(p.lib.Slices)
			m.Attrs = append(m.Attrs, cellPendingAttrs...)

			return m, nil
		case p.kw.Attribute:
			a, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}

			cellPendingAttrs = append(cellPendingAttrs, a)
		case p.kw.Wire:
			w, err := p.parseWire()
			if err != nil {
				return nil, err
			}

			m.Wires = append(m.Wires, w)
		case p.kw.Cell:
			c, err := p.parseCell(cellPendingAttrs)
			if err != nil {
				return nil, err
			}

			cellPendingAttrs = nil
			m.Cells = append(m.Cells, *c)
		case p.kw.Connect:
			conn, err := p.parseConnect()
			if err != nil {
				return nil, err
			}

			m.Conns = append(m.Conns, conn)
		default:
			return nil, p.errorf("unexpected token inside module")
		}
	}
}

func (p *parser) parseWire() (ir.Wire, error) {
	p.pos++ // "wire"

	w := ir.Wire{Width: 1}
	haveName := false

	for p.cur() != token.LineEnd {
		tok := p.cur()

		switch {
		case tok == p.kw.Width:
			p.pos++
			n, err := p.parseIntToken()
			if err != nil {
				return w, err
			}

			w.Width = n
		case tok == p.kw.Offset:
			p.pos++
			n, err := p.parseIntToken()
			if err != nil {
				return w, err
			}

			w.Offset = n
		case tok == p.kw.Input:
			p.pos++
			n, err := p.parseIntToken()
			if err != nil {
				return w, err
			}

			w.Input = true
			w.Port = n
		case tok == p.kw.Output:
			p.pos++
			n, err := p.parseIntToken()
			if err != nil {
				return w, err
			}

			w.Output = true
			w.Port = n
		case tok == p.kw.Signed:
			p.pos++
			w.Signed = true
		case tok == p.kw.Upto:
			p.pos++
			w.Upto = true
		default:
			w.NameID = tok
			haveName = true
			p.pos++
		}
	}

	if !haveName {
		return w, p.errorf("wire: missing name")
	}

	p.skipToLineEnd()

	return w, nil
}

func (p *parser) parseIntToken() (int, error) {
	if p.cur() == token.LineEnd {
		return 0, p.errorf("expected integer")
	}

	n, err := strconv.Atoi(p.str(p.cur()))
	if err != nil {
		return 0, p.errorf("malformed integer")
	}

	p.pos++

	return n, nil
}

func (p *parser) parseCell(pendingAttrs []ir.Attr) (*ir.Cell, error) {
	p.pos++ // "cell"

	if p.cur() == token.LineEnd {
		return nil, p.errorf("cell: missing type")
	}

	typeID := p.cur()
	p.pos++

	if p.cur() == token.LineEnd {
		return nil, p.errorf("cell: missing instance name")
	}

	instID := p.cur()
	p.pos++
	p.skipToLineEnd()

	c := &ir.Cell{TypeID: typeID, InstanceID: instID}
	for _, a := range pendingAttrs {
		c.Attrs = append(c.Attrs, ir.PortSignal{Port: a.Key, Sig: ir.NoneSignal(a.Val)})
	}

	for {
		if p.pos >= len(p.toks) {
			return nil, p.errorf("cell: missing 'end'")
		}

		if p.cur() == token.LineEnd {
			p.pos++
			continue
		}

		switch p.cur() {
		case p.kw.End:
			p.pos++
			p.skipToLineEnd()

			return c, nil
		case p.kw.Parameter:
			p.pos++

			port, sig, err := p.parsePortSignalPair()
			if err != nil {
				return nil, err
			}

			c.Params = append(c.Params, ir.PortSignal{Port: port, Sig: sig})
		case p.kw.Connect:
			p.pos++

			port, sig, err := p.parsePortSignalPair()
			if err != nil {
				return nil, err
			}

			c.Conns = append(c.Conns, ir.PortSignal{Port: port, Sig: sig})
		default:
			return nil, p.errorf("unexpected token inside cell body")
		}
	}
}

// parsePortSignalPair parses the `SIG SIG` pair common to `parameter` and
// `connect` cell-body statements: the first SIG names the port (used here
// purely as a NameID, regardless of its own signal kind) and the second is
// the signal actually attached to it.
func (p *parser) parsePortSignalPair() (port int, sig ir.Signal, err error) {
	portSig, err := p.parseSig()
	if err != nil {
		return 0, ir.Signal{}, err
	}

	sig, err = p.parseSig()
	if err != nil {
		return 0, ir.Signal{}, err
	}

	return portSig.Index, sig, nil
}

func (p *parser) parseConnect() (ir.Connection, error) {
	p.pos++ // "connect"

	lhs, err := p.parseSig()
	if err != nil {
		return ir.Connection{}, err
	}

	rhs, err := p.parseSig()
	if err != nil {
		return ir.Connection{}, err
	}

	p.skipToLineEnd()

	return ir.Connection{LHS: lhs, RHS: rhs}, nil
}

func (p *parser) parseSig() (ir.Signal, error) {
	if p.cur() == token.LineEnd {
		return ir.Signal{}, p.errorf("expected signal")
	}

	str := p.str(p.cur())

	switch {
	case str == "{":
		return p.parseConcat()
	case len(str) > 0 && str[0] >= '0' && str[0] <= '9':
		p.pos++
		return p.parseConst(str)
	default:
		nameID := p.cur()
		p.pos++

		if p.cur() != token.LineEnd {
			next := p.str(p.cur())
			if strings.HasPrefix(next, "[") {
				p.pos++
				return p.parseSlice(nameID, next)
			}
		}

		return ir.NoneSignal(nameID), nil
	}
}

func (p *parser) parseConcat() (ir.Signal, error) {
	p.pos++ // "{"

	var sigs []ir.Signal

	for {
		if p.cur() == token.LineEnd {
			return ir.Signal{}, p.errorf("concat: missing '}'")
		}

		if p.str(p.cur()) == "}" {
			p.pos++
			break
		}

		sig, err := p.parseSig()
		if err != nil {
			return ir.Signal{}, err
		}

		sigs = append(sigs, sig)
	}

	if len(sigs) == 0 {
		return ir.Signal{}, p.errorf("concat: empty")
	}

	return p.lib.AddConcat(ir.Concat{Signals: sigs}), nil
}

// parseConst parses a numeric SIG token: plain decimal/hex integers are
// untyped (Width == -1); tokens containing `'` are sized bit-literals
// ("WIDTH'BITS", e.g. 8'10110101).
func (p *parser) parseConst(str string) (ir.Signal, error) {
	if idx := strings.IndexByte(str, '\''); idx >= 0 {
		widthStr, bits := str[:idx], str[idx+1:]

		width, err := strconv.Atoi(widthStr)
		if err != nil {
			return ir.Signal{}, p.errorf("malformed sized constant width")
		}

		words := bitsToWords(bits)

		return p.lib.AddConst(ir.Const{Width: width, Words: words}), nil
	}

	val, err := strconv.ParseInt(str, 0, 64)
	if err != nil {
		return ir.Signal{}, p.errorf("malformed integer constant")
	}

	return p.lib.AddConst(ir.Const{Width: -1, Words: []uint32{uint32(val)}}), nil
}

// bitsToWords packs a MSB-first binary-digit string into little-endian
// 32-bit words.
func bitsToWords(bits string) []uint32 {
	nwords := (len(bits) + 31) / 32
	if nwords == 0 {
		nwords = 1
	}

	words := make([]uint32, nwords)

	for i := 0; i < len(bits); i++ {
		ch := bits[len(bits)-1-i]
		if ch == '1' {
			words[i/32] |= 1 << uint(i%32)
		}
	}

	return words
}

// parseSlice parses the `[L]` or `[L:R]` bracket token immediately
// following a wire name.
func (p *parser) parseSlice(nameID int, bracket string) (ir.Signal, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(bracket, "["), "]")

	parts := strings.SplitN(inner, ":", 2)

	left, err := strconv.Atoi(parts[0])
	if err != nil {
		return ir.Signal{}, p.errorf("malformed slice index")
	}

	right := left
	if len(parts) == 2 {
		right, err = strconv.Atoi(parts[1])
		if err != nil {
			return ir.Signal{}, p.errorf("malformed slice range")
		}
	}

	return p.lib.AddSlice(ir.Slice{WireNameID: nameID, Left: left, Right: right}), nil
}
