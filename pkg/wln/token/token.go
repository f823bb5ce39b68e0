// Package token implements the Tokenizer of spec.md §4.1: it reads the
// input file, strips comment lines, preserves quoted spaces, interns every
// whitespace-separated token, and emits a flat stream of NameIDs with -1 as
// a logical line terminator.
//
// Grounded on the teacher's pkg/sexp line-oriented scanner (read fully, not
// reused verbatim: that scanner tokenizes s-expressions character by
// character, whereas this format is already whitespace-delimited per line,
// so a simpler split-based scan fits better).
package token

import (
	"bufio"
	"os"
	"strings"

	"github.com/synthkit/wlnc/pkg/ident"
	"github.com/synthkit/wlnc/pkg/wln/ir"
)

// LineEnd is the logical line-terminator sentinel appended to the stream
// after every non-empty, non-comment source line.
const LineEnd = -1

// maxLineLength bounds how much of a single line the scanner will buffer, to
// avoid unbounded memory use on pathological input. A longer line stops the
// scan and Tokenize returns a FileError.
const maxLineLength = 1 << 20

// quoteSentinel stands in for a space character inside a double-quoted
// substring while the line is being split on whitespace; restored to a real
// space once the substring has been isolated as a single field.
const quoteSentinel = '\x00'

// Stream is the tokenizer's flat output: a sequence of interned NameIDs
// interspersed with LineEnd sentinels.
type Stream struct {
	Tokens []int
}

// Len returns the number of entries (tokens and sentinels) in the stream.
func (s *Stream) Len() int { return len(s.Tokens) }

// Tokenize reads path line by line and interns every token into names,
// returning the resulting Stream. Lines beginning with '#' are comments and
// produce no tokens; blank lines likewise produce nothing (not even a bare
// sentinel).
func Tokenize(path string, names *ident.Table) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ir.FileError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	s := &Stream{}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}

		fields := splitPreservingQuotes(line)
		if len(fields) == 0 {
			continue
		}

		for _, f := range fields {
			s.Tokens = append(s.Tokens, names.FindOrAdd(f))
		}

		s.Tokens = append(s.Tokens, LineEnd)
	}

	if err := scanner.Err(); err != nil {
		return nil, &ir.FileError{Path: path, Err: err}
	}

	return s, nil
}

// splitPreservingQuotes splits line on whitespace, except that whitespace
// inside a double-quoted substring is preserved as part of that one field.
func splitPreservingQuotes(line string) []string {
	var masked strings.Builder

	inQuote := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			masked.WriteRune(r)
		case r == ' ' && inQuote:
			masked.WriteRune(quoteSentinel)
		default:
			masked.WriteRune(r)
		}
	}

	fields := strings.Fields(masked.String())
	for i, f := range fields {
		fields[i] = strings.ReplaceAll(f, string(quoteSentinel), " ")
	}

	return fields
}
