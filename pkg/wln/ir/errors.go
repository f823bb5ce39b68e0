package ir

import "fmt"

// The six members of the error taxonomy from spec.md §7.  Each carries what
// locates it: FileError the path, ParseError the Span of the offending
// token(s), Link/Schedule/BlastError the module name (and the cell instance
// where applicable), VerifyError the two module names.
//
// Grounded on pkg/sexp/source_file.go's SyntaxError{srcfile, span, msg}, and
// on pkg/corset/compiler/resolver.go's convention of accumulating these into
// a slice rather than failing the whole pass on the first one.

// FileError reports that the input file could not be opened or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot open %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseError reports malformed input: missing/unknown keywords, malformed
// constants, unmatched braces/brackets, or a missing "end".
type ParseError struct {
	Span Span
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at token %d:%d: %s", e.Span.Start(), e.Span.End(), e.Msg)
}

// LinkError reports a `$`-prefixed cell type that names no known operator,
// or a cycle in the module hierarchy discovered during module-dependency
// ordering.
type LinkError struct {
	Module   string
	Instance string
	Msg      string
}

func (e *LinkError) Error() string {
	if e.Instance != "" {
		return fmt.Sprintf("link error in module %q, instance %q: %s", e.Module, e.Instance, e.Msg)
	}

	return fmt.Sprintf("link error in module %q: %s", e.Module, e.Msg)
}

// ScheduleError reports a combinational cycle or undefined primary outputs.
type ScheduleError struct {
	Module string
	Msg    string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("schedule error in module %q: %s", e.Module, e.Msg)
}

// BlastError reports a blackbox encountered while bit-blasting a dependency,
// or an operator that cannot be lowered (e.g. $divfloor/$modfloor, per
// spec.md §9's open-question decision).
type BlastError struct {
	Module   string
	Instance string
	Msg      string
}

func (e *BlastError) Error() string {
	return fmt.Sprintf("blast error in module %q, instance %q: %s", e.Module, e.Instance, e.Msg)
}

// VerifyError reports that an equivalence check between two modules failed or
// was inconclusive.
type VerifyError struct {
	ModuleA string
	ModuleB string
	Msg     string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("verify error between %q and %q: %s", e.ModuleA, e.ModuleB, e.Msg)
}
