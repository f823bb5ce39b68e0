package ir

// Wire is a named bit-vector within a module, possibly a primary input or
// output.  The original packs {flags, name} into one word; here they are
// plain fields, per the same explicit-struct preference noted in signal.go.
type Wire struct {
	NameID int
	Input  bool
	Output bool
	Signed bool
	// Upto is cleared by Normalizer; see spec.md §4.4.
	Upto bool
	// Width is the wire's bit width, always >= 1.
	Width int
	// Offset is the declared base bit index; cleared (set to 0) by
	// Normalizer.
	Offset int
	// Port is the 1-based port number among inputs (or among outputs);
	// 0 for internal wires.
	Port int
	// BitStart is the base index of this wire's bits in the module's
	// per-bit literal vector.  Filled in by the Scheduler.
	BitStart int
}

// IsPrimary reports whether this wire is a primary input or output.
func (w *Wire) IsPrimary() bool { return w.Input || w.Output }
