package signals

import "github.com/cespare/xxhash/v2"

// brandSymbol is derived from a fixed string rather than assigned at
// runtime so that separately compiled copies of the engine agree on it.
var brandSymbol = xxhash.Sum64String("xdom.signals.brand.v1")

// Branded identifies signal value cells (writeable or computed) across
// package copies.
type Branded interface {
	SignalBrand() uint64
}

func (s *WriteableSignal[T]) SignalBrand() uint64 { return brandSymbol }
func (c *ReadonlySignal[T]) SignalBrand() uint64  { return brandSymbol }

// IsSignal reports whether v is a signal value cell, even one constructed
// by a different build of this package.
func IsSignal(v any) bool {
	b, ok := v.(Branded)
	return ok && b.SignalBrand() == brandSymbol
}
