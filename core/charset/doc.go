// Package charset implements the target alphabet backing a Mode: real
// characters (name, font code, optional Unicode code point) and virtual
// characters (name, ordered contextual rewrites, unconditional sequences,
// and adjacent-token swaps).
//
// A Charset owns its Character and VirtualChar objects; every other layer
// of the engine carries only names (core/token.Token.Name) and looks
// objects up by name through a Charset, so the token stream stays
// serializable for debugging and no lifetime entanglement is possible
// between a Mode and the tokens it produced.
package charset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer traces to the core tracer.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}
