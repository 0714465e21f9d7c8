// Package postprocess implements the post-processor chain: charset
// resolution, two-pass virtual-character resolution, and final code-point
// emission over the token stream the processor's trie walk produced.
package postprocess

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer returns the tracer used by this package.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}
