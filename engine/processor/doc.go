// Package processor implements the preprocessing stage (pattern
// substitution, normalization, boundary-token insertion) and the
// trie-based longest-match transcription loop that runs over the
// resulting token stream.
package processor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer returns the tracer used by this package.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}
