// Package tree implements the transcription tree: a trie whose edges are
// keyed by token values (literal scalars or charset-entry names) rather
// than by Unicode scalar, so a rule's source can mix literal text and
// named charset references without lexical ambiguity. The Processor
// package walks it to find the longest matching SubRule at each input
// position.
package tree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer returns the tracer used by this package.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}
