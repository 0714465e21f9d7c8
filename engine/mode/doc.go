// Package mode composes a preprocessor, a shared transcription tree built
// from every RuleGroup of a mode, a post-processor chain, and a charset
// into the single top-level object spec.md calls a Mode: finalize once
// against a set of options, then transcribe any number of times.
package mode

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer returns the tracer used by this package.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}
