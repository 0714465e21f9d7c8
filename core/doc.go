/*
Package core holds cross-cutting types shared by every layer of the
transliteration engine: the error taxonomy (parse / finalize / runtime)
and the core tracer used by every sub-package's own Tracer() accessor.
*/
package core

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer traces to the core tracer.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}
