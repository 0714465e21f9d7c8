// Package glaeml reads the "\directive ... \end" block markup mode and
// charset files are written in: an indentation-free, line-oriented
// grammar where a bare line is text, a "\word ..." line is a directive,
// and "\beg <type> ..." opens a block that runs until a matching "\end"
// line. It is deliberately narrow — just enough of the grammar to carry
// mode and charset files via ParseMode and ParseCharset — not a
// general-purpose markup engine.
package glaeml

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer returns the tracer used by this package.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}
