// Package rulegroup finalizes a mode's "\rules"/"\vars" block: it runs
// the block's code lines and conditional macro deployments against a set
// of transcription options, builds the regular-variable table, and hands
// each resulting rule line to engine/rules for expansion into SubRules.
package rulegroup

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer returns the tracer used by this package.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}
