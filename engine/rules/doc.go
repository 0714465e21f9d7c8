// Package rules implements the rule-expansion algebra a mode's
// "\rules" block compiles down to: Fragment equivalence groups, *-joined
// Sheaves, []-delimited SheafChains, and the Rule/SubRule pairs a
// RuleGroup finally installs into a transcription tree.
package rules

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer returns the tracer used by this package.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}
