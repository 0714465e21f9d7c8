package postprocess

import (
	"github.com/glaemscribe/glaemscribe-go/core/charset"
	"github.com/glaemscribe/glaemscribe-go/core/token"
)

// Chain runs the fixed three-stage post-processor pipeline spec.md §4.6
// describes: ResolveCharsets, then ResolveVirtuals, then Emit. Unlike
// the preprocessor's mode-declared pattern list, these three stages are
// not reorderable or extensible per mode — the spec fixes both their
// order and their count.
type Chain struct {
	Charset *charset.Charset
	Policy  BoundaryPolicy
}

// New creates a Chain over a charset, using the conventional boundary
// policy unless the caller overrides Chain.Policy afterwards.
func New(cs *charset.Charset) *Chain {
	return &Chain{Charset: cs, Policy: DefaultBoundaryPolicy()}
}

// Run executes the chain end to end, collecting every stage's
// diagnostics in stage order.
func (c *Chain) Run(seq token.Sequence) (string, []Diagnostic) {
	var diags []Diagnostic

	seq, d := ResolveCharsets(seq, c.Charset)
	diags = append(diags, d...)

	seq, d = ResolveVirtuals(seq, c.Charset)
	diags = append(diags, d...)

	out, d := Emit(seq, c.Charset, c.Policy)
	diags = append(diags, d...)

	return out, diags
}
