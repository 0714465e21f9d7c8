package rules

import (
	"strconv"
	"strings"

	"github.com/glaemscribe/glaemscribe-go/core"
	"github.com/glaemscribe/glaemscribe-go/core/token"
)

// AnchorSet records which structural boundaries a rule's match is
// constrained to. A rule with no anchors matches anywhere.
type AnchorSet struct {
	WordStart bool
	WordEnd   bool
	LineStart bool
	LineEnd   bool
}

// Strictness counts how many boundaries are anchored; when two SubRules
// would otherwise tie for the same source sequence, the stricter anchor
// set wins, per the engine's tie-break rule.
func (a AnchorSet) Strictness() int {
	n := 0
	if a.WordStart {
		n++
	}
	if a.WordEnd {
		n++
	}
	if a.LineStart {
		n++
	}
	if a.LineEnd {
		n++
	}
	return n
}

// SubRule is one concrete (source tokens, destination tokens) pair
// produced by expanding a Rule's Fragment/Sheaf/SheafChain algebra. It is
// what actually gets installed into a transcription tree.
type SubRule struct {
	Src     token.Sequence
	Dst     token.Sequence
	Anchors AnchorSet
	Line    int
}

// Rule is one "-->"/"==>" line from a mode's \rules block, together with
// every SubRule it expands to.
type Rule struct {
	Line        int
	Raw         string
	Anchors     AnchorSet
	Cross       bool
	CrossSchema []int
	SrcChain    *SheafChain
	DstChain    *SheafChain
	SubRules    []*SubRule
}

const (
	nonCrossArrow = "-->"
	crossArrow    = "==>"
)

// ParseRule parses one rule line. Source-side anchors are leading/trailing
// '^' (word boundary) and '$' (line boundary) markers stripped from the
// source expression before it is handed to ParseSheafChain.
func ParseRule(line int, raw string) (*Rule, error) {
	text := strings.TrimSpace(raw)
	cross := false
	arrowIdx := strings.Index(text, nonCrossArrow)
	if i := strings.Index(text, crossArrow); i >= 0 && (arrowIdx < 0 || i < arrowIdx) {
		arrowIdx = i
		cross = true
	}
	if arrowIdx < 0 {
		return nil, core.Error(core.EPARSE, "line %d: rule %q has no --> or ==> arrow", line, raw)
	}
	arrowLen := len(nonCrossArrow)
	srcText := strings.TrimSpace(text[:arrowIdx])
	dstText := strings.TrimSpace(text[arrowIdx+arrowLen:])

	srcText, anchors := stripAnchors(srcText)

	r := &Rule{Line: line, Raw: raw, Anchors: anchors, Cross: cross}
	r.SrcChain = ParseSheafChain(srcText, !cross)
	if cross {
		schema, err := parseCrossSchema(dstText)
		if err != nil {
			return nil, err
		}
		r.CrossSchema = schema
	} else {
		r.DstChain = ParseSheafChain(dstText, true)
	}
	return r, nil
}

func stripAnchors(s string) (string, AnchorSet) {
	var a AnchorSet
	for len(s) > 0 {
		switch s[0] {
		case '^':
			a.WordStart = true
		case '$':
			a.LineStart = true
		default:
			goto trailing
		}
		s = s[1:]
	}
trailing:
	for len(s) > 0 {
		switch s[len(s)-1] {
		case '^':
			a.WordEnd = true
		case '$':
			a.LineEnd = true
		default:
			return strings.TrimSpace(s), a
		}
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s), a
}

// parseCrossSchema parses a "[3 1 2]" destination index schema into
// 0-based indices into a source SubRule's token sequence. Indices are
// written 1-based by mode authors; duplicate indices are permitted (a
// single source token may be copied into more than one destination
// position).
func parseCrossSchema(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.Fields(s)
	schema := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, core.Error(core.EPARSE, "invalid cross-rule index %q", f)
		}
		if n < 1 {
			return nil, core.Error(core.EPARSE, "cross-rule index %d is not 1-based", n)
		}
		schema = append(schema, n-1)
	}
	return schema, nil
}

// Finalize resolves unicode variables in both chains and expands the rule
// into its SubRules, per the engine's zip/broadcast semantics for
// non-cross rules and index-schema projection for cross rules.
func (r *Rule) Finalize(resolve UnicodeResolver) error {
	if err := r.SrcChain.Finalize(resolve); err != nil {
		return err
	}
	srcCombos := All(r.SrcChain)

	if r.Cross {
		return r.finalizeCross(srcCombos)
	}

	if err := r.DstChain.Finalize(resolve); err != nil {
		return err
	}
	dstCombos := All(r.DstChain)
	return r.finalizeNonCross(srcCombos, dstCombos)
}

func (r *Rule) finalizeCross(srcCombos []token.Sequence) error {
	for _, src := range srcCombos {
		dst := make(token.Sequence, 0, len(r.CrossSchema))
		for _, idx := range r.CrossSchema {
			if idx >= len(src) {
				return core.Error(core.EFINALIZE, "line %d: cross-rule index %d out of range for source of length %d", r.Line, idx+1, len(src))
			}
			dst = append(dst, src[idx])
		}
		r.SubRules = append(r.SubRules, &SubRule{
			Src: src, Dst: dst, Anchors: r.Anchors, Line: r.Line,
		})
	}
	return nil
}

func (r *Rule) finalizeNonCross(srcCombos, dstCombos []token.Sequence) error {
	switch {
	case len(srcCombos) == len(dstCombos):
		for i := range srcCombos {
			r.SubRules = append(r.SubRules, &SubRule{
				Src: srcCombos[i], Dst: dstCombos[i], Anchors: r.Anchors, Line: r.Line,
			})
		}
	case len(srcCombos) == 1:
		for _, dst := range dstCombos {
			r.SubRules = append(r.SubRules, &SubRule{
				Src: srcCombos[0], Dst: dst, Anchors: r.Anchors, Line: r.Line,
			})
		}
	case len(dstCombos) == 1:
		for _, src := range srcCombos {
			r.SubRules = append(r.SubRules, &SubRule{
				Src: src, Dst: dstCombos[0], Anchors: r.Anchors, Line: r.Line,
			})
		}
	default:
		return core.Error(core.EFINALIZE, "line %d: arity mismatch, %d source combinations vs %d destination combinations", r.Line, len(srcCombos), len(dstCombos))
	}
	return nil
}
