package processor

import (
	"github.com/glaemscribe/glaemscribe-go/core/token"
	"github.com/glaemscribe/glaemscribe-go/engine/rules"
	"github.com/glaemscribe/glaemscribe-go/engine/tree"
)

// Processor runs the trie-based longest-match transcription loop over a
// preprocessed token stream.
type Processor struct {
	Tree *tree.Tree
}

// New creates a Processor over an already-built transcription tree.
func New(t *tree.Tree) *Processor {
	return &Processor{Tree: t}
}

// Run walks seq left to right. Boundary tokens are passed through
// verbatim (they are never part of a SubRule's source, only of its
// anchor context); at every content-token position, the deepest
// anchor-satisfying match is committed, or the literal token is passed
// through if nothing matches.
func (p *Processor) Run(seq token.Sequence) token.Sequence {
	var out token.Sequence
	i := 0
	for i < len(seq) {
		if seq[i].IsBoundary() {
			out = append(out, seq[i])
			i++
			continue
		}
		start := startAnchors(seq, i)
		ctxAt := func(depth int) rules.AnchorSet {
			end := endAnchors(seq, i+depth)
			return rules.AnchorSet{
				WordStart: start.WordStart,
				LineStart: start.LineStart,
				WordEnd:   end.WordEnd,
				LineEnd:   end.LineEnd,
			}
		}
		entry, depth, ok := p.Tree.Match(seq, i, ctxAt)
		if !ok {
			out = append(out, seq[i])
			i++
			continue
		}
		out = append(out, entry.Dst...)
		i += depth
	}
	return out
}

// startAnchors reports which boundary edges immediately precede pos,
// scanning back over a contiguous run of boundary tokens.
func startAnchors(seq token.Sequence, pos int) rules.AnchorSet {
	var a rules.AnchorSet
	for j := pos - 1; j >= 0 && seq[j].IsBoundary(); j-- {
		switch seq[j].Edge {
		case token.WordStart:
			a.WordStart = true
		case token.LineStart:
			a.LineStart = true
		}
	}
	return a
}

// endAnchors reports which boundary edges immediately follow pos.
func endAnchors(seq token.Sequence, pos int) rules.AnchorSet {
	var a rules.AnchorSet
	for j := pos; j < len(seq) && seq[j].IsBoundary(); j++ {
		switch seq[j].Edge {
		case token.WordEnd:
			a.WordEnd = true
		case token.LineEnd:
			a.LineEnd = true
		}
	}
	return a
}
