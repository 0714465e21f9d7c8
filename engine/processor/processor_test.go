package processor

import (
	"testing"

	"github.com/glaemscribe/glaemscribe-go/core/token"
	"github.com/glaemscribe/glaemscribe-go/engine/rules"
	"github.com/glaemscribe/glaemscribe-go/engine/tree"
	"github.com/stretchr/testify/assert"
)

func lit(s string) token.Sequence {
	seq := make(token.Sequence, 0, len(s))
	for _, r := range s {
		seq = append(seq, token.NewLiteral(r))
	}
	return seq
}

func TestProcessorCommitsLongestMatch(t *testing.T) {
	tr := tree.New()
	tr.Insert(lit("l"), token.Sequence{token.NewChar("LAMBE")}, rules.AnchorSet{})
	tr.Insert(lit("ll"), token.Sequence{token.NewChar("LLA_LIGATURE")}, rules.AnchorSet{})

	p := New(tr)
	seq := token.Sequence{
		token.NewBoundary(token.WordStart),
	}
	seq = append(seq, lit("ll")...)
	seq = append(seq, token.NewBoundary(token.WordEnd))

	out := p.Run(seq)
	assert.Equal(t, token.Sequence{
		token.NewBoundary(token.WordStart),
		token.NewChar("LLA_LIGATURE"),
		token.NewBoundary(token.WordEnd),
	}, out)
}

func TestProcessorPassesThroughUnmatchedLiteral(t *testing.T) {
	tr := tree.New()
	tr.Insert(lit("a"), token.Sequence{token.NewChar("A_TEHTA")}, rules.AnchorSet{})

	p := New(tr)
	out := p.Run(lit("z"))
	assert.Equal(t, lit("z"), out)
}

func TestProcessorRespectsWordStartAnchor(t *testing.T) {
	tr := tree.New()
	tr.Insert(lit("t"), token.Sequence{token.NewChar("TINCO")}, rules.AnchorSet{})
	tr.Insert(lit("t"), token.Sequence{token.NewChar("TINCO_INITIAL")}, rules.AnchorSet{WordStart: true})

	p := New(tr)

	atStart := token.Sequence{token.NewBoundary(token.WordStart)}
	atStart = append(atStart, lit("t")...)
	atStart = append(atStart, token.NewBoundary(token.WordEnd))

	out := p.Run(atStart)
	assert.Equal(t, token.NewChar("TINCO_INITIAL"), out[1])

	midWord := token.Sequence{token.NewBoundary(token.WordStart)}
	midWord = append(midWord, lit("at")...)
	midWord = append(midWord, token.NewBoundary(token.WordEnd))

	out = p.Run(midWord)
	// the 't' here isn't preceded by a word-start boundary (the 'a' is),
	// so only the unanchored rule applies.
	assert.Equal(t, token.NewChar("TINCO"), out[2])
}

func TestProcessorRespectsWordEndAnchorAcrossCandidateDepths(t *testing.T) {
	tr := tree.New()
	tr.Insert(lit("n"), token.Sequence{token.NewChar("NUMEN")}, rules.AnchorSet{})
	tr.Insert(lit("nn"), token.Sequence{token.NewChar("NUMEN_DOUBLED")}, rules.AnchorSet{})
	tr.Insert(lit("n"), token.Sequence{token.NewChar("NUMEN_FINAL")}, rules.AnchorSet{WordEnd: true})

	p := New(tr)

	seq := token.Sequence{token.NewBoundary(token.WordStart)}
	seq = append(seq, lit("n")...)
	seq = append(seq, token.NewBoundary(token.WordEnd))

	out := p.Run(seq)
	// "n" at depth 1 is immediately followed by a word-end boundary, so the
	// anchored entry wins over the unanchored one at the same depth.
	assert.Equal(t, token.NewChar("NUMEN_FINAL"), out[1])
}

func TestProcessorBoundaryTokensPassThroughVerbatim(t *testing.T) {
	tr := tree.New()
	tr.Insert(lit("a"), token.Sequence{token.NewChar("A_TEHTA")}, rules.AnchorSet{})

	p := New(tr)
	seq := token.Sequence{
		token.NewBoundary(token.LineStart),
		token.NewBoundary(token.WordStart),
		token.NewLiteral('a'),
		token.NewBoundary(token.WordEnd),
		token.NewBoundary(token.LineEnd),
	}
	out := p.Run(seq)
	assert.Equal(t, token.NewBoundary(token.LineStart), out[0])
	assert.Equal(t, token.NewBoundary(token.WordStart), out[1])
	assert.Equal(t, token.NewChar("A_TEHTA"), out[2])
	assert.Equal(t, token.NewBoundary(token.WordEnd), out[3])
	assert.Equal(t, token.NewBoundary(token.LineEnd), out[4])
}
