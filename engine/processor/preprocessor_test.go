package processor

import (
	"testing"

	"github.com/glaemscribe/glaemscribe-go/core/token"
	"github.com/stretchr/testify/assert"
)

func TestPreprocessorEmptyInput(t *testing.T) {
	p := NewPreprocessor()
	seq := p.Run("")
	// a single empty line still gets a line-start/line-end pair.
	assert.Equal(t, token.Sequence{
		token.NewBoundary(token.LineStart),
		token.NewBoundary(token.LineEnd),
	}, seq)
}

func TestPreprocessorInsertsWordBoundaries(t *testing.T) {
	p := NewPreprocessor()
	seq := p.Run("ai laurie")
	assert.Equal(t, token.NewBoundary(token.LineStart), seq[0])
	assert.Equal(t, token.NewBoundary(token.WordStart), seq[1])

	var words int
	for _, tok := range seq {
		if tok.Kind == token.Boundary && tok.Edge == token.WordStart {
			words++
		}
	}
	assert.Equal(t, 2, words)
}

func TestPreprocessorNormalizesAndLowercases(t *testing.T) {
	p := NewPreprocessor()
	seq := p.Run("AI")
	var letters []rune
	for _, tok := range seq {
		if tok.Kind == token.Literal {
			letters = append(letters, tok.Rune)
		}
	}
	assert.Equal(t, []rune{'a', 'i'}, letters)
}

func TestPreprocessorFoldsDeclaredAccents(t *testing.T) {
	p := NewPreprocessor()
	p.AccentToBase['ë'] = 'e'
	seq := p.Run("ë")
	var letters []rune
	for _, tok := range seq {
		if tok.Kind == token.Literal {
			letters = append(letters, tok.Rune)
		}
	}
	assert.Equal(t, []rune{'e'}, letters)
}

func TestPreprocessorAppliesPatternsBeforeNormalization(t *testing.T) {
	p := NewPreprocessor()
	p.Patterns = []PatternRule{{Pattern: "th", Replacement: "þ"}}
	seq := p.Run("the")
	assert.Equal(t, rune('þ'), seq[2].Rune)
}
