package glaeml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParserSkipsBlankAndCommentLines(t *testing.T) {
	doc := NewParser().Parse("\n** a comment\n\nplain text\n")
	assert.False(t, doc.HasErrors())
	assert.Len(t, doc.Root.Children, 1)
	assert.True(t, doc.Root.Children[0].IsText())
	assert.Equal(t, "plain text", doc.Root.Children[0].Args[0])
}

func TestParserReadsInlineDirective(t *testing.T) {
	doc := NewParser().Parse(`\language Sindarin`)
	assert.Len(t, doc.Root.Children, 1)
	n := doc.Root.Children[0]
	assert.Equal(t, ElementInline, n.Type)
	assert.Equal(t, "language", n.Name)
	assert.Equal(t, []string{"Sindarin"}, n.Args)
}

func TestParserReadsQuotedArgument(t *testing.T) {
	doc := NewParser().Parse(`\option style "long form" "another word"`)
	n := doc.Root.Children[0]
	assert.Equal(t, []string{"style", "long form", "another word"}, n.Args)
}

func TestParserReadsNestedBlock(t *testing.T) {
	doc := NewParser().Parse("\\beg rules letters\nm --> M_CHAR\n\\end\n")
	rules := doc.Root.Gpath("rules")
	if assert.Len(t, rules, 1) {
		g := rules[0]
		assert.Equal(t, ElementBlock, g.Type)
		assert.Equal(t, []string{"rules", "letters"}, g.Args)
		if assert.Len(t, g.Children, 1) {
			assert.True(t, g.Children[0].IsText())
			assert.Equal(t, "m --> M_CHAR", g.Children[0].Args[0])
		}
	}
}

func TestParserReadsSiblingAfterBlockCloses(t *testing.T) {
	doc := NewParser().Parse("\\beg rules letters\nm --> M_CHAR\n\\end\n\\writing Tengwar\n")
	assert.Len(t, doc.Root.Children, 2)
	assert.Equal(t, "writing", doc.Root.Children[1].Name)
}

func TestParserReadsInlineDirectiveWithinBlock(t *testing.T) {
	doc := NewParser().Parse("\\beg virtual DOUBLE_LAMBE\n\\sequence LAMBE LAMBE\n\\end\n")
	virtuals := doc.Root.Gpath("virtual")
	if assert.Len(t, virtuals, 1) {
		seqs := virtuals[0].Gpath("sequence")
		if assert.Len(t, seqs, 1) {
			assert.Equal(t, []string{"LAMBE", "LAMBE"}, seqs[0].Args)
		}
	}
}

func TestParserGpathSearchesEveryDepth(t *testing.T) {
	doc := NewParser().Parse("\\beg rules a\n\\beg rules b\n\\end\n\\end\n")
	assert.Len(t, doc.Root.Gpath("rules"), 2)
}

func TestSplitArgsReportsUnterminatedQuote(t *testing.T) {
	_, err := splitArgs(`style "unterminated`)
	assert.Error(t, err)
}
