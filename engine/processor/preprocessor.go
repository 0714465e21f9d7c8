package processor

import (
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/glaemscribe/glaemscribe-go/core/token"
)

var graphemeSetup sync.Once

// PatternRule is one "pattern --> replacement" line of a mode's
// "\preprocessor" block: a literal string substitution applied before
// normalization.
type PatternRule struct {
	Pattern     string
	Replacement string
}

// Preprocessor turns raw input text into the token stream the Processor
// walks: pattern substitutions, then mode-declared accent-to-base
// folding, then canonical decomposition and case-folding, then
// grapheme-cluster-aware boundary-token insertion around whitespace runs.
type Preprocessor struct {
	Patterns []PatternRule
	// AccentToBase maps an accented vowel to its base form, e.g. 'ë' ->
	// 'e', applied per the mode's declaration to the still-composed text,
	// before normalization and case-folding.
	AccentToBase map[rune]rune
	caser        cases.Caser
}

// NewPreprocessor creates a Preprocessor with no substitutions declared
// yet; callers populate Patterns and AccentToBase from the mode file.
func NewPreprocessor() *Preprocessor {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	return &Preprocessor{
		AccentToBase: make(map[rune]rune),
		caser:        cases.Lower(language.Und),
	}
}

// Run executes the full preprocessing pipeline over raw input text.
func (p *Preprocessor) Run(text string) token.Sequence {
	for _, pat := range p.Patterns {
		text = strings.ReplaceAll(text, pat.Pattern, pat.Replacement)
	}
	// Accent-to-base folding runs on composed runes (e.g. 'ë') before
	// canonical decomposition would otherwise split them into a base
	// letter plus a separate combining mark.
	text = p.foldAccents(text)
	text = norm.NFD.String(text)
	text = p.caser.String(text)
	return p.tokenize(text)
}

func (p *Preprocessor) foldAccents(text string) string {
	if len(p.AccentToBase) == 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		if base, ok := p.AccentToBase[r]; ok {
			return base
		}
		return r
	}, text)
}

// tokenize walks text grapheme cluster by grapheme cluster so that
// whitespace-run boundaries are never split in the middle of a combining
// sequence, emitting one Literal token per Unicode scalar inside each
// non-space cluster and Boundary tokens around whitespace runs and at
// line edges.
func (p *Preprocessor) tokenize(text string) token.Sequence {
	var out token.Sequence
	lines := strings.Split(text, "\n")
	// the newline itself carries no token; it only separates one line's
	// boundary pair from the next.
	for _, line := range lines {
		out = append(out, token.NewBoundary(token.LineStart))
		out = append(out, p.tokenizeLine(line)...)
		out = append(out, token.NewBoundary(token.LineEnd))
	}
	return out
}

func (p *Preprocessor) tokenizeLine(line string) token.Sequence {
	if line == "" {
		return nil
	}
	gstr := grapheme.StringFromString(line)
	n := gstr.Len()
	var out token.Sequence
	inWord := false
	for i := 0; i < n; i++ {
		cluster := gstr.Nth(i)
		first, _ := utf8DecodeFirst(cluster)
		if unicode.IsSpace(first) {
			if inWord {
				out = append(out, token.NewBoundary(token.WordEnd))
				inWord = false
			}
			continue
		}
		if !inWord {
			out = append(out, token.NewBoundary(token.WordStart))
			inWord = true
		}
		for _, r := range cluster {
			out = append(out, token.NewLiteral(r))
		}
	}
	if inWord {
		out = append(out, token.NewBoundary(token.WordEnd))
	}
	return out
}

func utf8DecodeFirst(s string) (rune, int) {
	for _, r := range s {
		return r, 0
	}
	return 0, 0
}
