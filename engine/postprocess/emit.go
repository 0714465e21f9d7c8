package postprocess

import (
	"strings"

	"github.com/glaemscribe/glaemscribe-go/core/charset"
	"github.com/glaemscribe/glaemscribe-go/core/token"
)

// bmpPUABase and bmpPUASize bound the BMP Private Use Area
// (U+E000-U+F8FF); font codes that don't fit spill into the
// supplementary PUA (U+E0000-U+EFFFF), per spec's output-encoding rule.
const (
	bmpPUABase = 0xE000
	bmpPUASize = 0xF8FF - 0xE000 + 1
	supPUABase = 0xE0000
)

// fontCodeToPUA is the fallback mapping Character.CodePointOf calls when
// a character declares no Unicode code point of its own.
func fontCodeToPUA(fontCode int) rune {
	if fontCode < bmpPUASize {
		return rune(bmpPUABase + fontCode)
	}
	return rune(supPUABase + (fontCode - bmpPUASize))
}

// BoundaryPolicy declares what a mode emits, if anything, for each kind
// of structural boundary token. Edges absent from Emit are discarded
// silently; this is itself a mode declaration, not a hardcoded rule —
// spec.md §4.6 leaves it to "mode declaration".
type BoundaryPolicy struct {
	Emit map[token.Edge]rune
}

// DefaultBoundaryPolicy reproduces the conventional choice: word breaks
// become a single space, line breaks become a newline, and the
// paired *Start markers (which would otherwise double every separator)
// are discarded.
func DefaultBoundaryPolicy() BoundaryPolicy {
	return BoundaryPolicy{Emit: map[token.Edge]rune{
		token.WordEnd: ' ',
		token.LineEnd: '\n',
	}}
}

// Emit is the final post-processor stage: every remaining token becomes
// either a Unicode scalar or nothing. Character tokens resolve through
// the charset (Unicode code point if declared, else a PUA fallback
// derived from the font code); literal tokens pass their own scalar
// through unchanged; boundary tokens consult policy.
func Emit(seq token.Sequence, cs *charset.Charset, policy BoundaryPolicy) (string, []Diagnostic) {
	var b strings.Builder
	var diags []Diagnostic
	for _, tok := range seq {
		switch tok.Kind {
		case token.Literal:
			b.WriteRune(tok.Rune)
		case token.Char:
			c, ok := cs.Character(tok.Name)
			if !ok {
				diags = append(diags, warn("cannot emit unresolved character %q", tok.Name))
				continue
			}
			r, err := c.CodePointOf(fontCodeToPUA)
			if err != nil {
				diags = append(diags, warn("cannot resolve code point for %q: %v", tok.Name, err))
				continue
			}
			b.WriteRune(r)
		case token.Virtual:
			diags = append(diags, warn("virtual %q reached emit unresolved", tok.Name))
		case token.Boundary:
			if r, ok := policy.Emit[tok.Edge]; ok {
				b.WriteRune(r)
			}
		case token.UnicodeVar:
			diags = append(diags, warn("unicode-var %q reached emit unresolved", tok.Name))
		}
	}
	return b.String(), diags
}
