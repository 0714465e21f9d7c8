package postprocess

import (
	"github.com/glaemscribe/glaemscribe-go/core/charset"
	"github.com/glaemscribe/glaemscribe-go/core/token"
)

// ResolveCharsets is the first post-processor stage. The processor's trie
// walk emits Char-kind tokens for every matched symbol name without
// knowing whether that name refers to a real character or a virtual one
// — a Fragment leaf can't tell "TELCO" from "HALF_LONG_MARK" apart at
// rule-authoring time, since both are just all-caps identifiers. This
// stage is where that ambiguity is actually resolved, against the
// charset that owns the names: a Char token naming a real character is
// left alone, one naming a virtual is promoted to a Virtual-kind token
// so ResolveVirtuals can find it, and a name that resolves to neither is
// left as-is and reported.
func ResolveCharsets(seq token.Sequence, cs *charset.Charset) (token.Sequence, []Diagnostic) {
	out := make(token.Sequence, len(seq))
	var diags []Diagnostic
	for i, tok := range seq {
		if tok.Kind != token.Char {
			out[i] = tok
			continue
		}
		switch {
		case cs.Has(tok.Name):
			if _, ok := cs.Character(tok.Name); ok {
				out[i] = tok
			} else {
				out[i] = token.NewVirtual(tok.Name)
			}
		default:
			out[i] = tok
			suggestions := cs.Suggestions(tok.Name, 3)
			if len(suggestions) > 0 {
				diags = append(diags, warn("unresolved charset name %q (did you mean: %v?)", tok.Name, suggestions))
			} else {
				diags = append(diags, warn("unresolved charset name %q", tok.Name))
			}
		}
	}
	return out, diags
}
