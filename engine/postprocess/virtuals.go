package postprocess

import (
	"github.com/glaemscribe/glaemscribe-go/core/charset"
	"github.com/glaemscribe/glaemscribe-go/core/token"
)

// key returns the string a trigger/replacement/swap declaration compares
// against: a real or virtual token's name, or a literal token's own
// scalar. Boundary and unicode-var tokens never participate in a
// virtual's contextual matching.
func key(tok token.Token) string {
	switch tok.Kind {
	case token.Char, token.Virtual:
		return tok.Name
	case token.Literal:
		return string(tok.Rune)
	default:
		return tok.Key()
	}
}

func namesToTokens(names []string, cs *charset.Charset) token.Sequence {
	out := make(token.Sequence, len(names))
	for i, name := range names {
		if _, ok := cs.Virtual(name); ok {
			out[i] = token.NewVirtual(name)
		} else {
			out[i] = token.NewChar(name)
		}
	}
	return out
}

// ResolveVirtuals implements the two fixed passes spec.md describes.
//
// Pass 1 scans left to right; at each Virtual-kind token it tries every
// declared Rewrite in order, matching the window starting at the
// virtual's own position (the trigger's first entry must describe the
// virtual itself) against the following tokens. The first rewrite whose
// trigger matches wins; its replacement is spliced in and the scan
// resumes past it.
//
// Pass 2 scans what pass 1 left behind; any virtual still standing gets
// its unconditional Sequences expansion (if declared) and then, if its
// expansion was exactly one token, a single Swap against whichever
// neighbor — the one that follows, then the one that precedes — it
// declares a swap with.
//
// Any Virtual-kind token still present after pass 2 is an authoring
// error for the charset in play: it is dropped and reported rather than
// left to reach Emit, per spec.
func ResolveVirtuals(seq token.Sequence, cs *charset.Charset) (token.Sequence, []Diagnostic) {
	var diags []Diagnostic

	pass1 := runPass1(seq, cs)
	pass2, swapDiags := runPass2(pass1, cs)
	diags = append(diags, swapDiags...)

	final := make(token.Sequence, 0, len(pass2))
	for _, tok := range pass2 {
		if tok.Kind == token.Virtual {
			diags = append(diags, warn("virtual %q survived resolution and was dropped", tok.Name))
			continue
		}
		final = append(final, tok)
	}
	return final, diags
}

func runPass1(seq token.Sequence, cs *charset.Charset) token.Sequence {
	out := make(token.Sequence, 0, len(seq))
	for i := 0; i < len(seq); {
		tok := seq[i]
		if tok.Kind != token.Virtual {
			out = append(out, tok)
			i++
			continue
		}
		v, ok := cs.Virtual(tok.Name)
		if !ok {
			out = append(out, tok)
			i++
			continue
		}
		if repl, n := matchRewrite(seq, i, v, cs); repl != nil {
			out = append(out, repl...)
			i += n
			continue
		}
		out = append(out, tok)
		i++
	}
	return out
}

// matchRewrite tries every rewrite v declares against the window starting
// at pos, in declaration order, returning the replacement tokens and the
// number of input tokens consumed on the first match.
func matchRewrite(seq token.Sequence, pos int, v *charset.VirtualChar, cs *charset.Charset) (token.Sequence, int) {
	for _, rw := range v.Rewrites {
		n := len(rw.Trigger)
		if n == 0 || pos+n > len(seq) {
			continue
		}
		matched := true
		for k := 0; k < n; k++ {
			if key(seq[pos+k]) != rw.Trigger[k] {
				matched = false
				break
			}
		}
		if matched {
			return namesToTokens(rw.Replacement, cs), n
		}
	}
	return nil, 0
}

type pendingSwap struct {
	pos   int
	swaps map[string]bool
}

func runPass2(seq token.Sequence, cs *charset.Charset) (token.Sequence, []Diagnostic) {
	out := make(token.Sequence, 0, len(seq))
	var swaps []pendingSwap
	var diags []Diagnostic

	for _, tok := range seq {
		if tok.Kind != token.Virtual {
			out = append(out, tok)
			continue
		}
		v, ok := cs.Virtual(tok.Name)
		if !ok {
			out = append(out, tok)
			continue
		}
		var expansion token.Sequence
		if len(v.Sequences) > 0 {
			expansion = namesToTokens(v.Sequences, cs)
		} else {
			expansion = token.Sequence{tok}
		}
		out = append(out, expansion...)
		if len(expansion) == 1 && len(v.Swaps) > 0 {
			swaps = append(swaps, pendingSwap{pos: len(out) - 1, swaps: v.Swaps})
		}
	}

	for _, sw := range swaps {
		p := sw.pos
		switch {
		case p+1 < len(out) && sw.swaps[key(out[p+1])]:
			out[p], out[p+1] = out[p+1], out[p]
		case p-1 >= 0 && sw.swaps[key(out[p-1])]:
			out[p-1], out[p] = out[p], out[p-1]
		}
	}

	return out, diags
}
