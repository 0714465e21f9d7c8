package rules

import (
	"regexp"
	"strings"

	"github.com/glaemscribe/glaemscribe-go/core"
	"github.com/glaemscribe/glaemscribe-go/core/token"
)

// UnicodeResolver resolves a {UNI_xxx}-style variable name to the literal
// token sequence it stands for. It is supplied by the caller doing the
// finalizing (a RuleGroup passes rulegroup.ResolveUnicodeVar, which
// decodes the hex code point from the variable's own name), not by the
// Fragment itself.
type UnicodeResolver func(name string) (token.Sequence, bool)

var groupRx = regexp.MustCompile(`\([^()]*\)`)

// isUpperIdent reports whether w looks like an authored charset entry
// name: an all-caps identifier of more than one rune, e.g. "TELCO" or
// "A_TEHTA". A bare single uppercase letter is still a literal.
func isUpperIdent(w string) bool {
	runes := []rune(w)
	if len(runes) < 2 {
		return false
	}
	hasLetter := false
	for _, r := range runes {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r == '_' || (r >= '0' && r <= '9'):
			// allowed
		default:
			return false
		}
	}
	return hasLetter
}

var unicodeVarRx = regexp.MustCompile(`^\{(UNI_[0-9A-Fa-f_]+)\}$`)

// tokenizeLeaf splits a single equivalence leaf (the text between commas
// inside a group, or a literal run outside any group) into tokens.
// Whitespace-separated words are individual tokens; an all-caps word
// references a charset entry by name, a {UNI_xxx} word is deferred to
// Fragment.Finalize, and anything else is expanded rune by rune as
// literal text.
func tokenizeLeaf(leaf string) token.Sequence {
	words := strings.Fields(leaf)
	seq := make(token.Sequence, 0, len(words))
	for _, w := range words {
		switch {
		case unicodeVarRx.MatchString(w):
			seq = append(seq, token.NewUnicodeVar(unicodeVarRx.FindStringSubmatch(w)[1]))
		case isUpperIdent(w):
			seq = append(seq, token.NewChar(w))
		default:
			for _, r := range w {
				seq = append(seq, token.NewLiteral(r))
			}
		}
	}
	return seq
}

// choiceGroup is one position in a Fragment's expression: a literal run
// contributes a single alternative, a (a,b,c) group contributes one
// alternative per comma-separated leaf (an empty leaf is legal and
// contributes the empty sequence).
type choiceGroup struct {
	alternatives []token.Sequence
}

// Fragment is one equivalence expression such as "h(a,ä)(i,ï)": the
// cartesian product, across every parenthesized group in the expression
// plus the fixed text around them, of each group's alternatives.
type Fragment struct {
	Expression   string
	Combinations []token.Sequence
	Errors       []error
}

// ParseFragment builds a Fragment's raw combinations. {UNI_xxx} variable
// references are left as token.UnicodeVar placeholders; call Finalize to
// resolve them and validate the equal-length invariant.
func ParseFragment(expr string) *Fragment {
	f := &Fragment{Expression: expr}
	groups := splitIntoGroups(expr)
	combos := []token.Sequence{{}}
	for _, g := range groups {
		next := make([]token.Sequence, 0, len(combos)*len(g.alternatives))
		for _, prefix := range combos {
			for _, alt := range g.alternatives {
				seq := make(token.Sequence, 0, len(prefix)+len(alt))
				seq = append(seq, prefix...)
				seq = append(seq, alt...)
				next = append(next, seq)
			}
		}
		combos = next
	}
	f.Combinations = combos
	return f
}

// splitIntoGroups walks expr left to right, turning each (..) group and
// each literal run between groups into a choiceGroup.
func splitIntoGroups(expr string) []choiceGroup {
	var groups []choiceGroup
	rest := expr
	for {
		loc := groupRx.FindStringIndex(rest)
		if loc == nil {
			if rest != "" {
				groups = append(groups, choiceGroup{alternatives: []token.Sequence{tokenizeLeaf(rest)}})
			}
			break
		}
		if loc[0] > 0 {
			prefix := rest[:loc[0]]
			groups = append(groups, choiceGroup{alternatives: []token.Sequence{tokenizeLeaf(prefix)}})
		}
		inner := rest[loc[0]+1 : loc[1]-1]
		parts := strings.Split(inner, ",")
		alts := make([]token.Sequence, 0, len(parts))
		for _, p := range parts {
			alts = append(alts, tokenizeLeaf(strings.TrimSpace(p)))
		}
		groups = append(groups, choiceGroup{alternatives: alts})
		rest = rest[loc[1]:]
	}
	return groups
}

// Finalize splices in every {UNI_xxx} reference using resolve and checks
// that all of the fragment's combinations came out the same length,
// per the engine's equal-length invariant for a finalized Fragment.
func (f *Fragment) Finalize(resolve UnicodeResolver) error {
	resolved := make([]token.Sequence, len(f.Combinations))
	for i, combo := range f.Combinations {
		seq := make(token.Sequence, 0, len(combo))
		for _, t := range combo {
			if t.Kind != token.UnicodeVar {
				seq = append(seq, t)
				continue
			}
			sub, ok := resolve(t.Name)
			if !ok {
				err := core.Error(core.EFINALIZE, "fragment %q: undefined unicode variable {%s}", f.Expression, t.Name)
				f.Errors = append(f.Errors, err)
				continue
			}
			seq = append(seq, sub...)
		}
		resolved[i] = seq
	}
	f.Combinations = resolved

	if len(f.Errors) > 0 {
		return f.Errors[0]
	}
	if len(f.Combinations) == 0 {
		return nil
	}
	want := len(f.Combinations[0])
	for _, combo := range f.Combinations[1:] {
		if len(combo) != want {
			err := core.Error(core.EFINALIZE, "fragment %q: unequal combination lengths (%d vs %d)", f.Expression, want, len(combo))
			f.Errors = append(f.Errors, err)
			return err
		}
	}
	return nil
}
