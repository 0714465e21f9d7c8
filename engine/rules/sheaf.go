package rules

import (
	"strings"

	"github.com/glaemscribe/glaemscribe-go/core"
)

// Sheaf is a *-joined list of Fragments, e.g. "h(a,ä)*TEHTA_A". Each
// Fragment in the list is evaluated independently; a Sheaf's own
// combination space is every Fragment's combinations concatenated, not
// their cartesian product — a SheafChainIterator picks exactly one
// Fragment per Sheaf at a time and cartesian-multiplies across Sheaves.
type Sheaf struct {
	Expression string
	Fragments  []*Fragment
	// Linkable marks a Sheaf whose Fragments must all finalize to the
	// same combination length, because the SheafChain containing it
	// is meant to zip one-for-one against a sibling chain.
	Linkable bool
}

// ParseSheaf splits expr on '*' and parses one Fragment per part.
func ParseSheaf(expr string, linkable bool) *Sheaf {
	parts := strings.Split(expr, "*")
	s := &Sheaf{Expression: expr, Linkable: linkable}
	for _, p := range parts {
		s.Fragments = append(s.Fragments, ParseFragment(strings.TrimSpace(p)))
	}
	return s
}

// Finalize finalizes every Fragment in the sheaf and, if the sheaf is
// linkable, checks that they all produced equal-length combinations.
func (s *Sheaf) Finalize(resolve UnicodeResolver) error {
	var firstLen = -1
	for _, f := range s.Fragments {
		if err := f.Finalize(resolve); err != nil {
			return err
		}
		if len(f.Combinations) == 0 {
			continue
		}
		l := len(f.Combinations[0])
		if !s.Linkable {
			continue
		}
		if firstLen == -1 {
			firstLen = l
		} else if l != firstLen {
			return core.Error(core.EFINALIZE, "sheaf %q: fragment %q has length %d, expected %d", s.Expression, f.Expression, l, firstLen)
		}
	}
	return nil
}

// FragmentCount is the number of Fragments a SheafChainIterator can pick
// among for this Sheaf.
func (s *Sheaf) FragmentCount() int {
	return len(s.Fragments)
}
