package tree

import (
	"github.com/glaemscribe/glaemscribe-go/core/token"
	"github.com/glaemscribe/glaemscribe-go/engine/rules"
)

// Entry is one SubRule installed at a tree node: the destination tokens
// to emit, the anchors this SubRule requires, and the insertion order
// used to break ties between otherwise-equal candidates.
type Entry struct {
	Dst     token.Sequence
	Anchors rules.AnchorSet
	Depth   int
	Order   int
}

// node is one step in the trie, keyed by token.Token.Key().
type node struct {
	children map[string]*node
	entries  []*Entry
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Tree is the transcription tree: every finalized SubRule from every
// RuleGroup of a Mode is installed into one shared Tree.
type Tree struct {
	root    *node
	counter int
}

// New creates an empty Tree.
func New() *Tree {
	return &Tree{root: newNode()}
}

// Insert adds one SubRule's source/destination pair. A later Insert of
// an identical source+anchors pair shadows an earlier one at matching
// time via the last-written-wins tie-break, rather than replacing it
// outright — both entries are kept so that, if anchors ever diverge,
// the tree can still pick the more specific one.
func (t *Tree) Insert(src token.Sequence, dst token.Sequence, anchors rules.AnchorSet) {
	if len(src) == 0 {
		Tracer().Errorf("refusing to install a SubRule with an empty source")
		return
	}
	n := t.root
	for _, tok := range src {
		key := tok.Key()
		child, ok := n.children[key]
		if !ok {
			child = newNode()
			n.children[key] = child
		}
		n = child
	}
	t.counter++
	n.entries = append(n.entries, &Entry{Dst: dst, Anchors: anchors, Depth: len(src), Order: t.counter})
}

// contextFunc reports the actual boundary state after consuming depth
// tokens starting at the match's origin, so that WordEnd/LineEnd anchors
// — which depend on how many tokens a candidate SubRule would consume —
// can be checked per candidate depth, not just once at the match start.
type contextFunc func(depth int) rules.AnchorSet

func satisfies(required, actual rules.AnchorSet) bool {
	if required.WordStart && !actual.WordStart {
		return false
	}
	if required.WordEnd && !actual.WordEnd {
		return false
	}
	if required.LineStart && !actual.LineStart {
		return false
	}
	if required.LineEnd && !actual.LineEnd {
		return false
	}
	return true
}

// best picks the strongest entry among those whose anchors are satisfied
// by ctx: strictest anchor set wins, then highest insertion order (the
// last one written) wins.
func best(entries []*Entry, ctx rules.AnchorSet) *Entry {
	var winner *Entry
	for _, e := range entries {
		if !satisfies(e.Anchors, ctx) {
			continue
		}
		if winner == nil {
			winner = e
			continue
		}
		ws, wwOrder := winner.Anchors.Strictness(), winner.Order
		es, eOrder := e.Anchors.Strictness(), e.Order
		if es > ws || (es == ws && eOrder > wwOrder) {
			winner = e
		}
	}
	return winner
}

// Match walks seq starting at pos, returning the deepest entry whose
// anchors are satisfied along the way, plus how many tokens it consumes.
// ctxAt(depth) must report the actual boundary state that would hold
// after consuming depth tokens from pos.
func (t *Tree) Match(seq token.Sequence, pos int, ctxAt contextFunc) (*Entry, int, bool) {
	n := t.root
	var bestEntry *Entry
	bestDepth := 0
	for depth := 0; pos+depth < len(seq); depth++ {
		child, ok := n.children[seq[pos+depth].Key()]
		if !ok {
			break
		}
		n = child
		if len(n.entries) > 0 {
			if e := best(n.entries, ctxAt(depth + 1)); e != nil {
				bestEntry = e
				bestDepth = depth + 1
			}
		}
	}
	return bestEntry, bestDepth, bestEntry != nil
}
