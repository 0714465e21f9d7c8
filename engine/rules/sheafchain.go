package rules

import (
	"strings"

	"github.com/glaemscribe/glaemscribe-go/core/token"
)

// SheafChain is an ordered list of Sheaves, written as "[sheaf1][sheaf2]"
// in a mode's rule text — each bracketed block is one position a matched
// token sequence must occupy in order.
type SheafChain struct {
	Expression string
	Sheaves    []*Sheaf
}

// ParseSheafChain splits expr on "][" boundaries, stripping the leading
// '[' and trailing ']', and parses one Sheaf per block.
func ParseSheafChain(expr string, linkable bool) *SheafChain {
	trimmed := strings.TrimSpace(expr)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")
	blocks := strings.Split(trimmed, "][")
	c := &SheafChain{Expression: expr}
	for _, b := range blocks {
		c.Sheaves = append(c.Sheaves, ParseSheaf(b, linkable))
	}
	return c
}

// Finalize finalizes every Sheaf in the chain.
func (c *SheafChain) Finalize(resolve UnicodeResolver) error {
	for _, s := range c.Sheaves {
		if err := s.Finalize(resolve); err != nil {
			return err
		}
	}
	return nil
}

// SheafChainIterator walks every combination a SheafChain can produce: at
// each step it picks one Fragment per Sheaf (odometer-style, advancing
// the last Sheaf fastest) and yields the cartesian product of the chosen
// Fragments' own token combinations.
type SheafChainIterator struct {
	chain    *SheafChain
	counters []int
	done     bool
}

// NewSheafChainIterator creates an iterator positioned at the chain's
// first combination. The chain must already be finalized.
func NewSheafChainIterator(chain *SheafChain) *SheafChainIterator {
	it := &SheafChainIterator{chain: chain, counters: make([]int, len(chain.Sheaves))}
	for _, s := range chain.Sheaves {
		if s.FragmentCount() == 0 {
			it.done = true
			break
		}
	}
	return it
}

// Combinations returns the full cartesian product, across the chain's
// Sheaves, of the currently selected Fragment's combinations in each.
func (it *SheafChainIterator) Combinations() []token.Sequence {
	if it.done {
		return nil
	}
	combos := []token.Sequence{{}}
	for i, s := range it.chain.Sheaves {
		frag := s.Fragments[it.counters[i]]
		next := make([]token.Sequence, 0, len(combos)*len(frag.Combinations))
		for _, prefix := range combos {
			for _, fc := range frag.Combinations {
				seq := make(token.Sequence, 0, len(prefix)+len(fc))
				seq = append(seq, prefix...)
				seq = append(seq, fc...)
				next = append(next, seq)
			}
		}
		combos = next
	}
	return combos
}

// Advance moves to the next odometer position. It reports false once
// every combination of Fragment choices has been visited.
func (it *SheafChainIterator) Advance() bool {
	if it.done {
		return false
	}
	for i := len(it.counters) - 1; i >= 0; i-- {
		it.counters[i]++
		if it.counters[i] < it.chain.Sheaves[i].FragmentCount() {
			return true
		}
		it.counters[i] = 0
	}
	it.done = true
	return false
}

// All flattens every combination the iterator will ever produce into a
// single slice, consuming the iterator.
func All(chain *SheafChain) []token.Sequence {
	it := NewSheafChainIterator(chain)
	var out []token.Sequence
	for {
		out = append(out, it.Combinations()...)
		if !it.Advance() {
			break
		}
	}
	return out
}
