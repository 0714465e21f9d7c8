package charset

import (
	"fmt"
	"sync"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/glaemscribe/glaemscribe-go/core"
	"github.com/glaemscribe/glaemscribe-go/core/option"
)

// Flag classifies a Character for use by the preprocessor and by mode
// authors testing `\char` declarations against categories.
type Flag uint8

const (
	FlagNone       Flag = 0
	FlagPunct      Flag = 1 << 0
	FlagSpace      Flag = 1 << 1
	FlagDigit      Flag = 1 << 2
	FlagCombining  Flag = 1 << 3
)

// Character is a real charset entry: a unique name, a font code (its
// position in the target font), an optional Unicode code point, and
// classification flags.
//
// CodePoint reuses core/option's Int64T sentinel type: the absence of a
// Unicode mapping (a font-code-only character) is represented the same
// way core/option represents any other absent optional value, rather than
// a second nullable field or a *int64.
type Character struct {
	Name      string
	FontCode  int
	CodePoint option.Int64T
	Flags     Flag
}

// Is reports whether c carries all the bits set in f.
func (c *Character) Is(f Flag) bool {
	return c.Flags&f == f
}

// Rewrite is one contextual substitution declared inside a `\virtual`
// block: if the tokens starting at the virtual's own position match
// Trigger (whose first entry names the virtual itself), the virtual and
// the tokens following it that it triggered against are replaced by
// Replacement.
type Rewrite struct {
	Trigger     []string
	Replacement []string
}

// VirtualChar is a charset entry that a rule's destination may name but
// that never reaches output itself: post-processing replaces it with real
// characters, contextually or unconditionally.
type VirtualChar struct {
	Name     string
	Rewrites []Rewrite
	// Sequences is an unconditional multi-token expansion applied in
	// pass 2 of virtual resolution if the virtual survived pass 1.
	Sequences []string
	// Swaps maps an adjacent token key to "swap with it" membership; a
	// swap reorders the virtual and that adjacent token in pass 2.
	Swaps map[string]bool
}

// HasSwapWith reports whether v declares a swap against the adjacent
// token keyed by tok.
func (v *VirtualChar) HasSwapWith(tok string) bool {
	return v.Swaps[tok]
}

// Charset is the registry of Character and VirtualChar objects backing
// one target alphabet. Order of insertion is preserved so that debug
// dumps and diagnostic "did you mean" suggestions are deterministic
// across runs, matching the engine-wide rule that authoring order is a
// contract, not an implementation detail.
type Charset struct {
	mu         sync.RWMutex
	Name       string
	characters *linkedhashmap.Map // string -> *Character
	virtuals   *linkedhashmap.Map // string -> *VirtualChar
	names      *trie.Trie         // all known names, for fuzzy "did you mean" lookups
}

// New creates an empty, named Charset.
func New(name string) *Charset {
	return &Charset{
		Name:       name,
		characters: linkedhashmap.New(),
		virtuals:   linkedhashmap.New(),
		names:      trie.New(),
	}
}

// AddCharacter registers a real character. A duplicate name overrides the
// previous entry, consistent with the engine-wide rule that later
// declarations shadow earlier ones.
func (cs *Charset) AddCharacter(c *Character) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.characters.Put(c.Name, c)
	cs.names.Add(c.Name, c)
}

// AddVirtual registers a virtual character.
func (cs *Charset) AddVirtual(v *VirtualChar) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.virtuals.Put(v.Name, v)
	cs.names.Add(v.Name, v)
}

// Character looks up a real character by name.
func (cs *Charset) Character(name string) (*Character, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.characters.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Character), true
}

// Virtual looks up a virtual character by name.
func (cs *Charset) Virtual(name string) (*VirtualChar, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.virtuals.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*VirtualChar), true
}

// Has reports whether name refers to either a real or virtual character.
func (cs *Charset) Has(name string) bool {
	if _, ok := cs.Character(name); ok {
		return true
	}
	_, ok := cs.Virtual(name)
	return ok
}

// Suggestions returns up to n charset names that are textually close to
// name, for use in "unresolved token" diagnostics. Grounded on the
// fuzzy-search facility of github.com/derekparker/trie, the same trie
// implementation the teacher module declares as a direct dependency.
func (cs *Charset) Suggestions(name string, n int) []string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	matches := cs.names.FuzzySearch(name)
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// CharacterNames returns all real character names in authoring order.
func (cs *Charset) CharacterNames() []string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	it := cs.characters.Iterator()
	names := make([]string, 0, cs.characters.Size())
	for it.Next() {
		names = append(names, it.Key().(string))
	}
	return names
}

// VirtualNames returns all virtual character names in authoring order.
func (cs *Charset) VirtualNames() []string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	it := cs.virtuals.Iterator()
	names := make([]string, 0, cs.virtuals.Size())
	for it.Next() {
		names = append(names, it.Key().(string))
	}
	return names
}

// CodePointOf resolves c's output code point, matching on whether a
// Unicode mapping was declared (option.Some) or the character is
// font-code-only (option.None), per the PUA fallback scheme described in
// the engine's external interface contract.
func (c *Character) CodePointOf(fallback func(fontCode int) rune) (rune, error) {
	v, err := c.CodePoint.Match(option.Maybe{
		option.Some: func(x interface{}) (interface{}, error) {
			return rune(x.(option.Int64T).Unwrap()), nil
		},
		option.None: func(x interface{}) (interface{}, error) {
			return fallback(c.FontCode), nil
		},
	})
	if err != nil {
		return 0, core.WrapError(err, core.EINTERNAL, "cannot resolve code point for %q", c.Name)
	}
	r, ok := v.(rune)
	if !ok {
		return 0, core.Error(core.EINTERNAL, "unexpected match result type for %q", c.Name)
	}
	return r, nil
}

func (c *Character) String() string {
	return fmt.Sprintf("Character(%s, font=%d)", c.Name, c.FontCode)
}

func (v *VirtualChar) String() string {
	return fmt.Sprintf("VirtualChar(%s, %d rewrites)", v.Name, len(v.Rewrites))
}
