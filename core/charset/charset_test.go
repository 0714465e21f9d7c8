package charset_test

import (
	"testing"

	"github.com/glaemscribe/glaemscribe-go/core/charset"
	"github.com/glaemscribe/glaemscribe-go/core/option"
	"github.com/stretchr/testify/assert"
)

func TestCharacterLookupAndFlags(t *testing.T) {
	cs := charset.New("test-charset")
	cs.AddCharacter(&charset.Character{Name: "TELCO", FontCode: 1, CodePoint: option.SomeInt64(0xE000)})
	cs.AddCharacter(&charset.Character{Name: "SPACE", FontCode: 2, Flags: charset.FlagSpace})

	telco, ok := cs.Character("TELCO")
	assert.True(t, ok)
	assert.False(t, telco.Is(charset.FlagSpace))

	sp, ok := cs.Character("SPACE")
	assert.True(t, ok)
	assert.True(t, sp.Is(charset.FlagSpace))

	_, ok = cs.Character("NOPE")
	assert.False(t, ok)
}

func TestCodePointFallback(t *testing.T) {
	withUnicode := &charset.Character{Name: "A", FontCode: 5, CodePoint: option.SomeInt64(0xE100)}
	r, err := withUnicode.CodePointOf(func(fontCode int) rune { return rune(0xF000 + fontCode) })
	assert.NoError(t, err)
	assert.Equal(t, rune(0xE100), r)

	fontCodeOnly := &charset.Character{Name: "B", FontCode: 5, CodePoint: option.Int64()}
	r, err = fontCodeOnly.CodePointOf(func(fontCode int) rune { return rune(0xF000 + fontCode) })
	assert.NoError(t, err)
	assert.Equal(t, rune(0xF005), r)
}

func TestVirtualCharLookupAndSwap(t *testing.T) {
	cs := charset.New("test-charset")
	v := &charset.VirtualChar{
		Name:      "V_A",
		Sequences: []string{"TELCO", "TEHTA_A"},
		Swaps:     map[string]bool{"R_CURL": true},
	}
	cs.AddVirtual(v)

	got, ok := cs.Virtual("V_A")
	assert.True(t, ok)
	assert.True(t, got.HasSwapWith("R_CURL"))
	assert.False(t, got.HasSwapWith("R_OPEN"))
	assert.True(t, cs.Has("V_A"))
}

func TestCharacterNamesPreserveAuthoringOrder(t *testing.T) {
	cs := charset.New("test-charset")
	cs.AddCharacter(&charset.Character{Name: "C"})
	cs.AddCharacter(&charset.Character{Name: "A"})
	cs.AddCharacter(&charset.Character{Name: "B"})
	assert.Equal(t, []string{"C", "A", "B"}, cs.CharacterNames())
}

func TestSuggestionsFuzzyMatch(t *testing.T) {
	cs := charset.New("test-charset")
	cs.AddCharacter(&charset.Character{Name: "TELCO"})
	cs.AddCharacter(&charset.Character{Name: "TINCO"})
	sugg := cs.Suggestions("TELC", 5)
	assert.NotEmpty(t, sugg)
}

func TestRegistryStoreAndGet(t *testing.T) {
	r := charset.NewRegistry()
	cs := charset.New("tengwar-glaemscribe")
	r.Store(cs)
	got, ok := r.Get("tengwar-glaemscribe")
	assert.True(t, ok)
	assert.Same(t, cs, got)
	assert.Contains(t, r.Names(), "tengwar-glaemscribe")
}

func TestRegistryDoesNotOverrideExisting(t *testing.T) {
	r := charset.NewRegistry()
	first := charset.New("dup")
	second := charset.New("dup")
	r.Store(first)
	r.Store(second)
	got, _ := r.Get("dup")
	assert.Same(t, first, got)
}
