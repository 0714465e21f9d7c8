package rules

import (
	"testing"

	"github.com/glaemscribe/glaemscribe-go/core/token"
	"github.com/stretchr/testify/assert"
)

func noResolve(string) (token.Sequence, bool) { return nil, false }

func TestFragmentCartesianExpansion(t *testing.T) {
	f := ParseFragment("h(a,ä)(i,ï)")
	assert.NoError(t, f.Finalize(noResolve))
	assert.Len(t, f.Combinations, 4)
	for _, c := range f.Combinations {
		assert.Len(t, c, 3)
	}
	assert.Equal(t, "hai", token.Join(f.Combinations[0]))
}

func TestFragmentPlainLiteralExpandsPerRune(t *testing.T) {
	f := ParseFragment("ng")
	assert.NoError(t, f.Finalize(noResolve))
	assert.Len(t, f.Combinations, 1)
	assert.Len(t, f.Combinations[0], 2)
}

func TestFragmentCharsetReference(t *testing.T) {
	f := ParseFragment("TELCO")
	assert.NoError(t, f.Finalize(noResolve))
	assert.Len(t, f.Combinations, 1)
	assert.Len(t, f.Combinations[0], 1)
	assert.Equal(t, token.Char, f.Combinations[0][0].Kind)
	assert.Equal(t, "TELCO", f.Combinations[0][0].Name)
}

func TestFragmentEmptyAlternativeParsesButCanUnbalanceLength(t *testing.T) {
	// "(,x)" is legal to write (an alternative can be empty), but within a
	// single Fragment it still has to respect the equal-length invariant;
	// here "a" and "" produce different lengths, so the fragment is
	// rejected at Finalize, same as any other arity mismatch.
	f := ParseFragment("h(a,)")
	assert.Len(t, f.Combinations, 2)
	err := f.Finalize(noResolve)
	assert.Error(t, err)
}

func TestFragmentUnequalLengthIsFinalizeError(t *testing.T) {
	f := ParseFragment("(ab,c)")
	err := f.Finalize(noResolve)
	assert.Error(t, err)
}

func TestFragmentUnicodeVarResolvedAtFinalize(t *testing.T) {
	f := ParseFragment("{UNI_1F4A9}")
	resolve := func(name string) (token.Sequence, bool) {
		if name == "UNI_1F4A9" {
			return token.Sequence{token.NewLiteral(0x1F4A9)}, true
		}
		return nil, false
	}
	assert.NoError(t, f.Finalize(resolve))
	assert.Len(t, f.Combinations, 1)
	assert.Equal(t, rune(0x1F4A9), f.Combinations[0][0].Rune)
}

func TestFragmentUndefinedUnicodeVarIsError(t *testing.T) {
	f := ParseFragment("{UNI_FFFF}")
	err := f.Finalize(noResolve)
	assert.Error(t, err)
}
