package rules

import (
	"testing"

	"github.com/glaemscribe/glaemscribe-go/core/token"
	"github.com/stretchr/testify/assert"
)

func TestParseRuleStripsAnchors(t *testing.T) {
	r, err := ParseRule(1, "^a$ --> TELCO")
	assert.NoError(t, err)
	assert.True(t, r.Anchors.WordStart)
	assert.True(t, r.Anchors.LineEnd)
	assert.False(t, r.Anchors.WordEnd)
}

func TestParseRuleRejectsMissingArrow(t *testing.T) {
	_, err := ParseRule(1, "a TELCO")
	assert.Error(t, err)
}

func TestRuleFinalizeZipsEqualArity(t *testing.T) {
	r, err := ParseRule(1, "[(a,b)] --> [(TELCO,TINCO)]")
	assert.NoError(t, err)
	assert.NoError(t, r.Finalize(noResolve))
	assert.Len(t, r.SubRules, 2)
	assert.Equal(t, "a", token.Join(r.SubRules[0].Src))
	assert.Equal(t, "TELCO", r.SubRules[0].Dst[0].Name)
}

func TestRuleFinalizeBroadcastsSingleDestination(t *testing.T) {
	r, err := ParseRule(1, "[(a,b,c)] --> [TELCO]")
	assert.NoError(t, err)
	assert.NoError(t, r.Finalize(noResolve))
	assert.Len(t, r.SubRules, 3)
	for _, sr := range r.SubRules {
		assert.Equal(t, "TELCO", sr.Dst[0].Name)
	}
}

func TestRuleFinalizeRejectsArityMismatch(t *testing.T) {
	r, err := ParseRule(1, "[(a,b,c)] --> [(TELCO,TINCO)]")
	assert.NoError(t, err)
	assert.Error(t, r.Finalize(noResolve))
}

func TestCrossRuleProjectsByIndex(t *testing.T) {
	r, err := ParseRule(1, "[a][b] ==> [2 1]")
	assert.NoError(t, err)
	assert.NoError(t, r.Finalize(noResolve))
	assert.Len(t, r.SubRules, 1)
	sr := r.SubRules[0]
	assert.Equal(t, "ab", token.Join(sr.Src))
	assert.Equal(t, "ba", token.Join(sr.Dst))
}

func TestCrossRuleAllowsDuplicateIndex(t *testing.T) {
	r, err := ParseRule(1, "[a][b] ==> [1 1 2]")
	assert.NoError(t, err)
	assert.NoError(t, r.Finalize(noResolve))
	assert.Equal(t, "aab", token.Join(r.SubRules[0].Dst))
}

func TestAnchorStrictnessCounts(t *testing.T) {
	a := AnchorSet{WordStart: true, LineEnd: true}
	assert.Equal(t, 2, a.Strictness())
}
