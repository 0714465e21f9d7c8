package rulegroup

import (
	"regexp"
	"strconv"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/glaemscribe/glaemscribe-go/core"
	"github.com/glaemscribe/glaemscribe-go/core/token"
)

// maxVarSubstDepth bounds regular-variable substitution recursion;
// exceeding it is a loop error rather than a silent truncation.
const maxVarSubstDepth = 16

var varNameRx = regexp.MustCompile(`\{([0-9A-Z_]+)\}`)
var unicodeVarNameRx = regexp.MustCompile(`^UNI_([0-9A-Fa-f]+)$`)

// VarTable holds a RuleGroup's regular-variable bindings in authoring
// order, so that diagnostics and debug dumps enumerate variables the way
// the mode author wrote them.
type VarTable struct {
	vars *linkedhashmap.Map // string -> string
}

// NewVarTable creates a table pre-seeded with the engine's built-in
// variables: the characters mode authors need to write literally but
// that are awkward to type or see in a text editor.
func NewVarTable() *VarTable {
	t := &VarTable{vars: linkedhashmap.New()}
	defaults := []struct{ name, value string }{
		{"NULL", ""},
		{"NBSP", "{UNI_A0}"},
		{"WJ", "{UNI_2060}"},
		{"ZWSP", "{UNI_200B}"},
		{"ZWNJ", "{UNI_200C}"},
		{"UNDERSCORE", "{UNI_5F}"},
		{"ASTERISK", "{UNI_2A}"},
		{"COMMA", "{UNI_2C}"},
		{"LPAREN", "{UNI_28}"},
		{"RPAREN", "{UNI_29}"},
		{"LBRACKET", "{UNI_5B}"},
		{"RBRACKET", "{UNI_5D}"},
	}
	for _, d := range defaults {
		t.Set(d.name, d.value)
	}
	return t
}

// Set binds name to value, overriding any previous binding.
func (t *VarTable) Set(name, value string) {
	t.vars.Put(name, value)
}

// Unset removes a binding, used to pop macro-local variables back out of
// scope once a macro deployment finishes.
func (t *VarTable) Unset(name string) {
	t.vars.Remove(name)
}

// Get looks up a regular variable's value.
func (t *VarTable) Get(name string) (string, bool) {
	v, ok := t.vars.Get(name)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Has reports whether name is currently bound.
func (t *VarTable) Has(name string) bool {
	_, ok := t.vars.Get(name)
	return ok
}

// Names lists every bound variable name in authoring order.
func (t *VarTable) Names() []string {
	it := t.vars.Iterator()
	names := make([]string, 0, t.vars.Size())
	for it.Next() {
		names = append(names, it.Key().(string))
	}
	return names
}

// Apply performs iterative regular-variable substitution on s, per
// the engine's {NAME} syntax. When allowUnicodeVars is true, a {UNI_xxx}
// reference that has no regular binding is left untouched (Fragment
// finalization resolves it later); otherwise such a reference is a
// finalize error, since unicode-literal variables are only meaningful in
// a rule's source side or inside another variable's own definition.
func (t *VarTable) Apply(line int, s string, allowUnicodeVars bool) (string, error) {
	depth := 0
	for {
		var firstErr error
		replaced := false
		out := varNameRx.ReplaceAllStringFunc(s, func(m string) string {
			if firstErr != nil {
				return m
			}
			name := m[1 : len(m)-1]
			if v, ok := t.Get(name); ok {
				replaced = true
				return v
			}
			if unicodeVarNameRx.MatchString(name) {
				if allowUnicodeVars {
					return m // left intact for Fragment.Finalize
				}
				firstErr = core.Error(core.EFINALIZE, "line %d: in expression %q: unicode variable %s cannot be used here (only in a rule's source or another variable's definition)", line, s, m)
				return m
			}
			firstErr = core.Error(core.EFINALIZE, "line %d: in expression %q: undefined variable %s", line, s, m)
			return m
		})
		if firstErr != nil {
			return "", firstErr
		}
		s = out
		if !replaced {
			return s, nil
		}
		depth++
		if depth > maxVarSubstDepth {
			return "", core.Error(core.ELOOP, "line %d: in expression %q: variable substitution exceeded depth %d (circular reference?)", line, s, maxVarSubstDepth)
		}
	}
}

// ResolveUnicodeVar implements rules.UnicodeResolver: a {UNI_xxx}
// reference's value is the hex code point encoded directly in its own
// name, not a separately declared binding.
func ResolveUnicodeVar(name string) (token.Sequence, bool) {
	m := unicodeVarNameRx.FindStringSubmatch(name)
	if m == nil {
		return nil, false
	}
	cp, err := strconv.ParseInt(m[1], 16, 32)
	if err != nil || cp < 0 || cp > 0x10FFFF {
		return nil, false
	}
	return token.Sequence{token.NewLiteral(rune(cp))}, true
}
