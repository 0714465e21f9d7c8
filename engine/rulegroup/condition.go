package rulegroup

import (
	"strconv"
	"strings"
)

// EvaluateCondition evaluates an "\if"/"\elsif" expression against the
// transcription options in effect, following the three forms the
// original mode language actually supports: bare option truthiness,
// "option == value" equality, and the literal "true" used for an
// "\else" clause. There is no negation operator.
func EvaluateCondition(expr string, options map[string]string) bool {
	expr = strings.TrimSpace(expr)

	if v, ok := options[expr]; ok {
		b, err := strconv.ParseBool(strings.ToLower(v))
		return err == nil && b
	}

	if i := strings.Index(expr, "=="); i >= 0 {
		name := strings.TrimSpace(expr[:i])
		want := strings.Trim(strings.TrimSpace(expr[i+2:]), `"'`)
		return options[name] == want
	}

	return strings.EqualFold(expr, "true")
}
