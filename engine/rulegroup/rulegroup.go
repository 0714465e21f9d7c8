package rulegroup

import (
	"regexp"
	"strings"

	"github.com/glaemscribe/glaemscribe-go/core"
	"github.com/glaemscribe/glaemscribe-go/engine/rules"
)

var varDeclRx = regexp.MustCompile(`^\s*\{([0-9A-Z_]+)\}\s*===\s*(.+?)\s*$`)
var nonCrossRuleRx = regexp.MustCompile(`^\s*(.+?)\s+-->\s+(.+?)\s*$`)
var crossRuleRx = regexp.MustCompile(`^\s*(.+?)\s+==>\s+(.+?)\s*$`)

// RuleGroup is one named group of rules in a mode's "\rules" block
// (modes may define several, e.g. "letters", "numbers", "punctuation").
type RuleGroup struct {
	Name       string
	Statements []Statement
	Macros     map[string]*Macro

	Vars   *VarTable
	Rules  []*rules.Rule
	Errors []error
}

// New creates an empty RuleGroup ready to receive statements and macros
// parsed by internal/glaeml, mirroring the teacher's convention of a
// bare constructor plus explicit mutation before Finalize.
func New(name string) *RuleGroup {
	return &RuleGroup{Name: name, Macros: make(map[string]*Macro)}
}

// AddMacro registers a macro so it can be deployed by name.
func (g *RuleGroup) AddMacro(m *Macro) {
	g.Macros[m.Name] = m
}

// ifFrame tracks one if/elsif/.../endif group while Finalize walks the
// flat Statements slice.
type ifFrame struct {
	enclosingActive bool
	selected        bool // some branch in this group has already matched
	branchActive    bool // the branch currently open is the active one
}

// Finalize runs the rule group's code block against the given
// transcription options, building Vars and Rules. Every parse/finalize
// problem is appended to Errors and the first one is returned, per the
// engine's policy that finalize failures are collected and surfaced as a
// unit rather than aborting at the first line.
func (g *RuleGroup) Finalize(options map[string]string) error {
	g.Vars = NewVarTable()
	g.Rules = nil
	g.Errors = nil

	g.run(g.Statements, options)

	if len(g.Errors) > 0 {
		return g.Errors[0]
	}
	return nil
}

// run interprets a flat statement list with its own if-frame stack. A
// macro body runs in a fresh call with an empty stack; it is only reached
// when the deploying statement is itself active, so its conditionals
// start from an active state.
func (g *RuleGroup) run(stmts []Statement, options map[string]string) {
	var stack []*ifFrame
	active := func() bool {
		for _, f := range stack {
			if !f.branchActive {
				return false
			}
		}
		return true
	}

	for _, st := range stmts {
		switch st.Kind {
		case Line:
			if active() {
				g.finalizeCodeLine(st)
			}
		case MacroDeploy:
			if active() {
				g.deployMacro(st, options)
			}
		case If:
			enclosing := active()
			selected := enclosing && EvaluateCondition(st.Text, options)
			stack = append(stack, &ifFrame{enclosingActive: enclosing, selected: selected, branchActive: selected})
		case Elsif:
			if len(stack) == 0 {
				g.addErr(core.Error(core.EPARSE, "line %d: elsif without a matching if", st.Line))
				continue
			}
			f := stack[len(stack)-1]
			if f.selected {
				f.branchActive = false
				continue
			}
			selected := f.enclosingActive && EvaluateCondition(st.Text, options)
			f.selected = selected
			f.branchActive = selected
		case Else:
			if len(stack) == 0 {
				g.addErr(core.Error(core.EPARSE, "line %d: else without a matching if", st.Line))
				continue
			}
			f := stack[len(stack)-1]
			if f.selected {
				f.branchActive = false
				continue
			}
			f.selected = f.enclosingActive
			f.branchActive = f.enclosingActive
		case EndIf:
			if len(stack) == 0 {
				g.addErr(core.Error(core.EPARSE, "line %d: endif without a matching if", st.Line))
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func (g *RuleGroup) addErr(err error) {
	g.Errors = append(g.Errors, err)
}

// deployMacro evaluates the deployment's argument expressions as local
// variables, runs the macro's body, then unwinds the local bindings.
// Per the original implementation, a local argument name that shadows an
// existing variable is refused rather than silently overriding it.
func (g *RuleGroup) deployMacro(st Statement, options map[string]string) {
	macro, ok := g.Macros[st.MacroName]
	if !ok {
		g.addErr(core.Error(core.EFINALIZE, "line %d: deploy of undefined macro %q", st.Line, st.MacroName))
		return
	}

	type binding struct{ name, value string }
	var bindings []binding
	for i, argName := range macro.ArgNames {
		if g.Vars.Has(argName) {
			g.addErr(core.Error(core.EFINALIZE, "line %d: local variable %s in macro %q hinders an existing variable of the same name", st.Line, argName, macro.Name))
			continue
		}
		if i >= len(st.ArgExprs) {
			g.addErr(core.Error(core.EFINALIZE, "line %d: macro %q missing argument %s", st.Line, macro.Name, argName))
			continue
		}
		val, err := g.Vars.Apply(st.Line, st.ArgExprs[i], true)
		if err != nil {
			g.addErr(err)
			continue
		}
		bindings = append(bindings, binding{argName, val})
	}
	for _, b := range bindings {
		g.Vars.Set(b.name, b.value)
	}

	g.run(macro.Statements, options)

	for _, b := range bindings {
		g.Vars.Unset(b.name)
	}
}

// finalizeCodeLine classifies and processes one non-conditional code
// line: a variable declaration or a (possibly cross) rule.
func (g *RuleGroup) finalizeCodeLine(st Statement) {
	expr := strings.TrimSpace(st.Text)
	if expr == "" || strings.HasPrefix(expr, "**") {
		return
	}

	if m := varDeclRx.FindStringSubmatch(expr); m != nil {
		value, err := g.Vars.Apply(st.Line, m[2], true)
		if err != nil {
			g.addErr(err)
			return
		}
		g.Vars.Set(m[1], value)
		return
	}

	if m := crossRuleRx.FindStringSubmatch(expr); m != nil {
		g.finalizeRule(st.Line, m[1], m[2], true)
		return
	}
	if m := nonCrossRuleRx.FindStringSubmatch(expr); m != nil {
		g.finalizeRule(st.Line, m[1], m[2], false)
		return
	}

	g.addErr(core.Error(core.EPARSE, "line %d: cannot understand %q", st.Line, expr))
}

// finalizeRule substitutes regular variables (unicode-literal variables
// are left intact for Fragment.Finalize), then hands the resulting text
// to engine/rules for parsing and expansion.
func (g *RuleGroup) finalizeRule(line int, srcText, dstText string, cross bool) {
	src, err := g.Vars.Apply(line, srcText, true)
	if err != nil {
		g.addErr(err)
		return
	}
	dst, err := g.Vars.Apply(line, dstText, false)
	if err != nil {
		g.addErr(err)
		return
	}

	arrow := "-->"
	if cross {
		arrow = "==>"
	}
	r, err := rules.ParseRule(line, src+" "+arrow+" "+dst)
	if err != nil {
		g.addErr(err)
		return
	}
	if err := r.Finalize(ResolveUnicodeVar); err != nil {
		g.addErr(err)
		return
	}
	g.Rules = append(g.Rules, r)
}
