package glaeml

import (
	"github.com/glaemscribe/glaemscribe-go/core"
	"github.com/glaemscribe/glaemscribe-go/core/token"
	"github.com/glaemscribe/glaemscribe-go/engine/mode"
	"github.com/glaemscribe/glaemscribe-go/engine/processor"
	"github.com/glaemscribe/glaemscribe-go/engine/rulegroup"
)

// boundaryEdges maps a "\boundary" directive's first word to the token
// edge it configures.
var boundaryEdges = map[string]token.Edge{
	"WORD_START": token.WordStart,
	"WORD_END":   token.WordEnd,
	"LINE_START": token.LineStart,
	"LINE_END":   token.LineEnd,
}

// boundaryRunes maps a "\boundary" directive's second word to the rune
// it emits, "NONE" meaning "discard, emit nothing".
var boundaryRunes = map[string]rune{
	"SPACE":   ' ',
	"NEWLINE": '\n',
	"TAB":     '\t',
}

// ParseMode reads a mode file's content into a *mode.Mode named name.
// Its directive grammar:
//
//	\language <name>
//	\writing <name>
//	\charset <name>
//	\beg options
//	  \option <name> <default>
//	\end
//	\beg preprocessor
//	  \pattern <from> <to>
//	  \accent <accented-rune> <base-rune>
//	\end
//	\beg rules <group-name>
//	  <src> --> <dst>          ** rule
//	  <src> ==> <dst>          ** cross rule
//	  {NAME} === <expr>        ** variable declaration
//	  \if <cond> / \elsif <cond> / \else / \endif
//	  \deploy <macro-name> <arg...>
//	  \beg macro <macro-name> <arg-name...>
//	    ...
//	  \end
//	\end
//	\beg postprocessor
//	  \boundary <WORD_START|WORD_END|LINE_START|LINE_END> <SPACE|NEWLINE|TAB|NONE>
//	\end
//
// This is the same narrowing the rest of the engine already accepts:
// enough of the mode language to drive Preprocessor, RuleGroup and
// postprocess.BoundaryPolicy, not a general-purpose configuration
// format.
func ParseMode(name, content string) (*mode.Mode, []error) {
	doc := NewParser().Parse(content)
	m := mode.New(name)
	var errs []error
	for _, e := range doc.Errors {
		errs = append(errs, e)
	}

	if n := firstNode(doc.Root, "language"); n != nil {
		m.Language = joinArgs(n)
	}
	if n := firstNode(doc.Root, "writing"); n != nil {
		m.Writing = joinArgs(n)
	}
	if n := firstNode(doc.Root, "charset"); n != nil && len(n.Args) > 0 {
		m.CharsetName = n.Args[0]
	}

	for _, opts := range doc.Root.Gpath("options") {
		for _, opt := range opts.Gpath("option") {
			if len(opt.Args) < 2 {
				errs = append(errs, core.Error(core.EPARSE, "line %d: \\option needs a name and a default value", opt.Line))
				continue
			}
			m.OptionNames = append(m.OptionNames, opt.Args[0])
			m.OptionDefaults[opt.Args[0]] = opt.Args[1]
		}
	}

	for _, pre := range doc.Root.Gpath("preprocessor") {
		for _, pat := range pre.Gpath("pattern") {
			if len(pat.Args) < 2 {
				errs = append(errs, core.Error(core.EPARSE, "line %d: \\pattern needs a source and a replacement", pat.Line))
				continue
			}
			m.Preprocessor.Patterns = append(m.Preprocessor.Patterns, processor.PatternRule{
				Pattern:     pat.Args[0],
				Replacement: pat.Args[1],
			})
		}
		for _, acc := range pre.Gpath("accent") {
			if len(acc.Args) < 2 || len([]rune(acc.Args[0])) != 1 || len([]rune(acc.Args[1])) != 1 {
				errs = append(errs, core.Error(core.EPARSE, "line %d: \\accent needs exactly one accented rune and one base rune", acc.Line))
				continue
			}
			m.Preprocessor.AccentToBase[[]rune(acc.Args[0])[0]] = []rune(acc.Args[1])[0]
		}
	}

	for _, rg := range doc.Root.Gpath("rules") {
		groupName := "rules"
		if len(rg.Args) > 1 {
			groupName = rg.Args[1]
		}
		g := rulegroup.New(groupName)
		g.Statements, errs = readCodeBlock(rg, g, errs)
		m.RuleGroups = append(m.RuleGroups, g)
	}

	for _, post := range doc.Root.Gpath("postprocessor") {
		for _, b := range post.Gpath("boundary") {
			if len(b.Args) < 2 {
				errs = append(errs, core.Error(core.EPARSE, "line %d: \\boundary needs an edge and an emission", b.Line))
				continue
			}
			edge, ok := boundaryEdges[b.Args[0]]
			if !ok {
				errs = append(errs, core.Error(core.EPARSE, "line %d: unknown boundary edge %q", b.Line, b.Args[0]))
				continue
			}
			if b.Args[1] == "NONE" {
				delete(m.BoundaryPolicy.Emit, edge)
				continue
			}
			r, ok := boundaryRunes[b.Args[1]]
			if !ok {
				errs = append(errs, core.Error(core.EPARSE, "line %d: unknown boundary emission %q", b.Line, b.Args[1]))
				continue
			}
			m.BoundaryPolicy.Emit[edge] = r
		}
	}

	return m, errs
}

// readCodeBlock walks a "\rules" or "\macro" block's children into a
// flat Statement list, registering any nested "\beg macro" block on g
// as a callable Macro rather than inlining it as statements.
func readCodeBlock(block *Node, g *rulegroup.RuleGroup, errs []error) ([]rulegroup.Statement, []error) {
	var out []rulegroup.Statement
	for _, c := range block.Children {
		switch {
		case c.IsText():
			out = append(out, rulegroup.Statement{Kind: rulegroup.Line, Line: c.Line, Text: c.Args[0]})
		case c.Name == "if":
			out = append(out, rulegroup.Statement{Kind: rulegroup.If, Line: c.Line, Text: joinArgs(c)})
		case c.Name == "elsif":
			out = append(out, rulegroup.Statement{Kind: rulegroup.Elsif, Line: c.Line, Text: joinArgs(c)})
		case c.Name == "else":
			out = append(out, rulegroup.Statement{Kind: rulegroup.Else, Line: c.Line})
		case c.Name == "endif":
			out = append(out, rulegroup.Statement{Kind: rulegroup.EndIf, Line: c.Line})
		case c.Name == "deploy":
			if len(c.Args) == 0 {
				errs = append(errs, core.Error(core.EPARSE, "line %d: \\deploy needs a macro name", c.Line))
				continue
			}
			out = append(out, rulegroup.Statement{Kind: rulegroup.MacroDeploy, Line: c.Line, MacroName: c.Args[0], ArgExprs: c.Args[1:]})
		case c.Name == "macro":
			if len(c.Args) < 2 {
				errs = append(errs, core.Error(core.EPARSE, "line %d: \\beg macro needs a name", c.Line))
				continue
			}
			body, bErrs := readCodeBlock(c, g, nil)
			errs = append(errs, bErrs...)
			g.AddMacro(&rulegroup.Macro{Name: c.Args[1], ArgNames: c.Args[2:], Statements: body})
		default:
			errs = append(errs, core.Error(core.EPARSE, "line %d: unexpected directive \\%s in rule group", c.Line, c.Name))
		}
	}
	return out, errs
}

func firstNode(root *Node, name string) *Node {
	nodes := root.Gpath(name)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func joinArgs(n *Node) string {
	out := ""
	for i, a := range n.Args {
		if i > 0 {
			out += " "
		}
		out += a
	}
	return out
}
