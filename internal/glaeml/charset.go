package glaeml

import (
	"strconv"

	"github.com/glaemscribe/glaemscribe-go/core"
	"github.com/glaemscribe/glaemscribe-go/core/charset"
	"github.com/glaemscribe/glaemscribe-go/core/option"
)

// charFlags maps a "\char"'s trailing "#flag" markers to charset.Flag
// bits, grounded on the flag categories the original charset_parser.py
// classifies characters into (punctuation, space, digit, combining).
var charFlags = map[string]charset.Flag{
	"#punct":     charset.FlagPunct,
	"#space":     charset.FlagSpace,
	"#digit":     charset.FlagDigit,
	"#combining": charset.FlagCombining,
}

// ParseCharset reads a charset file's content into a *charset.Charset
// named name. Its directive grammar is narrower than the general
// "\beg ... \end" reader supports: charsets only ever declare "\char"
// lines and "\virtual" blocks, so this is what ParseCharset looks for.
//
//	\char <hex-code-point> <NAME> [<ALIAS>...] [#flag...]
//	\beg virtual <NAME>
//	  \rewrite <trigger tokens...> --> <replacement tokens...>
//	  \sequence <token...>
//	  \swap <neighbor name...>
//	\end
func ParseCharset(name, content string) (*charset.Charset, []error) {
	doc := NewParser().Parse(content)
	cs := charset.New(name)
	var errs []error
	for _, e := range doc.Errors {
		errs = append(errs, e)
	}

	for _, n := range doc.Root.Gpath("char") {
		if err := parseChar(cs, n); err != nil {
			errs = append(errs, err)
		}
	}
	for _, n := range doc.Root.Gpath("virtual") {
		if err := parseVirtual(cs, n); err != nil {
			errs = append(errs, err)
		}
	}
	return cs, errs
}

func parseChar(cs *charset.Charset, n *Node) error {
	if len(n.Args) < 2 {
		return core.Error(core.EPARSE, "line %d: \\char needs a code point and at least one name", n.Line)
	}
	code, err := strconv.ParseInt(n.Args[0], 16, 64)
	if err != nil {
		return core.WrapError(err, core.EPARSE, "line %d: invalid \\char code point %q", n.Line, n.Args[0])
	}

	var flags charset.Flag
	var names []string
	for _, a := range n.Args[1:] {
		if f, ok := charFlags[a]; ok {
			flags |= f
			continue
		}
		names = append(names, a)
	}
	if len(names) == 0 {
		return core.Error(core.EPARSE, "line %d: \\char has no name", n.Line)
	}

	// The declared code is always recorded as a direct Unicode mapping,
	// whatever its value, so a low codepoint (e.g. plain ASCII
	// punctuation) is emitted as written. Only the *absence* of a
	// codepoint triggers Emit's font-code-to-PUA fallback, and a "\char"
	// line always declares one.
	primary := &charset.Character{
		Name:      names[0],
		FontCode:  int(code),
		CodePoint: option.SomeInt64(int(code)),
		Flags:     flags,
	}
	cs.AddCharacter(primary)
	for _, alias := range names[1:] {
		aliased := *primary
		aliased.Name = alias
		cs.AddCharacter(&aliased)
	}
	return nil
}

func parseVirtual(cs *charset.Charset, n *Node) error {
	if len(n.Args) < 2 {
		return core.Error(core.EPARSE, "line %d: \\virtual needs a name", n.Line)
	}
	name := n.Args[1]

	v := &charset.VirtualChar{Name: name, Swaps: make(map[string]bool)}

	for _, rw := range n.Gpath("rewrite") {
		trigger, replacement, err := splitArrow(rw)
		if err != nil {
			return err
		}
		v.Rewrites = append(v.Rewrites, charset.Rewrite{Trigger: trigger, Replacement: replacement})
	}
	for _, seq := range n.Gpath("sequence") {
		v.Sequences = seq.Args
	}
	for _, sw := range n.Gpath("swap") {
		for _, neighbor := range sw.Args {
			v.Swaps[neighbor] = true
		}
	}

	cs.AddVirtual(v)
	return nil
}

// splitArrow splits a "\rewrite" node's args on the literal "-->" token
// into trigger and replacement name lists.
func splitArrow(n *Node) (trigger, replacement []string, err error) {
	for i, a := range n.Args {
		if a == "-->" {
			return n.Args[:i], n.Args[i+1:], nil
		}
	}
	return nil, nil, core.Error(core.EPARSE, "line %d: \\rewrite needs a --> separator", n.Line)
}
