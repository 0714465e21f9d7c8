// Package token defines the single tagged value that flows between every
// stage of the transliteration pipeline: preprocessor, processor, and the
// post-processor chain all operate on slices of Token.
package token

import "fmt"

// Kind tags the payload carried by a Token. Tokens are a small sum type
// rather than an interface hierarchy, mirroring core/option's preference
// for value types over pointer polymorphism.
type Kind uint8

const (
	// Literal is a single Unicode scalar copied verbatim from the input,
	// not (yet, or ever) resolved against a charset.
	Literal Kind = iota
	// Char references a charset.Character by name.
	Char
	// Virtual references a charset.VirtualChar by name.
	Virtual
	// Boundary is a structural marker: word or line start/end.
	Boundary
	// UnicodeVar is a placeholder for a {UNI_xxx}-style variable reference
	// that survives Fragment parsing unresolved; Fragment.Finalize splices
	// in the variable's own token sequence and no UnicodeVar token reaches
	// any later stage.
	UnicodeVar
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Char:
		return "char"
	case Virtual:
		return "virtual"
	case Boundary:
		return "boundary"
	case UnicodeVar:
		return "unicode-var"
	}
	return "unknown"
}

// Edge identifies which structural marker a Boundary token carries.
type Edge uint8

const (
	WordStart Edge = iota
	WordEnd
	LineStart
	LineEnd
)

func (e Edge) String() string {
	switch e {
	case WordStart:
		return "word-start"
	case WordEnd:
		return "word-end"
	case LineStart:
		return "line-start"
	case LineEnd:
		return "line-end"
	}
	return "unknown-edge"
}

// Token is the unit of exchange between pipeline stages.
//
// For Kind == Literal, Rune carries the scalar and Name is empty.
// For Kind == Char or Kind == Virtual, Name carries the charset entry's
// name and Rune is zero.
// For Kind == Boundary, Edge carries which marker this is.
type Token struct {
	Kind Kind
	Name string
	Rune rune
	Edge Edge
}

// NewLiteral wraps a raw Unicode scalar that did not resolve against any
// charset entry.
func NewLiteral(r rune) Token {
	return Token{Kind: Literal, Rune: r}
}

// NewChar references a real charset character by name.
func NewChar(name string) Token {
	return Token{Kind: Char, Name: name}
}

// NewVirtual references a virtual charset character by name.
func NewVirtual(name string) Token {
	return Token{Kind: Virtual, Name: name}
}

// NewBoundary creates a structural marker token.
func NewBoundary(e Edge) Token {
	return Token{Kind: Boundary, Edge: e}
}

// NewUnicodeVar creates an unresolved reference to a Unicode-literal
// variable, keyed by its declared name (e.g. "UNI_1F4A9").
func NewUnicodeVar(name string) Token {
	return Token{Kind: UnicodeVar, Name: name}
}

// IsBoundary reports whether t is a structural marker.
func (t Token) IsBoundary() bool {
	return t.Kind == Boundary
}

// Key returns the string the transcription tree and the post-processor
// chain use to key this token for lookups: the literal scalar for a
// Literal token, the entry name for Char/Virtual, and a sentinel for
// Boundary tokens.
func (t Token) Key() string {
	switch t.Kind {
	case Literal:
		return string(t.Rune)
	case Char, Virtual:
		return t.Name
	case Boundary:
		return "\x00" + t.Edge.String()
	case UnicodeVar:
		return "\x00unicode-var:" + t.Name
	}
	return ""
}

func (t Token) String() string {
	switch t.Kind {
	case Literal:
		return fmt.Sprintf("Literal(%q)", t.Rune)
	case Char:
		return fmt.Sprintf("Char(%s)", t.Name)
	case Virtual:
		return fmt.Sprintf("Virtual(%s)", t.Name)
	case Boundary:
		return fmt.Sprintf("Boundary(%s)", t.Edge)
	case UnicodeVar:
		return fmt.Sprintf("UnicodeVar(%s)", t.Name)
	}
	return "Token(?)"
}

// Sequence is a convenience alias used throughout the engine for a run of
// tokens, e.g. a Fragment combination or a SubRule's source/destination.
type Sequence []Token

// Equal reports whether two sequences carry identical tokens in order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Join renders a sequence of Literal tokens back to a string; non-literal
// tokens are rendered using their Key(). Mainly used for error messages
// and debug dumps.
func Join(seq Sequence) string {
	out := make([]rune, 0, len(seq))
	for _, t := range seq {
		if t.Kind == Literal {
			out = append(out, t.Rune)
		} else {
			out = append(out, []rune(t.Key())...)
		}
	}
	return string(out)
}
