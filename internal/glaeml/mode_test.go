package glaeml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testCharsetSrc = `
\char E010 M_CHAR
\char E011 E_TEHTA
\char E012 O_TEHTA
\char E013 N_CHAR
\char E014 LAMBE

\beg virtual DOUBLE_LAMBE
\sequence LAMBE LAMBE
\end
`

const testModeSrc = `
\language Sindarin
\writing Tengwar
\charset sindarin-general

\beg rules letters
m --> M_CHAR
e --> E_TEHTA
ll --> DOUBLE_LAMBE
o --> O_TEHTA
n --> N_CHAR
\end
`

func TestParseModeBuildsTranscribingMode(t *testing.T) {
	cs, csErrs := ParseCharset("sindarin-general", testCharsetSrc)
	assert.Empty(t, csErrs)

	m, mErrs := ParseMode("sindarin-general", testModeSrc)
	assert.Empty(t, mErrs)
	assert.Equal(t, "Sindarin", m.Language)
	assert.Equal(t, "Tengwar", m.Writing)
	assert.Equal(t, "sindarin-general", m.CharsetName)

	m.Charset = cs
	assert.NoError(t, m.Finalize(nil))

	ok, out, debug := m.Transcribe("mellon")
	assert.True(t, ok)
	assert.Empty(t, debug.Diagnostics)
	assert.Equal(t, []rune{0xE010, 0xE011, 0xE014, 0xE014, 0xE012, 0xE013, ' ', '\n'}, []rune(out))
}

const testModeWithOptionsAndPreprocessorSrc = `
\beg options
\option style short
\end

\beg preprocessor
\accent ë e
\end

\beg rules letters
e --> E_TEHTA
\end
`

func TestParseModeReadsOptionsAndPreprocessorDirectives(t *testing.T) {
	cs, _ := ParseCharset("quenya-classical", `\char E001 E_TEHTA`)

	m, errs := ParseMode("quenya-classical", testModeWithOptionsAndPreprocessorSrc)
	assert.Empty(t, errs)
	assert.Equal(t, []string{"style"}, m.OptionNames)
	assert.Equal(t, "short", m.OptionDefaults["style"])
	assert.Equal(t, 'e', m.Preprocessor.AccentToBase['ë'])

	m.Charset = cs
	assert.NoError(t, m.Finalize(nil))

	ok, out, _ := m.Transcribe("ë")
	assert.True(t, ok)
	assert.Equal(t, []rune{0xE001, ' ', '\n'}, []rune(out))
}

const testModeWithConditionalRuleSrc = `
\beg rules letters
\if long_vowels
e --> E_TEHTA_LONG
\else
e --> E_TEHTA
\endif
\end
`

func TestParseModeReadsConditionalRules(t *testing.T) {
	cs, _ := ParseCharset("quenya-classical", "\\char E001 E_TEHTA\n\\char E002 E_TEHTA_LONG\n")

	m, errs := ParseMode("quenya-classical", testModeWithConditionalRuleSrc)
	assert.Empty(t, errs)
	m.Charset = cs

	assert.NoError(t, m.Finalize(map[string]string{"long_vowels": "true"}))
	_, out, _ := m.Transcribe("e")
	assert.Equal(t, []rune{0xE002, ' ', '\n'}, []rune(out))

	assert.NoError(t, m.Finalize(nil))
	_, out, _ = m.Transcribe("e")
	assert.Equal(t, []rune{0xE001, ' ', '\n'}, []rune(out))
}

const testModeWithMacroSrc = `
\beg rules letters
\beg macro emit_pair FIRST SECOND
{FIRST} --> {SECOND}
\end
\deploy emit_pair e E_TEHTA
\end
`

func TestParseModeReadsMacroDefinitionAndDeploy(t *testing.T) {
	cs, _ := ParseCharset("quenya-classical", `\char E001 E_TEHTA`)

	m, errs := ParseMode("quenya-classical", testModeWithMacroSrc)
	assert.Empty(t, errs)
	m.Charset = cs

	assert.NoError(t, m.Finalize(nil))
	_, out, _ := m.Transcribe("e")
	assert.Equal(t, []rune{0xE001, ' ', '\n'}, []rune(out))
}

const testModeWithBoundaryDirectiveSrc = `
\beg rules letters
e --> E_TEHTA
\end

\beg postprocessor
\boundary WORD_END NONE
\end
`

func TestParseModeReadsPostprocessorBoundaryDirective(t *testing.T) {
	cs, _ := ParseCharset("quenya-classical", `\char E001 E_TEHTA`)

	m, errs := ParseMode("quenya-classical", testModeWithBoundaryDirectiveSrc)
	assert.Empty(t, errs)
	m.Charset = cs

	assert.NoError(t, m.Finalize(nil))
	_, out, _ := m.Transcribe("e")
	assert.Equal(t, []rune{0xE001, '\n'}, []rune(out))
}
