package mode

import (
	"github.com/glaemscribe/glaemscribe-go/core/charset"
	"github.com/glaemscribe/glaemscribe-go/core/token"
	"github.com/glaemscribe/glaemscribe-go/engine/postprocess"
	"github.com/glaemscribe/glaemscribe-go/engine/processor"
	"github.com/glaemscribe/glaemscribe-go/engine/rulegroup"
	"github.com/glaemscribe/glaemscribe-go/engine/tree"
)

// Mode is the top-level transcription pipeline for one writing system:
// a preprocessor, the RuleGroups that feed one shared transcription
// tree, a post-processor chain, and the charset both of the latter two
// are resolved against.
//
// A zero Mode is not usable; build one with New and populate its fields
// from a parsed mode file before calling Finalize.
type Mode struct {
	Name           string
	Language       string
	Writing        string
	CharsetName    string
	Charset        *charset.Charset
	OptionNames    []string // declared \options names, in authoring order
	OptionDefaults map[string]string

	Preprocessor   *processor.Preprocessor
	RuleGroups     []*rulegroup.RuleGroup
	BoundaryPolicy postprocess.BoundaryPolicy

	proc *processor.Processor
	post *postprocess.Chain

	// Errors collects every parse/finalize error from the last Finalize
	// call, per spec's "collected into the Mode's error list" policy.
	Errors []error
}

// New creates an empty Mode. Preprocessor defaults to a fresh
// processor.Preprocessor with no declared patterns; callers populate it,
// RuleGroups, and Charset before calling Finalize.
func New(name string) *Mode {
	return &Mode{
		Name:           name,
		OptionDefaults: make(map[string]string),
		Preprocessor:   processor.NewPreprocessor(),
		BoundaryPolicy: postprocess.DefaultBoundaryPolicy(),
	}
}

// Finalize resolves every RuleGroup against the merged option set
// (caller-supplied options override declared defaults) and rebuilds the
// shared transcription tree and post-processor chain from scratch. It
// is idempotent: calling it twice with the same options produces a Mode
// that transcribes identically, since every piece it builds is replaced
// rather than accumulated.
func (m *Mode) Finalize(options map[string]string) error {
	merged := make(map[string]string, len(m.OptionDefaults)+len(options))
	for k, v := range m.OptionDefaults {
		merged[k] = v
	}
	for k, v := range options {
		merged[k] = v
	}

	m.Errors = nil
	m.proc, m.post = nil, nil
	t := tree.New()

	for _, g := range m.RuleGroups {
		if err := g.Finalize(merged); err != nil {
			m.Errors = append(m.Errors, g.Errors...)
		}
		// A line-level error inside one rule group doesn't void the rules
		// that line's siblings still produced; every SubRule that did get
		// finalized goes into the shared tree regardless.
		for _, r := range g.Rules {
			for _, sr := range r.SubRules {
				t.Insert(sr.Src, sr.Dst, sr.Anchors)
			}
		}
	}

	if len(m.Errors) > 0 {
		return m.Errors[0]
	}

	m.proc = processor.New(t)
	m.post = postprocess.New(m.Charset)
	m.post.Policy = m.BoundaryPolicy
	return nil
}

// StageDump is a named snapshot of the token stream at one pipeline
// stage, kept for debug records rather than for any control-flow use.
type StageDump struct {
	Name   string
	Tokens token.Sequence
}

// DebugRecord accompanies every Transcribe call: a token snapshot after
// each pipeline stage plus any non-fatal diagnostic the post-processor
// chain raised, per spec §7's "runtime warnings attached to the debug
// record" policy. Supplements spec.md, which names the debug record but
// leaves its shape unspecified; original_source/'s CLI driver prints an
// equivalent per-stage trace when run verbosely, which this mirrors.
type DebugRecord struct {
	Stages      []StageDump
	Diagnostics []postprocess.Diagnostic
}

// Transcribe runs text through the full pipeline. Per spec.md §4.7 this
// never fails: a Mode that hasn't been finalized yet, or whose
// finalization produced errors, still returns ok=false with an empty
// output rather than panicking, since there is no tree or post-processor
// chain to run.
func (m *Mode) Transcribe(text string) (ok bool, output string, debug DebugRecord) {
	if m.proc == nil || m.post == nil {
		return false, "", debug
	}
	if text == "" {
		return true, "", debug
	}

	pre := m.Preprocessor.Run(text)
	debug.Stages = append(debug.Stages, StageDump{Name: "preprocess", Tokens: pre})

	processed := m.proc.Run(pre)
	debug.Stages = append(debug.Stages, StageDump{Name: "process", Tokens: processed})

	resolved, diags := postprocess.ResolveCharsets(processed, m.post.Charset)
	debug.Stages = append(debug.Stages, StageDump{Name: "resolve-charsets", Tokens: resolved})

	resolved, d := postprocess.ResolveVirtuals(resolved, m.post.Charset)
	diags = append(diags, d...)
	debug.Stages = append(debug.Stages, StageDump{Name: "resolve-virtuals", Tokens: resolved})

	out, d := postprocess.Emit(resolved, m.post.Charset, m.post.Policy)
	diags = append(diags, d...)
	debug.Diagnostics = diags

	return true, out, debug
}
