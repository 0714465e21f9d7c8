package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glaemscribe/glaemscribe-go/engine/mode"
	"github.com/glaemscribe/glaemscribe-go/internal/glaeml"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("glaemscribe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	modesDir := fs.String("modes-dir", "testdata/modes", "directory of .glaem mode files")
	charsetsDir := fs.String("charsets-dir", "testdata/charsets", "directory of .cst charset files")
	modeName := fs.String("mode", "", "name of the mode to transcribe with")
	text := fs.String("text", "", "text to transcribe (reads stdin if omitted)")
	list := fs.Bool("list", false, "list every mode found in -modes-dir and exit")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s -mode <name> [-text <text>]\n\n", os.Args[0]),
			writeln(stderr, "Transliterates text into Tengwar through a named mode."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	registry := mode.NewRegistry()
	if err := loadModes(registry, *modesDir, *charsetsDir); err != nil {
		if writeErr := writef(stderr, "error loading modes: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}

	if *list {
		names := registry.ListModes()
		sort.Strings(names)
		for _, n := range names {
			if err := writeln(stdout, n); err != nil {
				return 1
			}
		}
		return 0
	}

	if *modeName == "" {
		if err := writeln(stderr, "error: -mode is required (or pass -list)"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	m, ok := registry.Get(*modeName)
	if !ok {
		if err := writef(stderr, "error: unknown mode %q (use -list)\n", *modeName); err != nil {
			return 1
		}
		return 1
	}

	input := *text
	if input == "" {
		raw, err := io.ReadAll(bufio.NewReader(stdin))
		if err != nil {
			if writeErr := writef(stderr, "error reading stdin: %v\n", err); writeErr != nil {
				return 1
			}
			return 1
		}
		input = strings.TrimRight(string(raw), "\n")
	}

	okOut, out, debug := m.Transcribe(input)
	if !okOut {
		if err := writeln(stderr, "error: mode is not finalized"); err != nil {
			return 1
		}
		return 1
	}
	for _, d := range debug.Diagnostics {
		if writeErr := writef(stderr, "warning: %s\n", d.Message); writeErr != nil {
			return 1
		}
	}
	if err := writeln(stdout, out); err != nil {
		return 1
	}
	return 0
}

// loadModes reads every "*.glaem" file in modesDir, resolving each
// mode's declared charset from charsetsDir and finalizing it with no
// option overrides, and storing each finalized mode into reg. The first
// mode or charset that fails to read, parse or finalize stops the load,
// and its error is returned; modes stored before it stay in reg.
func loadModes(reg *mode.Registry, modesDir, charsetsDir string) error {
	entries, err := os.ReadDir(modesDir)
	if err != nil {
		return fmt.Errorf("read %s: %w", modesDir, err)
	}

	charsets := make(map[string][]byte)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".glaem") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".glaem")
		content, err := os.ReadFile(filepath.Join(modesDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		m, errs := glaeml.ParseMode(name, string(content))
		if len(errs) > 0 {
			return fmt.Errorf("parse mode %s: %w", name, errs[0])
		}

		if m.CharsetName == "" {
			return fmt.Errorf("mode %s declares no \\charset", name)
		}
		csContent, ok := charsets[m.CharsetName]
		if !ok {
			csContent, err = os.ReadFile(filepath.Join(charsetsDir, m.CharsetName+".cst"))
			if err != nil {
				return fmt.Errorf("read charset %s: %w", m.CharsetName, err)
			}
			charsets[m.CharsetName] = csContent
		}
		cs, csErrs := glaeml.ParseCharset(m.CharsetName, string(csContent))
		if len(csErrs) > 0 {
			return fmt.Errorf("parse charset %s: %w", m.CharsetName, csErrs[0])
		}
		m.Charset = cs

		if err := m.Finalize(nil); err != nil {
			return fmt.Errorf("finalize mode %s: %w", name, err)
		}
		reg.Store(m)
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
