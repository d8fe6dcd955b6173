// =============================================================================
// lineeditor.go - Line Editor with Dual-Mode Operation
// =============================================================================
//
// The interactive session reads its input through a LineEditor, which picks
// one of two input methods:
//
//   - Interactive mode: ergochat/readline, with Emacs keybindings, history
//     search (Ctrl-R) and a persistent history file.
//   - Non-interactive mode: a bufio.Scanner, printing the prompt by hand.
//     Used for piped input and inside Emacs, which edits lines itself.
//
// =============================================================================

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ergochat/readline"
	"golang.org/x/term"
)

const (
	// historyFileName is the default history file in the home directory.
	historyFileName = ".gtpbot_history"

	// historySize is the default number of history entries kept.
	historySize = 500

	defaultPrompt = "gtp> "
)

// LineEditor reads REPL lines from a terminal or from a plain stream.
type LineEditor struct {
	// interactive is true when input is a terminal outside of Emacs.
	interactive bool

	// rl is only set in interactive mode.
	rl *readline.Instance

	// scanner and out are only set in non-interactive mode.
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLineEditor creates a LineEditor reading from in. Readline is used
// when in is a terminal; the history file and limit come from cfg.
func NewLineEditor(in io.Reader, out io.Writer, cfg replConfig) *LineEditor {
	if !isTerminal(in) {
		return newPlainEditor(in, out)
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:  cfg.HistoryFile,
		HistoryLimit: cfg.HistoryLimit,

		// Lines are added by hand so empty ones stay out of the history.
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: readline init failed (%v), using basic input\n", err)
		return newPlainEditor(in, out)
	}

	return &LineEditor{
		interactive: true,
		rl:          rl,
	}
}

func newPlainEditor(in io.Reader, out io.Writer) *LineEditor {
	return &LineEditor{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// isTerminal reports whether in is a terminal the user types into
// directly. Inside Emacs the terminal is never used for editing.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) && os.Getenv("INSIDE_EMACS") == ""
}

// GetLine reads one line after showing prompt. It returns io.EOF at the
// end of input, on Ctrl-D, and on Ctrl-C.
func (le *LineEditor) GetLine(prompt string) (string, error) {
	if le.interactive {
		return le.getInteractiveLine(prompt)
	}
	return le.getNonInteractiveLine(prompt)
}

func (le *LineEditor) getInteractiveLine(prompt string) (string, error) {
	le.rl.SetPrompt(prompt)

	line, err := le.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		return "", err
	}

	if trimmed := strings.TrimSpace(line); trimmed != "" {
		le.rl.SaveToHistory(trimmed)
	}
	return line, nil
}

func (le *LineEditor) getNonInteractiveLine(prompt string) (string, error) {
	fmt.Fprint(le.out, prompt)

	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return le.scanner.Text(), nil
}

// Close saves the history and releases the terminal. It is safe to call
// more than once.
func (le *LineEditor) Close() {
	if le.rl != nil {
		le.rl.Close()
		le.rl = nil
	}
}

// IsInteractive reports whether readline is in use.
func (le *LineEditor) IsInteractive() bool {
	return le.interactive
}
