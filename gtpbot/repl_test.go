// =============================================================================
// repl_test.go - Tests for the Interactive Session (repl.go)
// =============================================================================
//
// The session reads lines through the lineReader interface, so the tests
// feed it a scripted list of lines instead of a terminal. Most tests run
// against the bundled engine through localBackend; a recording backend
// checks exactly what is sent.
//
// =============================================================================

package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/elinorbgr/gtp-go/gtpprotocol"
)

// =============================================================================
// Test Doubles
// =============================================================================

// scriptedInput returns its lines one by one, then err (io.EOF when nil).
type scriptedInput struct {
	lines   []string
	err     error
	prompts []string
}

func (s *scriptedInput) GetLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// recordingBackend records sent lines and answers every command with
// success, quit with bye. failOn makes one command fail with err.
type recordingBackend struct {
	sent   []string
	failOn string
	err    error
}

func (b *recordingBackend) Send(line string) (gtpprotocol.Response, error) {
	b.sent = append(b.sent, line)
	cmd, _ := gtpprotocol.ParseCommand(line)
	if cmd.Name == b.failOn {
		return gtpprotocol.Response{}, b.err
	}
	switch cmd.Name {
	case gtpprotocol.CmdQuit:
		return gtpprotocol.Response{Success: true, Text: "bye", Quit: true}, nil
	case gtpprotocol.CmdListCommands:
		return gtpprotocol.NewSuccessResponse("name\nplay\nquit"), nil
	}
	return gtpprotocol.NewSuccessResponse(""), nil
}

func bundledSession(lines ...string) (*session, *bytes.Buffer, *scriptedInput) {
	var out bytes.Buffer
	input := &scriptedInput{lines: lines}
	handler := gtpprotocol.NewHandler(newBoardEngine(appName, 9, 0))
	return &session{
		editor:  input,
		out:     &out,
		backend: localBackend{handler: handler},
		prompt:  defaultPrompt,
	}, &out, input
}

// =============================================================================
// Session Tests
// =============================================================================

func TestREPLBundledGame(t *testing.T) {
	s, out, input := bundledSession(
		"size 5",
		"b C3",
		"2 stones",
		"w",
		"",
		".quit",
	)

	if err := runREPL(s); err != nil {
		t.Fatalf("runREPL: %v", err)
	}

	expected := "= \n\n" + // boardsize 5
		"= \n\n" + // play b C3
		"=2 black 1 white 0\n\n" +
		"= A1\n\n" + // genmove w, first legal point
		"= bye\n\n"
	if out.String() != expected {
		t.Errorf("output = %q, want %q", out.String(), expected)
	}

	for _, p := range input.prompts {
		if p != defaultPrompt {
			t.Errorf("prompt = %q, want %q", p, defaultPrompt)
		}
	}
}

func TestREPLEngineQuitEndsSession(t *testing.T) {
	b := &recordingBackend{}
	input := &scriptedInput{lines: []string{"name", "q", "never read"}}
	s := &session{editor: input, out: io.Discard, backend: b}

	if err := runREPL(s); err != nil {
		t.Fatalf("runREPL: %v", err)
	}

	expected := []string{"name", "quit"}
	if strings.Join(b.sent, "|") != strings.Join(expected, "|") {
		t.Errorf("sent %q, want %q", b.sent, expected)
	}
	if len(input.lines) != 1 {
		t.Error("session kept reading after the engine said bye")
	}
}

// TestREPLEndOfInputSendsQuit verifies that Ctrl-D still lets the engine
// shut down cleanly.
func TestREPLEndOfInputSendsQuit(t *testing.T) {
	b := &recordingBackend{}
	var out bytes.Buffer
	s := &session{editor: &scriptedInput{lines: []string{"clear_board"}}, out: &out, backend: b}

	if err := runREPL(s); err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if last := b.sent[len(b.sent)-1]; last != gtpprotocol.CmdQuit {
		t.Errorf("last command sent = %q, want quit", last)
	}
	if !strings.HasSuffix(out.String(), "\n= bye\n\n") {
		t.Errorf("output = %q", out.String())
	}
}

// TestREPLSkipsLinesWithoutCommand verifies that comments and bare
// numbers never reach the engine.
func TestREPLSkipsLinesWithoutCommand(t *testing.T) {
	b := &recordingBackend{}
	input := &scriptedInput{lines: []string{"# just a comment", "   ", "42", "\x01\x02", "komi 7 # seven"}}
	s := &session{editor: input, out: io.Discard, backend: b}

	if err := runREPL(s); err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	expected := []string{"komi 7 # seven", "quit"}
	if strings.Join(b.sent, "|") != strings.Join(expected, "|") {
		t.Errorf("sent %q, want %q", b.sent, expected)
	}
}

// =============================================================================
// Dot-Command Tests
// =============================================================================

func TestREPLDotCommands(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		contains string
	}{
		{"help overview", ".help", "GTP Commands:"},
		{"help lists engine commands", ".help", "play a move"},
		{"help topic", ".help undo", "cannot undo"},
		{"upper case", ".HELP", "Session Commands:"},
		{"unknown", ".frobnicate", "Unknown command '.frobnicate'"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &recordingBackend{}
			var out bytes.Buffer
			s := &session{editor: &scriptedInput{lines: []string{tc.line}}, out: &out, backend: b}

			if err := runREPL(s); err != nil {
				t.Fatalf("runREPL: %v", err)
			}
			if !strings.Contains(out.String(), tc.contains) {
				t.Errorf("output missing %q:\n%s", tc.contains, out.String())
			}
			for _, sent := range b.sent {
				if strings.HasPrefix(sent, ".") {
					t.Errorf("dot-command %q reached the engine", sent)
				}
			}
		})
	}
}

func TestREPLExitAlias(t *testing.T) {
	for _, line := range []string{".quit", ".exit"} {
		b := &recordingBackend{}
		input := &scriptedInput{lines: []string{line, "name"}}
		s := &session{editor: input, out: io.Discard, backend: b}

		if err := runREPL(s); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
		if len(b.sent) != 1 || b.sent[0] != gtpprotocol.CmdQuit {
			t.Errorf("%s: sent %q, want only quit", line, b.sent)
		}
	}
}

// =============================================================================
// Error Tests
// =============================================================================

func TestREPLBackendErrorEndsSession(t *testing.T) {
	boom := errors.New("engine pipe closed")
	b := &recordingBackend{failOn: gtpprotocol.CmdGenMove, err: boom}
	s := &session{editor: &scriptedInput{lines: []string{"b", "name"}}, out: io.Discard, backend: b}

	if err := runREPL(s); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if len(b.sent) != 1 {
		t.Errorf("sent %q after the failure", b.sent)
	}
}

func TestREPLReadError(t *testing.T) {
	boom := errors.New("terminal gone")
	s := &session{editor: &scriptedInput{err: boom}, out: io.Discard, backend: &recordingBackend{}}

	err := runREPL(s)
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "read input") {
		t.Errorf("err = %v", err)
	}
}

func TestREPLHelpBackendError(t *testing.T) {
	boom := errors.New("engine gone")
	b := &recordingBackend{failOn: gtpprotocol.CmdListCommands, err: boom}
	s := &session{editor: &scriptedInput{lines: []string{".help"}}, out: io.Discard, backend: b}

	if err := runREPL(s); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

// TestLocalBackendContractError verifies that a broken engine surfaces as
// a ContractError instead of a response.
func TestLocalBackendContractError(t *testing.T) {
	handler := gtpprotocol.NewHandler(&brokenEngine{boardEngine: newBoardEngine(appName, 9, 0)})
	s := &session{
		editor:  &scriptedInput{lines: []string{"play b A1"}},
		out:     io.Discard,
		backend: localBackend{handler: handler},
	}

	var ce *gtpprotocol.ContractError
	if err := runREPL(s); !errors.As(err, &ce) || ce.Command != gtpprotocol.CmdPlay {
		t.Errorf("err = %v, want a ContractError for play", err)
	}
}

func TestLocalBackendNoCommand(t *testing.T) {
	b := localBackend{handler: gtpprotocol.NewHandler(newBoardEngine(appName, 9, 0))}
	if _, err := b.Send("# nothing"); !errors.Is(err, errNoCommand) {
		t.Errorf("err = %v, want errNoCommand", err)
	}
}

// brokenEngine answers play with an error outside the GTP contract.
type brokenEngine struct {
	*boardEngine
}

func (e *brokenEngine) Play(gtpprotocol.ColouredMove) error {
	return errors.New("out of memory")
}
