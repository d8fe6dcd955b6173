// =============================================================================
// main_test.go - Tests for the gtpbot Entry Point (main.go)
// =============================================================================
//
// Argument parsing, banner text, exit codes, and the default serve path.
// The serve path is exercised the way a controller uses gtpbot: stdin and
// stdout are replaced by pipes, which also makes gtpbot skip the
// interactive session.
//
// =============================================================================

package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/elinorbgr/gtp-go/gtpprotocol"
	"github.com/rs/zerolog"
)

// =============================================================================
// Version and Banner Tests
// =============================================================================

func TestFullTitle(t *testing.T) {
	got := fullTitle()
	expected := "gtpbot v0.1.0 (GTP 2)"
	if got != expected {
		t.Errorf("fullTitle() = %q, want %q", got, expected)
	}
}

func TestWelcomeBanner(t *testing.T) {
	banner := welcomeBanner("GNU Go", "3.8")

	checks := []struct {
		name     string
		contains string
	}{
		{"app name", appName},
		{"version", version},
		{"copyright", copyright},
		{"engine", "Engine: GNU Go 3.8"},
		{"help hint", ".help"},
		{"quit hint", ".quit"},
	}

	for _, tc := range checks {
		t.Run(tc.name, func(t *testing.T) {
			if !strings.Contains(banner, tc.contains) {
				t.Errorf("welcomeBanner() missing %q:\n%s", tc.contains, banner)
			}
		})
	}
	if !strings.HasSuffix(banner, "\n") {
		t.Error("welcomeBanner() should end with a newline")
	}
}

func TestVersionFormat(t *testing.T) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		t.Errorf("version %q is not in MAJOR.MINOR.PATCH format", version)
	}
}

// =============================================================================
// Argument Parsing Tests
// =============================================================================

func TestParseArgumentsDefaults(t *testing.T) {
	args, err := parseArguments(nil)
	if err != nil {
		t.Fatalf("parseArguments: %v", err)
	}
	if args != (arguments{}) {
		t.Errorf("defaults = %+v, want zero value", args)
	}
}

func TestParseArguments(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		expected arguments
	}{
		{"plain", []string{"--plain"}, arguments{plain: true}},
		{"config", []string{"--config", "/etc/gtpbot.toml"}, arguments{configPath: "/etc/gtpbot.toml"}},
		{"attach", []string{"--attach", "gnugo --mode gtp"}, arguments{attach: "gnugo --mode gtp"}},
		{"help long", []string{"--help"}, arguments{showHelp: true}},
		{"help short", []string{"-h"}, arguments{showHelp: true}},
		{"version long", []string{"--version"}, arguments{showVersion: true}},
		{"version short", []string{"-v"}, arguments{showVersion: true}},
		{
			"combined",
			[]string{"--plain", "--config", "a.toml", "--attach", "engine"},
			arguments{plain: true, configPath: "a.toml", attach: "engine"},
		},
		{"last config wins", []string{"--config", "a.toml", "--config", "b.toml"}, arguments{configPath: "b.toml"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args, err := parseArguments(tc.argv)
			if err != nil {
				t.Fatalf("parseArguments(%v): %v", tc.argv, err)
			}
			if args != tc.expected {
				t.Errorf("got %+v, want %+v", args, tc.expected)
			}
		})
	}
}

func TestParseArgumentsErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		msg  string
	}{
		{"unknown", []string{"--socket"}, "unknown argument: --socket"},
		{"config without path", []string{"--config"}, "--config requires"},
		{"attach without command", []string{"--plain", "--attach"}, "--attach requires"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseArguments(tc.argv)
			if err == nil || !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("error = %v, want %q", err, tc.msg)
			}
		})
	}
}

// =============================================================================
// Exit Code Tests
// =============================================================================

func TestRunExitCodes(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")

	tests := []struct {
		name     string
		argv     []string
		expected int
	}{
		{"help", []string{"--help"}, exitOK},
		{"version", []string{"-v"}, exitOK},
		{"bad flag", []string{"--nope"}, exitFailure},
		{"missing config", []string{"--config", missing}, exitFailure},
		{"missing engine", []string{"--attach", "/nonexistent/engine"}, exitFailure},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var code int
			captureStdout(t, func() {
				withStderr(t, func() {
					code = run(tc.argv)
				})
			})
			if code != tc.expected {
				t.Errorf("run(%v) = %d, want %d", tc.argv, code, tc.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	log := zerolog.Nop()
	contract := &gtpprotocol.ContractError{Command: "play", Err: errors.New("boom")}

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, exitOK},
		{"contract", contract, exitContract},
		{"wrapped contract", errors.Join(errors.New("serve"), contract), exitContract},
		{"io", io.ErrUnexpectedEOF, exitFailure},
	}
	for _, tc := range tests {
		if got := exitCode(tc.err, log); got != tc.expected {
			t.Errorf("%s: exitCode = %d, want %d", tc.name, got, tc.expected)
		}
	}
}

// otherSignal is an os.Signal that is not a syscall.Signal.
type otherSignal struct{}

func (otherSignal) String() string { return "other" }
func (otherSignal) Signal()        {}

func TestSignalExitCode(t *testing.T) {
	tests := []struct {
		name     string
		sig      os.Signal
		expected int
	}{
		{"interrupt", syscall.SIGINT, 130},
		{"os.Interrupt", os.Interrupt, 130},
		{"terminate", syscall.SIGTERM, 143},
		{"not a syscall signal", otherSignal{}, exitFailure},
	}
	for _, tc := range tests {
		if got := signalExitCode(tc.sig); got != tc.expected {
			t.Errorf("%s: signalExitCode = %d, want %d", tc.name, got, tc.expected)
		}
		if got := signalExitCode(tc.sig); got == exitOK {
			t.Errorf("%s: a signal must not end the process successfully", tc.name)
		}
	}
}

// =============================================================================
// Serve Path Tests
// =============================================================================

func TestRunBundledServesPipedStdin(t *testing.T) {
	cfg := defaultConfig()
	cfg.BoardSize = 9
	cfg.Komi = 6.5

	input := "1 name\n2 boardsize 9\n3 play b E5\n4 gtpbot-stones\n5 final_score\n6 quit\n"
	var code int
	out := withStdin(t, input, func() {
		code = runBundled(false, cfg, zerolog.Nop())
	})

	if code != exitOK {
		t.Errorf("exit code = %d", code)
	}
	want := "=1 gtpbot\n\n=2 \n\n=3 \n\n=4 black 1 white 0\n\n=5 B+74.5\n\n=6 bye\n\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunBundledEndOfInput(t *testing.T) {
	var code int
	out := withStdin(t, "protocol_version\n", func() {
		code = runBundled(true, defaultConfig(), zerolog.Nop())
	})
	if code != exitOK || out != "= 2\n\n" {
		t.Errorf("code %d output %q", code, out)
	}
}

// =============================================================================
// Helpers
// =============================================================================

// captureStdout runs fn with os.Stdout redirected and returns what it
// printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stdout pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	defer func() {
		os.Stdout = oldStdout
	}()
	fn()
	w.Close()
	out := <-done
	r.Close()
	return out
}

// withStderr silences os.Stderr while fn runs.
func withStderr(t *testing.T, fn func()) {
	t.Helper()
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open %s: %v", os.DevNull, err)
	}
	oldStderr := os.Stderr
	os.Stderr = devNull
	defer func() {
		os.Stderr = oldStderr
		devNull.Close()
	}()
	fn()
}

// withStdin runs fn with os.Stdin reading input from a pipe and returns
// what fn printed on stdout.
func withStdin(t *testing.T, input string, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stdin pipe: %v", err)
	}
	if _, err := io.WriteString(w, input); err != nil {
		t.Fatalf("write stdin: %v", err)
	}
	w.Close()

	oldStdin := os.Stdin
	os.Stdin = r
	defer func() {
		os.Stdin = oldStdin
		r.Close()
	}()
	return captureStdout(t, fn)
}
