// =============================================================================
// attach.go - External Engine Launch
// =============================================================================
//
// With --attach "<command line>" gtpbot starts another GTP engine as a
// subprocess and drives it through its stdin and stdout pipes, so the
// interactive session works with any engine (GNU Go, KataGo in GTP mode,
// another gtpbot, ...). The engine's stderr is passed through.
//
// The executable search order for a bare program name:
//   1. Same directory as the gtpbot binary
//   2. PATH environment variable
//   3. Common locations: /usr/local/bin, /opt/homebrew/bin, ~/.local/bin
//
// A name containing a path separator is used as given.
//
// =============================================================================

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/elinorbgr/gtp-go/gtpprotocol"
	"github.com/rs/zerolog"
)

// attachedEngine is a running engine subprocess. It implements backend.
type attachedEngine struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	client *gtpprotocol.Client
	log    zerolog.Logger

	name    string
	version string
	quit    bool

	// Close and terminate may race when a signal arrives; the process is
	// waited for once.
	waitOnce sync.Once
	waitErr  error
}

// attachEngine starts the engine described by commandLine and checks
// that it speaks GTP version 2.
func attachEngine(commandLine string, log zerolog.Logger) (*attachedEngine, error) {
	argv := strings.Fields(commandLine)
	if len(argv) == 0 {
		return nil, errors.New("empty engine command line")
	}

	exePath, err := findEngineExecutable(argv[0])
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(exePath, argv[1:]...)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to launch %s: %w", argv[0], err)
	}

	a := &attachedEngine{
		cmd:    cmd,
		stdin:  stdin,
		client: gtpprotocol.NewClient(stdout, stdin),
		log:    log.With().Str("engine", argv[0]).Int("pid", cmd.Process.Pid).Logger(),
	}
	a.log.Info().Str("path", exePath).Msg("engine started")

	if err := a.handshake(); err != nil {
		a.terminate()
		return nil, err
	}
	return a, nil
}

func (a *attachedEngine) handshake() error {
	resp, err := a.client.Send(gtpprotocol.NewCommand(gtpprotocol.CmdProtocolVersion))
	if err != nil {
		return fmt.Errorf("protocol_version: %w", err)
	}
	if !resp.Success || resp.Text != gtpprotocol.ProtocolVersion {
		return fmt.Errorf("engine speaks GTP version %q, want %s", resp.Text, gtpprotocol.ProtocolVersion)
	}

	if resp, err := a.client.Send(gtpprotocol.NewCommand(gtpprotocol.CmdName)); err == nil && resp.Success {
		a.name = resp.Text
	}
	if resp, err := a.client.Send(gtpprotocol.NewCommand(gtpprotocol.CmdVersion)); err == nil && resp.Success {
		a.version = resp.Text
	}
	a.log.Info().Str("name", a.name).Str("version", a.version).Msg("engine ready")
	return nil
}

// Send passes one command line to the engine.
func (a *attachedEngine) Send(line string) (gtpprotocol.Response, error) {
	resp, err := a.client.SendRaw(line)
	if err != nil {
		return gtpprotocol.Response{}, fmt.Errorf("engine %s: %w", a.name, err)
	}
	if cmd, ok := gtpprotocol.ParseCommand(line); ok && cmd.Name == gtpprotocol.CmdQuit && resp.Success {
		a.quit = true
	}
	return resp, nil
}

// Close closes the engine's stdin, which GTP engines treat as quit, and
// waits for the process to exit.
func (a *attachedEngine) Close() error {
	if err := a.stdin.Close(); err != nil {
		a.log.Debug().Err(err).Msg("close engine stdin")
	}
	if err := a.wait(); err != nil {
		return fmt.Errorf("engine exit: %w", err)
	}
	return nil
}

// terminate stops the engine without waiting for it to answer.
func (a *attachedEngine) terminate() {
	a.stdin.Close()
	if a.cmd.Process != nil {
		a.cmd.Process.Signal(syscall.SIGTERM)
	}
	a.wait()
}

func (a *attachedEngine) wait() error {
	a.waitOnce.Do(func() {
		a.waitErr = a.cmd.Wait()
		a.log.Info().Bool("quit", a.quit).Msg("engine exited")
	})
	return a.waitErr
}

// findEngineExecutable resolves the program name of an engine command line.
func findEngineExecutable(name string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) {
		if isExecutable(name) {
			return name, nil
		}
		return "", fmt.Errorf("%s is not an executable file", name)
	}

	if selfPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(selfPath), name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	commonPaths := []string{
		"/usr/local/bin",
		"/opt/homebrew/bin",
		filepath.Join(homeDir(), ".local", "bin"),
	}
	for _, dir := range commonPaths {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%s not found in PATH or common locations", name)
}

// isExecutable checks if a file exists and is executable.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode().Perm()&0111 != 0
}

// homeDir returns the current user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
