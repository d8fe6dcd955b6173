// =============================================================================
// repl.go - Interactive Session
// =============================================================================
//
// The REPL lets a human talk GTP to an engine: either the bundled engine,
// run in-process, or an external engine started with --attach. Lines are
// expanded from shorthand (translate.go) and responses are printed exactly
// as they travel on the wire, followed by the empty line ending them.
//
// Lines starting with a dot are session commands handled here (.help,
// .quit) and never reach the engine.
//
// =============================================================================

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/elinorbgr/gtp-go/gtpprotocol"
)

// backend runs one GTP command line and returns the response.
type backend interface {
	Send(line string) (gtpprotocol.Response, error)
}

// localBackend runs commands in-process through a Handler.
type localBackend struct {
	handler *gtpprotocol.Handler
}

var errNoCommand = errors.New("no command in line")

func (b localBackend) Send(line string) (gtpprotocol.Response, error) {
	resp, ok, err := b.handler.HandleInput(line)
	if err != nil {
		return gtpprotocol.Response{}, err
	}
	if !ok {
		return gtpprotocol.Response{}, errNoCommand
	}
	return resp, nil
}

// lineReader is the part of LineEditor the session needs.
type lineReader interface {
	GetLine(prompt string) (string, error)
}

// session is one interactive run.
type session struct {
	editor  lineReader
	out     io.Writer
	backend backend
	prompt  string
}

// runREPL reads and runs lines until the engine answers quit, the user
// leaves, or the engine fails. Leaving with .quit or end of input sends
// quit to the engine first.
func runREPL(s *session) error {
	for {
		line, err := s.editor.GetLine(s.prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return s.quit()
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			leave, err := s.dotCommand(line)
			if err != nil {
				return err
			}
			if leave {
				return s.quit()
			}
			continue
		}

		gtpLine := translateToGTP(line)
		if _, ok := gtpprotocol.ParseCommand(gtpLine); !ok {
			continue
		}
		resp, err := s.backend.Send(gtpLine)
		if err != nil {
			return err
		}
		s.printResponse(resp)
		if resp.Quit {
			return nil
		}
	}
}

// dotCommand runs a session command and reports whether the session
// should end.
func (s *session) dotCommand(line string) (bool, error) {
	name, topic, _ := strings.Cut(line, " ")
	switch strings.ToLower(name) {
	case ".quit", ".exit":
		return true, nil
	case ".help":
		commands, err := s.listCommands()
		if err != nil {
			return false, err
		}
		printHelp(s.out, strings.TrimSpace(topic), commands)
	default:
		fmt.Fprintf(s.out, "Unknown command '%s'. Type .help for available commands.\n", name)
	}
	return false, nil
}

func (s *session) listCommands() ([]string, error) {
	resp, err := s.backend.Send(gtpprotocol.CmdListCommands)
	if err != nil {
		return nil, err
	}
	return resp.Lines(), nil
}

func (s *session) quit() error {
	resp, err := s.backend.Send(gtpprotocol.CmdQuit)
	if err != nil {
		return err
	}
	s.printResponse(resp)
	return nil
}

func (s *session) printResponse(resp gtpprotocol.Response) {
	fmt.Fprint(s.out, resp.Format()+gtpprotocol.ResponseTerminator)
}
