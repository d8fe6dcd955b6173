// Package gtpprotocol connects a Go-playing engine to a controller
// speaking the Go Text Protocol, version 2.
//
// The engine author implements the Engine interface and any subset of the
// optional interfaces (Undoer, FinalScorer, BoardShower, ...). The Handler
// finds out once, at construction, which optional commands really work,
// advertises exactly those through list_commands and known_command, and
// then parses, validates, dispatches and formats every command line.
//
// # Protocol Overview
//
// GTP is line oriented and strictly request/response:
//
//	Command:   [id] command_name [arguments]\n
//	Success:   =[id] text\n\n
//	Failure:   ?[id] message\n\n
//
// Everything after # on a line is a comment. Control characters are
// ignored, runs of spaces and tabs count as one space, and empty lines are
// skipped.
//
// # Basic Usage
//
// Embed UnimplementedEngine and override the optional operations the
// engine supports:
//
//	type MyBot struct {
//	    gtpprotocol.UnimplementedEngine
//	    // game state
//	}
//
//	func (b *MyBot) Name() string    { return "MyBot" }
//	func (b *MyBot) Version() string { return "0.1" }
//	// ClearBoard, Komi, BoardSize, Play, GenMove ...
//
//	func (b *MyBot) Undo() error { ... } // undo is now advertised
//
// Then serve stdin and stdout:
//
//	h := gtpprotocol.NewHandler(&MyBot{})
//	if err := gtpprotocol.Serve(os.Stdin, os.Stdout, h); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Engine operations report failures with the sentinel errors of this
// package (ErrInvalidMove, ErrCannotUndo, ...), possibly wrapped. Each
// operation lists the errors it may return. Returning anything else is a
// contract violation: Handle returns a *ContractError instead of a
// response and Serve stops. The adapter cannot answer for an engine in an
// unknown state.
//
// # Controller Side
//
// Client drives an engine over its stdin and stdout pipes:
//
//	client := gtpprotocol.NewClient(engineStdout, engineStdin)
//	resp, err := client.Send(gtpprotocol.NewGenMoveCommand(gtpprotocol.Black))
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. GTP is synchronous:
// one command is fully processed before the next one is read.
package gtpprotocol
