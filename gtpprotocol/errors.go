package gtpprotocol

import (
	"errors"
	"fmt"
)

// Errors an engine may return. Each operation documents which of them it
// is allowed to produce; anything else is a contract violation.
var (
	// ErrNotImplemented marks an optional operation the engine does not support.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidBoardSize rejects a board size the engine cannot play on.
	ErrInvalidBoardSize = errors.New("invalid board size")

	// ErrInvalidMove rejects an illegal move.
	ErrInvalidMove = errors.New("invalid move")

	// ErrBadVertexList rejects unusable handicap stones.
	ErrBadVertexList = errors.New("bad vertex list")

	// ErrBoardNotEmpty rejects handicap placement on a board with stones.
	ErrBoardNotEmpty = errors.New("board not empty")

	// ErrInvalidStoneCount rejects a handicap the board cannot hold.
	ErrInvalidStoneCount = errors.New("invalid number of stones")

	// ErrCannotUndo means there is no move left to take back.
	ErrCannotUndo = errors.New("cannot undo")

	// ErrCannotScore means the engine cannot evaluate the position.
	ErrCannotScore = errors.New("cannot score")

	// ErrCannotLoadFile means an SGF file could not be read or replayed.
	ErrCannotLoadFile = errors.New("cannot load file")
)

// failureText maps a documented engine error to its response text.
func failureText(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrInvalidMove):
		return textInvalidMove, true
	case errors.Is(err, ErrInvalidBoardSize):
		return textUnacceptableSize, true
	case errors.Is(err, ErrBadVertexList):
		return textBadVertexList, true
	case errors.Is(err, ErrBoardNotEmpty):
		return textBoardNotEmpty, true
	case errors.Is(err, ErrInvalidStoneCount):
		return textInvalidStones, true
	case errors.Is(err, ErrCannotUndo):
		return textCannotUndo, true
	case errors.Is(err, ErrCannotScore):
		return textCannotScore, true
	case errors.Is(err, ErrCannotLoadFile):
		return textCannotLoadFile, true
	default:
		return "", false
	}
}

// ContractError reports an engine returning an error its operation is not
// allowed to return. It is not recoverable: the adapter cannot know what
// state the engine is in.
type ContractError struct {
	Command string
	Err     error
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("engine contract violation in %s: unexpected error: %v", e.Command, e.Err)
}

// Unwrap returns the engine error for errors.Is/As support.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// ParseError represents a malformed response read by a Client.
type ParseError struct {
	Kind  ParseErrorKind
	Value string // The offending text
}

// ParseErrorKind categorizes parsing errors.
type ParseErrorKind int

const (
	// ErrKindUnexpectedResponse indicates a line that is not a GTP response.
	ErrKindUnexpectedResponse ParseErrorKind = iota
	// ErrKindIDMismatch indicates a response for another command id.
	ErrKindIDMismatch
	// ErrKindInvalidID indicates a response id that is not a number.
	ErrKindInvalidID
	// ErrKindMissingID indicates a response without the id its command carried.
	ErrKindMissingID
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrKindUnexpectedResponse:
		return fmt.Sprintf("unexpected response: %s", e.Value)
	case ErrKindIDMismatch:
		return fmt.Sprintf("response id mismatch: %s", e.Value)
	case ErrKindInvalidID:
		return fmt.Sprintf("invalid response id '%s'", e.Value)
	case ErrKindMissingID:
		return fmt.Sprintf("response without id: %s", e.Value)
	default:
		return fmt.Sprintf("parse error: %s", e.Value)
	}
}

func newUnexpectedResponseError(resp string) error {
	return &ParseError{Kind: ErrKindUnexpectedResponse, Value: resp}
}

func newIDMismatchError(want, got uint32) error {
	return &ParseError{Kind: ErrKindIDMismatch, Value: fmt.Sprintf("sent %d, got %d", want, got)}
}

func newMissingIDError(want uint32) error {
	return &ParseError{Kind: ErrKindMissingID, Value: fmt.Sprintf("sent %d", want)}
}

func newInvalidIDError(id string) error {
	return &ParseError{Kind: ErrKindInvalidID, Value: id}
}
