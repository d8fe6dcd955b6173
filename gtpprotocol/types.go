package gtpprotocol

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Colour is a player, Black or White.
type Colour int

const (
	// Black plays first.
	Black Colour = iota
	// White plays second.
	White
)

// ParseColour parses b, black, w or white, ignoring case.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(s) {
	case "b", "black":
		return Black, true
	case "w", "white":
		return White, true
	default:
		return Black, false
	}
}

// Opponent returns the other colour.
func (c Colour) Opponent() Colour {
	if c == Black {
		return White
	}
	return Black
}

// String returns "black" or "white".
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Vertex is a point of the board. Columns and rows both run from 1 to
// MaxBoardSize. The zero Vertex is not a valid point.
type Vertex struct {
	x, y uint8
}

// NewVertex returns the vertex at column x and row y.
func NewVertex(x, y int) (Vertex, bool) {
	if x < 1 || x > MaxBoardSize || y < 1 || y > MaxBoardSize {
		return Vertex{}, false
	}
	return Vertex{x: uint8(x), y: uint8(y)}, true
}

// MustVertex is like NewVertex but panics on out-of-range coordinates.
// It is meant for tables and tests.
func MustVertex(x, y int) Vertex {
	v, ok := NewVertex(x, y)
	if !ok {
		panic(fmt.Sprintf("gtpprotocol: vertex (%d,%d) out of range", x, y))
	}
	return v
}

// ParseVertex parses board coordinates such as D4 or t19. The letter I is
// never used, so J is the ninth column.
func ParseVertex(s string) (Vertex, bool) {
	if len(s) < 2 || len(s) > 3 {
		return Vertex{}, false
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' || letter == 'I' {
		return Vertex{}, false
	}
	x := int(letter-'A') + 1
	if letter > 'I' {
		x--
	}
	y, err := strconv.ParseUint(s[1:], 10, 8)
	if err != nil {
		return Vertex{}, false
	}
	return NewVertex(x, int(y))
}

// Coords returns the column and row of the vertex.
func (v Vertex) Coords() (x, y int) {
	return int(v.x), int(v.y)
}

// IsValid reports whether v names a board point.
func (v Vertex) IsValid() bool {
	return v.x >= 1 && v.x <= MaxBoardSize && v.y >= 1 && v.y <= MaxBoardSize
}

// String returns the GTP representation, e.g. "J13".
func (v Vertex) String() string {
	return columnLetter(int(v.x)) + strconv.Itoa(int(v.y))
}

// columnLetter maps a 1-based column to its letter, skipping I.
func columnLetter(x int) string {
	letter := byte('A' + x - 1)
	if x >= 9 {
		letter++
	}
	return string(letter)
}

// MoveKind tells the variants of Move apart.
type MoveKind int

const (
	// MoveStone places a stone on Move.Vertex.
	MoveStone MoveKind = iota
	// MovePass passes.
	MovePass
	// MoveResign resigns the game.
	MoveResign
)

// Move is a stone placement, a pass or a resignation.
type Move struct {
	Kind   MoveKind
	Vertex Vertex // only meaningful for MoveStone
}

// Pass and Resign are the two moves that carry no vertex.
var (
	Pass   = Move{Kind: MovePass}
	Resign = Move{Kind: MoveResign}
)

// StoneMove returns the move placing a stone on v.
func StoneMove(v Vertex) Move {
	return Move{Kind: MoveStone, Vertex: v}
}

// ParseMove parses pass, resign or a vertex, ignoring case.
func ParseMove(s string) (Move, bool) {
	switch strings.ToLower(s) {
	case "pass":
		return Pass, true
	case "resign":
		return Resign, true
	}
	v, ok := ParseVertex(s)
	if !ok {
		return Move{}, false
	}
	return StoneMove(v), true
}

// valid reports whether m is a pass, a resignation or a stone on a board
// point. The zero Move is not valid.
func (m Move) valid() bool {
	switch m.Kind {
	case MovePass, MoveResign:
		return true
	case MoveStone:
		return m.Vertex.IsValid()
	default:
		return false
	}
}

// String returns the GTP representation of the move.
func (m Move) String() string {
	switch m.Kind {
	case MovePass:
		return "pass"
	case MoveResign:
		return "resign"
	default:
		return m.Vertex.String()
	}
}

// ColouredMove is a move together with the player making it.
type ColouredMove struct {
	Player Colour
	Move   Move
}

// String returns the move as play arguments, e.g. "black D4".
func (cm ColouredMove) String() string {
	return cm.Player.String() + " " + cm.Move.String()
}

// StoneStatus is the fate of a stone at the end of the game.
type StoneStatus int

const (
	Alive StoneStatus = iota
	Dead
	Seki
)

// ParseStoneStatus parses alive, dead or seki, ignoring case.
func ParseStoneStatus(s string) (StoneStatus, bool) {
	switch strings.ToLower(s) {
	case "alive":
		return Alive, true
	case "dead":
		return Dead, true
	case "seki":
		return Seki, true
	default:
		return Alive, false
	}
}

func (s StoneStatus) String() string {
	switch s {
	case Dead:
		return "dead"
	case Seki:
		return "seki"
	default:
		return "alive"
	}
}

// Score is an engine's estimate of the game result. A zero Margin is a
// draw and Winner is then ignored.
type Score struct {
	Winner Colour
	Margin float64
}

func (s Score) valid() bool {
	if math.IsNaN(s.Margin) || math.IsInf(s.Margin, 0) || s.Margin < 0 {
		return false
	}
	return s.Margin == 0 || s.Winner == Black || s.Winner == White
}

// String formats the score as final_score expects: B+3.5, W+0.5 or 0.
func (s Score) String() string {
	if s.Margin == 0 {
		return "0"
	}
	prefix := "B+"
	if s.Winner == White {
		prefix = "W+"
	}
	return prefix + strconv.FormatFloat(s.Margin, 'f', -1, 64)
}

// BoardState is the engine's view of the board, consumed by DrawBoard.
type BoardState struct {
	Size          int
	Black         []Vertex
	White         []Vertex
	BlackCaptures int // stones of black captured by white
	WhiteCaptures int // stones of white captured by black
}

// formatVertices joins vertices with single spaces.
func formatVertices(vs []Vertex) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}
