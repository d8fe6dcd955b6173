package gtpprotocol

import (
	"math"
	"strconv"
	"strings"
)

// ArgumentType names the kind of value a command expects at one position.
type ArgumentType int

const (
	ArgColour ArgumentType = iota
	ArgVertex
	ArgMove
	ArgColouredMove // consumes two tokens: colour then move
	ArgStoneStatus
)

func (t ArgumentType) String() string {
	switch t {
	case ArgColour:
		return "colour"
	case ArgVertex:
		return "vertex"
	case ArgMove:
		return "move"
	case ArgColouredMove:
		return "coloured move"
	case ArgStoneStatus:
		return "stone status"
	default:
		return "unknown"
	}
}

// Argument is one decoded value. Only the field matching Type is set.
type Argument struct {
	Type         ArgumentType
	Colour       Colour
	Vertex       Vertex
	Move         Move
	ColouredMove ColouredMove
	Status       StoneStatus
}

// DecodeArguments decodes the space-separated tokens of args against the
// expected types, left to right. It fails as a whole if any token is
// missing or malformed. Tokens beyond the expected ones are ignored.
func DecodeArguments(args string, expected ...ArgumentType) ([]Argument, bool) {
	tokens := strings.Split(args, " ")
	out := make([]Argument, 0, len(expected))

	pos := 0
	next := func() (string, bool) {
		if pos >= len(tokens) {
			return "", false
		}
		tok := tokens[pos]
		pos++
		return tok, true
	}

	for _, typ := range expected {
		tok, ok := next()
		if !ok {
			return nil, false
		}
		arg := Argument{Type: typ}
		switch typ {
		case ArgColour:
			arg.Colour, ok = ParseColour(tok)
		case ArgVertex:
			arg.Vertex, ok = ParseVertex(tok)
		case ArgMove:
			arg.Move, ok = ParseMove(tok)
		case ArgStoneStatus:
			arg.Status, ok = ParseStoneStatus(tok)
		case ArgColouredMove:
			arg.ColouredMove.Player, ok = ParseColour(tok)
			if !ok {
				return nil, false
			}
			tok, ok = next()
			if !ok {
				return nil, false
			}
			arg.ColouredMove.Move, ok = ParseMove(tok)
		default:
			ok = false
		}
		if !ok {
			return nil, false
		}
		out = append(out, arg)
	}
	return out, true
}

// DecodeVertexList decodes a non-empty space-separated list of vertices.
func DecodeVertexList(args string) ([]Vertex, bool) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return nil, false
	}
	out := make([]Vertex, 0, len(fields))
	for _, f := range fields {
		v, ok := ParseVertex(f)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// decodeInts parses exactly n non-negative decimal integers.
func decodeInts(args string, n int) ([]int, bool) {
	fields := strings.Fields(args)
	if len(fields) < n {
		return nil, false
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseUint(fields[i], 10, 31)
		if err != nil {
			return nil, false
		}
		out[i] = int(v)
	}
	return out, true
}

// decodeFloat parses the first token of args as a decimal float literal.
// inf, nan and hex floats are rejected.
func decodeFloat(args string) (float64, bool) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, false
	}
	if strings.Trim(fields[0], "0123456789+-.eE") != "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
