package gtpprotocol

import (
	"strconv"
	"strings"
)

// Command is one parsed command line. ID is nil when the controller did
// not number the command.
type Command struct {
	ID   *uint32
	Name string
	Args string
}

// NewCommand builds an unnumbered command. Arguments are joined with
// single spaces.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: strings.Join(args, " ")}
}

// WithID returns a copy of the command carrying the given id.
func (c Command) WithID(id uint32) Command {
	c.ID = &id
	return c
}

// Format returns the command line as sent on the wire, without the
// trailing newline.
func (c Command) Format() string {
	var b strings.Builder
	if c.ID != nil {
		b.WriteString(strconv.FormatUint(uint64(*c.ID), 10))
		b.WriteByte(' ')
	}
	b.WriteString(c.Name)
	if c.Args != "" {
		b.WriteByte(' ')
		b.WriteString(c.Args)
	}
	return b.String()
}

// NewPlayCommand builds "play <colour> <move>".
func NewPlayCommand(mv ColouredMove) Command {
	return NewCommand(CmdPlay, mv.Player.String(), mv.Move.String())
}

// NewGenMoveCommand builds "genmove <colour>".
func NewGenMoveCommand(player Colour) Command {
	return NewCommand(CmdGenMove, player.String())
}

// NewBoardSizeCommand builds "boardsize <size>".
func NewBoardSizeCommand(size int) Command {
	return NewCommand(CmdBoardSize, strconv.Itoa(size))
}

// NewKomiCommand builds "komi <value>".
func NewKomiCommand(komi float64) Command {
	return NewCommand(CmdKomi, strconv.FormatFloat(komi, 'f', -1, 64))
}
