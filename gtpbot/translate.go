// =============================================================================
// translate.go - REPL Shorthand (User Input → GTP Command Line)
// =============================================================================
//
// In the interactive session the user may type short forms that are
// expanded into full GTP command lines before they are sent:
//
//	"q"          → "quit"
//	"sb"         → "showboard"
//	"size 9"     → "boardsize 9"
//	"b d4"       → "play b d4"
//	"w"          → "genmove w"
//	"7 g black"  → "7 genmove black"
//
// Anything that is not a shorthand is passed through unchanged, so plain
// GTP always works.
//
// =============================================================================

package main

import (
	"strconv"
	"strings"

	"github.com/elinorbgr/gtp-go/gtpprotocol"
)

// aliases maps a shorthand command word to its GTP expansion. An expansion
// may carry fixed arguments.
var aliases = map[string]string{
	"q":        gtpprotocol.CmdQuit,
	"exit":     gtpprotocol.CmdQuit,
	"sb":       gtpprotocol.CmdShowBoard,
	"show":     gtpprotocol.CmdShowBoard,
	"board":    gtpprotocol.CmdShowBoard,
	"ls":       gtpprotocol.CmdListCommands,
	"commands": gtpprotocol.CmdListCommands,
	"new":      gtpprotocol.CmdClearBoard,
	"clear":    gtpprotocol.CmdClearBoard,
	"size":     gtpprotocol.CmdBoardSize,
	"p":        gtpprotocol.CmdPlay,
	"g":        gtpprotocol.CmdGenMove,
	"gen":      gtpprotocol.CmdGenMove,
	"u":        gtpprotocol.CmdUndo,
	"score":    gtpprotocol.CmdFinalScore,
	"dead":     gtpprotocol.CmdFinalStatusList + " dead",
	"alive":    gtpprotocol.CmdFinalStatusList + " alive",
	"handicap": gtpprotocol.CmdFixedHandicap,
	"stones":   customStonesCommand,
}

// translateToGTP expands shorthand in one REPL line. An optional leading
// numeric id is kept in front of the expansion.
func translateToGTP(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	var id string
	if _, err := strconv.ParseUint(fields[0], 10, 32); err == nil && len(fields) > 1 {
		id, fields = fields[0], fields[1:]
	}

	word, args := strings.ToLower(fields[0]), fields[1:]
	var expanded []string
	switch {
	case aliases[word] != "":
		expanded = append([]string{aliases[word]}, args...)
	case isColour(word) && len(args) == 0:
		expanded = []string{gtpprotocol.CmdGenMove, fields[0]}
	case isColour(word) && len(args) == 1:
		expanded = []string{gtpprotocol.CmdPlay, fields[0], args[0]}
	default:
		expanded = fields
	}

	if id != "" {
		expanded = append([]string{id}, expanded...)
	}
	return strings.Join(expanded, " ")
}

func isColour(word string) bool {
	_, ok := gtpprotocol.ParseColour(word)
	return ok
}
