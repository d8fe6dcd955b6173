// =============================================================================
// help.go - Help System for the Interactive Session
// =============================================================================
//
// ".help" lists the dot-commands, the shorthand and the GTP commands the
// engine actually supports (as reported by list_commands). ".help <topic>"
// prints the detailed text for one dot-command or GTP command.
//
// =============================================================================

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/elinorbgr/gtp-go/gtpprotocol"
)

// printHelp prints the overview when topic is empty and the detailed help
// for topic otherwise. available is the engine's command list.
func printHelp(w io.Writer, topic string, available []string) {
	if topic == "" {
		printHelpOverview(w, available)
		return
	}

	key := strings.TrimPrefix(strings.ToLower(topic), ".")
	if text, ok := dotHelp[key]; ok {
		fmt.Fprintln(w, text)
		return
	}
	if expansion, ok := aliases[key]; ok {
		key, _, _ = strings.Cut(expansion, " ")
	}
	if text, ok := commandHelp[key]; ok {
		fmt.Fprintln(w, text.usage)
		fmt.Fprintln(w, text.detail)
		return
	}

	fmt.Fprintf(w, "No help for '%s'. Type .help to see available commands.\n", topic)
}

func printHelpOverview(w io.Writer, available []string) {
	fmt.Fprint(w, `Session Commands:
  .help [cmd]       Show help (or help for a specific command)
  .quit             Leave the session (the engine receives quit)

Shorthand:
  b d4 / w pass     Play a move (play <colour> <move>)
  b / w             Let the engine move (genmove <colour>)
  sb, show          showboard          size <n>   boardsize <n>
  new, clear        clear_board        u          undo
  ls                list_commands      score      final_score
  q, exit           quit               stones     gtpbot-stones

GTP Commands:
`)
	for _, name := range available {
		summary := ""
		if text, ok := commandHelp[name]; ok {
			summary = text.summary
		}
		fmt.Fprintf(w, "  %-20s %s\n", name, summary)
	}
}

// dotHelp holds the detailed help for session commands, keyed without the
// leading dot.
var dotHelp = map[string]string{
	"help": `  .help [topic]
    Without a topic, list every command. With a topic, explain one
    session command, shorthand or GTP command.`,

	"quit": `  .quit
    Send quit to the engine and leave the session. Ctrl-D does the same.`,
}

type helpText struct {
	usage   string
	summary string
	detail  string
}

// commandHelp holds one entry per GTP command.
var commandHelp = map[string]helpText{
	gtpprotocol.CmdProtocolVersion: {
		"  protocol_version", "GTP version spoken (2)",
		"    Answer the protocol version. Always 2.",
	},
	gtpprotocol.CmdName: {
		"  name", "engine name",
		"    Answer the engine name.",
	},
	gtpprotocol.CmdVersion: {
		"  version", "engine version",
		"    Answer the engine version.",
	},
	gtpprotocol.CmdKnownCommand: {
		"  known_command <name>", "is a command supported",
		"    Answer true when the engine supports the command, false otherwise.",
	},
	gtpprotocol.CmdListCommands: {
		"  list_commands", "list supported commands",
		"    List every supported command, one per line.",
	},
	gtpprotocol.CmdQuit: {
		"  quit", "end the session",
		"    The engine answers bye and stops reading commands.",
	},
	gtpprotocol.CmdBoardSize: {
		"  boardsize <size>", "change the board size",
		"    Change the board size (1 to 25). The board is cleared.\n" +
			"    Fails with 'unacceptable size'.",
	},
	gtpprotocol.CmdClearBoard: {
		"  clear_board", "empty the board",
		"    Remove every stone, reset captures and the move history.",
	},
	gtpprotocol.CmdKomi: {
		"  komi <value>", "set komi",
		"    Set the points given to white, e.g. komi 6.5.",
	},
	gtpprotocol.CmdPlay: {
		"  play <colour> <move>", "play a move",
		"    Play a stone, pass or resign for a colour, e.g. play b D4.\n" +
			"    Fails with 'invalid move' on occupied points, suicide or ko.",
	},
	gtpprotocol.CmdGenMove: {
		"  genmove <colour>", "engine plays a move",
		"    Let the engine choose and play a move for the colour.",
	},
	gtpprotocol.CmdRegGenMove: {
		"  reg_genmove <colour>", "engine suggests a move",
		"    Like genmove, but the move is not played.",
	},
	gtpprotocol.CmdUndo: {
		"  undo", "take back the last move",
		"    Take back the last move. Fails with 'cannot undo'.",
	},
	gtpprotocol.CmdFixedHandicap: {
		"  fixed_handicap <n>", "standard handicap stones",
		"    Place 2 to 9 black stones on the standard points of an empty\n" +
			"    board and list them.",
	},
	gtpprotocol.CmdPlaceFreeHandicap: {
		"  place_free_handicap <n>", "engine places handicap stones",
		"    Let the engine place up to n black stones on an empty board.",
	},
	gtpprotocol.CmdSetFreeHandicap: {
		"  set_free_handicap <vertex>...", "place given handicap stones",
		"    Place black stones on the given distinct points of an empty board.",
	},
	gtpprotocol.CmdTimeSettings: {
		"  time_settings <main> <byo_yomi> <stones>", "set the clock",
		"    Main time and byo-yomi time in seconds, stones per byo-yomi period.",
	},
	gtpprotocol.CmdTimeLeft: {
		"  time_left <colour> <time> <stones>", "report remaining time",
		"    Tell the engine how much time a colour has left.",
	},
	gtpprotocol.CmdFinalStatusList: {
		"  final_status_list <alive|dead|seki>", "stones by status",
		"    List the stones the engine considers alive, dead or in seki.",
	},
	gtpprotocol.CmdFinalScore: {
		"  final_score", "score the game",
		"    Answer the result, e.g. B+3.5, W+0.5 or 0 for a draw.",
	},
	gtpprotocol.CmdShowBoard: {
		"  showboard", "draw the board",
		"    Draw the board with capture counts.",
	},
	gtpprotocol.CmdLoadSGF: {
		"  loadsgf <file> [move]", "load a game record",
		"    Replay an SGF file, up to the given move number when present.",
	},
	customStonesCommand: {
		"  gtpbot-stones", "count stones on the board",
		"    Answer the number of black and white stones on the board.",
	},
}
