package gtpprotocol

// Protocol constants.
const (
	// SuccessPrefix starts every successful response.
	SuccessPrefix = "="

	// FailurePrefix starts every failed response.
	FailurePrefix = "?"

	// CommentMarker starts a comment that runs to the end of the line.
	CommentMarker = '#'

	// ResponseTerminator ends every response on the wire.
	ResponseTerminator = "\n\n"

	// ProtocolVersion is the answer to protocol_version.
	ProtocolVersion = "2"

	// MaxBoardSize is the largest board the protocol can address.
	MaxBoardSize = 25

	// MinBoardSize is the smallest board size accepted by boardsize.
	MinBoardSize = 1
)

// Command names defined by GTP version 2.
const (
	CmdProtocolVersion   = "protocol_version"
	CmdName              = "name"
	CmdVersion           = "version"
	CmdKnownCommand      = "known_command"
	CmdListCommands      = "list_commands"
	CmdQuit              = "quit"
	CmdBoardSize         = "boardsize"
	CmdClearBoard        = "clear_board"
	CmdKomi              = "komi"
	CmdPlay              = "play"
	CmdGenMove           = "genmove"
	CmdRegGenMove        = "reg_genmove"
	CmdUndo              = "undo"
	CmdFixedHandicap     = "fixed_handicap"
	CmdPlaceFreeHandicap = "place_free_handicap"
	CmdSetFreeHandicap   = "set_free_handicap"
	CmdTimeSettings      = "time_settings"
	CmdTimeLeft          = "time_left"
	CmdFinalStatusList   = "final_status_list"
	CmdFinalScore        = "final_score"
	CmdShowBoard         = "showboard"
	CmdLoadSGF           = "loadsgf"
)

// Fixed failure texts.
const (
	textUnknownCommand   = "unknown command"
	textSyntaxError      = "syntax error"
	textInvalidMove      = "invalid move"
	textUnacceptableSize = "unacceptable size"
	textBadVertexList    = "bad vertex list"
	textBoardNotEmpty    = "board not empty"
	textCannotUndo       = "cannot undo"
	textCannotScore      = "cannot score"
	textCannotLoadFile   = "cannot load file"
	textInvalidStones    = "invalid number of stones"
	textBye              = "bye"
)

// mandatoryCommands are always routed, in list_commands order.
var mandatoryCommands = [...]string{
	CmdProtocolVersion,
	CmdName,
	CmdVersion,
	CmdKnownCommand,
	CmdListCommands,
	CmdQuit,
	CmdBoardSize,
	CmdClearBoard,
	CmdKomi,
	CmdPlay,
	CmdGenMove,
}

// MandatoryCommands returns a copy of the always-available command names.
func MandatoryCommands() []string {
	out := make([]string, len(mandatoryCommands))
	copy(out, mandatoryCommands[:])
	return out
}

func isMandatory(name string) bool {
	for _, cmd := range mandatoryCommands {
		if cmd == name {
			return true
		}
	}
	return false
}
