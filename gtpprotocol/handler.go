package gtpprotocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// commandFunc runs one routed command. The returned response carries no id.
type commandFunc func(h *Handler, args string) (Response, error)

// routes holds every command the Handler knows how to run. A Handler
// keeps the mandatory ones plus the optional ones its engine supports.
var routes = map[string]commandFunc{
	CmdProtocolVersion:   (*Handler).cmdProtocolVersion,
	CmdName:              (*Handler).cmdName,
	CmdVersion:           (*Handler).cmdVersion,
	CmdKnownCommand:      (*Handler).cmdKnownCommand,
	CmdListCommands:      (*Handler).cmdListCommands,
	CmdQuit:              (*Handler).cmdQuit,
	CmdBoardSize:         (*Handler).cmdBoardSize,
	CmdClearBoard:        (*Handler).cmdClearBoard,
	CmdKomi:              (*Handler).cmdKomi,
	CmdPlay:              (*Handler).cmdPlay,
	CmdGenMove:           (*Handler).cmdGenMove,
	CmdRegGenMove:        (*Handler).cmdRegGenMove,
	CmdTimeLeft:          (*Handler).cmdTimeLeft,
	CmdLoadSGF:           (*Handler).cmdLoadSGF,
	CmdUndo:              (*Handler).cmdUndo,
	CmdFixedHandicap:     (*Handler).cmdFixedHandicap,
	CmdPlaceFreeHandicap: (*Handler).cmdPlaceFreeHandicap,
	CmdSetFreeHandicap:   (*Handler).cmdSetFreeHandicap,
	CmdTimeSettings:      (*Handler).cmdTimeSettings,
	CmdFinalStatusList:   (*Handler).cmdFinalStatusList,
	CmdFinalScore:        (*Handler).cmdFinalScore,
	CmdShowBoard:         (*Handler).cmdShowBoard,
}

// Handler dispatches commands to an engine. It probes the engine once when
// created and serves commands one at a time afterwards. A Handler is not
// safe for concurrent use.
type Handler struct {
	engine   Engine
	custom   CustomCommander // nil when the engine has no custom commands
	caps     Capabilities
	commands map[string]commandFunc
	log      zerolog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for probe results, dispatched commands
// and contract violations.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Handler) {
		h.log = logger
	}
}

// NewHandler probes engine for its optional operations and returns a
// Handler serving exactly the supported command set. Probing ends with
// ClearBoard, so the engine starts from an empty board.
func NewHandler(engine Engine, opts ...Option) *Handler {
	h := &Handler{
		engine: engine,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.caps = probeCapabilities(engine)
	if h.caps.Custom {
		h.custom = engine.(CustomCommander)
	}

	h.commands = make(map[string]commandFunc, len(mandatoryCommands)+len(optionalCommands))
	for name, fn := range routes {
		if isMandatory(name) || h.caps.Enabled(name) {
			h.commands[name] = fn
		}
	}

	h.log.Info().
		Str("engine", engine.Name()).
		Str("version", engine.Version()).
		Strs("optional", h.caps.Commands()).
		Bool("custom", h.caps.Custom).
		Msg("engine capabilities probed")
	return h
}

// Capabilities returns the probed capability table.
func (h *Handler) Capabilities() Capabilities {
	return h.caps
}

// Handle runs one command and returns its response. A non-nil error is
// always a *ContractError: the engine broke its contract, no response
// must be sent, and the caller should stop serving.
func (h *Handler) Handle(cmd Command) (Response, error) {
	var (
		resp Response
		err  error
	)
	if fn, ok := h.commands[cmd.Name]; ok {
		resp, err = fn(h, cmd.Args)
	} else if isOptional(cmd.Name) || h.custom == nil {
		resp = NewFailureResponse(textUnknownCommand)
	} else {
		ok, out := h.custom.CustomCommand(cmd.Name, cmd.Args)
		resp = Response{Success: ok, Text: out}
	}

	if err != nil {
		h.log.Error().Err(err).Str("command", cmd.Name).Str("args", cmd.Args).Msg("engine contract violation")
		return Response{}, err
	}

	resp.ID = cmd.ID
	h.log.Debug().
		Str("command", cmd.Name).
		Str("args", cmd.Args).
		Bool("success", resp.Success).
		Msg("command handled")
	return resp, nil
}

// HandleInput parses the first command found in input and runs it. It
// returns false when input holds no command, in which case nothing must
// be written back.
func (h *Handler) HandleInput(input string) (Response, bool, error) {
	cmd, ok := ParseCommand(input)
	if !ok {
		return Response{}, false, nil
	}
	resp, err := h.Handle(cmd)
	return resp, true, err
}

// known reports whether name would be routed somewhere other than the
// unknown-command answer.
func (h *Handler) known(name string) bool {
	if _, ok := h.commands[name]; ok {
		return true
	}
	if isOptional(name) || h.custom == nil {
		return false
	}
	return h.custom.KnownCustomCommand(name)
}

// engineResult maps an engine error to a failure response. Errors outside
// allowed are contract violations.
func engineResult(command string, err error, allowed ...error) (Response, error) {
	if err == nil {
		return NewSuccessResponse(""), nil
	}
	for _, a := range allowed {
		if errors.Is(err, a) {
			text, _ := failureText(a)
			return NewFailureResponse(text), nil
		}
	}
	return Response{}, &ContractError{Command: command, Err: err}
}

// moveResult answers with a move the engine produced. A stone off every
// board is a contract violation.
func moveResult(command string, mv Move) (Response, error) {
	if !mv.valid() {
		return Response{}, &ContractError{Command: command, Err: fmt.Errorf("engine returned move %+v", mv)}
	}
	return NewSuccessResponse(mv.String()), nil
}

func verticesResult(command string, vs []Vertex) (Response, error) {
	for _, v := range vs {
		if !v.IsValid() {
			return Response{}, &ContractError{Command: command, Err: fmt.Errorf("engine returned vertex %+v", v)}
		}
	}
	return NewSuccessResponse(formatVertices(vs)), nil
}

func syntaxError() (Response, error) {
	return NewFailureResponse(textSyntaxError), nil
}

// Administrative commands.

func (h *Handler) cmdProtocolVersion(string) (Response, error) {
	return NewSuccessResponse(ProtocolVersion), nil
}

func (h *Handler) cmdName(string) (Response, error) {
	return NewSuccessResponse(h.engine.Name()), nil
}

func (h *Handler) cmdVersion(string) (Response, error) {
	return NewSuccessResponse(h.engine.Version()), nil
}

func (h *Handler) cmdKnownCommand(args string) (Response, error) {
	name, _, _ := strings.Cut(strings.TrimSpace(args), " ")
	return NewSuccessResponse(strconv.FormatBool(name != "" && h.known(name))), nil
}

func (h *Handler) cmdListCommands(string) (Response, error) {
	names := MandatoryCommands()
	names = append(names, h.caps.Commands()...)
	if h.custom != nil {
		names = append(names, h.custom.ListCustomCommands()...)
	}
	return NewSuccessResponse(strings.Join(names, "\n")), nil
}

func (h *Handler) cmdQuit(string) (Response, error) {
	return Response{Success: true, Text: textBye, Quit: true}, nil
}

// Setup commands.

func (h *Handler) cmdBoardSize(args string) (Response, error) {
	n, ok := decodeInts(args, 1)
	if !ok {
		return syntaxError()
	}
	if n[0] < MinBoardSize || n[0] > MaxBoardSize {
		return NewFailureResponse(textUnacceptableSize), nil
	}
	return engineResult(CmdBoardSize, h.engine.BoardSize(n[0]), ErrInvalidBoardSize)
}

func (h *Handler) cmdClearBoard(string) (Response, error) {
	h.engine.ClearBoard()
	return NewSuccessResponse(""), nil
}

func (h *Handler) cmdKomi(args string) (Response, error) {
	komi, ok := decodeFloat(args)
	if !ok {
		return syntaxError()
	}
	h.engine.Komi(komi)
	return NewSuccessResponse(""), nil
}

func (h *Handler) cmdFixedHandicap(args string) (Response, error) {
	n, ok := decodeInts(args, 1)
	if !ok {
		return syntaxError()
	}
	if n[0] < 2 || n[0] > 9 {
		return NewFailureResponse(textInvalidStones), nil
	}
	stones, err := h.engine.(FixedHandicapper).FixedHandicap(n[0])
	if err != nil {
		return engineResult(CmdFixedHandicap, err, ErrBoardNotEmpty, ErrInvalidStoneCount)
	}
	return verticesResult(CmdFixedHandicap, stones)
}

func (h *Handler) cmdPlaceFreeHandicap(args string) (Response, error) {
	n, ok := decodeInts(args, 1)
	if !ok {
		return syntaxError()
	}
	if n[0] < 2 {
		return NewFailureResponse(textInvalidStones), nil
	}
	stones, err := h.engine.(FreeHandicapPlacer).PlaceFreeHandicap(n[0])
	if err != nil {
		return engineResult(CmdPlaceFreeHandicap, err, ErrBoardNotEmpty, ErrInvalidStoneCount)
	}
	return verticesResult(CmdPlaceFreeHandicap, stones)
}

func (h *Handler) cmdSetFreeHandicap(args string) (Response, error) {
	stones, ok := DecodeVertexList(args)
	if !ok {
		return syntaxError()
	}
	if len(stones) < 2 || hasDuplicates(stones) {
		return NewFailureResponse(textBadVertexList), nil
	}
	err := h.engine.(FreeHandicapSetter).SetFreeHandicap(stones)
	return engineResult(CmdSetFreeHandicap, err, ErrBoardNotEmpty, ErrBadVertexList)
}

func hasDuplicates(vs []Vertex) bool {
	seen := make(map[Vertex]struct{}, len(vs))
	for _, v := range vs {
		if _, dup := seen[v]; dup {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

func (h *Handler) cmdLoadSGF(args string) (Response, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return syntaxError()
	}
	moveNumber := 0
	if len(fields) > 1 {
		n, ok := decodeInts(fields[1], 1)
		if !ok {
			return syntaxError()
		}
		moveNumber = n[0]
	}
	err := h.engine.(SGFLoader).LoadSGF(fields[0], moveNumber)
	return engineResult(CmdLoadSGF, err, ErrCannotLoadFile)
}

// Core play commands.

func (h *Handler) cmdPlay(args string) (Response, error) {
	decoded, ok := DecodeArguments(args, ArgColouredMove)
	if !ok {
		return syntaxError()
	}
	return engineResult(CmdPlay, h.engine.Play(decoded[0].ColouredMove), ErrInvalidMove)
}

func (h *Handler) cmdGenMove(args string) (Response, error) {
	decoded, ok := DecodeArguments(args, ArgColour)
	if !ok {
		return syntaxError()
	}
	return moveResult(CmdGenMove, h.engine.GenMove(decoded[0].Colour))
}

func (h *Handler) cmdUndo(string) (Response, error) {
	return engineResult(CmdUndo, h.engine.(Undoer).Undo(), ErrCannotUndo)
}

// Tournament commands.

func (h *Handler) cmdTimeSettings(args string) (Response, error) {
	n, ok := decodeInts(args, 3)
	if !ok {
		return syntaxError()
	}
	err := h.engine.(TimeSettingser).TimeSettings(n[0], n[1], n[2])
	return engineResult(CmdTimeSettings, err)
}

// cmdTimeLeft acknowledges the clock update without passing it on.
func (h *Handler) cmdTimeLeft(args string) (Response, error) {
	if _, ok := DecodeArguments(args, ArgColour); !ok {
		return syntaxError()
	}
	_, rest, _ := strings.Cut(args, " ")
	if _, ok := decodeInts(rest, 2); !ok {
		return syntaxError()
	}
	return NewSuccessResponse(""), nil
}

func (h *Handler) cmdFinalScore(string) (Response, error) {
	score, err := h.engine.(FinalScorer).FinalScore()
	if err != nil {
		return engineResult(CmdFinalScore, err, ErrCannotScore)
	}
	if !score.valid() {
		return Response{}, &ContractError{Command: CmdFinalScore, Err: fmt.Errorf("engine returned score %+v", score)}
	}
	return NewSuccessResponse(score.String()), nil
}

func (h *Handler) cmdFinalStatusList(args string) (Response, error) {
	decoded, ok := DecodeArguments(args, ArgStoneStatus)
	if !ok {
		return syntaxError()
	}
	stones, err := h.engine.(FinalStatusLister).FinalStatusList(decoded[0].Status)
	if err != nil {
		return engineResult(CmdFinalStatusList, err)
	}
	return verticesResult(CmdFinalStatusList, stones)
}

// Regression and debug commands.

func (h *Handler) cmdRegGenMove(args string) (Response, error) {
	decoded, ok := DecodeArguments(args, ArgColour)
	if !ok {
		return syntaxError()
	}
	mv, err := h.engine.(RegGenMover).RegGenMove(decoded[0].Colour)
	if err != nil {
		return engineResult(CmdRegGenMove, err)
	}
	return moveResult(CmdRegGenMove, mv)
}

func (h *Handler) cmdShowBoard(string) (Response, error) {
	state, err := h.engine.(BoardShower).ShowBoard()
	if err != nil {
		return engineResult(CmdShowBoard, err)
	}
	board, err := DrawBoard(state)
	if err != nil {
		return Response{}, &ContractError{Command: CmdShowBoard, Err: err}
	}
	return NewSuccessResponse(board), nil
}
