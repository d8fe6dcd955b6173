package gtpprotocol

// Engine is the set of operations every engine must implement.
//
// Operations returning an error may only return the errors listed in their
// documentation. Any other error is treated as an engine bug and stops the
// adapter (see ContractError).
type Engine interface {
	// Name is the engine name, e.g. "My super Bot".
	Name() string

	// Version is the engine version, e.g. "v2.3-r5".
	Version() string

	// ClearBoard empties the board and resets captures and history.
	ClearBoard()

	// Komi sets the komi. It must accept any value.
	Komi(komi float64)

	// BoardSize changes the board size. The adapter only passes sizes in
	// 1..MaxBoardSize. May return ErrInvalidBoardSize.
	BoardSize(size int) error

	// Play plays a move. May return ErrInvalidMove. The same colour may
	// play twice in a row.
	Play(mv ColouredMove) error

	// GenMove chooses a move for player and plays it. It cannot fail.
	GenMove(player Colour) Move
}

// The interfaces below are the optional operations. An engine supports an
// operation when it implements the interface and the method does not
// return ErrNotImplemented when the Handler probes it. Each method is
// called once while probing, after which ClearBoard is called.

// RegGenMover chooses a move without playing it. The choice must be
// deterministic. Never fails.
type RegGenMover interface {
	RegGenMove(player Colour) (Move, error)
}

// Undoer takes back the last move. May return ErrCannotUndo.
type Undoer interface {
	Undo() error
}

// FixedHandicapper places handicap stones for black on the standard
// points and returns them. The adapter passes 2..9 outside of probing.
// May return ErrBoardNotEmpty, or ErrInvalidStoneCount when the board size
// has no standard points for that many stones.
type FixedHandicapper interface {
	FixedHandicap(stones int) ([]Vertex, error)
}

// FreeHandicapPlacer lets the engine choose where black's handicap stones
// go. It may place fewer stones than asked. May return ErrBoardNotEmpty or
// ErrInvalidStoneCount.
type FreeHandicapPlacer interface {
	PlaceFreeHandicap(stones int) ([]Vertex, error)
}

// FreeHandicapSetter places the given handicap stones for black. May
// return ErrBoardNotEmpty or ErrBadVertexList.
type FreeHandicapSetter interface {
	SetFreeHandicap(stones []Vertex) error
}

// TimeSettingser records the time settings: main time and byo-yomi time
// in seconds, and stones per byo-yomi period. Never fails.
type TimeSettingser interface {
	TimeSettings(mainTime, byoYomiTime, byoYomiStones int) error
}

// FinalStatusLister lists the stones of both colours having the given
// status, in the engine's opinion. Never fails.
type FinalStatusLister interface {
	FinalStatusList(status StoneStatus) ([]Vertex, error)
}

// FinalScorer computes the final score. May return ErrCannotScore.
type FinalScorer interface {
	FinalScore() (Score, error)
}

// BoardShower describes the board for showboard. Never fails.
type BoardShower interface {
	ShowBoard() (BoardState, error)
}

// SGFLoader loads a game record up to moveNumber (0 means the whole
// game). May return ErrCannotLoadFile.
type SGFLoader interface {
	LoadSGF(path string, moveNumber int) error
}

// CustomCommander handles engine-defined commands. Commands the adapter
// does not route itself are passed here untouched.
type CustomCommander interface {
	CustomCommand(name, args string) (ok bool, output string)
	KnownCustomCommand(name string) bool
	ListCustomCommands() []string
}

// UnimplementedEngine can be embedded in an engine to get every optional
// operation reporting ErrNotImplemented. Override the ones the engine
// supports. CustomCommander is not covered: an engine has custom commands
// only when it implements that interface itself.
type UnimplementedEngine struct{}

func (UnimplementedEngine) RegGenMove(Colour) (Move, error) { return Move{}, ErrNotImplemented }

func (UnimplementedEngine) Undo() error { return ErrNotImplemented }

func (UnimplementedEngine) FixedHandicap(int) ([]Vertex, error) { return nil, ErrNotImplemented }

func (UnimplementedEngine) PlaceFreeHandicap(int) ([]Vertex, error) { return nil, ErrNotImplemented }

func (UnimplementedEngine) SetFreeHandicap([]Vertex) error { return ErrNotImplemented }

func (UnimplementedEngine) TimeSettings(int, int, int) error { return ErrNotImplemented }

func (UnimplementedEngine) FinalStatusList(StoneStatus) ([]Vertex, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedEngine) FinalScore() (Score, error) { return Score{}, ErrNotImplemented }

func (UnimplementedEngine) ShowBoard() (BoardState, error) { return BoardState{}, ErrNotImplemented }

func (UnimplementedEngine) LoadSGF(string, int) error { return ErrNotImplemented }
