package gtpprotocol

import "errors"

// Capabilities records which optional commands an engine supports. It is
// filled once by probing the engine and never changes afterwards.
type Capabilities struct {
	RegGenMove        bool // also gates time_left
	Undo              bool
	FixedHandicap     bool
	PlaceFreeHandicap bool
	SetFreeHandicap   bool
	TimeSettings      bool
	FinalStatusList   bool
	FinalScore        bool
	ShowBoard         bool
	LoadSGF           bool

	// Custom is set when the engine handles its own commands.
	Custom bool
}

// optionalCommands lists the gated commands in list_commands order.
var optionalCommands = [...]struct {
	name    string
	enabled func(Capabilities) bool
}{
	{CmdRegGenMove, func(c Capabilities) bool { return c.RegGenMove }},
	{CmdTimeLeft, func(c Capabilities) bool { return c.RegGenMove }},
	{CmdLoadSGF, func(c Capabilities) bool { return c.LoadSGF }},
	{CmdUndo, func(c Capabilities) bool { return c.Undo }},
	{CmdPlaceFreeHandicap, func(c Capabilities) bool { return c.PlaceFreeHandicap }},
	{CmdFixedHandicap, func(c Capabilities) bool { return c.FixedHandicap }},
	{CmdSetFreeHandicap, func(c Capabilities) bool { return c.SetFreeHandicap }},
	{CmdTimeSettings, func(c Capabilities) bool { return c.TimeSettings }},
	{CmdFinalStatusList, func(c Capabilities) bool { return c.FinalStatusList }},
	{CmdFinalScore, func(c Capabilities) bool { return c.FinalScore }},
	{CmdShowBoard, func(c Capabilities) bool { return c.ShowBoard }},
}

// Enabled reports whether the named optional command is supported. It
// returns false for names that are not optional commands.
func (c Capabilities) Enabled(name string) bool {
	for _, cmd := range optionalCommands {
		if cmd.name == name {
			return cmd.enabled(c)
		}
	}
	return false
}

// Commands returns the supported optional commands in list_commands order.
func (c Capabilities) Commands() []string {
	var out []string
	for _, cmd := range optionalCommands {
		if cmd.enabled(c) {
			out = append(out, cmd.name)
		}
	}
	return out
}

func isOptional(name string) bool {
	for _, cmd := range optionalCommands {
		if cmd.name == name {
			return true
		}
	}
	return false
}

// probeCapabilities calls every optional operation once with a harmless
// argument. An operation is supported unless the engine does not implement
// it or answers ErrNotImplemented; any other result, failure included,
// counts as supported. The board is cleared afterwards so probing leaves
// no trace in the game.
func probeCapabilities(engine Engine) Capabilities {
	var caps Capabilities

	if e, ok := engine.(RegGenMover); ok {
		_, err := e.RegGenMove(Black)
		caps.RegGenMove = supported(err)
	}
	if e, ok := engine.(Undoer); ok {
		caps.Undo = supported(e.Undo())
	}
	if e, ok := engine.(FixedHandicapper); ok {
		_, err := e.FixedHandicap(1)
		caps.FixedHandicap = supported(err)
	}
	if e, ok := engine.(FreeHandicapPlacer); ok {
		_, err := e.PlaceFreeHandicap(1)
		caps.PlaceFreeHandicap = supported(err)
	}
	if e, ok := engine.(FreeHandicapSetter); ok {
		caps.SetFreeHandicap = supported(e.SetFreeHandicap([]Vertex{MustVertex(2, 2)}))
	}
	if e, ok := engine.(TimeSettingser); ok {
		caps.TimeSettings = supported(e.TimeSettings(5, 0, 0))
	}
	if e, ok := engine.(FinalStatusLister); ok {
		_, err := e.FinalStatusList(Alive)
		caps.FinalStatusList = supported(err)
	}
	if e, ok := engine.(FinalScorer); ok {
		_, err := e.FinalScore()
		caps.FinalScore = supported(err)
	}
	if e, ok := engine.(BoardShower); ok {
		_, err := e.ShowBoard()
		caps.ShowBoard = supported(err)
	}
	if e, ok := engine.(SGFLoader); ok {
		caps.LoadSGF = supported(e.LoadSGF("", 0))
	}
	_, caps.Custom = engine.(CustomCommander)

	engine.ClearBoard()
	return caps
}

func supported(err error) bool {
	return !errors.Is(err, ErrNotImplemented)
}
