package gtpprotocol

import (
	"testing"
)

// TestProtocolConstants verifies the wire constants.
func TestProtocolConstants(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"SuccessPrefix", SuccessPrefix, "="},
		{"FailurePrefix", FailurePrefix, "?"},
		{"ResponseTerminator", ResponseTerminator, "\n\n"},
		{"ProtocolVersion", ProtocolVersion, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestMandatoryCommands(t *testing.T) {
	expected := []string{
		"protocol_version", "name", "version", "known_command", "list_commands",
		"quit", "boardsize", "clear_board", "komi", "play", "genmove",
	}
	got := MandatoryCommands()
	if len(got) != len(expected) {
		t.Fatalf("got %d commands, want %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("command %d = %q, want %q", i, got[i], expected[i])
		}
	}

	// The returned slice is a copy.
	got[0] = "changed"
	if MandatoryCommands()[0] != "protocol_version" {
		t.Error("MandatoryCommands exposes the fixed list")
	}
}

// TestCommandFormatting verifies command formatting matches the protocol.
func TestCommandFormatting(t *testing.T) {
	d4 := MustVertex(4, 4)
	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{"bare", NewCommand(CmdClearBoard), "clear_board"},
		{"with id", NewCommand(CmdQuit).WithID(7), "7 quit"},
		{"id zero", NewCommand(CmdName).WithID(0), "0 name"},
		{"args joined", NewCommand("time_settings", "300", "30", "5"), "time_settings 300 30 5"},
		{"play", NewPlayCommand(ColouredMove{Player: Black, Move: StoneMove(d4)}), "play black D4"},
		{"play pass", NewPlayCommand(ColouredMove{Player: White, Move: Pass}), "play white pass"},
		{"genmove", NewGenMoveCommand(White), "genmove white"},
		{"boardsize", NewBoardSizeCommand(13), "boardsize 13"},
		{"komi", NewKomiCommand(6.5), "komi 6.5"},
		{"komi integer", NewKomiCommand(0), "komi 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cmd.Format()
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCommandFormatParsesBack(t *testing.T) {
	cmd := NewPlayCommand(ColouredMove{Player: Black, Move: StoneMove(MustVertex(17, 3))}).WithID(42)
	got, ok := ParseCommand(cmd.Format())
	if !ok {
		t.Fatalf("ParseCommand(%q) found no command", cmd.Format())
	}
	if got.ID == nil || *got.ID != 42 || got.Name != "play" || got.Args != "black R3" {
		t.Errorf("got %+v", got)
	}
}

func TestResponseFormatting(t *testing.T) {
	id := uint32(3)
	tests := []struct {
		name     string
		resp     Response
		expected string
	}{
		{"empty success", NewSuccessResponse(""), "= "},
		{"success with id", Response{Success: true, ID: &id, Text: "pass"}, "=3 pass"},
		{"failure", NewFailureResponse("unknown command"), "? unknown command"},
		{"failure with id", Response{ID: &id, Text: "invalid move"}, "?3 invalid move"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.Format(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestResponseLines(t *testing.T) {
	if lines := NewSuccessResponse("").Lines(); lines != nil {
		t.Errorf("empty response lines = %v, want nil", lines)
	}
	lines := NewSuccessResponse("name\nversion").Lines()
	if len(lines) != 2 || lines[0] != "name" || lines[1] != "version" {
		t.Errorf("got %v", lines)
	}
}

func TestResponseParser(t *testing.T) {
	parser := NewResponseParser()

	tests := []struct {
		name    string
		block   string
		success bool
		id      int64 // -1 for none
		text    string
	}{
		{"bare success", "=", true, -1, ""},
		{"success space", "= ", true, -1, ""},
		{"success text", "= bye", true, -1, "bye"},
		{"numbered", "=12 D4", true, 12, "D4"},
		{"numbered empty", "=12 ", true, 12, ""},
		{"numbered no space", "=12", true, 12, ""},
		{"failure", "?3 invalid move", false, 3, "invalid move"},
		{"multi-line", "=1 protocol_version\nname\nversion", true, 1, "protocol_version\nname\nversion"},
		{"crlf", "=1 pass\r\n", true, 1, "pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := parser.Parse(tt.block)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.block, err)
			}
			if resp.Success != tt.success {
				t.Errorf("Success = %v, want %v", resp.Success, tt.success)
			}
			switch {
			case tt.id < 0 && resp.ID != nil:
				t.Errorf("ID = %d, want none", *resp.ID)
			case tt.id >= 0 && (resp.ID == nil || int64(*resp.ID) != tt.id):
				t.Errorf("ID = %v, want %d", resp.ID, tt.id)
			}
			if resp.Text != tt.text {
				t.Errorf("Text = %q, want %q", resp.Text, tt.text)
			}
		})
	}
}

func TestResponseParserErrors(t *testing.T) {
	parser := NewResponseParser()

	tests := []struct {
		name  string
		block string
		kind  ParseErrorKind
	}{
		{"empty", "", ErrKindUnexpectedResponse},
		{"no prefix", "OK:pong", ErrKindUnexpectedResponse},
		{"bad id", "=1x pass", ErrKindInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.block)
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("Parse(%q) error = %v, want *ParseError", tt.block, err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Kind = %d, want %d", pe.Kind, tt.kind)
			}
		})
	}
}
