package gtpprotocol

import (
	"strings"
	"testing"
)

func TestDrawBoard(t *testing.T) {
	state := BoardState{
		Size:          5,
		Black:         []Vertex{MustVertex(1, 1), MustVertex(3, 3)},
		White:         []Vertex{MustVertex(5, 5), MustVertex(2, 1)},
		BlackCaptures: 2,
		WhiteCaptures: 1,
	}
	expected := "Captured stones : 2 by white and 1 by black.\n" +
		" 5 . . . . W\n" +
		" 4 . . . . .\n" +
		" 3 . . B . .\n" +
		" 2 . . . . .\n" +
		" 1 B W . . .\n" +
		"   A B C D E"

	got, err := DrawBoard(state)
	if err != nil {
		t.Fatalf("DrawBoard error: %v", err)
	}
	if got != expected {
		t.Errorf("got\n%s\nwant\n%s", got, expected)
	}
}

func TestDrawBoardLegendSkipsI(t *testing.T) {
	got, err := DrawBoard(BoardState{Size: 19})
	if err != nil {
		t.Fatalf("DrawBoard error: %v", err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 21 {
		t.Fatalf("got %d lines, want 21", len(lines))
	}
	legend := lines[len(lines)-1]
	if legend != "   A B C D E F G H J K L M N O P Q R S T" {
		t.Errorf("legend = %q", legend)
	}
	if !strings.HasPrefix(lines[1], "19 ") || !strings.HasPrefix(lines[19], " 1 ") {
		t.Errorf("unexpected row labels %q, %q", lines[1], lines[19])
	}
}

func TestDrawBoardNoEmptyLine(t *testing.T) {
	for size := MinBoardSize; size <= MaxBoardSize; size++ {
		got, err := DrawBoard(BoardState{Size: size})
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if strings.Contains(got, "\n\n") || strings.HasSuffix(got, "\n") {
			t.Fatalf("size %d: output would break response framing", size)
		}
	}
}

func TestDrawBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		state BoardState
	}{
		{"zero size", BoardState{Size: 0}},
		{"too large", BoardState{Size: 26}},
		{"stone off board", BoardState{Size: 9, Black: []Vertex{MustVertex(10, 1)}}},
		{"white off board", BoardState{Size: 9, White: []Vertex{MustVertex(1, 19)}}},
		{"zero vertex", BoardState{Size: 9, White: []Vertex{{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DrawBoard(tt.state); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
