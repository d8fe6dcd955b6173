package gtpprotocol

import (
	"fmt"
	"strings"
)

// DrawBoard renders a board for showboard: a capture count header, one row
// per board line from the top row down with right-aligned row numbers, and
// a column legend that skips I. The output contains no empty line so it
// can travel inside a response.
func DrawBoard(state BoardState) (string, error) {
	size := state.Size
	if size < MinBoardSize || size > MaxBoardSize {
		return "", fmt.Errorf("draw board: invalid board size %d", size)
	}

	var grid [MaxBoardSize][MaxBoardSize]byte
	place := func(stones []Vertex, glyph byte) error {
		for _, st := range stones {
			x, y := st.Coords()
			if x < 1 || x > size || y < 1 || y > size {
				return fmt.Errorf("draw board: stone %s outside %dx%d board", st, size, size)
			}
			grid[y-1][x-1] = glyph
		}
		return nil
	}
	if err := place(state.Black, 'B'); err != nil {
		return "", err
	}
	if err := place(state.White, 'W'); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Captured stones : %d by white and %d by black.\n",
		state.BlackCaptures, state.WhiteCaptures)
	for row := size; row >= 1; row-- {
		fmt.Fprintf(&b, "%2d", row)
		for col := 1; col <= size; col++ {
			glyph := grid[row-1][col-1]
			if glyph == 0 {
				glyph = '.'
			}
			b.WriteByte(' ')
			b.WriteByte(glyph)
		}
		b.WriteByte('\n')
	}
	b.WriteString("  ")
	for col := 1; col <= size; col++ {
		b.WriteByte(' ')
		b.WriteString(columnLetter(col))
	}
	return b.String(), nil
}
