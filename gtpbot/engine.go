// =============================================================================
// engine.go - Bundled Reference Engine
// =============================================================================
//
// A small but honest Go engine so that gtpbot can be plugged into a GTP
// controller out of the box. It knows the rules (captures, suicide, simple
// ko), keeps an undo history, places handicap stones and scores by area.
// Its move choice is deliberately naive and fully deterministic: tengen
// first, then the first legal point that does not fill one of its own eyes.
//
// It implements every optional interface of gtpprotocol except SGFLoader,
// so loadsgf is never advertised.
//
// =============================================================================

package main

import (
	"fmt"

	"github.com/elinorbgr/gtp-go/gtpprotocol"
)

const (
	defaultBoardSize = 19

	// customStonesCommand reports the number of stones of each colour.
	customStonesCommand = "gtpbot-stones"
)

// point is the content of one intersection.
type point uint8

const (
	empty point = iota
	blackStone
	whiteStone
)

func stoneOf(c gtpprotocol.Colour) point {
	if c == gtpprotocol.White {
		return whiteStone
	}
	return blackStone
}

// position is everything undo has to restore.
type position struct {
	cells    []point
	captures [2]int // stones of each colour taken off the board
	ko       int    // point koColour may not play on next, -1 for none
	koColour gtpprotocol.Colour
}

func newPosition(size int) position {
	return position{cells: make([]point, size*size), ko: -1}
}

func (p position) clone() position {
	cells := make([]point, len(p.cells))
	copy(cells, p.cells)
	p.cells = cells
	return p
}

type timeSettings struct {
	mainTime      int
	byoYomiTime   int
	byoYomiStones int
}

// boardEngine is the bundled engine. It is not safe for concurrent use,
// which GTP never requires.
type boardEngine struct {
	name    string
	size    int
	komi    float64
	pos     position
	history []position
	clock   timeSettings
}

// newBoardEngine creates an engine on an empty board. Sizes outside the
// protocol range fall back to 19x19.
func newBoardEngine(name string, size int, komi float64) *boardEngine {
	if size < gtpprotocol.MinBoardSize || size > gtpprotocol.MaxBoardSize {
		size = defaultBoardSize
	}
	e := &boardEngine{name: name, size: size, komi: komi}
	e.ClearBoard()
	return e
}

func (e *boardEngine) Name() string    { return e.name }
func (e *boardEngine) Version() string { return version }

func (e *boardEngine) ClearBoard() {
	e.pos = newPosition(e.size)
	e.history = nil
}

func (e *boardEngine) Komi(komi float64) {
	e.komi = komi
}

func (e *boardEngine) BoardSize(size int) error {
	if size < gtpprotocol.MinBoardSize || size > gtpprotocol.MaxBoardSize {
		return gtpprotocol.ErrInvalidBoardSize
	}
	e.size = size
	e.ClearBoard()
	return nil
}

func (e *boardEngine) Play(mv gtpprotocol.ColouredMove) error {
	if mv.Move.Kind != gtpprotocol.MoveStone {
		e.history = append(e.history, e.pos)
		next := e.pos.clone()
		next.ko = -1
		e.pos = next
		return nil
	}

	i, ok := e.index(mv.Move.Vertex)
	if !ok {
		return fmt.Errorf("%s is off the board: %w", mv.Move.Vertex, gtpprotocol.ErrInvalidMove)
	}
	next := e.pos.clone()
	if err := e.place(&next, mv.Player, i); err != nil {
		return err
	}
	e.history = append(e.history, e.pos)
	e.pos = next
	return nil
}

func (e *boardEngine) GenMove(player gtpprotocol.Colour) gtpprotocol.Move {
	mv := e.selectMove(player)
	// selectMove only returns legal moves
	_ = e.Play(gtpprotocol.ColouredMove{Player: player, Move: mv})
	return mv
}

func (e *boardEngine) RegGenMove(player gtpprotocol.Colour) (gtpprotocol.Move, error) {
	return e.selectMove(player), nil
}

func (e *boardEngine) Undo() error {
	if len(e.history) == 0 {
		return gtpprotocol.ErrCannotUndo
	}
	e.pos = e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	return nil
}

func (e *boardEngine) FixedHandicap(stones int) ([]gtpprotocol.Vertex, error) {
	if !e.boardEmpty() {
		return nil, gtpprotocol.ErrBoardNotEmpty
	}
	points, ok := handicapPattern(e.size, stones)
	if !ok {
		return nil, gtpprotocol.ErrInvalidStoneCount
	}
	e.placeHandicap(points)
	return points, nil
}

// PlaceFreeHandicap uses the fixed pattern, capped at what the board can
// hold.
func (e *boardEngine) PlaceFreeHandicap(stones int) ([]gtpprotocol.Vertex, error) {
	if !e.boardEmpty() {
		return nil, gtpprotocol.ErrBoardNotEmpty
	}
	points, ok := handicapPattern(e.size, min(stones, maxHandicap(e.size)))
	if !ok {
		return nil, gtpprotocol.ErrInvalidStoneCount
	}
	e.placeHandicap(points)
	return points, nil
}

func (e *boardEngine) SetFreeHandicap(stones []gtpprotocol.Vertex) error {
	if !e.boardEmpty() {
		return gtpprotocol.ErrBoardNotEmpty
	}
	if len(stones) >= len(e.pos.cells) {
		return gtpprotocol.ErrBadVertexList
	}
	for _, v := range stones {
		if _, ok := e.index(v); !ok {
			return gtpprotocol.ErrBadVertexList
		}
	}
	e.placeHandicap(stones)
	return nil
}

func (e *boardEngine) TimeSettings(mainTime, byoYomiTime, byoYomiStones int) error {
	e.clock = timeSettings{mainTime: mainTime, byoYomiTime: byoYomiTime, byoYomiStones: byoYomiStones}
	return nil
}

// FinalStatusList considers every stone alive.
func (e *boardEngine) FinalStatusList(status gtpprotocol.StoneStatus) ([]gtpprotocol.Vertex, error) {
	if status != gtpprotocol.Alive {
		return nil, nil
	}
	var out []gtpprotocol.Vertex
	for i, p := range e.pos.cells {
		if p != empty {
			out = append(out, e.vertexAt(i))
		}
	}
	return out, nil
}

// FinalScore counts stones plus surrounded territory, komi going to white.
func (e *boardEngine) FinalScore() (gtpprotocol.Score, error) {
	black, white := e.area()
	diff := float64(black) - float64(white) - e.komi
	switch {
	case diff > 0:
		return gtpprotocol.Score{Winner: gtpprotocol.Black, Margin: diff}, nil
	case diff < 0:
		return gtpprotocol.Score{Winner: gtpprotocol.White, Margin: -diff}, nil
	default:
		return gtpprotocol.Score{}, nil
	}
}

func (e *boardEngine) ShowBoard() (gtpprotocol.BoardState, error) {
	state := gtpprotocol.BoardState{
		Size:          e.size,
		BlackCaptures: e.pos.captures[gtpprotocol.Black],
		WhiteCaptures: e.pos.captures[gtpprotocol.White],
	}
	for i, p := range e.pos.cells {
		switch p {
		case blackStone:
			state.Black = append(state.Black, e.vertexAt(i))
		case whiteStone:
			state.White = append(state.White, e.vertexAt(i))
		}
	}
	return state, nil
}

func (e *boardEngine) CustomCommand(name, args string) (bool, string) {
	if name != customStonesCommand {
		return false, "unknown command"
	}
	var black, white int
	for _, p := range e.pos.cells {
		switch p {
		case blackStone:
			black++
		case whiteStone:
			white++
		}
	}
	return true, fmt.Sprintf("black %d white %d", black, white)
}

func (e *boardEngine) KnownCustomCommand(name string) bool {
	return name == customStonesCommand
}

func (e *boardEngine) ListCustomCommands() []string {
	return []string{customStonesCommand}
}

// Board geometry.

func (e *boardEngine) index(v gtpprotocol.Vertex) (int, bool) {
	x, y := v.Coords()
	if x < 1 || x > e.size || y < 1 || y > e.size {
		return 0, false
	}
	return (y-1)*e.size + (x - 1), true
}

func (e *boardEngine) vertexAt(i int) gtpprotocol.Vertex {
	return gtpprotocol.MustVertex(i%e.size+1, i/e.size+1)
}

func (e *boardEngine) neighbours(i int) []int {
	out := make([]int, 0, 4)
	x, y := i%e.size, i/e.size
	if x > 0 {
		out = append(out, i-1)
	}
	if x < e.size-1 {
		out = append(out, i+1)
	}
	if y > 0 {
		out = append(out, i-e.size)
	}
	if y < e.size-1 {
		out = append(out, i+e.size)
	}
	return out
}

// group returns the stones connected to i and how many liberties they
// share.
func (e *boardEngine) group(p *position, i int) (stones []int, liberties int) {
	colour := p.cells[i]
	seen := make([]bool, len(p.cells))
	seen[i] = true
	stack := []int{i}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stones = append(stones, cur)
		for _, n := range e.neighbours(cur) {
			if seen[n] {
				continue
			}
			seen[n] = true
			switch p.cells[n] {
			case colour:
				stack = append(stack, n)
			case empty:
				liberties++
			}
		}
	}
	return stones, liberties
}

// place puts a stone of colour c on i, removing captured stones. p is left
// untouched when the move is illegal.
func (e *boardEngine) place(p *position, c gtpprotocol.Colour, i int) error {
	if p.cells[i] != empty {
		return fmt.Errorf("%s is occupied: %w", e.vertexAt(i), gtpprotocol.ErrInvalidMove)
	}
	if p.ko == i && p.koColour == c {
		return fmt.Errorf("%s retakes a ko: %w", e.vertexAt(i), gtpprotocol.ErrInvalidMove)
	}

	own, opp := stoneOf(c), stoneOf(c.Opponent())
	p.cells[i] = own

	captured := 0
	lastCaptured := -1
	for _, n := range e.neighbours(i) {
		if p.cells[n] != opp {
			continue
		}
		stones, liberties := e.group(p, n)
		if liberties > 0 {
			continue
		}
		for _, s := range stones {
			p.cells[s] = empty
		}
		captured += len(stones)
		lastCaptured = stones[0]
	}

	stones, liberties := e.group(p, i)
	if liberties == 0 {
		p.cells[i] = empty
		return fmt.Errorf("%s is suicide: %w", e.vertexAt(i), gtpprotocol.ErrInvalidMove)
	}

	p.captures[c.Opponent()] += captured
	p.ko = -1
	if captured == 1 && len(stones) == 1 && liberties == 1 {
		p.ko = lastCaptured
		p.koColour = c.Opponent()
	}
	return nil
}

func (e *boardEngine) legal(c gtpprotocol.Colour, i int) bool {
	p := e.pos.clone()
	return e.place(&p, c, i) == nil
}

// ownEye reports whether every neighbour of the empty point i is a stone
// of colour c.
func (e *boardEngine) ownEye(c gtpprotocol.Colour, i int) bool {
	own := stoneOf(c)
	for _, n := range e.neighbours(i) {
		if e.pos.cells[n] != own {
			return false
		}
	}
	return true
}

func (e *boardEngine) selectMove(c gtpprotocol.Colour) gtpprotocol.Move {
	centre := (e.size + 1) / 2
	tengen, _ := e.index(gtpprotocol.MustVertex(centre, centre))
	if e.pos.cells[tengen] == empty && !e.ownEye(c, tengen) && e.legal(c, tengen) {
		return gtpprotocol.StoneMove(e.vertexAt(tengen))
	}
	for i, p := range e.pos.cells {
		if p == empty && !e.ownEye(c, i) && e.legal(c, i) {
			return gtpprotocol.StoneMove(e.vertexAt(i))
		}
	}
	return gtpprotocol.Pass
}

func (e *boardEngine) boardEmpty() bool {
	for _, p := range e.pos.cells {
		if p != empty {
			return false
		}
	}
	return true
}

// placeHandicap puts black stones on points of an empty board. Handicap
// placement cannot be undone.
func (e *boardEngine) placeHandicap(points []gtpprotocol.Vertex) {
	for _, v := range points {
		i, _ := e.index(v)
		e.pos.cells[i] = blackStone
	}
	e.history = nil
}

// area returns the area score of each colour: stones on the board plus
// empty regions bordered by that colour only.
func (e *boardEngine) area() (black, white int) {
	seen := make([]bool, len(e.pos.cells))
	for i, p := range e.pos.cells {
		switch p {
		case blackStone:
			black++
			continue
		case whiteStone:
			white++
			continue
		}
		if seen[i] {
			continue
		}

		region := 0
		var touchesBlack, touchesWhite bool
		seen[i] = true
		stack := []int{i}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			region++
			for _, n := range e.neighbours(cur) {
				switch e.pos.cells[n] {
				case blackStone:
					touchesBlack = true
				case whiteStone:
					touchesWhite = true
				default:
					if !seen[n] {
						seen[n] = true
						stack = append(stack, n)
					}
				}
			}
		}
		switch {
		case touchesBlack && !touchesWhite:
			black += region
		case touchesWhite && !touchesBlack:
			white += region
		}
	}
	return black, white
}

// maxHandicap is the largest fixed handicap for a board size: none below
// 7x7, four on 7x7 and even sizes, nine otherwise.
func maxHandicap(size int) int {
	switch {
	case size < 7:
		return 0
	case size == 7 || size%2 == 0:
		return 4
	default:
		return 9
	}
}

// handicapPattern returns the standard handicap points for n stones, in
// the order GTP lists them.
func handicapPattern(size, n int) ([]gtpprotocol.Vertex, bool) {
	if n < 2 || n > maxHandicap(size) {
		return nil, false
	}

	edge := 3
	if size >= 13 {
		edge = 4
	}
	lo, hi, mid := edge, size+1-edge, (size+1)/2
	star := []gtpprotocol.Vertex{
		gtpprotocol.MustVertex(lo, lo),
		gtpprotocol.MustVertex(hi, hi),
		gtpprotocol.MustVertex(lo, hi),
		gtpprotocol.MustVertex(hi, lo),
		gtpprotocol.MustVertex(lo, mid),
		gtpprotocol.MustVertex(hi, mid),
		gtpprotocol.MustVertex(mid, lo),
		gtpprotocol.MustVertex(mid, hi),
	}
	tengen := gtpprotocol.MustVertex(mid, mid)

	if n%2 == 1 && n >= 5 {
		points := append([]gtpprotocol.Vertex{}, star[:n-1]...)
		return append(points, tengen), true
	}
	return append([]gtpprotocol.Vertex{}, star[:n]...), true
}
