package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()

type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type RevealOutcome int

const (
	Continue RevealOutcome = iota
	HitMine
)

func (o RevealOutcome) String() string {
	if o == HitMine {
		return "hit mine"
	}
	return "continue"
}

// Board is a rows x cols grid of cells stored row-major.
type Board struct {
	params GameParams
	cells  []Cell
}

// NewBoard builds a fresh board. Mines are drawn from rnd, then neighbors are
// wired, then every cell counts its mined neighbors.
func NewBoard(p GameParams, rnd Source) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		params: p,
		cells:  make([]Cell, p.Cells()),
	}

	for i, mine := range p.placeMines(rnd) {
		b.cells[i].mine = mine
	}

	for r := range p.Rows {
		for c := range p.Cols {
			cell := &b.cells[r*p.Cols+c]
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if p.PointInBounds(r+dr, c+dc) {
						cell.addNeighbor((r+dr)*p.Cols + (c + dc))
					}
				}
			}
		}
	}

	for i := range b.cells {
		b.cells[i].countNeighborMines(b.cells)
	}

	Log.WithFields(logrus.Fields{
		"rows":  p.Rows,
		"cols":  p.Cols,
		"mines": p.MineCount,
	}).Debug("board generated")

	return b, nil
}

func (b *Board) Params() GameParams { return b.params }
func (b *Board) Rows() int { return b.params.Rows }
func (b *Board) Cols() int { return b.params.Cols }
func (b *Board) MineCount() int { return b.params.MineCount }

func (b *Board) InBounds(row, col int) bool {
	return b.params.PointInBounds(row, col)
}

func (b *Board) index(row, col int) int {
	return row*b.params.Cols + col
}

func (b *Board) point(i int) Point {
	return Point{Row: i / b.params.Cols, Col: i % b.params.Cols}
}

// Cell returns a copy of the cell at row, col.
func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[b.index(row, col)], true
}

func (b *Board) Neighbors(row, col int) []Point {
	if !b.InBounds(row, col) {
		return nil
	}
	cell := &b.cells[b.index(row, col)]
	points := make([]Point, 0, len(cell.neighbors))
	for _, i := range cell.neighbors {
		points = append(points, b.point(i))
	}
	return points
}

func (b *Board) Mines() []Point {
	points := make([]Point, 0, b.params.MineCount)
	for i := range b.cells {
		if b.cells[i].mine {
			points = append(points, b.point(i))
		}
	}
	return points
}

// RevealAt opens the cell at row, col. Out of bounds, revealed and flagged
// cells are left alone and report [Continue].
func (b *Board) RevealAt(row, col int) RevealOutcome {
	if !b.InBounds(row, col) {
		return Continue
	}
	i := b.index(row, col)
	if !b.reveal(i) {
		return Continue
	}
	if b.cells[i].mine {
		return HitMine
	}
	return Continue
}

// reveal opens cell i and floods outward through non-mine cells with no mined
// neighbors. A cell is marked revealed as it is queued, so none is queued
// twice. Flagged cells stop the flood.
func (b *Board) reveal(i int) bool {
	start := &b.cells[i]
	if start.revealed || start.flagged {
		return false
	}
	start.revealed = true

	todo := newCellTodo(len(b.cells))
	todo.add(i)
	for j, ok := todo.pop(); ok; j, ok = todo.pop() {
		cell := &b.cells[j]
		if cell.mine || cell.adjacent != 0 {
			continue
		}
		for _, k := range cell.neighbors {
			next := &b.cells[k]
			if next.revealed || next.flagged {
				continue
			}
			next.revealed = true
			todo.add(k)
		}
	}
	return true
}

func (b *Board) ToggleFlagAt(row, col int) {
	if !b.InBounds(row, col) {
		return
	}
	b.cells[b.index(row, col)].toggleFlag()
}

// RevealAllMines exposes every mine after a loss.
func (b *Board) RevealAllMines() {
	for i := range b.cells {
		if b.cells[i].mine {
			b.cells[i].revealed = true
		}
	}
}

// CheckWin reports whether every safe cell is open. Flags are not consulted.
func (b *Board) CheckWin() bool {
	for i := range b.cells {
		if !b.cells[i].mine && !b.cells[i].revealed {
			return false
		}
	}
	return true
}

func (b *Board) CountRevealed() (count int) {
	for i := range b.cells {
		if b.cells[i].revealed {
			count++
		}
	}
	return
}

func (b *Board) CountFlagged() (count int) {
	for i := range b.cells {
		if b.cells[i].flagged {
			count++
		}
	}
	return
}

func (b *Board) PlayerGrid() Grid {
	grid := make(Grid, len(b.cells))
	for i := range b.cells {
		grid[i] = b.cells[i].Status()
	}
	return grid
}

func (b *Board) String() string {
	return b.PlayerGrid().ToString(b.params.Cols)
}
