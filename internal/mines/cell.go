package mines

// Cell is one square of a [Board]. Neighbors are held as row-major indices
// into the owning board's grid.
type Cell struct {
	mine      bool
	revealed  bool
	flagged   bool
	adjacent  int
	neighbors []int
}

func (c Cell) IsMine() bool { return c.mine }
func (c Cell) IsRevealed() bool { return c.revealed }
func (c Cell) IsFlagged() bool { return c.flagged }
func (c Cell) AdjacentMines() int { return c.adjacent }
func (c Cell) NeighborCount() int { return len(c.neighbors) }

func (c *Cell) addNeighbor(i int) {
	c.neighbors = append(c.neighbors, i)
}

func (c *Cell) toggleFlag() {
	if c.revealed {
		return
	}
	c.flagged = !c.flagged
}

// countNeighborMines must run after the neighbor graph is wired and every
// mine is placed; the count is never refreshed afterwards.
func (c *Cell) countNeighborMines(cells []Cell) {
	n := 0
	for _, i := range c.neighbors {
		if cells[i].mine {
			n++
		}
	}
	c.adjacent = n
}

// Status is the cell as the player sees it.
func (c Cell) Status() CellStatus {
	switch {
	case c.revealed && c.mine:
		return Mine
	case c.revealed:
		return CellStatus(c.adjacent)
	case c.flagged:
		return Flagged
	default:
		return Unknown
	}
}
