package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Unknown CellStatus = -2
	Flagged CellStatus = -1
	Mine    CellStatus = 64
	// 0-8 for a revealed cell with that many mined neighbors
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "-"
	case Flagged:
		return "F"
	case Mine:
		return "*"
	case 0:
		return "."
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is a row-major snapshot of what the player can see.
type Grid []CellStatus

func (g Grid) ToString(width int) string {
	var b strings.Builder
	if width <= 0 {
		return ""
	}
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Rows splits the grid into rows of the given width.
func (g Grid) Rows(width int) [][]CellStatus {
	if width <= 0 {
		return nil
	}
	rows := make([][]CellStatus, 0, len(g)/width)
	for y := range len(g) / width {
		rows = append(rows, g[y*width:(y+1)*width])
	}
	return rows
}
