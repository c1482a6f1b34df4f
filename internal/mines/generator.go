package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"strings"
)

type GameParams struct {
	Rows, Cols, MineCount int
}

func (p GameParams) Unpack() (rows int, cols int, mc int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Rows * p.Cols
}

// MaxCells bounds rows*cols for any board.
const MaxCells = 1 << 20

// Validate reports a [ConfigError] unless 0 < rows, 0 < cols,
// rows*cols <= [MaxCells] and 0 <= mines < rows*cols. The size is checked by
// division so oversized params never overflow.
func (p GameParams) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 || p.Cols > MaxCells/p.Rows ||
		p.MineCount < 0 || p.MineCount >= p.Cells() {
		return ConfigError{Rows: p.Rows, Cols: p.Cols, MineCount: p.MineCount}
	}
	return nil
}

func (p GameParams) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

// ParseParams reads params in the "rows:cols:mines" form produced by
// [GameParams.String]. The result is not validated.
func ParseParams(s string) (GameParams, error) {
	var p GameParams
	fields := strings.ReplaceAll(strings.TrimSpace(s), ":", " ")
	n, err := fmt.Sscanf(fields, "%d %d %d", &p.Rows, &p.Cols, &p.MineCount)
	if n != 3 || err != nil {
		return GameParams{}, fmt.Errorf(
			`%w (s = "%s", n = %d, err = %v)`, ErrBadParamsString, s, n, err,
		)
	}
	return p, nil
}

func (p GameParams) PointInBounds(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}

// Source supplies uniformly distributed ints in [0, n). [*rand.Rand]
// satisfies it.
type Source interface {
	IntN(n int) int
}

// NewRand returns a PCG generator. A nil seed draws one from the runtime.
func NewRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// placeMines picks p.MineCount distinct positions off the candidate list.
// Every draw removes the picked slot by moving the last live candidate into
// it, so exactly MineCount draws are made whatever the density.
func (p GameParams) placeMines(rnd Source) []bool {
	grid := make([]bool, p.Cells())

	candidates := make([]int, p.Cells())
	for i := range candidates {
		candidates[i] = i
	}

	k := len(candidates)
	for range p.MineCount {
		i := rnd.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return grid
}
