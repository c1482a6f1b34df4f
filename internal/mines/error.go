package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParams   = errors.New("invalid game params")
	ErrBadParamsString = errors.New("malformed game params string")
)

// ConfigError reports game params a board cannot be built from.
type ConfigError struct {
	Rows, Cols, MineCount int
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	switch {
	case e.Rows <= 0:
		return fmt.Sprintf("cannot create a board with %d rows", e.Rows)
	case e.Cols <= 0:
		return fmt.Sprintf("cannot create a board with %d columns", e.Cols)
	case e.Cols > MaxCells/e.Rows:
		return fmt.Sprintf(
			"a %dx%d board has more than %d cells", e.Rows, e.Cols, MaxCells,
		)
	case e.MineCount < 0:
		return fmt.Sprintf("cannot create a board with %d mines", e.MineCount)
	case e.MineCount >= e.Rows*e.Cols:
		return fmt.Sprintf(
			"not enough room for %d mines on a %dx%d board (at most %d)",
			e.MineCount, e.Rows, e.Cols, e.Rows*e.Cols-1,
		)
	default:
		return "invalid game params"
	}
}

func (e ConfigError) Is(target error) bool {
	return target == ErrInvalidParams
}
