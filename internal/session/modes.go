package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-classic/internal/mines"
)

type Mode int

const (
	SelectingDifficulty Mode = iota
	Playing
	Ended
)

func (m Mode) String() string {
	switch m {
	case SelectingDifficulty:
		return "selecting_difficulty"
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

type Outcome int

const (
	None Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Custom
)

var ErrBadDifficulty = errors.New("difficulty must be one of 'easy', 'medium', 'hard', 'custom'")

var presets = map[Difficulty]mines.GameParams{
	Easy:   {Rows: 9, Cols: 9, MineCount: 10},
	Medium: {Rows: 16, Cols: 16, MineCount: 40},
	Hard:   {Rows: 16, Cols: 30, MineCount: 99},
}

// Params returns the preset board for d. Custom has none.
func (d Difficulty) Params() (mines.GameParams, bool) {
	p, ok := presets[d]
	return p, ok
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

func ParseDifficulty(s string) (d Difficulty, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		d = Easy
	case "medium":
		d = Medium
	case "hard":
		d = Hard
	case "custom":
		d = Custom
	default:
		err = ErrBadDifficulty
	}
	return
}

type Button int

const (
	LeftButton Button = iota + 1
	RightButton
)

var ErrBadButton = errors.New("button must be one of 'left', 'right'")

func (b Button) String() string {
	switch b {
	case LeftButton:
		return "left"
	case RightButton:
		return "right"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

func ParseButton(s string) (b Button, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "leftbutton":
		b = LeftButton
	case "right", "rightbutton":
		b = RightButton
	default:
		err = ErrBadButton
	}
	return
}

// Field is the custom board dimension currently being typed.
type Field int

const (
	NoField Field = iota
	RowsField
	ColsField
	MinesField
)

func (f Field) String() string {
	switch f {
	case NoField:
		return ""
	case RowsField:
		return "rows"
	case ColsField:
		return "cols"
	case MinesField:
		return "mines"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
