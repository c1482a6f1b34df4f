package session

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-classic/internal/mines"
)

type Stats struct {
	FlagsPlaced   int  `json:"flags_placed"`
	CellsRevealed int  `json:"cells_revealed"`
	ClickCount    int  `json:"click_count"`
	GameOver      bool `json:"game_over"`
	Won           bool `json:"won"`
}

// CustomEntry is the state of the custom board size form.
type CustomEntry struct {
	Field Field  `json:"field"`
	Input string `json:"input"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Mines int    `json:"mines"`
}

var defaultCustom = CustomEntry{Rows: 10, Cols: 10, Mines: 10}

// maxInputDigits caps a typed custom field.
const maxInputDigits = 6

var ErrBoardTooLarge = errors.New("board is too large")

// Session drives one player's rounds. It is not safe for concurrent use.
type Session struct {
	log    logrus.FieldLogger
	rnd    mines.Source
	mode   Mode
	board  *mines.Board
	params mines.GameParams
	stats  Stats
	round  uuid.UUID
	custom CustomEntry

	maxCells int
}

// New returns a session waiting for a difficulty, with an easy board
// prepared.
func New(rnd mines.Source, log logrus.FieldLogger) *Session {
	s := &Session{
		log:    log,
		rnd:    rnd,
		mode:   SelectingDifficulty,
		custom: defaultCustom,
	}
	params, _ := Easy.Params()
	if err := s.initBoard(params); err != nil {
		panic(err) // presets are always valid
	}
	return s
}

func (s *Session) Mode() Mode { return s.mode }
func (s *Session) Board() *mines.Board { return s.board }
func (s *Session) Params() mines.GameParams { return s.params }
func (s *Session) Stats() Stats { return s.stats }
func (s *Session) Round() uuid.UUID { return s.round }
func (s *Session) Custom() CustomEntry { return s.custom }

// SetMaxCells limits the size of boards started with [Session.Start] and
// custom entry. Zero leaves only the [mines.MaxCells] ceiling.
func (s *Session) SetMaxCells(n int) {
	s.maxCells = n
}

func (s *Session) Outcome() Outcome {
	switch {
	case s.stats.Won:
		return Won
	case s.stats.GameOver:
		return Lost
	default:
		return None
	}
}

// initBoard replaces the board and resets every counter.
func (s *Session) initBoard(p mines.GameParams) error {
	board, err := mines.NewBoard(p, s.rnd)
	if err != nil {
		return err
	}
	s.board = board
	s.params = p
	s.stats = Stats{}
	s.round = uuid.New()
	s.log.WithFields(logrus.Fields{
		"round":  s.round,
		"params": p.String(),
	}).Debug("new round")
	return nil
}

// Start begins a round on p right away, from any mode.
func (s *Session) Start(p mines.GameParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if s.maxCells > 0 && p.Cells() > s.maxCells {
		return fmt.Errorf("%w: %s has more than %d cells", ErrBoardTooLarge, p, s.maxCells)
	}
	if err := s.initBoard(p); err != nil {
		return err
	}
	s.mode = Playing
	s.custom.Field = NoField
	s.custom.Input = ""
	return nil
}

// SelectDifficulty picks a preset, or opens custom entry. It is ignored
// outside of difficulty selection.
func (s *Session) SelectDifficulty(d Difficulty) error {
	if s.mode != SelectingDifficulty {
		return nil
	}
	if d == Custom {
		s.custom.Field = RowsField
		s.custom.Input = ""
		return nil
	}
	params, ok := d.Params()
	if !ok {
		return ErrBadDifficulty
	}
	return s.Start(params)
}

// Key feeds one key token to the custom entry form: a digit, "backspace" or
// "enter". Committing the mine count starts the round; if the entered params
// are rejected the error is returned and entry restarts at the row count.
func (s *Session) Key(token string) error {
	if s.mode != SelectingDifficulty || s.custom.Field == NoField {
		return nil
	}

	switch token {
	case "backspace":
		if n := len(s.custom.Input); n > 0 {
			s.custom.Input = s.custom.Input[:n-1]
		}
		return nil
	case "enter":
		return s.commitField()
	}

	if len(token) == 1 && '0' <= token[0] && token[0] <= '9' &&
		len(s.custom.Input) < maxInputDigits {
		s.custom.Input += token
	}
	return nil
}

func (s *Session) commitField() error {
	val, ok := parseDigits(s.custom.Input)
	if !ok {
		return nil
	}
	s.custom.Input = ""

	switch s.custom.Field {
	case RowsField:
		s.custom.Rows = val
		s.custom.Field = ColsField
	case ColsField:
		s.custom.Cols = val
		s.custom.Field = MinesField
	case MinesField:
		s.custom.Mines = val
		p := mines.GameParams{
			Rows:      s.custom.Rows,
			Cols:      s.custom.Cols,
			MineCount: s.custom.Mines,
		}
		if err := s.Start(p); err != nil {
			s.log.WithField("params", p.String()).Info("custom board rejected")
			s.custom.Field = RowsField
			return err
		}
	}
	return nil
}

func parseDigits(in string) (int, bool) {
	if in == "" {
		return 0, false
	}
	for i := 0; i < len(in); i++ {
		if in[i] < '0' || in[i] > '9' {
			return 0, false
		}
	}
	val, err := strconv.Atoi(in)
	return val, err == nil
}

// Click applies a pointer click on a cell. A click on a finished round starts
// over at difficulty selection.
func (s *Session) Click(row, col int, button Button) {
	switch s.mode {
	case SelectingDifficulty:
		return
	case Ended:
		s.restart()
		return
	}

	if !s.board.InBounds(row, col) {
		return
	}
	s.stats.ClickCount++

	cell, _ := s.board.Cell(row, col)
	switch button {
	case LeftButton:
		if cell.IsFlagged() || cell.IsRevealed() {
			break
		}
		if s.board.RevealAt(row, col) == mines.HitMine {
			s.stats.GameOver = true
			s.board.RevealAllMines()
		} else if s.board.CheckWin() {
			s.stats.Won = true
		}
	case RightButton:
		s.board.ToggleFlagAt(row, col)
	}

	s.stats.CellsRevealed = s.board.CountRevealed()
	s.stats.FlagsPlaced = s.board.CountFlagged()

	if s.stats.GameOver || s.stats.Won {
		s.mode = Ended
		s.log.WithFields(logrus.Fields{
			"round":   s.round,
			"outcome": s.Outcome().String(),
			"clicks":  s.stats.ClickCount,
		}).Info("round over")
	}
}

func (s *Session) restart() {
	if err := s.initBoard(s.params); err != nil {
		// params were accepted once already
		s.log.WithError(err).Error("unable to restart round")
		return
	}
	s.mode = SelectingDifficulty
	s.custom.Field = NoField
	s.custom.Input = ""
}
