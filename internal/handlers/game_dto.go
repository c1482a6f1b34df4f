package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-classic/internal/mines"
	"github.com/vancomm/minesweeper-classic/internal/session"
)

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type DifficultyDTO struct {
	Level string `schema:"level,required"`
}

func ParseDifficultyDTO(src map[string][]string) (session.Difficulty, error) {
	var dto DifficultyDTO
	if err := newDecoder().Decode(&dto, src); err != nil {
		return 0, err
	}
	return session.ParseDifficulty(dto.Level)
}

type CustomGameDTO struct {
	Rows      int `schema:"rows,required"`
	Cols      int `schema:"cols,required"`
	MineCount int `schema:"mine_count,required"`
}

func ParseCustomGameDTO(src map[string][]string) (mines.GameParams, error) {
	var dto CustomGameDTO
	err := newDecoder().Decode(&dto, src)
	return mines.GameParams(dto), err
}

type ClickDTO struct {
	Row    int    `schema:"row,required"`
	Col    int    `schema:"col,required"`
	Button string `schema:"button"`
}

// ParseClickDTO reads a click; the button defaults to left.
func ParseClickDTO(src map[string][]string) (mines.Point, session.Button, error) {
	var dto ClickDTO
	if err := newDecoder().Decode(&dto, src); err != nil {
		return mines.Point{}, 0, err
	}
	button := session.LeftButton
	if dto.Button != "" {
		var err error
		if button, err = session.ParseButton(dto.Button); err != nil {
			return mines.Point{}, 0, err
		}
	}
	return mines.Point{Row: dto.Row, Col: dto.Col}, button, nil
}

type KeyDTO struct {
	Key string `schema:"key,required"`
}

func ParseKeyDTO(src map[string][]string) (string, error) {
	var dto KeyDTO
	err := newDecoder().Decode(&dto, src)
	return dto.Key, err
}

type SessionDTO struct {
	RoundId   string              `json:"round_id"`
	Mode      session.Mode        `json:"mode"`
	Outcome   session.Outcome     `json:"outcome"`
	Rows      int                 `json:"rows"`
	Cols      int                 `json:"cols"`
	MineCount int                 `json:"mine_count"`
	Grid      mines.Grid          `json:"grid"`
	Custom    session.CustomEntry `json:"custom"`
	session.Stats
}

func NewSessionDTO(s *session.Session) *SessionDTO {
	board := s.Board()
	return &SessionDTO{
		RoundId:   s.Round().String(),
		Mode:      s.Mode(),
		Outcome:   s.Outcome(),
		Rows:      board.Rows(),
		Cols:      board.Cols(),
		MineCount: board.MineCount(),
		Grid:      board.PlayerGrid(),
		Custom:    s.Custom(),
		Stats:     s.Stats(),
	}
}
