package handlers

import (
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-classic/internal/config"
	"github.com/vancomm/minesweeper-classic/internal/session"
)

// GameHandler serves a single player session. Every request takes mu for the
// whole read-modify-render cycle.
type GameHandler struct {
	log logrus.FieldLogger
	ws  *config.WebSocket

	mu      sync.Mutex
	session *session.Session
}

func NewGameHandler(
	log logrus.FieldLogger,
	s *session.Session,
	ws *config.WebSocket,
) *GameHandler {
	return &GameHandler{
		log:     log,
		ws:      ws,
		session: s,
	}
}

// do runs fn under the session lock and returns the resulting view.
func (g *GameHandler) do(fn func(s *session.Session) error) (*SessionDTO, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if fn != nil {
		if err := fn(g.session); err != nil {
			return nil, err
		}
	}
	return NewSessionDTO(g.session), nil
}

func (g *GameHandler) reply(w http.ResponseWriter, dto *SessionDTO, err error) {
	if err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	SendJSONOrLog(w, g.log, dto)
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	dto, err := g.do(nil)
	g.reply(w, dto, err)
}

func (g *GameHandler) SelectDifficulty(w http.ResponseWriter, r *http.Request) {
	d, err := ParseDifficultyDTO(r.URL.Query())
	if err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	dto, err := g.do(func(s *session.Session) error {
		return s.SelectDifficulty(d)
	})
	g.reply(w, dto, err)
}

func (g *GameHandler) StartCustom(w http.ResponseWriter, r *http.Request) {
	params, err := ParseCustomGameDTO(r.URL.Query())
	if err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	dto, err := g.do(func(s *session.Session) error {
		return s.Start(params)
	})
	g.reply(w, dto, err)
}

func (g *GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	pos, button, err := ParseClickDTO(r.URL.Query())
	if err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	dto, err := g.do(func(s *session.Session) error {
		s.Click(pos.Row, pos.Col, button)
		return nil
	})
	g.reply(w, dto, err)
}

func (g *GameHandler) Key(w http.ResponseWriter, r *http.Request) {
	key, err := ParseKeyDTO(r.URL.Query())
	if err != nil {
		SendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	dto, err := g.do(func(s *session.Session) error {
		return s.Key(key)
	})
	g.reply(w, dto, err)
}
