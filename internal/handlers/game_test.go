package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-classic/internal/config"
	"github.com/vancomm/minesweeper-classic/internal/session"
)

// zeros always draws the first candidate, so a new 3x3 board with two mines
// has them at (0,0) and (2,2).
type zeros struct{}

func (zeros) IntN(int) int { return 0 }

func newTestHandler(t *testing.T, maxCells int) *GameHandler {
	t.Helper()
	logger, _ := test.NewNullLogger()
	s := session.New(zeros{}, logger)
	s.SetMaxCells(maxCells)
	return NewGameHandler(logger, s, config.NewWebSocket(logger))
}

type view struct {
	Mode          string     `json:"mode"`
	Outcome       string     `json:"outcome"`
	Rows          int        `json:"rows"`
	Cols          int        `json:"cols"`
	MineCount     int        `json:"mine_count"`
	Grid          []int      `json:"grid"`
	CellsRevealed int        `json:"cells_revealed"`
	FlagsPlaced   int        `json:"flags_placed"`
	ClickCount    int        `json:"click_count"`
	GameOver      bool       `json:"game_over"`
	Won           bool       `json:"won"`
	RoundId       string     `json:"round_id"`
	Custom        customView `json:"custom"`
	Error         string     `json:"error"`
}

type customView struct {
	Field string `json:"field"`
	Input string `json:"input"`
}

func call(t *testing.T, h http.HandlerFunc, method, target string) (int, view) {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(method, target, nil))
	var v view
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return rec.Code, v
}

func TestFetch(t *testing.T) {
	g := newTestHandler(t, 0)

	code, v := call(t, g.Fetch, http.MethodGet, "/v1/game")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "selecting_difficulty", v.Mode)
	assert.Equal(t, "none", v.Outcome)
	assert.Equal(t, 9, v.Rows)
	assert.Equal(t, 9, v.Cols)
	assert.Equal(t, 10, v.MineCount)
	assert.Len(t, v.Grid, 81)
	for _, c := range v.Grid {
		assert.Equal(t, -2, c)
	}
	assert.NotEmpty(t, v.RoundId)
}

func TestSelectDifficulty(t *testing.T) {
	g := newTestHandler(t, 0)

	code, v := call(t, g.SelectDifficulty, http.MethodPost, "/v1/game/difficulty?level=hard")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "playing", v.Mode)
	assert.Equal(t, 16, v.Rows)
	assert.Equal(t, 30, v.Cols)
	assert.Equal(t, 99, v.MineCount)

	code, v = call(t, g.SelectDifficulty, http.MethodPost, "/v1/game/difficulty?level=expert")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, session.ErrBadDifficulty.Error(), v.Error)

	code, _ = call(t, g.SelectDifficulty, http.MethodPost, "/v1/game/difficulty")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestStartCustom(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"ok", "rows=3&cols=3&mine_count=2", http.StatusOK},
		{"too many mines", "rows=3&cols=3&mine_count=9", http.StatusBadRequest},
		{"no rows", "rows=0&cols=3&mine_count=0", http.StatusBadRequest},
		{"missing param", "rows=3&cols=3", http.StatusBadRequest},
		{"not a number", "rows=three&cols=3&mine_count=1", http.StatusBadRequest},
		{"over max cells", "rows=20&cols=20&mine_count=1", http.StatusBadRequest},
		{"overflowing size", "rows=4&cols=4611686018427387905&mine_count=1", http.StatusBadRequest},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := newTestHandler(t, 100)
			code, v := call(t, g.StartCustom, http.MethodPost, "/v1/game/custom?"+test.query)
			assert.Equal(t, test.status, code)
			if code == http.StatusOK {
				assert.Equal(t, "playing", v.Mode)
				assert.Equal(t, 2, v.MineCount)
			} else {
				assert.NotEmpty(t, v.Error)
			}
		})
	}
}

func TestClick(t *testing.T) {
	g := newTestHandler(t, 0)
	call(t, g.StartCustom, http.MethodPost, "/v1/game/custom?rows=3&cols=3&mine_count=2")

	code, v := call(t, g.Click, http.MethodPost, "/v1/game/click?row=2&col=0&button=right")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, v.FlagsPlaced)
	assert.Equal(t, -1, v.Grid[6])

	_, v = call(t, g.Click, http.MethodPost, "/v1/game/click?row=2&col=0&button=right")
	assert.Equal(t, 0, v.FlagsPlaced)

	_, v = call(t, g.Click, http.MethodPost, "/v1/game/click?row=0&col=2")
	assert.Equal(t, 4, v.CellsRevealed)
	assert.Equal(t, []int{-2, 1, 0, -2, 2, 1, -2, -2, -2}, v.Grid)

	_, v = call(t, g.Click, http.MethodPost, "/v1/game/click?row=2&col=0")
	assert.Equal(t, "ended", v.Mode)
	assert.Equal(t, "won", v.Outcome)
	assert.True(t, v.Won)
	assert.Equal(t, 7, v.CellsRevealed)
	assert.Equal(t, 4, v.ClickCount)

	code, v = call(t, g.Click, http.MethodPost, "/v1/game/click?row=0&col=0&button=middle")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, session.ErrBadButton.Error(), v.Error)
}

func TestClickMine(t *testing.T) {
	g := newTestHandler(t, 0)
	call(t, g.StartCustom, http.MethodPost, "/v1/game/custom?rows=3&cols=3&mine_count=2")

	_, v := call(t, g.Click, http.MethodPost, "/v1/game/click?row=0&col=0&button=left")
	assert.Equal(t, "lost", v.Outcome)
	assert.True(t, v.GameOver)
	assert.Equal(t, 64, v.Grid[0])
	assert.Equal(t, 64, v.Grid[8])
	assert.Equal(t, 2, v.CellsRevealed)
}

func TestKey(t *testing.T) {
	g := newTestHandler(t, 0)
	call(t, g.SelectDifficulty, http.MethodPost, "/v1/game/difficulty?level=custom")

	var v view
	for _, key := range []string{"4", "enter", "5", "enter", "3"} {
		_, v = call(t, g.Key, http.MethodPost, "/v1/game/key?key="+key)
	}
	assert.Equal(t, "mines", v.Custom.Field)
	assert.Equal(t, "3", v.Custom.Input)

	_, v = call(t, g.Key, http.MethodPost, "/v1/game/key?key=enter")
	assert.Equal(t, "playing", v.Mode)
	assert.Equal(t, 4, v.Rows)
	assert.Equal(t, 5, v.Cols)
	assert.Equal(t, 3, v.MineCount)

	code, _ := call(t, g.Key, http.MethodPost, "/v1/game/key")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestKeyRejectsBadBoard(t *testing.T) {
	g := newTestHandler(t, 0)
	call(t, g.SelectDifficulty, http.MethodPost, "/v1/game/difficulty?level=custom")

	var (
		code int
		v    view
	)
	for _, key := range []string{"1", "enter", "1", "enter", "1", "enter"} {
		code, v = call(t, g.Key, http.MethodPost, "/v1/game/key?key="+key)
	}
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, v.Error)

	_, v = call(t, g.Fetch, http.MethodGet, "/v1/game")
	assert.Equal(t, "selecting_difficulty", v.Mode)
	assert.Equal(t, "rows", v.Custom.Field)
}

func TestKeyRespectsMaxCells(t *testing.T) {
	g := newTestHandler(t, 100)
	call(t, g.SelectDifficulty, http.MethodPost, "/v1/game/difficulty?level=custom")

	var (
		code int
		v    view
	)
	for _, key := range []string{"5", "0", "enter", "5", "0", "enter", "1", "enter"} {
		code, v = call(t, g.Key, http.MethodPost, "/v1/game/key?key="+key)
	}
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, v.Error, session.ErrBoardTooLarge.Error())

	_, v = call(t, g.Fetch, http.MethodGet, "/v1/game")
	assert.Equal(t, "selecting_difficulty", v.Mode)
	assert.Equal(t, 9, v.Rows)
}

func TestStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	Status(rec, httptest.NewRequest(http.MethodGet, "/v1/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
