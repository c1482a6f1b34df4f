package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectWS(t *testing.T) {
	g := newTestHandler(t, 0)
	srv := httptest.NewServer(http.HandlerFunc(g.ConnectWS))
	defer srv.Close()

	c, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer c.Close()

	send := func(msg string) view {
		t.Helper()
		require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte(msg)))
		var v view
		require.NoError(t, c.ReadJSON(&v))
		return v
	}

	v := send("g")
	assert.Equal(t, "selecting_difficulty", v.Mode)

	v = send("n 3:3:2")
	assert.Equal(t, "playing", v.Mode)
	assert.Equal(t, 3, v.Rows)
	assert.Equal(t, 2, v.MineCount)

	v = send("bogus")
	assert.Equal(t, ErrUnknownCommand.Error(), v.Error)

	v = send("o 0 2")
	assert.Equal(t, 4, v.CellsRevealed)
	assert.Empty(t, v.Error)

	v = send("f 0 0\no 2 0")
	assert.Equal(t, "ended", v.Mode)
	assert.True(t, v.Won)
	assert.Equal(t, 7, v.CellsRevealed)
	assert.Equal(t, 1, v.FlagsPlaced)

	v = send("o 1 1\nd easy")
	assert.Equal(t, "playing", v.Mode)
	assert.Equal(t, 9, v.Rows)
	assert.Equal(t, 0, v.CellsRevealed)
}

func TestConnectWSRejectsPlainHTTP(t *testing.T) {
	g := newTestHandler(t, 0)
	rec := httptest.NewRecorder()
	g.ConnectWS(rec, httptest.NewRequest(http.MethodGet, "/v1/game/connect", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
