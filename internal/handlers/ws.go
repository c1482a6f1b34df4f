package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-classic/internal/session"
)

// ConnectWS upgrades the connection and runs a command loop against the
// session. Each text message may carry several newline-separated commands;
// the session view is written back after every message.
func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("upgrade")
		return
	}
	defer c.Close()

	log := g.log.WithField("remote", r.RemoteAddr)
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		log.Debug("\t> ", text)

		dto, err := g.do(func(s *session.Session) error {
			for _, cmd := range byPiece(text, "\n") {
				if err := g.executeCommand(s, cmd); err != nil {
					return err
				}
			}
			return nil
		})

		var payload any = dto
		if err != nil {
			log.WithFields(logrus.Fields{
				"command": text,
				"error":   err,
			}).Info("command rejected")
			payload = wrapError(err)
		}
		if err := c.WriteJSON(payload); err != nil {
			log.WithError(err).Error("write")
			break
		}
		log.Debug("\t< <session data>")
	}
}
