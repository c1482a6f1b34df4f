package config

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

func NewWebSocket(log logrus.FieldLogger) *WebSocket {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			log.Debug("\tws origin: ", r.Host)
			return true
		},
	}

	return &WebSocket{
		Upgrader: upgrader,
	}
}
