package app

import (
	"github.com/vancomm/minesweeper-classic/internal/handlers"
)

func (a *App) loadRoutes() {
	a.router.HandleFunc("GET /v1/status", handlers.Status)

	a.router.HandleFunc("GET /v1/game", a.game.Fetch)
	a.router.HandleFunc("POST /v1/game/difficulty", a.game.SelectDifficulty)
	a.router.HandleFunc("POST /v1/game/custom", a.game.StartCustom)
	a.router.HandleFunc("POST /v1/game/click", a.game.Click)
	a.router.HandleFunc("POST /v1/game/key", a.game.Key)
	a.router.HandleFunc("GET /v1/game/connect", a.game.ConnectWS)
}
