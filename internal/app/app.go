package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-classic/internal/config"
	"github.com/vancomm/minesweeper-classic/internal/handlers"
	"github.com/vancomm/minesweeper-classic/internal/middleware"
	"github.com/vancomm/minesweeper-classic/internal/mines"
	"github.com/vancomm/minesweeper-classic/internal/session"
)

type App struct {
	log    logrus.FieldLogger
	cfg    config.Config
	router *http.ServeMux
	game   *handlers.GameHandler
}

// New builds the app around a fresh session drawing from rnd.
func New(log logrus.FieldLogger, cfg config.Config, rnd mines.Source) *App {
	s := session.New(rnd, log.WithField("component", "session"))
	s.SetMaxCells(cfg.MaxCells)

	app := &App{
		log:    log,
		cfg:    cfg,
		router: http.NewServeMux(),
		game: handlers.NewGameHandler(
			log.WithField("component", "game"),
			s,
			config.NewWebSocket(log),
		),
	}
	app.loadRoutes()

	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.log),
		middleware.Cors(),
	)
}

// Start serves until ctx is cancelled, then shuts the server down.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.cfg.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.Infof("ready to serve @ %s", a.cfg.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), a.cfg.ShutdownTimeout.Duration,
		)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
