package app

import (
	"net/http"

	"go.uber.org/zap"

	"example.com/notes-web/internal/config"
	"example.com/notes-web/internal/middleware"
	"example.com/notes-web/internal/notes"
	"example.com/notes-web/internal/service"
)

const healthPath = "/health"

// App owns the note store for the lifetime of the process and the
// handler tree serving it.
type App struct {
	Store   *notes.MemoryStore
	Handler http.Handler

	cfg config.Config
}

func New(cfg config.Config, log *zap.SugaredLogger) *App {
	store := notes.NewMemoryStore()
	h := notes.NewHandlers(service.New(store), log, cfg.PreviewLength)

	return &App{
		Store:   store,
		Handler: h.Routes(middleware.Stack(log, healthPath)...),
		cfg:     cfg,
	}
}

// Server returns an http.Server for the app, configured from cfg.HTTP.
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           a.Handler,
		ReadHeaderTimeout: a.cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       a.cfg.HTTP.ReadTimeout,
		WriteTimeout:      a.cfg.HTTP.WriteTimeout,
		IdleTimeout:       a.cfg.HTTP.IdleTimeout,
	}
}
