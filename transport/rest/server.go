package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/gogame-backend/pkg/handlers"
)

type Server struct {
	logger          *slog.Logger
	handler         http.Handler
	shutdownTimeout time.Duration
}

func New(logger *slog.Logger, uGame uGame, healthCheck handlers.HealthCheck, defaultLimit int, shutdownTimeout time.Duration) *Server {
	log := logger.With("component", "rest")
	h := newGameHandlers(logger, uGame, defaultLimit)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/ping", handlers.PingHandler(healthCheck))

	r.Route("/api", func(r chi.Router) {
		r.Post("/players", h.createPlayer)
		r.Get("/participants", h.totalParticipants)
		r.Get("/leaderboard", h.leaderboard)

		r.Route("/players/{id}", func(r chi.Router) {
			r.Get("/", h.playerStats)
			r.Get("/game", h.gameState)
			r.Post("/game", h.createGame)
			r.Post("/game/stones", h.placeStone)
			r.Post("/game/pass", h.passTurn)
		})
	})

	return &Server{
		logger:          log,
		handler:         r,
		shutdownTimeout: shutdownTimeout,
	}
}

func (that *Server) Handler() http.Handler {
	return that.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), that.shutdownTimeout)
	defer cancel()

	that.logger.Info("shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
