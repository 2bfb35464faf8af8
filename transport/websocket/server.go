package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gogame-backend/internal/entity"
	"github.com/rocketscienceinc/gogame-backend/internal/usecase"
)

const sendBuffer = 16

var errConnectionClosed = errors.New("connection closed")

type uGame interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*usecase.PlayerStats, error)
	PlayerStats(ctx context.Context, playerID string) (*usecase.PlayerStats, error)

	CreateGame(ctx context.Context, playerID string) (*usecase.GameState, error)
	PlaceStone(ctx context.Context, playerID string, x, y int) (*usecase.MoveOutcome, error)
	PassTurn(ctx context.Context, playerID string) (*usecase.MoveOutcome, error)
	GetGameState(ctx context.Context, playerID string) (*usecase.GameState, error)

	TopPlayers(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

type handlerFunc func(ctx context.Context, msg *Message, c *client) error

// client is one socket. playerID is bound by connect and used when a request omits it.
type client struct {
	playerID string

	send chan []byte
	done chan struct{}
}

func (that *client) push(data []byte) error {
	select {
	case that.send <- data:
		return nil
	case <-that.done:
		return errConnectionClosed
	}
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	upgrader        websocket.Upgrader
	defaultLimit    int
	pingInterval    time.Duration
	shutdownTimeout time.Duration

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame, defaultLimit int, shutdownTimeout time.Duration) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,

		upgrader:        websocket.Upgrader{CheckOrigin: func(_ *http.Request) bool { return true }},
		defaultLimit:    defaultLimit,
		pingInterval:    wsIdlePingInterval,
		shutdownTimeout: shutdownTimeout,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers["connect"] = server.handleConnect
	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:stone"] = server.handlePlaceStone
	server.handlers["game:pass"] = server.handlePassTurn
	server.handlers["game:state"] = server.handleGameState
	server.handlers["player:stats"] = server.handlePlayerStats
	server.handlers["leaderboard:top"] = server.handleLeaderboard

	return server
}

// Handler returns the HTTP handler serving the socket endpoint at /ws.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWS(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
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

	that.logger.Info("shutting down WebSocket server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}

	go func() {
		defer close(c.done)
		defer conn.Close()

		if err := writeWithHeartbeat(conn, c.send, that.pingInterval); err != nil {
			log.Debug("writer stopped", "error", err)
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-c.done:
		}
	}()

	log.Info("WebSocket connection established")

	that.handleMessages(ctx, conn, c)
	close(c.send)
}

// handleMessages - processes messages from the client until the socket closes.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, c *client) {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Debug("connection closed", "player_id", c.playerID, "error", err)
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			if err = that.sendErrorResponse(c, "", "invalid message"); err != nil {
				return
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Debug("unknown action", "action", message.Action)
			if err = that.sendErrorResponse(c, message.Action, "unknown action"); err != nil {
				return
			}
			continue
		}

		if err = handler(ctx, &message, c); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			if errors.Is(err, errConnectionClosed) {
				return
			}
		}
	}
}

func (that *Server) sendMessage(c *client, action string, payload ResponsePayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response, err := json.Marshal(Message{Action: action, Payload: data})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	return c.push(response)
}

func (that *Server) sendErrorResponse(c *client, action, errorMsg string) error {
	if err := that.sendMessage(c, action, ResponsePayload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
