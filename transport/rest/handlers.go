package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gogame-backend/internal/apperror"
	"github.com/rocketscienceinc/gogame-backend/internal/entity"
	"github.com/rocketscienceinc/gogame-backend/internal/usecase"
)

type uGame interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*usecase.PlayerStats, error)
	PlayerStats(ctx context.Context, playerID string) (*usecase.PlayerStats, error)

	CreateGame(ctx context.Context, playerID string) (*usecase.GameState, error)
	PlaceStone(ctx context.Context, playerID string, x, y int) (*usecase.MoveOutcome, error)
	PassTurn(ctx context.Context, playerID string) (*usecase.MoveOutcome, error)
	GetGameState(ctx context.Context, playerID string) (*usecase.GameState, error)

	TotalParticipants(ctx context.Context) (uint32, error)
	TopPlayers(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

type playerRequest struct {
	PlayerID string `json:"player_id"`
}

type stoneRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type gameHandlers struct {
	logger       *slog.Logger
	uGame        uGame
	defaultLimit int
}

func newGameHandlers(logger *slog.Logger, uGame uGame, defaultLimit int) *gameHandlers {
	return &gameHandlers{
		logger:       logger.With("component", "rest"),
		uGame:        uGame,
		defaultLimit: defaultLimit,
	}
}

func (that *gameHandlers) createPlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}

	player, err := that.uGame.GetOrCreatePlayer(r.Context(), req.PlayerID)
	if err != nil {
		that.writeError(w, "createPlayer", err)
		return
	}

	writeJSON(w, http.StatusOK, player)
}

func (that *gameHandlers) playerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.uGame.PlayerStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "playerStats", err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (that *gameHandlers) createGame(w http.ResponseWriter, r *http.Request) {
	state, err := that.uGame.CreateGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	writeJSON(w, http.StatusCreated, state)
}

func (that *gameHandlers) placeStone(w http.ResponseWriter, r *http.Request) {
	var req stoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.X == nil || req.Y == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "x and y are required"})
		return
	}

	outcome, err := that.uGame.PlaceStone(r.Context(), chi.URLParam(r, "id"), *req.X, *req.Y)
	if err != nil {
		that.writeError(w, "placeStone", err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

func (that *gameHandlers) passTurn(w http.ResponseWriter, r *http.Request) {
	outcome, err := that.uGame.PassTurn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "passTurn", err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

func (that *gameHandlers) gameState(w http.ResponseWriter, r *http.Request) {
	state, err := that.uGame.GetGameState(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "gameState", err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (that *gameHandlers) totalParticipants(w http.ResponseWriter, r *http.Request) {
	total, err := that.uGame.TotalParticipants(r.Context())
	if err != nil {
		that.writeError(w, "totalParticipants", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]uint32{"total": total})
}

func (that *gameHandlers) leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := that.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidLimit.Error()})
			return
		}

		limit = parsed
	}

	entries, err := that.uGame.TopPlayers(r.Context(), limit)
	if err != nil {
		that.writeError(w, "leaderboard", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]entity.LeaderboardEntry{"players": entries})
}

func (that *gameHandlers) writeError(w http.ResponseWriter, method string, err error) {
	cause := apperror.RuleViolation(err)
	if cause == nil {
		that.logger.Error("request failed", "method", method, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, statusFor(cause), errorResponse{Error: cause.Error()})
}

func statusFor(cause error) int {
	switch {
	case errors.Is(cause, apperror.ErrInvalidPosition),
		errors.Is(cause, apperror.ErrPlayerIDRequired),
		errors.Is(cause, apperror.ErrInvalidLimit):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
