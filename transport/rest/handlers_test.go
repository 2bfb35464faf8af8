package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gogame-backend/internal/apperror"
	"github.com/rocketscienceinc/gogame-backend/internal/entity"
	"github.com/rocketscienceinc/gogame-backend/internal/repository"
	"github.com/rocketscienceinc/gogame-backend/internal/service"
	"github.com/rocketscienceinc/gogame-backend/internal/usecase"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := repository.NewMemoryStorage()
	manager := usecase.NewGameManager(logger, store, service.NewLeaderboardService(store))

	srv := httptest.NewServer(New(logger, manager, nil, service.MaxTop, time.Second).Handler())
	t.Cleanup(srv.Close)

	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string, out any) int {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestCreatePlayer(t *testing.T) {
	t.Run("Generates an identity for an empty body", func(t *testing.T) {
		srv := newTestServer(t)

		var player usecase.PlayerStats
		status := do(t, srv, http.MethodPost, "/api/players", "", &player)

		assert.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, player.PlayerID)
	})

	t.Run("Echoes a known identity", func(t *testing.T) {
		srv := newTestServer(t)

		var player usecase.PlayerStats
		status := do(t, srv, http.MethodPost, "/api/players", `{"player_id":"p1"}`, &player)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, usecase.PlayerStats{PlayerID: "p1"}, player)
	})

	t.Run("Rejects a broken payload", func(t *testing.T) {
		srv := newTestServer(t)

		var resp errorResponse
		status := do(t, srv, http.MethodPost, "/api/players", `{`, &resp)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid payload", resp.Error)
	})
}

func TestGameFlow(t *testing.T) {
	srv := newTestServer(t)

	// Given: no game yet
	var errResp errorResponse
	status := do(t, srv, http.MethodPost, "/api/players/p1/game/stones", `{"x":0,"y":0}`, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "no active game found", errResp.Error)

	// When: a game is created
	var state usecase.GameState
	status = do(t, srv, http.MethodPost, "/api/players/p1/game", "", &state)

	// Then: it is active
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, state.Active)

	// When: the player places a stone
	var outcome struct {
		Player   *struct{ Point entity.Point } `json:"player"`
		Opponent *struct{ Point entity.Point } `json:"opponent"`
		State    usecase.GameState             `json:"state"`
	}
	status = do(t, srv, http.MethodPost, "/api/players/p1/game/stones", `{"x":0,"y":0}`, &outcome)

	// Then: the opponent answers in the centre
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, outcome.Opponent)
	assert.Equal(t, entity.Point{X: 3, Y: 3}, outcome.Opponent.Point)
	assert.Equal(t, entity.White, outcome.State.Grid[0][0])

	// When: the player plays on an occupied cell
	errResp = errorResponse{}
	status = do(t, srv, http.MethodPost, "/api/players/p1/game/stones", `{"x":3,"y":3}`, &errResp)

	// Then: the rule is reported
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "position is already occupied", errResp.Error)

	// When: the player plays off the board
	errResp = errorResponse{}
	status = do(t, srv, http.MethodPost, "/api/players/p1/game/stones", `{"x":7,"y":0}`, &errResp)

	// Then: the position is invalid
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid position", errResp.Error)

	// When: the player passes
	status = do(t, srv, http.MethodPost, "/api/players/p1/game/pass", "", nil)
	assert.Equal(t, http.StatusOK, status)

	// Then: the state view reflects the pass
	state = usecase.GameState{}
	status = do(t, srv, http.MethodGet, "/api/players/p1/game", "", &state)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, state.Active)
	assert.True(t, state.PlayerPassed)

	// Then: the identity counts as a participant
	var total map[string]uint32
	status = do(t, srv, http.MethodGet, "/api/participants", "", &total)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, uint32(1), total["total"])
}

func TestPlaceStone_MissingCoordinates(t *testing.T) {
	srv := newTestServer(t)

	var resp errorResponse
	status := do(t, srv, http.MethodPost, "/api/players/p1/game/stones", `{"x":1}`, &resp)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "x and y are required", resp.Error)
}

func TestLeaderboard(t *testing.T) {
	t.Run("Empty leaderboard", func(t *testing.T) {
		srv := newTestServer(t)

		var resp map[string][]entity.LeaderboardEntry
		status := do(t, srv, http.MethodGet, "/api/leaderboard", "", &resp)

		assert.Equal(t, http.StatusOK, status)
		assert.Empty(t, resp["players"])
	})

	t.Run("Rejects a bad limit", func(t *testing.T) {
		srv := newTestServer(t)

		tests := []string{"abc", "0", "-3"}
		for _, limit := range tests {
			var resp errorResponse
			status := do(t, srv, http.MethodGet, "/api/leaderboard?limit="+limit, "", &resp)

			assert.Equal(t, http.StatusBadRequest, status, limit)
			assert.Equal(t, "invalid leaderboard limit", resp.Error, limit)
		}
	})

	t.Run("Large limit is clamped", func(t *testing.T) {
		srv := newTestServer(t)

		var resp map[string][]entity.LeaderboardEntry
		status := do(t, srv, http.MethodGet, "/api/leaderboard?limit=50", "", &resp)

		assert.Equal(t, http.StatusOK, status)
		assert.Empty(t, resp["players"])
	})

	t.Run("Player without points is unranked", func(t *testing.T) {
		srv := newTestServer(t)

		var stats usecase.PlayerStats
		status := do(t, srv, http.MethodGet, "/api/players/p1", "", &stats)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, usecase.PlayerStats{PlayerID: "p1"}, stats)
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: apperror.ErrInvalidPosition, status: http.StatusBadRequest},
		{err: apperror.ErrPlayerIDRequired, status: http.StatusBadRequest},
		{err: apperror.ErrInvalidLimit, status: http.StatusBadRequest},
		{err: apperror.ErrNoActiveGame, status: http.StatusUnprocessableEntity},
		{err: apperror.ErrCellOccupied, status: http.StatusUnprocessableEntity},
		{err: apperror.ErrKoViolation, status: http.StatusUnprocessableEntity},
		{err: apperror.ErrSuicide, status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	h := newGameHandlers(slog.New(slog.NewJSONHandler(io.Discard, nil)), nil, service.MaxTop)

	t.Run("Wrapped ko violation is a 422 with its message", func(t *testing.T) {
		// Given: a ko violation wrapped by the usecase
		err := fmt.Errorf("failed to play: %w", apperror.ErrKoViolation)

		// When: it is written
		rec := httptest.NewRecorder()
		h.writeError(rec, "placeStone", err)

		// Then: the client sees the rule
		var resp errorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "move violates ko rule", resp.Error)
	})

	t.Run("Storage failure is a 500 without details", func(t *testing.T) {
		// Given: an infrastructure error
		err := fmt.Errorf("failed to update game: %w", errors.New("redis down"))

		// When: it is written
		rec := httptest.NewRecorder()
		h.writeError(rec, "placeStone", err)

		// Then: the cause is hidden
		var resp errorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", resp.Error)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})
}
