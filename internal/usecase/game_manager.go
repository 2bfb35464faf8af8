package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/gogame-backend/internal/apperror"
	"github.com/rocketscienceinc/gogame-backend/internal/entity"
	"github.com/rocketscienceinc/gogame-backend/internal/goban"
	"github.com/rocketscienceinc/gogame-backend/internal/pkg"
	"github.com/rocketscienceinc/gogame-backend/internal/repository"
)

type gameStore interface {
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	Update(ctx context.Context, playerID string, fn repository.UpdateFunc) error
}

type leaderboard interface {
	Points(ctx context.Context, playerID string) (uint32, error)
	Rank(ctx context.Context, playerID string) (uint32, error)
	TotalParticipants(ctx context.Context) (uint32, error)
	Top(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

// GameState is the read view of one identity's game.
type GameState struct {
	PlayerID       string                                           `json:"player_id"`
	Active         bool                                             `json:"active"`
	Ended          bool                                             `json:"ended"`
	BoardRaw       string                                           `json:"board_raw"`
	Grid           [entity.BoardSize][entity.BoardSize]entity.Stone `json:"grid"`
	Result         entity.Result                                    `json:"result"`
	Ko             *entity.Point                                    `json:"ko,omitempty"`
	PlayerPassed   bool                                             `json:"player_passed"`
	OpponentPassed bool                                             `json:"opponent_passed"`
}

// MoveOutcome is the turn report of a write call plus the state it left behind.
type MoveOutcome struct {
	*goban.Turn
	State *GameState `json:"state"`
}

// PlayerStats is the leaderboard view of one identity.
type PlayerStats struct {
	PlayerID string `json:"player_id"`
	Points   uint32 `json:"points"`
	Rank     uint32 `json:"rank"`
}

type GameManager struct {
	logger *slog.Logger

	gameStore   gameStore
	leaderboard leaderboard
}

func NewGameManager(logger *slog.Logger, gameStore gameStore, leaderboard leaderboard) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameStore:   gameStore,
		leaderboard: leaderboard,
	}
}

// GetOrCreatePlayer returns the stats of playerID, or of a freshly generated identity when it is empty.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, playerID string) (*PlayerStats, error) {
	if playerID == "" {
		newID := pkg.GenerateNewSessionID()
		that.logger.Info("new player identity generated", "method", "GetOrCreatePlayer", "player_id", newID)

		return &PlayerStats{PlayerID: newID}, nil
	}

	return that.PlayerStats(ctx, playerID)
}

func (that *GameManager) CreateGame(ctx context.Context, playerID string) (*GameState, error) {
	log := that.logger.With("method", "CreateGame", "player_id", playerID)

	if playerID == "" {
		return nil, apperror.ErrPlayerIDRequired
	}

	var view *GameState
	err := that.gameStore.Update(ctx, playerID, func(state *entity.State) error {
		restarted := state.Game.HasActive()
		goban.CreateGame(state)
		view = newGameState(state)

		if restarted {
			log.Debug("active game restarted")
		}

		return nil
	})
	if err != nil {
		log.Error("failed to create game", "error", err)
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created")

	return view, nil
}

func (that *GameManager) PlaceStone(ctx context.Context, playerID string, x, y int) (*MoveOutcome, error) {
	log := that.logger.With("method", "PlaceStone", "player_id", playerID, "x", x, "y", y)

	if playerID == "" {
		return nil, apperror.ErrPlayerIDRequired
	}

	return that.play(ctx, log, playerID, func(state *entity.State) (*goban.Turn, error) {
		if err := goban.EnsureActive(&state.Game); err != nil {
			return nil, err
		}

		p, ok := toPoint(x, y)
		if !ok {
			return nil, apperror.ErrInvalidPosition
		}

		return goban.PlaceStone(state, p)
	})
}

func (that *GameManager) PassTurn(ctx context.Context, playerID string) (*MoveOutcome, error) {
	log := that.logger.With("method", "PassTurn", "player_id", playerID)

	if playerID == "" {
		return nil, apperror.ErrPlayerIDRequired
	}

	return that.play(ctx, log, playerID, goban.PassTurn)
}

func (that *GameManager) GetGameState(ctx context.Context, playerID string) (*GameState, error) {
	if playerID == "" {
		return nil, apperror.ErrPlayerIDRequired
	}

	game, err := that.gameStore.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return newGameState(&entity.State{PlayerID: playerID, Game: *game}), nil
}

func (that *GameManager) PlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	if playerID == "" {
		return nil, apperror.ErrPlayerIDRequired
	}

	points, err := that.leaderboard.Points(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get points: %w", err)
	}

	rank, err := that.leaderboard.Rank(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rank: %w", err)
	}

	return &PlayerStats{PlayerID: playerID, Points: points, Rank: rank}, nil
}

func (that *GameManager) TotalParticipants(ctx context.Context) (uint32, error) {
	return that.leaderboard.TotalParticipants(ctx)
}

func (that *GameManager) TopPlayers(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	return that.leaderboard.Top(ctx, limit)
}

func (that *GameManager) play(
	ctx context.Context,
	log *slog.Logger,
	playerID string,
	move func(state *entity.State) (*goban.Turn, error),
) (*MoveOutcome, error) {
	var outcome *MoveOutcome
	err := that.gameStore.Update(ctx, playerID, func(state *entity.State) error {
		turn, err := move(state)
		if err != nil {
			return err
		}

		outcome = &MoveOutcome{Turn: turn, State: newGameState(state)}

		return nil
	})

	if cause := apperror.RuleViolation(err); cause != nil {
		log.Debug("move rejected", "error", cause)
		return nil, fmt.Errorf("failed to play: %w", err)
	}

	if err != nil {
		log.Error("failed to update game", "error", err)
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	args := []any{"player_passed", outcome.PlayerPassed, "opponent_passed", outcome.OpponentPassed, "ended", outcome.Ended}
	if outcome.Player != nil {
		args = append(args, "captured", outcome.Player.Captured)
	}

	if outcome.Opponent != nil {
		args = append(args, "opponent_x", outcome.Opponent.Point.X, "opponent_y", outcome.Opponent.Point.Y)
	}

	if outcome.Ended {
		args = append(args, "awarded", outcome.Awarded)
	}

	log.Info("turn played", args...)

	return outcome, nil
}

func newGameState(state *entity.State) *GameState {
	game := &state.Game

	view := &GameState{
		PlayerID:       state.PlayerID,
		Active:         game.HasActive(),
		Ended:          game.Ended,
		BoardRaw:       game.Board.String(),
		Grid:           game.Board.Grid(),
		Result:         game.Result(),
		PlayerPassed:   game.PlayerPassed,
		OpponentPassed: game.OpponentPassed,
	}

	if game.KoActive() {
		ko := game.Ko
		view.Ko = &ko
	}

	return view
}

func toPoint(x, y int) (entity.Point, bool) {
	if x < 0 || y < 0 || x > math.MaxUint8 || y > math.MaxUint8 {
		return entity.Point{}, false
	}

	return entity.Point{X: uint8(x), Y: uint8(y)}, true
}
