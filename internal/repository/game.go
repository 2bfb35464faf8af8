package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

const maxTxRetries = 10

var ErrTooManyConflicts = errors.New("too many concurrent updates")

// UpdateFunc mutates the state loaded for one identity. Returning an error discards every change.
type UpdateFunc func(state *entity.State) error

type GameRepository interface {
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	Update(ctx context.Context, playerID string, fn UpdateFunc) error
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type dbGame struct {
	logger *slog.Logger
	client *redis.Client
}

func NewGameRepository(logger *slog.Logger, client *redis.Client) GameRepository {
	return &dbGame{
		logger: logger,
		client: client,
	}
}

func (that *dbGame) GetByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := loadGame(ctx, that.logger, that.client, playerID)
	if err != nil {
		return &entity.Game{}, err
	}

	return &game, nil
}

// Update runs fn against the stored state under WATCH and commits the result in one MULTI block.
func (that *dbGame) Update(ctx context.Context, playerID string, fn UpdateFunc) error {
	log := that.logger.With("method", "Update", "player_id", playerID)

	txf := func(tx *redis.Tx) error {
		state, err := loadState(ctx, that.logger, tx, playerID)
		if err != nil {
			return err
		}

		before := *state
		if err = fn(state); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return writeState(ctx, pipe, &before, state)
		})

		return err
	}

	keys := []string{gameKey(playerID), playerKey(playerID), participantsKey}
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := that.client.Watch(ctx, txf, keys...)
		if errors.Is(err, redis.TxFailedErr) {
			log.Debug("transaction conflict, retrying")
			continue
		}

		return err
	}

	return ErrTooManyConflicts
}

func loadState(ctx context.Context, logger *slog.Logger, client getter, playerID string) (*entity.State, error) {
	game, err := loadGame(ctx, logger, client, playerID)
	if err != nil {
		return nil, err
	}

	player, err := loadPlayer(ctx, client, playerID)
	if err != nil {
		return nil, err
	}

	participants, err := loadParticipants(ctx, logger, client)
	if err != nil {
		return nil, err
	}

	return &entity.State{
		PlayerID:     playerID,
		Game:         game,
		Player:       player,
		Participants: participants,
	}, nil
}

func loadGame(ctx context.Context, logger *slog.Logger, client getter, playerID string) (entity.Game, error) {
	response, err := client.Get(ctx, gameKey(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Game{}, nil
	}

	if err != nil {
		return entity.Game{}, fmt.Errorf("failed to get game: %w", err)
	}

	return decodeGame(logger, response)
}

func loadPlayer(ctx context.Context, client getter, playerID string) (entity.Player, error) {
	response, err := client.Get(ctx, playerKey(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Player{ID: playerID}, nil
	}

	if err != nil {
		return entity.Player{}, fmt.Errorf("failed to get player by ID: %w", err)
	}

	player, err := decodePlayer(response)
	if err != nil {
		return entity.Player{}, err
	}

	player.ID = playerID

	return player, nil
}

func loadParticipants(ctx context.Context, logger *slog.Logger, client getter) (uint32, error) {
	response, err := client.Get(ctx, participantsKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get participants: %w", err)
	}

	return parseCounter(logger, response), nil
}

func writeState(ctx context.Context, pipe redis.Pipeliner, before, after *entity.State) error {
	gameJSON, err := encodeGame(&after.Game)
	if err != nil {
		return err
	}

	pipe.Set(ctx, gameKey(after.PlayerID), gameJSON, 0)

	if after.Player != before.Player {
		playerJSON, err := encodePlayer(&after.Player)
		if err != nil {
			return err
		}

		pipe.Set(ctx, playerKey(after.PlayerID), playerJSON, 0)
	}

	if after.Player.Index != 0 && after.Player.Index != before.Player.Index {
		pipe.HSet(ctx, participantsIndexKey, strconv.FormatUint(uint64(after.Player.Index), 10), after.PlayerID)
	}

	if after.Participants != before.Participants {
		pipe.Set(ctx, participantsKey, strconv.FormatUint(uint64(after.Participants), 10), 0)
	}

	return nil
}
