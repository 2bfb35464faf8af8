package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

type PlayerRepository interface {
	// GetByID returns the stored record or a zero record carrying id.
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	// ListIndexed returns the records for indices 1..TotalParticipants in index order,
	// skipping indices no identity holds.
	ListIndexed(ctx context.Context) ([]entity.Player, error)
	TotalParticipants(ctx context.Context) (uint32, error)
}

type dbPlayer struct {
	logger *slog.Logger
	client *redis.Client
}

func NewPlayerRepository(logger *slog.Logger, client *redis.Client) PlayerRepository {
	return &dbPlayer{
		logger: logger,
		client: client,
	}
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := loadPlayer(ctx, that.client, id)
	if err != nil {
		return &entity.Player{}, err
	}

	return &player, nil
}

func (that *dbPlayer) TotalParticipants(ctx context.Context) (uint32, error) {
	return loadParticipants(ctx, that.logger, that.client)
}

func (that *dbPlayer) ListIndexed(ctx context.Context) ([]entity.Player, error) {
	total, err := that.TotalParticipants(ctx)
	if err != nil {
		return nil, err
	}

	if total == 0 {
		return nil, nil
	}

	owners, err := that.client.HGetAll(ctx, participantsIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participants index: %w", err)
	}

	ids := make([]string, 0, len(owners))
	for i := uint64(1); i <= uint64(total); i++ {
		if id, ok := owners[strconv.FormatUint(i, 10)]; ok {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playerKey(id)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]entity.Player, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		player, err := decodePlayer([]byte(raw))
		if err != nil {
			that.logger.Warn("skipping unreadable player record", "player_id", ids[i], "error", err)
			continue
		}

		player.ID = ids[i]
		players = append(players, player)
	}

	return players, nil
}
