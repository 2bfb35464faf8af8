package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

// MemoryStorage keeps all records in process. It implements GameRepository and PlayerRepository.
type MemoryStorage struct {
	mu sync.RWMutex

	games        map[string]entity.Game
	players      map[string]entity.Player
	index        map[uint32]string
	participants uint32
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		games:   make(map[string]entity.Game),
		players: make(map[string]entity.Player),
		index:   make(map[uint32]string),
	}
}

func (that *MemoryStorage) GetByPlayerID(_ context.Context, playerID string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game := that.games[playerID]

	return &game, nil
}

func (that *MemoryStorage) Update(_ context.Context, playerID string, fn UpdateFunc) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	state := &entity.State{
		PlayerID:     playerID,
		Game:         that.games[playerID],
		Player:       that.player(playerID),
		Participants: that.participants,
	}
	before := *state

	if err := fn(state); err != nil {
		return err
	}

	that.games[playerID] = state.Game
	if state.Player != before.Player {
		that.players[playerID] = state.Player
	}

	if state.Player.Index != 0 && state.Player.Index != before.Player.Index {
		that.index[state.Player.Index] = playerID
	}

	that.participants = state.Participants

	return nil
}

func (that *MemoryStorage) GetByID(_ context.Context, id string) (*entity.Player, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	player := that.player(id)

	return &player, nil
}

func (that *MemoryStorage) TotalParticipants(_ context.Context) (uint32, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.participants, nil
}

func (that *MemoryStorage) ListIndexed(_ context.Context) ([]entity.Player, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	var players []entity.Player
	for i := uint32(1); i <= that.participants && i != 0; i++ {
		id, ok := that.index[i]
		if !ok {
			continue
		}

		players = append(players, that.player(id))
	}

	return players, nil
}

func (that *MemoryStorage) player(id string) entity.Player {
	player, ok := that.players[id]
	if !ok {
		return entity.Player{ID: id}
	}

	return player
}
