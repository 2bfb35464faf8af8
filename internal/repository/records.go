package repository

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

const (
	participantsKey      = "participants:total"
	participantsIndexKey = "participants:index"
)

func gameKey(playerID string) string {
	return "game:" + playerID
}

func playerKey(playerID string) string {
	return "player:" + playerID
}

// gameRecord is the persisted form of entity.Game. Counters are stored wide and
// narrowed on read.
type gameRecord struct {
	Board          string `json:"board"`
	WhiteCaptures  uint64 `json:"white_captures"`
	BlackCaptures  uint64 `json:"black_captures"`
	KoX            uint64 `json:"ko_x"`
	KoY            uint64 `json:"ko_y"`
	PlayerPassed   bool   `json:"player_passed"`
	OpponentPassed bool   `json:"opponent_passed"`
	Ended          bool   `json:"ended"`
}

type playerRecord struct {
	ID     string `json:"id"`
	Points uint64 `json:"points"`
	Index  uint64 `json:"index"`
}

func encodeGame(game *entity.Game) ([]byte, error) {
	board := ""
	if !game.Board.IsZero() {
		board = game.Board.String()
	}

	data, err := json.Marshal(gameRecord{
		Board:          board,
		WhiteCaptures:  uint64(game.WhiteCaptures),
		BlackCaptures:  uint64(game.BlackCaptures),
		KoX:            uint64(game.Ko.X),
		KoY:            uint64(game.Ko.Y),
		PlayerPassed:   game.PlayerPassed,
		OpponentPassed: game.OpponentPassed,
		Ended:          game.Ended,
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal game: %w", err)
	}

	return data, nil
}

// decodeGame reads a stored record. Values that do not fit their working type read as zero.
func decodeGame(logger *slog.Logger, data []byte) (entity.Game, error) {
	var record gameRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	board, err := entity.ParseBoard(record.Board)
	if err != nil {
		logger.Warn("stored board is unreadable, treating as empty", "error", err)
		board = entity.Board{}
	}

	return entity.Game{
		Board:         board,
		WhiteCaptures: narrow32(record.WhiteCaptures),
		BlackCaptures: narrow32(record.BlackCaptures),
		Ko: entity.Point{
			X: narrow8(record.KoX),
			Y: narrow8(record.KoY),
		},
		PlayerPassed:   record.PlayerPassed,
		OpponentPassed: record.OpponentPassed,
		Ended:          record.Ended,
	}, nil
}

func encodePlayer(player *entity.Player) ([]byte, error) {
	data, err := json.Marshal(playerRecord{
		ID:     player.ID,
		Points: uint64(player.Points),
		Index:  uint64(player.Index),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal player: %w", err)
	}

	return data, nil
}

func decodePlayer(data []byte) (entity.Player, error) {
	var record playerRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return entity.Player{}, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return entity.Player{
		ID:     record.ID,
		Points: narrow32(record.Points),
		Index:  narrow32(record.Index),
	}, nil
}

// parseCounter reads a stored counter, defaulting to zero when it cannot be read.
func parseCounter(logger *slog.Logger, raw string) uint32 {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		logger.Warn("stored counter is unreadable, treating as zero", "value", raw, "error", err)
		return 0
	}

	return narrow32(v)
}

func narrow32(v uint64) uint32 {
	if v > math.MaxUint32 {
		return 0
	}

	return uint32(v)
}

func narrow8(v uint64) uint8 {
	if v > math.MaxUint8 {
		return 0
	}

	return uint8(v)
}
