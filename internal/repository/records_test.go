package repository

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeGame(t *testing.T) {
	t.Run("Zero game stores an empty board", func(t *testing.T) {
		data, err := encodeGame(&entity.Game{Ended: true})
		require.NoError(t, err)
		assert.JSONEq(t, `{"board":"","white_captures":0,"black_captures":0,"ko_x":0,"ko_y":0,"player_passed":false,"opponent_passed":false,"ended":true}`, string(data))

		game, err := decodeGame(discardLogger(), data)
		require.NoError(t, err)
		assert.Equal(t, entity.Game{Ended: true}, game)
	})

	t.Run("Oversized counters read as zero", func(t *testing.T) {
		// Given: counters and ko coordinates beyond their working widths
		raw := []byte(`{"board":"","white_captures":4294967296,"black_captures":2,"ko_x":300,"ko_y":1}`)

		// When: the record is decoded
		game, err := decodeGame(discardLogger(), raw)

		// Then: only the values that fit survive
		require.NoError(t, err)
		assert.Zero(t, game.WhiteCaptures)
		assert.Equal(t, uint32(2), game.BlackCaptures)
		assert.Equal(t, entity.Point{X: 0, Y: 1}, game.Ko)
	})

	t.Run("Garbage board reads as empty", func(t *testing.T) {
		game, err := decodeGame(discardLogger(), []byte(`{"board":"not-a-number"}`))

		require.NoError(t, err)
		assert.True(t, game.Board.IsZero())
	})

	t.Run("Broken JSON is an error", func(t *testing.T) {
		_, err := decodeGame(discardLogger(), []byte(`{`))

		require.Error(t, err)
	})
}

func TestParseCounter(t *testing.T) {
	tests := []struct {
		raw  string
		want uint32
	}{
		{raw: "12", want: 12},
		{raw: "4294967295", want: 4294967295},
		{raw: "4294967296", want: 0},
		{raw: "-1", want: 0},
		{raw: "abc", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCounter(discardLogger(), tt.raw))
		})
	}
}
