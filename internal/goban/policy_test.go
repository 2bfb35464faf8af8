package goban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

func TestSelectMove(t *testing.T) {
	t.Run("Takes the centre on an empty board", func(t *testing.T) {
		move, found := SelectMove(entity.NewBoard(), entity.NoKo)

		require.True(t, found)
		assert.Equal(t, pt(3, 3), move)
	})

	t.Run("Steps right of the centre when it is taken", func(t *testing.T) {
		// Given: the centre is occupied
		board := entity.NewBoard().With(pt(3, 3), entity.White)

		// When: the opponent searches
		move, found := SelectMove(board, entity.NoKo)

		// Then: the next diamond candidate is chosen
		require.True(t, found)
		assert.Equal(t, pt(4, 3), move)
	})

	t.Run("Skips the ko point", func(t *testing.T) {
		// Given: an empty centre that is the current ko point
		move, found := SelectMove(entity.NewBoard(), pt(3, 3))

		// Then: the ko point is passed over
		require.True(t, found)
		assert.Equal(t, pt(4, 3), move)
	})

	t.Run("Falls back to the ring when the centre block is full", func(t *testing.T) {
		// Given: the 3x3 block around the centre is filled
		board := boardFrom(t,
			".......",
			".......",
			"..WWW..",
			"..WWW..",
			"..WWW..",
		)

		// When: the opponent searches
		move, found := SelectMove(board, entity.NoKo)

		// Then: the first boundary cell of the radius-two ring is chosen
		require.True(t, found)
		assert.Equal(t, pt(1, 1), move)
	})

	t.Run("Skips suicide cells", func(t *testing.T) {
		// Given: the centre is an eye of white stones with other liberties
		board := boardFrom(t,
			".......",
			".......",
			"...W...",
			"..W.W..",
			"...W...",
		)

		// When: the opponent searches
		move, found := SelectMove(board, entity.NoKo)

		// Then: it avoids the eye and takes the next legal diamond cell
		require.True(t, found)
		assert.Equal(t, pt(4, 4), move)
	})

	t.Run("Passes when no cell is legal", func(t *testing.T) {
		// Given: a white board with two separate eyes
		board := entity.NewBoard()
		for y := uint8(0); y < entity.BoardSize; y++ {
			for x := uint8(0); x < entity.BoardSize; x++ {
				board = board.With(pt(x, y), entity.White)
			}
		}
		board = board.With(pt(0, 0), entity.Empty).With(pt(6, 6), entity.Empty)

		// When: the opponent searches
		_, found := SelectMove(board, entity.NoKo)

		// Then: both eyes are suicide and no move is found
		assert.False(t, found)
	})
}

func TestSearchOrder(t *testing.T) {
	t.Run("Starts with the centre diamond", func(t *testing.T) {
		assert.Equal(t, []entity.Point{
			pt(3, 3), pt(3, 3), pt(3, 3), pt(3, 3),
			pt(4, 3), pt(2, 3), pt(4, 3), pt(2, 3),
		}, searchOrder[:8])
	})

	t.Run("Covers every cell", func(t *testing.T) {
		seen := make(map[entity.Point]bool)
		for _, p := range searchOrder {
			require.True(t, p.InBounds(), "candidate %v out of bounds", p)
			seen[p] = true
		}

		assert.Len(t, seen, entity.Cells)
	})
}
