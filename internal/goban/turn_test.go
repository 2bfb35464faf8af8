package goban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gogame-backend/internal/apperror"
	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

// twoEyedBoard is white everywhere except the two corners, where black can never play.
func twoEyedBoard() entity.Board {
	board := entity.NewBoard()
	for y := uint8(0); y < entity.BoardSize; y++ {
		for x := uint8(0); x < entity.BoardSize; x++ {
			board = board.With(pt(x, y), entity.White)
		}
	}

	return board.With(pt(0, 0), entity.Empty).With(pt(6, 6), entity.Empty)
}

func newState(playerID string) *entity.State {
	return &entity.State{
		PlayerID: playerID,
		Game:     entity.NewGame(),
		Player:   entity.Player{ID: playerID},
	}
}

func TestPlaceStone(t *testing.T) {
	t.Run("Fails without a game", func(t *testing.T) {
		// Given: an identity that never created a game
		state := &entity.State{PlayerID: "p1"}
		before := *state

		// When: it places a stone
		turn, err := PlaceStone(state, pt(0, 0))

		// Then: the call fails and nothing changes
		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
		assert.Nil(t, turn)
		assert.Equal(t, before, *state)
	})

	t.Run("Fails after the game ended", func(t *testing.T) {
		// Given: a finished game
		state := &entity.State{PlayerID: "p1", Game: entity.Game{Ended: true}}

		// When: it places a stone
		_, err := PlaceStone(state, pt(0, 0))

		// Then: there is no active game
		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})

	t.Run("Places the stone and lets the opponent reply", func(t *testing.T) {
		// Given: a new game
		state := newState("p1")

		// When: the player takes a corner
		turn, err := PlaceStone(state, pt(0, 0))

		// Then: both stones are on the board
		require.NoError(t, err)
		assert.Equal(t, entity.White, state.Game.Board.At(pt(0, 0)))
		assert.Equal(t, entity.Black, state.Game.Board.At(pt(3, 3)))

		// Then: the turn reports both moves
		require.NotNil(t, turn.Player)
		require.NotNil(t, turn.Opponent)
		assert.Equal(t, pt(0, 0), turn.Player.Point)
		assert.Equal(t, pt(3, 3), turn.Opponent.Point)
		assert.False(t, turn.Ended)
		assert.False(t, turn.OpponentPassed)
	})

	t.Run("Illegal move leaves the state untouched", func(t *testing.T) {
		// Given: a game where the centre is taken
		state := newState("p1")
		_, err := PlaceStone(state, pt(0, 0))
		require.NoError(t, err)
		before := *state

		// When: the player tries the occupied centre
		_, err = PlaceStone(state, pt(3, 3))

		// Then: the call fails and the record is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *state)
	})

	t.Run("Rejects coordinates off the board", func(t *testing.T) {
		state := newState("p1")

		_, err := PlaceStone(state, pt(7, 3))

		require.ErrorIs(t, err, apperror.ErrInvalidPosition)
	})

	t.Run("Credits captures to the player and clears the pass flag", func(t *testing.T) {
		// Given: a lone black stone in atari next to the edge, and a player who passed before
		state := newState("p1")
		state.Game.Board = boardFrom(t,
			"WB.....",
			".W.....",
		)
		state.Game.PlayerPassed = true

		// When: the player captures it
		turn, err := PlaceStone(state, pt(2, 0))

		// Then: the capture is counted for the player
		require.NoError(t, err)
		assert.Equal(t, uint32(1), turn.Player.Captured)
		assert.Equal(t, uint32(1), state.Game.WhiteCaptures)
		assert.False(t, state.Game.PlayerPassed)
		assert.Equal(t, entity.Empty, state.Game.Board.At(pt(1, 0)))
	})

	t.Run("Opponent respects the ko created by the player", func(t *testing.T) {
		// Given: the player takes a single stone at the centre in a ko shape
		state := newState("p1")
		state.Game.Board = boardFrom(t,
			".......",
			".......",
			"...WB..",
			"..WB.B.",
			"...WB..",
		)

		// When: the player captures at 4,3
		turn, err := PlaceStone(state, pt(4, 3))

		// Then: the opponent may not retake at the centre and plays elsewhere
		require.NoError(t, err)
		require.NotNil(t, turn.Opponent)
		assert.NotEqual(t, pt(3, 3), turn.Opponent.Point)
		assert.Equal(t, entity.Empty, state.Game.Board.At(pt(3, 3)))
	})
}

func TestPassTurn(t *testing.T) {
	t.Run("Fails without a game", func(t *testing.T) {
		state := &entity.State{PlayerID: "p1"}

		_, err := PassTurn(state)

		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})

	t.Run("Opponent keeps playing after a single pass", func(t *testing.T) {
		// Given: a new game
		state := newState("p1")

		// When: the player passes
		turn, err := PassTurn(state)

		// Then: the opponent still moves and the game goes on
		require.NoError(t, err)
		assert.True(t, turn.PlayerPassed)
		require.NotNil(t, turn.Opponent)
		assert.False(t, turn.Ended)
		assert.True(t, state.Game.PlayerPassed)
		assert.False(t, state.Game.OpponentPassed)
	})

	t.Run("Game ends when both sides pass", func(t *testing.T) {
		// Given: a position where the opponent has no legal move and the player leads 5 to 3
		state := newState("p1")
		state.Participants = 4
		state.Game.Board = twoEyedBoard()
		state.Game.WhiteCaptures = 5
		state.Game.BlackCaptures = 3

		// When: the player passes
		turn, err := PassTurn(state)

		// Then: the opponent passes too and the game is over
		require.NoError(t, err)
		assert.True(t, turn.OpponentPassed)
		assert.Nil(t, turn.Opponent)
		assert.True(t, turn.Ended)

		// Then: the final result and the award are reported
		require.NotNil(t, turn.Result)
		assert.Equal(t, entity.Result{WhiteCaptures: 5, BlackCaptures: 3, Winner: entity.WinnerPlayer}, *turn.Result)
		assert.Equal(t, uint32(3), turn.Awarded)

		// Then: the record is reset to the ended state
		assert.Equal(t, entity.Game{Ended: true}, state.Game)
		assert.False(t, state.Game.HasActive())

		// Then: the player is scored and indexed
		assert.Equal(t, uint32(3), state.Player.Points)
		assert.Equal(t, uint32(5), state.Player.Index)
		assert.Equal(t, uint32(5), state.Participants)
	})

	t.Run("Opponent pass alone does not end the game", func(t *testing.T) {
		// Given: the opponent has no legal move but the player is placing
		state := newState("p1")
		state.Game.Board = twoEyedBoard().With(pt(3, 3), entity.Empty)

		// When: the player fills the centre
		turn, err := PlaceStone(state, pt(3, 3))

		// Then: the opponent passes and the game continues
		require.NoError(t, err)
		assert.True(t, turn.OpponentPassed)
		assert.False(t, turn.Ended)
		assert.True(t, state.Game.OpponentPassed)
		assert.True(t, state.Game.HasActive())
	})
}

func TestEnsureActive(t *testing.T) {
	tests := []struct {
		name string
		game entity.Game
		err  error
	}{
		{name: "never created", game: entity.Game{}, err: apperror.ErrNoActiveGame},
		{name: "in progress", game: entity.NewGame(), err: nil},
		{name: "finished and reset", game: entity.Game{Ended: true}, err: apperror.ErrNoActiveGame},
		{name: "finished flag on a stale board", game: entity.Game{Board: entity.NewBoard(), Ended: true}, err: apperror.ErrNoActiveGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureActive(&tt.game)

			if tt.err == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCheckForEnd(t *testing.T) {
	t.Run("Full board ends the game regardless of pass flags", func(t *testing.T) {
		// Given: a full board with a tie on captures
		board := entity.NewBoard()
		for y := uint8(0); y < entity.BoardSize; y++ {
			for x := uint8(0); x < entity.BoardSize; x++ {
				board = board.With(pt(x, y), entity.Black)
			}
		}

		state := newState("p1")
		state.Game.Board = board
		state.Game.WhiteCaptures = 2
		state.Game.BlackCaptures = 2
		turn := &Turn{}

		// When: the end check runs
		checkForEnd(state, turn)

		// Then: the game is over with a tie
		assert.True(t, turn.Ended)
		assert.Equal(t, uint32(2), turn.Awarded)
		assert.True(t, state.Game.Ended)
	})

	t.Run("Open board with one pass keeps going", func(t *testing.T) {
		state := newState("p1")
		state.Game.PlayerPassed = true
		turn := &Turn{}

		checkForEnd(state, turn)

		assert.False(t, turn.Ended)
		assert.True(t, state.Game.HasActive())
	})
}
