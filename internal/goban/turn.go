package goban

import (
	"github.com/rocketscienceinc/gogame-backend/internal/apperror"
	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

// Move is one placement and the number of stones it captured.
type Move struct {
	Point    entity.Point `json:"point"`
	Captured uint32       `json:"captured"`
}

// Turn reports what a single call did to the game.
type Turn struct {
	Player         *Move          `json:"player,omitempty"`
	PlayerPassed   bool           `json:"player_passed"`
	Opponent       *Move          `json:"opponent,omitempty"`
	OpponentPassed bool           `json:"opponent_passed"`
	Ended          bool           `json:"ended"`
	Result         *entity.Result `json:"result,omitempty"`
	Awarded        uint32         `json:"awarded,omitempty"`
}

// PlaceStone plays the human stone at p and lets the opponent answer.
// On error the state is left untouched.
func PlaceStone(state *entity.State, p entity.Point) (*Turn, error) {
	game := &state.Game

	if err := EnsureActive(game); err != nil {
		return nil, err
	}

	if err := ValidateMove(game.Board, game.Ko, p, entity.White); err != nil {
		return nil, err
	}

	capture := ResolveCaptures(game.Board.With(p, entity.White), p, entity.White)

	game.Board = capture.Board
	game.WhiteCaptures += capture.Captured
	game.Ko = capture.Ko
	game.PlayerPassed = false

	turn := &Turn{Player: &Move{Point: p, Captured: capture.Captured}}
	opponentMove(state, turn)

	return turn, nil
}

// PassTurn records the human pass and lets the opponent answer.
func PassTurn(state *entity.State) (*Turn, error) {
	if err := EnsureActive(&state.Game); err != nil {
		return nil, err
	}

	state.Game.PlayerPassed = true

	turn := &Turn{PlayerPassed: true}
	opponentMove(state, turn)

	return turn, nil
}

// EnsureActive fails unless game is in progress. A finished game has its
// board reset to zero, so it reports as no active game.
func EnsureActive(game *entity.Game) error {
	if !game.HasActive() {
		return apperror.ErrNoActiveGame
	}

	return nil
}

func opponentMove(state *entity.State, turn *Turn) {
	game := &state.Game

	p, found := SelectMove(game.Board, game.Ko)
	if !found {
		game.OpponentPassed = true
		turn.OpponentPassed = true

		if game.PlayerPassed {
			endGame(state, turn)
		}

		return
	}

	capture := ResolveCaptures(game.Board.With(p, entity.Black), p, entity.Black)

	game.Board = capture.Board
	game.BlackCaptures += capture.Captured
	game.Ko = capture.Ko
	game.OpponentPassed = false

	turn.Opponent = &Move{Point: p, Captured: capture.Captured}

	checkForEnd(state, turn)
}

func checkForEnd(state *entity.State, turn *Turn) {
	game := &state.Game

	if game.PlayerPassed && game.OpponentPassed {
		endGame(state, turn)
		return
	}

	if game.Board.IsFull() {
		endGame(state, turn)
	}
}
