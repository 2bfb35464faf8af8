package goban

import "github.com/rocketscienceinc/gogame-backend/internal/entity"

const (
	pointsWin  uint32 = 3
	pointsTie  uint32 = 2
	pointsLoss uint32 = 1
)

// CreateGame starts a fresh record, replacing any game in progress.
// An identity without points is counted as a new participant every time.
func CreateGame(state *entity.State) {
	state.Game = entity.NewGame()

	if state.Player.Points == 0 {
		state.Participants++
	}
}

// Award returns the points a finished game is worth to the player.
func Award(result entity.Result) uint32 {
	switch result.Winner {
	case entity.WinnerPlayer:
		return pointsWin
	case entity.WinnerOpponent:
		return pointsLoss
	default:
		return pointsTie
	}
}

// endGame scores the game, assigns a leaderboard index on the first score and
// resets the record to the ended state.
func endGame(state *entity.State, turn *Turn) {
	result := state.Game.Result()
	awarded := Award(result)

	if state.Player.Index == 0 && state.Player.Points == 0 {
		state.Participants++
		state.Player.Index = state.Participants
	}

	state.Player.ID = state.PlayerID
	state.Player.Points += awarded
	state.Game = entity.Game{Ended: true}

	turn.Ended = true
	turn.Result = &result
	turn.Awarded = awarded
}
