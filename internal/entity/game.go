package entity

const (
	WinnerTie      uint8 = 0
	WinnerPlayer   uint8 = 1
	WinnerOpponent uint8 = 2
)

// NoKo is the ko value meaning "no active ko". A genuine ko at the origin
// is therefore never enforced.
var NoKo = Point{}

// Game is the per-player record. A zero Board means no game was ever created
// or the last one has ended.
type Game struct {
	Board          Board
	WhiteCaptures  uint32
	BlackCaptures  uint32
	Ko             Point
	PlayerPassed   bool
	OpponentPassed bool
	Ended          bool
}

// NewGame returns a freshly created record.
func NewGame() Game {
	return Game{Board: NewBoard()}
}

// HasActive reports whether a created game is still in progress.
func (that *Game) HasActive() bool {
	return !that.Board.IsZero() && !that.Ended
}

// KoActive reports whether the stored ko point is enforced.
func (that *Game) KoActive() bool {
	return that.Ko != NoKo
}

// Result reads the capture counters as a game result.
func (that *Game) Result() Result {
	return NewResult(that.WhiteCaptures, that.BlackCaptures)
}

// Result compares the two capture counters.
type Result struct {
	WhiteCaptures uint32 `json:"player_captures"`
	BlackCaptures uint32 `json:"opponent_captures"`
	Winner        uint8  `json:"winner"`
}

func NewResult(white, black uint32) Result {
	winner := WinnerTie
	switch {
	case white > black:
		winner = WinnerPlayer
	case white < black:
		winner = WinnerOpponent
	}

	return Result{
		WhiteCaptures: white,
		BlackCaptures: black,
		Winner:        winner,
	}
}
