package entity

// Player is the leaderboard side of an identity. Index is zero until the
// first scoring event assigns one.
type Player struct {
	ID     string `json:"id"`
	Points uint32 `json:"points"`
	Index  uint32 `json:"index,omitempty"`
}

// State is everything one call may read and write for a single identity.
// Participants is the global participant total, shared across identities.
type State struct {
	PlayerID     string
	Game         Game
	Player       Player
	Participants uint32
}

// LeaderboardEntry is one row of a ranking.
type LeaderboardEntry struct {
	PlayerID string `json:"player_id"`
	Points   uint32 `json:"points"`
}
