package goban

import "github.com/rocketscienceinc/gogame-backend/internal/entity"

// Capture is the outcome of resolving captures around a placed stone.
type Capture struct {
	Board    entity.Board
	Captured uint32
	// Ko is the last single stone removed, or entity.NoKo.
	Ko entity.Point
}

// ResolveCaptures removes every opposing neighbour group of p left without liberties.
// Neighbours are visited right, down, left, up against the board as mutated so far.
func ResolveCaptures(board entity.Board, p entity.Point, color entity.Stone) Capture {
	result := Capture{Board: board, Ko: entity.NoKo}
	opponent := color.Opponent()

	for _, n := range neighbors(p) {
		if result.Board.At(n) != opponent {
			continue
		}

		g := floodFill(result.Board, n)
		if g.liberties.Count() != 0 {
			continue
		}

		for _, member := range g.members {
			result.Board = result.Board.With(member, entity.Empty)
		}

		result.Captured += uint32(len(g.members)) //nolint: gosec // a group never exceeds 49 stones
		if len(g.members) == 1 {
			result.Ko = g.members[0]
		}
	}

	return result
}
