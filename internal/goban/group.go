package goban

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

// neighbors returns the in-bounds orthogonal neighbours of p in the fixed
// order right, down, left, up.
func neighbors(p entity.Point) []entity.Point {
	result := make([]entity.Point, 0, 4)

	if p.X+1 < entity.BoardSize {
		result = append(result, entity.Point{X: p.X + 1, Y: p.Y})
	}
	if p.Y+1 < entity.BoardSize {
		result = append(result, entity.Point{X: p.X, Y: p.Y + 1})
	}
	if p.X > 0 {
		result = append(result, entity.Point{X: p.X - 1, Y: p.Y})
	}
	if p.Y > 0 {
		result = append(result, entity.Point{X: p.X, Y: p.Y - 1})
	}

	return result
}

// group is a connected set of same-coloured stones and the empty cells around it.
type group struct {
	members   []entity.Point
	liberties *bitset.BitSet
}

// floodFill walks the group containing seed with an explicit stack.
// An empty seed yields an empty group.
func floodFill(board entity.Board, seed entity.Point) group {
	g := group{liberties: bitset.New(entity.Cells)}

	color := board.At(seed)
	if color == entity.Empty {
		return g
	}

	visited := bitset.New(entity.Cells)
	stack := make([]entity.Point, 0, entity.BoardSize)
	stack = append(stack, seed)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited.Test(current.Index()) {
			continue
		}
		visited.Set(current.Index())
		g.members = append(g.members, current)

		for _, next := range neighbors(current) {
			switch stone := board.At(next); {
			case stone == entity.Empty:
				g.liberties.Set(next.Index())
			case stone == color && !visited.Test(next.Index()):
				stack = append(stack, next)
			}
		}
	}

	return g
}

// Liberties counts the distinct empty cells adjacent to the group at p.
func Liberties(board entity.Board, p entity.Point) uint {
	return floodFill(board, p).liberties.Count()
}

// Group returns the stones connected to p, seed first.
func Group(board entity.Board, p entity.Point) []entity.Point {
	return floodFill(board, p).members
}
