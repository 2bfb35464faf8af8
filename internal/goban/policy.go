package goban

import "github.com/rocketscienceinc/gogame-backend/internal/entity"

const center = entity.BoardSize / 2

var searchOrder = candidates()

// SelectMove picks the opponent's reply: the first legal cell around the centre,
// then on growing rings around it, then anywhere in row-major order.
// It returns false when no cell is legal.
func SelectMove(board entity.Board, ko entity.Point) (entity.Point, bool) {
	legal := func(p entity.Point) bool {
		return board.At(p) == entity.Empty &&
			!WouldBeSuicide(board, p, entity.Black) &&
			!IsKoViolation(ko, p)
	}

	for _, candidate := range searchOrder {
		if legal(candidate) {
			return candidate, true
		}
	}

	return entity.Point{}, false
}

// candidates lists every cell in the order SelectMove tries them.
// Cells may repeat; the first legal occurrence wins.
func candidates() []entity.Point {
	result := make([]entity.Point, 0, 4*4+entity.Cells*entity.BoardSize+entity.Cells)

	for yOffset := uint8(0); yOffset <= 1; yOffset++ {
		for xOffset := uint8(0); xOffset <= 1; xOffset++ {
			tryX := clampHigh(center + xOffset)
			tryY := clampHigh(center + yOffset)

			result = append(result,
				entity.Point{X: tryX, Y: tryY},
				entity.Point{X: center - xOffset, Y: tryY},
				entity.Point{X: tryX, Y: center - yOffset},
				entity.Point{X: center - xOffset, Y: center - yOffset},
			)
		}
	}

	for radius := uint8(1); radius < entity.BoardSize; radius++ {
		low := saturatingSub(center, radius)
		high := clampHigh(center + radius)

		for y := low; y <= high; y++ {
			for x := low; x <= high; x++ {
				if x == low || x == high || y == low || y == high {
					result = append(result, entity.Point{X: x, Y: y})
				}
			}
		}
	}

	for y := uint8(0); y < entity.BoardSize; y++ {
		for x := uint8(0); x < entity.BoardSize; x++ {
			result = append(result, entity.Point{X: x, Y: y})
		}
	}

	return result
}

func clampHigh(v uint8) uint8 {
	return min(v, entity.BoardSize-1)
}

func saturatingSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}

	return a - b
}
