package goban

import (
	"testing"

	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

// boardFrom builds a created board from up to seven rows of '.', 'W' and 'B'.
// Missing rows and columns are empty.
func boardFrom(t *testing.T, rows ...string) entity.Board {
	t.Helper()

	if len(rows) > entity.BoardSize {
		t.Fatalf("too many rows: %d", len(rows))
	}

	board := entity.NewBoard()
	for y, row := range rows {
		if len(row) > entity.BoardSize {
			t.Fatalf("row %d too long: %q", y, row)
		}

		for x, c := range row {
			p := entity.Point{X: uint8(x), Y: uint8(y)} //nolint: gosec // bounded above

			switch c {
			case 'W':
				board = board.With(p, entity.White)
			case 'B':
				board = board.With(p, entity.Black)
			case '.':
			default:
				t.Fatalf("unexpected cell %q at %d,%d", c, x, y)
			}
		}
	}

	return board
}

func pt(x, y uint8) entity.Point {
	return entity.Point{X: x, Y: y}
}
