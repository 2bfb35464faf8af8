package goban

import (
	"github.com/rocketscienceinc/gogame-backend/internal/apperror"
	"github.com/rocketscienceinc/gogame-backend/internal/entity"
)

// ValidateMove checks a placement of color at p against board and the stored ko
// point. Checks run in a fixed order so the first violated rule is reported.
func ValidateMove(board entity.Board, ko, p entity.Point, color entity.Stone) error {
	if !p.InBounds() {
		return apperror.ErrInvalidPosition
	}

	if board.At(p) != entity.Empty {
		return apperror.ErrCellOccupied
	}

	if IsKoViolation(ko, p) {
		return apperror.ErrKoViolation
	}

	if WouldBeSuicide(board, p, color) {
		return apperror.ErrSuicide
	}

	return nil
}

// IsLegal reports whether ValidateMove accepts the placement.
func IsLegal(board entity.Board, ko, p entity.Point, color entity.Stone) bool {
	return ValidateMove(board, ko, p, color) == nil
}

// IsKoViolation reports whether p replays the stored ko point.
// The origin doubles as "no ko", so a ko there is never enforced.
func IsKoViolation(ko, p entity.Point) bool {
	if ko == entity.NoKo {
		return false
	}

	return p == ko
}

// WouldBeSuicide reports whether placing color at p leaves its own group without
// liberties. A placement that captures is never suicide.
func WouldBeSuicide(board entity.Board, p entity.Point, color entity.Stone) bool {
	if WouldCaptureOpponent(board, p, color) {
		return false
	}

	return Liberties(board.With(p, color), p) == 0
}

// WouldCaptureOpponent reports whether an opposing neighbour group of p is down to
// its last liberty. Since p is empty and adjacent, that liberty is p itself.
func WouldCaptureOpponent(board entity.Board, p entity.Point, color entity.Stone) bool {
	if board.At(p) != entity.Empty {
		return false
	}

	opponent := color.Opponent()
	for _, n := range neighbors(p) {
		if board.At(n) == opponent && Liberties(board, n) == 1 {
			return true
		}
	}

	return false
}
