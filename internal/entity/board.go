package entity

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

const (
	// BoardSize is the side length of the grid.
	BoardSize = 7
	// Cells is the number of playable cells.
	Cells = BoardSize * BoardSize

	bitsPerCell  = 2
	playableBits = Cells * bitsPerCell

	// createdBit marks a created but empty board. It sits far above the playable range.
	createdBit = 127
	// storedBits is the width of the persisted board word.
	storedBits = 128
)

var ErrBoardTooWide = errors.New("board value exceeds 128 bits")

// Stone is the 2-bit value held by one cell.
type Stone uint8

const (
	Empty Stone = iota
	White       // the human player
	Black       // the automated opponent
)

// Opponent returns the other colour. Empty has no opponent.
func (s Stone) Opponent() Stone {
	switch s {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

// Point is a cell coordinate. The origin is the top-left corner.
type Point struct {
	X uint8 `json:"x"`
	Y uint8 `json:"y"`
}

// InBounds reports whether both coordinates lie on the grid.
func (p Point) InBounds() bool {
	return p.X < BoardSize && p.Y < BoardSize
}

// Index is the row-major position of p.
func (p Point) Index() uint {
	return uint(p.Y)*BoardSize + uint(p.X)
}

// Board packs the grid into one wide integer, two bits per cell in row-major order.
// The zero value means "no game"; NewBoard returns the created-but-empty board.
type Board struct {
	bits uint256.Int
}

// NewBoard returns an empty board with the created sentinel set.
func NewBoard() Board {
	var b Board
	b.bits.Lsh(uint256.NewInt(1), createdBit)

	return b
}

// IsZero reports whether the board represents "no game".
func (b Board) IsZero() bool {
	return b.bits.IsZero()
}

// At returns the stone at p. Positions outside the playable range read as Empty.
func (b Board) At(p Point) Stone {
	shift, ok := cellShift(p)
	if !ok {
		return Empty
	}

	var v uint256.Int
	v.Rsh(&b.bits, shift)

	return Stone(v.Uint64() & 0b11)
}

// With returns a copy of b with p set to s. Positions outside the playable range
// leave the board unchanged.
func (b Board) With(p Point, s Stone) Board {
	shift, ok := cellShift(p)
	if !ok {
		return b
	}

	var mask uint256.Int
	mask.Lsh(uint256.NewInt(0b11), shift)
	mask.Not(&mask)

	var value uint256.Int
	value.Lsh(uint256.NewInt(uint64(s&0b11)), shift)

	var next Board
	next.bits.And(&b.bits, &mask)
	next.bits.Or(&next.bits, &value)

	return next
}

// IsFull reports whether every cell is occupied.
func (b Board) IsFull() bool {
	for y := uint8(0); y < BoardSize; y++ {
		for x := uint8(0); x < BoardSize; x++ {
			if b.At(Point{X: x, Y: y}) == Empty {
				return false
			}
		}
	}

	return true
}

// Grid unpacks the board into rows of cell values.
func (b Board) Grid() [BoardSize][BoardSize]Stone {
	var grid [BoardSize][BoardSize]Stone
	for y := uint8(0); y < BoardSize; y++ {
		for x := uint8(0); x < BoardSize; x++ {
			grid[y][x] = b.At(Point{X: x, Y: y})
		}
	}

	return grid
}

// String returns the decimal form of the packed integer.
func (b Board) String() string {
	return b.bits.Dec()
}

// ParseBoard decodes the decimal form produced by String.
func ParseBoard(s string) (Board, error) {
	if s == "" {
		return Board{}, nil
	}

	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Board{}, fmt.Errorf("could not parse board %q: %w", s, err)
	}

	if v.BitLen() > storedBits {
		return Board{}, ErrBoardTooWide
	}

	return Board{bits: *v}, nil
}

func cellShift(p Point) (uint, bool) {
	shift := (uint(p.Y)*BoardSize + uint(p.X)) * bitsPerCell
	if shift >= playableBits {
		return 0, false
	}

	return shift, true
}
