package types

import "github.com/nullmove/chesscore/internal/invariant"

// Square is a board square index 0 (a1) to 63 (h8), with SqNone (64) as the
// "no square" sentinel used by unset en-passant/castling fields etc.
type Square int8

// Square values.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// IsValid checks for a valid value range of a square instance.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq <= SqH8
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf builds a square from a file and rank. Returns SqNone if either
// is out of range - this is the boundary-input path used by FEN parsing,
// where malformed text is expected and must not crash the parser.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// MustSquareOf is like SquareOf but for internal callers that already know
// f and r are on the board: an out-of-range pair here is a programming
// error, not bad input, so it halts instead of returning a sentinel.
func MustSquareOf(f File, r Rank) Square {
	invariant.Require(f.IsValid() && r.IsValid(), "invalid square coordinates file=%d rank=%d", f, r)
	return Square(int(r)<<3 + int(f))
}

// String returns the algebraic label of the square (e.g. "e4"), or "-" if
// the square is invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// MakeSquare parses a two-character algebraic square label such as "e4".
// Returns SqNone for anything else.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	return SquareOf(f, r)
}

// To returns the square one step away in the given direction, or SqNone if
// that step would leave the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		if n := sq + Square(North); n.IsValid() {
			return n
		}
		return SqNone
	case South:
		if n := sq + Square(South); n.IsValid() {
			return n
		}
		return SqNone
	case East:
		if sq.FileOf() < FileH {
			return sq + Square(East)
		}
		return SqNone
	case Northeast:
		if sq.FileOf() < FileH && sq.RankOf() < Rank8 {
			return sq + Square(Northeast)
		}
		return SqNone
	case Southeast:
		if sq.FileOf() < FileH && sq.RankOf() > Rank1 {
			return sq + Square(Southeast)
		}
		return SqNone
	case West:
		if sq.FileOf() > FileA {
			return sq + Square(West)
		}
		return SqNone
	case Southwest:
		if sq.FileOf() > FileA && sq.RankOf() > Rank1 {
			return sq + Square(Southwest)
		}
		return SqNone
	case Northwest:
		if sq.FileOf() > FileA && sq.RankOf() < Rank8 {
			return sq + Square(Northwest)
		}
		return SqNone
	default:
		panic("invalid direction")
	}
}
