package types

// Piece is a colored piece, encoded as (color<<3)+pieceType so ColorOf and
// TypeOf are cheap shift/mask operations.
type Piece int8

// Piece values. The encoding leaves gaps at 7, 8 and 15 (color bit 3, no
// piece type 0) which PieceLength accounts for.
const (
	PieceNone Piece = 0

	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6

	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14

	PieceLength = 16
)

var pieceToString = "-KPNBRQ--kpnbrq-"

// String returns the FEN letter for the piece ("-" for PieceNone).
func (p Piece) String() string {
	return string(pieceToString[p])
}

// MakePiece combines a color and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((c << 3) + Color(pt))
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type, stripping the color bit.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the static material value of the piece.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// IsValid checks for a valid value range of a piece instance.
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid() && p.ColorOf().IsValid()
}

// PieceFromChar returns the Piece for a single FEN piece letter, or
// PieceNone if s is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	switch s[0] {
	case 'K':
		return WhiteKing
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'k':
		return BlackKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	default:
		return PieceNone
	}
}
