/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position represents data structures and functions for a chess board
// and its position.
// It uses a 8x8 piece board and bitboards, a deque-backed undo stack, zobrist
// keys for transposition tables and a pair of incrementally maintained
// per-square attacker counters used for O(1) check and legality tests.
//
// Create a new instance with NewPosition(...) with no parameters to get the
// chess start position.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/nullmove/chesscore/internal/assert"
	"github.com/nullmove/chesscore/internal/history"
	"github.com/nullmove/chesscore/internal/invariant"
	myLogging "github.com/nullmove/chesscore/internal/logging"
	. "github.com/nullmove/chesscore/internal/types"
)

var log *logging.Logger

var initialized = false

func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

// StartFen is the fen of the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Key is used for zobrist keys in chess positions. Zobrist keys need all 64
// bits for distribution.
type Key uint64

// Position represents the chess board and its position. It uses a 8x8 piece
// board, bitboards, a zobrist key for transposition tables and a pair of
// incrementally maintained per-square attack counters.
//
// Needs to be created with NewPosition() or NewPosition(fen string).
type Position struct {
	// zobristKey is updated incrementally every time a state variable changes.
	zobristKey Key

	// Board State - a unique chess position (exception is 3-fold repetition
	// which is not represented in a FEN string either).
	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	// Extended board state - not necessary for a unique position.
	kingSquare         [ColorLength]Square
	nextHalfMoveNumber int
	piecesBb           [ColorLength][PtLength]Bitboard
	occupiedBb         [ColorLength]Bitboard

	// ad[c][sq] is the number of pieces of color c that currently attack sq.
	// Maintained incrementally by putPiece/removePiece so that check and
	// move-legality tests are simple O(1) lookups instead of a reverse
	// attack scan.
	ad [ColorLength][SqLength]int

	// history is the ply-indexed undo stack.
	history *history.Stack
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewPosition creates a new position. Called without an argument the
// position will be the start position. When a fen string is given it will
// create a position based on this fen. Additional args are ignored.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, _ := NewPositionFen(fen[0])
	return p
}

// NewPositionFen creates a new position with the given fen string as board
// position. It returns nil and an error if the fen was invalid.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{history: history.NewStack()}
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", e)
		return nil, e
	}
	return p, nil
}

// MakeMove commits a move to the board and reports whether the resulting
// position is legal, i.e. the moving side's own king is not left in check
// and, for castling, the king did not start, cross or land on an attacked
// square. The move is made and pushed onto the undo stack whether or not it
// is legal, so every call must be paired with a call to UnmakeMove.
func (p *Position) MakeMove(m Move) bool {
	fromSq := m.From()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	toSq := m.To()
	targetPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "MakeMove: invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "MakeMove: no piece on %s for move %s", fromSq.String(), m.StringUci())
		assert.Assert(myColor == p.nextPlayer, "MakeMove: piece to move does not belong to next player %s", fromPc.String())
		assert.Assert(targetPc.TypeOf() != King, "MakeMove: king cannot be captured (move %s)", m.StringUci())
	}

	// a king may not start, cross or land on a square attacked by the
	// opponent while castling
	legal := true
	if m.MoveType() == Castling {
		opponent := p.nextPlayer.Flip()
		passSq := castlingPassSquare(toSq)
		if p.ad[opponent][fromSq] > 0 || p.ad[opponent][passSq] > 0 {
			legal = false
		}
	}

	p.history.Push(history.State{
		ZobristKey:      uint64(p.zobristKey),
		Move:            m,
		CapturedPiece:   targetPc,
		CastlingRights:  p.castlingRights,
		EnPassantSquare: p.enPassantSquare,
		HalfMoveClock:   p.halfMoveClock,
	})

	switch m.MoveType() {
	case Normal:
		p.doNormalMove(fromSq, toSq, targetPc, fromPc, myColor)
	case Promotion:
		p.doPromotionMove(m, fromPc, myColor, toSq, targetPc, fromSq)
	case EnPassant:
		p.doEnPassantMove(toSq, myColor, fromPc, fromSq)
	case Castling:
		p.doCastlingMove(fromPc, myColor, toSq, fromSq)
	}

	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer

	return legal && p.ad[p.nextPlayer][p.kingSquare[p.nextPlayer.Flip()]] == 0
}

// UnmakeMove restores the position to the state before the last call to
// MakeMove, whether or not that call reported the move as legal.
func (p *Position) UnmakeMove() {
	invariant.Require(p.history.Len() > 0, "UnmakeMove: no move on the undo stack")

	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	st := p.history.Pop()
	move := st.Move

	switch move.MoveType() {
	case Normal:
		p.movePiece(move.To(), move.From())
		if st.CapturedPiece != PieceNone {
			p.putPiece(st.CapturedPiece, move.To())
		}
	case Promotion:
		p.removePiece(move.To())
		p.putPiece(MakePiece(p.nextPlayer, Pawn), move.From())
		if st.CapturedPiece != PieceNone {
			p.putPiece(st.CapturedPiece, move.To())
		}
	case EnPassant:
		p.movePiece(move.To(), move.From())
		p.putPiece(MakePiece(p.nextPlayer.Flip(), Pawn), move.To().To(p.nextPlayer.Flip().PawnPushDirection()))
	case Castling:
		p.movePiece(move.To(), move.From()) // king
		switch move.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1) // rook
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		default:
			invariant.Require(false, "UnmakeMove: invalid castling target %s", move.To().String())
		}
	}

	p.castlingRights = st.CastlingRights
	p.enPassantSquare = st.EnPassantSquare
	p.halfMoveClock = st.HalfMoveClock
	p.zobristKey = Key(st.ZobristKey)
}

func castlingPassSquare(toSq Square) Square {
	switch toSq {
	case SqG1:
		return SqF1
	case SqC1:
		return SqD1
	case SqG8:
		return SqF8
	case SqC8:
		return SqD8
	default:
		invariant.Require(false, "castlingPassSquare: invalid castling target %s", toSq.String())
		return SqNone
	}
}

// IsAttacked reports whether sq is currently attacked by a piece of color by.
// It looks up the incrementally maintained attack counters and, in addition,
// reports a pawn on sq that a pawn of color by can capture en passant.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if p.ad[by][sq] > 0 {
		return true
	}
	if p.enPassantSquare == SqNone || sq != p.enPassantSquare.To(by.Flip().PawnPushDirection()) {
		return false
	}
	return GetPawnAttacks(by.Flip(), p.enPassantSquare)&p.piecesBb[by][Pawn] != BbZero
}

// AttackerCount returns how many pieces of color by currently attack sq.
func (p *Position) AttackerCount(sq Square, by Color) int {
	return p.ad[by][sq]
}

// HasCheck returns true if the next player's king is currently attacked.
func (p *Position) HasCheck() bool {
	return p.ad[p.nextPlayer.Flip()][p.kingSquare[p.nextPlayer]] > 0
}

// IsCapturingMove determines if a move on this position is a capturing move,
// including en passant.
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.nextPlayer.Flip()].Has(move.To()) || move.MoveType() == EnPassant
}

// String returns a string representing the position: FEN, board matrix and
// next player.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.StringFen())
	sb.WriteString("\n")
	sb.WriteString(p.StringBoard())
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Next Player    : %s\n", p.nextPlayer.String()))
	return sb.String()
}

// StringFen returns a string with the FEN of the current position.
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard returns a visual matrix of the board and pieces.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(p.board[SquareOf(f, Rank8-r)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

// //////////////////////////////////////////////////////////
// Private - move application
// //////////////////////////////////////////////////////////

func (p *Position) doNormalMove(fromSq Square, toSq Square, targetPc Piece, fromPc Piece, myColor Color) {
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(cr)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in
		}
	}
	p.clearEnPassant()
	if targetPc != PieceNone { // capture
		p.removePiece(toSq)
		p.halfMoveClock = 0
	} else if fromPc.TypeOf() == Pawn {
		p.halfMoveClock = 0
		if SquareDistance(fromSq, toSq) == 2 { // pawn double - set en passant
			p.enPassantSquare = toSq.To(myColor.Flip().PawnPushDirection())
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()] // in
		}
	} else {
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doCastlingMove(fromPc Piece, myColor Color, toSq Square, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, King), "doCastlingMove: from piece not a king")
	}
	switch toSq {
	case SqG1:
		if assert.DEBUG {
			assert.Assert(p.castlingRights.Has(CastlingWhiteOO), "doCastlingMove: white king side castling not available")
			assert.Assert(p.OccupiedAll()&Intermediate(SqE1, SqH1) == 0, "doCastlingMove: king side blocked")
		}
		p.movePiece(fromSq, toSq)
		p.movePiece(SqH1, SqF1)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		p.castlingRights.Remove(CastlingWhite)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	case SqC1:
		if assert.DEBUG {
			assert.Assert(p.castlingRights.Has(CastlingWhiteOOO), "doCastlingMove: white queen side castling not available")
			assert.Assert(p.OccupiedAll()&Intermediate(SqE1, SqA1) == 0, "doCastlingMove: queen side blocked")
		}
		p.movePiece(fromSq, toSq)
		p.movePiece(SqA1, SqD1)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		p.castlingRights.Remove(CastlingWhite)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	case SqG8:
		if assert.DEBUG {
			assert.Assert(p.castlingRights.Has(CastlingBlackOO), "doCastlingMove: black king side castling not available")
			assert.Assert(p.OccupiedAll()&Intermediate(SqE8, SqH8) == 0, "doCastlingMove: king side blocked")
		}
		p.movePiece(fromSq, toSq)
		p.movePiece(SqH8, SqF8)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		p.castlingRights.Remove(CastlingBlack)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	case SqC8:
		if assert.DEBUG {
			assert.Assert(p.castlingRights.Has(CastlingBlackOOO), "doCastlingMove: black queen side castling not available")
			assert.Assert(p.OccupiedAll()&Intermediate(SqE8, SqA8) == 0, "doCastlingMove: queen side blocked")
		}
		p.movePiece(fromSq, toSq)
		p.movePiece(SqA8, SqD8)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		p.castlingRights.Remove(CastlingBlack)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	default:
		invariant.Require(false, "doCastlingMove: invalid castling target %s", toSq.String())
	}
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) doEnPassantMove(toSq Square, myColor Color, fromPc Piece, fromSq Square) {
	capSq := toSq.To(myColor.Flip().PawnPushDirection())
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "doEnPassantMove: from piece not a pawn")
		assert.Assert(p.enPassantSquare != SqNone, "doEnPassantMove: no en passant square set")
		assert.Assert(p.board[capSq] == MakePiece(myColor.Flip(), Pawn), "doEnPassantMove: no enemy pawn to capture")
	}
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doPromotionMove(m Move, fromPc Piece, myColor Color, toSq Square, targetPc Piece, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "doPromotionMove: from piece not a pawn")
		assert.Assert(toSq.RankOf() == Rank1 || toSq.RankOf() == Rank8, "doPromotionMove: target not on the back rank")
	}
	if targetPc != PieceNone {
		p.removePiece(toSq)
	}
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
			p.castlingRights.Remove(cr)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		}
	}
	p.removePiece(fromSq)
	p.putPiece(MakePiece(myColor, m.PromotionType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

// //////////////////////////////////////////////////////////
// Private - board primitives & incremental attack maintenance
// //////////////////////////////////////////////////////////

func (p *Position) movePiece(fromSq Square, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()
	pieceType := piece.TypeOf()

	invariant.Require(p.board[square] == PieceNone, "putPiece: square %s already occupied", square.String())

	// other sliders whose ray passes through square are about to be blocked
	p.blockSliders(square)

	p.board[square] = piece
	if pieceType == King {
		p.kingSquare[color] = square
	}
	p.piecesBb[color][pieceType].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)
	p.zobristKey ^= zobristBase.pieces[piece][square]

	// the new piece's own attacks
	p.applyOwnAttacks(piece, square, 1)
}

func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	color := removed.ColorOf()
	pieceType := removed.TypeOf()

	invariant.Require(removed != PieceNone, "removePiece: square %s already empty", square.String())

	// the departing piece's own attacks
	p.applyOwnAttacks(removed, square, -1)

	p.board[square] = PieceNone
	p.piecesBb[color][pieceType].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)
	p.zobristKey ^= zobristBase.pieces[removed][square]

	// other sliders whose ray passes through square may now see further
	p.unblockSliders(square)

	return removed
}

// applyOwnAttacks adds (sign=1) or removes (sign=-1) the attack bitboard
// emitted by piece standing on square to/from the ad counters.
func (p *Position) applyOwnAttacks(piece Piece, square Square, sign int) {
	c := piece.ColorOf()
	var att Bitboard
	switch piece.TypeOf() {
	case Pawn:
		att = GetPawnAttacks(c, square)
	case Knight, King:
		att = GetPseudoAttacks(piece.TypeOf(), square)
	default: // Bishop, Rook, Queen
		att = GetAttacksBb(piece.TypeOf(), square, p.OccupiedAll())
	}
	for att != 0 {
		s := att.PopLsb()
		p.ad[c][s] += sign
	}
}

// blockSliders must be called before square becomes occupied. It finds every
// slider whose ray currently passes through square and subtracts whatever
// part of its attack square will block once square is occupied.
func (p *Position) blockSliders(square Square) {
	occBefore := p.OccupiedAll()
	occAfter := occBefore | square.Bb()
	p.retarget(square, occBefore, occAfter, occBefore)
}

// unblockSliders must be called after square has become empty. It finds
// every slider whose ray now passes through square and adds whatever
// further squares it can now see through the gap.
func (p *Position) unblockSliders(square Square) {
	occAfter := p.OccupiedAll()
	occBefore := occAfter | square.Bb()
	p.retarget(square, occBefore, occAfter, occAfter)
}

// retarget recomputes the attack bitboard of every slider that can see
// square in the given empty-square occupancy (occEmpty) and applies the
// difference between its attacks under occBefore and occAfter to ad.
func (p *Position) retarget(square Square, occBefore, occAfter, occEmpty Bitboard) {
	rookLike := p.piecesBb[White][Rook] | p.piecesBb[White][Queen] | p.piecesBb[Black][Rook] | p.piecesBb[Black][Queen]
	bishopLike := p.piecesBb[White][Bishop] | p.piecesBb[White][Queen] | p.piecesBb[Black][Bishop] | p.piecesBb[Black][Queen]

	candidates := (GetAttacksBb(Rook, square, occEmpty) & rookLike) | (GetAttacksBb(Bishop, square, occEmpty) & bishopLike)

	for candidates != 0 {
		cs := candidates.PopLsb()
		pc := p.board[cs]
		c := pc.ColorOf()
		pt := pc.TypeOf()
		oldAtt := GetAttacksBb(pt, cs, occBefore)
		newAtt := GetAttacksBb(pt, cs, occAfter)
		lost := oldAtt &^ newAtt
		gained := newAtt &^ oldAtt
		for lost != 0 {
			s := lost.PopLsb()
			p.ad[c][s]--
		}
		for gained != 0 {
			s := gained.PopLsb()
			p.ad[c][s]++
		}
	}
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

// //////////////////////////////////////////////////////////
// Private - FEN
// //////////////////////////////////////////////////////////

func (p *Position) fen() string {
	var fen strings.Builder
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					fen.WriteString(strconv.Itoa(emptySquares))
					emptySquares = 0
				}
				fen.WriteString(pc.String())
			}
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))
	return fen.String()
}

var regexFenPos = regexp.MustCompile("[0-8pPnNbBrRqQkK/]+")
var regexWorB = regexp.MustCompile("^[w|b]$")
var regexEnPassant = regexp.MustCompile("^([a-h][1-8]|-)$")

// setupBoard sets up a board based on a fen. This is the only way to get a
// valid Position instance; internal state is zero-initialized beforehand.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) > 6 {
		return fmt.Errorf("fen has too many fields: %d (max 6)", len(fenParts))
	}

	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	currentSquare := SqA8
	squaresInRank := 0
	for _, c := range fenParts[0] {
		if number, e := strconv.Atoi(string(c)); e == nil {
			squaresInRank += number
			if squaresInRank > 8 {
				return errors.New("fen rank has more than 8 squares")
			}
			currentSquare = Square(int(currentSquare) + (number * int(East)))
		} else if string(c) == "/" {
			if squaresInRank != 8 {
				return errors.New("fen rank does not sum to 8 squares")
			}
			squaresInRank = 0
			currentSquare = currentSquare.To(South).To(South)
			if currentSquare == SqNone {
				return errors.New("fen has more than 8 ranks")
			}
		} else {
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %s", string(c))
			}
			squaresInRank++
			if squaresInRank > 8 {
				return errors.New("fen rank has more than 8 squares")
			}
			p.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	if squaresInRank != 8 {
		return errors.New("fen rank does not sum to 8 squares")
	}
	if currentSquare != SqA2 {
		return errors.New("not reached last square (h1) after reading fen")
	}

	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone

	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return errors.New("fen next player contains invalid characters")
		}
		switch fenParts[1] {
		case "w":
			p.nextPlayer = White
		case "b":
			p.nextPlayer = Black
			p.zobristKey ^= zobristBase.nextPlayer
			p.nextHalfMoveNumber++
		}
	}

	if len(fenParts) >= 3 {
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				switch string(c) {
				case "K":
					p.castlingRights.Add(CastlingWhiteOO)
				case "Q":
					p.castlingRights.Add(CastlingWhiteOOO)
				case "k":
					p.castlingRights.Add(CastlingBlackOO)
				case "q":
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	}

	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant square contains invalid characters")
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	if len(fenParts) >= 5 {
		if number, e := strconv.Atoi(fenParts[4]); e == nil {
			p.halfMoveClock = number
		} else {
			return e
		}
	}

	if len(fenParts) >= 6 {
		if moveNumber, e := strconv.Atoi(fenParts[5]); e == nil {
			if moveNumber == 0 {
				moveNumber = 1
			}
			p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.nextPlayer))
		} else {
			return e
		}
	}

	return nil
}

// //////////////////////////////////////////////////////
// // Getter and Setter functions
// //////////////////////////////////////////////////////

// ZobristKey returns the current zobrist key for this position.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// NextPlayer returns the next player to move.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// GetPiece returns the piece on the given square (PieceNone if empty).
func (p *Position) GetPiece(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the Bitboard for the given piece type of the given color.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedAll returns a Bitboard of all pieces currently on the board.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// OccupiedBb returns a Bitboard of all pieces of color c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// GetEnPassantSquare returns the en passant square or SqNone if not set.
func (p *Position) GetEnPassantSquare() Square {
	return p.enPassantSquare
}

// CastlingRights returns the castling rights instance of the position.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// KingSquare returns the current square of the king of color c.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the position's half move clock.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// LastMove returns the last move made on the position, or MoveNone if the
// position has no history.
func (p *Position) LastMove() Move {
	if p.history.Len() == 0 {
		return MoveNone
	}
	return p.history.Peek().Move
}

// LastCapturedPiece returns the piece captured by the last move, or
// PieceNone if the last move was non-capturing or there is no history.
func (p *Position) LastCapturedPiece() Piece {
	if p.history.Len() == 0 {
		return PieceNone
	}
	return p.history.Peek().CapturedPiece
}

// WasCapturingMove returns true if the last move was a capturing move.
func (p *Position) WasCapturingMove() bool {
	return p.LastCapturedPiece() != PieceNone
}
