//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package movegen generates pseudo-legal moves for a position. Legality
// (does the mover leave their own king in check) is not decided here - it
// falls out of Position.MakeMove's attacker-count check.
package movegen

import (
	"github.com/op/go-logging"

	myLogging "github.com/nullmove/chesscore/internal/logging"
	"github.com/nullmove/chesscore/internal/moveslice"
	"github.com/nullmove/chesscore/internal/position"
	. "github.com/nullmove/chesscore/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// MoveGen generates pseudo-legal moves. It carries no per-position state and
// a single instance may be reused across positions and goroutines.
type MoveGen struct{}

// NewMoveGen returns a ready-to-use move generator.
func NewMoveGen() *MoveGen {
	return &MoveGen{}
}

// GeneratePseudoLegalMoves returns every pseudo-legal move for the position's
// side to move, in a fixed (pawns, sliders, knights, king, castling) order.
func (mg *MoveGen) GeneratePseudoLegalMoves(p *position.Position) *moveslice.MoveSlice {
	ml := moveslice.NewMoveSlice(64)
	mg.generatePawnMoves(p, ml)
	mg.generateSliderMoves(p, ml)
	mg.generateKnightMoves(p, ml)
	mg.generateKingMoves(p, ml)
	mg.generateCastling(p, ml)
	log.Debugf("generated %d pseudo-legal moves for %s", ml.Len(), p.StringFen())
	return ml
}

// generatePawnMoves emits pushes, double jumps, and captures (including en
// passant); pawns standing on the rank one step from promotion emit all four
// promotion pieces instead of a plain move.
func (mg *MoveGen) generatePawnMoves(p *position.Position, ml *moveslice.MoveSlice) {
	color := p.NextPlayer()
	dir := color.PawnPushDirection()
	promRank, startRank := Rank7, Rank2
	if color == Black {
		promRank, startRank = Rank2, Rank7
	}

	occAll := p.OccupiedAll()
	oppOcc := p.OccupiedBb(color.Flip())
	epSq := p.GetEnPassantSquare()
	epBb := BbZero
	if epSq != SqNone {
		epBb = epSq.Bb()
	}

	pawns := p.PiecesBb(color, Pawn)
	for pawns != BbZero {
		from := pawns.PopLsb()
		promoting := from.RankOf() == promRank

		pushOne := from.To(dir)
		if occAll&pushOne.Bb() == BbZero {
			if promoting {
				pushPromotions(ml, from, pushOne)
			} else {
				ml.PushBack(CreateMove(from, pushOne, Normal, PtNone))
				if from.RankOf() == startRank {
					pushTwo := pushOne.To(dir)
					if occAll&pushTwo.Bb() == BbZero {
						ml.PushBack(CreateMove(from, pushTwo, Normal, PtNone))
					}
				}
			}
		}

		captures := GetPawnAttacks(color, from) & (oppOcc | epBb)
		for captures != BbZero {
			to := captures.PopLsb()
			switch {
			case promoting:
				pushPromotions(ml, from, to)
			case to == epSq:
				ml.PushBack(CreateMove(from, to, EnPassant, PtNone))
			default:
				ml.PushBack(CreateMove(from, to, Normal, PtNone))
			}
		}
	}
}

// pushPromotions appends the four promotion moves from -> to, queen first.
func pushPromotions(ml *moveslice.MoveSlice, from Square, to Square) {
	ml.PushBack(CreateMove(from, to, Promotion, Queen))
	ml.PushBack(CreateMove(from, to, Promotion, Rook))
	ml.PushBack(CreateMove(from, to, Promotion, Bishop))
	ml.PushBack(CreateMove(from, to, Promotion, Knight))
}

// generateSliderMoves emits bishop, rook and queen moves using the magic
// bitboard attack tables against the current occupancy.
func (mg *MoveGen) generateSliderMoves(p *position.Position, ml *moveslice.MoveSlice) {
	color := p.NextPlayer()
	ownOcc := p.OccupiedBb(color)
	occAll := p.OccupiedAll()

	for _, pt := range [3]PieceType{Bishop, Rook, Queen} {
		pieces := p.PiecesBb(color, pt)
		for pieces != BbZero {
			from := pieces.PopLsb()
			targets := GetAttacksBb(pt, from, occAll) &^ ownOcc
			for targets != BbZero {
				to := targets.PopLsb()
				ml.PushBack(CreateMove(from, to, Normal, PtNone))
			}
		}
	}
}

// generateKnightMoves emits knight moves from the precomputed pseudo-attack
// table, minus squares occupied by the mover's own pieces.
func (mg *MoveGen) generateKnightMoves(p *position.Position, ml *moveslice.MoveSlice) {
	color := p.NextPlayer()
	ownOcc := p.OccupiedBb(color)
	pieces := p.PiecesBb(color, Knight)
	for pieces != BbZero {
		from := pieces.PopLsb()
		targets := GetPseudoAttacks(Knight, from) &^ ownOcc
		for targets != BbZero {
			to := targets.PopLsb()
			ml.PushBack(CreateMove(from, to, Normal, PtNone))
		}
	}
}

// generateKingMoves emits the king's one-step moves. Whether a destination
// walks into check is a legality question, decided in Position.MakeMove.
func (mg *MoveGen) generateKingMoves(p *position.Position, ml *moveslice.MoveSlice) {
	color := p.NextPlayer()
	ownOcc := p.OccupiedBb(color)
	from := p.KingSquare(color)
	targets := GetPseudoAttacks(King, from) &^ ownOcc
	for targets != BbZero {
		to := targets.PopLsb()
		ml.PushBack(CreateMove(from, to, Normal, PtNone))
	}
}

// generateCastling emits castling moves whose rook-side squares are empty
// and whose king is not currently in check. Whether the king's transit
// squares are attacked is checked by Position.MakeMove, not here.
func (mg *MoveGen) generateCastling(p *position.Position, ml *moveslice.MoveSlice) {
	color := p.NextPlayer()
	kingSq := p.KingSquare(color)
	if p.IsAttacked(kingSq, color.Flip()) {
		return
	}
	rights := p.CastlingRights()
	occ := p.OccupiedAll()

	if color == White {
		if rights.Has(CastlingWhiteOO) && occ&(SqF1.Bb()|SqG1.Bb()) == BbZero {
			ml.PushBack(CreateMove(kingSq, SqG1, Castling, PtNone))
		}
		if rights.Has(CastlingWhiteOOO) && occ&(SqB1.Bb()|SqC1.Bb()|SqD1.Bb()) == BbZero {
			ml.PushBack(CreateMove(kingSq, SqC1, Castling, PtNone))
		}
		return
	}
	if rights.Has(CastlingBlackOO) && occ&(SqF8.Bb()|SqG8.Bb()) == BbZero {
		ml.PushBack(CreateMove(kingSq, SqG8, Castling, PtNone))
	}
	if rights.Has(CastlingBlackOOO) && occ&(SqB8.Bb()|SqC8.Bb()|SqD8.Bb()) == BbZero {
		ml.PushBack(CreateMove(kingSq, SqC8, Castling, PtNone))
	}
}
