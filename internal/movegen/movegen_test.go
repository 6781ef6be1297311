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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nullmove/chesscore/internal/position"
	. "github.com/nullmove/chesscore/internal/types"
)

func TestGeneratePseudoLegalMoves_StartPosition(t *testing.T) {
	p := position.NewPosition(position.StartFen)
	mg := NewMoveGen()
	moves := mg.GeneratePseudoLegalMoves(p)
	assert.Equal(t, 20, moves.Len())
}

func TestGeneratePseudoLegalMoves_NoDuplicatesAndOwnSource(t *testing.T) {
	p := position.NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	mg := NewMoveGen()
	moves := mg.GeneratePseudoLegalMoves(p)

	seen := make(map[Move]bool, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		assert.False(t, seen[m], "duplicate move %s", m.StringUci())
		seen[m] = true
		fromPiece := p.GetPiece(m.From())
		assert.NotEqual(t, PieceNone, fromPiece)
		assert.Equal(t, p.NextPlayer(), fromPiece.ColorOf())
	}
}

func TestGeneratePseudoLegalMoves_PromotionsOnSeventhRank(t *testing.T) {
	p := position.NewPosition("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	mg := NewMoveGen()
	moves := mg.GeneratePseudoLegalMoves(p)

	promotions := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).MoveType() == Promotion {
			promotions++
		}
	}
	assert.Equal(t, 4, promotions)
}

func TestGeneratePseudoLegalMoves_CastlingRequiresEmptySquares(t *testing.T) {
	p := position.NewPosition("r3k2r/8/8/8/8/8/8/R3K1NR w KQkq - 0 1")
	mg := NewMoveGen()
	moves := mg.GeneratePseudoLegalMoves(p)

	hasKingside, hasQueenside := false, false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.MoveType() != Castling {
			continue
		}
		switch m.To() {
		case SqG1:
			hasKingside = true
		case SqC1:
			hasQueenside = true
		}
	}
	assert.False(t, hasKingside, "g1 knight blocks kingside castling")
	assert.True(t, hasQueenside)
}
