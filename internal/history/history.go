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

// Package history holds the ply-indexed undo state a Position needs to
// reverse a move it has made. Each entry carries exactly what can't be
// recomputed by replaying the move backwards: the previous zobrist key,
// castling rights, en passant square, half move clock and any captured
// piece.
package history

import (
	"github.com/gammazero/deque"

	. "github.com/nullmove/chesscore/internal/types"
)

// State is one ply's worth of undo information, pushed by Position.MakeMove
// and popped by Position.UnmakeMove.
type State struct {
	ZobristKey      uint64
	Move            Move
	CapturedPiece   Piece
	CastlingRights  CastlingRights
	EnPassantSquare Square
	HalfMoveClock   int
}

// Stack is a ply-ordered undo stack. Moves are only ever made and unmade at
// the current ply, so a deque used purely as a LIFO stack is enough - no
// random removal is needed.
type Stack struct {
	d deque.Deque
}

// NewStack returns an empty undo stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push adds st as the most recent ply.
func (s *Stack) Push(st State) {
	s.d.PushBack(st)
}

// Pop removes and returns the most recent ply. Callers must check Len first.
func (s *Stack) Pop() State {
	return s.d.PopBack().(State)
}

// Peek returns the most recent ply without removing it. Callers must check
// Len first.
func (s *Stack) Peek() State {
	return s.d.Back().(State)
}

// Len returns the number of plies currently on the stack.
func (s *Stack) Len() int {
	return s.d.Len()
}

// At returns the ply i entries below the top, where At(0) equals Peek.
func (s *Stack) At(i int) State {
	return s.d.At(s.d.Len() - 1 - i).(State)
}
