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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nullmove/chesscore/internal/position"
	. "github.com/nullmove/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

// DivideEntry is the node count contributed by a single root move, the
// classic "perft divide" breakdown.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// Perft walks the make/unmake tree to a fixed depth and counts the leaves,
// plus a handful of per-leaf move-type tallies kept purely as supplementary
// statistics - they cost nothing extra alongside the node count walk.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	Divide           []DivideEntry
	Elapsed          time.Duration
}

// NewPerft returns a zeroed Perft ready for Compute.
func NewPerft() *Perft {
	return &Perft{}
}

func (perft *Perft) reset() {
	*perft = Perft{}
}

// Compute runs perft(depth) from the given FEN and returns the node count.
// depth 0 returns 1 without touching the position.
func (perft *Perft) Compute(fen string, depth int) uint64 {
	perft.reset()
	if depth <= 0 {
		perft.Nodes = 1
		return 1
	}
	p, err := position.NewPositionFen(fen)
	if err != nil {
		log.Errorf("perft: invalid fen %q: %v", fen, err)
		return 0
	}
	mg := NewMoveGen()
	start := time.Now()
	perft.Nodes = perft.walk(depth, p, mg, true)
	perft.Elapsed = time.Since(start)
	return perft.Nodes
}

// walk recurses through pseudo-legal moves, applying make/unmake around
// each. Illegal moves (rejected by MakeMove) are skipped but still unmade,
// since make/unmake is always symmetric regardless of legality.
func (perft *Perft) walk(depth int, p *position.Position, mg *MoveGen, root bool) uint64 {
	if depth == 0 {
		return 1
	}
	moves := mg.GeneratePseudoLegalMoves(p)
	var total uint64
	for i := 0; i < moves.Len(); i++ {
		move := moves.At(i)
		capture := p.GetPiece(move.To()) != PieceNone || move.MoveType() == EnPassant
		legal := p.MakeMove(move)
		var nodes uint64
		if legal {
			if depth == 1 {
				nodes = 1
				perft.tally(move, capture, p)
			} else {
				nodes = perft.walk(depth-1, p, mg, false)
			}
			total += nodes
		}
		p.UnmakeMove()
		if root && legal {
			perft.Divide = append(perft.Divide, DivideEntry{Move: move.StringUci(), Nodes: nodes})
		}
	}
	return total
}

// tally updates the leaf-level move-type statistics for a move that has
// just been made (p reflects the position after the move).
func (perft *Perft) tally(move Move, capture bool, p *position.Position) {
	switch {
	case move.MoveType() == EnPassant:
		perft.EnpassantCounter++
		perft.CaptureCounter++
	case capture:
		perft.CaptureCounter++
	}
	if move.MoveType() == Castling {
		perft.CastleCounter++
	}
	if move.MoveType() == Promotion {
		perft.PromotionCounter++
	}
	if p.HasCheck() {
		perft.CheckCounter++
	}
}

// PrintSummary writes a locale-formatted report of the last Compute call to
// the package's German-locale printer, matching the teacher's number
// formatting for large node counts.
func (perft *Perft) PrintSummary(fen string, depth int) {
	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")
	nanos := perft.Elapsed.Nanoseconds() + 1
	out.Printf("Time         : %s\n", perft.Elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(nanos))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
}
