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

// Command perft drives the move generator's perft walk from the command
// line: either the five canonical test vectors, run concurrently, or a
// single FEN/depth pair given on the command line.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/nullmove/chesscore/internal/config"
	"github.com/nullmove/chesscore/internal/logging"
	"github.com/nullmove/chesscore/internal/movegen"
	"github.com/nullmove/chesscore/internal/position"
)

// vector is one canonical perft test position (§8 of the position-core spec).
type vector struct {
	name  string
	fen   string
	depth int
}

var canonical = []vector{
	{"startpos", position.StartFen, 5},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4},
	{"pos3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5},
	{"pos4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4},
	{"enpassant", "rnbqkbnr/ppp2ppp/4p3/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", 3},
}

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", "", "FEN to run perft on, instead of the canonical test vectors")
	depth := flag.Int("depth", 0, "perft depth for -fen (ignored when -fen is empty)")
	profileMode := flag.String("profile", "", "enable profiling: cpu|mem")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	log := logging.GetLog()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	case "":
	default:
		log.Errorf("unknown -profile mode %q, expected cpu or mem", *profileMode)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *fen != "" {
		d := *depth
		if d <= 0 {
			d = config.Settings.Gen.DefaultDepth
		}
		runOne(vector{name: "custom", fen: *fen, depth: d})
		return
	}

	if err := runAll(ctx, canonical); err != nil {
		log.Errorf("perft run aborted: %v", err)
		os.Exit(1)
	}
}

// runOne runs and prints a single perft vector.
func runOne(v vector) {
	var p movegen.Perft
	p.Compute(v.fen, v.depth)
	p.PrintSummary(v.fen, v.depth)
}

// runAll fans the canonical vectors out across goroutines, one Position per
// goroutine. When ctx is cancelled (an interrupt) runAll returns ctx's error
// at once and the walks still running are abandoned; otherwise results are
// printed in input order once every walk has finished.
func runAll(ctx context.Context, vectors []vector) error {
	results := make([]movegen.Perft, len(vectors))

	g, gctx := errgroup.WithContext(ctx)
	for i, v := range vectors {
		i, v := i, v
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i].Compute(v.fen, v.depth)
			return nil
		})
	}
	done := make(chan error, 1)
	go func() { done <- g.Wait() }()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return err
		}
	}

	for i, v := range vectors {
		results[i].PrintSummary(v.fen, v.depth)
	}
	return nil
}
