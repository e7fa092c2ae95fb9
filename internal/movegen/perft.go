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
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessperft/internal/config"
	"github.com/frankkopp/chessperft/internal/position"
	. "github.com/frankkopp/chessperft/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft walks the full game tree of a position to a fixed depth and
// counts the resulting leaf nodes, together with a classification of
// the move that produced each leaf (capture, en passant, castle,
// promotion, check, checkmate). It does no caching, ordering or
// pruning of any kind - it visits every node the move generator
// produces.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64

	// Divide holds, for the last run, the node count reached by each
	// root move in long algebraic notation. It is nil when that run had
	// divide disabled.
	Divide map[string]uint64

	// ShowProgress, when true, overwrites a single line on stdout with
	// the count of root moves completed so far as rootSearch's shards
	// finish, the way the original's perft progress bar did.
	ShowProgress bool

	stopFlag bool
	mu       sync.Mutex
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine to stop
// the currently running perft test.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti iterates through the given start to end depths,
// printing a report for each one. If this has been started in a go
// routine it can be stopped via Stop.
func (perft *Perft) StartPerftMulti(fen string, startDepth int, endDepth int, divide bool) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, i, divide)
	}
}

// StartPerft runs a single perft test to the given depth on the
// position described by fen. If divide is true the per root move node
// counts are additionally collected into perft.Divide. If this has
// been started in a go routine it can be stopped via Stop.
func (perft *Perft) StartPerft(fen string, depth int, divide bool) {
	perft.stopFlag = false

	if depth <= 0 {
		depth = 1
	}

	perft.resetCounter()
	posPtr, _ := position.NewPositionFen(fen)

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.rootSearch(posPtr, depth, divide)
	elapsed := time.Since(start)

	if result == 0 && perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	if divide {
		perft.printDivide()
	}
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (perft *Perft) printDivide() {
	keys := make([]string, 0, len(perft.Divide))
	for k := range perft.Divide {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out.Printf("Divide:\n")
	for _, k := range keys {
		out.Printf("   %-6s: %d\n", k, perft.Divide[k])
	}
}

// rootSearch generates the root moves and, if configured, distributes
// them across goroutines bounded by a weighted semaphore - each shard
// owns its own Position copy and Movegen so no state is shared across
// goroutines.
func (perft *Perft) rootSearch(p *position.Position, depth int, divide bool) uint64 {
	if divide {
		perft.Divide = make(map[string]uint64)
	}

	rootMg := NewMoveGen()
	rootMoves := rootMg.GeneratePseudoLegalMoves(p).Clone()

	shards := 1
	if config.Settings.Perft.UseSharding && depth > 1 {
		shards = config.Settings.Perft.MaxShards
		if shards < 1 {
			shards = 1
		}
	}

	sem := semaphore.NewWeighted(int64(shards))
	var wg sync.WaitGroup
	var total uint64
	var completed uint64
	rootTotal := rootMoves.Len()

	for i := 0; i < rootMoves.Len(); i++ {
		move := rootMoves.At(i)
		if perft.stopFlag {
			break
		}

		shardPos := *p
		if !shardPos.IsLegalMove(move) {
			continue
		}

		_ = sem.Acquire(context.Background(), 1)
		wg.Add(1)
		go func(move Move, shardPos position.Position) {
			defer wg.Done()
			defer sem.Release(1)

			mg := make([]*Movegen, depth+1)
			for d := 0; d <= depth; d++ {
				mg[d] = NewMoveGen()
			}

			shardPos.DoMove(move)
			var nodes uint64
			if depth > 1 {
				nodes = perft.miniMax(depth-1, &shardPos, &mg)
			} else {
				nodes = 1
				perft.classifyLeaf(&shardPos, move)
			}
			shardPos.UndoMove()

			perft.mu.Lock()
			total += nodes
			if divide {
				perft.Divide[move.StringUci()] += nodes
			}
			completed++
			if perft.ShowProgress {
				out.Printf("\r   root moves: %d/%d", completed, rootTotal)
			}
			perft.mu.Unlock()
		}(move, shardPos)
	}

	wg.Wait()
	if perft.ShowProgress {
		out.Print("\n")
	}
	return total
}

// miniMax recursively walks the game tree below the current position,
// counting leaf nodes. Classification counters are only updated for
// the move that produces a leaf, i.e. when depth reaches zero.
func (perft *Perft) miniMax(depth int, p *position.Position, mgListPtr *[]*Movegen) uint64 {
	totalNodes := uint64(0)
	movegens := *mgListPtr
	movesPtr := movegens[depth].GeneratePseudoLegalMoves(p)
	for i := 0; i < movesPtr.Len(); i++ {
		move := movesPtr.At(i)
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			p.DoMove(move)
			if p.WasLegalMove() {
				totalNodes += perft.miniMax(depth-1, p, mgListPtr)
			}
			p.UndoMove()
		} else {
			p.DoMove(move)
			if p.WasLegalMove() {
				totalNodes++
				perft.classifyLeaf(p, move)
			}
			p.UndoMove()
		}
	}
	return totalNodes
}

// classifyLeaf updates the shared counters for a move that has just
// been played and landed on a leaf of the search, per the definitions:
// a move is a capture if it took a piece or was an en passant capture,
// en passant/castle/promotion are read straight off the move's kind,
// and check/checkmate describe the resulting position.
func (perft *Perft) classifyLeaf(p *position.Position, move Move) {
	capture := p.WasCapturingMove() || move.MoveType() == EnPassant
	enpassant := move.MoveType() == EnPassant
	castling := move.MoveType() == Castling
	promotion := move.MoveType() == Promotion
	check := p.HasCheck()

	perft.mu.Lock()
	defer perft.mu.Unlock()
	if capture {
		perft.CaptureCounter++
	}
	if enpassant {
		perft.EnpassantCounter++
	}
	if castling {
		perft.CastleCounter++
	}
	if promotion {
		perft.PromotionCounter++
	}
	if check {
		perft.CheckCounter++
		mg := NewMoveGen()
		if !mg.HasLegalMove(p) {
			perft.CheckMateCounter++
		}
	}
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
	perft.Divide = nil
}
