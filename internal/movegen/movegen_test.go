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

	"github.com/frankkopp/chessperft/internal/position"
	. "github.com/frankkopp/chessperft/internal/types"
)

func TestGeneratePseudoLegalMoves_StartPosition(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	moves := mg.GeneratePseudoLegalMoves(p)
	assert.Equal(t, 20, moves.Len())
}

func TestGeneratePseudoLegalMoves_DeterministicOrder(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	first := mg.GeneratePseudoLegalMoves(p).Clone()
	second := mg.GeneratePseudoLegalMoves(p).Clone()
	assert.True(t, first.Equals(second))

	// first moves generated are pawn pushes, in ascending file order
	assert.Equal(t, SqA2, first.At(0).From())
	assert.Equal(t, SqA3, first.At(0).To())
}

func TestGenerateLegalMoves_FiltersSelfCheck(t *testing.T) {
	mg := NewMoveGen()
	// white king on e1 pinned rook on e2 against a black rook on e8 - the
	// pinned rook may not step off the e-file
	p := position.NewPosition("4r3/8/8/8/8/8/4R3/4K3 w - -")
	moves := mg.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() == SqE2 {
			assert.Equal(t, SqE2.FileOf(), m.To().FileOf())
		}
	}
}

func TestGenerateLegalMoves_CastlingThroughCheckRejected(t *testing.T) {
	mg := NewMoveGen()
	// black rook on f8 covers f1, so white may not castle kingside (king
	// would pass through an attacked square) but queenside remains legal
	p := position.NewPosition("4kr2/8/8/8/8/8/8/R3K2R w KQ -")

	moves := mg.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.MoveType() == Castling {
			assert.Equal(t, SqC1, m.To())
		}
	}
}

func TestGenerateLegalMoves_EnPassantDiscoveredCheckRejected(t *testing.T) {
	mg := NewMoveGen()
	// classic pinned en passant: capturing en passant would expose the
	// white king on e1 to the black rook on e8 once the e5 pawn leaves
	// the e-file
	p := position.NewPosition("4r3/8/8/4Pp2/8/8/8/4K3 w - f6 0 1")
	moves := mg.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, EnPassant, moves.At(i).MoveType())
	}
}

func TestHasLegalMove_Checkmate(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq -")
	assert.False(t, mg.HasLegalMove(p))
	assert.True(t, p.HasCheck())
}

func TestHasLegalMove_Stalemate(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("7k/5Q2/6K1/8/8/8/8/8 b - -")
	assert.False(t, mg.HasLegalMove(p))
	assert.False(t, p.HasCheck())
}

func TestGetMoveFromUci(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	m := mg.GetMoveFromUci(p, "e2e4")
	assert.True(t, m.IsValid())
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())

	none := mg.GetMoveFromUci(p, "e2e5")
	assert.Equal(t, MoveNone, none)
}

func TestValidateMove(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	assert.True(t, mg.ValidateMove(p, CreateMove(SqE2, SqE4, Normal)))
	assert.False(t, mg.ValidateMove(p, CreateMove(SqE2, SqE5, Normal)))
}
