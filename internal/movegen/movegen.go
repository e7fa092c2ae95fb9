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

// Package movegen generates pseudo legal and legal moves for a position.
// Moves are always produced in a fixed, deterministic order: by piece
// type (pawn, knight, bishop, rook, queen, king), by ascending origin
// square and by ascending target square, with promotions in knight,
// bishop, rook, queen order and castling moves emitted last among the
// king's moves. No move ordering heuristics are applied - the order
// above is the only order there is.
package movegen

import (
	"regexp"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/chessperft/internal/logging"
	"github.com/frankkopp/chessperft/internal/moveslice"
	"github.com/frankkopp/chessperft/internal/position"
	. "github.com/frankkopp/chessperft/internal/types"
)

// pieceOrder is the deterministic non-pawn, non-king generation order.
var pieceOrder = [...]PieceType{Knight, Bishop, Rook, Queen}

// promotionOrder is the deterministic promotion-piece generation order.
var promotionOrder = [...]PieceType{Knight, Bishop, Rook, Queen}

// Movegen generates moves for a given position. An instance keeps its
// working move lists so repeated calls (e.g. from perft) do not
// allocate a fresh slice for every node.
type Movegen struct {
	log *logging.Logger

	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
}

// NewMoveGen creates a new instance of a move generator.
func NewMoveGen() *Movegen {
	return &Movegen{
		log:              myLogging.GetLog(),
		pseudoLegalMoves: moveslice.NewMoveSlice(64),
		legalMoves:       moveslice.NewMoveSlice(64),
	}
}

// GeneratePseudoLegalMoves generates all pseudo legal moves for the next
// player on the given position - i.e. moves that follow the movement
// rules of the piece involved but may leave the mover's own king in
// check. The returned slice is owned by the Movegen instance and is
// overwritten by the next call.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	mg.generatePawnMoves(p, mg.pseudoLegalMoves)
	for _, pt := range pieceOrder {
		mg.generatePieceMoves(p, pt, mg.pseudoLegalMoves)
	}
	mg.generateKingMoves(p, mg.pseudoLegalMoves)
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves generates all legal moves for the next player on
// the given position by filtering GeneratePseudoLegalMoves through
// Position.IsLegalMove. The returned slice is owned by the Movegen
// instance and is overwritten by the next call.
func (mg *Movegen) GenerateLegalMoves(p *position.Position) *moveslice.MoveSlice {
	mg.GeneratePseudoLegalMoves(p)
	mg.legalMoves.Clear()
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		return p.IsLegalMove(mg.pseudoLegalMoves.At(i))
	})
	return mg.legalMoves
}

// HasLegalMove returns true as soon as it finds one legal move for the
// next player on the given position. It is used to distinguish
// checkmate from stalemate without generating and keeping the full
// legal move list.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	mg.GeneratePseudoLegalMoves(p)
	for i := 0; i < mg.pseudoLegalMoves.Len(); i++ {
		if p.IsLegalMove(mg.pseudoLegalMoves.At(i)) {
			return true
		}
	}
	return false
}

// generatePawnMoves adds all pseudo legal pawn moves (single and double
// pushes, captures, en passant captures and promotions) for the next
// player, ordered by ascending origin square and then ascending target
// square.
func (mg *Movegen) generatePawnMoves(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	fwd := us.MoveDirection()
	promRank := us.PromotionRankBb()
	startRank := us.PawnStartRank()
	epSquare := p.GetEnPassantSquare()
	theirPieces := p.OccupiedBb(us.Flip())

	pawns := p.PiecesBb(us, Pawn)
	for pawns != BbZero {
		from := pawns.PopLsb()

		var targets Bitboard

		single := from.To(fwd)
		if single.IsValid() && p.GetPiece(single) == PieceNone {
			targets.PushSquare(single)
			if startRank.Has(from) {
				double := single.To(fwd)
				if double.IsValid() && p.GetPiece(double) == PieceNone {
					targets.PushSquare(double)
				}
			}
		}

		for _, diag := range [2]Direction{fwd + West, fwd + East} {
			to := from.To(diag)
			if !to.IsValid() {
				continue
			}
			if theirPieces.Has(to) || to == epSquare {
				targets.PushSquare(to)
			}
		}

		for targets != BbZero {
			to := targets.PopLsb()
			switch {
			case promRank.Has(to):
				for _, pt := range promotionOrder {
					ml.PushBack(CreateMovePromotion(from, to, pt))
				}
			case epSquare != SqNone && to == epSquare:
				ml.PushBack(CreateMove(from, to, EnPassant))
			default:
				ml.PushBack(CreateMove(from, to, Normal))
			}
		}
	}
}

// generatePieceMoves adds all pseudo legal moves for knights, bishops,
// rooks or queens of the next player, ordered by ascending origin
// square and then ascending target square.
func (mg *Movegen) generatePieceMoves(p *position.Position, pt PieceType, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	ownPieces := p.OccupiedBb(us)
	occupied := p.OccupiedAll()

	pieces := p.PiecesBb(us, pt)
	for pieces != BbZero {
		from := pieces.PopLsb()
		attacks := GetAttacksBb(pt, from, occupied) &^ ownPieces
		for attacks != BbZero {
			to := attacks.PopLsb()
			ml.PushBack(CreateMove(from, to, Normal))
		}
	}
}

// generateKingMoves adds all pseudo legal king moves, including the
// castling candidates, which are always emitted last.
func (mg *Movegen) generateKingMoves(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	ownPieces := p.OccupiedBb(us)

	kingBb := p.PiecesBb(us, King)
	if kingBb == BbZero {
		return
	}
	from := kingBb.Lsb()
	attacks := GetPseudoAttacks(King, from) &^ ownPieces
	for attacks != BbZero {
		to := attacks.PopLsb()
		ml.PushBack(CreateMove(from, to, Normal))
	}

	mg.generateCastling(p, ml)
}

// generateCastling adds the castling candidates the next player still
// holds the right to and whose king and rook path is unobstructed.
// Whether the king actually passes through or ends up in check is
// decided later, when the candidate is tested with Position.IsLegalMove.
func (mg *Movegen) generateCastling(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	cr := p.CastlingRights()
	if cr == CastlingNone {
		return
	}
	occupied := p.OccupiedAll()

	switch us {
	case White:
		if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occupied == BbZero {
			ml.PushBack(CreateMove(SqE1, SqG1, Castling))
		}
		if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occupied == BbZero {
			ml.PushBack(CreateMove(SqE1, SqC1, Castling))
		}
	case Black:
		if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occupied == BbZero {
			ml.PushBack(CreateMove(SqE8, SqG8, Castling))
		}
		if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occupied == BbZero {
			ml.PushBack(CreateMove(SqE8, SqC8, Castling))
		}
	}
}

var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")

// GetMoveFromUci generates all legal moves on the position and matches
// the given long algebraic (UCI) move string against them. Returns
// MoveNone if no legal move matches.
func (mg *Movegen) GetMoveFromUci(p *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}

	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		// UCI promotion letters are lower case - also accept upper case
		promotionPart = strings.ToLower(matches[2])
	}

	mg.GenerateLegalMoves(p)
	for i := 0; i < mg.legalMoves.Len(); i++ {
		m := mg.legalMoves.At(i)
		if m.StringUci() == movePart+promotionPart {
			return m
		}
	}
	return MoveNone
}

// ValidateMove returns true if the given move is a legal move on the
// given position.
func (mg *Movegen) ValidateMove(p *position.Position, move Move) bool {
	mg.GenerateLegalMoves(p)
	for i := 0; i < mg.legalMoves.Len(); i++ {
		if mg.legalMoves.At(i) == move {
			return true
		}
	}
	return false
}

// String returns the pseudo legal moves currently held by this
// instance in UCI notation.
func (mg *Movegen) String() string {
	return mg.pseudoLegalMoves.StringUci()
}
