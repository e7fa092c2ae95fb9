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

package types

import (
	"fmt"
	"strings"
)

// Move is a 16bit unsigned int type for encoding chess moves as a primitive
// data type. Unlike the engine's search-oriented move encoding this carries
// no sort value - a move's captured piece, check status, etc. are derived
// on demand from the Position the move is played against, never stored.
//  MoveNone Move = 0
//  BITMAP 16-bit
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------
//                       1 1 1 1 1 1  to
//           1 1 1 1 1 1              from
//       1 1                          promotion piece type (pt-2 -> 0-3)
//   1 1                              move type
type Move uint16

const (
	// MoveNone is the empty, invalid move
	MoveNone Move = 0
)

const (
	fromShift     uint = 6
	promTypeShift uint = 12
	typeShift     uint = 14

	squareMask   Move = 0x3F
	toMask            = squareMask
	fromMask          = squareMask << fromShift
	promTypeMask Move = 3 << promTypeShift
	moveTypeMask Move = 3 << typeShift
)

// CreateMove returns an encoded Move instance for a Normal, EnPassant or
// Castling move.
func CreateMove(from Square, to Square, t MoveType) Move {
	return Move(to) | Move(from)<<fromShift | Move(t)<<typeShift
}

// CreateMovePromotion returns an encoded Move instance for a promotion,
// where promType is one of Knight, Bishop, Rook or Queen.
func CreateMovePromotion(from Square, to Square, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	// promType is reduced to 2 bits (4 values): Knight, Bishop, Rook, Queen.
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(Promotion)<<typeShift
}

// MoveType returns the type of the move: Normal, Promotion, EnPassant or
// Castling.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the PieceType considered for promotion when
// MoveType is Promotion. Must be ignored otherwise.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// To returns the to-Square of the move
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the from-Square of the move
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// IsValid check if the move has valid squares, promotion type and move type.
// MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid()
}

// String returns a readable representation of a move
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  type:%1s  prom:%1s }",
		m.StringUci(), m.MoveType().String(), m.PromotionType().Char())
}

// StringUci returns a UCI-compatible string representation of the move
// (e.g. "e2e4" or "e7e8q").
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		os.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return os.String()
}

// StringBits returns a string with the bit-level details of a Move, useful
// for debugging the encoding itself.
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Prom[%-0.2b](%s) tType[%-0.2b](%s) (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.PromotionType(), m.PromotionType().Char(),
		m.MoveType(), m.MoveType().String(),
		uint16(m))
}
