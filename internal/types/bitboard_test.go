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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushPopSquare(t *testing.T) {
	assert := assert.New(t)
	var b Bitboard
	b = PushSquare(b, SqE4)
	assert.True(b.Has(SqE4))
	assert.Equal(1, b.PopCount())
	b = PopSquare(b, SqE4)
	assert.False(b.Has(SqE4))
	assert.Equal(0, b.PopCount())
}

func TestBitboard_LsbMsbPopLsb(t *testing.T) {
	assert := assert.New(t)
	b := SqA1.Bb() | SqE4.Bb() | SqH8.Bb()
	assert.Equal(SqA1, b.Lsb())
	assert.Equal(SqH8, b.Msb())
	assert.Equal(3, b.PopCount())

	first := b.PopLsb()
	assert.Equal(SqA1, first)
	assert.Equal(2, b.PopCount())
	assert.False(b.Has(SqA1))
}

func TestShiftBitboard(t *testing.T) {
	assert := assert.New(t)
	b := SqE4.Bb()
	assert.True(ShiftBitboard(b, North).Has(SqE5))
	assert.True(ShiftBitboard(b, South).Has(SqE3))
	assert.True(ShiftBitboard(b, East).Has(SqF4))
	assert.True(ShiftBitboard(b, West).Has(SqD4))

	// shifting off the board edge must not wrap around
	edge := SqH4.Bb()
	assert.Equal(Bitboard(0), ShiftBitboard(edge, East))
}

func TestGetAttacksBb_RookOnEmptyBoard(t *testing.T) {
	assert := assert.New(t)
	attacks := GetAttacksBb(Rook, SqA1, Bitboard(0))
	// empty board: rook on a1 attacks the rest of file a and rank 1
	assert.True(attacks.Has(SqA8))
	assert.True(attacks.Has(SqH1))
	assert.False(attacks.Has(SqB2))
	assert.Equal(14, attacks.PopCount())
}

func TestGetAttacksBb_RookBlocked(t *testing.T) {
	assert := assert.New(t)
	occupied := SqA4.Bb()
	attacks := GetAttacksBb(Rook, SqA1, occupied)
	assert.True(attacks.Has(SqA2))
	assert.True(attacks.Has(SqA3))
	assert.True(attacks.Has(SqA4))
	assert.False(attacks.Has(SqA5))
}

func TestGetAttacksBb_Bishop(t *testing.T) {
	assert := assert.New(t)
	attacks := GetAttacksBb(Bishop, SqD4, Bitboard(0))
	assert.True(attacks.Has(SqA1))
	assert.True(attacks.Has(SqG7))
	assert.False(attacks.Has(SqD5))
}

func TestGetPawnAttacks(t *testing.T) {
	assert := assert.New(t)
	wAttacks := GetPawnAttacks(White, SqE4)
	assert.True(wAttacks.Has(SqD5))
	assert.True(wAttacks.Has(SqF5))
	assert.Equal(2, wAttacks.PopCount())

	bAttacks := GetPawnAttacks(Black, SqE4)
	assert.True(bAttacks.Has(SqD3))
	assert.True(bAttacks.Has(SqF3))
}

func TestGetPseudoAttacks_Knight(t *testing.T) {
	assert := assert.New(t)
	attacks := GetPseudoAttacks(Knight, SqB1)
	assert.True(attacks.Has(SqA3))
	assert.True(attacks.Has(SqC3))
	assert.True(attacks.Has(SqD2))
	assert.Equal(3, attacks.PopCount())
}

func TestSquareDistance(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, SquareDistance(SqE4, SqE4))
	assert.Equal(7, SquareDistance(SqA1, SqH8))
}
