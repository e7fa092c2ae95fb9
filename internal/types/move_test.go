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

func TestCreateMove(t *testing.T) {
	assert := assert.New(t)
	m := CreateMove(SqE2, SqE4, Normal)
	assert.True(m.IsValid())
	assert.Equal(SqE2, m.From())
	assert.Equal(SqE4, m.To())
	assert.Equal(Normal, m.MoveType())
	assert.Equal("e2e4", m.StringUci())
}

func TestCreateMovePromotion(t *testing.T) {
	assert := assert.New(t)
	m := CreateMovePromotion(SqE7, SqE8, Queen)
	assert.True(m.IsValid())
	assert.Equal(SqE7, m.From())
	assert.Equal(SqE8, m.To())
	assert.Equal(Promotion, m.MoveType())
	assert.Equal(Queen, m.PromotionType())
	assert.Equal("e7e8q", m.StringUci())

	// promotion type below Knight is clamped to Knight
	m2 := CreateMovePromotion(SqE7, SqE8, Pawn)
	assert.Equal(Knight, m2.PromotionType())
}

func TestMove_EnPassantAndCastling(t *testing.T) {
	assert := assert.New(t)
	ep := CreateMove(SqE5, SqD6, EnPassant)
	assert.Equal(EnPassant, ep.MoveType())
	assert.Equal("e5d6", ep.StringUci())

	castling := CreateMove(SqE1, SqG1, Castling)
	assert.Equal(Castling, castling.MoveType())
	assert.Equal("e1g1", castling.StringUci())
}

func TestMove_IsValid(t *testing.T) {
	assert := assert.New(t)
	assert.False(MoveNone.IsValid())
	assert.True(CreateMove(SqA1, SqA2, Normal).IsValid())
}

func TestMove_String(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0000", MoveNone.StringUci())
	m := CreateMove(SqB1, SqC3, Normal)
	assert.Contains(m.String(), "b1c3")
}
