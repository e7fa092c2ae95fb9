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

func TestSquare_IsValid(t *testing.T) {
	assert := assert.New(t)
	assert.True(SqA1.IsValid())
	assert.True(SqH8.IsValid())
	assert.False(SqNone.IsValid())
}

func TestSquare_FileOfRankOf(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FileA, SqA1.FileOf())
	assert.Equal(Rank1, SqA1.RankOf())
	assert.Equal(FileH, SqH8.FileOf())
	assert.Equal(Rank8, SqH8.RankOf())
	assert.Equal(FileE, SqE4.FileOf())
	assert.Equal(Rank4, SqE4.RankOf())
}

func TestMakeSquare(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(SqA1, MakeSquare("a1"))
	assert.Equal(SqH8, MakeSquare("h8"))
	assert.Equal(SqE4, MakeSquare("e4"))
	assert.Equal(SqNone, MakeSquare("i9"))
	assert.Equal(SqNone, MakeSquare("e"))
	assert.Equal(SqNone, MakeSquare("e44"))
}

func TestSquareOf(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(SqA1, SquareOf(FileA, Rank1))
	assert.Equal(SqH8, SquareOf(FileH, Rank8))
	assert.Equal(SqNone, SquareOf(FileNone, Rank1))
}

func TestSquare_To(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(SqE5, SqE4.To(North))
	assert.Equal(SqE3, SqE4.To(South))
	assert.Equal(SqF4, SqE4.To(East))
	assert.Equal(SqD4, SqE4.To(West))
	assert.Equal(SqNone, SqH4.To(East))
	assert.Equal(SqNone, SqA4.To(West))
	assert.Equal(SqNone, SqE8.To(North))
	assert.Equal(SqNone, SqE1.To(South))
}

func TestSquare_Distance(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, SqA1.Distance(SqA1))
	assert.Equal(7, SqA1.Distance(SqH8))
	assert.Equal(1, SqE4.Distance(SqE5))
	assert.Equal(1, SqE4.Distance(SqF5))
}

func TestSquare_String(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("a1", SqA1.String())
	assert.Equal("h8", SqH8.String())
	assert.Equal("e4", SqE4.String())
	assert.Equal("-", SqNone.String())
}
