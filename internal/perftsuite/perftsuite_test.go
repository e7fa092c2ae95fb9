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

package perftsuite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleCsv = `fen,depth,nodes,captures,en_passants,castles,promotions,checks,checkmates
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1,4,197281,1576,0,0,0,469,8
r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -,3,97862,17102,45,3162,0,993,1
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1,6,119060324,None,,None,,None,None
`

func TestLoad(t *testing.T) {
	results, err := Load(strings.NewReader(sampleCsv))
	assert.Nil(t, err)
	assert.Len(t, results, 3)
	if len(results) != 3 {
		return
	}

	assert.Equal(t, 4, results[0].Depth)
	assert.EqualValues(t, 197281, results[0].Nodes)
	if assert.NotNil(t, results[0].Captures) {
		assert.EqualValues(t, 1576, *results[0].Captures)
	}
	if assert.NotNil(t, results[0].Checks) {
		assert.EqualValues(t, 469, *results[0].Checks)
	}
	if assert.NotNil(t, results[0].Checkmates) {
		assert.EqualValues(t, 8, *results[0].Checkmates)
	}

	assert.Equal(t, 3, results[1].Depth)
	if assert.NotNil(t, results[1].Castles) {
		assert.EqualValues(t, 3162, *results[1].Castles)
	}
}

func TestLoad_OptionalColumnsBlankOrNone(t *testing.T) {
	results, err := Load(strings.NewReader(sampleCsv))
	assert.Nil(t, err)
	if len(results) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(results))
	}

	row := results[2]
	assert.EqualValues(t, 119060324, row.Nodes)
	assert.Nil(t, row.Captures)
	assert.Nil(t, row.EnPassants)
	assert.Nil(t, row.Castles)
	assert.Nil(t, row.Promotions)
	assert.Nil(t, row.Checks)
	assert.Nil(t, row.Checkmates)
}

func TestLoad_MissingColumn(t *testing.T) {
	_, err := Load(strings.NewReader("fen,depth\nstart,1\n"))
	assert.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("/nonexistent/path/suite.csv")
	assert.Error(t, err)
}
