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

package refengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStart_MissingBinary(t *testing.T) {
	_, err := Start("/nonexistent/path/to/engine")
	assert.Error(t, err)
}

func TestDivideLineRegex(t *testing.T) {
	matches := divideLineRe.FindStringSubmatch("e2e4: 20")
	assert.NotNil(t, matches)
	assert.Equal(t, "e2e4", matches[1])
	assert.Equal(t, "20", matches[2])

	matches = divideLineRe.FindStringSubmatch("a7a8q: 5")
	assert.NotNil(t, matches)
	assert.Equal(t, "a7a8q", matches[1])

	assert.Nil(t, divideLineRe.FindStringSubmatch("Nodes searched: 20"))
}
