//
// MIT License
//
// Copyright (c) 2026 The Connect Four Engine Authors
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

package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/connectfour-dev/connectfour/internal/analyzer"
	"github.com/connectfour-dev/connectfour/internal/board"
)

func score(v int8) *board.Score {
	s := board.Score(v)
	return &s
}

func TestPerfectAlwaysPicksBest(t *testing.T) {
	scores := [board.Width]*board.Score{
		score(-2), score(-1), score(-1), score(18), score(-2), score(-2), score(-3),
	}
	a := analyzer.New(scores, board.P1, 6)

	agent := New(Perfect)
	for i := 0; i < 20; i++ {
		col := agent.ChooseMove(a)
		assert.Equal(t, 3, col)
	}
}

func TestRandomPicksAnyLegalColumn(t *testing.T) {
	scores := [board.Width]*board.Score{
		score(-2), score(-1), nil, score(18), score(-2), score(-2), score(-3),
	}
	a := analyzer.New(scores, board.P1, 6)

	agent := New(Random)
	for i := 0; i < 20; i++ {
		col := agent.ChooseMove(a)
		assert.NotEqual(t, 2, col)
		assert.GreaterOrEqual(t, col, 0)
		assert.Less(t, col, board.Width)
	}
}
