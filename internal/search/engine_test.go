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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/connectfour-dev/connectfour/internal/board"
)

// playMoveString plays a 1-indexed column digit string onto an empty
// position, matching the move-string grammar used throughout the spec's
// end-to-end scenarios.
func playMoveString(moves string) board.Position {
	p := board.New()
	for _, c := range moves {
		col := int(c-'0') - 1
		p = p.PlayColumn(col)
	}
	return p
}

func TestEvaluateEmptyPosition(t *testing.T) {
	e := New(1 << 10)
	score := e.Evaluate(board.New())
	assert.Equal(t, board.Score(1), score)
}

func TestEvaluateMidGame(t *testing.T) {
	e := New(1 << 16)
	p := playMoveString("32164625")
	score := e.Evaluate(p)
	assert.Equal(t, board.Score(11), score)
}

func TestEvaluateImmediateWin(t *testing.T) {
	e := New(1 << 10)
	p := playMoveString("112233")
	score := e.Evaluate(p)
	assert.Equal(t, board.Score(18), score)
}

func TestEvaluateNextImmediateWin(t *testing.T) {
	e := New(1 << 16)
	p := playMoveString("112233")
	scores := e.EvaluateNext(p)

	expected := [board.Width]int{-2, -1, -1, 18, -2, -2, -3}
	for col, want := range expected {
		assert.NotNil(t, scores[col])
		assert.Equal(t, board.Score(want), *scores[col])
	}
}

func TestEvaluateNextMidGame(t *testing.T) {
	e := New(1 << 16)
	p := playMoveString("4444413222453233535")
	scores := e.EvaluateNext(p)

	expected := map[int]int{0: -3, 1: 11, 2: -2, 4: 12, 5: -3, 6: -3}
	for col, want := range expected {
		assert.NotNil(t, scores[col])
		assert.Equal(t, board.Score(want), *scores[col])
	}
	assert.Nil(t, scores[3])
}

func TestLastMoveMaxScore(t *testing.T) {
	e := New(1 << 10)
	p := playMoveString("112233")
	score := e.Evaluate(p)
	assert.Equal(t, board.MaxScore, score)
}

func TestEvaluateMidGameFillsTranspositionTable(t *testing.T) {
	e := New(1 << 16)
	p := playMoveString("32164625")
	score := e.Evaluate(p)
	assert.LessOrEqual(t, score, board.MaxScore)
	assert.Positive(t, e.TTLen())
}
