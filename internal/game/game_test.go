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

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/connectfour-dev/connectfour/internal/board"
)

func TestPlayOne(t *testing.T) {
	g := New()
	assert.NoError(t, g.Play(3))
	assert.Equal(t, []int{3}, g.Moves())
}

func TestPlaySliceAndPlayStringAgree(t *testing.T) {
	g1 := New()
	assert.NoError(t, g1.PlaySlice([]int{3, 3, 3, 3}))

	g2 := New()
	assert.NoError(t, g2.PlayString("4444"))

	assert.Equal(t, g1.Key(), g2.Key())
}

func TestOutOfBoundsColumn(t *testing.T) {
	g := New()
	assert.Equal(t, ErrInvalidColumn, g.Play(7))
}

func TestFullColumn(t *testing.T) {
	g := New()
	assert.NoError(t, g.PlaySlice([]int{0, 0, 0, 0, 0, 0}))
	assert.Equal(t, ErrColumnFull, g.Play(0))
}

func TestHorizontalWinStatus(t *testing.T) {
	g := New()
	assert.NoError(t, g.PlaySlice([]int{0, 0, 1, 1, 2, 2}))
	assert.False(t, g.IsGameOver())

	assert.NoError(t, g.Play(3))
	assert.True(t, g.IsGameOver())
	status := g.StatusOf()
	assert.True(t, status.IsWin)
	assert.Equal(t, board.P1, status.Winner)
	assert.Equal(t, ErrGameOver, g.Play(0))
}

func TestDrawStatus(t *testing.T) {
	g := New()
	assert.NoError(t, g.PlaySlice([]int{
		0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2,
		4, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5,
		6, 6, 6, 6, 6,
	}))
	assert.False(t, g.IsGameOver())
	assert.NoError(t, g.Play(6))
	assert.True(t, g.IsGameOver())
	assert.True(t, g.StatusOf().Draw)
	_, ok := g.WinningLine()
	assert.False(t, ok)
}

func TestUndoRestoresPreviousPosition(t *testing.T) {
	g := New()
	assert.NoError(t, g.Play(2))
	key0 := g.Key()
	assert.NoError(t, g.Play(3))
	assert.Equal(t, 3, g.Undo())
	assert.Equal(t, key0, g.Key())
}

func TestAtMatchesMatrix(t *testing.T) {
	g := New()
	assert.NoError(t, g.Play(0))
	assert.NoError(t, g.Play(1))

	p0, ok0 := g.At(0, 0)
	assert.True(t, ok0)
	assert.Equal(t, board.P1, p0)

	p1, ok1 := g.At(1, 0)
	assert.True(t, ok1)
	assert.Equal(t, board.P2, p1)

	_, ok2 := g.At(2, 0)
	assert.False(t, ok2)

	grid := g.Matrix()
	assert.Equal(t, board.P1, *grid[0][0])
}

func TestPerftAnchors(t *testing.T) {
	assert.Equal(t, uint64(1), Perft(0))
	assert.Equal(t, uint64(7), Perft(1))
	assert.Equal(t, uint64(49), Perft(2))
	assert.Equal(t, uint64(238), Perft(3))
	assert.Equal(t, uint64(1120), Perft(4))
}
