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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasks(t *testing.T) {
	assert.Equal(t, uint64(0b_0000001_0000001_0000001_0000001_0000001_0000001_0000001), BottomRowMask)
	assert.Equal(t, uint64(0b_0111111_0111111_0111111_0111111_0111111_0111111_0111111), FullBoardMask)
	assert.Equal(t, uint64(0b_0000000_0000000_0000000_0100000_0000000_0000000_0000000), TopPieceMask(3))
	assert.Equal(t, uint64(0b_0000000_0000000_0000000_0000001_0000000_0000000_0000000), BottomPieceMask(3))
	assert.Equal(t, uint64(0b_0000000_0000000_0000000_0111111_0000000_0000000_0000000), ColumnMask(3))
}

func TestMirrorInvolution(t *testing.T) {
	p := New()
	for _, col := range []int{3, 3, 2, 4, 2, 4, 1} {
		p = p.PlayColumn(col)
	}
	assert.Equal(t, p.occupiedBB, Mirror(Mirror(p.occupiedBB)))
	assert.Equal(t, p.playerBB, Mirror(Mirror(p.playerBB)))
}

func TestMirrorSymmetricColumns(t *testing.T) {
	p := New().PlayColumn(3)
	m := p.Mirror()
	assert.Equal(t, p.occupiedBB, m.occupiedBB)
}

func TestPlayUndoRoundTrip(t *testing.T) {
	p := New()
	original := p
	p = p.PlayColumn(2)
	p = p.UndoColumn(2)
	assert.Equal(t, original, p)
}

func TestInvariants(t *testing.T) {
	p := New()
	for _, col := range []int{0, 1, 0, 1, 2, 3, 4, 5, 6} {
		p = p.PlayColumn(col)
		assert.Equal(t, int(p.ply), popcount(p.occupiedBB))
		assert.Zero(t, p.playerBB & ^p.occupiedBB)
	}
}

func TestKey3MirrorInvariant(t *testing.T) {
	p := New()
	for _, col := range []int{0, 1, 5, 2} {
		p = p.PlayColumn(col)
	}
	m := p.Mirror()
	assert.Equal(t, p.Key3(), m.Key3())
}

func TestVerticalWin(t *testing.T) {
	p := New()
	for _, col := range []int{0, 1, 0, 1, 0, 1} {
		p = p.PlayColumn(col)
	}
	assert.True(t, p.CanWinNext())
	p = p.PlayColumn(0)
	assert.True(t, p.HasOpponentWon())
}

func TestHorizontalWin(t *testing.T) {
	p := New()
	for _, col := range []int{0, 0, 1, 1, 2, 2} {
		p = p.PlayColumn(col)
	}
	assert.True(t, p.IsWinningMove(3))
}

func TestNonLosingMovesSingleBlock(t *testing.T) {
	p := New()
	for _, col := range []int{0, 1, 0, 1, 0} {
		p = p.PlayColumn(col)
	}
	nlm := p.NonLosingMoves()
	assert.Equal(t, BottomPieceMask(0)<<3, nlm)
}

func TestPossibleBBHasOneBitPerOpenColumn(t *testing.T) {
	p := New()
	possible := p.PossibleBB()
	assert.Equal(t, Width, popcount(possible))
}

func TestPositionScore(t *testing.T) {
	p := New()
	assert.Equal(t, Score(Area/2), p.PositionScore(false))
	assert.Equal(t, Score((Area+1)/2), p.PositionScore(true))
}

func TestFormatOmitsSentinelRow(t *testing.T) {
	p := New().PlayColumn(3)
	rendered := Format(p.occupiedBB)
	assert.Len(t, rendered, Height*(Width*2-1)+Height-1)
}
