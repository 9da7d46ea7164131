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

import "github.com/connectfour-dev/connectfour/internal/board"

// revMoveOrder is the reverse of the standard center-first column order,
// {0, 6, 1, 5, 2, 4, 3} for Width=7. Columns are inserted into the move
// sorter in this order; combined with its LIFO iteration and stable
// ascending-count insertion sort, equal-threat moves from later (more
// central) columns end up tried first.
var revMoveOrder = func() [board.Width]int {
	var moves [board.Width]int
	for i := 0; i < board.Width; i++ {
		n := board.Width - i - 1
		moves[i] = (board.Width / 2) + (n%2)*(n/2+1) - (1-n%2)*(n/2)
	}
	return moves
}()

// moveSorter is a fixed-capacity, insertion-sorted buffer of candidate
// moves ordered ascending by the number of winning replies they create.
// It iterates LIFO (highest count first), and since insertion sort is
// stable, equal-count moves come out in reverse insertion order.
type moveSorter struct {
	entries [board.Width]struct {
		moveBB uint64
		count  int
	}
	len int
}

// insert adds a candidate move and its winning-reply count, keeping the
// buffer sorted ascending by count. O(n) amortized for n<=Width; O(n^2)
// worst case, negligible at Width=7.
func (m *moveSorter) insert(moveBB uint64, count int) {
	index := m.len
	m.len++

	for index != 0 && m.entries[index-1].count > count {
		m.entries[index] = m.entries[index-1]
		index--
	}

	m.entries[index].moveBB = moveBB
	m.entries[index].count = count
}

// next pops the highest-count remaining entry, or returns ok=false when
// the buffer is empty.
func (m *moveSorter) next() (uint64, bool) {
	if m.len == 0 {
		return 0, false
	}
	m.len--
	return m.entries[m.len].moveBB, true
}
