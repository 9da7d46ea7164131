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
	"fmt"

	"github.com/connectfour-dev/connectfour/internal/board"
)

// Perft counts the number of unique positions reachable in exactly depth
// plies from an empty board, deduplicating by transposition key. Used to
// validate move generation; depth must not exceed board.Area.
func Perft(depth int) uint64 {
	if depth > board.Area {
		panic(fmt.Sprintf("game: Perft: depth %d exceeds board area %d", depth, board.Area))
	}
	seen := make(map[uint64]struct{})
	return countNodes(board.New(), depth, seen)
}

func countNodes(p board.Position, depth int, seen map[uint64]struct{}) uint64 {
	seen[p.Key()] = struct{}{}

	if depth == 0 {
		return 1
	}
	if p.IsFull() || p.HasOpponentWon() {
		return 0
	}

	var nodes uint64
	for col := 0; col < board.Width; col++ {
		if !p.IsOpen(col) {
			continue
		}
		child := p.PlayColumn(col)
		if _, dup := seen[child.Key()]; dup {
			continue
		}
		nodes += countNodes(child, depth-1, seen)
	}
	return nodes
}
