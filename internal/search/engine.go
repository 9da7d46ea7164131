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

// Package search implements the solver: a null-window bisection driver
// (MTD-style) over a negamax/alpha-beta core, backed by a transposition
// table and an optional opening book.
package search

import (
	"github.com/connectfour-dev/connectfour/internal/board"
	"github.com/connectfour-dev/connectfour/internal/cache"
	"github.com/connectfour-dev/connectfour/internal/logging"
)

// Engine is a solver and analyzer for Connect Four. It owns a
// transposition table and, optionally, an opening book; both are consumed
// by a single synchronous caller, never concurrently.
type Engine struct {
	nodeCount   uint64
	openingBook *cache.Book
	ttCache     *cache.Table
}

// New creates an Engine with empty caches.
func New(ttCapacityHint int) *Engine {
	return &Engine{
		openingBook: cache.NewBook(),
		ttCache:     cache.NewTable(ttCapacityHint),
	}
}

// WithOpeningBook creates an Engine seeded with a pre-loaded opening book.
func WithOpeningBook(book *cache.Book, ttCapacityHint int) *Engine {
	return &Engine{
		openingBook: book,
		ttCache:     cache.NewTable(ttCapacityHint),
	}
}

// NodeCount returns the number of nodes visited during the most recent
// Evaluate or EvaluateNext call.
func (e *Engine) NodeCount() uint64 {
	return e.nodeCount
}

// TTLen returns the number of entries currently held in the transposition
// table.
func (e *Engine) TTLen() int {
	return e.ttCache.Len()
}

// ClearTT discards every cached transposition table entry.
func (e *Engine) ClearTT() {
	e.ttCache.Clear()
}

// Evaluate returns the exact game-theoretic score of p from the
// perspective of the side to move.
func (e *Engine) Evaluate(p board.Position) board.Score {
	e.nodeCount = 0
	return e.solve(p)
}

// EvaluateNext scores every legal reply to p. The element for a column
// that cannot be played is nil.
func (e *Engine) EvaluateNext(p board.Position) [board.Width]*board.Score {
	e.nodeCount = 0

	var scores [board.Width]*board.Score
	for col := 0; col < board.Width; col++ {
		if !p.IsOpen(col) {
			continue
		}
		child := p.PlayColumn(col)
		var s board.Score
		if child.HasOpponentWon() {
			s = p.PositionScore(true)
		} else {
			s = -e.solve(child)
		}
		scores[col] = &s
	}
	return scores
}

// solve is the entry point used by both Evaluate and EvaluateNext: the
// early exits followed by the null-window bisection driver.
func (e *Engine) solve(p board.Position) board.Score {
	log := logging.GetSearchLog()

	if p.CanWinNext() {
		return p.PositionScore(true)
	}

	if p.Ply() <= e.openingBook.MaxDepth {
		if score, ok := e.openingBook.Get(p.Key3()); ok {
			return board.Score(score)
		}
	}

	max := p.PositionScore(false)
	min := -max

	for min < max {
		mid := min + (max-min)/2
		if mid <= 0 && min/2 < mid {
			mid = min / 2
		} else if mid >= 0 && max/2 > mid {
			mid = max / 2
		}

		score := e.negamax(p, mid, mid+1)

		if score <= mid {
			max = score
		} else {
			min = score
		}
	}

	log.Debugf("solved ply=%d score=%d nodes=%d", p.Ply(), min, e.nodeCount)
	return min
}

// negamax searches p within the null window [alpha, beta) (beta is
// typically alpha+1) and returns a value that is sound as alpha (failed
// low) or as a lower bound >= beta (failed high); it is never an exact
// interior score.
func (e *Engine) negamax(p board.Position, alpha, beta board.Score) board.Score {
	e.nodeCount++

	if p.IsFull() {
		return 0
	}

	nonLosing := p.NonLosingMoves()
	if nonLosing == 0 {
		return -p.PositionScore(false)
	}

	min := -p.PositionScore(false) + 1
	if min >= beta {
		return min
	}

	max := -min + 1
	if cached, ok := e.ttCache.Get(p.Key()); ok {
		max = board.Score(cached)
	}
	if alpha >= max {
		return max
	}

	var moves moveSorter
	for _, col := range revMoveOrder {
		moveBB := nonLosing & board.ColumnMask(col)
		if moveBB != 0 {
			moves.insert(moveBB, p.CountWinningMoves(moveBB))
		}
	}

	for {
		moveBB, ok := moves.next()
		if !ok {
			break
		}
		child := p.PlayBitboard(moveBB)
		score := -e.negamax(child, -beta, -alpha)
		if score >= beta {
			return score
		}
	}

	e.ttCache.Put(p.Key(), int8(alpha))
	return alpha
}
