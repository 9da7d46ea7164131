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

// Package agent implements a simple AI that samples moves of a chosen
// quality band, using the analyzer's ratings rather than always playing
// the objectively best move.
package agent

import (
	"math/rand"
	"time"

	"github.com/connectfour-dev/connectfour/internal/analyzer"
	"github.com/connectfour-dev/connectfour/internal/board"
)

// Difficulty selects the minimum acceptable analyzer.Rating an agent will
// settle for.
type Difficulty uint8

const (
	Random Difficulty = iota
	Easy
	Moderate
	Advanced
	Perfect
)

// threshold returns the worst analyzer.Rating this difficulty will still
// accept.
func (d Difficulty) threshold() analyzer.Rating {
	switch d {
	case Easy:
		return analyzer.Mistake
	case Moderate:
		return analyzer.Inaccuracy
	case Advanced:
		return analyzer.Good
	case Perfect:
		return analyzer.Best
	default:
		return analyzer.Blunder
	}
}

// Agent chooses a column to play given an analysis of the current
// position, biased toward its configured Difficulty.
type Agent struct {
	difficulty Difficulty
	rng        *rand.Rand
}

// New creates an Agent of the given difficulty with its own random
// source.
func New(difficulty Difficulty) *Agent {
	return &Agent{difficulty: difficulty, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ChooseMove samples uniformly among the legal columns whose rating meets
// the agent's threshold, falling back to any legal column if none do.
func (a *Agent) ChooseMove(analysis analyzer.Analysis) int {
	worst := a.difficulty.threshold()
	ratings := analysis.Ratings()

	var candidates []int
	var anyLegal []int
	for col := 0; col < board.Width; col++ {
		if ratings[col] == nil {
			continue
		}
		anyLegal = append(anyLegal, col)
		if *ratings[col] <= worst {
			candidates = append(candidates, col)
		}
	}

	if len(candidates) == 0 {
		candidates = anyLegal
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[a.rng.Intn(len(candidates))]
}
