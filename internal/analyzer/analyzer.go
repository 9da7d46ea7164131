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

// Package analyzer turns a raw per-column score vector into predictions
// (who wins and in how many plies) and ratings (how good each candidate
// move is relative to the best one).
package analyzer

import (
	"math"

	"github.com/connectfour-dev/connectfour/internal/board"
)

// Outcome is the eventual result of a game under optimal play.
type Outcome struct {
	Draw   bool
	Winner board.Player
}

// Prediction is the eventual outcome and the number of plies until it is
// reached under optimal play.
type Prediction struct {
	Outcome    Outcome
	PliesToEnd int
}

// Rating classifies how much worse a candidate move is than the best
// available move.
type Rating uint8

const (
	Best Rating = iota
	Good
	Inaccuracy
	Mistake
	Blunder
)

func (r Rating) String() string {
	switch r {
	case Best:
		return "Best"
	case Good:
		return "Good"
	case Inaccuracy:
		return "Inaccuracy"
	case Mistake:
		return "Mistake"
	case Blunder:
		return "Blunder"
	default:
		return "Unknown"
	}
}

// Analysis bundles the per-column score vector produced by
// search.Engine.EvaluateNext with the side to move and ply it was
// computed at, from which predictions and ratings are derived.
type Analysis struct {
	Scores [board.Width]*board.Score
	Self   board.Player
	Ply    uint8
}

// New bundles a raw score vector into an Analysis.
func New(scores [board.Width]*board.Score, self board.Player, ply uint8) Analysis {
	return Analysis{Scores: scores, Self: self, Ply: ply}
}

// Predict returns the predicted outcome and plies-to-end for a single
// column's score, from the perspective of the side that the score was
// computed for (Analysis.Self).
func (a Analysis) Predict(col int) (Prediction, bool) {
	s := a.Scores[col]
	if s == nil {
		return Prediction{}, false
	}
	return predict(*s, a.Self, a.Ply), true
}

func predict(score board.Score, self board.Player, ply uint8) Prediction {
	movesLeft := int(board.Area) - int(ply)
	abs := int(score)
	if abs < 0 {
		abs = -abs
	}

	switch {
	case score < 0:
		return Prediction{
			Outcome:    Outcome{Winner: self.Other()},
			PliesToEnd: movesLeft/2 + 1 - abs,
		}
	case score == 0:
		return Prediction{
			Outcome:    Outcome{Draw: true},
			PliesToEnd: ceilDiv(movesLeft, 2),
		}
	default:
		return Prediction{
			Outcome:    Outcome{Winner: self},
			PliesToEnd: ceilDiv(movesLeft, 2) + 1 - abs,
		}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// amplifiedScore rescales a raw score so that nearly-equal raw scores
// with very different urgency (plies-to-end) are told apart, per the
// reference engine's rating formula.
func amplifiedScore(score board.Score, ply uint8, pliesToEnd int) board.Score {
	balanced := int(score)
	switch {
	case score > 0:
		balanced += int(ply) / 2
	case score < 0:
		balanced -= ceilDiv(int(ply), 2)
	}

	mult := math.Pow(2, float64(1-pliesToEnd)) + 1
	amplified := math.Round(float64(balanced) * mult)

	// Saturates to the Score type's own range, not the game's narrower
	// [-MaxScore, MaxScore] score domain: amplification is meant to widen
	// the gap between otherwise-close scores, and clamping to MaxScore
	// here would collapse exactly the distinctions it exists to preserve.
	if amplified > math.MaxInt8 {
		return math.MaxInt8
	}
	if amplified < math.MinInt8 {
		return math.MinInt8
	}
	return board.Score(amplified)
}

func sign(s board.Score) int {
	switch {
	case s > 0:
		return 1
	case s < 0:
		return -1
	default:
		return 0
	}
}

// Rate compares a candidate score against the best available score and
// classifies how much worse it is.
func Rate(score, best board.Score, ply uint8) Rating {
	if score == best {
		return Best
	}

	scorePred := predict(score, board.P1, ply)
	bestPred := predict(best, board.P1, ply)

	d := int(amplifiedScore(score, ply, scorePred.PliesToEnd)) - int(amplifiedScore(best, ply, bestPred.PliesToEnd))
	if d < 0 {
		d = -d
	}
	abs := d

	switch {
	case abs >= board.Area/2:
		return Blunder
	case abs >= board.Area/3:
		return Mistake
	case abs >= board.Area/6 || sign(score) != sign(best):
		return Inaccuracy
	default:
		return Good
	}
}

// Ratings returns the rating of every playable column relative to the
// best score among them. Unplayable columns are nil.
func (a Analysis) Ratings() [board.Width]*Rating {
	var ratings [board.Width]*Rating

	best, ok := a.bestScore()
	if !ok {
		return ratings
	}

	for col, s := range a.Scores {
		if s == nil {
			continue
		}
		r := Rate(*s, best, a.Ply)
		ratings[col] = &r
	}
	return ratings
}

func (a Analysis) bestScore() (board.Score, bool) {
	var best board.Score
	found := false
	for _, s := range a.Scores {
		if s == nil {
			continue
		}
		if !found || *s > best {
			best = *s
			found = true
		}
	}
	return best, found
}

// BestMoves returns every column whose score equals the best score.
func (a Analysis) BestMoves() []int {
	best, ok := a.bestScore()
	if !ok {
		return nil
	}
	var cols []int
	for col, s := range a.Scores {
		if s != nil && *s == best {
			cols = append(cols, col)
		}
	}
	return cols
}

// SortedMoves returns every playable column ordered by descending score
// (best move first).
func (a Analysis) SortedMoves() []int {
	var cols []int
	for col, s := range a.Scores {
		if s != nil {
			cols = append(cols, col)
		}
	}
	for i := 1; i < len(cols); i++ {
		j := i
		for j > 0 && *a.Scores[cols[j-1]] < *a.Scores[cols[j]] {
			cols[j-1], cols[j] = cols[j], cols[j-1]
			j--
		}
	}
	return cols
}
