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

// Package game wraps board.Position with move history, turning the
// solver's immutable-by-value position into a user-facing, stateful
// object: play/undo, a string move grammar, 2D board projection, and
// perft-based move-generation verification.
package game

import (
	"strconv"
	"strings"

	"github.com/connectfour-dev/connectfour/internal/board"
)

// Status describes the current state of a Game.
type Status struct {
	Ongoing bool
	Draw    bool
	Winner  board.Player
	IsWin   bool
}

// Game is a Position plus the sequence of 0-indexed columns played to
// reach it. The solver itself never sees or needs this history.
type Game struct {
	pos     board.Position
	history []int
}

// New creates a Game with an empty board.
func New() *Game {
	return &Game{pos: board.New()}
}

// Position returns the current immutable position snapshot, suitable for
// handing to a search.Engine.
func (g *Game) Position() board.Position {
	return g.pos
}

// Moves returns the 0-indexed columns played so far, in order.
func (g *Game) Moves() []int {
	return append([]int(nil), g.history...)
}

// Turn returns the player to move.
func (g *Game) Turn() board.Player {
	return g.pos.Turn()
}

// CanPlay reports why, if at all, col cannot be played right now.
func (g *Game) CanPlay(col int) error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	if col < 0 || col >= board.Width {
		return ErrInvalidColumn
	}
	if !g.pos.IsOpen(col) {
		return ErrColumnFull
	}
	return nil
}

// Play plays the side-to-move's piece into the given 0-indexed column.
func (g *Game) Play(col int) error {
	if err := g.CanPlay(col); err != nil {
		return err
	}
	g.pos = g.pos.PlayColumn(col)
	g.history = append(g.history, col)
	return nil
}

// PlaySlice plays a sequence of 0-indexed columns, stopping at the first
// illegal move.
func (g *Game) PlaySlice(cols []int) error {
	for _, col := range cols {
		if err := g.Play(col); err != nil {
			return err
		}
	}
	return nil
}

// PlayString plays a sequence of moves encoded as ASCII digits '1'..'7'
// (1-indexed columns), stopping at the first illegal or unparseable
// character.
func (g *Game) PlayString(moves string) error {
	for _, c := range moves {
		digit, err := strconv.Atoi(string(c))
		if err != nil || digit < 1 || digit > board.Width {
			return ErrInvalidColumn
		}
		if err := g.Play(digit - 1); err != nil {
			return err
		}
	}
	return nil
}

// Undo removes the most recently played piece and returns the column it
// was played into, or -1 if there is no move to undo.
func (g *Game) Undo() int {
	if len(g.history) == 0 {
		return -1
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.pos = g.pos.UndoColumn(last)
	return last
}

// IsDraw reports whether the board is full with no winner.
func (g *Game) IsDraw() bool {
	return g.pos.IsFull() && !g.hasWon()
}

func (g *Game) hasWon() bool {
	return g.pos.HasOpponentWon()
}

// IsGameOver reports whether the game has ended, by draw or win.
func (g *Game) IsGameOver() bool {
	return g.pos.IsFull() || g.hasWon()
}

// Winner returns the player who completed a four-in-a-row, if any. The
// winner is always the player who moved last, i.e. the opponent of the
// side now to move.
func (g *Game) Winner() (board.Player, bool) {
	if !g.hasWon() {
		return 0, false
	}
	return g.pos.Turn().Other(), true
}

// WinningLine returns the lowest matching four-stone bitmask and its
// direction, if the game has been won.
func (g *Game) WinningLine() (uint64, board.WinDirection, bool) {
	return g.pos.CheckWin(g.pos.OpponentBB())
}

// StatusOf reports the current game status.
func (g *Game) StatusOf() Status {
	if winner, ok := g.Winner(); ok {
		return Status{Winner: winner, IsWin: true}
	}
	if g.pos.IsFull() {
		return Status{Draw: true}
	}
	return Status{Ongoing: true}
}

// At returns the player who owns the piece at (x, y), or false if the
// cell is empty. x and y are 0-indexed; out-of-bounds coordinates are a
// programmer error and panic, matching the reference implementation's
// choice to trap rather than return a silent zero value.
func (g *Game) At(x, y int) (board.Player, bool) {
	if x < 0 || x >= board.Width {
		panic("game: At: x is out of bounds")
	}
	if y < 0 || y >= board.Height {
		panic("game: At: y is out of bounds")
	}

	turn := g.pos.Turn()
	mask := uint64(1) << (uint(x)*(board.Height+1) + uint(y))

	if g.pos.PlayerBB()&mask != 0 {
		return turn, true
	}
	if g.pos.OpponentBB()&mask != 0 {
		return turn.Other(), true
	}
	return 0, false
}

// Matrix returns the board as a row-major 2D grid, row 0 at the bottom.
func (g *Game) Matrix() [board.Height][board.Width]*board.Player {
	var grid [board.Height][board.Width]*board.Player
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			if p, ok := g.At(x, y); ok {
				player := p
				grid[y][x] = &player
			}
		}
	}
	return grid
}

// String renders the board top row first, one space-separated token per
// cell: "_" for an empty cell, "P1" or "P2" for an occupied one.
func (g *Game) String() string {
	grid := g.Matrix()
	var rows []string
	for y := board.Height - 1; y >= 0; y-- {
		var cells []string
		for x := 0; x < board.Width; x++ {
			if grid[y][x] == nil {
				cells = append(cells, "_")
			} else {
				cells = append(cells, grid[y][x].String())
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

// Key returns the fast transposition key of the current position.
func (g *Game) Key() uint64 {
	return g.pos.Key()
}

// Key3 returns the symmetric base-3 canonical key of the current
// position.
func (g *Game) Key3() uint64 {
	return g.pos.Key3()
}
