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

// Package board implements the bitboard position representation for
// Connect Four: constant-time masks, column accessors and win-pattern
// shifts, and the Position type built on top of them.
//
// A bitboard packs the board into a 64-bit word using column-major layout
// with a sentinel row: column c occupies bits c*(Height+1) through
// c*(Height+1)+Height-1. The extra bit at the top of every column is an
// always-zero sentinel that stops horizontal and diagonal shifts from
// aliasing across column boundaries.
//
//	 .  .  .  .  .  .  .   <- sentinel row (always 0)
//	 5 12 19 26 33 40 47
//	 4 11 18 25 32 39 46
//	 3 10 17 24 31 38 45
//	 2  9 16 23 30 37 44
//	 1  8 15 22 29 36 43
//	 0  7 14 21 28 35 42
package board

import (
	"math/bits"
	"strings"
)

// Board dimensions. Only the standard 7x6 board is supported; the search
// and move-ordering tables below are sized and hand-tuned for these exact
// constants.
const (
	Width  = 7
	Height = 6
	Area   = Width * Height

	// MaxScore is the highest score attainable on a standard board: the
	// side to move wins with its fourth stone, on the seventh ply.
	MaxScore Score = Area/2 - 3
	// MinScore is the lowest attainable score, the mirror image of MaxScore.
	MinScore Score = -MaxScore
)

// Score is the signed, bounded game-theoretic value of a position from the
// perspective of the side to move. Positive means the side to move wins;
// magnitude encodes how quickly.
type Score = int8

// stride is the number of bits occupied by one column, including its
// sentinel bit.
const stride = Height + 1

// bottomIndex returns the bit index of the bottommost cell of column col.
func bottomIndex(col int) uint {
	return uint(col) * stride
}

// BottomPieceMask returns a mask with a single bit set at the bottom cell
// of the given 0-indexed column.
func BottomPieceMask(col int) uint64 {
	return 1 << bottomIndex(col)
}

// TopPieceMask returns a mask with a single bit set at the highest
// *playable* cell of the given 0-indexed column (row Height-1, not the
// sentinel).
func TopPieceMask(col int) uint64 {
	return 1 << (bottomIndex(col) + Height - 1)
}

// ColumnMask returns a mask of all playable bits (excluding the sentinel)
// of the given 0-indexed column.
func ColumnMask(col int) uint64 {
	return firstColumnMask << bottomIndex(col)
}

// firstColumnMask masks the six playable bits of column 0.
const firstColumnMask uint64 = (1 << Height) - 1

// BottomRowMask masks the bottom-most playable cell of every column.
var BottomRowMask = func() uint64 {
	var mask uint64
	for c := 0; c < Width; c++ {
		mask |= BottomPieceMask(c)
	}
	return mask
}()

// FullBoardMask masks every playable cell on the board (sentinel row
// excluded).
var FullBoardMask = BottomRowMask * firstColumnMask

// Mirror horizontally reflects a bitboard, remapping column c to column
// Width-1-c.
func Mirror(b uint64) uint64 {
	var mirrored uint64
	for col := 0; col < Width; col++ {
		mirroredCol := Width - 1 - col
		shift := (mirroredCol - col) * stride
		switch {
		case shift == 0:
			mirrored |= b & ColumnMask(col)
		case shift > 0:
			mirrored |= (b & ColumnMask(col)) << uint(shift)
		default:
			mirrored |= (b & ColumnMask(col)) >> uint(-shift)
		}
	}
	return mirrored
}

// Format renders a bitboard as a row-major ASCII grid, one character per
// cell, top row first. The sentinel row is omitted.
func Format(b uint64) string {
	var sb strings.Builder
	for row := Height - 1; row >= 0; row-- {
		for col := 0; col < Width; col++ {
			index := uint(col)*stride + uint(row)
			if b&(1<<index) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if col != Width-1 {
				sb.WriteByte(' ')
			}
		}
		if row != 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// popcount is a thin wrapper kept local so callers never need to reach for
// math/bits directly; this mirrors the teacher's habit of centralizing bit
// tricks next to the masks they operate on.
func popcount(b uint64) int {
	return bits.OnesCount64(b)
}
