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

// WinDirection tags the orientation of a four-in-a-row line found by
// CheckWin.
type WinDirection uint8

const (
	AscendingDiagonal WinDirection = iota
	DescendingDiagonal
	Horizontal
	Vertical
)

// Position is an immutable-by-value Connect Four game state: two bitboards
// and a ply counter. It is small enough (24 bytes) to copy on every search
// frame rather than mutate in place, which is how the search descends and
// backs out of the tree.
type Position struct {
	// playerBB holds the pieces belonging to the side to move.
	playerBB uint64
	// occupiedBB holds every piece played so far, by either side.
	occupiedBB uint64
	// ply is the number of moves made to reach this position.
	ply uint8
}

// New returns the empty starting position.
func New() Position {
	return Position{}
}

// PlayerBB returns the bitboard of the side to move.
func (p Position) PlayerBB() uint64 {
	return p.playerBB
}

// OpponentBB returns the bitboard of the side not to move.
func (p Position) OpponentBB() uint64 {
	return p.playerBB ^ p.occupiedBB
}

// OccupiedBB returns the bitboard of every played piece.
func (p Position) OccupiedBB() uint64 {
	return p.occupiedBB
}

// Ply returns the number of moves played to reach this position.
func (p Position) Ply() uint8 {
	return p.ply
}

// Turn returns the player to move.
func (p Position) Turn() Player {
	if p.ply%2 == 0 {
		return P1
	}
	return P2
}

// PlayColumn plays the side-to-move's piece into the given 0-indexed
// column without checking that the move is legal. Playing into a full or
// out-of-bounds column corrupts the position.
func (p Position) PlayColumn(col int) Position {
	return p.PlayBitboard(p.occupiedBB + BottomPieceMask(col))
}

// PlayBitboard plays the side-to-move's piece given a move already
// represented as a single-bit bitboard (typically occupied+bottomMask,
// masked to the target column).
func (p Position) PlayBitboard(moveBB uint64) Position {
	return Position{
		playerBB:   p.playerBB ^ p.occupiedBB,
		occupiedBB: p.occupiedBB | moveBB,
		ply:        p.ply + 1,
	}
}

// UndoColumn removes the topmost piece of the given 0-indexed column,
// inverting PlayColumn. Only used by the history-bearing Game type; the
// search never calls this since it always descends by value.
func (p Position) UndoColumn(col int) Position {
	moveBB := (p.occupiedBB + BottomPieceMask(col)) >> 1
	occupied := p.occupiedBB ^ (moveBB & ColumnMask(col))
	return Position{
		playerBB:   (p.playerBB ^ p.occupiedBB) & occupied,
		occupiedBB: occupied,
		ply:        p.ply - 1,
	}
}

// IsOpen reports whether the given 0-indexed column can still accept a
// piece.
func (p Position) IsOpen(col int) bool {
	return p.occupiedBB&TopPieceMask(col) == 0
}

// PiecesInColumn returns the number of pieces played in the given
// 0-indexed column.
func (p Position) PiecesInColumn(col int) int {
	return popcount(p.occupiedBB & ColumnMask(col))
}

// IsFull reports whether every cell on the board has been played.
func (p Position) IsFull() bool {
	return p.ply >= Area
}

// CheckWin reports whether the given bitboard (typically PlayerBB or
// OpponentBB) contains a four-in-a-row, returning the lowest matching
// four-stone line and its orientation.
func (p Position) CheckWin(bb uint64) (uint64, WinDirection, bool) {
	if x := bb & (bb >> (Height + 2)); x&(x>>(2*(Height+2))) != 0 {
		line := x & (x >> (2 * (Height + 2)))
		return line, AscendingDiagonal, true
	}
	if x := bb & (bb >> Height); x&(x>>(2*Height)) != 0 {
		line := x & (x >> (2 * Height))
		return line, DescendingDiagonal, true
	}
	if x := bb & (bb >> (Height + 1)); x&(x>>(2*(Height+1))) != 0 {
		line := x & (x >> (2 * (Height + 1)))
		return line, Horizontal, true
	}
	if x := bb & (bb >> 1); x&(x>>2) != 0 {
		line := x & (x >> 2)
		return line, Vertical, true
	}
	return 0, 0, false
}

// HasOpponentWon reports whether the opponent (the side that just moved)
// has completed a four-in-a-row.
func (p Position) HasOpponentWon() bool {
	_, _, won := p.CheckWin(p.OpponentBB())
	return won
}

// IsTerminal reports whether the game is over: the board is full or the
// opponent has just won.
func (p Position) IsTerminal() bool {
	return p.IsFull() || p.HasOpponentWon()
}

// PossibleBB returns a bitboard with exactly one candidate bit per
// non-full column: the next empty cell above its current stack.
func (p Position) PossibleBB() uint64 {
	return (p.occupiedBB + BottomRowMask) & FullBoardMask
}

// winningBB returns the set of empty cells that would complete a
// four-in-a-row for the given bitboard, computed by paired shifts over all
// four line orientations and excluding already-occupied cells.
func (p Position) winningBB(bb uint64) uint64 {
	// Vertical |
	r := (bb << 1) & (bb << 2) & (bb << 3)

	// Horizontal -
	x := (bb << stride) & (bb << (2 * stride))
	r |= x & (bb << (3 * stride))
	r |= x & (bb >> stride)
	x = (bb >> stride) & (bb >> (2 * stride))
	r |= x & (bb >> (3 * stride))
	r |= x & (bb << stride)

	// Descending diagonal \
	x = (bb << Height) & (bb << (2 * Height))
	r |= x & (bb << (3 * Height))
	r |= x & (bb >> Height)
	x = (bb >> Height) & (bb >> (2 * Height))
	r |= x & (bb >> (3 * Height))
	r |= x & (bb << Height)

	// Ascending diagonal /
	x = (bb << (Height + 2)) & (bb << (2 * (Height + 2)))
	r |= x & (bb << (3 * (Height + 2)))
	r |= x & (bb >> (Height + 2))
	x = (bb >> (Height + 2)) & (bb >> (2 * (Height + 2)))
	r |= x & (bb >> (3 * (Height + 2)))
	r |= x & (bb << (Height + 2))

	return r & (p.occupiedBB ^ FullBoardMask)
}

// CanWinNext reports whether the side to move can complete a four-in-a-row
// with their next move.
func (p Position) CanWinNext() bool {
	return p.winningBB(p.playerBB)&p.PossibleBB() != 0
}

// IsWinningMove reports whether the side to move wins by playing into the
// given 0-indexed column.
func (p Position) IsWinningMove(col int) bool {
	return p.winningBB(p.playerBB)&p.PossibleBB()&ColumnMask(col) != 0
}

// CountWinningMoves returns the number of winning replies the side to move
// would have available after playing moveBB, used as the primary
// move-ordering key.
func (p Position) CountWinningMoves(moveBB uint64) int {
	return popcount(p.winningBB(p.playerBB | moveBB))
}

// NonLosingMoves returns a bitboard of candidate move bits (at most one
// per column) that do not hand the opponent an immediate winning reply.
// Returns 0 if the opponent already threatens two or more immediate wins,
// in which case the position is lost regardless of the move played.
func (p Position) NonLosingMoves() uint64 {
	possible := p.PossibleBB()
	opponentWins := p.winningBB(p.OpponentBB())
	forced := possible & opponentWins

	if forced != 0 {
		if forced&(forced-1) != 0 {
			// The opponent has more than one immediate win; no move saves us.
			return 0
		}
		possible = forced
	}

	return possible & ^(opponentWins >> 1)
}

// PositionScore returns the score that results if the game ends right
// now, from the side-to-move's perspective. winThisTurn selects whether
// the side to move is the one completing the win.
func (p Position) PositionScore(winThisTurn bool) Score {
	remaining := Area - int(p.ply)
	if winThisTurn {
		return Score((remaining + 1) / 2)
	}
	return Score(remaining / 2)
}

// Key returns the fast, non-symmetry-aware transposition key for this
// position. Adding playerBB places the "next empty" bit one above each
// column's top stone, so the sum is collision-free within one position.
func (p Position) Key() uint64 {
	return p.playerBB + p.occupiedBB
}

// Key3 returns the symmetric, base-3 canonical key used by the opening
// book. It is the lesser of the forward and mirror-image base-3
// encodings, divided by 3 to drop the trailing column-terminator digit.
func (p Position) Key3() uint64 {
	var forward, backward uint64
	for col := 0; col < Width; col++ {
		forward = p.partialKey3(forward, col)
	}
	for col := Width - 1; col >= 0; col-- {
		backward = p.partialKey3(backward, col)
	}
	if forward < backward {
		return forward / 3
	}
	return backward / 3
}

func (p Position) partialKey3(key uint64, col int) uint64 {
	mask := BottomPieceMask(col)
	for p.occupiedBB&mask != 0 {
		key *= 3
		if p.playerBB&mask == 0 {
			key += 2
		} else {
			key += 1
		}
		mask <<= 1
	}
	key *= 3
	return key
}

// Mirror horizontally reflects the position, remapping column c to column
// Width-1-c. Used only to verify the canonical key's symmetry invariant;
// the search itself never needs a mirrored Position.
func (p Position) Mirror() Position {
	return Position{
		playerBB:   Mirror(p.playerBB),
		occupiedBB: Mirror(p.occupiedBB),
		ply:        p.ply,
	}
}
