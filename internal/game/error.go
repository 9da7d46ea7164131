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

// Error is one of the three ways a move can be rejected. Move entry
// points return it to the caller without applying the rejected move;
// PlaySlice and PlayString keep the moves applied before it.
type Error struct {
	kind string
}

func (e *Error) Error() string {
	return e.kind
}

var (
	// ErrInvalidColumn is returned when a column index is out of range or
	// a move string contains an unparseable digit.
	ErrInvalidColumn = &Error{"column is out of bounds or cannot be parsed"}
	// ErrColumnFull is returned when a move targets a column with no room
	// left.
	ErrColumnFull = &Error{"cannot play into a full column"}
	// ErrGameOver is returned when a move is attempted after the game has
	// already ended.
	ErrGameOver = &Error{"moves cannot be played after the game ends"}
)
