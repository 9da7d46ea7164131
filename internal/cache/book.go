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

package cache

import (
	"encoding/binary"
	"fmt"

	"github.com/connectfour-dev/connectfour/internal/board"
	"github.com/connectfour-dev/connectfour/internal/logging"
)

// bufferDelimit is the sentinel u32 value separating score groups in the
// opening book's on-disk format. A canonical base-3 key equals 1 only for
// a position whose single stone belongs to the side to move, which no game
// reaches (after one move the stone belongs to the opponent), so this value
// never collides with a real key.
const bufferDelimit uint32 = 1

// Book is an opening book: a Table keyed by Position.Key3 (the symmetric
// base-3 canonical key) instead of the fast key, plus the deepest ply at
// which it should be consulted.
type Book struct {
	Table
	MaxDepth uint8
}

// NewBook creates an empty opening book. With MaxDepth 0 only the empty
// position passes the ply <= MaxDepth check, and its lookup always misses
// because the book holds no entries.
func NewBook() *Book {
	return &Book{Table: Table{data: make(map[uint64]int8)}}
}

// LoadBook parses the binary opening book format described by the
// specification:
//
//	byte 0          : max_depth (u8)
//	remaining bytes : little-endian u32s in groups separated by the
//	                  sentinel value bufferDelimit; group k holds keys
//	                  whose score is board.MinScore + k.
//
// Parsing fails if the input ends before the group for board.MaxScore is
// terminated.
func LoadBook(data []byte) (*Book, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("opening book: empty file")
	}

	book := NewBook()
	book.MaxDepth = data[0]
	rest := data[1:]

	if len(rest)%4 != 0 {
		return nil, fmt.Errorf("opening book: trailing %d bytes do not form a whole u32", len(rest)%4)
	}

	score := board.MinScore
	for i := 0; i+4 <= len(rest); i += 4 {
		word := binary.LittleEndian.Uint32(rest[i : i+4])
		if word == bufferDelimit {
			score++
			if score > board.MaxScore {
				log := logging.GetLog()
				log.Infof("opening book: loaded %d entries up to depth %d", book.Len(), book.MaxDepth)
				return book, nil
			}
			continue
		}
		book.Put(uint64(word), int8(score))
	}

	return nil, fmt.Errorf("opening book: file ended before reaching the max-score group (stopped at score %d)", score)
}
