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

// Package cache implements the key->score maps used by the search: the
// transposition table (ephemeral, keyed by Position.Key) and the opening
// book (persisted, keyed by Position.Key3). Both share the same simple
// shape - last-write-wins, no eviction policy - since the transposition
// table only ever stores upper bounds and a stale or overwritten entry is
// still sound.
package cache

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/connectfour-dev/connectfour/internal/logging"
)

var out = message.NewPrinter(language.German)

// Table is a transposition table: a map from a position's fast key to its
// search score, interpreted by callers as an upper bound. Entries are
// added during search and are read-only to everyone else.
type Table struct {
	data  map[uint64]int8
	Stats Stats
}

// Stats tracks basic usage counters, reported the way the teacher's tt
// package logs its own hit/miss ratios.
type Stats struct {
	Puts   uint64
	Probes uint64
	Hits   uint64
	Misses uint64
}

// NewTable creates an empty transposition table sized by capacity hint.
func NewTable(capacityHint int) *Table {
	return &Table{data: make(map[uint64]int8, capacityHint)}
}

// Get returns the cached score for key, and whether an entry was present.
func (t *Table) Get(key uint64) (int8, bool) {
	t.Stats.Probes++
	v, ok := t.data[key]
	if ok {
		t.Stats.Hits++
	} else {
		t.Stats.Misses++
	}
	return v, ok
}

// Put inserts or overwrites the score for key. Last write wins; no
// versioning or replacement policy is needed because every insert is
// sound as an upper bound on its own.
func (t *Table) Put(key uint64, value int8) {
	t.Stats.Puts++
	t.data[key] = value
}

// Len returns the number of entries currently cached.
func (t *Table) Len() int {
	return len(t.data)
}

// Clear empties the table, releasing its backing storage.
func (t *Table) Clear() {
	t.data = make(map[uint64]int8)
	t.Stats = Stats{}
}

// String reports a German-locale formatted usage summary, mirroring the
// teacher's TtTable.String().
func (t *Table) String() string {
	log := logging.GetLog()
	log.Debugf("tt size=%d probes=%d hits=%d misses=%d", t.Len(), t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
	return out.Sprintf("entries: %d puts: %d probes: %d hits: %d misses: %d",
		t.Len(), t.Stats.Puts, t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
}
