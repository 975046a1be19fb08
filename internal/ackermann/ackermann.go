// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package ackermann precomputes the entries of Ackermann's function A(i,j)
// that are needed to size superelements in Gabow's split-findmin
// structure, along with its functional inverse alpha.
package ackermann

// undefined marks a (row, column) pair that has not been computed because
// the next value would have exceeded the table's cap.
const undefined = -1

// Table stores A(i,j) for as many (i,j) as stay at or below a cap, built
// once and shared by every split-findmin list that descends from the same
// outermost call.
type Table struct {
	cap    int
	rows   map[int]map[int]int
	maxRow int
}

// New builds a table of every A(i,j) <= cap, lazily row by row. A(i,0) is
// always 2 and is never stored; Value reports it directly.
func New(cap int) *Table {
	t := &Table{cap: cap, rows: make(map[int]map[int]int)}
	t.build()
	return t
}

func (t *Table) build() {
	i, j := 1, 2
	t.set(1, 1, 2)

	for {
		var next int
		if i == 1 {
			next = t.Value(i, j-1) * 2
		} else {
			next = t.Value(i-1, t.Value(i, j-1))
		}

		if next > t.cap || next == undefined {
			if j == 1 {
				return
			}
			i++
			j = 1
			continue
		}

		t.set(i, j, next)
		j++
	}
}

// Value returns A(i,j), or undefined (-1) if it was never computed
// because it would exceed the table's cap. A(i,0) is always 2.
func (t *Table) Value(i, j int) int {
	if j == 0 {
		return 2
	}

	row, ok := t.rows[i]
	if !ok {
		return undefined
	}

	v, ok := row[j]
	if !ok {
		return undefined
	}

	return v
}

func (t *Table) set(i, j, value int) {
	row, ok := t.rows[i]
	if !ok {
		row = make(map[int]int)
		t.rows[i] = row
	}
	row[j] = value
	if i > t.maxRow {
		t.maxRow = i
	}
}

// Inverse computes alpha(m,n): the level at which a run of n unprocessed
// elements in an index-m list should be grouped, per Gabow's three-way
// split.
//
//   - n >= 4: the largest j with 2*A(m,j) <= n.
//   - m >= n (and n < 4): the smallest i with A(i, floor(m/n)) defined.
//   - otherwise: -1 (no such level).
func (t *Table) Inverse(m, n int) int {
	if n >= 4 {
		j := 0
		for t.Value(m, j) != undefined && 2*t.Value(m, j) <= n {
			j++
		}
		return j - 1
	}

	if m >= n {
		for i := 1; i <= t.maxRow; i++ {
			if t.Value(i, m/n) != undefined {
				return i
			}
		}
		return undefined
	}

	return undefined
}
