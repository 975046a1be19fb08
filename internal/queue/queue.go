// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package queue implements the minimum binary heap backing the
// brute-force shortest-path reference the engine's tests compare
// against. The engine itself never touches it: removing exactly this
// kind of queue from the traversal is what the component-tree bucket
// hierarchy is for.
package queue

import (
	"container/heap"
	"errors"
)

// ErrEmpty is returned by Pop on an empty queue.
var ErrEmpty = errors.New("queue: empty")

// PriorityQueue is a min-heap of payloads ordered by a float64 priority.
// The same payload may be queued more than once at different priorities;
// a caller that re-queues on every improvement skips the stale entries
// as they surface, which keeps relaxation O(log n) without a decrease-key
// operation.
type PriorityQueue[T any] struct {
	items minHeap[T]
}

// NewPriorityQueue creates an empty queue.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

// Len returns the number of queued entries, counting duplicates.
func (p *PriorityQueue[T]) Len() int {
	return p.items.Len()
}

// Push queues item at the given priority.
func (p *PriorityQueue[T]) Push(item T, priority float64) {
	heap.Push(&p.items, entry[T]{item: item, priority: priority})
}

// Pop removes and returns a queued item of minimum priority, or ErrEmpty
// if nothing is queued.
func (p *PriorityQueue[T]) Pop() (T, error) {
	if p.items.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return heap.Pop(&p.items).(entry[T]).item, nil
}

type entry[T any] struct {
	item     T
	priority float64
}

// minHeap adapts a slice of entries to container/heap.
type minHeap[T any] []entry[T]

func (m minHeap[T]) Len() int            { return len(m) }
func (m minHeap[T]) Less(i, j int) bool  { return m[i].priority < m[j].priority }
func (m minHeap[T]) Swap(i, j int)       { m[i], m[j] = m[j], m[i] }
func (m *minHeap[T]) Push(x interface{}) { *m = append(*m, x.(entry[T])) }

func (m *minHeap[T]) Pop() interface{} {
	old := *m
	n := len(old)
	e := old[n-1]
	*m = old[:n-1]
	return e
}
