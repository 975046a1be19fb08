// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package dll implements an intrusive doubly linked list with a left
// sentinel, giving O(1) append, remove, cut, and splice. It is the spine
// that splitfindmin's singleton/superelement/sublist runs are threaded
// through.
package dll

// List is an intrusive doubly linked list of items of type T. The zero
// value is not ready to use; call New.
type List[T any] struct {
	sentinel *Container[T]
	last     *Container[T]
}

// Container is one node of a List. Containers are never exposed in their
// sentinel form — every Container returned to a caller holds a real item.
type Container[T any] struct {
	Item        T
	predecessor *Container[T]
	successor   *Container[T]
}

// New creates an empty list.
func New[T any]() *List[T] {
	sentinel := &Container[T]{}
	return &List[T]{sentinel: sentinel, last: sentinel}
}

// IsEmpty reports whether the list holds no items.
func (l *List[T]) IsEmpty() bool {
	return l.sentinel == l.last
}

// Append adds item after the last container and returns its container.
func (l *List[T]) Append(item T) *Container[T] {
	l.last = l.insertAfter(l.last, item)
	return l.last
}

// AppendFirst adds item before every existing item and returns its
// container.
func (l *List[T]) AppendFirst(item T) *Container[T] {
	wasEmpty := l.IsEmpty()
	c := l.insertAfter(l.sentinel, item)
	if wasEmpty {
		l.last = c
	}
	return c
}

// Insert adds item immediately after an existing container and returns
// the new container.
func (l *List[T]) Insert(after *Container[T], item T) *Container[T] {
	c := l.insertAfter(after, item)
	if after == l.last {
		l.last = c
	}
	return c
}

func (l *List[T]) insertAfter(after *Container[T], item T) *Container[T] {
	c := &Container[T]{Item: item, predecessor: after, successor: after.successor}

	if after.successor != nil {
		after.successor.predecessor = c
	}
	after.successor = c

	return c
}

// Remove detaches c from the list and returns its former predecessor.
func (l *List[T]) Remove(c *Container[T]) *Container[T] {
	if c == l.last {
		l.last = c.predecessor
	}

	c.predecessor.successor = c.successor
	if c.successor != nil {
		c.successor.predecessor = c.predecessor
	}

	return c.predecessor
}

// Cut splits the list at c: the receiver keeps the prefix ending at and
// including c, and a new list holding the suffix after c is returned. If
// c is already the last container, the suffix is empty.
func (l *List[T]) Cut(c *Container[T]) *List[T] {
	if c == l.last {
		return New[T]()
	}

	suffix := New[T]()
	suffix.sentinel.successor = c.successor
	c.successor.predecessor = suffix.sentinel
	suffix.last = l.last

	c.successor = nil
	l.last = c

	return suffix
}

// InsertList splices other into the receiver immediately after position,
// leaving other as an empty shell. Returns the position other's contents
// should now be addressed from (other's former last container, or
// position if other was empty).
func (l *List[T]) InsertList(position *Container[T], other *List[T]) *Container[T] {
	if other.IsEmpty() {
		return position
	}

	if position.successor != nil {
		position.successor.predecessor = other.last
		other.last.successor = position.successor
	}

	position.successor = other.sentinel.successor
	other.sentinel.successor.predecessor = position

	if position == l.last {
		l.last = other.last
	}

	last := other.last
	other.sentinel.successor = nil
	other.last = other.sentinel
	return last
}

// Extend appends all of other's contents onto the receiver, leaving
// other as an empty shell.
func (l *List[T]) Extend(other *List[T]) {
	if other.IsEmpty() {
		return
	}

	l.last.successor = other.sentinel.successor
	other.sentinel.successor.predecessor = l.last
	l.last = other.last

	other.sentinel.successor = nil
	other.last = other.sentinel
}

// Sentinel returns the list's left sentinel container. Callers use it
// only as a loop boundary marker (e.g. "walk predecessors until the
// sentinel"), never to read Item from it.
func (l *List[T]) Sentinel() *Container[T] {
	return l.sentinel
}

// Last returns the list's last container, or the sentinel if the list is
// empty.
func (l *List[T]) Last() *Container[T] {
	return l.last
}

// Predecessor returns c's predecessor container (possibly the sentinel).
func (c *Container[T]) Predecessor() *Container[T] {
	return c.predecessor
}

// Successor returns c's successor container, or nil if c is the last
// container in its list.
func (c *Container[T]) Successor() *Container[T] {
	return c.successor
}

// Each iterates the list's items from first to last.
func (l *List[T]) Each(fn func(T)) {
	for c := l.sentinel.successor; c != nil; c = c.successor {
		fn(c.Item)
	}
}
