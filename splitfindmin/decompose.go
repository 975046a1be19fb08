// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package splitfindmin

import (
	"math"

	"github.com/sixafter/thorup/internal/dll"
)

// decomposeHead groups the elements in the raw spine from start backward
// to (but excluding) stop into singleton elements, singleton
// superelements, and sublists, recursively initializing every sublist it
// forms. It is used both to close a whole list (start = last, stop =
// sentinel) and to reinitialize a sub-range during Split.
func (l *List) decomposeHead(start, stop *dll.Container[*Element]) (*dll.List[*Element], *dll.List[*Superelement], *dll.List[*List]) {
	size := 0
	for c := start; c != stop; c = c.Predecessor() {
		size++
	}

	singletonElements := dll.New[*Element]()
	singletonSuperelements := dll.New[*Superelement]()
	sublists := dll.New[*List]()

	current := start
	processed := 0
	inSublist := 0
	var mostRecent *Superelement
	sub := newList(l.ackermannTable, l.listIndex-1)

	for size-processed > 3 {
		level := l.ackermannTable.Inverse(l.listIndex, size-processed)
		count := 2 * l.ackermannTable.Value(l.listIndex, level)

		se := &Superelement{Level: level, Cost: math.Inf(1)}
		se.lastContaining = current.Item

		for k := 0; k < count; k++ {
			current.Item.superelement = se
			if current.Item.Cost < se.Cost {
				se.Cost = current.Item.Cost
			}
			current = current.Predecessor()
		}
		se.firstContaining = current.Successor().Item

		if mostRecent != nil && mostRecent.Level != level {
			l.flush(sublists, singletonSuperelements, sub, inSublist, mostRecent, true)
			sub = newList(l.ackermannTable, l.listIndex-1)
			inSublist = 0
		}

		elem := sub.addSuperelement(se, true)
		se.sublistElement = elem
		se.containingSublist = sub
		inSublist++

		processed += count
		mostRecent = se
	}
	l.flush(sublists, singletonSuperelements, sub, inSublist, mostRecent, true)

	for c := current; c != stop; c = c.Predecessor() {
		ce := singletonElements.AppendFirst(c.Item)
		c.Item.containingContainerSingletonElements = ce
		c.Item.containingList = l
		c.Item.superelement = nil
	}

	sublists.Each(func(s *List) { s.InitializeHead() })
	return singletonElements, singletonSuperelements, sublists
}

// decomposeTail is decomposeHead's mirror image, grouping from start
// forward to (but excluding) stop. stop may be nil, meaning "walk to the
// end of the spine".
func (l *List) decomposeTail(start, stop *dll.Container[*Element]) (*dll.List[*Element], *dll.List[*Superelement], *dll.List[*List]) {
	size := 0
	for c := start; c != stop; c = c.Successor() {
		size++
	}

	singletonElements := dll.New[*Element]()
	singletonSuperelements := dll.New[*Superelement]()
	sublists := dll.New[*List]()

	current := start
	processed := 0
	inSublist := 0
	var mostRecent *Superelement
	sub := newList(l.ackermannTable, l.listIndex-1)

	for size-processed > 3 {
		level := l.ackermannTable.Inverse(l.listIndex, size-processed)
		count := 2 * l.ackermannTable.Value(l.listIndex, level)

		se := &Superelement{Level: level, Cost: math.Inf(1)}
		se.firstContaining = current.Item

		var lastVisited *dll.Container[*Element]
		for k := 0; k < count; k++ {
			current.Item.superelement = se
			if current.Item.Cost < se.Cost {
				se.Cost = current.Item.Cost
			}
			lastVisited = current
			current = current.Successor()
		}
		se.lastContaining = lastVisited.Item

		if mostRecent != nil && mostRecent.Level != level {
			l.flush(sublists, singletonSuperelements, sub, inSublist, mostRecent, false)
			sub = newList(l.ackermannTable, l.listIndex-1)
			inSublist = 0
		}

		elem := sub.addSuperelement(se, false)
		se.sublistElement = elem
		se.containingSublist = sub
		inSublist++

		processed += count
		mostRecent = se
	}
	l.flush(sublists, singletonSuperelements, sub, inSublist, mostRecent, false)

	for c := current; c != stop; c = c.Successor() {
		ce := singletonElements.Append(c.Item)
		c.Item.containingContainerSingletonElements = ce
		c.Item.containingList = l
		c.Item.superelement = nil
	}

	sublists.Each(func(s *List) { s.InitializeTail() })
	return singletonElements, singletonSuperelements, sublists
}

// flush closes out whatever run is currently accumulating in sub: a run
// of more than one same-level superelement becomes a sublist, a run of
// exactly one becomes a singleton superelement, and an empty run is a
// no-op. prepend selects which end of the destination lists to attach to.
func (l *List) flush(sublists *dll.List[*List], singletonSuperelements *dll.List[*Superelement], sub *List, inSublist int, mostRecent *Superelement, prepend bool) {
	switch {
	case inSublist > 1:
		var c *dll.Container[*List]
		if prepend {
			c = sublists.AppendFirst(sub)
		} else {
			c = sublists.Append(sub)
		}
		sub.containingContainerSublists = c
		sub.containingList = l

	case mostRecent != nil:
		var c *dll.Container[*Superelement]
		if prepend {
			c = singletonSuperelements.AppendFirst(mostRecent)
		} else {
			c = singletonSuperelements.Append(mostRecent)
		}
		mostRecent.containingContainerSingletonSuperelements = c
		mostRecent.containingList = l
		mostRecent.sublistElement = nil
		mostRecent.containingSublist = nil
	}
}
