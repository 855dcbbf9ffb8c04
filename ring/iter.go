// File: ring/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Oldest-first traversal. A single cursor walk serves both the borrowing
// traversal (All, Iter) and the consuming one (Drain).

package ring

import "iter"

const errModified = "ring: buffer modified during iteration"

// Cursor walks a RingBuffer from its oldest to its newest element.
//
// A borrowing cursor (from Iter or All) never mutates the buffer and panics if
// the buffer is mutated while it is in use; call Reset to restart after a
// mutation. A consuming cursor (used by Drain) pops every element it yields.
type Cursor[T any] struct {
	r         *RingBuffer[T]
	idx       int
	traversed bool
	consume   bool
	version   uint64
}

// Iter returns a borrowing cursor positioned at the oldest element.
func (r *RingBuffer[T]) Iter() *Cursor[T] {
	c := &Cursor[T]{r: r}
	c.Reset()
	return c
}

// Reset repositions the cursor at the current oldest element.
func (c *Cursor[T]) Reset() {
	c.idx = c.r.tail
	c.traversed = false
	c.version = c.r.version
}

// Next returns the next element. ok is false once the walk is complete.
func (c *Cursor[T]) Next() (v T, ok bool) {
	r := c.r
	if c.consume {
		// Pop moves tail; producers may also have pushed since the last step.
		c.idx = r.tail
	} else if c.version != r.version {
		panic(errModified)
	}
	// head == idx is the end of the walk unless the buffer is full and we have
	// not yet moved, in which case every slot is still ahead of us.
	if c.idx == r.head && (c.traversed || !r.full) {
		return v, false
	}
	if c.consume {
		return r.Pop()
	}
	v = r.data[c.idx]
	c.idx = r.next(c.idx)
	c.traversed = true
	return v, true
}

// All yields the held elements oldest first without removing them. Each call
// of the returned sequence starts a fresh walk.
func (r *RingBuffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(r.Iter(), yield)
	}
}

// Drain yields the held elements oldest first, popping each one. Elements
// pushed while draining are yielded too.
func (r *RingBuffer[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(&Cursor[T]{r: r, consume: true}, yield)
	}
}

func walk[T any](c *Cursor[T], yield func(T) bool) {
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		if !yield(v) {
			return
		}
	}
}
