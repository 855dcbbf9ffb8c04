// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular buffer with head/tail indices and a full flag.
// Implements api.Ring for cross-package consistency.

package ring

import (
	"fmt"
	"iter"
	"slices"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]   = (*RingBuffer[any])(nil)
	_ api.StatsSource = (*RingBuffer[any])(nil)
)

// RingBuffer is a fixed-capacity FIFO holding at most Cap() elements.
// Vacated slots are reset to T's zero value so the buffer never retains
// references to removed elements.
type RingBuffer[T any] struct {
	data []T
	head int // next write slot
	tail int // oldest element
	full bool

	// version changes on every mutation; borrowing cursors compare against it.
	version uint64

	pushed      uint64
	rejected    uint64
	overwritten uint64
	popped      uint64
}

// New allocates a ring buffer holding up to capacity elements.
// Capacity zero yields a degenerate buffer that is both empty and full.
func New[T any](capacity int) *RingBuffer[T] {
	if capacity < 0 {
		panic("ring: negative capacity")
	}
	return &RingBuffer[T]{data: make([]T, capacity)}
}

// FromSlice builds a full buffer whose capacity equals len(items).
// items[0] becomes the oldest element. The slice is copied.
func FromSlice[T any](items []T) *RingBuffer[T] {
	return fromData(slices.Clone(items))
}

// Collect drains seq into a full buffer whose capacity equals the number of
// elements produced, oldest first.
func Collect[T any](seq iter.Seq[T]) *RingBuffer[T] {
	return fromData(slices.Clip(slices.Collect(seq)))
}

func fromData[T any](data []T) *RingBuffer[T] {
	if data == nil {
		data = []T{}
	}
	return &RingBuffer[T]{
		data:   data,
		full:   len(data) > 0,
		pushed: uint64(len(data)),
	}
}

// Push appends v if the buffer is not full. It returns false, leaving the
// buffer untouched, when the buffer is full.
func (r *RingBuffer[T]) Push(v T) bool {
	if r.IsFull() {
		r.rejected++
		return false
	}
	r.put(v)
	return true
}

// TryPush is Push for callers that propagate errors. The returned error
// matches api.ErrBufferFull and api.ErrResourceExhausted.
func (r *RingBuffer[T]) TryPush(v T) error {
	if r.Push(v) {
		return nil
	}
	return api.Wrap(api.ErrCodeResourceExhausted, api.ErrBufferFull).
		WithContext("capacity", len(r.data))
}

// PushIgnore appends v unconditionally. On a full buffer the oldest element is
// discarded to make room. On a zero-capacity buffer v is dropped.
func (r *RingBuffer[T]) PushIgnore(v T) {
	if len(r.data) == 0 {
		r.overwritten++
		return
	}
	if r.full {
		r.tail = r.next(r.tail)
		r.overwritten++
	}
	r.put(v)
}

// put writes at head; caller guarantees a free slot or an advanced tail.
func (r *RingBuffer[T]) put(v T) {
	r.data[r.head] = v
	r.head = r.next(r.head)
	r.full = r.head == r.tail
	r.pushed++
	r.version++
}

// Pop removes and returns the oldest element. ok is false if the buffer is empty.
func (r *RingBuffer[T]) Pop() (v T, ok bool) {
	if r.IsEmpty() {
		return v, false
	}
	var zero T
	v = r.data[r.tail]
	r.data[r.tail] = zero
	r.tail = r.next(r.tail)
	r.full = false
	r.popped++
	r.version++
	return v, true
}

// Peek returns the oldest element without removing it.
func (r *RingBuffer[T]) Peek() (v T, ok bool) {
	if r.IsEmpty() {
		return v, false
	}
	return r.data[r.tail], true
}

// PeekNewest returns the most recently pushed element without removing it.
func (r *RingBuffer[T]) PeekNewest() (v T, ok bool) {
	if r.IsEmpty() {
		return v, false
	}
	return r.data[r.prev(r.head)], true
}

// Clear drops all elements. Capacity is retained and every slot is reset to
// the zero value; counters reported by Stats are kept.
func (r *RingBuffer[T]) Clear() {
	clear(r.data)
	r.head = 0
	r.tail = 0
	r.full = false
	r.version++
}

// IsEmpty reports whether the buffer holds no elements.
func (r *RingBuffer[T]) IsEmpty() bool {
	return len(r.data) == 0 || (!r.full && r.head == r.tail)
}

// IsFull reports whether Len equals Cap.
func (r *RingBuffer[T]) IsFull() bool {
	return r.full || len(r.data) == 0
}

// Len returns the number of elements held.
func (r *RingBuffer[T]) Len() int {
	switch {
	case r.full:
		return len(r.data)
	case r.head >= r.tail:
		return r.head - r.tail
	default:
		return len(r.data) + r.head - r.tail
	}
}

// Cap returns the fixed capacity set at construction.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}

// Slice returns a newly allocated copy of the held elements, oldest first.
func (r *RingBuffer[T]) Slice() []T {
	n := r.Len()
	out := make([]T, n)
	if n == 0 {
		return out
	}
	k := copy(out, r.data[r.tail:min(r.tail+n, len(r.data))])
	copy(out[k:], r.data[:n-k])
	return out
}

// Stats returns a snapshot of the buffer counters.
func (r *RingBuffer[T]) Stats() api.Stats {
	return api.Stats{
		Len:         r.Len(),
		Cap:         len(r.data),
		Pushed:      r.pushed,
		Rejected:    r.rejected,
		Overwritten: r.overwritten,
		Popped:      r.popped,
	}
}

// String implements fmt.Stringer.
func (r *RingBuffer[T]) String() string {
	return fmt.Sprintf("ring[%d/%d]", r.Len(), len(r.data))
}

// next and prev must not be called on a zero-capacity buffer.
func (r *RingBuffer[T]) next(i int) int {
	i++
	if i == len(r.data) {
		return 0
	}
	return i
}

func (r *RingBuffer[T]) prev(i int) int {
	if i == 0 {
		return len(r.data) - 1
	}
	return i - 1
}
