// Package api
// Author: momentics@gmail.com
//
// Fixed-capacity ring buffer contract for single-owner producer/consumer buffering.

package api

import "iter"

// Ring is a bounded FIFO ring buffer contract.
// Implementations are not safe for concurrent use.
type Ring[T any] interface {
	// Push adds an item, returns false if full.
	Push(item T) bool
	// PushIgnore adds an item, discarding the oldest one if full.
	PushIgnore(item T)
	// Pop removes oldest item, returns false if empty.
	Pop() (T, bool)
	// Clear drops all items, keeping capacity.
	Clear()
	// IsEmpty reports whether no items are held.
	IsEmpty() bool
	// IsFull reports whether Len equals Cap.
	IsFull() bool
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
	// All yields held items oldest first without removing them.
	All() iter.Seq[T]
	// Drain yields held items oldest first, removing each one.
	Drain() iter.Seq[T]
}
