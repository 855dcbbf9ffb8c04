// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular buffer for bounded producer/consumer buffering and
// history windows. Storage is a single slice allocated at construction; Push,
// PushIgnore and Pop are O(1) and never allocate.
//
// Empty and full are disambiguated by an explicit flag, so Cap always equals the
// requested size. A zero-capacity buffer is both empty and full: every Push fails,
// PushIgnore drops its argument and Pop yields nothing.
//
// RingBuffer is not safe for concurrent use. Wrap it with external locking if
// several goroutines share one buffer.
package ring
