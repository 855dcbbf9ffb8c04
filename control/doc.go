// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection for ring buffers embedded in
// long-running processes.
//
// Provides concurrent-safe registries:
//   - DebugProbes: named probe functions dumped on demand
//   - MetricsRegistry: flat key/value snapshot of published counters
//
// Registries are safe for concurrent use; the ring buffers they read are not,
// so probe and publish calls must run on the goroutine that owns the buffer
// or under the caller's own lock.
package control
