// Package api
// Author: momentics
//
// Live debug introspection for buffers embedded in long-running processes.

package api

// Debug exposes runtime introspection.
type Debug interface {
	// DumpState emits a snapshot of registered probes for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}

// StatsSource is anything that can report ring buffer counters.
type StatsSource interface {
	Stats() Stats
}
