// Package api
// Author: momentics@gmail.com
//
// Ring buffer counters exported for debug probes and metrics.

package api

// Stats is a point-in-time snapshot of ring buffer counters.
type Stats struct {
	Len         int    `json:"len"`
	Cap         int    `json:"cap"`
	Pushed      uint64 `json:"pushed"`      // accepted by Push or PushIgnore
	Rejected    uint64 `json:"rejected"`    // refused by Push/TryPush because full
	Overwritten uint64 `json:"overwritten"` // oldest items dropped by PushIgnore
	Popped      uint64 `json:"popped"`
}

// Dropped returns the number of items lost to backpressure or overwrite.
func (s Stats) Dropped() uint64 {
	return s.Rejected + s.Overwritten
}
