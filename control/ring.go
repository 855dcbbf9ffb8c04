// control/ring.go
// Author: momentics <momentics@gmail.com>
//
// Glue exposing ring buffer counters through probes and metrics.

package control

import "github.com/momentics/hioload-ring/api"

// RegisterRing installs a probe named name that reports src.Stats().
func RegisterRing(dp api.Debug, name string, src api.StatsSource) {
	dp.RegisterProbe(name, func() any {
		return src.Stats()
	})
}

// PublishRing copies the current counters of src into mr under the
// "<name>." prefix.
func PublishRing(mr *MetricsRegistry, name string, src api.StatsSource) {
	s := src.Stats()
	mr.Set(name+".len", s.Len)
	mr.Set(name+".cap", s.Cap)
	mr.Set(name+".pushed", s.Pushed)
	mr.Set(name+".rejected", s.Rejected)
	mr.Set(name+".overwritten", s.Overwritten)
	mr.Set(name+".popped", s.Popped)
	mr.Set(name+".dropped", s.Dropped())
}
