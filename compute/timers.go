package compute

import "time"

// timerTable accumulates wall-clock time spent inside each force's
// ComputeAllVertexForces call, keyed by force id. Grounded on fem/fem.go's
// cputime := time.Now() / time.Now().Sub(cputime) summary-timing idiom,
// generalised from one whole-simulation timer to a table keyed per force.
type timerTable struct {
	running bool
	millis  map[string]float64
}

func newTimerTable() *timerTable {
	return &timerTable{millis: make(map[string]float64)}
}

// start (re)arms the table with a zero entry for every force id currently
// registered. A force added after start has no entry and is never timed
// until the next start call.
func (t *timerTable) start(forceIDs []string) {
	t.running = true
	t.millis = make(map[string]float64, len(forceIDs))
	for _, id := range forceIDs {
		t.millis[id] = 0
	}
}

// record adds the elapsed wall-clock time of a single force's compute call,
// measured by the caller around time.Now(). A no-op when the table was
// never started or forceID has no pre-existing entry.
func (t *timerTable) record(forceID string, elapsed time.Duration) {
	if !t.running {
		return
	}
	if _, ok := t.millis[forceID]; !ok {
		return
	}
	t.millis[forceID] += float64(elapsed.Microseconds()) / 1000.0
}

// snapshot returns a defensive copy of the accumulated per-force
// millisecond totals.
func (t *timerTable) snapshot() map[string]float64 {
	out := make(map[string]float64, len(t.millis))
	for k, v := range t.millis {
		out[k] = v
	}
	return out
}
