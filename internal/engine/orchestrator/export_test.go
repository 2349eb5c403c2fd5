package orchestrator

import "time"

// SetClock replaces the clock used to time steps.
// This is exported for testing purposes only.
func (o *Orchestrator) SetClock(now func() time.Time) {
	o.now = now
}
