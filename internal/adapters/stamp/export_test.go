package stamp

import "time"

// SetClock replaces the time source used for the stamp date.
func (w *Writer) SetClock(now func() time.Time) {
	w.now = now
}
