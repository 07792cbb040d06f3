// Package metrics keeps in-memory statistics about chain dispatches.
//
// For every request label it tracks:
//   - How many times the label was dispatched
//   - How many of those dispatches a handler accepted
//   - Dispatch durations with percentile calculations (P50, P95, P99)
//
// Example usage:
//
//	m := metrics.NewMetrics()
//	m.RecordDispatch("Nut", true, 12*time.Microsecond)
//	snapshot := m.Snapshot("Monkey -> Squirrel")
//
// Storage is guarded by a sync.RWMutex so a frozen chain can be dispatched
// from several goroutines against one Metrics value.
package metrics
