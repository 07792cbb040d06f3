package metrics

import (
	"sort"
	"sync"
	"time"
)

const maxSamples = 1000

type Metrics struct {
	mutex     sync.RWMutex
	requests  map[string]int64
	handled   map[string]int64
	durations map[string][]time.Duration
	startTime time.Time
}

type Snapshot struct {
	TotalRequests int64                     `json:"total_requests"`
	Handled       int64                     `json:"handled"`
	Unhandled     int64                     `json:"unhandled"`
	Uptime        time.Duration             `json:"uptime"`
	Requests      map[string]RequestMetrics `json:"requests"`
	Chain         string                    `json:"chain"`
}

type RequestMetrics struct {
	Dispatches  int64         `json:"dispatches"`
	Handled     int64         `json:"handled"`
	AvgDuration time.Duration `json:"avg_duration"`
	P50Duration time.Duration `json:"p50_duration"`
	P95Duration time.Duration `json:"p95_duration"`
	P99Duration time.Duration `json:"p99_duration"`
}

// RecordDispatch counts one dispatch of request and keeps its duration.
func (m *Metrics) RecordDispatch(request string, handled bool, duration time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.requests[request]++
	if handled {
		m.handled[request]++
	}

	m.durations[request] = append(m.durations[request], duration)

	if len(m.durations[request]) > maxSamples {
		m.durations[request] = m.durations[request][1:]
	}
}

func (m *Metrics) Snapshot(chain string) Snapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	snap := Snapshot{
		Uptime:   time.Since(m.startTime),
		Requests: make(map[string]RequestMetrics),
		Chain:    chain,
	}

	for request, count := range m.requests {
		snap.TotalRequests += count
		snap.Handled += m.handled[request]

		rm := RequestMetrics{
			Dispatches: count,
			Handled:    m.handled[request],
		}

		durations := m.durations[request]
		if len(durations) > 0 {
			sorted := make([]time.Duration, len(durations))
			copy(sorted, durations)
			sort.Slice(sorted, func(i, j int) bool {
				return sorted[i] < sorted[j]
			})

			rm.AvgDuration = average(sorted)
			rm.P50Duration = percentile(sorted, 0.50)
			rm.P95Duration = percentile(sorted, 0.95)
			rm.P99Duration = percentile(sorted, 0.99)
		}

		snap.Requests[request] = rm
	}

	snap.Unhandled = snap.TotalRequests - snap.Handled

	return snap
}

func NewMetrics() *Metrics {
	return &Metrics{
		requests:  make(map[string]int64),
		handled:   make(map[string]int64),
		durations: make(map[string][]time.Duration),
		startTime: time.Now(),
	}
}

func average(durations []time.Duration) time.Duration {
	if len(durations) == 0 {
		return 0
	}

	var sum time.Duration
	for _, d := range durations {
		sum += d
	}

	return sum / time.Duration(len(durations))
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	index := int(float64(len(sorted)) * p)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	return sorted[index]
}
