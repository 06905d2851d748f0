package core

import (
	"sync"
	"time"
)

const AVG_COUNT uint8 = 30

// LoadMetrics keeps a rolling average of load times over the last
// AVG_COUNT loads, plus success and failure counters.
type LoadMetrics struct {
	mu sync.Mutex

	avgCounter uint8
	samples    uint8
	msTimes    [AVG_COUNT]float64
	msAvg      float64

	loads    uint64
	failures uint64
}

func NewLoadMetrics() *LoadMetrics {
	return &LoadMetrics{}
}

// Record adds one load to the metrics.
func (m *LoadMetrics) Record(elapsed time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.failures++
		return
	}
	m.loads++

	m.msTimes[m.avgCounter] = float64(elapsed) / float64(time.Millisecond)
	m.avgCounter = (m.avgCounter + 1) % AVG_COUNT
	if m.samples < AVG_COUNT {
		m.samples++
	}

	sum := 0.0
	for i := uint8(0); i < m.samples; i++ {
		sum += m.msTimes[i]
	}
	m.msAvg = sum / float64(m.samples)
}

// AverageMS returns the mean load time of the recent successful loads.
func (m *LoadMetrics) AverageMS() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.msAvg
}

// Counts returns the number of successful and failed loads.
func (m *LoadMetrics) Counts() (uint64, uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads, m.failures
}
