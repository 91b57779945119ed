package metrics

import "sync"

var _ Metrics = (*MockMetrics)(nil)

// MockMetrics counts calls in memory for tests
type MockMetrics struct {
	mu                sync.Mutex
	PlayersRegistered int
	ScoresSubmitted   int
	Failures          map[string]int
}

// NewMock creates an empty MockMetrics
func NewMock() *MockMetrics {
	return &MockMetrics{Failures: make(map[string]int)}
}

func (m *MockMetrics) IncPlayersRegistered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayersRegistered++
}

func (m *MockMetrics) IncScoresSubmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScoresSubmitted++
}

func (m *MockMetrics) IncFailures(operation, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failures[operation+"/"+kind]++
}

// FailureCount returns the recorded failures for an operation and kind
func (m *MockMetrics) FailureCount(operation, kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Failures[operation+"/"+kind]
}
