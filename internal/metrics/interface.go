package metrics

// Metrics records player service activity.
// This decouples the service from the Prometheus implementation.
type Metrics interface {
	IncPlayersRegistered()
	IncScoresSubmitted()
	IncFailures(operation, kind string)
}
