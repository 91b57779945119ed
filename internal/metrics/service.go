package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service holds the Prometheus collectors for the player service
type Service struct {
	PlayersRegistered prometheus.Counter
	ScoresSubmitted   prometheus.Counter
	Failures          *prometheus.CounterVec
}

// NewHandler returns an http.Handler exposing the given gatherer.
// If no gatherer is provided, it uses the default one.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the player service metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlayersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gobang_players_registered_total",
			Help: "The total number of players registered.",
		}),
		ScoresSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gobang_scores_submitted_total",
			Help: "The total number of scores appended to player histories.",
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gobang_player_operation_failures_total",
			Help: "Player operations that returned an error, by operation and error kind.",
		}, []string{"operation", "kind"}),
	}

	reg.MustRegister(
		s.PlayersRegistered,
		s.ScoresSubmitted,
		s.Failures,
	)

	return s
}

func (s *Service) IncPlayersRegistered() {
	s.PlayersRegistered.Inc()
}

func (s *Service) IncScoresSubmitted() {
	s.ScoresSubmitted.Inc()
}

func (s *Service) IncFailures(operation, kind string) {
	s.Failures.WithLabelValues(operation, kind).Inc()
}
