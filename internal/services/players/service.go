package players

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/gobang/internal/metrics"
	"github.com/mcoot/gobang/internal/model"
	"github.com/mcoot/gobang/internal/storage"
)

// Service owns every read and write against the player collection
type Service struct {
	storage storage.Storage
	metrics metrics.Metrics
	logger  *slog.Logger
}

// New creates a new player service
func New(storage storage.Storage, metrics metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		metrics: metrics,
		logger:  logger,
	}
}

// Register creates a player with an empty score history.
//
// The existence check and the insert are separate store calls, so two concurrent
// registrations of the same name can both pass the check. Backends that enforce
// uniqueness natively report the loser as model.ErrPlayerExists.
func (s *Service) Register(ctx context.Context, username string) (*model.Player, error) {
	if username == "" {
		return nil, s.fail("register", model.NewValidationError("username"))
	}

	_, err := s.storage.FindPlayer(ctx, username)
	if err == nil {
		return nil, s.fail("register", model.ErrPlayerExists)
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, s.fail("register", err)
	}

	player := model.NewPlayer(username)
	if err := s.storage.InsertPlayer(ctx, player); err != nil {
		return nil, s.fail("register", err)
	}

	s.metrics.IncPlayersRegistered()
	s.logger.Info("player registered",
		slog.String("username", username),
		slog.String("player_id", player.ID),
	)
	return player, nil
}

// SubmitScore appends score to the player's history and returns the updated record.
// The score is stored as given; only its presence is checked.
func (s *Service) SubmitScore(ctx context.Context, username string, score any) (*model.Player, error) {
	if username == "" {
		return nil, s.fail("score", model.NewValidationError("username"))
	}
	if score == nil {
		return nil, s.fail("score", model.NewValidationError("score"))
	}
	score = model.NormalizeScore(score)

	player, err := s.storage.FindPlayer(ctx, username)
	if err != nil {
		return nil, s.fail("score", err)
	}

	if err := s.storage.AppendScore(ctx, username, score); err != nil {
		return nil, s.fail("score", err)
	}
	player.AppendScore(score)

	s.metrics.IncScoresSubmitted()
	s.logger.Debug("score submitted",
		slog.String("username", username),
		slog.Int("score_count", len(player.Scores)),
	)
	return player, nil
}

// GetPlayer returns the stored record for username
func (s *Service) GetPlayer(ctx context.Context, username string) (*model.Player, error) {
	if username == "" {
		return nil, s.fail("get", model.ErrPlayerNotFound)
	}

	player, err := s.storage.FindPlayer(ctx, username)
	if err != nil {
		return nil, s.fail("get", err)
	}
	return player, nil
}

// Ping checks that the backing store is reachable
func (s *Service) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}

func (s *Service) fail(operation string, err error) error {
	s.metrics.IncFailures(operation, errorKind(err))
	return err
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, model.ErrValidation):
		return "validation"
	case errors.Is(err, model.ErrPlayerExists):
		return "conflict"
	case errors.Is(err, model.ErrPlayerNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
