package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mcoot/gobang/internal/model"
	"github.com/mcoot/gobang/internal/storage"
)

// appendScoreScript pushes onto the scores list only if the player document exists.
// Returns -1 when the player is missing, otherwise the new list length.
var appendScoreScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return -1
end
return redis.call("RPUSH", KEYS[2], ARGV[1])
`)

// playerDocument is the stored form of a player; scores live in a separate list
type playerDocument struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
	keys   keys
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		keys:   cfg.keys(),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) FindPlayer(ctx context.Context, username string) (*model.Player, error) {
	pipe := s.client.Pipeline()
	docCmd := pipe.Get(ctx, s.keys.player(username))
	scoresCmd := pipe.LRange(ctx, s.keys.scores(username), 0, -1)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("find player: %w", err)
	}

	data, err := docCmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("find player: %w", err)
	}

	var doc playerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode player %q: %w", username, err)
	}

	rawScores, err := scoresCmd.Result()
	if err != nil {
		return nil, fmt.Errorf("find scores: %w", err)
	}

	scores := make([]any, 0, len(rawScores))
	for _, raw := range rawScores {
		score, err := model.DecodeScore([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decode score for %q: %w", username, err)
		}
		scores = append(scores, score)
	}

	return &model.Player{
		ID:       doc.ID,
		Username: doc.Username,
		Scores:   scores,
	}, nil
}

// InsertPlayer uses SETNX so a concurrent registration of the same username
// loses with model.ErrPlayerExists instead of overwriting.
func (s *Storage) InsertPlayer(ctx context.Context, player *model.Player) error {
	doc := playerDocument{
		ID:       uuid.NewString(),
		Username: player.Username,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	created, err := s.client.SetNX(ctx, s.keys.player(player.Username), data, 0).Result()
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	if !created {
		return model.ErrPlayerExists
	}

	player.ID = doc.ID
	return nil
}

func (s *Storage) AppendScore(ctx context.Context, username string, score any) error {
	data, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("encode score: %w", err)
	}

	scriptKeys := []string{s.keys.player(username), s.keys.scores(username)}
	n, err := appendScoreScript.Run(ctx, s.client, scriptKeys, string(data)).Int64()
	if err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	if n < 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *Storage) Close(_ context.Context) error {
	return s.client.Close()
}
