package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gobang/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close(s.ctx)
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestInsertAndFindPlayer() {
	player := model.NewPlayer("alice")

	err := s.storage.InsertPlayer(s.ctx, player)
	s.Require().NoError(err)
	s.NotEmpty(player.ID)

	retrieved, err := s.storage.FindPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal("alice", retrieved.Username)
	s.NotNil(retrieved.Scores)
	s.Empty(retrieved.Scores)
}

func (s *StorageSuite) TestFindPlayerNotFound() {
	_, err := s.storage.FindPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestInsertDuplicateUsername() {
	first := model.NewPlayer("alice")
	s.Require().NoError(s.storage.InsertPlayer(s.ctx, first))

	err := s.storage.InsertPlayer(s.ctx, model.NewPlayer("alice"))
	s.ErrorIs(err, model.ErrPlayerExists)

	// The first document is untouched
	retrieved, err := s.storage.FindPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(first.ID, retrieved.ID)
}

func (s *StorageSuite) TestAppendScoreKeepsOrderAndTypes() {
	s.Require().NoError(s.storage.InsertPlayer(s.ctx, model.NewPlayer("alice")))

	s.Require().NoError(s.storage.AppendScore(s.ctx, "alice", int64(10)))
	s.Require().NoError(s.storage.AppendScore(s.ctx, "alice", 7.5))
	s.Require().NoError(s.storage.AppendScore(s.ctx, "alice", "draw"))
	s.Require().NoError(s.storage.AppendScore(s.ctx, "alice", map[string]any{"moves": int64(31)}))
	s.Require().NoError(s.storage.AppendScore(s.ctx, "alice", int64(9007199254740993)))

	retrieved, err := s.storage.FindPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal([]any{
		int64(10), 7.5, "draw", map[string]any{"moves": int64(31)}, int64(9007199254740993),
	}, retrieved.Scores)
}

func (s *StorageSuite) TestAppendScoreUnknownPlayer() {
	err := s.storage.AppendScore(s.ctx, "bob", 3.0)
	s.ErrorIs(err, model.ErrPlayerNotFound)

	s.False(s.mini.Exists(s.storage.keys.scores("bob")), "no scores list should be created")
}

func (s *StorageSuite) TestPlayersHaveNoTTL() {
	s.Require().NoError(s.storage.InsertPlayer(s.ctx, model.NewPlayer("alice")))
	s.Require().NoError(s.storage.AppendScore(s.ctx, "alice", 1.0))

	s.Zero(s.mini.TTL(s.storage.keys.player("alice")))
	s.Zero(s.mini.TTL(s.storage.keys.scores("alice")))
}

func (s *StorageSuite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))
}

func (s *StorageSuite) TestFindPlayerConnectionError() {
	s.mini.SetError("connection refused")
	defer s.mini.SetError("")

	_, err := s.storage.FindPlayer(s.ctx, "alice")
	s.Error(err)
	s.NotErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestKeyPrefix() {
	cfg := DefaultConfig()
	cfg.KeyPrefix = "tenant-a"
	store := NewWithClient(s.storage.client, cfg)

	s.Require().NoError(store.InsertPlayer(s.ctx, model.NewPlayer("alice")))
	s.Require().NoError(store.AppendScore(s.ctx, "alice", 3.0))

	s.True(s.mini.Exists("tenant-a:player:{alice}"))
	s.True(s.mini.Exists("tenant-a:scores:{alice}"))
	s.False(s.mini.Exists("gobang:player:{alice}"))

	_, err := s.storage.FindPlayer(s.ctx, "alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestUsernamesCannotReachOtherPlayersKeys() {
	for _, name := range []string{"x:scores", "x", "{x}", "x}:scores:{x"} {
		s.Require().NoError(s.storage.InsertPlayer(s.ctx, model.NewPlayer(name)), name)
	}

	s.Require().NoError(s.storage.AppendScore(s.ctx, "x", 1.0))
	s.Require().NoError(s.storage.AppendScore(s.ctx, "x:scores", "other"))

	x, err := s.storage.FindPlayer(s.ctx, "x")
	s.Require().NoError(err)
	s.Equal("x", x.Username)
	s.Len(x.Scores, 1)

	other, err := s.storage.FindPlayer(s.ctx, "x:scores")
	s.Require().NoError(err)
	s.Equal("x:scores", other.Username)
	s.Equal([]any{"other"}, other.Scores)

	braced, err := s.storage.FindPlayer(s.ctx, "{x}")
	s.Require().NoError(err)
	s.Empty(braced.Scores)
}
