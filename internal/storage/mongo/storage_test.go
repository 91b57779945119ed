package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mcoot/gobang/internal/model"
)

// These tests run against the driver's mock deployment: each mt.Run queues the
// server replies the storage call is expected to consume.

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestFindPlayer(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "alice"},
			{Key: "scores", Value: bson.A{10.0, 7.0}},
		}))

		player, err := NewWithCollection(mt.Coll).FindPlayer(ctx, "alice")
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), player.ID)
		assert.Equal(mt, "alice", player.Username)
		assert.Equal(mt, []any{10.0, 7.0}, player.Scores)
	})

	mt.Run("integer scores stay int64", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "username", Value: "alice"},
			{Key: "scores", Value: bson.A{int64(9007199254740993), 2.5}},
		}))

		player, err := NewWithCollection(mt.Coll).FindPlayer(ctx, "alice")
		require.NoError(mt, err)
		assert.Equal(mt, []any{int64(9007199254740993), 2.5}, player.Scores)
	})

	mt.Run("missing scores field decodes as empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "username", Value: "alice"},
		}))

		player, err := NewWithCollection(mt.Coll).FindPlayer(ctx, "alice")
		require.NoError(mt, err)
		assert.NotNil(mt, player.Scores)
		assert.Empty(mt, player.Scores)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := NewWithCollection(mt.Coll).FindPlayer(ctx, "bob")
		assert.ErrorIs(mt, err, model.ErrPlayerNotFound)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
		}))

		_, err := NewWithCollection(mt.Coll).FindPlayer(ctx, "alice")
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, model.ErrPlayerNotFound)
	})
}

func TestInsertPlayer(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("success assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		player := model.NewPlayer("alice")
		err := NewWithCollection(mt.Coll).InsertPlayer(ctx, player)
		require.NoError(mt, err)
		assert.NotEmpty(mt, player.ID)
		assert.True(mt, primitive.IsValidObjectID(player.ID))
	})

	mt.Run("duplicate key maps to player exists", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		player := model.NewPlayer("alice")
		err := NewWithCollection(mt.Coll).InsertPlayer(ctx, player)
		assert.ErrorIs(mt, err, model.ErrPlayerExists)
		assert.Empty(mt, player.ID)
	})
}

func TestAppendScore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := NewWithCollection(mt.Coll).AppendScore(ctx, "alice", 10.0)
		assert.NoError(mt, err)
	})

	mt.Run("no match maps to not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := NewWithCollection(mt.Coll).AppendScore(ctx, "bob", 10.0)
		assert.ErrorIs(mt, err, model.ErrPlayerNotFound)
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates index", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := NewWithCollection(mt.Coll).EnsureIndexes(context.Background())
		assert.NoError(mt, err)
	})
}

func TestPingAndCloseWithoutOwnedClient(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("noop", func(mt *mtest.T) {
		s := NewWithCollection(mt.Coll)
		assert.NoError(mt, s.Ping(context.Background()))
		assert.NoError(mt, s.Close(context.Background()))
	})
}
