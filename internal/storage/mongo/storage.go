package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mcoot/gobang/internal/model"
	"github.com/mcoot/gobang/internal/storage"
)

const usernameIndexName = "username_unique"

// playerDocument is the BSON shape of a player in the collection
type playerDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Scores   []any              `bson:"scores"`
}

func (d *playerDocument) toModel() *model.Player {
	scores := d.Scores
	if scores == nil {
		scores = []any{}
	}
	return &model.Player{
		ID:       d.ID.Hex(),
		Username: d.Username,
		Scores:   scores,
	}
}

// Storage is a MongoDB-backed implementation of the storage interface
type Storage struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// New connects to MongoDB, verifies the connection and ensures the username index
func New(ctx context.Context, cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	// Decode embedded documents in untyped scores as bson.M so they encode
	// back to JSON objects rather than key/value arrays
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &Storage{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}

	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return s, nil
}

// NewWithCollection creates a storage over an existing collection (for testing).
// The caller owns the client lifecycle.
func NewWithCollection(collection *mongo.Collection) *Storage {
	return &Storage{collection: collection}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// EnsureIndexes creates the unique index on username
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName(usernameIndexName).SetUnique(true),
	}

	if _, err := s.collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

func (s *Storage) FindPlayer(ctx context.Context, username string) (*model.Player, error) {
	var doc playerDocument
	err := s.collection.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("find player: %w", err)
	}
	return doc.toModel(), nil
}

func (s *Storage) InsertPlayer(ctx context.Context, player *model.Player) error {
	scores := player.Scores
	if scores == nil {
		scores = []any{}
	}
	doc := playerDocument{
		ID:       primitive.NewObjectID(),
		Username: player.Username,
		Scores:   scores,
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrPlayerExists
		}
		return fmt.Errorf("insert player: %w", err)
	}

	player.ID = doc.ID.Hex()
	return nil
}

func (s *Storage) AppendScore(ctx context.Context, username string, score any) error {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$push": bson.M{"scores": score}},
	)
	if err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	if result.MatchedCount == 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client if this storage owns one
func (s *Storage) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
