package storage

import (
	"context"

	"github.com/mcoot/gobang/internal/model"
)

// Storage defines the document-store operations the player service relies on.
// Each backend must return model.ErrPlayerNotFound for unknown usernames and
// model.ErrPlayerExists when it natively detects a duplicate username.
type Storage interface {
	// FindPlayer looks up a single player document by username
	FindPlayer(ctx context.Context, username string) (*model.Player, error)

	// InsertPlayer persists a new player document and sets player.ID
	InsertPlayer(ctx context.Context, player *model.Player) error

	// AppendScore pushes one score onto the end of the player's score list
	AppendScore(ctx context.Context, username string, score any) error

	// Connection lifecycle
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
