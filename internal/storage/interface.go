package storage

import (
	"context"

	"github.com/arcadenight/leaderboard-go/internal/model"
)

// Storage defines the interface for data persistence.
//
// Uniqueness of nickname and phone is enforced here, not in the
// service layer: concurrent creations race down to storage and exactly
// one wins, the loser receiving model.ErrNicknameTaken or
// model.ErrPhoneInUse.
type Storage interface {
	// CreatePlayer persists a new record. It fails with
	// model.ErrNicknameTaken or model.ErrPhoneInUse if another record
	// already owns either identifier.
	CreatePlayer(ctx context.Context, player *model.Player) error

	// GetPlayerByNickname returns the record owning the nickname, or
	// model.ErrPlayerNotFound.
	GetPlayerByNickname(ctx context.Context, nickname string) (*model.Player, error)

	// GetPlayerByPhone returns the record owning the phone, or
	// model.ErrPlayerNotFound.
	GetPlayerByPhone(ctx context.Context, phone int64) (*model.Player, error)

	// ListPlayersByScore returns all records ordered by highscore
	// descending. Tie order is unspecified.
	ListPlayersByScore(ctx context.Context) ([]*model.Player, error)

	// UpdateHighscoreIfGreater atomically raises the record's highscore
	// to score if and only if score exceeds the stored value
	// (compare-and-set; the stored score never decreases). It returns
	// the record as of after the attempt and whether a write happened.
	UpdateHighscoreIfGreater(ctx context.Context, nickname string, score int64) (*model.Player, bool, error)
}
