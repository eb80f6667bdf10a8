package leaderboard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arcadenight/leaderboard-go/internal/denylist"
	"github.com/arcadenight/leaderboard-go/internal/dependencies/clock"
	"github.com/arcadenight/leaderboard-go/internal/model"
	"github.com/arcadenight/leaderboard-go/internal/storage"
)

// Errors
var (
	// ErrBlocked is a policy rejection: the identifier is on the
	// denylist. Distinct from not-found and validation failures.
	ErrBlocked = errors.New("phone number is blocked")
)

// Config holds configuration for the leaderboard service
type Config struct {
	// PhoneIdentity controls whether phone numbers take part in the
	// identity model. When false, uniqueness and blocking are evaluated
	// on nickname alone (beyond list-time filtering).
	PhoneIdentity bool

	// TopLimit caps List results when greater than zero
	TopLimit int
}

// DefaultConfig returns default service configuration
func DefaultConfig() Config {
	return Config{
		PhoneIdentity: true,
		TopLimit:      0,
	}
}

// Service applies the identity-reconciliation and score-acceptance
// rules against the persisted record set. It holds no cache: every
// operation re-reads current state through storage.
type Service struct {
	storage  storage.Storage
	denylist *denylist.List
	clock    clock.Clock
	cfg      Config
	logger   *slog.Logger
}

// New creates a new leaderboard service
func New(storage storage.Storage, denylist *denylist.List, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		denylist: denylist,
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
	}
}

// List returns all records ordered by highscore descending. A
// non-empty phone identifier is pre-checked against the denylist and
// short-circuits with ErrBlocked. When TopLimit is set, only the top
// records are returned.
func (s *Service) List(ctx context.Context, phone string) ([]*model.Player, error) {
	if phone != "" && s.denylist.Blocked(phone) {
		return nil, ErrBlocked
	}

	players, err := s.storage.ListPlayersByScore(ctx)
	if err != nil {
		s.logger.Error("failed to list players", slog.String("error", err.Error()))
		return nil, err
	}

	if s.cfg.TopLimit > 0 && len(players) > s.cfg.TopLimit {
		players = players[:s.cfg.TopLimit]
	}
	return players, nil
}

// Register creates a new record with a zero highscore, or returns the
// existing record when the same nickname+phone pair registers again.
// The returned bool reports whether a record was created.
//
// Phone is the stronger identity key: an existing record owning the
// phone decides the outcome before the nickname is consulted.
func (s *Service) Register(ctx context.Context, nickname string, phone *int64) (*model.Player, bool, error) {
	if s.cfg.PhoneIdentity && phone != nil && s.denylist.BlockedPhone(*phone) {
		s.logger.Info("registration blocked", slog.Int64("phone", *phone))
		return nil, false, ErrBlocked
	}

	if s.cfg.PhoneIdentity && phone != nil {
		existing, err := s.storage.GetPlayerByPhone(ctx, *phone)
		switch {
		case err == nil:
			if existing.Nickname == nickname {
				// Same identity registering again: idempotent no-op
				return existing, false, nil
			}
			return nil, false, model.ErrPhoneInUse
		case !errors.Is(err, model.ErrPlayerNotFound):
			return nil, false, err
		}
	}

	if _, err := s.storage.GetPlayerByNickname(ctx, nickname); err == nil {
		return nil, false, model.ErrNicknameTaken
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, false, err
	}

	now := s.clock.Now()
	player := &model.Player{
		Nickname:  nickname,
		Highscore: 0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if s.cfg.PhoneIdentity {
		player.Phone = phone
	}

	if err := s.storage.CreatePlayer(ctx, player); err != nil {
		// A racing creation may win between the read and the write;
		// storage's uniqueness constraint surfaces it as taken/in-use
		return nil, false, err
	}

	s.logger.Info("player registered", slog.String("nickname", nickname))
	return player, true, nil
}

// UpdateScore raises the record's highscore if the proposed score
// exceeds the stored one. The returned bool reports whether a write
// happened; when false, the stored record is returned unchanged.
// A nickname with no record is fatal: update is not a registration path.
func (s *Service) UpdateScore(ctx context.Context, nickname string, score int64) (*model.Player, bool, error) {
	player, err := s.storage.GetPlayerByNickname(ctx, nickname)
	if err != nil {
		return nil, false, err
	}

	// Blocking re-checked on every score-affecting operation, not only
	// at registration
	if s.cfg.PhoneIdentity && player.HasPhone() && s.denylist.BlockedPhone(*player.Phone) {
		s.logger.Info("score update blocked",
			slog.String("nickname", nickname),
			slog.Int64("phone", *player.Phone),
		)
		return nil, false, ErrBlocked
	}

	updated, wrote, err := s.storage.UpdateHighscoreIfGreater(ctx, nickname, score)
	if err != nil {
		s.logger.Error("failed to update highscore",
			slog.String("nickname", nickname),
			slog.String("error", err.Error()),
		)
		return nil, false, err
	}

	if wrote {
		s.logger.Info("highscore updated",
			slog.String("nickname", nickname),
			slog.Int64("highscore", score),
		)
	}
	return updated, wrote, nil
}

// Upsert is the merged register-and-update operation keyed on nickname
// alone: the record is created transparently when absent, then the
// usual score-acceptance rule applies. The returned bools report
// creation and score write respectively.
func (s *Service) Upsert(ctx context.Context, nickname string, score int64) (*model.Player, bool, bool, error) {
	created := false

	if _, err := s.storage.GetPlayerByNickname(ctx, nickname); err != nil {
		if !errors.Is(err, model.ErrPlayerNotFound) {
			return nil, false, false, err
		}

		now := s.clock.Now()
		player := &model.Player{
			Nickname:  nickname,
			Highscore: 0,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.storage.CreatePlayer(ctx, player); err != nil {
			// A racing creation that wins between the read and the write
			// surfaces as taken, same as any duplicate nickname
			return nil, false, false, err
		}
		created = true
		s.logger.Info("player registered", slog.String("nickname", nickname))
	}

	player, wrote, err := s.storage.UpdateHighscoreIfGreater(ctx, nickname, score)
	if err != nil {
		return nil, false, false, err
	}

	if wrote {
		s.logger.Info("highscore updated",
			slog.String("nickname", nickname),
			slog.Int64("highscore", score),
		)
	}
	return player, created, wrote, nil
}
