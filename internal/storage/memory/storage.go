package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/arcadenight/leaderboard-go/internal/dependencies/clock"
	"github.com/arcadenight/leaderboard-go/internal/model"
	"github.com/arcadenight/leaderboard-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	clock clock.Clock

	players    map[string]*model.Player
	phoneIndex map[int64]string

	// insertion order, so score ties list as persisted
	order []string
}

// New creates a new in-memory storage instance
func New(clk clock.Clock) *Storage {
	return &Storage{
		clock:      clk,
		players:    make(map[string]*model.Player),
		phoneIndex: make(map[int64]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[player.Nickname]; ok {
		return model.ErrNicknameTaken
	}
	if player.Phone != nil {
		if _, ok := s.phoneIndex[*player.Phone]; ok {
			return model.ErrPhoneInUse
		}
	}

	stored := *player
	s.players[player.Nickname] = &stored
	if player.Phone != nil {
		s.phoneIndex[*player.Phone] = player.Nickname
	}
	s.order = append(s.order, player.Nickname)
	return nil
}

func (s *Storage) GetPlayerByNickname(ctx context.Context, nickname string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[nickname]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) GetPlayerByPhone(ctx context.Context, phone int64) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nickname, ok := s.phoneIndex[phone]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[nickname]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) ListPlayersByScore(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]*model.Player, 0, len(s.order))
	for _, nickname := range s.order {
		copied := *s.players[nickname]
		players = append(players, &copied)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Highscore > players[j].Highscore
	})
	return players, nil
}

func (s *Storage) UpdateHighscoreIfGreater(ctx context.Context, nickname string, score int64) (*model.Player, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[nickname]
	if !ok {
		return nil, false, model.ErrPlayerNotFound
	}

	if score <= player.Highscore {
		copied := *player
		return &copied, false, nil
	}

	player.Highscore = score
	player.UpdatedAt = s.clock.Now()
	copied := *player
	return &copied, true, nil
}
