package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arcadenight/leaderboard-go/internal/model"
	"github.com/arcadenight/leaderboard-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
//
// A player is stored as a JSON document keyed by nickname, with the
// authoritative highscore held in a sorted set. The sorted set lets the
// leaderboard read come back ordered, and ZADD XX GT gives the
// monotonic score update as a single atomic server-side operation.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// playerDoc is the persisted document shape. The highscore lives in
// the sorted set, not here.
type playerDoc struct {
	Nickname  string    `json:"nickname"`
	Phone     *int64    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	doc := playerDoc{
		Nickname:  player.Nickname,
		Phone:     player.Phone,
		CreatedAt: player.CreatedAt,
		UpdatedAt: player.UpdatedAt,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	// SETNX on the document key arbitrates nickname uniqueness between
	// racing creations
	created, err := s.client.SetNX(ctx, playerKey(player.Nickname), data, 0).Result()
	if err != nil {
		return err
	}
	if !created {
		return model.ErrNicknameTaken
	}

	if player.Phone != nil {
		claimed, err := s.client.SetNX(ctx, phoneIndexKey(*player.Phone), player.Nickname, 0).Result()
		if err != nil {
			return err
		}
		if !claimed {
			// Another record owns the phone; undo the document write
			_ = s.client.Del(ctx, playerKey(player.Nickname)).Err()
			return model.ErrPhoneInUse
		}
	}

	return s.client.ZAddNX(ctx, scoresKey(), redis.Z{
		Score:  float64(player.Highscore),
		Member: player.Nickname,
	}).Err()
}

func (s *Storage) GetPlayerByNickname(ctx context.Context, nickname string) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(nickname)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var doc playerDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	score, err := s.client.ZScore(ctx, scoresKey(), nickname).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	return docToPlayer(doc, int64(score)), nil
}

func (s *Storage) GetPlayerByPhone(ctx context.Context, phone int64) (*model.Player, error) {
	nickname, err := s.client.Get(ctx, phoneIndexKey(phone)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetPlayerByNickname(ctx, nickname)
}

func (s *Storage) ListPlayersByScore(ctx context.Context) ([]*model.Player, error) {
	ranked, err := s.client.ZRevRangeWithScores(ctx, scoresKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ranked) == 0 {
		return []*model.Player{}, nil
	}

	keys := make([]string, 0, len(ranked))
	for _, z := range ranked {
		keys = append(keys, playerKey(z.Member.(string)))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(ranked))
	for i, val := range values {
		if val == nil {
			continue // Ranked member without a document; skip
		}
		var doc playerDoc
		if err := json.Unmarshal([]byte(val.(string)), &doc); err != nil {
			continue
		}
		players = append(players, docToPlayer(doc, int64(ranked[i].Score)))
	}

	return players, nil
}

func (s *Storage) UpdateHighscoreIfGreater(ctx context.Context, nickname string, score int64) (*model.Player, bool, error) {
	// Existence check first: ZADD XX on a missing member and a
	// not-higher score are both zero changes, and the caller needs to
	// tell them apart
	if _, err := s.client.ZScore(ctx, scoresKey(), nickname).Result(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, model.ErrPlayerNotFound
		}
		return nil, false, err
	}

	// Compare-and-set: GT only raises the member's score, XX never
	// creates it, CH reports whether anything changed. Atomic on the
	// server, so racing updates cannot lower the stored score.
	changed, err := s.client.ZAddArgs(ctx, scoresKey(), redis.ZAddArgs{
		XX: true,
		GT: true,
		Ch: true,
		Members: []redis.Z{
			{Score: float64(score), Member: nickname},
		},
	}).Result()
	if err != nil {
		return nil, false, err
	}

	if changed > 0 {
		if err := s.touchPlayer(ctx, nickname); err != nil {
			return nil, false, err
		}
	}

	player, err := s.GetPlayerByNickname(ctx, nickname)
	if err != nil {
		return nil, false, err
	}
	return player, changed > 0, nil
}

// touchPlayer rewrites the document's UpdatedAt after an accepted
// score update
func (s *Storage) touchPlayer(ctx context.Context, nickname string) error {
	data, err := s.client.Get(ctx, playerKey(nickname)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrPlayerNotFound
		}
		return err
	}

	var doc playerDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	doc.UpdatedAt = time.Now()
	updated, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, playerKey(nickname), updated, 0).Err()
}

func docToPlayer(doc playerDoc, score int64) *model.Player {
	return &model.Player{
		Nickname:  doc.Nickname,
		Phone:     doc.Phone,
		Highscore: score,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
