package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arcadenight/leaderboard-go/internal/dependencies/mocks"
	"github.com/arcadenight/leaderboard-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = New(s.clock)
	s.ctx = context.Background()
}

func (s *StorageSuite) newPlayer(nickname string, phone *int64, score int64) *model.Player {
	return &model.Player{
		Nickname:  nickname,
		Phone:     phone,
		Highscore: score,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func phone(n int64) *int64 {
	return &n
}

// Create tests

func (s *StorageSuite) TestCreateAndGetPlayer() {
	err := s.storage.CreatePlayer(s.ctx, s.newPlayer("Ben", phone(123), 0))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayerByNickname(s.ctx, "Ben")
	s.Require().NoError(err)
	s.Equal("Ben", retrieved.Nickname)
	s.Require().NotNil(retrieved.Phone)
	s.Equal(int64(123), *retrieved.Phone)
	s.Equal(int64(0), retrieved.Highscore)
}

func (s *StorageSuite) TestCreatePlayerWithoutPhone() {
	err := s.storage.CreatePlayer(s.ctx, s.newPlayer("Ann", nil, 0))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayerByNickname(s.ctx, "Ann")
	s.Require().NoError(err)
	s.Nil(retrieved.Phone)
}

func (s *StorageSuite) TestCreatePlayerNicknameTaken() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("Ben", phone(123), 0))

	err := s.storage.CreatePlayer(s.ctx, s.newPlayer("Ben", phone(456), 0))
	s.ErrorIs(err, model.ErrNicknameTaken)
}

func (s *StorageSuite) TestCreatePlayerPhoneInUse() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("Ben", phone(123), 0))

	err := s.storage.CreatePlayer(s.ctx, s.newPlayer("Carl", phone(123), 0))
	s.ErrorIs(err, model.ErrPhoneInUse)

	_, err = s.storage.GetPlayerByNickname(s.ctx, "Carl")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerByNicknameNotFound() {
	_, err := s.storage.GetPlayerByNickname(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerByPhone() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("Ben", phone(123), 0))

	retrieved, err := s.storage.GetPlayerByPhone(s.ctx, 123)
	s.Require().NoError(err)
	s.Equal("Ben", retrieved.Nickname)
}

func (s *StorageSuite) TestGetPlayerByPhoneNotFound() {
	_, err := s.storage.GetPlayerByPhone(s.ctx, 999)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// List tests

func (s *StorageSuite) TestListPlayersByScoreOrdersDescending() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("low", nil, 10))
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("high", nil, 80))
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("mid", nil, 50))

	players, err := s.storage.ListPlayersByScore(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("high", players[0].Nickname)
	s.Equal("mid", players[1].Nickname)
	s.Equal("low", players[2].Nickname)
}

func (s *StorageSuite) TestListPlayersByScoreTiesKeepInsertionOrder() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("first", nil, 50))
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("second", nil, 50))

	players, err := s.storage.ListPlayersByScore(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("first", players[0].Nickname)
	s.Equal("second", players[1].Nickname)
}

func (s *StorageSuite) TestListPlayersByScoreEmpty() {
	players, err := s.storage.ListPlayersByScore(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

// Compare-and-set tests

func (s *StorageSuite) TestUpdateHighscoreIfGreaterRaises() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("Ben", nil, 0))

	updated, wrote, err := s.storage.UpdateHighscoreIfGreater(s.ctx, "Ben", 50)
	s.Require().NoError(err)
	s.True(wrote)
	s.Equal(int64(50), updated.Highscore)
}

func (s *StorageSuite) TestUpdateHighscoreIfGreaterRejectsLower() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("Ben", nil, 50))

	updated, wrote, err := s.storage.UpdateHighscoreIfGreater(s.ctx, "Ben", 10)
	s.Require().NoError(err)
	s.False(wrote)
	s.Equal(int64(50), updated.Highscore)
}

func (s *StorageSuite) TestUpdateHighscoreIfGreaterRejectsEqual() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("Ben", nil, 50))

	_, wrote, err := s.storage.UpdateHighscoreIfGreater(s.ctx, "Ben", 50)
	s.Require().NoError(err)
	s.False(wrote)
}

func (s *StorageSuite) TestUpdateHighscoreIfGreaterNotFound() {
	_, _, err := s.storage.UpdateHighscoreIfGreater(s.ctx, "nonexistent", 50)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestUpdateHighscoreIfGreaterStampsUpdatedAt() {
	created := s.clock.Now()
	_ = s.storage.CreatePlayer(s.ctx, &model.Player{
		Nickname:  "Ben",
		CreatedAt: created,
		UpdatedAt: created,
	})

	s.clock.Advance(time.Hour)
	updated, wrote, err := s.storage.UpdateHighscoreIfGreater(s.ctx, "Ben", 50)
	s.Require().NoError(err)
	s.True(wrote)
	s.Equal(created, updated.CreatedAt)
	s.Equal(created.Add(time.Hour), updated.UpdatedAt)

	// A rejected write must not touch the timestamp
	s.clock.Advance(time.Hour)
	unchanged, wrote, err := s.storage.UpdateHighscoreIfGreater(s.ctx, "Ben", 10)
	s.Require().NoError(err)
	s.False(wrote)
	s.Equal(created.Add(time.Hour), unchanged.UpdatedAt)
}

func (s *StorageSuite) TestUpdateHighscoreMonotonicUnderConcurrency() {
	_ = s.storage.CreatePlayer(s.ctx, s.newPlayer("Ben", nil, 0))

	var wg sync.WaitGroup
	for i := int64(1); i <= 100; i++ {
		wg.Add(1)
		go func(score int64) {
			defer wg.Done()
			_, _, _ = s.storage.UpdateHighscoreIfGreater(s.ctx, "Ben", score)
		}(i)
	}
	wg.Wait()

	player, err := s.storage.GetPlayerByNickname(s.ctx, "Ben")
	s.Require().NoError(err)
	s.Equal(int64(100), player.Highscore)
}
