package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadenight/leaderboard-go/internal/model"
	"github.com/arcadenight/leaderboard-go/internal/services/leaderboard"
)

func TestNewDefaultsToMemoryStorage(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, app.Storage)
	require.NotNil(t, app.LeaderboardService)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "etcd"})
	assert.Error(t, err)
}

func TestNewRequiresRedisConfigForRedis(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

// Full register/update/list flow through a wired application
func TestRegisterUpdateListFlow(t *testing.T) {
	app := NewTestApp([]string{"511206591"}, leaderboard.DefaultConfig())
	ctx := context.Background()

	phone := int64(123)
	player, created, err := app.LeaderboardService.Register(ctx, "Ben", &phone)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(0), player.Highscore)
	assert.Equal(t, app.MockClock.Now(), player.CreatedAt)

	_, updated, err := app.LeaderboardService.UpdateScore(ctx, "Ben", 50)
	require.NoError(t, err)
	assert.True(t, updated)

	players, err := app.LeaderboardService.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, int64(50), players[0].Highscore)
}

func TestDenylistWiredIntoService(t *testing.T) {
	app := NewTestApp([]string{"511206591"}, leaderboard.DefaultConfig())
	ctx := context.Background()

	blocked := int64(511206591)
	_, _, err := app.LeaderboardService.Register(ctx, "Ann", &blocked)
	assert.ErrorIs(t, err, leaderboard.ErrBlocked)

	_, err = app.Storage.GetPlayerByNickname(ctx, "Ann")
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}
