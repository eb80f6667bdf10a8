package factory

import (
	"time"

	"github.com/arcadenight/leaderboard-go/internal/dependencies/mocks"
	"github.com/arcadenight/leaderboard-go/internal/services/leaderboard"
	"github.com/arcadenight/leaderboard-go/internal/storage/memory"
	"github.com/arcadenight/leaderboard-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked
// dependencies and the given denylist
func NewTestApp(blockedPhones []string, svcCfg leaderboard.Config) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	store := memory.New(mockClock)

	app := newWithDependencies(store, mockClock, blockedPhones, svcCfg, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
