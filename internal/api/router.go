package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arcadenight/leaderboard-go/internal/api/handler"
	"github.com/arcadenight/leaderboard-go/internal/api/middleware"
	"github.com/arcadenight/leaderboard-go/internal/services/leaderboard"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	LeaderboardService *leaderboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)
	playerHandler := handler.NewPlayerHandler(cfg.LeaderboardService)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.HandleFunc("/leaderboard", leaderboardHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard", leaderboardHandler.Upsert).Methods(http.MethodPost)
	r.HandleFunc("/addUser", playerHandler.AddUser).Methods(http.MethodPost)
	r.HandleFunc("/update-score", playerHandler.UpdateScore).Methods(http.MethodPost)

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
