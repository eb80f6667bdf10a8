package handler

import (
	"encoding/json"
	"net/http"

	"github.com/arcadenight/leaderboard-go/internal/api/request"
	"github.com/arcadenight/leaderboard-go/internal/api/response"
	"github.com/arcadenight/leaderboard-go/internal/services/leaderboard"
)

// Messages returned on successful score submissions
const (
	msgScoreUpdated = "Highscore updated"
	msgScoreTooLow  = "Score not high enough to update"
	msgUserAdded    = "User added successfully."
	msgUserExists   = "User already exists."
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	service *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(service *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		service: service,
	}
}

// List handles GET /leaderboard
func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")

	players, err := h.service.List(r.Context(), phone)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModels(players))
}

// Upsert handles POST /leaderboard: create-or-update keyed on nickname
func (h *LeaderboardHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Nickname == "" {
		WriteError(w, NewInvalidRequestError("nickname is required"))
		return
	}
	if req.Highscore == nil {
		WriteError(w, NewInvalidRequestError("highscore is required"))
		return
	}
	if *req.Highscore < 0 {
		WriteError(w, NewInvalidRequestError("highscore must be non-negative"))
		return
	}

	player, _, updated, err := h.service.Upsert(r.Context(), req.Nickname, *req.Highscore)
	if err != nil {
		WriteError(w, err)
		return
	}

	message := msgScoreTooLow
	if updated {
		message = msgScoreUpdated
	}
	response.JSON(w, http.StatusOK, response.NewUserResult(message, player))
}
