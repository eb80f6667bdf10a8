package handler

import (
	"encoding/json"
	"net/http"

	"github.com/arcadenight/leaderboard-go/internal/api/request"
	"github.com/arcadenight/leaderboard-go/internal/api/response"
	"github.com/arcadenight/leaderboard-go/internal/services/leaderboard"
)

// PlayerHandler handles player registration and score submission
type PlayerHandler struct {
	service *leaderboard.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(service *leaderboard.Service) *PlayerHandler {
	return &PlayerHandler{
		service: service,
	}
}

// AddUser handles POST /addUser
func (h *PlayerHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req request.AddUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Nickname == "" {
		WriteError(w, NewInvalidRequestError("nickname is required"))
		return
	}
	if req.Phone != nil && *req.Phone < 0 {
		WriteError(w, NewInvalidRequestError("phone must be non-negative"))
		return
	}

	player, created, err := h.service.Register(r.Context(), req.Nickname, req.Phone)
	if err != nil {
		WriteError(w, err)
		return
	}

	if created {
		response.JSON(w, http.StatusCreated, response.NewUserResult(msgUserAdded, player))
		return
	}
	response.JSON(w, http.StatusOK, response.NewUserResult(msgUserExists, player))
}

// UpdateScore handles POST /update-score
func (h *PlayerHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateScoreRequest
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

	player, updated, err := h.service.UpdateScore(r.Context(), req.Nickname, *req.Highscore)
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
