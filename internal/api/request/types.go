package request

// AddUserRequest is the request body for registering a player
type AddUserRequest struct {
	Nickname string `json:"nickname"`
	Phone    *int64 `json:"phone,omitempty"`
}

// UpdateScoreRequest is the request body for submitting a highscore
type UpdateScoreRequest struct {
	Nickname  string `json:"nickname"`
	Highscore *int64 `json:"highscore"`
}

// UpsertRequest is the request body for the merged
// create-or-update-score operation
type UpsertRequest struct {
	Nickname  string `json:"nickname"`
	Highscore *int64 `json:"highscore"`
}
