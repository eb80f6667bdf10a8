package response

import "github.com/arcadenight/leaderboard-go/internal/model"

// Player represents a leaderboard record in API responses
type Player struct {
	Nickname  string `json:"nickname"`
	Phone     *int64 `json:"phone,omitempty"`
	Highscore int64  `json:"highscore"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		Nickname:  p.Nickname,
		Phone:     p.Phone,
		Highscore: p.Highscore,
	}
}

// PlayersFromModels converts a slice of records, preserving order
func PlayersFromModels(players []*model.Player) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerFromModel(p))
	}
	return out
}

// UserResult is the response for operations that act on a single record
type UserResult struct {
	Message string `json:"message"`
	User    Player `json:"user"`
}

// NewUserResult creates a UserResult for a record
func NewUserResult(message string, p *model.Player) UserResult {
	return UserResult{
		Message: message,
		User:    PlayerFromModel(p),
	}
}
