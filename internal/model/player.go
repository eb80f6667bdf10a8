package model

import "time"

// Player is a persisted leaderboard record. Nickname is the
// case-sensitive identity key; Phone is an optional secondary
// identifier that is unique across records when present.
type Player struct {
	Nickname  string
	Phone     *int64
	Highscore int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPhone reports whether the record carries a phone identifier
func (p *Player) HasPhone() bool {
	return p.Phone != nil
}
