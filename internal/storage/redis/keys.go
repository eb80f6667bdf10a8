package redis

import "fmt"

// Key prefix for all leaderboard data
const keyPrefix = "leaderboard"

// playerKey returns the Redis key for a player document
func playerKey(nickname string) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, nickname)
}

// phoneIndexKey returns the Redis key for the phone -> nickname index
func phoneIndexKey(phone int64) string {
	return fmt.Sprintf("%s:idx:phone:%d", keyPrefix, phone)
}

// scoresKey returns the Redis key for the highscore sorted set
func scoresKey() string {
	return fmt.Sprintf("%s:scores", keyPrefix)
}
