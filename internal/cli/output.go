package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printLeaderboard(v)
	case UserResult:
		o.printUserResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	Nickname  string `json:"nickname"`
	Phone     *int64 `json:"phone,omitempty"`
	Highscore int64  `json:"highscore"`
}

// UserResult response type
type UserResult struct {
	Message string `json:"message"`
	User    Player `json:"user"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s\n", p.Nickname)
	if p.Phone != nil {
		fmt.Printf("Phone: %d\n", *p.Phone)
	}
	fmt.Printf("Highscore: %d\n", p.Highscore)
}

func (o *Output) printLeaderboard(players []Player) {
	if len(players) == 0 {
		fmt.Println("Leaderboard is empty")
		return
	}
	for i, p := range players {
		fmt.Printf("%3d. %s - %d\n", i+1, p.Nickname, p.Highscore)
	}
}

func (o *Output) printUserResult(r UserResult) {
	fmt.Println(r.Message)
	o.printPlayer(r.User)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
