package main

import "github.com/arcadenight/leaderboard-go/internal/cli"

func main() {
	cli.Execute()
}
