package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newTopCmd() *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/leaderboard"
			if phone != "" {
				path += "?phone=" + url.QueryEscape(phone)
			}

			var players []Player
			if err := client.Get(path, &players); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(players)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Phone identifier to pre-check against the denylist")
	return cmd
}

func newAddCmd() *cobra.Command {
	var phone int64

	cmd := &cobra.Command{
		Use:   "add <nickname>",
		Short: "Register a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"nickname": args[0]}
			if cmd.Flags().Changed("phone") {
				body["phone"] = phone
			}

			var result UserResult
			if err := client.Post("/addUser", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&phone, "phone", 0, "Phone identifier")
	return cmd
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <nickname> <highscore>",
		Short: "Submit a highscore for an existing player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid highscore %q: %w", args[1], err)
			}

			body := map[string]any{
				"nickname":  args[0],
				"highscore": score,
			}

			var result UserResult
			if err := client.Post("/update-score", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <nickname> <highscore>",
		Short: "Submit a highscore, creating the player if needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid highscore %q: %w", args[1], err)
			}

			body := map[string]any{
				"nickname":  args[0],
				"highscore": score,
			}

			var result UserResult
			if err := client.Post("/leaderboard", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
