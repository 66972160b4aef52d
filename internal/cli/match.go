package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match recording commands",
	}

	cmd.AddCommand(newMatchCreateCmd())
	cmd.AddCommand(newMatchGetCmd())

	return cmd
}

func newMatchCreateCmd() *cobra.Command {
	var (
		winner   string
		duration int
	)

	cmd := &cobra.Command{
		Use:   "create <team1-id> <team2-id>",
		Short: "Record a match between two teams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"team1_id": args[0],
				"team2_id": args[1],
				"duration": duration,
			}
			if winner != "" {
				body["winning_team_id"] = winner
			}

			var result Match
			if err := client.Post("/api/v1/matches", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&winner, "winner", "", "Winning team ID (omit for a draw)")
	cmd.Flags().IntVar(&duration, "duration", 1, "Match duration in hours")

	return cmd
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a match by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match
			if err := client.Get(fmt.Sprintf("/api/v1/matches/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
