package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/gobang/internal/model"
)

func newRegisterCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}

			req := map[string]string{"username": user}
			var result Player

			if err := client.Post(cmd.Context(), "/register", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newScoreCmd() *cobra.Command {
	var user, score string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Append a score to a player's history",
		Long: `Append a score to a player's history.

The score is parsed as JSON, so --score 10 sends a number and --score '{"moves":42}'
sends an object. Anything that is not valid JSON is sent as a string.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" || score == "" {
				return fmt.Errorf("--user and --score are required")
			}

			req := map[string]any{
				"username": user,
				"score":    parseScore(score),
			}
			var result Player

			if err := client.Post(cmd.Context(), "/score", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&score, "score", "", "Score value as JSON (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <username>",
		Short: "Show a player's score history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get(cmd.Context(), "/player/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func parseScore(raw string) any {
	v, err := model.DecodeScore([]byte(raw))
	if err != nil {
		return raw
	}
	return v
}
