package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gamepulse/internal/model"
	"gamepulse/internal/pandascore"

	"github.com/spf13/cobra"
)

// matchesCmd fetches live and upcoming esports matches once and prints them.
var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Fetch live and upcoming esports matches once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg.Esports.Token == "" {
			return fmt.Errorf("esports.token is not configured")
		}

		psc := pandascore.NewClient(cfg.Esports.BaseURL, cfg.Esports.Token, cfg.Esports.PageSize)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		live, err := psc.LiveMatches(ctx)
		if err != nil {
			return err
		}
		upcoming, err := psc.UpcomingMatches(ctx)
		if err != nil {
			return err
		}

		out := struct {
			Live     []model.EsportsMatch `json:"live"`
			Upcoming []model.EsportsMatch `json:"upcoming"`
		}{Live: live, Upcoming: upcoming}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	rootCmd.AddCommand(matchesCmd)
}
