package cmd

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"
)

// fetchCmd runs a single aggregation cycle and prints the snapshot as JSON.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Run one aggregation cycle and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		res := newAggregator(cfg).Run(ctx)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
