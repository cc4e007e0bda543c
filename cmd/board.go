package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/siamdraw/lotto-cli/internal/board"
	"github.com/siamdraw/lotto-cli/pkg/glo"
	"github.com/siamdraw/lotto-cli/pkg/tipster"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the informational panels: latest draw and guru roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		b := board.New(
			glo.NewClient(glo.WithBaseURL(cfg.GLO.BaseURL)),
			tipster.NewClient(cfg.Tipster.BaseURL),
		)

		snap := b.Snapshot(cmd.Context())

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
