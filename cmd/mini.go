package cmd

import (
	"strings"

	"github.com/abouramd/live-stream/app"
	"github.com/abouramd/live-stream/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().StringP("category", "c", "", "Listing to open first")
	lo.Must0(miniCmd.RegisterFlagCompletionFunc("category", completionCategories))

	miniCmd.Flags().StringP("match", "m", "", "Open the sources of this match id directly")
	lo.Must0(miniCmd.RegisterFlagCompletionFunc("match", completionMatchIDs))
}

// miniCmd runs the prompt-based interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Browse with plain prompts instead of the full screen interface",
	Run: func(cmd *cobra.Command, args []string) {
		category, err := categoryFlag(cmd)
		handleErr(err)

		options := mini.Options{
			Category: category,
			MatchID:  strings.TrimSpace(lo.Must(cmd.Flags().GetString("match"))),
		}
		handleErr(mini.Run(cmd.Context(), app.New(), &options))
	},
}
