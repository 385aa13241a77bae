// Package cmd is the command line of livestream.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/abouramd/live-stream/app"
	"github.com/abouramd/live-stream/color"
	"github.com/abouramd/live-stream/constant"
	"github.com/abouramd/live-stream/icon"
	"github.com/abouramd/live-stream/key"
	"github.com/abouramd/live-stream/log"
	"github.com/abouramd/live-stream/style"
	"github.com/abouramd/live-stream/tui"
	"github.com/abouramd/live-stream/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant (emoji, nerd, plain, kaomoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("base-url", "", "Upstream API base URL")
	lo.Must0(viper.BindPFlag(key.APIBaseURL, rootCmd.PersistentFlags().Lookup("base-url")))

	rootCmd.Flags().StringP("category", "c", "", "Listing to open first, e.g. live, all-today/popular or sport/football")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("category", completionCategories))

	rootCmd.Flags().StringP("match", "m", "", "Open the sources of this match id directly")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("match", completionMatchIDs))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd starts the TUI when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Browse live sports listings and open their streams",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse live sports listings and open their streams"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		category, err := categoryFlag(cmd)
		handleErr(err)

		options := tui.Options{
			Category: category,
			MatchID:  strings.TrimSpace(lo.Must(cmd.Flags().GetString("match"))),
		}
		handleErr(tui.Run(cmd.Context(), app.New(), &options))
	},
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// handleErr prints err and exits with a non-zero status.
func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
