package cmd

import (
	"context"
	"encoding/json"
	"os"
	"reflect"
	"strings"

	"github.com/abouramd/live-stream/app"
	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/filesystem"
	"github.com/abouramd/live-stream/inline"
	"github.com/abouramd/live-stream/key"
	"github.com/abouramd/live-stream/model"
	"github.com/abouramd/live-stream/open"
	"github.com/abouramd/live-stream/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.PersistentFlags().BoolP("json", "j", false, "Write the result as JSON")
	inlineCmd.PersistentFlags().StringP("output", "o", "", "Write the result to this file instead of stdout")
}

// inlineCmd is the parent of the non-interactive commands.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print listings and streams without an interface, for scripts",
	Long: `Print listings and streams without an interface.

Match pickers (--pick, used when --match is not set):
  first, last      first or last match of the listing
  index:N          match at index N, starting from 0
  title:TEXT       first match whose title contains TEXT

Stream pickers (--stream):
  first, last      first or last stream
  index:N          stream at index N, starting from 0
  hd               first HD stream, else the first one
  lang:LANGUAGE    first stream in LANGUAGE`,
	Example: `  livestream inline matches --category live/popular --json
  livestream inline streams --category live --pick title:arsenal --stream hd --open`,
}

// inlineOptions collects the flags shared by the inline subcommands.
func inlineOptions(cmd *cobra.Command) (*inline.Options, func() error) {
	options := &inline.Options{
		Json: lo.Must(cmd.Flags().GetBool("json")),
		Out:  os.Stdout,
	}

	closer := func() error { return nil }
	if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
		file, err := filesystem.API().Create(output)
		handleErr(err)
		options.Out, closer = file, file.Close
	}

	if flag := cmd.Flags().Lookup("category"); flag != nil && flag.Value.String() != "" {
		category, err := parseCategory(flag.Value.String())
		handleErr(err)
		options.Category = category
	}

	if flag := cmd.Flags().Lookup("match"); flag != nil {
		options.MatchID = strings.TrimSpace(flag.Value.String())
	}

	if flag := cmd.Flags().Lookup("pick"); flag != nil && flag.Value.String() != "" {
		picker, err := inline.ParseMatchPicker(flag.Value.String())
		handleErr(err)
		options.MatchPicker = mo.Some(picker)
	}

	return options, closer
}

// addMatchFlags registers the flags that choose a match.
func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("match", "m", "", "Match id")
	lo.Must0(cmd.RegisterFlagCompletionFunc("match", completionMatchIDs))

	cmd.Flags().StringP("category", "c", "", "Listing to pick the match from")
	lo.Must0(cmd.RegisterFlagCompletionFunc("category", completionCategories))

	cmd.Flags().StringP("pick", "p", "", "Match picker, used when --match is not set")
	cmd.MarkFlagsMutuallyExclusive("match", "pick")
}

// runInline builds the app and options and runs one inline command.
func runInline(cmd *cobra.Command, run func(context.Context, *app.App, *inline.Options) error) {
	options, closer := inlineOptions(cmd)
	defer util.Ignore(closer)

	handleErr(run(cmd.Context(), app.New(), options))
}

func init() {
	inlineCmd.AddCommand(inlineSportsCmd)
}

// inlineSportsCmd prints the sport list.
var inlineSportsCmd = &cobra.Command{
	Use:   "sports",
	Short: "List sports",
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, inline.Sports)
	},
}

func init() {
	inlineCmd.AddCommand(inlineMatchesCmd)

	inlineMatchesCmd.Flags().StringP("category", "c", string(catalog.Live), "Listing to print")
	lo.Must0(inlineMatchesCmd.RegisterFlagCompletionFunc("category", completionCategories))
}

// inlineMatchesCmd prints the matches of a category.
var inlineMatchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the matches of a category",
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, inline.Matches)
	},
}

func init() {
	inlineCmd.AddCommand(inlineMatchCmd)
	addMatchFlags(inlineMatchCmd)
}

// inlineMatchCmd prints a single match.
var inlineMatchCmd = &cobra.Command{
	Use:   "match",
	Short: "Print one match and its sources",
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, inline.Match)
	},
}

func init() {
	inlineCmd.AddCommand(inlineStreamsCmd)
	addMatchFlags(inlineStreamsCmd)

	inlineStreamsCmd.Flags().StringP("source", "s", "", "Only look up the feed of this source")
	inlineStreamsCmd.Flags().StringP("stream", "S", "", "Stream picker; prints only the picked embed URL")
	inlineStreamsCmd.Flags().Bool("open", false, "Open the picked stream")
	inlineStreamsCmd.MarkFlagsRequiredTogether("open", "stream")
}

// inlineStreamsCmd resolves the streams of a match and optionally opens one.
var inlineStreamsCmd = &cobra.Command{
	Use:   "streams",
	Short: "Resolve the streams of a match",
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, func(ctx context.Context, a *app.App, options *inline.Options) error {
			options.Source = lo.Must(cmd.Flags().GetString("source"))
			options.Open = lo.Must(cmd.Flags().GetBool("open"))
			options.Opener = func(url string) error {
				return open.URL(url, viper.GetString(key.WatchBrowser))
			}

			if description := lo.Must(cmd.Flags().GetString("stream")); description != "" {
				picker, err := inline.ParseStreamPicker(description)
				if err != nil {
					return err
				}
				options.StreamPicker = mo.Some(picker)
			}

			return inline.Streams(ctx, a, options)
		})
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			if t.PkgPath() == reflect.TypeOf(model.Match{}).PkgPath() {
				return "model." + t.Name()
			}
			return t.Name()
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector.Reflect(&inline.Output{})))
	},
}
