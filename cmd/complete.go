package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abouramd/live-stream/app"
	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/color"
	"github.com/abouramd/live-stream/model"
	"github.com/abouramd/live-stream/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const completionTimeout = 3 * time.Second

// fuzzyFilter keeps the candidates that fuzzily contain input, best first.
func fuzzyFilter(input string, candidates []string) []string {
	if input == "" {
		return candidates
	}

	ranks := fuzzy.RankFindFold(input, candidates)
	sort.Sort(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return r.Target
	})
}

// closest returns the candidate with the smallest edit distance to input.
func closest(input string, candidates []string) string {
	return lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(input, a) < levenshtein.Distance(input, b)
	})
}

func categoryNames() []string {
	return lo.Map(catalog.Fixed, func(c catalog.Category, _ int) string {
		return c.String()
	})
}

// completionCategories completes fixed categories and sport/<id> for every sport the upstream lists.
func completionCategories(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	candidates := categoryNames()

	ctx, cancel := context.WithTimeout(cmd.Context(), completionTimeout)
	defer cancel()

	for _, sport := range app.New().Sports.List(ctx) {
		candidates = append(candidates, catalog.SportCategory(sport.ID, false).String())
	}

	return fuzzyFilter(toComplete, candidates), cobra.ShellCompDirectiveNoFileComp
}

// completionMatchIDs completes match ids by prefix, falling back to fuzzy title search.
func completionMatchIDs(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx, cancel := context.WithTimeout(cmd.Context(), completionTimeout)
	defer cancel()

	a := app.New()
	matches := a.Matches.List(ctx, a.Resolver.Category())

	describe := func(m model.Match) string {
		return m.ID + "\t" + m.Title
	}

	if byID := lo.Filter(matches, func(m model.Match, _ int) bool {
		return toComplete != "" && strings.HasPrefix(m.ID, toComplete)
	}); len(byID) > 0 {
		return lo.Map(byID, func(m model.Match, _ int) string { return describe(m) }), cobra.ShellCompDirectiveNoFileComp
	}

	// Users remember titles rather than ids.
	if toComplete == "" {
		return lo.Map(matches, func(m model.Match, _ int) string { return describe(m) }), cobra.ShellCompDirectiveNoFileComp
	}

	titles := lo.Map(matches, func(m model.Match, _ int) string { return m.Title })
	ranks := fuzzy.RankFindFold(toComplete, titles)
	sort.Sort(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return describe(matches[r.OriginalIndex])
	}), cobra.ShellCompDirectiveNoFileComp
}

// parseCategory parses input and suggests the nearest fixed category when it is invalid.
func parseCategory(input string) (catalog.Category, error) {
	category, err := catalog.ParseCategory(input)
	if err == nil {
		return category, nil
	}

	if !errors.Is(err, catalog.ErrUnknownCategory) {
		return "", err
	}

	return "", fmt.Errorf(
		"%w %s, did you mean %s? Sports are written sport/<id>",
		catalog.ErrUnknownCategory,
		style.Fg(color.Red)(input),
		style.Fg(color.Yellow)(closest(input, categoryNames())),
	)
}

// categoryFlag returns the --category flag, or "" when it is unset.
func categoryFlag(cmd *cobra.Command) (catalog.Category, error) {
	value := strings.TrimSpace(lo.Must(cmd.Flags().GetString("category")))
	if value == "" {
		return "", nil
	}
	return parseCategory(value)
}
