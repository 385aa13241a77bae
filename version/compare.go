package version

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// release is a parsed tag. Missing minor or patch numbers count as zero.
type release struct {
	numbers    []int
	prerelease string
}

func parseRelease(tag string) (release, error) {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "v")
	core, pre, _ := strings.Cut(tag, "-")

	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return release{}, fmt.Errorf("invalid version %q", tag)
	}

	numbers := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return release{}, fmt.Errorf("invalid version %q", tag)
		}
		numbers[i] = n
	}

	return release{numbers: numbers, prerelease: pre}, nil
}

// Compare orders two release tags. It returns 1 if a is newer, -1 if b is
// newer and 0 if they are the same release. A pre-release sorts before the
// release it precedes.
func Compare(a, b string) (int, error) {
	av, err := parseRelease(a)
	if err != nil {
		return 0, err
	}

	bv, err := parseRelease(b)
	if err != nil {
		return 0, err
	}

	if c := slices.Compare(av.numbers, bv.numbers); c != 0 {
		return c, nil
	}

	switch {
	case av.prerelease == bv.prerelease:
		return 0, nil
	case av.prerelease == "":
		return 1, nil
	case bv.prerelease == "":
		return -1, nil
	default:
		return lo.Ternary(av.prerelease > bv.prerelease, 1, -1), nil
	}
}
