package help

import (
	"sort"

	"github.com/danhart/clarg"
)

// SortByPriority orders arguments for help display: positionals first
// (they must appear in a fixed relative order on the command line so
// their help entries should match), then required flags, then optional
// flags, each bucket stable against declaration order.
func SortByPriority(args []clarg.ArgumentInfo) []clarg.ArgumentInfo {
	out := append([]clarg.ArgumentInfo{}, args...)

	priority := func(a clarg.ArgumentInfo) int {
		switch {
		case a.Positional():
			return 0
		case a.Required():
			return 1
		default:
			return 2
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priority(out[i]) < priority(out[j])
	})

	return out
}
