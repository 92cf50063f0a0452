package profiler

import (
	"sort"
	"strings"
)

// parseSuspectTypes splits a comma-separated list into a set of trimmed,
// non-empty type names.
func parseSuspectTypes(list string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
