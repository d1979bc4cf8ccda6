package fixture

import (
	"sort"
	"strings"

	"http-fixture/application/http/semantic"
)

// InterestingPrefixes mark the server variables worth echoing.
// Matching is case-sensitive.
var InterestingPrefixes = []string{"REQUEST_", "CONTENT_", "QUERY_", "SERVER_", "HTTP_"}

// InterestingKeys returns the names in vars carrying one of [InterestingPrefixes],
// sorted ascending.
func InterestingKeys(vars semantic.Vars) []string {
	keys := make([]string, 0, len(vars))
	for name := range vars {
		if isInteresting(name) {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys
}

func isInteresting(name string) bool {
	for _, prefix := range InterestingPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
