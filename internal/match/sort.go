package match

import "sort"

// SortSuggestions sorts by relevance score (descending). Equal scores keep their
// relative order.
func SortSuggestions(s []Suggestion) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].RelevanceScore > s[j].RelevanceScore
	})
}
