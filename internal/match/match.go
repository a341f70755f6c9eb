// Package match implements the loose name matching used for playlists and devices.
package match

import "strings"

// Find returns the first item whose name matches query.
//
// Matching runs in two phases over items in their given order:
//
//  1. case-insensitive exact match;
//  2. bidirectional substring containment (the name contains the query or
//     the query contains the name).
//
// The first eligible item wins; there is no scoring between candidates.
// An empty query or an empty slice never matches.
func Find[T any](items []T, query string, name func(T) string) (T, bool) {
	var zero T
	if query == "" || len(items) == 0 {
		return zero, false
	}
	q := strings.ToLower(query)

	for _, it := range items {
		if strings.ToLower(name(it)) == q {
			return it, true
		}
	}
	for _, it := range items {
		n := strings.ToLower(name(it))
		if n == "" {
			continue
		}
		if strings.Contains(n, q) || strings.Contains(q, n) {
			return it, true
		}
	}
	return zero, false
}
