// Package search provides the one free-text filter predicate shared by
// every management listing.
package search

import "strings"

// Matches reports whether any of the candidate fields contains the query as
// a case-insensitive substring. The empty query matches everything.
//
// Lowercasing is plain Unicode case mapping: diacritics are preserved, so
// "nguyen" does not match "Nguyễn" while "NGUYỄN" does.
func Matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
