package utils

import "strings"

// LocationFromAddress returns the first comma-delimited segment of an address.
func LocationFromAddress(address string) string {
	if i := strings.IndexByte(address, ','); i >= 0 {
		return address[:i]
	}
	return address
}

// ContainsFold reports whether needle occurs in haystack, ignoring case.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
