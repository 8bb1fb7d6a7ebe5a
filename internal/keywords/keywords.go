// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords normalizes raw keyword input into the list sent to the
// dispatcher.
package keywords

import "strings"

// Parse splits input on newlines and commas, trims each entry, and drops
// empty entries. Duplicates are kept and order is preserved.
func Parse(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == '\n' || r == ','
	})

	var out []string
	for _, f := range fields {
		if kw := strings.TrimSpace(f); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
