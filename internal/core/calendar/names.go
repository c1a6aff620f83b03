package calendar

import (
	"slices"
	"strings"

	"dashboard/internal/core/normalize"
)

// nameSeparators are the characters used to join several names into one label
const nameSeparators = ",/"

// SplitNames splits a raw label on "," or "/" and returns the trimmed,
// non-empty tokens in order
func SplitNames(raw string) []string {
	raw = normalize.Sanitize(raw)
	parts := strings.FieldsFunc(raw, func(r rune) bool { return strings.ContainsRune(nameSeparators, r) })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// NormalizeNames re-splits every entry, trims, drops empties and removes
// duplicates keeping the first occurrence; applying it twice changes nothing
func NormalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = appendUnique(out, SplitNames(n)...)
	}
	return out
}

// appendUnique appends each trimmed, non-empty value that is not already in list
func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(list, v) {
			continue
		}
		list = append(list, v)
	}
	return list
}
